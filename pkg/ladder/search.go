package ladder

import (
	"context"

	"github.com/ytkachuk12/wordgraph/pkg/errors"
)

// Ladder is an ordered word sequence: first the start word, last the end
// word, each consecutive pair differing in exactly one character position,
// and every intermediate word a dictionary member.
type Ladder []string

// Find runs a breadth-first search for the shortest ladder from start to
// end over the dictionary.
//
// The returned bool distinguishes the two normal outcomes: (ladder, true)
// when a ladder exists, (nil, false) when the words are simply not
// connected. A non-nil error means the search never ran: invalid input
// (code INVALID_INPUT) or a cancelled context.
//
// Start and end are always part of the search space, even when absent from
// the dictionary. When start == end after normalization the ladder is the
// single-element sequence.
//
// Ties among equally short ladders resolve by discovery order, which is
// fixed by the dictionary's word order; repeated calls with unchanged
// inputs return the same ladder.
func (d *Dictionary) Find(ctx context.Context, start, end string) (Ladder, bool, error) {
	start, end = Normalize(start), Normalize(end)

	if start == "" || end == "" {
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "start and end words cannot be empty")
	}
	if len(start) != len(end) {
		return nil, false, errors.New(errors.ErrCodeInvalidInput,
			"start word %q and end word %q have different lengths (%d vs %d)",
			start, end, len(start), len(end))
	}
	if d.wordLen != 0 && len(start) != d.wordLen {
		return nil, false, errors.New(errors.ErrCodeInvalidInput,
			"word %q has length %d, dictionary words have length %d",
			start, len(start), d.wordLen)
	}

	visited := map[string]struct{}{start: {}}
	frontier := []Ladder{{start}}

	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		default:
		}

		path := frontier[0]
		frontier = frontier[1:]
		current := path[len(path)-1]

		if current == end {
			return path, true, nil
		}

		for _, next := range d.expand(current, end) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}

			step := make(Ladder, len(path)+1)
			copy(step, path)
			step[len(path)] = next
			frontier = append(frontier, step)
		}
	}

	return nil, false, nil
}

// Reverse returns a new ladder with the word order flipped. One-letter
// edges are undirected, so the reverse of a valid ladder is a valid ladder
// from its end word to its start word.
func (l Ladder) Reverse() Ladder {
	out := make(Ladder, len(l))
	for i, w := range l {
		out[len(l)-1-i] = w
	}
	return out
}

// Steps returns the number of edges in the ladder.
func (l Ladder) Steps() int {
	if len(l) == 0 {
		return 0
	}
	return len(l) - 1
}

// expand lists the search successors of current: its dictionary neighbors,
// plus the end word itself when end is not a dictionary member but sits one
// letter away. The latter keeps start and end valid graph nodes regardless
// of dictionary membership.
func (d *Dictionary) expand(current, end string) []string {
	next := d.Neighbors(current)
	if _, ok := d.members[end]; !ok && current != end && hammingOne(current, end) {
		next = append(next, end)
	}
	return next
}

// hammingOne reports whether two equal-length words differ in exactly one
// character position.
func hammingOne(a, b string) bool {
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			if diff++; diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}
