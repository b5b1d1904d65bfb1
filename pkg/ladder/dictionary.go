package ladder

import "strings"

// wildcard replaces one letter position in an index pattern.
const wildcard = '*'

// Dictionary is an immutable, case-normalized set of candidate words.
//
// Construction lowercases every word, drops duplicates (first occurrence
// wins), and records insertion order. The order matters: it fixes the
// enumeration order of [Dictionary.Neighbors], which in turn fixes which of
// several equally short ladders [Dictionary.Find] returns.
type Dictionary struct {
	words    []string            // insertion order, deduplicated
	members  map[string]struct{} // membership lookups
	patterns map[string][]string // wildcard pattern -> words, insertion order
	wordLen  int                 // uniform word length, 0 when lengths are mixed
}

// New builds a Dictionary from words.
//
// Words are lowercased and trimmed of surrounding whitespace; blanks and
// duplicates are dropped. Words of differing lengths may coexist: they end
// up in disjoint index buckets and never influence each other's searches.
func New(words []string) *Dictionary {
	d := &Dictionary{
		words:    make([]string, 0, len(words)),
		members:  make(map[string]struct{}, len(words)),
		patterns: make(map[string][]string),
		wordLen:  -1,
	}

	for _, w := range words {
		w = Normalize(w)
		if w == "" {
			continue
		}
		if _, ok := d.members[w]; ok {
			continue
		}
		d.members[w] = struct{}{}
		d.words = append(d.words, w)

		switch d.wordLen {
		case -1:
			d.wordLen = len(w)
		case len(w):
		default:
			d.wordLen = 0 // mixed lengths, no single expectation
		}

		// Index the word under each of its L wildcard patterns. Two words
		// share a pattern exactly when they differ in at most that one
		// position, so a Neighbors lookup is L bucket scans.
		for i := 0; i < len(w); i++ {
			p := pattern(w, i)
			d.patterns[p] = append(d.patterns[p], w)
		}
	}

	if d.wordLen == -1 {
		d.wordLen = 0
	}
	return d
}

// Normalize maps a word to its canonical lowercase form.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Contains reports whether word (after normalization) is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.members[Normalize(word)]
	return ok
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// WordLength returns the uniform length of the dictionary's words, or 0 when
// the dictionary is empty or holds words of several lengths.
func (d *Dictionary) WordLength() int {
	return d.wordLen
}

// Words returns the dictionary's words in insertion order.
// The returned slice is a copy and may be modified freely.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Neighbors returns every dictionary word at Hamming distance exactly 1 from
// word: same length, different in exactly one character position. The query
// word itself is never included, whether or not it is in the dictionary.
//
// Results follow wildcard-position order, then dictionary insertion order.
// An empty result is a valid outcome, not an error. Neighbors is pure: it
// never mutates the dictionary and allocates a fresh slice per call.
func (d *Dictionary) Neighbors(word string) []string {
	word = Normalize(word)
	if word == "" {
		return nil
	}

	var out []string
	for i := 0; i < len(word); i++ {
		for _, w := range d.patterns[pattern(word, i)] {
			// Bucket i holds words agreeing with the query everywhere
			// except position i, so equality is the only exclusion and a
			// word can appear in at most one bucket of this query.
			if w != word {
				out = append(out, w)
			}
		}
	}
	return out
}

// pattern returns word with position i blanked, the index key for all words
// differing from word at most at position i.
func pattern(word string, i int) string {
	b := []byte(word)
	b[i] = wildcard
	return string(b)
}
