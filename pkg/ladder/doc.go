// Package ladder implements word-ladder search: finding the shortest
// transformation sequence between two equal-length words where each step
// changes exactly one letter and every intermediate word belongs to a
// supplied dictionary.
//
// # Architecture
//
// The package has two moving parts, composed sequentially:
//
//   - Neighbor oracle: [Dictionary.Neighbors] produces the dictionary words
//     at Hamming distance 1 from a query word, using a wildcard-pattern
//     index ("c_t" with one position blanked) built once at construction.
//   - Path finder: [Dictionary.Find] runs an unweighted breadth-first
//     search from start to end, expanding edges lazily through the oracle.
//     The graph is never materialized.
//
// # Determinism
//
// A Dictionary preserves the order in which words were supplied (typically
// file order). Neighbors are enumerated by wildcard position, then by that
// insertion order, so repeated searches over the same input always return
// the same ladder even when several shortest ladders exist.
//
// # Case handling
//
// All words are compared after lowercasing. "Fore" and "fore" are the same
// word everywhere in this package.
//
// # Concurrency
//
// A Dictionary is immutable after construction. Every [Dictionary.Find]
// invocation owns its visited set and frontier, so concurrent searches over
// one Dictionary need no locking.
//
// # Usage
//
//	d := ladder.New([]string{"cat", "cot", "cog", "dog"})
//	path, found, err := d.Find(ctx, "cat", "dog")
//	if err != nil {
//	    return err // invalid input, not a failed search
//	}
//	if !found {
//	    fmt.Println("no path found")
//	    return nil
//	}
//	fmt.Println(strings.Join(path, " -> "))
package ladder
