package wordio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ytkachuk12/wordgraph/pkg/errors"
	"github.com/ytkachuk12/wordgraph/pkg/ladder"
)

// ReadWords decodes a newline-delimited word list from r.
//
// Each line is trimmed and lowercased. Blank lines and lines containing
// non-letter characters are skipped rather than rejected: real word lists
// carry headers, counts, and stray punctuation, and a skipped line cannot
// affect a search it was never valid for. Length filtering is deliberately
// NOT done here; words of inert lengths are harmless to the search and the
// loader has no start word to filter against.
//
// File order is preserved. ReadWords does not close r.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := ladder.Normalize(scanner.Text())
		if w == "" {
			continue
		}
		if err := errors.ValidateWord(w); err != nil {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}

	return words, nil
}

// ImportWords reads the word list file at path and returns its words.
//
// A missing or unreadable file is a FILE_NOT_FOUND error; the caller (the
// CLI shell) turns that into a non-zero exit. The error wraps the
// underlying cause with the file path for context.
func ImportWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot read dictionary file %s", path)
	}
	defer f.Close()
	return ReadWords(f)
}

// ImportDictionary is a convenience wrapper combining [ImportWords] and
// [ladder.New].
func ImportDictionary(path string) (*ladder.Dictionary, error) {
	words, err := ImportWords(path)
	if err != nil {
		return nil, err
	}
	return ladder.New(words), nil
}
