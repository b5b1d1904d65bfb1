package errors

import (
	"strings"
	"unicode"
)

// maxWordLength bounds accepted word lengths. Real word lists top out far
// below this; anything longer is almost certainly malformed input.
const maxWordLength = 64

// ValidateWord validates a search word before it reaches the core.
//
// The validation rules are intentionally conservative:
//   - No empty words
//   - Maximum length of 64 characters
//   - Letters only (the ladder alphabet)
//
// Case is not checked here; callers normalize case separately.
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidWord, "word cannot be empty")
	}

	if len(word) > maxWordLength {
		return New(ErrCodeInvalidWord, "word too long (max %d characters)", maxWordLength)
	}

	for _, r := range word {
		if !unicode.IsLetter(r) {
			return New(ErrCodeInvalidWord, "word %q contains non-letter character %q", word, r)
		}
	}

	return nil
}

// ValidateOutputPath validates a result file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "output path cannot contain path traversal sequences (..)")
	}

	return nil
}
