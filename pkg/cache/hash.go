package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash computes the SHA-256 content hash of data as a 64-char hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashWords computes the content hash of a word list in order.
// Order is included deliberately: word order determines ladder tie-breaking,
// so two files with the same words in different order are different inputs.
func HashWords(words []string) string {
	return Hash([]byte(strings.Join(words, "\n")))
}
