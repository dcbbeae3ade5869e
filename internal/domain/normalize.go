package domain

import (
	"strings"
)

// DeriveID builds the identifier used for recency deduplication:
// the word trimmed and lowercased.
//
// Diacritics, punctuation and inner whitespace are preserved, so near-duplicate
// spellings ("resume" and "résumé") produce different ids.
func DeriveID(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
