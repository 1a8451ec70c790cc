package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical dictionary form of a word: trimmed,
// lowercased and NFC composed so that "café" typed with a combining accent
// matches the precomposed key.
func Normalize(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return norm.NFC.String(strings.ToLower(word))
}
