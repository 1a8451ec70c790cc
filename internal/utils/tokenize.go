package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a word found in a text, with byte offsets into that text.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize splits text into word tokens. Letters and digits form words;
// an apostrophe or hyphen is kept only when it sits between two word runes
// ("don't", "well-known"). Everything else separates tokens.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1

	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && isJoiner(r) {
			next, _ := utf8.DecodeRuneInString(text[i+utf8.RuneLen(r):])
			if isWordRune(next) {
				continue
			}
		}
		if start >= 0 {
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Start: start, End: len(text)})
	}
	return tokens
}

// CountWords counts whitespace separated words, the way a word-count label does.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}
