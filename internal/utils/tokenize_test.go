package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []Token
	}{
		{"empty", "", nil},
		{"spaces only", "   \n\t", nil},
		{"simple", "hello world", []Token{{"hello", 0, 5}, {"world", 6, 11}}},
		{"punctuation", "Hi, there!", []Token{{"Hi", 0, 2}, {"there", 4, 9}}},
		{"apostrophe", "don't stop", []Token{{"don't", 0, 5}, {"stop", 6, 10}}},
		{"trailing apostrophe", "dogs' toys", []Token{{"dogs", 0, 4}, {"toys", 6, 10}}},
		{"hyphen", "well-known -dash", []Token{{"well-known", 0, 10}, {"dash", 12, 16}}},
		{"digits", "route 66", []Token{{"route", 0, 5}, {"66", 6, 8}}},
		{"unicode", "naïve café", []Token{{"naïve", 0, 6}, {"café", 7, 12}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.text)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tc.text, diff)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	if got := CountWords("  a b\n\nc  "); got != 3 {
		t.Errorf("CountWords() = %d, want 3", got)
	}
	if got := CountWords(""); got != 0 {
		t.Errorf("CountWords(\"\") = %d, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	testCases := map[string]string{
		"Hello":       "hello",
		"  WORLD  ":   "world",
		"":            "",
		"   ":         "",
		"CAF\u00c9":   "caf\u00e9",
		"cafe\u0301":  "caf\u00e9",
		"Stra\u00dfe": "stra\u00dfe",
	}
	for in, want := range testCases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
