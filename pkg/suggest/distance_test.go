package suggest

import (
	"fmt"
	"testing"
	"unicode/utf8"
)

func TestDistanceKnownValues(t *testing.T) {
	testCases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "", 3},
		{"flaw", "lawn", 2},
		{"", "", 0},
		{"same", "same", 0},
		{"a", "b", 1},
		{"ab", "ba", 2}, // no transpositions
		{"saturday", "sunday", 3},
		{"gumbo", "gambol", 2},
		{"book", "back", 2},
		{"héllo", "hello", 1},
		{"日本語", "日本", 1},
		{"Cat", "cat", 1}, // Distance itself is case sensitive
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s", tc.a, tc.b), func(t *testing.T) {
			if got := Distance(tc.a, tc.b); got != tc.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestDistanceProperties(t *testing.T) {
	words := []string{
		"", "a", "ab", "abc", "kitten", "sitting", "flaw", "lawn",
		"intention", "execution", "apple", "apply", "ápple", "zebra",
	}

	for _, a := range words {
		if d := Distance(a, a); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", a, a, d)
		}
		for _, b := range words {
			ab, ba := Distance(a, b), Distance(b, a)
			if ab != ba {
				t.Errorf("Distance(%q, %q) = %d but Distance(%q, %q) = %d", a, b, ab, b, a, ba)
			}
			lower := utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
			if lower < 0 {
				lower = -lower
			}
			if ab < lower {
				t.Errorf("Distance(%q, %q) = %d, below length difference %d", a, b, ab, lower)
			}
			upper := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
			if ab > upper {
				t.Errorf("Distance(%q, %q) = %d, above longer length %d", a, b, ab, upper)
			}
		}
	}
}

func BenchmarkDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Distance("internationalization", "internationalisation")
	}
}
