package vocab

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromMapRoundTrip(t *testing.T) {
	store := FromMap(map[string]string{"cat": "a feline", "dog": "a canine"})

	if diff := cmp.Diff([]string{"cat", "dog"}, store.AllKeys()); diff != "" {
		t.Errorf("AllKeys() mismatch (-want +got):\n%s", diff)
	}

	got, ok := store.Get("CAT")
	if !ok || got != "a feline" {
		t.Errorf("Get(%q) = %q, %v; want %q, true", "CAT", got, ok, "a feline")
	}
}

func TestContainsIgnoresCase(t *testing.T) {
	store := FromMap(map[string]string{"Hello": "greeting", "world": ""})

	testCases := []struct {
		word string
		want bool
	}{
		{"hello", true},
		{"HELLO", true},
		{"HeLLo", true},
		{"  hello ", true},
		{"world", true},
		{"WORLD", true},
		{"worlds", false},
		{"", false},
		{"   ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			if got := store.Contains(tc.word); got != tc.want {
				t.Errorf("Contains(%q) = %v, want %v", tc.word, got, tc.want)
			}
			if got, lower := store.Contains(tc.word), store.Contains(strings.ToLower(tc.word)); got != lower {
				t.Errorf("Contains(%q) = %v but Contains(lower) = %v", tc.word, got, lower)
			}
		})
	}
}

func TestEveryKeyIsPresent(t *testing.T) {
	words := map[string]string{
		"apple":  "a fruit",
		"Banana": "another fruit",
		"cherry": "",
	}
	store := FromMap(words)

	for word, payload := range words {
		if !store.Contains(word) {
			t.Errorf("Contains(%q) = false, want true", word)
		}
		got, ok := store.Get(word)
		if !ok || got != payload {
			t.Errorf("Get(%q) = %q, %v; want %q, true", word, got, ok, payload)
		}
	}
	for _, key := range store.AllKeys() {
		if key != strings.ToLower(key) {
			t.Errorf("key %q is not lowercase", key)
		}
	}
}

func TestGetMissing(t *testing.T) {
	store := FromMap(map[string]string{"cat": "a feline"})
	if got, ok := store.Get("dog"); ok {
		t.Errorf("Get(%q) = %q, true; want not found", "dog", got)
	}
	if _, ok := store.Get(""); ok {
		t.Error("Get(\"\") found a value")
	}
}

func TestFromMapDuplicateKeys(t *testing.T) {
	store := FromMap(map[string]string{"Cat": "upper", "cat": "lower", "": "blank"})

	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}
	if got, _ := store.Get("cat"); got != "lower" {
		t.Errorf("Get(%q) = %q, want %q", "cat", got, "lower")
	}
}

func TestNormalizesUnicode(t *testing.T) {
	// "cafe" followed by a combining acute accent.
	store := FromMap(map[string]string{"café": "coffee"})

	if !store.Contains("CAFÉ") {
		t.Error("Contains(\"CAFÉ\") = false, want true")
	}
	if diff := cmp.Diff([]string{"café"}, store.AllKeys()); diff != "" {
		t.Errorf("AllKeys() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllKeysIsACopy(t *testing.T) {
	store := FromMap(map[string]string{"b": "", "a": ""})
	keys := store.AllKeys()
	keys[0] = "zzz"

	if diff := cmp.Diff([]string{"a", "b"}, store.AllKeys()); diff != "" {
		t.Errorf("store changed through AllKeys result (-want +got):\n%s", diff)
	}
}

func TestWithPrefix(t *testing.T) {
	store := FromMap(map[string]string{
		"car":    "",
		"card":   "",
		"care":   "",
		"cart":   "",
		"cat":    "",
		"dog":    "",
		"carbon": "",
	})

	testCases := []struct {
		name   string
		prefix string
		limit  int
		want   []string
	}{
		{"all matches", "car", 0, []string{"car", "carbon", "card", "care", "cart"}},
		{"limited", "CAR", 2, []string{"car", "carbon"}},
		{"single", "do", 0, []string{"dog"}},
		{"no match", "x", 0, nil},
		{"empty prefix", "", 3, []string{"car", "carbon", "card"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := store.WithPrefix(tc.prefix, tc.limit)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("WithPrefix(%q, %d) mismatch (-want +got):\n%s", tc.prefix, tc.limit, diff)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	store := Empty()
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
	if store.Contains("anything") {
		t.Error("empty store contains a word")
	}
	if got := store.AllKeys(); len(got) != 0 {
		t.Errorf("AllKeys() = %v, want empty", got)
	}
}
