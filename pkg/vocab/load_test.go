package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "vocab.json", `{"Cat": "a feline", "dog": "a canine", "emu": null}`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"cat", "dog", "emu"}, store.AllKeys()); diff != "" {
		t.Errorf("AllKeys() mismatch (-want +got):\n%s", diff)
	}
	if got, _ := store.Get("cat"); got != "a feline" {
		t.Errorf("Get(%q) = %q, want %q", "cat", got, "a feline")
	}
	if got, ok := store.Get("emu"); !ok || got != "" {
		t.Errorf("Get(%q) = %q, %v; want empty payload, true", "emu", got, ok)
	}
}

func TestLoadDuplicatesLastWriteWins(t *testing.T) {
	store, err := LoadReader("dup", strings.NewReader(`{"cat": "first", "CAT": "second"}`))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if got, _ := store.Get("cat"); got != "second" {
		t.Errorf("Get(%q) = %q, want %q", "cat", got, "second")
	}
}

func TestLoadEmptyObject(t *testing.T) {
	store, err := LoadReader("empty", strings.NewReader(" {} \n"))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestLoadNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	store, err := Load(path)
	if store != nil {
		t.Errorf("Load() store = %v, want nil", store)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want wrapped os.ErrNotExist", err)
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load() error %T is not *LoadError", err)
	}
	if loadErr.Kind != KindNotFound || loadErr.Source != path {
		t.Errorf("LoadError = {%v, %q}, want {%v, %q}", loadErr.Kind, loadErr.Source, KindNotFound, path)
	}
}

func TestLoadMalformed(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"not json", "cat = a feline"},
		{"array", `["cat", "dog"]`},
		{"string", `"cat"`},
		{"number value", `{"cat": 1}`},
		{"object value", `{"cat": {"def": "a feline"}}`},
		{"array value", `{"cat": ["a feline"]}`},
		{"truncated", `{"cat": "a feline"`},
		{"trailing data", `{"cat": "a feline"} {}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "vocab.json", tc.content)
			_, err := Load(path)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("Load() error = %v, want ErrMalformed", err)
			}
			if errors.Is(err, ErrNotFound) {
				t.Errorf("Load() error = %v also matches ErrNotFound", err)
			}
		})
	}
}
