package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[vocab]
path = "/srv/words.json"
watch = true

[suggest]
default_limit = 8
max_limit = 20
max_distance = 3

[check]
max_words = 1000
suggestions = false
`)

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := DefaultConfig()
	want.Vocab.Path = "/srv/words.json"
	want.Vocab.Watch = true
	want.Suggest = SuggestConfig{DefaultLimit: 8, MaxLimit: 20, MaxDistance: 3}
	want.Check = CheckConfig{MaxWords: 1000, Suggestions: false}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := writeConfig(t, `
[suggest]
default_limit = "ten"
max_limit = 30

[check]
max_words = 42
`)

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got.Suggest.MaxLimit != 30 {
		t.Errorf("MaxLimit = %d, want 30", got.Suggest.MaxLimit)
	}
	if got.Suggest.DefaultLimit != DefaultConfig().Suggest.DefaultLimit {
		t.Errorf("DefaultLimit = %d, want default", got.Suggest.DefaultLimit)
	}
	if got.Check.MaxWords != 42 {
		t.Errorf("MaxWords = %d, want 42", got.Check.MaxWords)
	}
}

func TestLoadConfigGarbage(t *testing.T) {
	path := writeConfig(t, "this is [not toml")

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigSanitizes(t *testing.T) {
	path := writeConfig(t, `
[suggest]
default_limit = 100
max_limit = 10
max_distance = -2

[check]
max_words = 0
`)

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := SuggestConfig{DefaultLimit: 5, MaxLimit: 10, MaxDistance: 0}
	if diff := cmp.Diff(want, got.Suggest); diff != "" {
		t.Errorf("Suggest mismatch (-want +got):\n%s", diff)
	}
	if got.Check.MaxWords != 500 {
		t.Errorf("MaxWords = %d, want 500", got.Check.MaxWords)
	}
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	got, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), got); diff != "" {
		t.Errorf("InitConfig() mismatch (-want +got):\n%s", diff)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() on created file error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), reloaded); diff != "" {
		t.Errorf("saved config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigWithPriority(t *testing.T) {
	custom := writeConfig(t, "[check]\nmax_words = 7\n")
	defaultPath := filepath.Join(t.TempDir(), "config.toml")

	got, from := LoadConfigWithPriority(custom, defaultPath)
	if from != custom || got.Check.MaxWords != 7 {
		t.Errorf("custom config: from = %q, MaxWords = %d", from, got.Check.MaxWords)
	}

	missing := filepath.Join(t.TempDir(), "missing.toml")
	got, from = LoadConfigWithPriority(missing, defaultPath)
	if from != defaultPath {
		t.Errorf("fallback from = %q, want %q", from, defaultPath)
	}
	if diff := cmp.Diff(DefaultConfig(), got); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}

	got, from = LoadConfigWithPriority("", "")
	if from != "" {
		t.Errorf("builtin from = %q, want empty", from)
	}
	if diff := cmp.Diff(DefaultConfig(), got); diff != "" {
		t.Errorf("builtin mismatch (-want +got):\n%s", diff)
	}
}

func TestClampLimit(t *testing.T) {
	c := DefaultConfig()
	testCases := map[int]int{-1: 5, 0: 5, 3: 3, 64: 64, 1000: 64}
	for in, want := range testCases {
		if got := c.ClampLimit(in); got != want {
			t.Errorf("ClampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}
