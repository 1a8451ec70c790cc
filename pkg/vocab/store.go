package vocab

import (
	"slices"
	"sort"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Store is an immutable vocabulary keyed by normalized word.
type Store struct {
	entries map[string]string
	keys    []string
	index   *patricia.Trie
}

// Empty returns a store with no words.
func Empty() *Store {
	return newStore(map[string]string{})
}

// FromMap builds a store from a literal map. Keys are normalized; blank
// keys are dropped. When two keys normalize to the same word the
// lexicographically greatest original key wins, so the result does not
// depend on map iteration order.
func FromMap(words map[string]string) *Store {
	originals := make([]string, 0, len(words))
	for k := range words {
		originals = append(originals, k)
	}
	sort.Strings(originals)

	entries := make(map[string]string, len(words))
	for _, k := range originals {
		word := utils.Normalize(k)
		if word == "" {
			continue
		}
		entries[word] = words[k]
	}
	return newStore(entries)
}

// newStore takes ownership of entries, whose keys must already be normalized.
func newStore(entries map[string]string) *Store {
	keys := make([]string, 0, len(entries))
	index := patricia.NewTrie()
	for word, payload := range entries {
		keys = append(keys, word)
		index.Insert(patricia.Prefix(word), payload)
	}
	slices.Sort(keys)

	return &Store{
		entries: entries,
		keys:    keys,
		index:   index,
	}
}

// Contains reports whether word is in the vocabulary, ignoring case.
func (s *Store) Contains(word string) bool {
	word = utils.Normalize(word)
	if word == "" {
		return false
	}
	_, ok := s.entries[word]
	return ok
}

// Get returns the payload stored for word, ignoring case.
func (s *Store) Get(word string) (string, bool) {
	word = utils.Normalize(word)
	if word == "" {
		return "", false
	}
	payload, ok := s.entries[word]
	return payload, ok
}

// AllKeys returns every word in lexicographic order. The slice is a copy.
func (s *Store) AllKeys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of words.
func (s *Store) Len() int {
	return len(s.keys)
}

// WithPrefix returns up to limit words starting with prefix, sorted.
// A limit of zero or less returns every match.
func (s *Store) WithPrefix(prefix string, limit int) []string {
	prefix = utils.Normalize(prefix)
	if prefix == "" {
		if limit > 0 && limit < len(s.keys) {
			return slices.Clone(s.keys[:limit])
		}
		return s.AllKeys()
	}

	var words []string
	err := s.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting vocabulary subtree: %v", err)
		return nil
	}

	slices.Sort(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}
