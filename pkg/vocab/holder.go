package vocab

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Holder owns the store a session is currently using. Readers call Current
// and keep using the returned store for the whole operation; writers
// replace it wholesale.
type Holder struct {
	current atomic.Pointer[Store]
}

// NewHolder returns a holder serving store. A nil store is replaced by Empty.
func NewHolder(store *Store) *Holder {
	h := &Holder{}
	h.Swap(store)
	return h
}

// Current returns the active store. It is never nil.
func (h *Holder) Current() *Store {
	return h.current.Load()
}

// Swap installs store and returns the previous one.
func (h *Holder) Swap(store *Store) *Store {
	if store == nil {
		store = Empty()
	}
	return h.current.Swap(store)
}

// Reload loads path and swaps the result in. On failure the active store
// is left untouched and the *LoadError is returned.
func (h *Holder) Reload(path string) error {
	store, err := Load(path)
	if err != nil {
		log.Warnf("Keeping current vocabulary (%d words): %v", h.Current().Len(), err)
		return err
	}
	prev := h.Swap(store)
	log.Debugf("Vocabulary swapped: %d -> %d words", prev.Len(), store.Len())
	return nil
}
