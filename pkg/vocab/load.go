package vocab

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

// Load reads a JSON vocabulary file. The document must be a single object
// whose values are strings (or null, stored as an empty payload). Keys that
// normalize to the same word are last-write-wins in document order.
func Load(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, notFound(path, err)
	}
	defer file.Close()

	return LoadReader(path, file)
}

// LoadReader reads a JSON vocabulary from r. name is only used in errors
// and logs.
func LoadReader(name string, r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, notFound(name, err)
	}

	entries, err := decodeObject(data)
	if err != nil {
		return nil, malformed(name, err)
	}

	store := newStore(entries)
	log.Debugf("Loaded %d words from %s", store.Len(), name)
	return store, nil
}

// decodeObject walks the document token by token so duplicate keys resolve
// in the order they were written, which unmarshaling into a map would not
// guarantee after normalization.
func decodeObject(data []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, found %v", tok)
	}

	entries := make(map[string]string)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, found %v", tok)
		}

		var value *string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("value for %q: %w", key, err)
		}

		word := utils.Normalize(key)
		if word == "" {
			continue
		}
		if value == nil {
			entries[word] = ""
			continue
		}
		entries[word] = *value
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after object")
	}
	return entries, nil
}
