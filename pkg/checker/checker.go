// Package checker runs spell-check passes over text against the current vocabulary.
package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/bastiangx/wordcheck/pkg/vocab"
	"github.com/charmbracelet/log"
)

// DefaultMaxWords is the word budget shown next to the word count.
const DefaultMaxWords = 500

// Options configures a Checker.
type Options struct {
	// Engine ranks replacement candidates.
	Engine suggest.Engine
	// MaxWords is the word budget used by WordCount. Zero means DefaultMaxWords.
	MaxWords int
	// WithSuggestions attaches suggestions to every misspelling found by Check.
	WithSuggestions bool
}

// Misspelling is a token of the checked text that is not in the vocabulary.
// Start and End are byte offsets into the text.
type Misspelling struct {
	Word        string               `msgpack:"w"`
	Start       int                  `msgpack:"s"`
	End         int                  `msgpack:"e"`
	Suggestions []suggest.Suggestion `msgpack:"sg,omitempty"`
}

// Count is the result of WordCount.
type Count struct {
	Words int  `msgpack:"n"`
	Limit int  `msgpack:"l"`
	Over  bool `msgpack:"o"`
}

// Checker checks text against the store held by a vocab.Holder. Each call
// reads the holder once, so a reload mid-pass does not mix vocabularies.
type Checker struct {
	holder          *vocab.Holder
	engine          suggest.Engine
	maxWords        int
	withSuggestions bool
}

// New creates a Checker reading from holder.
func New(holder *vocab.Holder, opts Options) *Checker {
	maxWords := opts.MaxWords
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	return &Checker{
		holder:          holder,
		engine:          opts.Engine,
		maxWords:        maxWords,
		withSuggestions: opts.WithSuggestions,
	}
}

// Holder returns the vocabulary holder the checker reads from.
func (c *Checker) Holder() *vocab.Holder {
	return c.holder
}

// Check returns every misspelled token of text in order of appearance.
func (c *Checker) Check(text string) []Misspelling {
	// Background is never cancelled.
	result, _ := c.CheckContext(context.Background(), text)
	return result
}

// CheckContext is Check with cancellation between tokens.
func (c *Checker) CheckContext(ctx context.Context, text string) ([]Misspelling, error) {
	start := time.Now()
	store := c.holder.Current()
	tokens := utils.Tokenize(text)

	var cache map[string][]suggest.Suggestion
	if c.withSuggestions {
		cache = make(map[string][]suggest.Suggestion)
	}

	misspelled := []Misspelling{}
	for _, tok := range tokens {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if utils.IsOnlyNumbers(tok.Text) || store.Contains(tok.Text) {
			continue
		}

		m := Misspelling{Word: tok.Text, Start: tok.Start, End: tok.End}
		if c.withSuggestions {
			key := utils.Normalize(tok.Text)
			suggestions, ok := cache[key]
			if !ok {
				var err error
				suggestions, err = c.engine.SuggestContext(ctx, key, store)
				if err != nil {
					return nil, err
				}
				cache[key] = suggestions
			}
			m.Suggestions = suggestions
		}
		misspelled = append(misspelled, m)
	}

	log.Debugf("Checked %d tokens, %d misspelled in %v", len(tokens), len(misspelled), time.Since(start))
	return misspelled, nil
}

// Suggest returns replacement candidates for word.
func (c *Checker) Suggest(word string) []suggest.Suggestion {
	return c.engine.Suggest(word, c.holder.Current())
}

// SuggestN returns up to limit replacement candidates for word.
func (c *Checker) SuggestN(word string, limit int) []suggest.Suggestion {
	return c.engine.SuggestN(word, c.holder.Current(), limit)
}

// Define looks up the payload stored for word. What to show for a missing
// word is up to the caller.
func (c *Checker) Define(word string) (string, bool) {
	return c.holder.Current().Get(word)
}

// Words lists vocabulary words starting with prefix, sorted. An empty
// prefix lists everything.
func (c *Checker) Words(prefix string, limit int) []string {
	return c.holder.Current().WithPrefix(prefix, limit)
}

// WordCount counts whitespace separated words against the word budget.
func (c *Checker) WordCount(text string) Count {
	n := utils.CountWords(text)
	return Count{Words: n, Limit: c.maxWords, Over: n > c.maxWords}
}

// Replace returns text with the misspelled token replaced. It fails when
// the offsets no longer point at the token, e.g. after the text was edited.
func Replace(text string, m Misspelling, replacement string) (string, error) {
	if m.Start < 0 || m.End < m.Start || m.End > len(text) {
		return "", fmt.Errorf("offsets [%d:%d] out of range for text of length %d", m.Start, m.End, len(text))
	}
	if text[m.Start:m.End] != m.Word {
		return "", fmt.Errorf("text at [%d:%d] is %q, not %q", m.Start, m.End, text[m.Start:m.End], m.Word)
	}
	return text[:m.Start] + replacement + text[m.End:], nil
}
