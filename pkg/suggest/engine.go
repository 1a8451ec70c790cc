package suggest

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/bastiangx/wordcheck/internal/utils"
)

// Suggest returns the k words of store closest to query. A k of zero or
// less, or an empty store, yields an empty result.
func Suggest(query string, store Vocabulary, k int) []Suggestion {
	// Background is never cancelled, so the error is always nil.
	result, _ := rank(context.Background(), query, store, k, 0)
	return result
}

// SuggestContext is Suggest with a cancellation check between candidates.
func SuggestContext(ctx context.Context, query string, store Vocabulary, k int) ([]Suggestion, error) {
	return rank(ctx, query, store, k, 0)
}

// Engine applies a default limit and an optional distance cap.
type Engine struct {
	// Limit is used when a call does not pass its own. Zero means DefaultLimit.
	Limit int
	// MaxDistance drops candidates further than this. Zero disables the cap.
	MaxDistance int
}

// NewEngine returns an engine with the given limit and distance cap.
func NewEngine(limit, maxDistance int) Engine {
	return Engine{Limit: limit, MaxDistance: maxDistance}
}

// Suggest ranks with the engine's limit.
func (e Engine) Suggest(query string, store Vocabulary) []Suggestion {
	return e.SuggestN(query, store, e.limit())
}

// SuggestN ranks with an explicit limit.
func (e Engine) SuggestN(query string, store Vocabulary, k int) []Suggestion {
	result, _ := rank(context.Background(), query, store, k, e.MaxDistance)
	return result
}

// SuggestContext ranks with the engine's limit and honours ctx.
func (e Engine) SuggestContext(ctx context.Context, query string, store Vocabulary) ([]Suggestion, error) {
	return rank(ctx, query, store, e.limit(), e.MaxDistance)
}

func (e Engine) limit() int {
	if e.Limit <= 0 {
		return DefaultLimit
	}
	return e.Limit
}

func rank(ctx context.Context, query string, store Vocabulary, k, maxDistance int) ([]Suggestion, error) {
	if k <= 0 || store == nil {
		return []Suggestion{}, nil
	}
	words := store.AllKeys()
	if len(words) == 0 {
		return []Suggestion{}, nil
	}

	query = utils.Normalize(query)
	scored := make([]Suggestion, 0, len(words))
	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		word = utils.Normalize(word)
		d := Distance(query, word)
		if maxDistance > 0 && d > maxDistance {
			continue
		}
		scored = append(scored, Suggestion{Word: word, Distance: d})
	}

	slices.SortFunc(scored, func(a, b Suggestion) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})

	if len(scored) > k {
		scored = scored[:k:k]
	}
	return scored, nil
}
