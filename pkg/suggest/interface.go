/*
Package suggest ranks vocabulary words by edit distance to a query.

Every call scores the query against every word in the vocabulary with the
Levenshtein distance (unit cost insert, delete and substitute, no
transpositions) and keeps the k closest. Results are ordered by distance,
then by word, so the output does not depend on how the vocabulary stores
its keys:

	store := vocab.FromMap(map[string]string{"cat": "", "cot": "", "dog": ""})
	suggest.Suggest("cta", store, 2) // [{cat 2} {cot 2}]

The scan is O(V * L1 * L2) for V words of lengths L1 and L2. That is fine
for dictionaries of a few hundred thousand short words; larger vocabularies
need an index such as a BK-tree, which this package does not provide.
*/
package suggest

// Vocabulary is the set of candidate words. *vocab.Store satisfies it.
type Vocabulary interface {
	// AllKeys returns every normalized word.
	AllKeys() []string
}

// DefaultLimit is the number of suggestions returned when no limit is configured.
const DefaultLimit = 5

// Suggestion is a candidate word and its edit distance from the query.
type Suggestion struct {
	Word     string `json:"word" msgpack:"w"`
	Distance int    `json:"distance" msgpack:"d"`
}
