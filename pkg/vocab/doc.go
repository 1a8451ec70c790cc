/*
Package vocab holds the vocabulary used for spell checking.

A Store maps case-normalized words to a payload, usually a short
definition. Stores are built once, either from a JSON document of the form

	{"cat": "a feline", "dog": "a canine"}

or from a literal map, and are never modified afterwards. That makes a
Store safe to share between goroutines without locking.

Reloading produces a new Store. A Holder keeps the store a session is
currently using and swaps it atomically, so readers in flight keep the
store they started with:

	holder := vocab.NewHolder(vocab.Empty())
	if err := holder.Reload("vocab.json"); err != nil {
		log.Warnf("running with empty vocabulary: %v", err)
	}
	holder.Current().Contains("Cat")

Load failures are reported as *LoadError values. Matching with errors.Is
against ErrNotFound or ErrMalformed tells the two apart; whether to carry
on with an empty store is left to the caller.
*/
package vocab
