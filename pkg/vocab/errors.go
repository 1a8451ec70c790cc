package vocab

import (
	"errors"
	"fmt"
)

// Kind classifies a load failure.
type Kind int

const (
	// KindNotFound means the source could not be opened or read.
	KindNotFound Kind = iota + 1
	// KindMalformed means the source is not a JSON object of strings.
	KindMalformed
)

var (
	// ErrNotFound matches load errors of KindNotFound.
	ErrNotFound = errors.New("vocabulary not found")
	// ErrMalformed matches load errors of KindMalformed.
	ErrMalformed = errors.New("malformed vocabulary")
)

// LoadError is returned by Load and LoadReader.
type LoadError struct {
	Kind   Kind
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load %s: %v", e.Source, e.sentinel())
	}
	return fmt.Sprintf("load %s: %v: %v", e.Source, e.sentinel(), e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.Err}
}

func (e *LoadError) sentinel() error {
	if e.Kind == KindMalformed {
		return ErrMalformed
	}
	return ErrNotFound
}

func notFound(source string, err error) error {
	return &LoadError{Kind: KindNotFound, Source: source, Err: err}
}

func malformed(source string, err error) error {
	return &LoadError{Kind: KindMalformed, Source: source, Err: err}
}
