/*
Package server implements msgpack IPC for spell-checking services.

Clients write a stream of msgpack maps to stdin and read one response map
per request from stdout. Every request carries an ID that is echoed back
and an action:

	{"id": "1", "a": "check", "t": "Teh cat sat"}
	{"id": "2", "a": "suggest", "w": "teh", "l": 3}
	{"id": "3", "a": "define", "w": "cat"}
	{"id": "4", "a": "words", "p": "ca", "l": 20}
	{"id": "5", "a": "count", "t": "some text"}
	{"id": "6", "a": "reload"}
	{"id": "7", "a": "health"}

A check response lists misspelled tokens with byte offsets into the text
and, when enabled in the config, their suggestions:

	{"id": "1", "m": [{"w": "Teh", "s": 0, "e": 3, "sg": [{"w": "the", "d": 2}]}], "c": 1, "t": 85}

Suggestions are ordered by edit distance, then alphabetically. Times are
in microseconds. Failures use {"id", "e", "c"} with an HTTP-like code.

The server sends {"status": "ready"} once before reading requests.
*/
package server

import (
	"github.com/bastiangx/wordcheck/pkg/checker"
	"github.com/bastiangx/wordcheck/pkg/suggest"
)

// Request actions.
const (
	ActionCheck   = "check"
	ActionSuggest = "suggest"
	ActionDefine  = "define"
	ActionWords   = "words"
	ActionCount   = "count"
	ActionReload  = "reload"
	ActionHealth  = "health"
)

// Error codes.
const (
	CodeBadRequest    = 400
	CodeNotFound      = 404
	CodeUnprocessable = 422
	CodeInternal      = 500
)

// MaxWordLength bounds words accepted by suggest and define.
const MaxWordLength = 64

// Request is a single client message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Word   string `msgpack:"w,omitempty"`
	Text   string `msgpack:"t,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CheckResponse answers a check request.
type CheckResponse struct {
	ID           string                `msgpack:"id"`
	Misspellings []checker.Misspelling `msgpack:"m"`
	Count        int                   `msgpack:"c"`
	TimeTaken    int64                 `msgpack:"t"`
}

// SuggestResponse answers a suggest request. Valid tells whether the word
// itself is in the vocabulary.
type SuggestResponse struct {
	ID          string               `msgpack:"id"`
	Word        string               `msgpack:"w"`
	Valid       bool                 `msgpack:"v"`
	Suggestions []suggest.Suggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"`
}

// DefineResponse answers a define request.
type DefineResponse struct {
	ID         string `msgpack:"id"`
	Word       string `msgpack:"w"`
	Found      bool   `msgpack:"f"`
	Definition string `msgpack:"d,omitempty"`
}

// WordsResponse lists vocabulary words.
type WordsResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"s"`
	Count int      `msgpack:"c"`
	Total int      `msgpack:"n"`
}

// CountResponse answers a count request.
type CountResponse struct {
	ID    string `msgpack:"id"`
	Words int    `msgpack:"n"`
	Limit int    `msgpack:"l"`
	Over  bool   `msgpack:"o"`
}

// StatusResponse answers health and reload requests and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
