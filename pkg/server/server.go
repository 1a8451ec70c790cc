package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/pkg/checker"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/vocab"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spell checking.
type Server struct {
	checker   *checker.Checker
	config    *config.Config
	vocabPath string
	dec       *msgpack.Decoder
	out       *bufio.Writer
	enc       *msgpack.Encoder
	logger    *log.Logger
	requests  int
}

// NewServer creates a server reading requests from r and writing
// responses to w. vocabPath is the file a reload request loads.
func NewServer(c *checker.Checker, cfg *config.Config, vocabPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	out := bufio.NewWriter(w)
	return &Server{
		checker:   c,
		config:    cfg,
		vocabPath: vocabPath,
		dec:       msgpack.NewDecoder(bufio.NewReader(r)),
		out:       out,
		enc:       msgpack.NewEncoder(out),
		logger:    logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready", Words: s.checker.Holder().Current().Len()}); err != nil {
		return err
	}

	for {
		// Decode the raw message first so a request with bad field types
		// does not desync the stream.
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requests)
				return nil
			}
			return fmt.Errorf("reading request: %w", err)
		}
		s.requests++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.logger.Error("Unmarshaling request", "err", err)
			if err := s.sendError("", "invalid request", CodeBadRequest); err != nil {
				return err
			}
			continue
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the action. The returned error is a write
// failure; request problems are reported to the client.
func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case ActionCheck:
		return s.handleCheck(req)
	case ActionSuggest:
		return s.handleSuggest(req)
	case ActionDefine:
		return s.handleDefine(req)
	case ActionWords:
		return s.handleWords(req)
	case ActionCount:
		count := s.checker.WordCount(req.Text)
		return s.send(CountResponse{ID: req.ID, Words: count.Words, Limit: count.Limit, Over: count.Over})
	case ActionReload:
		return s.handleReload(req)
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok", Words: s.checker.Holder().Current().Len()})
	case "":
		return s.sendError(req.ID, "missing action", CodeBadRequest)
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), CodeBadRequest)
	}
}

func (s *Server) handleCheck(req Request) error {
	start := time.Now()
	misspelled := s.checker.Check(req.Text)
	return s.send(CheckResponse{
		ID:           req.ID,
		Misspellings: misspelled,
		Count:        len(misspelled),
		TimeTaken:    time.Since(start).Microseconds(),
	})
}

func (s *Server) handleSuggest(req Request) error {
	if msg := validateWord(req.Word); msg != "" {
		s.logger.Debug("Rejected suggest request", "id", req.ID, "reason", msg)
		return s.sendError(req.ID, msg, CodeBadRequest)
	}

	start := time.Now()
	suggestions := s.checker.SuggestN(req.Word, s.config.ClampLimit(req.Limit))
	return s.send(SuggestResponse{
		ID:          req.ID,
		Word:        req.Word,
		Valid:       s.checker.Holder().Current().Contains(req.Word),
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) handleDefine(req Request) error {
	if msg := validateWord(req.Word); msg != "" {
		return s.sendError(req.ID, msg, CodeBadRequest)
	}
	definition, found := s.checker.Define(req.Word)
	return s.send(DefineResponse{ID: req.ID, Word: req.Word, Found: found, Definition: definition})
}

func (s *Server) handleWords(req Request) error {
	words := s.checker.Words(req.Prefix, req.Limit)
	return s.send(WordsResponse{
		ID:    req.ID,
		Words: words,
		Count: len(words),
		Total: s.checker.Holder().Current().Len(),
	})
}

func (s *Server) handleReload(req Request) error {
	if s.vocabPath == "" {
		return s.sendError(req.ID, "no vocabulary path configured", CodeBadRequest)
	}
	err := s.checker.Holder().Reload(s.vocabPath)
	switch {
	case err == nil:
		return s.send(StatusResponse{ID: req.ID, Status: "reloaded", Words: s.checker.Holder().Current().Len()})
	case errors.Is(err, vocab.ErrNotFound):
		return s.sendError(req.ID, err.Error(), CodeNotFound)
	case errors.Is(err, vocab.ErrMalformed):
		return s.sendError(req.ID, err.Error(), CodeUnprocessable)
	default:
		return s.sendError(req.ID, err.Error(), CodeInternal)
	}
}

func validateWord(word string) string {
	if word == "" {
		return "missing 'w' parameter"
	}
	if utf8.RuneCountInString(word) > MaxWordLength {
		return fmt.Sprintf("word exceeds maximum length of %d characters", MaxWordLength)
	}
	return ""
}

// send encodes one response and flushes it.
func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		s.logger.Error("Encoding response", "err", err)
		return fmt.Errorf("writing response: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
