// Package cli handles cmd line input for spell checking, mainly for debugging and testing.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/pkg/checker"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Underline(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

const help = `commands:
  <text>            check the spelling of text
  :s <word> [n]     suggest up to n corrections for word
  :d <word>         show the definition of word
  :w [prefix]       list dictionary words
  :c <text>         count words against the budget
  :q                quit`

// InputHandler reads lines and prints spell-check results.
type InputHandler struct {
	checker      *checker.Checker
	suggestLimit int
	showDistance bool
	in           io.Reader
	out          *log.Logger
}

// NewInputHandler creates a handler reading from in and printing to out.
func NewInputHandler(c *checker.Checker, limit int, showDistance bool, in io.Reader, out io.Writer) *InputHandler {
	if limit <= 0 {
		limit = suggest.DefaultLimit
	}
	return &InputHandler{
		checker:      c,
		suggestLimit: limit,
		showDistance: showDistance,
		in:           in,
		out: log.NewWithOptions(out, log.Options{
			ReportTimestamp: false,
			Level:           log.GetLevel(),
		}),
	}
}

// Start begins the interface loop. It returns nil when the input ends or
// the user quits.
func (h *InputHandler) Start() error {
	h.out.Print("WordCheck CLI")
	h.out.Printf("%d words loaded, type :h for help (Ctrl+C to exit)", h.checker.Holder().Current().Len())

	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !h.handleInput(line) {
			return nil
		}
	}
	return scanner.Err()
}

// handleInput processes a single line. It returns false to stop the loop.
func (h *InputHandler) handleInput(line string) bool {
	if !strings.HasPrefix(line, ":") {
		h.check(line)
		return true
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case ":q", ":quit":
		return false
	case ":h", ":help":
		h.out.Print(help)
	case ":s", ":suggest":
		h.suggest(arg)
	case ":d", ":define":
		h.define(arg)
	case ":w", ":words":
		h.words(arg)
	case ":c", ":count":
		count := h.checker.WordCount(arg)
		h.out.Printf("Words: %d/%d", count.Words, count.Limit)
		if count.Over {
			h.out.Warn("Word budget exceeded")
		}
	default:
		h.out.Errorf("Unknown command: %s (type :h for help)", cmd)
	}
	return true
}

func (h *InputHandler) check(text string) {
	start := time.Now()
	misspelled := h.checker.Check(text)
	log.Debugf("Took [ %v ] to check %q", time.Since(start), text)

	if len(misspelled) == 0 {
		h.out.Print("No spelling errors found")
		return
	}

	h.out.Printf("Found %d misspelled words:", len(misspelled))
	for _, m := range misspelled {
		suggestions := m.Suggestions
		if suggestions == nil {
			suggestions = h.checker.SuggestN(m.Word, h.suggestLimit)
		}
		h.out.Printf("  %s [%d:%d] -> %s", errorStyle.Render(m.Word), m.Start, m.End, h.formatSuggestions(suggestions))
	}
}

func (h *InputHandler) suggest(arg string) {
	word, n, _ := strings.Cut(arg, " ")
	if word == "" {
		h.out.Error("Usage: :s <word> [n]")
		return
	}
	limit := h.suggestLimit
	if n != "" {
		if _, err := fmt.Sscanf(n, "%d", &limit); err != nil || limit < 1 {
			h.out.Errorf("Invalid count: %s", n)
			return
		}
	}

	if h.checker.Holder().Current().Contains(word) {
		h.out.Printf("%s is spelled correctly", wordStyle.Render(word))
	}
	suggestions := h.checker.SuggestN(word, limit)
	if len(suggestions) == 0 {
		h.out.Warnf("No suggestions found for '%s'", word)
		return
	}
	for i, s := range suggestions {
		h.out.Printf("%2d. %s", i+1, h.formatSuggestion(s))
	}
}

func (h *InputHandler) define(word string) {
	if word == "" {
		h.out.Error("Usage: :d <word>")
		return
	}
	definition, ok := h.checker.Define(word)
	if !ok {
		h.out.Warnf("%s: word not found in dictionary", word)
		return
	}
	h.out.Printf("%s: %s", wordStyle.Render(word), definition)
}

func (h *InputHandler) words(prefix string) {
	words := h.checker.Words(prefix, 0)
	if len(words) == 0 {
		h.out.Warnf("No dictionary words start with '%s'", prefix)
		return
	}
	h.out.Printf("Words in dictionary (%d): %s", len(words), strings.Join(words, ", "))
}

func (h *InputHandler) formatSuggestions(suggestions []suggest.Suggestion) string {
	if len(suggestions) == 0 {
		return dimStyle.Render("(no suggestions)")
	}
	parts := make([]string, len(suggestions))
	for i, s := range suggestions {
		parts[i] = h.formatSuggestion(s)
	}
	return strings.Join(parts, ", ")
}

func (h *InputHandler) formatSuggestion(s suggest.Suggestion) string {
	if !h.showDistance {
		return wordStyle.Render(s.Word)
	}
	return fmt.Sprintf("%s %s", wordStyle.Render(s.Word), dimStyle.Render(fmt.Sprintf("(%d)", s.Distance)))
}
