// Package watch reloads the vocabulary when its file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/pkg/vocab"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a vocab.Holder from path whenever the file is written,
// created or moved into place. Bursts of events within the debounce
// window produce a single reload.
type Watcher struct {
	path     string
	holder   *vocab.Holder
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   *log.Logger

	// OnReload, if set, is called after every reload attempt with its result.
	OnReload func(error)

	mu      sync.Mutex
	pending bool
}

// New watches the directory containing path. The directory is watched
// rather than the file so editors that replace the file on save are seen.
func New(path string, holder *vocab.Holder, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		path:     abs,
		holder:   holder,
		fsw:      fsw,
		debounce: debounce,
		logger:   logger.New("watch"),
	}, nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	w.logger.Debug("Watching vocabulary", "path", w.path, "debounce", w.debounce)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "err", err)

		case <-ticker.C:
			w.flush()
		}
	}
}

// Close stops watching. Run returns once the event channels close.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	w.pending = true
	w.mu.Unlock()
	w.logger.Debug("Vocabulary change detected", "op", event.Op.String())
}

// flush reloads once if any relevant event arrived since the last tick.
func (w *Watcher) flush() {
	w.mu.Lock()
	pending := w.pending
	w.pending = false
	w.mu.Unlock()
	if !pending {
		return
	}

	err := w.holder.Reload(w.path)
	if err == nil {
		w.logger.Info("Vocabulary reloaded", "words", w.holder.Current().Len())
	}
	if w.OnReload != nil {
		w.OnReload(err)
	}
}
