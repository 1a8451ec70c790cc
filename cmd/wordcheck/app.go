package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/wordcheck/internal/cli"
	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/checker"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/server"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/bastiangx/wordcheck/pkg/vocab"
	"github.com/bastiangx/wordcheck/pkg/watch"
	"github.com/charmbracelet/log"
	urfave "github.com/urfave/cli/v2"
)

const (
	Version = "0.3.0"
	AppName = "wordcheck"
	gh      = "https://github.com/bastiangx/wordcheck"
)

func newApp() *urfave.App {
	return &urfave.App{
		Name:    AppName,
		Usage:   "Spell checking with edit-distance suggestions.",
		Version: Version,
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:    "dict",
				Aliases: []string{"f"},
				Usage:   "load the vocabulary from `FILE`",
			},
			&urfave.StringFlag{
				Name:  "config",
				Usage: "read configuration from `FILE`",
			},
			&urfave.BoolFlag{
				Name:    "cli",
				Aliases: []string{"c"},
				Usage:   "run the interactive CLI instead of the IPC server",
			},
			&urfave.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "number of suggestions per word (0 uses the config)",
			},
			&urfave.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "reload the vocabulary when the file changes",
			},
			&urfave.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "enable debug logging",
			},
		},
		HideHelpCommand: true,
		Action:          run,
	}
}

func init() {
	urfave.VersionPrinter = func(*urfave.Context) { printVersion() }
	urfave.VersionFlag = &urfave.BoolFlag{
		Name:               "version",
		Aliases:            []string{"V"},
		Usage:              "print version information and exit",
		DisableDefaultText: true,
	}
}

// run wires the packages together. It does not implement logic itself.
func run(c *urfave.Context) error {
	logger.Setup(c.Bool("debug"))

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		return err
	}

	cfg, configPath := config.LoadConfigWithPriority(c.String("config"), pathResolver.GetConfigPath("config.toml"))
	log.Debugf("Using config: %s", utils.GetAbsolutePath(configPath))

	dictPath := c.String("dict")
	if dictPath == "" {
		dictPath = cfg.Vocab.Path
	}
	dictPath = pathResolver.ResolveVocabPath(dictPath)

	holder := vocab.NewHolder(loadVocabulary(dictPath))

	limit := cfg.ClampLimit(c.Int("limit"))
	wordChecker := checker.New(holder, checker.Options{
		Engine:          suggest.NewEngine(limit, cfg.Suggest.MaxDistance),
		MaxWords:        cfg.Check.MaxWords,
		WithSuggestions: cfg.Check.Suggestions,
	})

	if c.Bool("watch") || cfg.Vocab.Watch {
		debounce := time.Duration(cfg.Vocab.ReloadDebounceMs) * time.Millisecond
		w, err := watch.New(dictPath, holder, debounce)
		if err != nil {
			log.Warnf("Vocabulary watcher disabled: %v", err)
		} else {
			defer w.Close()
			go w.Run(ctx)
		}
	}

	// Both loops block on stdin; closing it on shutdown lets them return.
	go func() {
		<-ctx.Done()
		os.Stdin.Close()
	}()

	// The CLI is mainly for testing and debugging; editors talk to the server.
	if c.Bool("cli") {
		handler := cli.NewInputHandler(wordChecker, limit, cfg.CLI.ShowDistance, os.Stdin, os.Stdout)
		return ignoreClosed(handler.Start())
	}

	showStartupInfo(dictPath, holder.Current().Len())
	srv := server.NewServer(wordChecker, cfg, dictPath, os.Stdin, os.Stdout)
	return ignoreClosed(srv.Start())
}

// loadVocabulary applies the degrade-gracefully policy: a missing or
// broken vocabulary is reported and replaced with an empty one.
func loadVocabulary(path string) *vocab.Store {
	store, err := vocab.Load(path)
	switch {
	case err == nil:
		log.Debugf("Loaded %d words from %s", store.Len(), path)
		return store
	case errors.Is(err, vocab.ErrNotFound):
		log.Warnf("No such vocabulary file %s, running with empty vocabulary", path)
	case errors.Is(err, vocab.ErrMalformed):
		log.Warnf("Error reading vocabulary %s, running with empty vocabulary: %v", path, err)
	default:
		log.Errorf("Loading vocabulary %s: %v", path, err)
	}
	return vocab.Empty()
}

func ignoreClosed(err error) error {
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}
