package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// logLevelEnv selects the log level, e.g. SNAKE_LOG_LEVEL=debug.
const logLevelEnv = "SNAKE_LOG_LEVEL"

func runGame(cmd *cobra.Command, opts options) error {
	logger := newLogger()

	cfg := config.Load()
	if opts.moreHazards {
		cfg = cfg.WithMoreHazards()
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	width, height := cfg.WindowSize()
	term := tui.NewTerminal(width, height,
		tui.WithRefreshRate(cfg.Timing.RefreshRate),
		tui.WithLogger(logger),
	)

	keys := game.DefaultKeyMap()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := game.NewState(cfg, term, keys, rng, logger)
	loop := game.NewLoop(cfg, state, term, game.SystemClock{}, keys, logger)

	g, gctx := errgroup.WithContext(ctx)
	gameCtx, cancelGame := context.WithCancel(gctx)
	defer cancelGame()

	g.Go(func() error {
		// The game can't continue without its terminal.
		defer cancelGame()
		return term.Run()
	})
	g.Go(func() error {
		defer term.Close()
		if err := loop.Run(gameCtx); err != nil {
			return errors.Wrap(err, "snake")
		}
		return nil
	})

	return g.Wait()
}

// newLogger writes to stderr so log lines stay out of the rendered frames.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if lvl, err := log.ParseLevel(os.Getenv(logLevelEnv)); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
