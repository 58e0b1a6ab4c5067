package game

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Phase is the loop's state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// terminatingMessage is the last thing shown before the loop returns.
const terminatingMessage = "Terminating game..."

// Loop drives a game: it polls keys, moves the snake on its own cadence and
// handles game over, restart and quit. All game state is touched from the
// goroutine calling Run.
type Loop struct {
	state  *State
	term   Terminal
	clock  Clock
	keys   KeyMap
	cfg    config.Config
	logger *log.Logger

	phase    Phase
	pending  Direction // Direction for the next move
	nextMove time.Time
}

// NewLoop creates a loop around state.
func NewLoop(cfg config.Config, state *State, term Terminal, clock Clock, keys KeyMap, logger *log.Logger) *Loop {
	if logger == nil {
		logger = state.logger
	}
	return &Loop{
		state:  state,
		term:   term,
		clock:  clock,
		keys:   keys,
		cfg:    cfg,
		logger: logger,
	}
}

// Phase returns the current phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Run prepares the terminal, shows the instructions and plays until the
// player quits or ctx is cancelled. Cancellation goes through the same
// termination path as quitting, so the termination message is always shown.
// Returns nil after a normal termination.
func (l *Loop) Run(ctx context.Context) error {
	l.setup()

	if err := l.state.Reset(ctx, true); err != nil {
		if !errors.Is(err, ErrInterrupted) {
			return err
		}
		l.phase = PhaseTerminated
	} else {
		l.start()
	}

	for {
		switch l.phase {
		case PhasePlaying:
			l.tick(ctx)
		case PhaseGameOver:
			if err := l.awaitRestart(ctx); err != nil {
				return err
			}
		case PhaseTerminated:
			l.terminate()
			return nil
		}
	}
}

// setup titles the window, hides the cursor and makes sure the board and
// message area fit.
func (l *Loop) setup() {
	l.term.SetTitle(l.cfg.Title)
	l.term.SetCursorVisible(false)

	minW, minH := l.cfg.WindowSize()
	w, h := l.term.WindowSize()
	if w < minW || h < minH {
		newW, newH := max(w, minW), max(h, minH)
		l.logger.Debug("growing window", "from", []int{w, h}, "to", []int{newW, newH})
		l.term.SetWindowSize(newW, newH)
	}
}

// start enters the playing phase with the snake's current heading.
func (l *Loop) start() {
	l.phase = PhasePlaying
	l.pending = l.state.Snake().Direction()
}

// tick runs one poll of the playing phase.
func (l *Loop) tick(ctx context.Context) {
	// Only the last steering key of the batch counts.
	for _, k := range l.term.ReadAvailableKeys() {
		if key.Matches(k, l.keys.Interrupt) {
			l.phase = PhaseTerminated
			return
		}
		if dir, ok := l.keys.Steer(k); ok {
			l.pending = dir
		}
	}

	now := l.clock.Now()
	if !now.Before(l.nextMove) {
		if !l.state.Snake().Move(l.pending) {
			l.phase = PhaseGameOver
			l.logger.Debug("game over", "round", l.state.Round(), "score", l.state.Score(),
				"head", l.state.Snake().Head())
		} else {
			l.nextMove = now.Add(l.cfg.Timing.StepInterval)
		}
	}

	l.state.DisplayScore()

	if err := l.clock.Sleep(ctx, l.cfg.Timing.PollInterval); err != nil {
		l.phase = PhaseTerminated
	}
}

// awaitRestart shows the game over message and waits for restart or quit.
func (l *Loop) awaitRestart(ctx context.Context) error {
	l.state.DisplayMessage(l.keys.gameOverMessage())
	for {
		k, err := l.term.ReadKey(ctx)
		if err != nil {
			l.phase = PhaseTerminated
			return nil
		}

		switch {
		case key.Matches(k, l.keys.Interrupt), key.Matches(k, l.keys.Quit):
			l.phase = PhaseTerminated
			return nil
		case key.Matches(k, l.keys.Restart):
			if err := l.state.Reset(ctx, false); err != nil {
				return err
			}
			l.logger.Debug("restart", "round", l.state.Round())
			l.start()
			l.nextMove = l.clock.Now().Add(l.cfg.Timing.StepInterval)
			return nil
		}
	}
}

// terminate shows the termination message and restores the cursor.
func (l *Loop) terminate() {
	l.state.DisplayMessage(terminatingMessage)
	l.term.SetCursorVisible(true)
	l.logger.Debug("terminated", "round", l.state.Round(), "score", l.state.Score())
}
