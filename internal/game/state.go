package game

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxAttemptsPerItem bounds random placement before falling back to picking
// from the list of free cells.
const maxAttemptsPerItem = 64

// State owns the board, the snake and the score.
type State struct {
	cfg    config.Config
	term   Terminal
	keys   KeyMap
	rng    *rand.Rand
	logger *log.Logger

	grid    *Grid
	snake   *Snake
	score   int
	food    int // Food items placed by the last reset
	hazards int // Hazards placed by the last reset
	round   uuid.UUID
}

// NewState creates the game state. Call Reset before playing.
// A nil logger discards output.
func NewState(cfg config.Config, term Terminal, keys KeyMap, rng *rand.Rand, logger *log.Logger) *State {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &State{
		cfg:    cfg,
		term:   term,
		keys:   keys,
		rng:    rng,
		logger: logger,
		grid:   NewGrid(cfg.Board.Width, cfg.Board.Height),
	}
}

// Reset starts a new game: a walled empty board, a snake in the center
// facing right, then food and hazards at random free cells. Hazards never
// land on the snake's row at or ahead of its start, so the first stretch is
// clear. With showInstructions the help text is shown and Reset waits for the
// start key.
func (s *State) Reset(ctx context.Context, showInstructions bool) error {
	s.score = 0
	s.food, s.hazards = 0, 0
	s.round = uuid.New()

	w, h := s.cfg.Board.Width, s.cfg.Board.Height
	s.grid = NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.grid.IsBorder(x, y) {
				s.Draw(x, y, SymbolWall)
			} else {
				s.Draw(x, y, SymbolEmpty)
			}
		}
	}

	startX, startY := s.cfg.Start()
	s.snake = newSnake(startX, startY, s, s.cfg.Scoring.FoodBonus, s.cfg.Scoring.StepReward)

	var err error
	s.food, err = s.scatter(SymbolFood, s.cfg.Items.Food, nil)
	if err != nil {
		return errors.Wrap(err, "game: place food")
	}

	head := s.snake.Head()
	s.hazards, err = s.scatter(SymbolHazard, s.cfg.Items.Hazards, func(x, y int) bool {
		return y != head.Y || x < head.X
	})
	if err != nil {
		return errors.Wrap(err, "game: place hazards")
	}

	s.logger.Debug("board reset", "round", s.round, "food", s.food, "hazards", s.hazards)

	if showInstructions {
		if err := s.awaitStart(ctx); err != nil {
			return err
		}
	}

	s.DisplayScore()
	return nil
}

// awaitStart shows the instructions until the start key is pressed.
func (s *State) awaitStart(ctx context.Context) error {
	s.DisplayMessage(s.keys.instructions())
	for {
		k, err := s.term.ReadKey(ctx)
		if err != nil {
			return errors.Wrapf(ErrInterrupted, "game: waiting for start: %v", err)
		}
		switch {
		case key.Matches(k, s.keys.Interrupt):
			return errors.Wrap(ErrInterrupted, "game: waiting for start")
		case key.Matches(k, s.keys.Start):
			s.DisplayMessage("")
			return nil
		}
	}
}

// scatter places count copies of sym on empty interior cells that pass
// allowed (nil allows all). Returns how many were placed.
func (s *State) scatter(sym Symbol, count int, allowed func(x, y int) bool) (int, error) {
	free := func(x, y int) bool {
		return s.grid.Get(x, y) == SymbolEmpty && (allowed == nil || allowed(x, y))
	}

	w, h := s.grid.Width(), s.grid.Height()
	placed := 0
	for attempts := 0; placed < count && attempts < count*maxAttemptsPerItem; attempts++ {
		x := 1 + s.rng.Intn(w-2)
		y := 1 + s.rng.Intn(h-2)
		if !free(x, y) {
			continue
		}
		s.Draw(x, y, sym)
		placed++
	}
	if placed == count {
		return placed, nil
	}

	var cells []core.Point
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if free(x, y) {
				cells = append(cells, core.Pt(x, y))
			}
		}
	}
	if len(cells) < count-placed {
		return placed, errors.Wrapf(ErrBoardFull, "%d %s cells needed, %d free", count-placed, sym, len(cells))
	}

	s.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	for _, p := range cells[:count-placed] {
		s.Draw(p.X, p.Y, sym)
		placed++
	}
	return placed, nil
}

// Symbol returns what occupies (x, y).
func (s *State) Symbol(x, y int) Symbol {
	return s.grid.Get(x, y)
}

// Draw stores a symbol on the board and renders it.
func (s *State) Draw(x, y int, sym Symbol) {
	s.grid.Set(x, y, sym)
	s.term.DrawSymbol(x, y, sym)
}

// AddScore increases the score.
func (s *State) AddScore(n int) {
	s.score += n
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Snake returns the live snake. Nil before the first Reset.
func (s *State) Snake() *Snake {
	return s.snake
}

// Grid returns the board.
func (s *State) Grid() *Grid {
	return s.grid
}

// Placed returns the food and hazard counts placed by the last reset.
func (s *State) Placed() (food, hazards int) {
	return s.food, s.hazards
}

// Round identifies the current game in logs.
func (s *State) Round() uuid.UUID {
	return s.round
}

// DisplayScore writes the score line just below the board.
func (s *State) DisplayScore() {
	s.term.DisplayText(s.cfg.Board.Height+1, fmt.Sprintf("Score: %d", s.score))
}

// DisplayMessage writes msg into the message area, clearing leftovers of the
// previous message.
func (s *State) DisplayMessage(msg string) {
	row := s.cfg.Board.Height + 3
	lines := strings.Split(msg, "\n")
	n := core.Max(len(lines), s.cfg.Board.MessageHeight-4)
	for i := 0; i < n; i++ {
		text := ""
		if i < len(lines) {
			text = lines[i]
		}
		s.term.DisplayText(row+i, text)
	}
}
