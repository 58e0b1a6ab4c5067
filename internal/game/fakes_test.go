package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var errNoMoreKeys = errors.New("no more keys")

// textLine is one DisplayText call.
type textLine struct {
	row  int
	text string
}

// fakeTerminal records output and replays scripted input.
type fakeTerminal struct {
	batches [][]Key // Returned by successive ReadAvailableKeys calls
	pressed []Key   // Returned by successive ReadKey calls

	drawn   map[core.Point]Symbol
	rows    map[int]string
	history []textLine

	width, height int
	resizedTo     []int
	title         string
	cursorVisible bool
}

func newFakeTerminal() *fakeTerminal {
	return &fakeTerminal{
		drawn:         make(map[core.Point]Symbol),
		rows:          make(map[int]string),
		width:         80,
		height:        24,
		cursorVisible: true,
	}
}

func (f *fakeTerminal) DrawSymbol(x, y int, s Symbol) {
	f.drawn[core.Pt(x, y)] = s
}

func (f *fakeTerminal) DisplayText(row int, text string) {
	f.rows[row] = text
	f.history = append(f.history, textLine{row: row, text: text})
}

func (f *fakeTerminal) ReadAvailableKeys() []Key {
	if len(f.batches) == 0 {
		return nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch
}

func (f *fakeTerminal) ReadKey(ctx context.Context) (Key, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(f.pressed) == 0 {
		return "", errNoMoreKeys
	}
	k := f.pressed[0]
	f.pressed = f.pressed[1:]
	return k, nil
}

func (f *fakeTerminal) WindowSize() (int, int) {
	return f.width, f.height
}

func (f *fakeTerminal) SetWindowSize(width, height int) {
	f.resizedTo = []int{width, height}
	f.width, f.height = width, height
}

func (f *fakeTerminal) SetCursorVisible(visible bool) {
	f.cursorVisible = visible
}

func (f *fakeTerminal) SetTitle(title string) {
	f.title = title
}

// shown counts how many times text was written to any row.
func (f *fakeTerminal) shown(text string) int {
	n := 0
	for _, l := range f.history {
		if l.text == text {
			n++
		}
	}
	return n
}

// fakeClock advances only when the loop sleeps.
type fakeClock struct {
	now    time.Time
	sleeps int
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now = c.now.Add(d)
	c.sleeps++
	return nil
}

// emptyBoardConfig is the default 30x30 board with no items, so movement is
// deterministic.
func emptyBoardConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Items.Food = 0
	cfg.Items.Hazards = 0
	return cfg
}

// newTestState returns a reset state on a fake terminal.
func newTestState(t *testing.T, cfg config.Config, seed int64) (*State, *fakeTerminal) {
	t.Helper()

	term := newFakeTerminal()
	s := NewState(cfg, term, DefaultKeyMap(), rand.New(rand.NewSource(seed)), nil)
	if err := s.Reset(context.Background(), false); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return s, term
}
