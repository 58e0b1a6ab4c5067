package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

const (
	keyBufferSize      = 64
	defaultRefreshRate = 60

	// Reported when the window size can't be queried or hasn't arrived yet.
	fallbackWidth  = 80
	fallbackHeight = 24
)

// ErrClosed is returned by ReadKey once the program has exited.
var ErrClosed = errors.New("tui: terminal closed")

// Terminal implements game.Terminal on a Bubble Tea program.
//
// Run must be called from its own goroutine; every other method is meant for
// the game goroutine.
type Terminal struct {
	mu     sync.Mutex
	screen *core.Screen
	width  int // Last known window width, 0 if unknown
	height int // Last known window height, 0 if unknown

	keys chan game.Key
	done chan struct{}

	input       io.Reader
	output      io.Writer // As configured, used for size queries
	out         io.Writer // Shared with the renderer
	refreshRate int
	logger      *log.Logger

	program   *tea.Program
	closeOnce sync.Once
}

var _ game.Terminal = (*Terminal)(nil)

// Option configures a Terminal.
type Option func(*Terminal)

// WithInput reads keys from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(t *Terminal) {
		t.input = r
	}
}

// WithOutput renders to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(t *Terminal) {
		t.output = w
	}
}

// WithRefreshRate sets how many frames per second are painted.
func WithRefreshRate(fps int) Option {
	return func(t *Terminal) {
		if fps > 0 {
			t.refreshRate = fps
		}
	}
}

// WithLogger sets the logger for dropped input and resize events.
func WithLogger(logger *log.Logger) Option {
	return func(t *Terminal) {
		t.logger = logger
	}
}

// NewTerminal creates a terminal whose screen buffer starts at width x height.
func NewTerminal(width, height int, opts ...Option) *Terminal {
	t := &Terminal{
		screen:      core.NewScreen(width, height),
		keys:        make(chan game.Key, keyBufferSize),
		done:        make(chan struct{}),
		output:      os.Stdout,
		refreshRate: defaultRefreshRate,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.out = newLockedOutput(t.output)

	// No alt screen: the last frame stays visible after exit.
	progOpts := []tea.ProgramOption{
		tea.WithOutput(t.out),
		tea.WithFPS(t.refreshRate),
		tea.WithoutSignalHandler(),
	}
	if t.input != nil {
		progOpts = append(progOpts, tea.WithInput(t.input))
	}
	t.program = tea.NewProgram(model{term: t}, progOpts...)

	return t
}

// Run starts the Bubble Tea program and blocks until Close is called or the
// program fails.
func (t *Terminal) Run() error {
	defer close(t.done)

	if _, err := t.program.Run(); err != nil {
		return errors.Wrap(err, "tui: run program")
	}
	return nil
}

// Close paints the final frame, stops the program and waits for it to
// restore the terminal.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		t.program.Send(flushMsg{})
		t.program.Quit()
		t.program.Wait()
	})
}

// DrawSymbol renders a board symbol at (x, y).
func (t *Terminal) DrawSymbol(x, y int, s game.Symbol) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Grow(x+1, y+1)
	t.screen.SetCell(x, y, core.Cell{Rune: s.Rune(), Color: s.Color()})
}

// DisplayText replaces the contents of a row with text.
func (t *Terminal) DisplayText(row int, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Grow(len([]rune(text)), row+1)
	t.screen.ClearRow(row)
	t.screen.DrawText(0, row, text)
}

// ReadAvailableKeys returns every queued key without blocking.
func (t *Terminal) ReadAvailableKeys() []game.Key {
	var keys []game.Key
	for {
		select {
		case k := <-t.keys:
			keys = append(keys, k)
		default:
			return keys
		}
	}
}

// ReadKey blocks until a key is pressed, ctx is done or the program exits.
func (t *Terminal) ReadKey(ctx context.Context) (game.Key, error) {
	select {
	case k := <-t.keys:
		return k, nil
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.done:
		return "", ErrClosed
	}
}

// WindowSize reports the terminal size in cells.
func (t *Terminal) WindowSize() (width, height int) {
	if f, ok := t.output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			return w, h
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.width > 0 && t.height > 0 {
		return t.width, t.height
	}
	return fallbackWidth, fallbackHeight
}

// SetWindowSize asks the terminal emulator to resize its window. Emulators
// that ignore the request keep their size. The request goes through the
// renderer's output lock so it can't split a frame.
func (t *Terminal) SetWindowSize(width, height int) {
	if _, err := fmt.Fprintf(t.out, "\x1b[8;%d;%dt", height, width); err != nil {
		t.logger.Debug("resize request failed", "error", err)
		return
	}
	t.resized(width, height)
}

// SetCursorVisible shows or hides the cursor.
func (t *Terminal) SetCursorVisible(visible bool) {
	t.program.Send(cursorMsg(visible))
}

// SetTitle sets the window title.
func (t *Terminal) SetTitle(title string) {
	t.program.Send(titleMsg(title))
}

// push queues a key for the game. Keys beyond the buffer are dropped.
func (t *Terminal) push(k game.Key) {
	select {
	case t.keys <- k:
	default:
		t.logger.Debug("key dropped", "key", k)
	}
}

// resized records the window size.
func (t *Terminal) resized(width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.width, t.height = width, height
}
