package game

import (
	"context"
	"time"
)

// Key identifies a key press, e.g. "w", "up" or "ctrl+c".
type Key string

func (k Key) String() string {
	return string(k)
}

// Terminal is the display and keyboard the game runs on.
type Terminal interface {
	// DrawSymbol renders a board symbol at (x, y).
	DrawSymbol(x, y int, s Symbol)

	// DisplayText replaces the contents of a row with text.
	DisplayText(row int, text string)

	// ReadAvailableKeys returns every key pressed since the last call
	// without blocking.
	ReadAvailableKeys() []Key

	// ReadKey blocks until a key is pressed or ctx is done.
	ReadKey(ctx context.Context) (Key, error)

	WindowSize() (width, height int)
	SetWindowSize(width, height int)
	SetCursorVisible(visible bool)
	SetTitle(title string)
}

// Clock is the loop's time source.
type Clock interface {
	Now() time.Time

	// Sleep pauses for d. Returns ctx.Err() if ctx ends first.
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the real clock. time.Now carries a monotonic reading, so
// comparisons between its values ignore wall clock adjustments.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep waits for d or until ctx is done.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
