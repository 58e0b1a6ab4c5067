// Package tui runs the game's terminal on Bubble Tea. The game goroutine
// draws into a shared screen buffer and polls buffered key presses while
// the Bubble Tea program renders the buffer and feeds it input.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// refreshMsg is sent to trigger a repaint of the screen buffer.
type refreshMsg time.Time

// tickCmd returns a Bubble Tea command that sends refresh messages at the specified rate.
func tickCmd(refreshRate int) tea.Cmd {
	interval := time.Second / time.Duration(refreshRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}
