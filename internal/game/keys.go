package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the game's key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Start     key.Binding
	Restart   key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the default bindings: WASD or arrows to steer,
// p to start and restart, q to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "W", "up"),
			key.WithHelp("w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// Steer maps a key to a direction. ok is false for non-steering keys.
func (km KeyMap) Steer(k Key) (dir Direction, ok bool) {
	switch {
	case key.Matches(k, km.Up):
		return DirUp, true
	case key.Matches(k, km.Down):
		return DirDown, true
	case key.Matches(k, km.Left):
		return DirLeft, true
	case key.Matches(k, km.Right):
		return DirRight, true
	}
	return 0, false
}

// steerHelp lists the steering keys, e.g. "WASD".
func (km KeyMap) steerHelp() string {
	var b strings.Builder
	for _, binding := range []key.Binding{km.Up, km.Left, km.Down, km.Right} {
		b.WriteString(strings.ToUpper(binding.Help().Key))
	}
	return b.String()
}

// instructions is the help text shown before the first game.
func (km KeyMap) instructions() string {
	return fmt.Sprintf(
		"- Use %s to steer the snake up, down, left, and right.\n"+
			"- Collect food (%c) for more points.\n"+
			"- Avoid hazards (%c) and keep moving to stay alive.\n\n"+
			"Tip: Use a console font with equal height and width.\n"+
			"Press '%s' to start playing.",
		km.steerHelp(), SymbolFood.Rune(), SymbolHazard.Rune(), km.Start.Help().Key)
}

// gameOverMessage is shown after a collision.
func (km KeyMap) gameOverMessage() string {
	return fmt.Sprintf("Game Over. Press '%s' to play again. Press '%s' to quit.",
		km.Restart.Help().Key, km.Quit.Help().Key)
}
