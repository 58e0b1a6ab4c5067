package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// keysFromMsg translates a Bubble Tea key message into game keys.
// A paste or a burst of typed runes arrives as one message; each rune
// becomes its own key so the game sees every press.
func keysFromMsg(msg tea.KeyMsg) []game.Key {
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		keys := make([]game.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, game.Key(string(r)))
		}
		return keys
	}

	// Alt and paste only change how a key is reported, not which key it is.
	msg.Alt, msg.Paste = false, false
	return []game.Key{game.Key(msg.String())}
}
