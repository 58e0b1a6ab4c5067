// Package game implements the Snake engine: the board, the snake's movement
// rules, and the loop that ties input, timing and rendering together.
// It talks to the terminal only through the Terminal interface.
package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Symbol is what occupies a board cell.
type Symbol uint8

const (
	SymbolEmpty Symbol = iota
	SymbolWall
	SymbolSnake
	SymbolFood
	SymbolHazard
)

// Rune returns the character a symbol is drawn with.
func (s Symbol) Rune() rune {
	switch s {
	case SymbolWall:
		return 'x'
	case SymbolSnake:
		return '*'
	case SymbolFood:
		return '+'
	case SymbolHazard:
		return '@'
	default:
		return ' '
	}
}

// Color returns the foreground color a symbol is drawn with.
func (s Symbol) Color() core.Color {
	switch s {
	case SymbolWall:
		return core.ColorGray
	case SymbolSnake:
		return core.ColorBrightGreen
	case SymbolFood:
		return core.ColorYellow
	case SymbolHazard:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

func (s Symbol) String() string {
	switch s {
	case SymbolEmpty:
		return "empty"
	case SymbolWall:
		return "wall"
	case SymbolSnake:
		return "snake"
	case SymbolFood:
		return "food"
	case SymbolHazard:
		return "hazard"
	default:
		return "unknown"
	}
}
