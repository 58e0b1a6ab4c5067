package core

// Color is a foreground color for a screen cell. The platform layer maps
// each value to an ANSI color.
type Color uint8

// Colors used by the board symbols and status lines.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorGray
	ColorBrightGreen
)
