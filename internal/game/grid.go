package game

import "fmt"

// Grid is the fixed-size play area. Cells are stored in row-major order and
// default to SymbolEmpty.
type Grid struct {
	width  int
	height int
	cells  []Symbol
}

// NewGrid creates an empty grid of the given size.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Symbol, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsBorder reports whether (x, y) lies on the outer ring.
func (g *Grid) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// index converts a coordinate to a flat index.
// Callers guarantee bounds; a bad coordinate is a bug and panics.
func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Set stores a symbol at (x, y).
func (g *Grid) Set(x, y int, s Symbol) {
	g.cells[g.index(x, y)] = s
}

// Get returns the symbol at (x, y).
func (g *Grid) Get(x, y int) Symbol {
	return g.cells[g.index(x, y)]
}

// Count returns how many cells hold the given symbol.
func (g *Grid) Count(s Symbol) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}
