package game

import "github.com/vovakirdan/tui-snake/internal/core"

// board is what the snake needs from its owner.
type board interface {
	Symbol(x, y int) Symbol
	Draw(x, y int, s Symbol)
	AddScore(n int)
}

// Snake is the player's head and heading. The body is implicit: every cell
// the head leaves stays marked as snake until the next reset.
type Snake struct {
	head      core.Point
	direction Direction
	board     board

	foodBonus  int
	stepReward int
}

// newSnake places a snake facing right at (x, y) and marks its cell.
func newSnake(x, y int, b board, foodBonus, stepReward int) *Snake {
	s := &Snake{
		head:       core.Pt(x, y),
		direction:  DirRight,
		board:      b,
		foodBonus:  foodBonus,
		stepReward: stepReward,
	}
	b.Draw(x, y, SymbolSnake)
	return s
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.head
}

// Direction returns the facing direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Move advances the snake one cell. A request to reverse is replaced by the
// current heading. Returns false, leaving the snake untouched, if the target
// cell holds anything but empty space or food.
func (s *Snake) Move(requested Direction) bool {
	dir := requested
	if dir == s.direction.Opposite() {
		dir = s.direction
	}

	dx, dy := dir.Delta()
	next := s.head.Add(dx, dy)

	target := s.board.Symbol(next.X, next.Y)
	if target != SymbolEmpty && target != SymbolFood {
		return false
	}

	if target == SymbolFood {
		s.board.AddScore(s.foodBonus)
	} else {
		s.board.AddScore(s.stepReward)
	}

	s.board.Draw(next.X, next.Y, SymbolSnake)
	s.head = next
	s.direction = dir
	return true
}
