package game

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSnakeStartsCentered(t *testing.T) {
	s, term := newTestState(t, emptyBoardConfig(), 1)

	snake := s.Snake()
	if snake.Head() != core.Pt(15, 15) {
		t.Errorf("Head() = %v, expected (15,15)", snake.Head())
	}
	if snake.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", snake.Direction())
	}
	if s.Symbol(15, 15) != SymbolSnake {
		t.Error("Starting cell should be marked snake")
	}
	if term.drawn[core.Pt(15, 15)] != SymbolSnake {
		t.Error("Starting cell should be drawn as snake")
	}
}

func TestMoveIntoEmpty(t *testing.T) {
	s, term := newTestState(t, emptyBoardConfig(), 1)

	if !s.Snake().Move(DirRight) {
		t.Fatal("Move(right) into empty cell should succeed")
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
	if s.Symbol(16, 15) != SymbolSnake {
		t.Errorf("Cell (16,15) = %v, expected snake", s.Symbol(16, 15))
	}
	if term.drawn[core.Pt(16, 15)] != SymbolSnake {
		t.Error("New head should be drawn")
	}
	if s.Snake().Head() != core.Pt(16, 15) {
		t.Errorf("Head() = %v, expected (16,15)", s.Snake().Head())
	}
}

func TestMoveIntoFood(t *testing.T) {
	s, _ := newTestState(t, emptyBoardConfig(), 1)
	s.Draw(15, 14, SymbolFood)

	if !s.Snake().Move(DirUp) {
		t.Fatal("Move(up) into food should succeed")
	}
	if s.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", s.Score())
	}
	if s.Symbol(15, 14) != SymbolSnake {
		t.Errorf("Cell (15,14) = %v, expected snake", s.Symbol(15, 14))
	}
	if s.Snake().Direction() != DirUp {
		t.Errorf("Direction() = %v, expected up", s.Snake().Direction())
	}
}

func TestMoveCollisions(t *testing.T) {
	for _, sym := range []Symbol{SymbolWall, SymbolSnake, SymbolHazard} {
		t.Run(sym.String(), func(t *testing.T) {
			s, _ := newTestState(t, emptyBoardConfig(), 1)
			s.Draw(16, 15, sym)

			if s.Snake().Move(DirRight) {
				t.Fatalf("Move into %v should fail", sym)
			}
			if s.Snake().Head() != core.Pt(15, 15) {
				t.Errorf("Head moved to %v on collision", s.Snake().Head())
			}
			if s.Snake().Direction() != DirRight {
				t.Errorf("Direction changed to %v on collision", s.Snake().Direction())
			}
			if s.Score() != 0 {
				t.Errorf("Score() = %d, expected 0 after collision", s.Score())
			}
			if s.Symbol(16, 15) != sym {
				t.Errorf("Collision cell changed to %v", s.Symbol(16, 15))
			}
		})
	}
}

func TestMoveCollisionAfterTurn(t *testing.T) {
	s, _ := newTestState(t, emptyBoardConfig(), 1)
	s.Draw(15, 16, SymbolHazard)

	if s.Snake().Move(DirDown) {
		t.Fatal("Move(down) into hazard should fail")
	}
	if s.Snake().Direction() != DirRight {
		t.Errorf("Failed turn should keep direction right, got %v", s.Snake().Direction())
	}
}

func TestReversalIsFiltered(t *testing.T) {
	for _, facing := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(facing.String(), func(t *testing.T) {
			reversed, _ := newTestState(t, emptyBoardConfig(), 7)
			straight, _ := newTestState(t, emptyBoardConfig(), 7)
			reversed.Snake().direction = facing
			straight.Snake().direction = facing

			okReversed := reversed.Snake().Move(facing.Opposite())
			okStraight := straight.Snake().Move(facing)

			if okReversed != okStraight {
				t.Fatalf("Move(opposite) = %v, Move(facing) = %v", okReversed, okStraight)
			}
			if reversed.Snake().Head() != straight.Snake().Head() {
				t.Errorf("Head %v after reversal, expected %v", reversed.Snake().Head(), straight.Snake().Head())
			}
			if reversed.Snake().Direction() != facing {
				t.Errorf("Direction() = %v, expected %v", reversed.Snake().Direction(), facing)
			}
			if reversed.Score() != straight.Score() {
				t.Errorf("Score %d after reversal, expected %d", reversed.Score(), straight.Score())
			}
		})
	}
}

func TestRequestLeftWhileFacingRight(t *testing.T) {
	s, _ := newTestState(t, emptyBoardConfig(), 1)

	if !s.Snake().Move(DirLeft) {
		t.Fatal("Filtered reversal should move right")
	}
	if s.Snake().Head() != core.Pt(16, 15) {
		t.Errorf("Head() = %v, expected (16,15)", s.Snake().Head())
	}
	if s.Snake().Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", s.Snake().Direction())
	}
}

func TestTrailStaysMarked(t *testing.T) {
	s, _ := newTestState(t, emptyBoardConfig(), 1)

	for i := 0; i < 3; i++ {
		if !s.Snake().Move(DirRight) {
			t.Fatalf("move %d failed", i)
		}
	}

	for x := 15; x <= 18; x++ {
		if s.Symbol(x, 15) != SymbolSnake {
			t.Errorf("Cell (%d,15) = %v, expected snake trail", x, s.Symbol(x, 15))
		}
	}
	if n := s.Grid().Count(SymbolSnake); n != 4 {
		t.Errorf("Count(snake) = %d, expected 4", n)
	}
	if s.Score() != 3 {
		t.Errorf("Score() = %d, expected 3", s.Score())
	}
}

func TestSelfCollision(t *testing.T) {
	s, _ := newTestState(t, emptyBoardConfig(), 1)

	// Loop back onto the starting cell: down, left, up, right.
	for _, d := range []Direction{DirDown, DirLeft, DirUp} {
		if !s.Snake().Move(d) {
			t.Fatalf("Move(%v) failed", d)
		}
	}
	if s.Snake().Move(DirRight) {
		t.Error("Moving onto the trail should fail")
	}
	if s.Snake().Head() != core.Pt(14, 15) {
		t.Errorf("Head() = %v, expected (14,15)", s.Snake().Head())
	}
}

func TestWallAhead(t *testing.T) {
	s, _ := newTestState(t, emptyBoardConfig(), 1)
	s.Snake().head = core.Pt(28, 15)

	if s.Snake().Move(DirRight) {
		t.Error("Move into the right wall should fail")
	}
	if s.Snake().Head() != core.Pt(28, 15) {
		t.Errorf("Head() = %v, expected (28,15)", s.Snake().Head())
	}
}
