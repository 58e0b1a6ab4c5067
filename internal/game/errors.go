package game

import "github.com/pkg/errors"

var (
	// ErrBoardFull is returned by Reset when there are fewer eligible cells
	// than items to place.
	ErrBoardFull = errors.New("board has no room left")

	// ErrInterrupted is returned when a blocking wait is cut short by an
	// interrupt.
	ErrInterrupted = errors.New("interrupted")
)
