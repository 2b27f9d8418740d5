package game

import "errors"

var (
	// ErrInvalidConfig is returned for board dimensions or mine counts that
	// cannot produce a playable board. No game is created.
	ErrInvalidConfig = errors.New("game: invalid configuration")
	// ErrOutOfBounds is returned for coordinates outside the grid. No state is
	// mutated.
	ErrOutOfBounds = errors.New("game: coordinates out of bounds")
	// ErrAlreadyPlaced is returned when hazards are placed twice on one grid.
	ErrAlreadyPlaced = errors.New("game: hazards already placed")
)
