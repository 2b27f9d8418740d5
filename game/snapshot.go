package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CellView is what a player may know about a cell
type CellView struct {
	Hidden  bool
	Flagged bool
	// Kind is Hidden for unrevealed cells unless the game is lost
	Kind Kind

	// Detonated marks the hazard that lost the game
	Detonated bool
	// WrongFlag marks a flag on a safe cell once the game is lost
	WrongFlag bool
}

// Rune renders the cell as a single character:
//
//	#  hidden         f  flagged       x  wrong flag
//	.  blank          1-8 numbered
//	O  hazard         *  detonated hazard
func (view CellView) Rune() rune {
	switch {
	case view.WrongFlag:
		return 'x'
	case view.Flagged:
		return 'f'
	case view.Detonated:
		return '*'
	case view.Kind == Hidden:
		return '#'
	case view.Kind == Hazard:
		return 'O'
	case view.Kind == Blank:
		if view.Hidden {
			return '#'
		}
		return '.'
	default:
		if view.Hidden {
			return '#'
		}
		return rune('0' + view.Kind.Count())
	}
}

// BoardView is a read-only copy of a game's state
type BoardView struct {
	GameID        uuid.UUID
	Phase         Phase
	Elapsed       time.Duration
	Width, Height int
	Mines, Flags  int
	Cells         [][]CellView
}

func (view BoardView) ElapsedSeconds() float64 {
	return view.Elapsed.Seconds()
}

// MinesRemaining is the mine count minus placed flags; negative when the
// player over-flags
func (view BoardView) MinesRemaining() int {
	return view.Mines - view.Flags
}

func (view BoardView) At(coord Coord) (CellView, bool) {
	if !inBounds(view.Width, view.Height, coord) {
		return CellView{}, false
	}
	return view.Cells[coord.Row][coord.Col], true
}

// Neighbors8 enumerates the in-bounds neighbors of coord on this board
func (view BoardView) Neighbors8(coord Coord) []Coord {
	return Neighbors8Within(view.Width, view.Height, coord)
}

// String renders one line per row using CellView.Rune
func (view BoardView) String() string {
	var builder strings.Builder
	for y, row := range view.Cells {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for _, cell := range row {
			builder.WriteRune(cell.Rune())
		}
	}
	return builder.String()
}
