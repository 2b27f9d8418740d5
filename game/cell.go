package game

import "fmt"

// Coord addresses a cell by row (top to bottom) and column (left to right)
type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

// Cell is a single square of the grid. Cells are handed out by value; only
// the game package mutates them.
type Cell struct {
	kind     Kind
	adjacent uint8

	isRevealed, isFlagged bool
}

func (cell Cell) Kind() Kind {
	return cell.kind
}

// Adjacent is the number of hazards among the 8 neighbors. Zero until hazards
// are placed.
func (cell Cell) Adjacent() int {
	return int(cell.adjacent)
}

func (cell Cell) IsHazard() bool {
	return cell.kind == Hazard
}

func (cell Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell Cell) IsFlagged() bool {
	return cell.isFlagged
}

// hidden reports whether the cell can still be revealed by a cascade
func (cell *Cell) hidden() bool {
	return !cell.isRevealed && !cell.isFlagged
}

func (cell *Cell) reveal() {
	cell.isRevealed = true
	cell.isFlagged = false
}

func (cell *Cell) toggleFlagged() bool {
	cell.isFlagged = !cell.isFlagged
	return cell.isFlagged
}
