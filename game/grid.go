package game

// Offsets of the 8 surrounding cells, clockwise from north
var neighborOffsets8 = [8][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

// Offsets of the cardinal neighbors, indexed by Side
var neighborOffsets4 = [4][2]int{North: {-1, 0}, East: {0, 1}, South: {1, 0}, West: {0, -1}}

// Grid is a fixed-size, row-major array of cells
type Grid struct {
	width, height int
	cells         []Cell

	numHazards int
	placed     bool
}

// newGrid builds a grid of unplaced, hidden cells. Dimensions are validated by
// the caller.
func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (grid *Grid) Width() int {
	return grid.width
}

func (grid *Grid) Height() int {
	return grid.height
}

func (grid *Grid) NumCells() int {
	return grid.width * grid.height
}

func (grid *Grid) NumHazards() int {
	return grid.numHazards
}

// Placed reports whether hazards were assigned to this grid
func (grid *Grid) Placed() bool {
	return grid.placed
}

func (grid *Grid) InBounds(coord Coord) bool {
	return inBounds(grid.width, grid.height, coord)
}

// At returns a copy of the cell at coord. The second result is false when
// coord is out of bounds.
func (grid *Grid) At(coord Coord) (Cell, bool) {
	if !grid.InBounds(coord) {
		return Cell{}, false
	}
	return grid.cells[grid.index(coord)], true
}

func (grid *Grid) cellAt(coord Coord) *Cell {
	return &grid.cells[grid.index(coord)]
}

func (grid *Grid) index(coord Coord) int {
	return coord.Row*grid.width + coord.Col
}

func (grid *Grid) coordinate(idx int) Coord {
	return Coord{Row: idx / grid.width, Col: idx % grid.width}
}

// Neighbors8 returns the in-bounds cells around coord: 3 in a corner, 5 on an
// edge, 8 inside
func (grid *Grid) Neighbors8(coord Coord) []Coord {
	return Neighbors8Within(grid.width, grid.height, coord)
}

// Neighbor is an adjacent cell and the side of the origin it lies on
type Neighbor struct {
	At   Coord
	Side Side
}

// Neighbors4 returns the in-bounds cardinal neighbors of coord
func (grid *Grid) Neighbors4(coord Coord) []Neighbor {
	out := make([]Neighbor, 0, 4)
	for side, d := range neighborOffsets4 {
		neighbor := Coord{Row: coord.Row + d[0], Col: coord.Col + d[1]}
		if grid.InBounds(neighbor) {
			out = append(out, Neighbor{At: neighbor, Side: Side(side)})
		}
	}
	return out
}

// ForEachCell visits every cell in row-major order
func (grid *Grid) ForEachCell(visit func(Coord, Cell)) {
	for idx, cell := range grid.cells {
		visit(grid.coordinate(idx), cell)
	}
}

// Neighbors8Within enumerates the 8-neighborhood of coord on a width×height
// board without needing a Grid
func Neighbors8Within(width, height int, coord Coord) []Coord {
	out := make([]Coord, 0, 8)
	for _, d := range neighborOffsets8 {
		neighbor := Coord{Row: coord.Row + d[0], Col: coord.Col + d[1]}
		if inBounds(width, height, neighbor) {
			out = append(out, neighbor)
		}
	}
	return out
}

func inBounds(width, height int, coord Coord) bool {
	return coord.Row >= 0 && coord.Col >= 0 && coord.Row < height && coord.Col < width
}
