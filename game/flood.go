package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/sweepcore/util/collections"
)

// Boundary marks the side of a revealed numbered cell that faces a cell which
// is still hidden. At is the numbered cell.
type Boundary struct {
	At   Coord
	Side Side
}

// RevealResult lists what a single reveal changed
type RevealResult struct {
	// Cleared holds every safe cell that went from hidden to revealed, in
	// traversal order
	Cleared    []Coord
	HitHazard  bool
	Boundaries []Boundary
}

// RevealEngine runs the cascading reveal. The cascade expands over all 8
// neighbors of blank cells and stops at numbered cells.
type RevealEngine struct {
	// Boundaries enables boundary markers on the result
	Boundaries bool
}

// Reveal opens the cell at coord. Already revealed or flagged cells are left
// alone. The whole cascade completes before Reveal returns; it uses an
// explicit queue so board size never bounds the call depth.
func (engine *RevealEngine) Reveal(grid *Grid, coord Coord) RevealResult {
	var result RevealResult
	if !grid.InBounds(coord) {
		return result
	}

	start := grid.cellAt(coord)
	if !start.hidden() {
		return result
	}
	if start.kind == Hazard {
		start.reveal()
		result.HitHazard = true
		return result
	}

	result.Cleared = flood(grid, coord)
	if engine.Boundaries {
		result.Boundaries = boundaries(grid, result.Cleared)
	}
	return result
}

// flood reveals outward from start, breadth first, and returns the cells it
// revealed
func flood(grid *Grid, start Coord) []Coord {
	visited := collections.NewSet(start)
	var queue deque.Deque
	queue.PushBack(start)

	var cleared []Coord
	for queue.Len() > 0 {
		coord := queue.PopFront().(Coord)
		cell := grid.cellAt(coord)
		if !cell.hidden() || cell.kind == Hazard {
			continue
		}

		cell.reveal()
		cleared = append(cleared, coord)

		if cell.kind != Blank {
			continue
		}
		for _, neighbor := range grid.Neighbors8(coord) {
			if visited.Contains(neighbor) || !grid.cellAt(neighbor).hidden() {
				continue
			}
			visited.Add(neighbor)
			queue.PushBack(neighbor)
		}
	}
	return cleared
}

// boundaries computes, once the cascade has settled, which sides of the newly
// revealed numbered cells touch hidden territory
func boundaries(grid *Grid, cleared []Coord) []Boundary {
	var out []Boundary
	for _, coord := range cleared {
		if !grid.cellAt(coord).kind.IsNumbered() {
			continue
		}
		for _, neighbor := range grid.Neighbors4(coord) {
			if !grid.cellAt(neighbor.At).isRevealed {
				out = append(out, Boundary{At: coord, Side: neighbor.Side})
			}
		}
	}
	return out
}
