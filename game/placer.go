package game

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// placer assigns hazards to a grid exactly once
type placer interface {
	Place(grid *Grid, origin Coord, mines int) error
}

// HazardPlacer scatters hazards uniformly over the cells outside the safe
// zone of the first revealed cell.
type HazardPlacer struct {
	// SafeRadius is the Chebyshev radius kept clear around the origin. The
	// origin itself is always clear.
	SafeRadius int

	rand *rand.Rand
	log  logrus.FieldLogger
}

func NewHazardPlacer(safeRadius int, rng *rand.Rand, logger logrus.FieldLogger) *HazardPlacer {
	if safeRadius < 0 {
		safeRadius = 0
	}
	if logger == nil {
		logger = log
	}
	return &HazardPlacer{
		SafeRadius: safeRadius,
		rand:       rng,
		log:        logger,
	}
}

// SafeZoneSize is the largest number of cells a safe zone of the given radius
// can cover on a width×height board, i.e. when the origin is far from every
// edge
func SafeZoneSize(width, height, radius int) int {
	side := 2*radius + 1
	return min(side, width) * min(side, height)
}

func (placer *HazardPlacer) inSafeZone(origin, coord Coord) bool {
	return abs(coord.Row-origin.Row) < placer.SafeRadius+1 &&
		abs(coord.Col-origin.Col) < placer.SafeRadius+1
}

// Place marks mines distinct cells as hazards and settles the adjacency count
// of every other cell. The eligible cells are computed once and sampled
// without replacement, so placement always terminates.
func (placer *HazardPlacer) Place(grid *Grid, origin Coord, mines int) error {
	if grid.placed {
		return ErrAlreadyPlaced
	}
	if !grid.InBounds(origin) {
		return fmt.Errorf("%w: origin %v", ErrOutOfBounds, origin)
	}
	if mines < 0 {
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidConfig, mines)
	}

	eligible := make([]int, 0, grid.NumCells())
	for idx := range grid.cells {
		if !placer.inSafeZone(origin, grid.coordinate(idx)) {
			eligible = append(eligible, idx)
		}
	}
	if mines > len(eligible) {
		return fmt.Errorf("%w: %d mines but only %d cells outside the safe zone of %v",
			ErrInvalidConfig, mines, len(eligible), origin)
	}

	placer.rand.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	for _, idx := range eligible[:mines] {
		grid.cells[idx].kind = Hazard
	}
	grid.numHazards = mines
	settleCounts(grid)

	placer.log.WithFields(logrus.Fields{
		"origin":   origin.String(),
		"mines":    mines,
		"eligible": len(eligible),
		"radius":   placer.SafeRadius,
	}).Debug("placed hazards")

	return nil
}

// settleCounts fixes the kind of every safe cell from its hazard neighbors.
// The grid is frozen afterwards.
func settleCounts(grid *Grid) {
	for idx := range grid.cells {
		cell := &grid.cells[idx]
		if cell.kind == Hazard {
			continue
		}
		count := 0
		for _, neighbor := range grid.Neighbors8(grid.coordinate(idx)) {
			if grid.cellAt(neighbor).kind == Hazard {
				count++
			}
		}
		cell.adjacent = uint8(count)
		cell.kind = kindForCount(count)
	}
	grid.placed = true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
