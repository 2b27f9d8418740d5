package constraint

import (
	"fmt"
	"strings"

	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/util/collections"
)

// Observation states that exactly NumMines of Cells are hazards
type Observation struct {
	Origin   game.Coord
	Derived  bool
	NumMines int
	Cells    collections.Set[game.Coord]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, cell := range observation.sortedCells() {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(cell.String())
	}

	originRepr := "?"
	if !observation.Derived {
		originRepr = observation.Origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.NumMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.NumMines) / float64(observation.Cells.Len())
}

func (observation Observation) sortedCells() []game.Coord {
	return observation.Cells.Sorted(coordLess)
}

func coordLess(a, b game.Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// Observe builds one observation per revealed number that still touches
// hidden, unflagged cells. Flagged neighbors are taken as hazards; a number
// with more flags around it than it counts proves some flag wrong, and is
// skipped.
func Observe(view game.BoardView) []Observation {
	var observations []Observation
	for row, cells := range view.Cells {
		for col, cell := range cells {
			if cell.Hidden || !cell.Kind.IsNumbered() {
				continue
			}

			origin := game.Coord{Row: row, Col: col}
			observation := Observation{
				Origin:   origin,
				NumMines: cell.Kind.Count(),
				Cells:    collections.NewSet[game.Coord](),
			}
			for _, neighbor := range view.Neighbors8(origin) {
				other, _ := view.At(neighbor)
				if !other.Hidden {
					continue
				}
				if other.Flagged {
					observation.NumMines--
				} else {
					observation.Cells.Add(neighbor)
				}
			}

			if observation.Cells.Len() > 0 && observation.NumMines >= 0 {
				observations = append(observations, observation)
			}
		}
	}
	return observations
}

// simplify derives new observations from overlapping ones, repeating for a
// fixed number of rounds
func simplify(observations []Observation, rounds int) []Observation {
	seen := make(map[string]struct{}, len(observations))
	for _, observation := range observations {
		seen[observation.key()] = struct{}{}
	}

	for round := 0; round < rounds; round++ {
		added := false
		count := len(observations)
		for i := 0; i < count; i++ {
			for j := 0; j < count; j++ {
				if i == j {
					continue
				}
				derived, ok := split(observations[i], observations[j])
				if !ok {
					continue
				}
				// Don't add duplicates
				key := derived.key()
				if _, dupe := seen[key]; dupe {
					continue
				}
				seen[key] = struct{}{}
				observations = append(observations, derived)
				added = true
			}
		}
		if !added {
			break
		}
	}
	return observations
}

// split compares observation against an intersecting one. When observation
// lies entirely inside intersecting, the remainder holds the difference in
// mines. When observation holds a single mine, the cells only intersecting
// covers may be forced to all be mines.
func split(observation, intersecting Observation) (Observation, bool) {
	if observation.Cells.IsSubset(intersecting.Cells) {
		remainder := intersecting.Cells.Difference(observation.Cells)
		return derive(intersecting.NumMines-observation.NumMines, remainder)
	}

	if observation.NumMines != 1 {
		return Observation{}, false
	}
	leftOnly := intersecting.Cells.Difference(observation.Cells)
	if leftOnly.Len() == intersecting.Cells.Len() {
		return Observation{}, false
	}
	occludedMines := intersecting.NumMines - observation.NumMines
	if occludedMines != leftOnly.Len() {
		return Observation{}, false
	}
	return derive(occludedMines, leftOnly)
}

func derive(numMines int, cells collections.Set[game.Coord]) (Observation, bool) {
	if cells.Len() == 0 || numMines < 0 || numMines > cells.Len() {
		return Observation{}, false
	}
	return Observation{Derived: true, NumMines: numMines, Cells: cells}, true
}

// key identifies an observation by its cells
func (observation Observation) key() string {
	var key strings.Builder
	for _, cell := range observation.sortedCells() {
		fmt.Fprintf(&key, "%d,%d;", cell.Row, cell.Col)
	}
	return key.String()
}
