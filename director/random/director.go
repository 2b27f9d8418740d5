package random

import (
	"math/rand"

	"github.com/they4kman/sweepcore/game"
)

// Director reveals hidden, unflagged cells in a shuffled order
type Director struct {
	rand *rand.Rand
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

// NewWithRand shares rng with the caller
func NewWithRand(rng *rand.Rand) *Director {
	return &Director{rand: rng}
}

func (director *Director) Next(view game.BoardView) (game.CellAction, bool) {
	candidates := Candidates(view)
	if len(candidates) == 0 {
		return game.CellAction{}, false
	}

	director.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return game.RevealAt(candidates[0]), true
}

// Candidates lists every hidden, unflagged cell in row-major order
func Candidates(view game.BoardView) []game.Coord {
	var candidates []game.Coord
	for row, cells := range view.Cells {
		for col, cell := range cells {
			if cell.Hidden && !cell.Flagged {
				candidates = append(candidates, game.Coord{Row: row, Col: col})
			}
		}
	}
	return candidates
}
