package constraint

import (
	"math"
	"math/rand"
	"sort"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
)

var log = logrus.New()

const simplifyRounds = 4

// Director plays from what the revealed numbers prove. Forced moves come
// first, then the cell least likely to be a hazard, then a random guess.
type Director struct {
	rand     *rand.Rand
	fallback *random.Director
	log      logrus.FieldLogger

	// forced moves found together, handed out one per Next
	pending deque.Deque
}

func New(seed int64, logger logrus.FieldLogger) *Director {
	if logger == nil {
		logger = log
	}
	rng := rand.New(rand.NewSource(seed))
	return &Director{
		rand:     rng,
		fallback: random.NewWithRand(rng),
		log:      logger,
	}
}

func (director *Director) Next(view game.BoardView) (game.CellAction, bool) {
	if view.Phase.Terminal() {
		return game.CellAction{}, false
	}

	if cellAction, ok := director.popPending(view); ok {
		return cellAction, true
	}

	observations := simplify(Observe(view), simplifyRounds)

	actors := []struct {
		name string
		act  func([]Observation) (game.CellAction, bool)
	}{
		{"deliberate", director.actDeliberate},
		{"lowest-probability", director.actLowestProbability},
	}
	for _, actor := range actors {
		if cellAction, ok := actor.act(observations); ok {
			director.logAction(actor.name, cellAction, len(observations))
			return cellAction, true
		}
	}

	cellAction, ok := director.fallback.Next(view)
	if ok {
		director.logAction("random", cellAction, len(observations))
	}
	return cellAction, ok
}

// popPending skips queued moves the board has since made pointless
func (director *Director) popPending(view game.BoardView) (game.CellAction, bool) {
	for director.pending.Len() > 0 {
		cellAction := director.pending.PopFront().(game.CellAction)
		if cell, ok := view.At(cellAction.At); ok && cell.Hidden && !cell.Flagged {
			return cellAction, true
		}
	}
	return game.CellAction{}, false
}

// actDeliberate queues every move an observation forces: reveal all of its
// cells when it holds no mines, flag all of them when every cell is a mine
func (director *Director) actDeliberate(observations []Observation) (game.CellAction, bool) {
	for _, observation := range observations {
		switch observation.NumMines {
		case 0:
			for _, cell := range observation.sortedCells() {
				director.pending.PushBack(game.RevealAt(cell))
			}
		case observation.Cells.Len():
			for _, cell := range observation.sortedCells() {
				director.pending.PushBack(game.FlagAt(cell))
			}
		}
	}

	if director.pending.Len() == 0 {
		return game.CellAction{}, false
	}
	return director.pending.PopFront().(game.CellAction), true
}

// actLowestProbability reveals a cell whose least pessimistic observation
// gives it the lowest hazard probability on the board, breaking ties randomly
func (director *Director) actLowestProbability(observations []Observation) (game.CellAction, bool) {
	cellProbabilities := make(map[game.Coord]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.Cells {
			if past, ok := cellProbabilities[cell]; !ok || probability < past {
				cellProbabilities[cell] = probability
			}
		}
	}
	if len(cellProbabilities) == 0 {
		return game.CellAction{}, false
	}

	lowestProbability := math.Inf(1)
	for _, probability := range cellProbabilities {
		lowestProbability = math.Min(lowestProbability, probability)
	}

	var lowestProbabilityCells []game.Coord
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}
	sort.Slice(lowestProbabilityCells, func(i, j int) bool {
		return coordLess(lowestProbabilityCells[i], lowestProbabilityCells[j])
	})

	pick := lowestProbabilityCells[director.rand.Intn(len(lowestProbabilityCells))]
	return game.RevealAt(pick), true
}

func (director *Director) logAction(strategy string, cellAction game.CellAction, numObservations int) {
	director.log.WithFields(logrus.Fields{
		"strategy":     strategy,
		"action":       cellAction.String(),
		"observations": numObservations,
		"pending":      director.pending.Len(),
	}).Debug("director acted")
}
