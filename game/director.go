package game

import "fmt"

type Action int

const (
	ActionReveal Action = iota
	ActionFlag
	ActionChord
)

func (action Action) String() string {
	switch action {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	case ActionChord:
		return "chord"
	default:
		return fmt.Sprintf("action(%d)", int(action))
	}
}

// CellAction is a player intent aimed at one cell
type CellAction struct {
	At     Coord
	Action Action
}

func RevealAt(coord Coord) CellAction {
	return CellAction{At: coord, Action: ActionReveal}
}

func FlagAt(coord Coord) CellAction {
	return CellAction{At: coord, Action: ActionFlag}
}

func ChordAt(coord Coord) CellAction {
	return CellAction{At: coord, Action: ActionChord}
}

func (cellAction CellAction) String() string {
	return fmt.Sprintf("%s %v", cellAction.Action, cellAction.At)
}

// Director plays a game on its own. It only ever sees what a human player
// would see.
type Director interface {
	// Next picks the following action, or returns false when it has none
	Next(view BoardView) (CellAction, bool)
}

// Play lets director act on game until the game ends, the director gives up,
// or maxSteps actions were applied. It returns the number of actions applied.
func Play(game *Game, director Director, maxSteps int) (int, error) {
	steps := 0
	for steps < maxSteps && !game.Phase().Terminal() {
		action, ok := director.Next(game.Snapshot())
		if !ok {
			break
		}
		if _, err := game.Apply(action); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}
