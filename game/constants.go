package game

import "fmt"

// Kind is what a cell holds once hazards are placed. Hidden only ever
// appears in a CellView, never on a Cell.
type Kind int8
type Phase int
type Side int

const (
	Hidden Kind = iota - 1
	Blank
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Hazard
)

var kindNames = map[Kind]string{
	Hidden: "hidden",
	Blank:  "blank",
	Hazard: "hazard",
}

// Numbered returns the kind of a safe cell touching n hazards, 1 <= n <= 8
func Numbered(n int) Kind {
	if n < 1 || n > 8 {
		panic(fmt.Sprintf("game: numbered kind out of range: %d", n))
	}
	return Kind(n)
}

func kindForCount(n int) Kind {
	if n == 0 {
		return Blank
	}
	return Numbered(n)
}

func (kind Kind) IsNumbered() bool {
	return kind >= Number1 && kind <= Number8
}

// Count is the adjacent hazard count carried by the kind; 0 for anything
// that is not numbered
func (kind Kind) Count() int {
	if kind.IsNumbered() {
		return int(kind)
	}
	return 0
}

func (kind Kind) String() string {
	if kind.IsNumbered() {
		return fmt.Sprintf("numbered(%d)", int(kind))
	}
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(kind))
}

const (
	NotStarted Phase = iota
	Playing
	Won
	Lost
)

// Terminal reports whether the phase only accepts a new game
func (phase Phase) Terminal() bool {
	return phase == Won || phase == Lost
}

func (phase Phase) String() string {
	switch phase {
	case NotStarted:
		return "not-started"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("phase(%d)", int(phase))
	}
}

const (
	North Side = iota
	East
	South
	West
)

func (side Side) String() string {
	switch side {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}
