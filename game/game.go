package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// ClearedCell is a cell revealed by an action, with what it turned out to be
type ClearedCell struct {
	At   Coord
	Kind Kind
}

// RevealOutcome is the complete effect of one action, for presentation
type RevealOutcome struct {
	Cleared    []ClearedCell
	Boundaries []Boundary
	Phase      Phase
}

// Game owns one grid and moves it through NotStarted, Playing, Won and Lost.
// A Game is not safe for concurrent use.
type Game struct {
	id     uuid.UUID
	config Config
	grid   *Grid

	placer placer
	engine *RevealEngine
	log    logrus.FieldLogger
	clock  func() time.Time

	phase         Phase
	revealedCount int
	numFlags      int

	detonated          Coord
	startTime, endTime time.Time
}

// New validates config and returns a game waiting for its first reveal
func New(config Config) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := config.Logger
	if logger == nil {
		logger = log
	}
	clock := config.Clock
	if clock == nil {
		clock = time.Now
	}

	game := &Game{
		config: config,
		engine: &RevealEngine{Boundaries: config.Boundaries},
		log:    logger,
		clock:  clock,
	}
	game.placer = NewHazardPlacer(config.SafeRadius, rand.New(rand.NewSource(seed)), logger)
	game.reset()

	return game, nil
}

// NewGame discards the current board and starts over on a blank one of the
// given size. On error the current game is left untouched.
func (game *Game) NewGame(width, height, mines int) error {
	if err := validateBoard(width, height, mines, game.config.SafeRadius); err != nil {
		return err
	}
	game.config.Width, game.config.Height, game.config.Mines = width, height, mines
	game.reset()
	return nil
}

func (game *Game) reset() {
	game.id = uuid.New()
	game.grid = newGrid(game.config.Width, game.config.Height)
	game.phase = NotStarted
	game.revealedCount = 0
	game.numFlags = 0
	game.detonated = Coord{}
	game.startTime, game.endTime = time.Time{}, time.Time{}

	game.log.WithFields(logrus.Fields{
		"game":   game.id.String(),
		"width":  game.config.Width,
		"height": game.config.Height,
		"mines":  game.config.Mines,
	}).Debug("new game")
}

func (game *Game) ID() uuid.UUID {
	return game.id
}

func (game *Game) Phase() Phase {
	return game.phase
}

func (game *Game) Config() Config {
	return game.config
}

// RevealedCount is the number of safe cells revealed so far
func (game *Game) RevealedCount() int {
	return game.revealedCount
}

// Elapsed is the time since the first reveal, frozen once the game ends
func (game *Game) Elapsed() time.Duration {
	switch {
	case game.startTime.IsZero():
		return 0
	case !game.endTime.IsZero():
		return game.endTime.Sub(game.startTime)
	default:
		return game.clock().Sub(game.startTime)
	}
}

func (game *Game) checkBounds(coord Coord) error {
	if !game.grid.InBounds(coord) {
		return fmt.Errorf("%w: %v on a %dx%d board", ErrOutOfBounds, coord, game.grid.width, game.grid.height)
	}
	return nil
}

// Reveal opens the cell at (row, col). The first reveal of a game places the
// hazards around it. Flagged cells and input after the game ended are
// ignored.
func (game *Game) Reveal(row, col int) (RevealOutcome, error) {
	coord := Coord{Row: row, Col: col}
	if err := game.checkBounds(coord); err != nil {
		return game.outcome(RevealResult{}), err
	}
	if game.phase.Terminal() {
		game.ignored(ActionReveal, coord)
		return game.outcome(RevealResult{}), nil
	}
	if !game.grid.cellAt(coord).hidden() {
		return game.outcome(RevealResult{}), nil
	}

	if game.phase == NotStarted {
		if err := game.placer.Place(game.grid, coord, game.config.Mines); err != nil {
			return game.outcome(RevealResult{}), err
		}
		game.startTime = game.clock()
		game.setPhase(Playing)
	}

	result := game.engine.Reveal(game.grid, coord)
	game.settle(result, coord)
	return game.outcome(result), nil
}

// Chord reveals every hidden, unflagged neighbor of a revealed numbered cell
// once exactly that many neighbors are flagged. Anything else is a no-op.
func (game *Game) Chord(row, col int) (RevealOutcome, error) {
	coord := Coord{Row: row, Col: col}
	if err := game.checkBounds(coord); err != nil {
		return game.outcome(RevealResult{}), err
	}
	if game.phase != Playing {
		if game.phase.Terminal() {
			game.ignored(ActionChord, coord)
		}
		return game.outcome(RevealResult{}), nil
	}

	cell := game.grid.cellAt(coord)
	if !cell.isRevealed || !cell.kind.IsNumbered() {
		return game.outcome(RevealResult{}), nil
	}
	neighbors := game.grid.Neighbors8(coord)
	numFlagged := 0
	for _, neighbor := range neighbors {
		if game.grid.cellAt(neighbor).isFlagged {
			numFlagged++
		}
	}
	if numFlagged != cell.kind.Count() {
		return game.outcome(RevealResult{}), nil
	}

	var merged RevealResult
	var plain RevealEngine
	hit := coord
	for _, neighbor := range neighbors {
		result := plain.Reveal(game.grid, neighbor)
		merged.Cleared = append(merged.Cleared, result.Cleared...)
		if result.HitHazard {
			merged.HitHazard = true
			hit = neighbor
			break
		}
	}
	if game.engine.Boundaries && !merged.HitHazard {
		merged.Boundaries = boundaries(game.grid, merged.Cleared)
	}

	game.settle(merged, hit)
	return game.outcome(merged), nil
}

// ToggleFlag flips the flag on a hidden cell and returns the new state.
// Revealed cells and input after the game ended leave the flag unchanged.
func (game *Game) ToggleFlag(row, col int) (bool, error) {
	coord := Coord{Row: row, Col: col}
	if err := game.checkBounds(coord); err != nil {
		return false, err
	}

	cell := game.grid.cellAt(coord)
	if game.phase.Terminal() {
		game.ignored(ActionFlag, coord)
		return cell.isFlagged, nil
	}
	if cell.isRevealed {
		return false, nil
	}

	if cell.toggleFlagged() {
		game.numFlags++
	} else {
		game.numFlags--
	}
	return cell.isFlagged, nil
}

// Apply performs a CellAction
func (game *Game) Apply(cellAction CellAction) (RevealOutcome, error) {
	switch cellAction.Action {
	case ActionReveal:
		return game.Reveal(cellAction.At.Row, cellAction.At.Col)
	case ActionChord:
		return game.Chord(cellAction.At.Row, cellAction.At.Col)
	case ActionFlag:
		_, err := game.ToggleFlag(cellAction.At.Row, cellAction.At.Col)
		return game.outcome(RevealResult{}), err
	default:
		return game.outcome(RevealResult{}), fmt.Errorf("game: unknown action %v", cellAction.Action)
	}
}

// settle applies the win/loss rules to the result of a reveal. hit is the
// hazard that was revealed, if any.
func (game *Game) settle(result RevealResult, hit Coord) {
	if result.HitHazard {
		game.lose(hit)
		return
	}
	game.revealedCount += len(result.Cleared)
	if game.revealedCount == game.grid.NumCells()-game.grid.numHazards {
		game.win()
	}
}

func (game *Game) win() {
	game.endTime = game.clock()
	game.setPhase(Won)
}

func (game *Game) lose(hit Coord) {
	game.detonated = hit
	game.endTime = game.clock()

	// Show the remaining hazards. Flagged ones keep their flag.
	for idx := range game.grid.cells {
		cell := &game.grid.cells[idx]
		if cell.kind == Hazard && !cell.isFlagged {
			cell.reveal()
		}
	}
	game.setPhase(Lost)
}

func (game *Game) setPhase(phase Phase) {
	game.phase = phase
	game.log.WithFields(logrus.Fields{
		"game":     game.id.String(),
		"phase":    phase.String(),
		"revealed": game.revealedCount,
		"elapsed":  game.Elapsed().String(),
	}).Info("phase changed")
}

func (game *Game) ignored(action Action, coord Coord) {
	game.log.WithFields(logrus.Fields{
		"game":   game.id.String(),
		"phase":  game.phase.String(),
		"action": action.String(),
		"at":     coord.String(),
	}).Debug("ignoring input after game end")
}

func (game *Game) outcome(result RevealResult) RevealOutcome {
	out := RevealOutcome{
		Boundaries: result.Boundaries,
		Phase:      game.phase,
	}
	if len(result.Cleared) > 0 {
		out.Cleared = make([]ClearedCell, len(result.Cleared))
		for i, coord := range result.Cleared {
			out.Cleared[i] = ClearedCell{At: coord, Kind: game.grid.cellAt(coord).kind}
		}
	}
	return out
}

// Snapshot copies out the player-visible state. Hidden cells never expose
// their kind unless the game is lost.
func (game *Game) Snapshot() BoardView {
	view := BoardView{
		GameID:  game.id,
		Phase:   game.phase,
		Elapsed: game.Elapsed(),
		Width:   game.grid.width,
		Height:  game.grid.height,
		Mines:   game.config.Mines,
		Flags:   game.numFlags,
		Cells:   make([][]CellView, game.grid.height),
	}

	lost := game.phase == Lost
	for row := range view.Cells {
		view.Cells[row] = make([]CellView, game.grid.width)
	}
	game.grid.ForEachCell(func(coord Coord, cell Cell) {
		cellView := CellView{
			Hidden:  !cell.isRevealed,
			Flagged: cell.isFlagged,
			Kind:    Hidden,
		}
		if cell.isRevealed || lost {
			cellView.Kind = cell.kind
		}
		if lost {
			cellView.Detonated = coord == game.detonated
			cellView.WrongFlag = cell.isFlagged && cell.kind != Hazard
		}
		view.Cells[coord.Row][coord.Col] = cellView
	})

	return view
}
