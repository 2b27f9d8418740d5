package game

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// layoutPlacer puts hazards wherever rows holds a '*', ignoring the origin
type layoutPlacer struct {
	rows []string
}

func (layout layoutPlacer) Place(grid *Grid, origin Coord, mines int) error {
	if grid.placed {
		return ErrAlreadyPlaced
	}
	for row, line := range layout.rows {
		for col, c := range line {
			if c == '*' {
				grid.cellAt(Coord{Row: row, Col: col}).kind = Hazard
				grid.numHazards++
			}
		}
	}
	settleCounts(grid)
	return nil
}

func (layout layoutPlacer) mines() int {
	count := 0
	for _, line := range layout.rows {
		for _, c := range line {
			if c == '*' {
				count++
			}
		}
	}
	return count
}

func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	grid := newGrid(len(rows[0]), len(rows))
	require.NoError(t, layoutPlacer{rows: rows}.Place(grid, Coord{}, 0))
	return grid
}

// fakeClock advances by step every time it is read
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (clock *fakeClock) Now() time.Time {
	now := clock.now
	clock.now = clock.now.Add(clock.step)
	return now
}

func quietConfig() (Config, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	config := NewConfig()
	config.Seed = 42
	config.Logger = logger
	return config, hook
}

// newLayoutGame returns a game whose hazards land exactly where rows says
func newLayoutGame(t *testing.T, rows ...string) (*Game, *test.Hook) {
	t.Helper()
	layout := layoutPlacer{rows: rows}

	config, hook := quietConfig()
	config.Width, config.Height = len(rows[0]), len(rows)
	config.Mines = layout.mines()
	config.SafeRadius = 0

	game, err := New(config)
	require.NoError(t, err)
	game.placer = layout
	return game, hook
}

func countHazards(grid *Grid) int {
	count := 0
	grid.ForEachCell(func(_ Coord, cell Cell) {
		if cell.IsHazard() {
			count++
		}
	})
	return count
}
