package random

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweepcore/game"
)

func newGame(t *testing.T, width, height, mines int) *game.Game {
	t.Helper()
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	config := game.NewConfig()
	config.Width, config.Height, config.Mines = width, height, mines
	config.Seed = 11
	config.Logger = logger

	g, err := game.New(config)
	require.NoError(t, err)
	return g
}

func TestNextSkipsRevealedAndFlagged(t *testing.T) {
	g := newGame(t, 4, 4, 2)
	_, err := g.ToggleFlag(0, 0)
	require.NoError(t, err)

	director := New(1)
	for i := 0; i < 50; i++ {
		action, ok := director.Next(g.Snapshot())
		require.True(t, ok)
		assert.Equal(t, game.ActionReveal, action.Action)
		assert.NotEqual(t, game.Coord{Row: 0, Col: 0}, action.At)
	}
}

func TestNextNothingLeft(t *testing.T) {
	g := newGame(t, 3, 3, 0)
	_, err := g.Reveal(1, 1)
	require.NoError(t, err)
	require.Equal(t, game.Won, g.Phase())

	_, ok := New(1).Next(g.Snapshot())
	assert.False(t, ok)
}

func TestCandidates(t *testing.T) {
	g := newGame(t, 3, 2, 0)
	_, err := g.ToggleFlag(0, 1)
	require.NoError(t, err)

	assert.Equal(t, []game.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	}, Candidates(g.Snapshot()))
}

func TestPlayEnds(t *testing.T) {
	g := newGame(t, 9, 9, 10)
	steps, err := game.Play(g, New(5), 1000)
	require.NoError(t, err)
	assert.Positive(t, steps)
	assert.True(t, g.Phase().Terminal())
}
