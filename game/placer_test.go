package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceCountAndSafeZone(t *testing.T) {
	origins := func(preset Preset) []Coord {
		return []Coord{
			{0, 0},
			{preset.Height - 1, preset.Width - 1},
			{preset.Height / 2, preset.Width / 2},
			{0, preset.Width / 2},
		}
	}

	for _, preset := range Presets() {
		for _, radius := range []int{0, 1} {
			for _, origin := range origins(preset) {
				name := fmt.Sprintf("%s/r%d/%v", preset.Name, radius, origin)
				t.Run(name, func(t *testing.T) {
					for seed := int64(1); seed <= 10; seed++ {
						grid := newGrid(preset.Width, preset.Height)
						placer := NewHazardPlacer(radius, rand.New(rand.NewSource(seed)), nil)
						require.NoError(t, placer.Place(grid, origin, preset.Mines))

						require.Equal(t, preset.Mines, countHazards(grid))
						require.Equal(t, preset.Mines, grid.NumHazards())
						require.True(t, grid.Placed())

						grid.ForEachCell(func(coord Coord, cell Cell) {
							if abs(coord.Row-origin.Row) <= radius && abs(coord.Col-origin.Col) <= radius {
								require.False(t, cell.IsHazard(), "hazard at %v inside safe zone", coord)
							}
						})
					}
				})
			}
		}
	}
}

func TestPlaceAdjacency(t *testing.T) {
	grid := newGrid(Hard.Width, Hard.Height)
	placer := NewHazardPlacer(1, rand.New(rand.NewSource(7)), nil)
	require.NoError(t, placer.Place(grid, Coord{5, 5}, Hard.Mines))

	grid.ForEachCell(func(coord Coord, cell Cell) {
		if cell.IsHazard() {
			return
		}
		want := 0
		for _, neighbor := range grid.Neighbors8(coord) {
			if other, _ := grid.At(neighbor); other.IsHazard() {
				want++
			}
		}
		assert.Equal(t, want, cell.Adjacent(), "adjacent count at %v", coord)
		assert.Equal(t, want == 0, cell.Kind() == Blank, "blank iff zero at %v", coord)
		if want > 0 {
			assert.Equal(t, Numbered(want), cell.Kind())
		}
	})
}

func TestPlaceEveryEligibleCell(t *testing.T) {
	// Only the origin is excluded, so every other cell becomes a hazard
	grid := newGrid(3, 3)
	placer := NewHazardPlacer(0, rand.New(rand.NewSource(1)), nil)
	require.NoError(t, placer.Place(grid, Coord{1, 1}, 8))

	center, _ := grid.At(Coord{1, 1})
	assert.Equal(t, Numbered(8), center.Kind())
	for _, neighbor := range grid.Neighbors8(Coord{1, 1}) {
		cell, _ := grid.At(neighbor)
		assert.True(t, cell.IsHazard())
	}
}

func TestPlaceErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("TooManyMines", func(t *testing.T) {
		grid := newGrid(3, 3)
		err := NewHazardPlacer(1, rng, nil).Place(grid, Coord{1, 1}, 1)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.False(t, grid.Placed())
		assert.Zero(t, countHazards(grid))
	})
	t.Run("NegativeMines", func(t *testing.T) {
		err := NewHazardPlacer(0, rng, nil).Place(newGrid(2, 2), Coord{0, 0}, -1)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
	t.Run("OriginOutOfBounds", func(t *testing.T) {
		err := NewHazardPlacer(0, rng, nil).Place(newGrid(2, 2), Coord{2, 0}, 1)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
	t.Run("Twice", func(t *testing.T) {
		grid := newGrid(4, 4)
		placer := NewHazardPlacer(0, rng, nil)
		require.NoError(t, placer.Place(grid, Coord{0, 0}, 3))
		assert.ErrorIs(t, placer.Place(grid, Coord{0, 0}, 3), ErrAlreadyPlaced)
		assert.Equal(t, 3, countHazards(grid))
	})
}

func TestPlaceCornerOriginHasMoreRoom(t *testing.T) {
	// A corner safe zone covers 4 cells instead of 9
	grid := newGrid(3, 3)
	placer := NewHazardPlacer(1, rand.New(rand.NewSource(3)), nil)
	require.NoError(t, placer.Place(grid, Coord{0, 0}, 5))
	assert.Equal(t, 5, countHazards(grid))
}

func TestPlaceDeterministicForSeed(t *testing.T) {
	layout := func(seed int64) string {
		game, err := New(Config{Width: 16, Height: 16, Mines: 40, SafeRadius: 1, Seed: seed})
		require.NoError(t, err)
		_, err = game.Reveal(8, 8)
		require.NoError(t, err)

		out := make([]byte, 0, game.grid.NumCells())
		game.grid.ForEachCell(func(_ Coord, cell Cell) {
			if cell.IsHazard() {
				out = append(out, '*')
			} else {
				out = append(out, '.')
			}
		})
		return string(out)
	}

	assert.Equal(t, layout(99), layout(99))
	assert.NotEqual(t, layout(99), layout(100))
}

func TestPlaceLogs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	placer := NewHazardPlacer(1, rand.New(rand.NewSource(1)), logger)
	require.NoError(t, placer.Place(newGrid(5, 5), Coord{2, 2}, 4))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "placed hazards", entry.Message)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, 4, entry.Data["mines"])
	assert.Equal(t, 16, entry.Data["eligible"])
}

func TestSafeZoneSize(t *testing.T) {
	cases := []struct {
		width, height, radius, want int
	}{
		{10, 8, 0, 1},
		{10, 8, 1, 9},
		{10, 8, 2, 25},
		{2, 8, 1, 6},
		{1, 1, 1, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SafeZoneSize(tc.width, tc.height, tc.radius),
			"SafeZoneSize(%d, %d, %d)", tc.width, tc.height, tc.radius)
	}
}
