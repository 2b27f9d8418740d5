package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Preset is a named board size
type Preset struct {
	Name          string
	Width, Height int
	Mines         int
}

var (
	Easy   = Preset{Name: "easy", Width: 10, Height: 8, Mines: 10}
	Medium = Preset{Name: "medium", Width: 18, Height: 14, Mines: 40}
	Hard   = Preset{Name: "hard", Width: 24, Height: 20, Mines: 99}
)

// Presets lists the built-in presets, smallest first
func Presets() []Preset {
	return []Preset{Easy, Medium, Hard}
}

// LookupPreset finds a built-in preset by case-insensitive name
func LookupPreset(name string) (Preset, bool) {
	for _, preset := range Presets() {
		if strings.EqualFold(preset.Name, name) {
			return preset, true
		}
	}
	return Preset{}, false
}

func (preset Preset) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", preset.Name, preset.Width, preset.Height, preset.Mines)
}

type Config struct {
	Width, Height int
	Mines         int

	// Cells kept clear around the first revealed cell, as a Chebyshev radius.
	// 0 keeps only the revealed cell itself clear.
	SafeRadius int

	// Whether reveals report boundary markers
	Boundaries bool

	// Seed for hazard placement; 0 picks one from the clock
	Seed int64

	// Logger receives engine events; defaults to the package logger
	Logger logrus.FieldLogger
	// Clock is consulted for start, end and elapsed times; defaults to time.Now
	Clock func() time.Time
}

// NewConfig returns the defaults: a medium board whose first click also
// clears its surroundings
func NewConfig() Config {
	return Config{
		Width:      Medium.Width,
		Height:     Medium.Height,
		Mines:      Medium.Mines,
		SafeRadius: 1,
		Boundaries: true,
	}
}

// WithPreset returns a copy of config sized by preset
func (config Config) WithPreset(preset Preset) Config {
	config.Width = preset.Width
	config.Height = preset.Height
	config.Mines = preset.Mines
	return config
}

// Validate checks that a board of this size can always hold its mines outside
// the safe zone, wherever the first click lands
func (config Config) Validate() error {
	return validateBoard(config.Width, config.Height, config.Mines, config.SafeRadius)
}

func validateBoard(width, height, mines, safeRadius int) error {
	switch {
	case width < 1 || height < 1:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, width, height)
	case mines < 0:
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidConfig, mines)
	case safeRadius < 0:
		return fmt.Errorf("%w: negative safe radius %d", ErrInvalidConfig, safeRadius)
	}

	available := width*height - SafeZoneSize(width, height, safeRadius)
	if mines > available {
		return fmt.Errorf("%w: %d mines do not fit in %d cells outside a radius %d safe zone",
			ErrInvalidConfig, mines, available, safeRadius)
	}
	return nil
}
