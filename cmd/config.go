package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/they4kman/sweepcore/game"
	"gopkg.in/yaml.v2"
)

const (
	envPreset     = "GOSWEEP_PRESET"
	envSafeRadius = "GOSWEEP_SAFE_RADIUS"
	envSeed       = "GOSWEEP_SEED"
)

// options are the settings a game starts with. Later sources override
// earlier ones: defaults, then the settings file, the environment and
// finally any flag given on the command line.
type options struct {
	Preset     string `yaml:"preset"`
	Width      *int   `yaml:"width"`
	Height     *int   `yaml:"height"`
	Mines      *int   `yaml:"mines"`
	Mode       string `yaml:"mode"`
	SafeRadius *int   `yaml:"safe_radius"`
	Seed       int64  `yaml:"seed"`
	Director   string `yaml:"director"`
	Color      bool   `yaml:"color"`
}

// flagValues holds what cobra parsed, before it is known which flags were set
type flagValues struct {
	preset        string
	width, height int
	mines         int
	mode          GameMode
	safeRadius    int
	seed          int64
	director      string
	configPath    string
	color         bool
	verbose       bool
}

func loadFile(path string, opts *options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, opts); err != nil {
		return fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return nil
}

// loadEnv reads a .env file from the working directory when there is one,
// then applies GOSWEEP_* variables
func loadEnv(opts *options) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	if preset, ok := os.LookupEnv(envPreset); ok {
		opts.Preset = preset
		opts.clearDimensions()
	}
	if radius, ok := os.LookupEnv(envSafeRadius); ok {
		value, err := strconv.Atoi(radius)
		if err != nil {
			return fmt.Errorf("%s: %w", envSafeRadius, err)
		}
		opts.SafeRadius = &value
	}
	if seed, ok := os.LookupEnv(envSeed); ok {
		value, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envSeed, err)
		}
		opts.Seed = value
	}
	return nil
}

// clearDimensions drops sizes set by a lower-priority source, so a preset
// from a higher one is not shadowed by them
func (opts *options) clearDimensions() {
	opts.Width, opts.Height, opts.Mines = nil, nil, nil
}

// applyFlags overlays the flags given on the command line. A preset or mode
// flag discards the dimensions or safe radius of lower-priority sources;
// dimension and radius flags given alongside still win.
func applyFlags(flags *pflag.FlagSet, values *flagValues, opts *options) {
	if flags.Changed("preset") {
		opts.Preset = values.preset
		opts.clearDimensions()
	}
	if flags.Changed("width") {
		opts.Width = &values.width
	}
	if flags.Changed("height") {
		opts.Height = &values.height
	}
	if flags.Changed("mines") {
		opts.Mines = &values.mines
	}
	if flags.Changed("mode") {
		opts.Mode = (*gameModeValue)(&values.mode).String()
		opts.SafeRadius = nil
	}
	if flags.Changed("safe-radius") {
		opts.SafeRadius = &values.safeRadius
	}
	if flags.Changed("seed") {
		opts.Seed = values.seed
	}
	if flags.Changed("director") {
		opts.Director = values.director
	}
	if flags.Changed("color") {
		opts.Color = values.color
	}
}

// gatherOptions merges every settings source for one invocation
func gatherOptions(flags *pflag.FlagSet, values *flagValues) (options, error) {
	var opts options
	if values.configPath != "" {
		if err := loadFile(values.configPath, &opts); err != nil {
			return opts, err
		}
	}
	if err := loadEnv(&opts); err != nil {
		return opts, err
	}
	applyFlags(flags, values, &opts)
	return opts, nil
}

// gameConfig turns options into a game configuration. An explicit safe
// radius wins over the one implied by the mode, and explicit dimensions win
// over the preset.
func (opts options) gameConfig() (game.Config, error) {
	config := game.NewConfig()

	if opts.Preset != "" {
		preset, found := game.LookupPreset(opts.Preset)
		if !found {
			return config, fmt.Errorf("%w: unknown preset %q (want one of %s)",
				game.ErrInvalidConfig, opts.Preset, presetChoices())
		}
		config = config.WithPreset(preset)
	}
	if opts.Width != nil {
		config.Width = *opts.Width
	}
	if opts.Height != nil {
		config.Height = *opts.Height
	}
	if opts.Mines != nil {
		config.Mines = *opts.Mines
	}

	if opts.Mode != "" {
		mode, err := parseGameMode(opts.Mode)
		if err != nil {
			return config, fmt.Errorf("%w: %v", game.ErrInvalidConfig, err)
		}
		config.SafeRadius = mode.SafeRadius()
	}
	if opts.SafeRadius != nil {
		config.SafeRadius = *opts.SafeRadius
	}

	config.Seed = opts.Seed
	return config, config.Validate()
}
