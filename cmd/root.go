package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/sweepcore/director/constraint"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	values := &flagValues{}

	cmd := &cobra.Command{
		Use:   "gosweep",
		Short: "Play manual or computer-driven Minesweeper in the terminal",
		Long: `gosweep draws a Minesweeper board in the terminal and reads one
command per line:

	r ROW COL   reveal a cell
	f ROW COL   toggle a flag
	c ROW COL   reveal around a satisfied number
	n           start over on a fresh board
	q           quit

Rows and columns count from 0 at the top left. Pass -d to watch the
constraint solver finish a game instead, or --director=random for blind
guessing.

Board size, mode and seed can also be kept in a YAML file passed with
--config, or in GOSWEEP_PRESET, GOSWEEP_SAFE_RADIUS and GOSWEEP_SEED (read
from .env when present). Flags take precedence over the environment, which
takes precedence over the file.
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, values)
		},
	}

	bindFlags(cmd.Flags(), values)

	return cmd
}

func bindFlags(flags *pflag.FlagSet, values *flagValues) {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	flags.Bool("help", false, "Help for this command")

	flags.Var(newPresetValue(game.Medium.Name, &values.preset), "preset",
		fmt.Sprintf("Board preset, one of %s", presetChoices()))
	flags.IntVarP(&values.width, "width", "w", game.Medium.Width, "Width of game board, in cells (overrides the preset)")
	flags.IntVarP(&values.height, "height", "h", game.Medium.Height, "Height of game board, in cells (overrides the preset)")
	flags.IntVarP(&values.mines, "mines", "m", game.Medium.Mines, "Number of mines to place in the game board (overrides the preset)")
	flags.Var(newGameModeValue(Win7, &values.mode), "mode", `Game mode, controlling behaviour of first click.
win7: all cells surrounding the first-clicked cell are cleared of mines
classic: only the first-clicked cell is guaranteed clear`)
	flags.IntVar(&values.safeRadius, "safe-radius", 1, "Radius of the mine-free zone around the first click (overrides the mode)")
	flags.Int64Var(&values.seed, "seed", 0, "Seed for mine placement and directors; 0 picks one from the clock")
	flags.VarP(newDirectorValue("", &values.director), "director", "d", "Make the computer play: constraint or random")
	flags.Lookup("director").NoOptDefVal = "constraint"
	flags.StringVar(&values.configPath, "config", "", "YAML settings file")
	flags.BoolVar(&values.color, "color", false, "Colour the board")
	flags.BoolVarP(&values.verbose, "verbose", "v", false, "Log game events to stderr")
}

func run(cmd *cobra.Command, values *flagValues) error {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	if values.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	opts, err := gatherOptions(cmd.Flags(), values)
	if err != nil {
		return err
	}
	config, err := opts.gameConfig()
	if err != nil {
		return err
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	config.Logger = logger
	logger.WithFields(logrus.Fields{
		"width":  config.Width,
		"height": config.Height,
		"mines":  config.Mines,
		"radius": config.SafeRadius,
		"seed":   config.Seed,
	}).Info("starting")

	g, err := game.New(config)
	if err != nil {
		return err
	}
	render := newRenderer(opts.Color)

	switch opts.Director {
	case "":
		s := &session{game: g, out: cmd.OutOrStdout(), render: render, log: logger}
		return s.run(cmd.InOrStdin())
	case "random":
		return autoplay(g, random.New(config.Seed), cmd.OutOrStdout(), render)
	case "constraint":
		return autoplay(g, constraint.New(config.Seed, logger), cmd.OutOrStdout(), render)
	default:
		return fmt.Errorf("invalid director %q (want one of %s)", opts.Director, choices(directors))
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
