package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepcore/game"
)

const usage = `commands:
  r ROW COL   reveal a cell
  f ROW COL   toggle a flag
  c ROW COL   reveal around a satisfied number
  n           start a new game
  q           quit`

// session plays one game after another over a line-oriented terminal
type session struct {
	game   *game.Game
	out    io.Writer
	render renderer
	log    logrus.FieldLogger
}

func (s *session) run(in io.Reader) error {
	s.show()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		quit, err := s.handle(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// handle runs one command line. Errors are the player's to fix and never end
// the session.
func (s *session) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "q", "quit":
		return true, nil
	case "n", "new":
		config := s.game.Config()
		if err := s.game.NewGame(config.Width, config.Height, config.Mines); err != nil {
			return false, err
		}
		s.show()
		return false, nil
	case "h", "help", "?":
		fmt.Fprintln(s.out, usage)
		return false, nil
	}

	action, err := parseAction(fields)
	if err != nil {
		return false, err
	}

	phase := s.game.Phase()
	outcome, err := s.game.Apply(action)
	if err != nil {
		return false, err
	}
	s.log.WithFields(logrus.Fields{
		"action":     action.String(),
		"cleared":    len(outcome.Cleared),
		"boundaries": len(outcome.Boundaries),
	}).Debug("applied")

	s.show()
	if outcome.Phase.Terminal() && !phase.Terminal() {
		fmt.Fprintln(s.out, s.render.Result(s.game.Snapshot()))
		fmt.Fprintln(s.out, "n for a new game, q to quit")
	}
	return false, nil
}

func (s *session) show() {
	view := s.game.Snapshot()
	fmt.Fprint(s.out, s.render.Board(view))
	fmt.Fprintln(s.out, s.render.Status(view))
}

var actionCommands = map[string]game.Action{
	"r":      game.ActionReveal,
	"reveal": game.ActionReveal,
	"f":      game.ActionFlag,
	"flag":   game.ActionFlag,
	"c":      game.ActionChord,
	"chord":  game.ActionChord,
}

func parseAction(fields []string) (game.CellAction, error) {
	action, known := actionCommands[fields[0]]
	if !known {
		return game.CellAction{}, fmt.Errorf("unknown command %q, h for help", fields[0])
	}
	if len(fields) != 3 {
		return game.CellAction{}, fmt.Errorf("%s takes ROW COL", fields[0])
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.CellAction{}, fmt.Errorf("bad row %q", fields[1])
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return game.CellAction{}, fmt.Errorf("bad column %q", fields[2])
	}
	return game.CellAction{At: game.Coord{Row: row, Col: col}, Action: action}, nil
}

// autoplay lets director finish the game and prints the final board
func autoplay(g *game.Game, director game.Director, out io.Writer, render renderer) error {
	config := g.Config()
	steps, err := game.Play(g, director, 4*config.Width*config.Height)
	if err != nil {
		return err
	}

	view := g.Snapshot()
	fmt.Fprint(out, render.Board(view))
	fmt.Fprintln(out, render.Status(view))
	if result := render.Result(view); result != "" {
		fmt.Fprintf(out, "%s (%d moves)\n", result, steps)
	} else {
		fmt.Fprintf(out, "director stopped after %d moves\n", steps)
	}
	return nil
}
