package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/they4kman/sweepcore/game"
)

// the traditional minesweeper palette, as ANSI colors
var numberColors = map[rune]lipgloss.Color{
	'1': lipgloss.Color("12"),
	'2': lipgloss.Color("2"),
	'3': lipgloss.Color("9"),
	'4': lipgloss.Color("4"),
	'5': lipgloss.Color("1"),
	'6': lipgloss.Color("6"),
	'7': lipgloss.Color("0"),
	'8': lipgloss.Color("8"),
}

type renderer struct {
	color  bool
	styles map[rune]lipgloss.Style
}

func newRenderer(color bool) renderer {
	styles := map[rune]lipgloss.Style{
		'#': lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		'f': lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		'x': lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true),
		'O': lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		'*': lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true),
	}
	for number, fg := range numberColors {
		styles[number] = lipgloss.NewStyle().Foreground(fg).Bold(true)
	}
	return renderer{color: color, styles: styles}
}

// Board draws the grid with a column ruler on top and row numbers on the left
func (r renderer) Board(view game.BoardView) string {
	rowWidth := len(fmt.Sprint(view.Height - 1))

	var builder strings.Builder
	builder.WriteString(strings.Repeat(" ", rowWidth+1))
	for col := 0; col < view.Width; col++ {
		builder.WriteByte(byte('0' + col%10))
	}
	builder.WriteByte('\n')

	for row, cells := range view.Cells {
		fmt.Fprintf(&builder, "%*d ", rowWidth, row)
		for _, cell := range cells {
			builder.WriteString(r.cell(cell.Rune()))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func (r renderer) cell(c rune) string {
	if !r.color {
		return string(c)
	}
	if style, ok := r.styles[c]; ok {
		return style.Render(string(c))
	}
	return string(c)
}

// Status summarises the game in one line
func (r renderer) Status(view game.BoardView) string {
	return fmt.Sprintf("%s  mines left: %d  time: %.1fs",
		view.Phase, view.MinesRemaining(), view.ElapsedSeconds())
}

// Result announces how a finished game ended
func (r renderer) Result(view game.BoardView) string {
	switch view.Phase {
	case game.Won:
		return fmt.Sprintf("you won in %.1fs", view.ElapsedSeconds())
	case game.Lost:
		return fmt.Sprintf("boom, you lost after %.1fs", view.ElapsedSeconds())
	default:
		return ""
	}
}
