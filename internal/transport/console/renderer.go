package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	colorX     = "#E06C75"
	colorO     = "#61AFEF"
	colorIndex = "#5C6370"
)

// Renderer prints the board the way the prompt numbers it, one "index:mark" per cell.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer - with color disabled the output never contains escape sequences.
func NewRenderer(w io.Writer, color bool) *Renderer {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{output: termenv.NewOutput(w, opts...)}
}

// Board - prints the board in the layout of entity.Board.String with colored marks.
func (that *Renderer) Board(board entity.Board) {
	fmt.Fprint(that.output, "\n"+board.Render(func(index int, mark entity.Mark) string {
		label := that.output.String(fmt.Sprintf("%d:", index)).Foreground(that.output.Color(colorIndex))
		return label.String() + that.mark(mark)
	}))
}

func (that *Renderer) mark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.output.String(string(mark)).Foreground(that.output.Color(colorX)).Bold().String()
	case entity.PlayerO:
		return that.output.String(string(mark)).Foreground(that.output.Color(colorO)).Bold().String()
	default:
		return " "
	}
}

// Line - prints a plain message.
func (that *Renderer) Line(format string, args ...any) {
	fmt.Fprintf(that.output, format+"\n", args...)
}

// Prompt - prints a message without a line break.
func (that *Renderer) Prompt(format string, args ...any) {
	fmt.Fprintf(that.output, format, args...)
}

// Result - prints the end of game message in bold.
func (that *Renderer) Result(message string) {
	fmt.Fprintln(that.output, that.output.String(message).Bold().String())
}
