package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/trainer"
)

// Renderer writes boards and progress to a terminal, optionally in colour.
type Renderer struct {
	out io.Writer
	au  aurora.Aurora
}

func NewRenderer(out io.Writer, colors bool) *Renderer {
	return &Renderer{
		out: out,
		au:  aurora.NewAurora(colors),
	}
}

func (that *Renderer) Board(board *entity.Board) {
	separator := that.au.Gray(12, "---+---+---").String()

	for row := range entity.BoardSize {
		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			cells = append(cells, " "+that.mark(board.At(row, col))+" ")
		}

		fmt.Fprintln(that.out, strings.Join(cells, that.au.Gray(12, "|").String()))

		if row < entity.BoardSize-1 {
			fmt.Fprintln(that.out, separator)
		}
	}
}

func (that *Renderer) Progress(progress trainer.Progress) {
	fmt.Fprintf(that.out, "%s %d/%d games (%.0f%%)  %s %d  %s %d  %s %d\n",
		that.au.Bold("training"),
		progress.Episode, progress.Total, progress.Percent,
		that.au.Red("X wins"), progress.WinsX,
		that.au.Blue("O wins"), progress.WinsO,
		that.au.Yellow("draws"), progress.Draws,
	)
}

func (that *Renderer) Result(board *entity.Board) {
	switch board.Winner() {
	case entity.MarkX:
		fmt.Fprintln(that.out, that.au.Red("X wins!"))
	case entity.MarkO:
		fmt.Fprintln(that.out, that.au.Blue("O wins!"))
	default:
		fmt.Fprintln(that.out, that.au.Yellow("Game ended in a draw!"))
	}
}

func (that *Renderer) Line(format string, args ...any) {
	fmt.Fprintf(that.out, format+"\n", args...)
}

func (that *Renderer) mark(mark entity.Mark) string {
	switch mark {
	case entity.MarkX:
		return that.au.Red(string(mark)).Bold().String()
	case entity.MarkO:
		return that.au.Blue(string(mark)).Bold().String()
	default:
		return " "
	}
}
