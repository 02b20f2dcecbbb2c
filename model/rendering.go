package model

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/logrusorgru/aurora"

	"github.com/sheikhrachel/game-of-war/rules"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// View is the read-only side of a board that the renderer draws
type View interface {
	Width() int
	All() iter.Seq2[Point, Cell]
}

// TerminalRenderer draws a board as coloured blocks, one team per colour
type TerminalRenderer struct {
	out io.Writer
	au  aurora.Aurora
}

// NewTerminalRenderer writes frames to out, with ANSI colours when colors is set
func NewTerminalRenderer(out io.Writer, colors bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, au: aurora.NewAurora(colors)}
}

// Display renders the board
func (r *TerminalRenderer) Display(v View) error {
	w := bufio.NewWriter(r.out)
	last := v.Width() - 1
	for p, c := range v.All() {
		fmt.Fprint(w, r.paint(c))
		if p.X == last {
			fmt.Fprintln(w)
		}
	}
	return w.Flush()
}

func (r *TerminalRenderer) paint(c Cell) any {
	if !c.Alive {
		return gridPosEmpty
	}
	switch c.Team {
	case rules.Red:
		return r.au.Red(gridPosBlock)
	case rules.Blue:
		return r.au.Blue(gridPosBlock)
	default:
		return r.au.White(gridPosBlock)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out, ansiClearScreen)
	return err
}
