package model

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	gridPosAlive = "▣"
	gridPosDead  = "▢"
)

// Render draws the bounding box of g top row first, glyphs separated by a
// single space and each row terminated by a newline
func Render(g Generation, alive, dead string) string {
	var (
		b       strings.Builder
		corners = CornersOf(g)
		row     = make([]string, 0, corners.TopRight.X-corners.BottomLeft.X+1)
	)

	for y := corners.TopRight.Y; y >= corners.BottomLeft.Y; y-- {
		row = row[:0]
		for x := corners.BottomLeft.X; x <= corners.TopRight.X; x++ {
			if g.Contains(Cell{X: x, Y: y}) {
				row = append(row, alive)
			} else {
				row = append(row, dead)
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(row, " "), " \t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// TerminalRenderer writes generations as text
type TerminalRenderer struct {
	Alive string
	Dead  string
	Out   io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout with the given
// glyphs, falling back to the defaults when empty
func NewTerminalRenderer(alive, dead string) *TerminalRenderer {
	if alive == "" {
		alive = gridPosAlive
	}
	if dead == "" {
		dead = gridPosDead
	}
	return &TerminalRenderer{Alive: alive, Dead: dead, Out: os.Stdout}
}

// Display renders one generation
func (r *TerminalRenderer) Display(g Generation) error {
	_, err := fmt.Fprint(r.Out, Render(g, r.Alive, r.Dead))
	return err
}

// DisplayHistory renders every generation, separated by a blank line
func (r *TerminalRenderer) DisplayHistory(h History) error {
	for i, g := range h {
		if i > 0 {
			if _, err := fmt.Fprintln(r.Out); err != nil {
				return err
			}
		}
		if err := r.Display(g); err != nil {
			return err
		}
	}
	return nil
}
