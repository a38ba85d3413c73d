// Package console is the terminal front-end: the pixel matrix rendered as
// truecolor background blocks, with typed characters standing in for the
// badge buttons.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"badge.team/fastlife/hal"
	"badge.team/fastlife/life"
	"badge.team/fastlife/util"
)

// Display renders the pixel matrix into a terminal, two columns per cell.
// Pixel writes land in a framebuffer; EnableComp repaints the whole frame
// in a single write so the terminal never shows a half-drawn board.
type Display struct {
	w      io.Writer
	cells  [life.Rows][life.Cols]hal.Color
	lit    [life.Rows][life.Cols]bool
	bg     hal.Color
	styles map[hal.Color]lipgloss.Style
}

// NewDisplay prepares the terminal (clear screen, hide cursor) and
// returns a display writing to w.
func NewDisplay(w io.Writer) *Display {
	fmt.Fprint(w, "\x1b[2J\x1b[?25l")
	return &Display{
		w:      w,
		styles: make(map[hal.Color]lipgloss.Style),
	}
}

// Clear empties the framebuffer.
func (d *Display) Clear() {
	for r := range d.lit {
		for c := range d.lit[r] {
			d.lit[r][c] = false
		}
	}
}

// Pixel lights a single cell. Out-of-range positions are ignored.
func (d *Display) Pixel(col hal.Color, p util.Cell) {
	if p.X < 0 || p.X >= life.Cols || p.Y < 0 || p.Y >= life.Rows {
		return
	}
	d.cells[p.Y][p.X] = col
	d.lit[p.Y][p.X] = true
}

// Background sets the color of unlit cells and repaints immediately, so
// the bounds-reached flash is visible between frames.
func (d *Display) Background(c hal.Color) {
	d.bg = c
	d.flush()
}

func (d *Display) DisableComp() {}

// EnableComp flushes the finished frame to the terminal.
func (d *Display) EnableComp() {
	d.flush()
}

// Restore undoes the terminal setup done by NewDisplay.
func (d *Display) Restore() {
	fmt.Fprint(d.w, "\x1b[?25h\n")
}

func (d *Display) flush() {
	var sb strings.Builder
	sb.WriteString("\x1b[H")
	for r := 0; r < life.Rows; r++ {
		for c := 0; c < life.Cols; c++ {
			cell := d.bg
			if d.lit[r][c] {
				cell = d.cells[r][c]
			}
			sb.WriteString(d.style(cell).Render("  "))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(d.w, sb.String())
}

// style caches one lipgloss style per color; a frame otherwise builds
// hundreds of identical styles.
func (d *Display) style(c hal.Color) lipgloss.Style {
	s, ok := d.styles[c]
	if !ok {
		s = lipgloss.NewStyle().Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)))
		d.styles[c] = s
	}
	return s
}
