package model

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cellWidth ignores the locale so ambiguous runes such as box drawing stay
// one cell wide under CJK settings.
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// cell is one terminal cell of the layout area. A wide rune occupies its
// cell and the next one, which is marked cont and not rendered.
type cell struct {
	r     rune
	focus bool
	cont  bool
}

// canvas is a fixed-size grid windows are drawn into before styling.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// set writes r at (x, y). Runes that do not fit are dropped and half of an
// overwritten wide rune is blanked.
func (c *canvas) set(x, y int, r rune, focus bool) {
	rw := cellWidth.RuneWidth(r)
	if rw == 0 || !c.in(x, y) || x+rw > c.w {
		return
	}
	for i := 0; i < rw; i++ {
		c.clear(x+i, y)
	}
	c.cells[y][x] = cell{r: r, focus: focus}
	for i := 1; i < rw; i++ {
		c.cells[y][x+i] = cell{focus: focus, cont: true}
	}
}

// clear blanks (x, y) together with the other half of a wide rune on it.
func (c *canvas) clear(x, y int) {
	row := c.cells[y]
	if row[x].cont && x > 0 {
		row[x-1] = cell{r: ' ', focus: row[x-1].focus}
	}
	if !row[x].cont && x+1 < c.w && row[x+1].cont {
		row[x+1] = cell{r: ' ', focus: row[x+1].focus}
	}
	row[x] = cell{r: ' '}
}

// box draws a bordered rectangle with label on its first inner row. Parts
// falling outside the canvas are clipped, so half scrolled-out windows keep
// their visible edge.
func (c *canvas) box(x, y, w, h int, label string, focus bool) {
	if w < 2 || h < 2 {
		return
	}
	x2, y2 := x+w-1, y+h-1
	for i := x + 1; i < x2; i++ {
		c.set(i, y, '─', focus)
		c.set(i, y2, '─', focus)
	}
	for j := y + 1; j < y2; j++ {
		c.set(x, j, '│', focus)
		c.set(x2, j, '│', focus)
	}
	c.set(x, y, '┌', focus)
	c.set(x2, y, '┐', focus)
	c.set(x, y2, '└', focus)
	c.set(x2, y2, '┘', focus)

	if h < 3 {
		return
	}
	i := 0
	for _, r := range label {
		rw := cellWidth.RuneWidth(r)
		if i+rw > w-4 {
			break
		}
		c.set(x+2+i, y+1, r, focus)
		i += rw
	}
}

// render styles runs of equal focus and joins the rows.
func (c *canvas) render(normal, focused lipgloss.Style) string {
	lines := make([]string, 0, c.h)
	var run strings.Builder
	for _, row := range c.cells {
		var line strings.Builder
		for i := 0; i < len(row); {
			f := row[i].focus
			run.Reset()
			for ; i < len(row) && row[i].focus == f; i++ {
				if !row[i].cont {
					run.WriteRune(row[i].r)
				}
			}
			if f {
				line.WriteString(focused.Render(run.String()))
			} else {
				line.WriteString(normal.Render(run.String()))
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// round converts a resolved frame coordinate to a cell index.
func round(v float64) int {
	return int(math.Round(v))
}
