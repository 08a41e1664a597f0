package ascii

import (
	"image/color"
	"strings"
)

// Cell is one glyph of a canvas together with the color sampled for it.
type Cell struct {
	Glyph rune
	Color color.RGBA
}

// Canvas is a Cols x Rows grid of glyph cells stored row by row.
type Canvas struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCanvas returns a canvas with every cell blank.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	for i := range c.Cells {
		c.Cells[i].Glyph = ' '
	}
	return c
}

// At returns the cell at column x, row y.
func (c *Canvas) At(x, y int) Cell {
	return c.Cells[y*c.Cols+x]
}

// Set stores cell at column x, row y.
func (c *Canvas) Set(x, y int, cell Cell) {
	c.Cells[y*c.Cols+x] = cell
}

// Lines returns the glyphs of each row.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.Rows)
	var b strings.Builder
	b.Grow(c.Cols)
	for y := range c.Rows {
		b.Reset()
		for _, cell := range c.Cells[y*c.Cols : (y+1)*c.Cols] {
			b.WriteRune(cell.Glyph)
		}
		lines[y] = b.String()
	}
	return lines
}

// String returns the glyphs as text, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.Cols + 1) * c.Rows)
	for y := range c.Rows {
		for _, cell := range c.Cells[y*c.Cols : (y+1)*c.Cols] {
			b.WriteRune(cell.Glyph)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Equal reports whether both canvases have the same size and cells.
func (c *Canvas) Equal(o *Canvas) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.Cols != o.Cols || c.Rows != o.Rows || len(c.Cells) != len(o.Cells) {
		return false
	}
	for i := range c.Cells {
		if c.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}
