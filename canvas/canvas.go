// Package canvas implements the rune-matrix character grid every diagram is
// painted into, together with the glyph sets and the box-drawing junction
// merger.
package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"mmd/diagram"
)

// Canvas is a fixed-size rune matrix with drawing primitives. It is owned
// and mutated by a single render pass; the finished value is read out once
// with String and never touched again.
//
// Coordinates are character cells, origin top-left, X rightward, Y downward.
type Canvas struct {
	cells  [][]rune
	width  int
	height int
	merge  bool // junction-merge box-drawing glyphs (Unicode sets only)
}

// New creates a canvas of the given size filled with spaces.
func New(width, height int, mergeJunctions bool) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Canvas{cells: cells, width: width, height: height, merge: mergeJunctions}
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Get returns the rune at p, or a space when p is out of bounds.
func (c *Canvas) Get(p diagram.Point) rune {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return ' '
	}
	return c.cells[p.Y][p.X]
}

// Set places a rune at p, junction-merging with the existing glyph when both
// are box-drawing characters. A line glyph never replaces a non-line rune
// already in the cell. Out-of-bounds writes are dropped.
func (c *Canvas) Set(p diagram.Point, r rune) {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return
	}
	existing := c.cells[p.Y][p.X]
	if c.merge && existing != ' ' {
		c.cells[p.Y][p.X] = merge(existing, r)
		return
	}
	c.cells[p.Y][p.X] = r
}

// Put places a rune unconditionally, without junction merging. Used for
// text and arrowheads, which must never be reinterpreted as line glyphs.
func (c *Canvas) Put(p diagram.Point, r rune) {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return
	}
	c.cells[p.Y][p.X] = r
}

// HorizontalLine draws a horizontal run of r from x1 to x2 inclusive.
func (c *Canvas) HorizontalLine(x1, x2, y int, r rune) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		c.Set(diagram.Point{X: x, Y: y}, r)
	}
}

// VerticalLine draws a vertical run of r from y1 to y2 inclusive.
func (c *Canvas) VerticalLine(x, y1, y2 int, r rune) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		c.Set(diagram.Point{X: x, Y: y}, r)
	}
}

// Text writes a string starting at p. Wide runes occupy two cells; the
// continuation cell is marked with a NUL which String renders as nothing,
// keeping columns aligned.
func (c *Canvas) Text(p diagram.Point, text string) {
	x := p.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.Put(diagram.Point{X: x, Y: p.Y}, r)
		if w == 2 {
			c.Put(diagram.Point{X: x + 1, Y: p.Y}, '\x00')
		}
		x += w
	}
}

// String renders the canvas with newline-separated rows of fixed width.
// Trailing spaces on each row are trimmed, matching conventional terminal
// diagram output.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for y := 0; y < c.height; y++ {
		end := c.width
		for end > 0 && c.cells[y][end-1] == ' ' {
			end--
		}
		for x := 0; x < end; x++ {
			r := c.cells[y][x]
			if r == '\x00' {
				continue // wide rune continuation
			}
			sb.WriteRune(r)
		}
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// TextWidth returns the rendered cell width of a string.
func TextWidth(s string) int { return runewidth.StringWidth(s) }
