package sequence

import (
	"mmd/canvas"
	"mmd/diagram"
)

const headerRows = 3

// Canvas dimensions past these limits abort the render instead of
// allocating an absurd grid.
const (
	maxCanvasSide  = 10000
	maxCanvasCells = 4000000
)

// Render lays the diagram out and paints it: participant headers, lifelines,
// activation bars, then one block of rows per event in declaration order.
func Render(s *Sequence, cfg diagram.Config) (string, error) {
	Layout(s, cfg)
	if len(s.Participants) == 0 {
		return "", nil
	}
	labels := s.DisplayLabels()

	// Row budget: spacing rows, an optional label row, then the arrow row
	// (three rows for a self-message loop). Activation toggles occupy no
	// rows of their own.
	rows := headerRows
	eventRow := make([]int, len(s.Events))
	for i, e := range s.Events {
		if e.Kind != EventMessage {
			eventRow[i] = rows
			continue
		}
		rows += cfg.MessageSpacing
		if labels[i] != "" {
			rows++
		}
		eventRow[i] = rows
		if e.From == e.To {
			rows += 3
		} else {
			rows++
		}
	}
	rows += cfg.MessageSpacing

	last := s.Participants[len(s.Participants)-1]
	width := last.X + last.Width
	for i, e := range s.Events {
		if e.Kind != EventMessage || e.From != e.To {
			continue
		}
		cx := s.Participants[s.Column(e.From)].Center()
		ext := cx + cfg.SelfMessageWidth + 1
		if labels[i] != "" {
			ext = max(ext, cx+2+canvas.TextWidth(labels[i]))
		}
		width = max(width, ext)
	}

	if width > maxCanvasSide || rows > maxCanvasSide || width*rows > maxCanvasCells {
		return "", diagram.LayoutOverflow(width, rows)
	}

	g := canvas.Select(cfg.ASCIIOnly)
	c := canvas.New(width, rows, !cfg.ASCIIOnly)

	for _, p := range s.Participants {
		drawHeader(c, g, p)
	}
	for _, p := range s.Participants {
		c.VerticalLine(p.Center(), headerRows, rows-1, g.Vertical)
	}
	for _, bar := range activations(s, eventRow, rows) {
		for y := bar.y1; y <= bar.y2; y++ {
			c.Put(diagram.Point{X: bar.x, Y: y}, g.Activation)
		}
	}
	for i, e := range s.Events {
		if e.Kind != EventMessage {
			continue
		}
		if e.From == e.To {
			drawSelfMessage(c, g, s, e, labels[i], eventRow[i], cfg)
		} else {
			drawMessage(c, g, s, e, labels[i], eventRow[i])
		}
	}

	return c.String(), nil
}

// drawHeader paints the three-row participant box with the lifeline tee in
// its bottom border.
func drawHeader(c *canvas.Canvas, g canvas.GlyphSet, p Participant) {
	x2 := p.X + p.Width - 1
	c.HorizontalLine(p.X+1, x2-1, 0, g.Horizontal)
	c.HorizontalLine(p.X+1, x2-1, 2, g.Horizontal)
	c.Put(diagram.Point{X: p.X, Y: 0}, g.TopLeft)
	c.Put(diagram.Point{X: x2, Y: 0}, g.TopRight)
	c.Put(diagram.Point{X: p.X, Y: 1}, g.Vertical)
	c.Put(diagram.Point{X: x2, Y: 1}, g.Vertical)
	c.Put(diagram.Point{X: p.X, Y: 2}, g.BottomLeft)
	c.Put(diagram.Point{X: x2, Y: 2}, g.BottomRight)

	lw := canvas.TextWidth(p.Label)
	c.Text(diagram.Point{X: p.X + (p.Width-lw)/2, Y: 1}, p.Label)
	c.Put(diagram.Point{X: p.Center(), Y: 2}, g.TeeDown)
}

// drawMessage paints one horizontal message row: a tee out of the source
// lifeline, the run, and the arrowhead one cell short of the target
// lifeline. The optional label sits centered on the row above.
func drawMessage(c *canvas.Canvas, g canvas.GlyphSet, s *Sequence, e Event, label string, row int) {
	a := s.Participants[s.Column(e.From)].Center()
	b := s.Participants[s.Column(e.To)].Center()
	h := g.Horizontal
	if e.Dashed {
		h = g.DashedHorizontal
	}

	if label != "" {
		lw := canvas.TextWidth(label)
		lo, hi := min(a, b), max(a, b)
		c.Text(diagram.Point{X: (lo+hi)/2 - lw/2, Y: row - 1}, label)
	}

	if a < b {
		c.HorizontalLine(a+1, b-2, row, h)
		c.Put(diagram.Point{X: a, Y: row}, g.TeeRight)
		c.Put(diagram.Point{X: b - 1, Y: row}, g.ArrowRight)
	} else {
		c.HorizontalLine(b+2, a-1, row, h)
		c.Put(diagram.Point{X: a, Y: row}, g.TeeLeft)
		c.Put(diagram.Point{X: b + 1, Y: row}, g.ArrowLeft)
	}
}

// drawSelfMessage paints the three-row loop hanging off the right of the
// lifeline, arrow pointing back in.
func drawSelfMessage(c *canvas.Canvas, g canvas.GlyphSet, s *Sequence, e Event, label string, row int, cfg diagram.Config) {
	x := s.Participants[s.Column(e.From)].Center()
	w := cfg.SelfMessageWidth
	h := g.Horizontal
	if e.Dashed {
		h = g.DashedHorizontal
	}

	if label != "" {
		c.Text(diagram.Point{X: x + 2, Y: row - 1}, label)
	}
	c.Put(diagram.Point{X: x, Y: row}, g.TeeRight)
	c.HorizontalLine(x+1, x+w-1, row, h)
	c.Put(diagram.Point{X: x + w, Y: row}, g.TopRight)
	c.Put(diagram.Point{X: x + w, Y: row + 1}, g.Vertical)
	c.Put(diagram.Point{X: x + w, Y: row + 2}, g.BottomRight)
	if w >= 3 {
		c.HorizontalLine(x+2, x+w-1, row+2, h)
	}
	c.Put(diagram.Point{X: x + 1, Y: row + 2}, g.ArrowLeft)
}

type bar struct {
	x, y1, y2 int
}

// activations pairs activate and deactivate events into bar spans next to
// the lifeline. An unmatched activation runs to the final row; a deactivate
// without a matching start is ignored.
func activations(s *Sequence, eventRow []int, rows int) []bar {
	open := make(map[string]int)
	var bars []bar
	for i, e := range s.Events {
		switch e.Kind {
		case EventActivate:
			if _, ok := open[e.From]; !ok {
				open[e.From] = eventRow[i]
			}
		case EventDeactivate:
			if y, ok := open[e.From]; ok {
				x := s.Participants[s.Column(e.From)].Center() + 1
				bars = append(bars, bar{x: x, y1: y, y2: eventRow[i]})
				delete(open, e.From)
			}
		}
	}
	for _, p := range s.Participants {
		if y, ok := open[p.ID]; ok {
			bars = append(bars, bar{x: p.Center() + 1, y1: y, y2: rows - 1})
		}
	}
	return bars
}
