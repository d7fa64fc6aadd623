// Package render paints a laid-out, routed flowchart onto a rune canvas and
// serializes it to text.
package render

import (
	"mmd/canvas"
	"mmd/diagram"
)

// Canvas dimensions past these limits abort the render instead of allocating
// an absurd grid.
const (
	maxCanvasSide  = 10000
	maxCanvasCells = 4000000
)

// Flowchart paints the boxes, connectors and labels of a fully laid-out
// flowchart and returns the finished text. The layout and routing passes
// must have run first.
func Flowchart(f *diagram.Flowchart, cfg diagram.Config) (string, error) {
	if len(f.Nodes) == 0 {
		return "", nil
	}

	b := extent(f)
	w, h := b.Width(), b.Height()
	if w > maxCanvasSide || h > maxCanvasSide || w*h > maxCanvasCells {
		return "", diagram.LayoutOverflow(w, h)
	}

	g := canvas.Select(cfg.ASCIIOnly)
	c := canvas.New(w, h, !cfg.ASCIIOnly)

	var spans []colorSpan
	for i := range f.Nodes {
		spans = append(spans, drawNode(c, g, &f.Nodes[i], cfg, f, b.Min)...)
	}
	for i := range f.Edges {
		drawEdge(c, g, &f.Edges[i], b.Min)
	}
	for i := range f.Edges {
		e := &f.Edges[i]
		if e.LabelPlaced {
			c.Text(translate(e.LabelAt, b.Min), e.Label)
		}
	}

	out := paint(c, spans, cfg.Color)
	if cfg.ShowCoordinates {
		out = annotate(out, f, b)
	}
	return out, nil
}

// extent computes the canvas bounds: the hull over every box, route point,
// arrowhead and label. Back-edge lanes sit at negative coordinates, so the
// minimum is usually not the origin.
func extent(f *diagram.Flowchart) diagram.Bounds {
	n := f.Nodes[0]
	b := diagram.Bounds{
		Min: diagram.Point{X: n.X, Y: n.Y},
		Max: diagram.Point{X: n.X + n.Width, Y: n.Y + n.Height},
	}
	for _, n := range f.Nodes[1:] {
		b = b.Include(diagram.Point{X: n.X, Y: n.Y})
		b = b.Include(diagram.Point{X: n.X + n.Width - 1, Y: n.Y + n.Height - 1})
	}
	for _, e := range f.Edges {
		for _, p := range e.Route {
			b = b.Include(p)
		}
		if len(e.Route) >= 2 {
			b = b.Include(e.ArrowAt)
		}
		if e.LabelPlaced {
			b = b.Include(e.LabelAt)
			b = b.Include(diagram.Point{
				X: e.LabelAt.X + canvas.TextWidth(e.Label) - 1,
				Y: e.LabelAt.Y,
			})
		}
	}
	return b
}

// translate maps a layout-space point into canvas space.
func translate(p, min diagram.Point) diagram.Point {
	return diagram.Point{X: p.X - min.X, Y: p.Y - min.Y}
}
