package render

import (
	"mmd/canvas"
	"mmd/diagram"
)

// drawNode paints the border and centered label of one box. Returns the
// color spans for the label lines when the node's class carries a color.
func drawNode(c *canvas.Canvas, g canvas.GlyphSet, n *diagram.Node, cfg diagram.Config, f *diagram.Flowchart, min diagram.Point) []colorSpan {
	x1, y1 := n.X-min.X, n.Y-min.Y
	x2, y2 := x1+n.Width-1, y1+n.Height-1

	c.HorizontalLine(x1+1, x2-1, y1, g.Horizontal)
	c.HorizontalLine(x1+1, x2-1, y2, g.Horizontal)
	c.VerticalLine(x1, y1+1, y2-1, g.Vertical)
	c.VerticalLine(x2, y1+1, y2-1, g.Vertical)

	tl, tr, bl, br := corners(g, n.Shape)
	c.Put(diagram.Point{X: x1, Y: y1}, tl)
	c.Put(diagram.Point{X: x2, Y: y1}, tr)
	c.Put(diagram.Point{X: x1, Y: y2}, bl)
	c.Put(diagram.Point{X: x2, Y: y2}, br)

	cl := nodeColor(f, n)
	var spans []colorSpan
	for i, line := range n.Label {
		lw := canvas.TextWidth(line)
		lx := x1 + (n.Width-lw)/2
		ly := y1 + 1 + cfg.BoxPadding + i
		c.Text(diagram.Point{X: lx, Y: ly}, line)
		if cl != nil {
			spans = append(spans, colorSpan{y: ly, x1: lx, x2: lx + lw - 1, color: cl})
		}
	}
	return spans
}

// corners picks the corner glyph variant for a node shape. Shapes change
// nothing but these four runes.
func corners(g canvas.GlyphSet, s diagram.Shape) (tl, tr, bl, br rune) {
	switch s {
	case diagram.ShapeRounded:
		return g.RoundTopLeft, g.RoundTopRight, g.RoundBottomLeft, g.RoundBottomRight
	case diagram.ShapeDiamond:
		return g.DiamondTopLeft, g.DiamondTopRight, g.DiamondBottomLeft, g.DiamondBottomRight
	default:
		return g.TopLeft, g.TopRight, g.BottomLeft, g.BottomRight
	}
}
