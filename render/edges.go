package render

import (
	"mmd/canvas"
	"mmd/diagram"
)

// drawEdge paints one routed connector: line runs with junction merging,
// hard corner glyphs at the bends, a tee where the run leaves the source
// border, and the arrowhead one cell short of the target border. The target
// border cell itself is never painted.
func drawEdge(c *canvas.Canvas, g canvas.GlyphSet, e *diagram.Edge, min diagram.Point) {
	if len(e.Route) < 2 {
		return
	}

	h, v := g.Horizontal, g.Vertical
	if e.Dashed {
		h, v = g.DashedHorizontal, g.DashedVertical
	}

	for i := 0; i+1 < len(e.Route); i++ {
		drawBetween(c, translate(e.Route[i], min), translate(e.Route[i+1], min), h, v)
	}
	for i := 1; i+1 < len(e.Route); i++ {
		r := cornerGlyph(g, e.Route[i-1], e.Route[i], e.Route[i+1])
		c.Put(translate(e.Route[i], min), r)
	}

	c.Put(translate(e.Route[0], min), teeGlyph(g, dirOf(e.Route[0], e.Route[1])))
	c.Put(translate(e.ArrowAt, min), arrowGlyph(g, e.ArrowDir))
}

// drawBetween paints the cells strictly between two collinear points, so
// corner and border cells stay under the caller's control. Segments one cell
// long have no in-between cells and paint nothing.
func drawBetween(c *canvas.Canvas, p, q diagram.Point, h, v rune) {
	if p.Y == q.Y {
		lo, hi := min(p.X, q.X), max(p.X, q.X)
		if hi-lo >= 2 {
			c.HorizontalLine(lo+1, hi-1, p.Y, h)
		}
		return
	}
	lo, hi := min(p.Y, q.Y), max(p.Y, q.Y)
	if hi-lo >= 2 {
		c.VerticalLine(p.X, lo+1, hi-1, v)
	}
}

// cornerGlyph picks the bend glyph at cur from the directions of its route
// neighbors.
func cornerGlyph(g canvas.GlyphSet, prev, cur, next diagram.Point) rune {
	up := prev.Y < cur.Y || next.Y < cur.Y
	down := prev.Y > cur.Y || next.Y > cur.Y
	left := prev.X < cur.X || next.X < cur.X
	right := prev.X > cur.X || next.X > cur.X
	switch {
	case up && right:
		return g.BottomLeft
	case up && left:
		return g.BottomRight
	case down && right:
		return g.TopLeft
	case down && left:
		return g.TopRight
	case up || down:
		return g.Vertical
	default:
		return g.Horizontal
	}
}

func dirOf(p, q diagram.Point) diagram.Direction {
	switch {
	case q.X > p.X:
		return diagram.East
	case q.X < p.X:
		return diagram.West
	case q.Y > p.Y:
		return diagram.South
	default:
		return diagram.North
	}
}

func teeGlyph(g canvas.GlyphSet, d diagram.Direction) rune {
	switch d {
	case diagram.South:
		return g.TeeDown
	case diagram.North:
		return g.TeeUp
	case diagram.East:
		return g.TeeRight
	default:
		return g.TeeLeft
	}
}

func arrowGlyph(g canvas.GlyphSet, d diagram.Direction) rune {
	switch d {
	case diagram.South:
		return g.ArrowDown
	case diagram.North:
		return g.ArrowUp
	case diagram.East:
		return g.ArrowRight
	default:
		return g.ArrowLeft
	}
}
