package routing

import (
	"mmd/canvas"
	"mmd/diagram"
)

// placeLabel anchors the edge label against the longest straight run of the
// route, one cell clear of the path: above the midpoint of a horizontal run,
// right of the midpoint of a vertical run. Earlier segments win ties.
func placeLabel(e *diagram.Edge) {
	if e.Label == "" || len(e.Route) < 2 {
		return
	}

	best, bestLen := 0, -1
	for i := 0; i+1 < len(e.Route); i++ {
		p, q := e.Route[i], e.Route[i+1]
		l := abs(q.X-p.X) + abs(q.Y-p.Y)
		if l > bestLen {
			best, bestLen = i, l
		}
	}

	p, q := e.Route[best], e.Route[best+1]
	w := canvas.TextWidth(e.Label)
	if p.Y == q.Y {
		mid := (p.X + q.X) / 2
		e.LabelAt = diagram.Point{X: mid - w/2, Y: p.Y - 1}
	} else {
		mid := (p.Y + q.Y) / 2
		e.LabelAt = diagram.Point{X: p.X + 2, Y: mid}
	}
	e.LabelPlaced = true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
