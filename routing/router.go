// Package routing computes orthogonal connector paths between placed
// flowchart boxes. Every path starts and ends on a box border; the renderer
// draws the segments, the arrowhead one cell short of the target border, and
// the label at the anchor chosen here.
package routing

import "mmd/diagram"

// Route fills in Route, ArrowAt, ArrowDir and the label anchor of every
// edge. Edges are processed in declaration order and every lane counter
// advances in that order, so the same flowchart always routes the same way.
func Route(f *diagram.Flowchart, cfg diagram.Config) {
	r := &router{
		f:        f,
		pairSeen: make(map[string]int),
		selfSeen: make(map[string]int),
	}
	r.measure()
	for i := range f.Edges {
		r.route(&f.Edges[i])
	}
}

type router struct {
	f *diagram.Flowchart

	minX, minY int // top-left of the hull over all placed boxes

	pairSeen map[string]int // parallel edges seen per (from, to) pair
	selfSeen map[string]int // self loops seen per node
	skipLane int            // rank-skipping edges routed so far
	backLane int            // back edges routed so far
}

func (r *router) measure() {
	if len(r.f.Nodes) == 0 {
		return
	}
	n := r.f.Nodes[0]
	r.minX, r.minY = n.X, n.Y
	for _, n := range r.f.Nodes[1:] {
		r.minX = min(r.minX, n.X)
		r.minY = min(r.minY, n.Y)
	}
}

func (r *router) route(e *diagram.Edge) {
	from := r.f.NodeByID(e.From)
	to := r.f.NodeByID(e.To)
	k := r.pairSeen[e.From+"\x00"+e.To]
	r.pairSeen[e.From+"\x00"+e.To]++

	switch {
	case e.From == e.To:
		r.selfLoop(e, from)
	case e.Back:
		r.backEdge(e, from, to, k)
	case to.Rank-from.Rank > 1:
		r.skipEdge(e, from, to, k)
	default:
		r.direct(e, from, to, k)
	}

	e.Route = deflect(e.Route, r.f.Nodes)
	e.Route = normalize(e.Route)
	finishArrow(e)
	placeLabel(e)
}

// direct connects two adjacent ranks, either dead straight or through a
// single Z bend halfway across the inter-rank gap. Parallel edges fan their
// anchors and bend rows apart so the runs stay distinguishable.
func (r *router) direct(e *diagram.Edge, from, to *diagram.Node, k int) {
	off := fan(k)
	if r.f.Direction == diagram.DirectionTD {
		sx := clamp(from.X+from.Width/2+off, from.X+1, from.X+from.Width-2)
		dx := clamp(to.X+to.Width/2+off, to.X+1, to.X+to.Width-2)
		sy := from.Y + from.Height - 1
		dy := to.Y
		if sx == dx {
			e.Route = []diagram.Point{{X: sx, Y: sy}, {X: dx, Y: dy}}
			return
		}
		mid := clamp((sy+dy)/2+off/2, sy+1, dy-1)
		e.Route = []diagram.Point{
			{X: sx, Y: sy}, {X: sx, Y: mid}, {X: dx, Y: mid}, {X: dx, Y: dy},
		}
		return
	}

	sy := clamp(from.Y+from.Height/2+off, from.Y+1, from.Y+from.Height-2)
	dy := clamp(to.Y+to.Height/2+off, to.Y+1, to.Y+to.Height-2)
	sx := from.X + from.Width - 1
	dx := to.X
	if sy == dy {
		e.Route = []diagram.Point{{X: sx, Y: sy}, {X: dx, Y: dy}}
		return
	}
	mid := clamp((sx+dx)/2+off/2, sx+1, dx-1)
	e.Route = []diagram.Point{
		{X: sx, Y: sy}, {X: mid, Y: sy}, {X: mid, Y: dy}, {X: dx, Y: dy},
	}
}

// skipEdge routes an edge spanning more than one rank through a dedicated
// lane outside the ranks it crosses, so the run never threads between
// intermediate boxes. Lanes step outward two cells per rank-skipping edge.
func (r *router) skipEdge(e *diagram.Edge, from, to *diagram.Node, k int) {
	lane := r.skipLane
	r.skipLane++
	off := fan(k)

	if r.f.Direction == diagram.DirectionTD {
		laneX := r.spanRight(from.Rank, to.Rank) + 2 + 2*lane
		sx := clamp(from.X+from.Width/2+off, from.X+1, from.X+from.Width-2)
		dx := clamp(to.X+to.Width/2+off, to.X+1, to.X+to.Width-2)
		sy := from.Y + from.Height - 1
		dy := to.Y
		y1 := min(sy+2, dy-1)
		y2 := max(dy-2, sy+1)
		e.Route = []diagram.Point{
			{X: sx, Y: sy}, {X: sx, Y: y1}, {X: laneX, Y: y1},
			{X: laneX, Y: y2}, {X: dx, Y: y2}, {X: dx, Y: dy},
		}
		return
	}

	laneY := r.spanBottom(from.Rank, to.Rank) + 2 + 2*lane
	sy := clamp(from.Y+from.Height/2+off, from.Y+1, from.Y+from.Height-2)
	dy := clamp(to.Y+to.Height/2+off, to.Y+1, to.Y+to.Height-2)
	sx := from.X + from.Width - 1
	dx := to.X
	x1 := min(sx+2, dx-1)
	x2 := max(dx-2, sx+1)
	e.Route = []diagram.Point{
		{X: sx, Y: sy}, {X: x1, Y: sy}, {X: x1, Y: laneY},
		{X: x2, Y: laneY}, {X: x2, Y: dy}, {X: dx, Y: dy},
	}
}

// backEdge routes a cycle-closing edge through a lane outside the whole
// diagram: left of it for top-down flow, above it for left-right flow.
// Coordinates may go negative here; the renderer translates them back into
// canvas space.
func (r *router) backEdge(e *diagram.Edge, from, to *diagram.Node, k int) {
	lane := r.backLane
	r.backLane++
	off := fan(k)

	if r.f.Direction == diagram.DirectionTD {
		laneX := r.minX - 2 - 2*lane
		sy := clamp(from.Y+from.Height/2+off, from.Y+1, from.Y+from.Height-2)
		dy := clamp(to.Y+to.Height/2+off, to.Y+1, to.Y+to.Height-2)
		e.Route = []diagram.Point{
			{X: from.X, Y: sy}, {X: laneX, Y: sy},
			{X: laneX, Y: dy}, {X: to.X, Y: dy},
		}
		return
	}

	laneY := r.minY - 2 - 2*lane
	sx := clamp(from.X+from.Width/2+off, from.X+1, from.X+from.Width-2)
	dx := clamp(to.X+to.Width/2+off, to.X+1, to.X+to.Width-2)
	e.Route = []diagram.Point{
		{X: sx, Y: from.Y}, {X: sx, Y: laneY},
		{X: dx, Y: laneY}, {X: dx, Y: to.Y},
	}
}

// selfLoop draws a small loop hanging off the bottom-right of the node: out
// of the bottom border, around the lower right corner, back in through the
// right border. Additional loops on the same node nest outward.
func (r *router) selfLoop(e *diagram.Edge, n *diagram.Node) {
	k := r.selfSeen[e.From]
	r.selfSeen[e.From]++

	ext := 3 + 2*k
	bx := clamp(n.X+n.Width/2+2*k, n.X+1, n.X+n.Width-2)
	by := n.Y + n.Height - 1
	rx := n.X + n.Width - 1
	cy := clamp(n.Y+n.Height/2-k, n.Y+1, n.Y+n.Height-2)
	e.Route = []diagram.Point{
		{X: bx, Y: by}, {X: bx, Y: by + 1 + k}, {X: rx + ext, Y: by + 1 + k},
		{X: rx + ext, Y: cy}, {X: rx, Y: cy},
	}
}

// spanRight is the rightmost border column of any node ranked in [lo, hi].
func (r *router) spanRight(lo, hi int) int {
	right := r.minX
	for _, n := range r.f.Nodes {
		if n.Rank < lo || n.Rank > hi {
			continue
		}
		right = max(right, n.X+n.Width-1)
	}
	return right
}

// spanBottom is the bottommost border row of any node ranked in [lo, hi].
func (r *router) spanBottom(lo, hi int) int {
	bottom := r.minY
	for _, n := range r.f.Nodes {
		if n.Rank < lo || n.Rank > hi {
			continue
		}
		bottom = max(bottom, n.Y+n.Height-1)
	}
	return bottom
}

// finishArrow derives the arrowhead cell and direction from the final route
// segment: one cell short of the target border, pointing along the travel
// direction.
func finishArrow(e *diagram.Edge) {
	if len(e.Route) < 2 {
		return
	}
	last := e.Route[len(e.Route)-1]
	prev := e.Route[len(e.Route)-2]
	switch {
	case last.X > prev.X:
		e.ArrowDir = diagram.East
		e.ArrowAt = diagram.Point{X: last.X - 1, Y: last.Y}
	case last.X < prev.X:
		e.ArrowDir = diagram.West
		e.ArrowAt = diagram.Point{X: last.X + 1, Y: last.Y}
	case last.Y > prev.Y:
		e.ArrowDir = diagram.South
		e.ArrowAt = diagram.Point{X: last.X, Y: last.Y - 1}
	default:
		e.ArrowDir = diagram.North
		e.ArrowAt = diagram.Point{X: last.X, Y: last.Y + 1}
	}
}

// normalize collapses duplicate and collinear corner points so the route is
// the minimal polyline describing the path.
func normalize(route []diagram.Point) []diagram.Point {
	if len(route) < 2 {
		return route
	}
	out := make([]diagram.Point, 0, len(route))
	out = append(out, route[0])
	for _, p := range route[1:] {
		if p == out[len(out)-1] {
			continue
		}
		if len(out) >= 2 {
			a, b := out[len(out)-2], out[len(out)-1]
			if (a.X == b.X && b.X == p.X) || (a.Y == b.Y && b.Y == p.Y) {
				out[len(out)-1] = p
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// fan spreads parallel-edge anchors symmetrically around the side center:
// 0, +2, -2, +4, -4 and so on by pair index.
func fan(k int) int {
	if k == 0 {
		return 0
	}
	off := (k + 1) / 2 * 2
	if k%2 == 0 {
		off = -off
	}
	return off
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
