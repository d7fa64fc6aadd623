package routing

import "mmd/diagram"

// deflectPasses bounds the bend-until-clear loop. Each pass removes one
// collision and a detour cannot reintroduce one with the same box, so the
// cap only matters for degenerate layouts.
const deflectPasses = 16

// deflect bends route segments around any box interior they would cross.
// A detour hugs the offending box one cell outside its border, on whichever
// side is closer to the original segment. Border cells are fair game; only
// interiors repel.
func deflect(route []diagram.Point, nodes []diagram.Node) []diagram.Point {
	for pass := 0; pass < deflectPasses; pass++ {
		bent := false
		for i := 0; i+1 < len(route) && !bent; i++ {
			for j := range nodes {
				detour, ok := detourAround(route[i], route[i+1], &nodes[j])
				if !ok {
					continue
				}
				repl := make([]diagram.Point, 0, len(route)+len(detour))
				repl = append(repl, route[:i+1]...)
				repl = append(repl, detour...)
				repl = append(repl, route[i+1:]...)
				route = normalize(repl)
				bent = true
				break
			}
		}
		if !bent {
			break
		}
	}
	return route
}

// detourAround returns the intermediate corner points steering the segment
// p-q around the interior of n, or ok=false when the segment clears it.
func detourAround(p, q diagram.Point, n *diagram.Node) ([]diagram.Point, bool) {
	ix1, ix2 := n.X+1, n.X+n.Width-2
	iy1, iy2 := n.Y+1, n.Y+n.Height-2

	switch {
	case p.Y == q.Y && p.X != q.X: // horizontal run
		y := p.Y
		if y < iy1 || y > iy2 {
			return nil, false
		}
		if max(p.X, q.X) < ix1 || min(p.X, q.X) > ix2 {
			return nil, false
		}
		dy := n.Y - 1
		if y > n.Y+n.Height/2 {
			dy = n.Y + n.Height
		}
		xa, xb := n.X-1, n.X+n.Width
		if p.X > q.X {
			xa, xb = xb, xa
		}
		return []diagram.Point{
			{X: xa, Y: y}, {X: xa, Y: dy}, {X: xb, Y: dy}, {X: xb, Y: y},
		}, true

	case p.X == q.X && p.Y != q.Y: // vertical run
		x := p.X
		if x < ix1 || x > ix2 {
			return nil, false
		}
		if max(p.Y, q.Y) < iy1 || min(p.Y, q.Y) > iy2 {
			return nil, false
		}
		dx := n.X - 1
		if x > n.X+n.Width/2 {
			dx = n.X + n.Width
		}
		ya, yb := n.Y-1, n.Y+n.Height
		if p.Y > q.Y {
			ya, yb = yb, ya
		}
		return []diagram.Point{
			{X: x, Y: ya}, {X: dx, Y: ya}, {X: dx, Y: yb}, {X: x, Y: yb},
		}, true
	}
	return nil, false
}
