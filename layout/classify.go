// Package layout assigns flowchart nodes to ranks, orders them within each
// rank, and converts the (rank, order) pairs into absolute grid coordinates.
// The three passes communicate only through the per-node fields on the
// diagram model, so each is independently testable.
package layout

import "mmd/diagram"

// ClassifyEdges tags every edge that would close a cycle as a back edge.
// Back edges are excluded from rank computation but retained for routing.
//
// The traversal is a depth-first search with recursion-stack membership
// tracking, visiting nodes and their outgoing edges in declaration order so
// the same input always tags the same edges.
func ClassifyEdges(f *diagram.Flowchart) {
	const (
		unvisited = iota
		visiting
		visited
	)

	state := make(map[string]int, len(f.Nodes))
	outgoing := make(map[string][]int) // node ID -> edge indices, declaration order
	for i := range f.Edges {
		f.Edges[i].Back = false
		outgoing[f.Edges[i].From] = append(outgoing[f.Edges[i].From], i)
	}

	var dfs func(id string)
	dfs = func(id string) {
		state[id] = visiting
		for _, ei := range outgoing[id] {
			e := &f.Edges[ei]
			switch {
			case e.From == e.To:
				e.Back = true
			case state[e.To] == visiting:
				e.Back = true
			case state[e.To] == unvisited:
				dfs(e.To)
			}
		}
		state[id] = visited
	}

	for i := range f.Nodes {
		if state[f.Nodes[i].ID] == unvisited {
			dfs(f.Nodes[i].ID)
		}
	}
}
