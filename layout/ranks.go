package layout

import (
	"sort"

	"mmd/diagram"
)

// AssignRanks gives every node a rank via longest-path layering over the
// forward (non-back) edges: sources sit at rank 0 and every other node one
// past its furthest predecessor. ClassifyEdges must have run first so the
// forward edge set is acyclic.
func AssignRanks(f *diagram.Flowchart) {
	inDegree := make(map[string]int, len(f.Nodes))
	outgoing := make(map[string][]string)
	for i := range f.Nodes {
		inDegree[f.Nodes[i].ID] = 0
		f.Nodes[i].Rank = 0
	}
	for _, e := range f.Edges {
		if e.Back {
			continue
		}
		outgoing[e.From] = append(outgoing[e.From], e.To)
		inDegree[e.To]++
	}

	// Kahn's algorithm, queue kept in declaration order for determinism.
	queue := make([]string, 0, len(f.Nodes))
	for i := range f.Nodes {
		if inDegree[f.Nodes[i].ID] == 0 {
			queue = append(queue, f.Nodes[i].ID)
		}
	}

	rank := make(map[string]int, len(f.Nodes))
	for _, id := range queue {
		rank[id] = 0
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, succ := range outgoing[id] {
			if rank[id]+1 > rank[succ] {
				rank[succ] = rank[id] + 1
			}
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	for i := range f.Nodes {
		f.Nodes[i].Rank = rank[f.Nodes[i].ID]
	}
}

// Ranks groups node indices by rank, each rank sorted by the nodes' current
// Order field and, for equal orders, by declaration position.
func Ranks(f *diagram.Flowchart) [][]int {
	maxRank := 0
	for i := range f.Nodes {
		if f.Nodes[i].Rank > maxRank {
			maxRank = f.Nodes[i].Rank
		}
	}
	ranks := make([][]int, maxRank+1)
	for i := range f.Nodes {
		r := f.Nodes[i].Rank
		ranks[r] = append(ranks[r], i)
	}
	for r := range ranks {
		ids := ranks[r]
		sort.SliceStable(ids, func(a, b int) bool {
			na, nb := f.Nodes[ids[a]], f.Nodes[ids[b]]
			if na.Order != nb.Order {
				return na.Order < nb.Order
			}
			return ids[a] < ids[b]
		})
	}
	return ranks
}
