package layout

import (
	"sort"

	"mmd/diagram"
)

// maxOrderingSweeps caps the barycenter crossing-reduction iterations. Four
// alternating down/up sweeps settle every diagram of the size this renderer
// targets; the cap only matters for inputs that oscillate.
const maxOrderingSweeps = 4

// OrderRanks fixes the within-rank position of every node. The initial
// order is first-appearance order; a barycenter pass then reorders each rank
// by the average position of its neighbors in the adjacent rank, repeated
// until no order changes or the sweep cap is hit. Ties always break by
// declaration position.
func OrderRanks(f *diagram.Flowchart) {
	// First-appearance order within each rank.
	seen := make(map[int]int) // rank -> next order
	for i := range f.Nodes {
		r := f.Nodes[i].Rank
		f.Nodes[i].Order = seen[r]
		seen[r]++
	}

	ranks := Ranks(f)
	if len(ranks) < 2 {
		return
	}

	preds := make(map[string][]string)
	succs := make(map[string][]string)
	for _, e := range f.Edges {
		if e.Back || e.From == e.To {
			continue
		}
		succs[e.From] = append(succs[e.From], e.To)
		preds[e.To] = append(preds[e.To], e.From)
	}

	orderOf := func(id string) int {
		return f.Nodes[f.NodeIndex(id)].Order
	}
	barycenter := func(neighbors []string, fallback int) float64 {
		if len(neighbors) == 0 {
			return float64(fallback)
		}
		sum := 0
		for _, id := range neighbors {
			sum += orderOf(id)
		}
		return float64(sum) / float64(len(neighbors))
	}

	reorder := func(rank []int, neighborsOf func(string) []string) bool {
		keys := make(map[int]float64, len(rank))
		for _, ni := range rank {
			n := &f.Nodes[ni]
			keys[ni] = barycenter(neighborsOf(n.ID), n.Order)
		}
		sort.SliceStable(rank, func(a, b int) bool {
			ka, kb := keys[rank[a]], keys[rank[b]]
			if ka != kb {
				return ka < kb
			}
			return rank[a] < rank[b]
		})
		changed := false
		for pos, ni := range rank {
			if f.Nodes[ni].Order != pos {
				f.Nodes[ni].Order = pos
				changed = true
			}
		}
		return changed
	}

	for sweep := 0; sweep < maxOrderingSweeps; sweep++ {
		changed := false
		for r := 1; r < len(ranks); r++ {
			if reorder(ranks[r], func(id string) []string { return preds[id] }) {
				changed = true
			}
		}
		for r := len(ranks) - 2; r >= 0; r-- {
			if reorder(ranks[r], func(id string) []string { return succs[id] }) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}
