package layout

import (
	"github.com/mattn/go-runewidth"

	"mmd/diagram"
)

// sizeNode derives the box dimensions from the label and the configured box
// padding: blank cells inside the border on every side, plus the border
// itself.
func sizeNode(n *diagram.Node, boxPadding int) {
	maxWidth := 0
	for _, line := range n.Label {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	n.Width = maxWidth + 2*boxPadding + 2
	n.Height = len(n.Label) + 2*boxPadding + 2
	if n.Width < 3 {
		n.Width = 3
	}
	if n.Height < 3 {
		n.Height = 3
	}
}

// Place converts every node's (rank, order) into an absolute top-left
// coordinate plus width and height. Ranks map to rows for TD and columns
// for LR, each rank starting one inter-rank padding past the previous
// rank's maximum extent; within a rank the nodes follow their order, spaced
// by the intra-rank padding and centered against the widest rank. The
// result is fully determined; nothing adjusts it afterwards.
func Place(f *diagram.Flowchart, cfg diagram.Config) {
	for i := range f.Nodes {
		sizeNode(&f.Nodes[i], cfg.BoxPadding)
	}

	ranks := Ranks(f)
	if len(ranks) == 0 {
		return
	}

	// Extent along the flow axis and total size across it, per rank.
	flowExtent := make([]int, len(ranks))
	crossTotal := make([]int, len(ranks))
	for r, ids := range ranks {
		for k, ni := range ids {
			n := &f.Nodes[ni]
			if f.Direction == diagram.DirectionTD {
				if n.Height > flowExtent[r] {
					flowExtent[r] = n.Height
				}
				crossTotal[r] += n.Width
				if k > 0 {
					crossTotal[r] += cfg.PaddingX
				}
			} else {
				if n.Width > flowExtent[r] {
					flowExtent[r] = n.Width
				}
				crossTotal[r] += n.Height
				if k > 0 {
					crossTotal[r] += cfg.PaddingY
				}
			}
		}
	}

	maxCross := 0
	for _, total := range crossTotal {
		if total > maxCross {
			maxCross = total
		}
	}

	flowPos := 0
	for r, ids := range ranks {
		cross := (maxCross - crossTotal[r]) / 2
		for _, ni := range ids {
			n := &f.Nodes[ni]
			if f.Direction == diagram.DirectionTD {
				n.X = cross
				n.Y = flowPos
				cross += n.Width + cfg.PaddingX
			} else {
				n.X = flowPos
				n.Y = cross
				cross += n.Height + cfg.PaddingY
			}
		}
		if f.Direction == diagram.DirectionTD {
			flowPos += flowExtent[r] + cfg.PaddingY
		} else {
			flowPos += flowExtent[r] + cfg.PaddingX
		}
	}
}

// Apply runs the three layout passes in order: edge classification, rank
// assignment, crossing reduction, then coordinate placement.
func Apply(f *diagram.Flowchart, cfg diagram.Config) {
	ClassifyEdges(f)
	AssignRanks(f)
	OrderRanks(f)
	Place(f, cfg)
}
