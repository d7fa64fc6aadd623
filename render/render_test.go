package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmd/diagram"
	"mmd/layout"
	"mmd/routing"
)

func renderGraph(t *testing.T, cfg diagram.Config, nodes []diagram.Node, edges []diagram.Edge) (string, error) {
	t.Helper()
	f, err := diagram.NewFlowchart(nodes, edges, cfg.GraphDirection)
	require.NoError(t, err)
	layout.Apply(f, cfg)
	routing.Route(f, cfg)
	return Flowchart(f, cfg)
}

func twoBoxes() ([]diagram.Node, []diagram.Edge) {
	nodes := []diagram.Node{
		{ID: "A", Label: []string{"Start"}},
		{ID: "B", Label: []string{"End"}},
	}
	edges := []diagram.Edge{{From: "A", To: "B"}}
	return nodes, edges
}

func TestTwoBoxesTopDown(t *testing.T) {
	cfg := diagram.DefaultConfig()
	cfg.GraphDirection = diagram.DirectionTD

	nodes, edges := twoBoxes()
	out, err := renderGraph(t, cfg, nodes, edges)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	start, end := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "Start") {
			start = i
		}
		if strings.Contains(l, "End") {
			end = i
		}
	}
	require.GreaterOrEqual(t, start, 0)
	require.GreaterOrEqual(t, end, 0)
	assert.Less(t, start, end, "boxes stack vertically")

	assert.Contains(t, out, "▼", "downward arrowhead")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "┘")
}

func TestASCIIOnlyGlyphs(t *testing.T) {
	cfg := diagram.DefaultConfig()
	cfg.GraphDirection = diagram.DirectionTD
	cfg.ASCIIOnly = true

	nodes, edges := twoBoxes()
	out, err := renderGraph(t, cfg, nodes, edges)
	require.NoError(t, err)

	assert.Contains(t, out, "v", "ascii arrowhead")
	for _, r := range out {
		assert.Less(t, int(r), 128, "unexpected non-ascii glyph %q", string(r))
	}
}

func TestDeterminism(t *testing.T) {
	cfg := diagram.DefaultConfig()
	mk := func() (string, error) {
		return renderGraph(t, cfg, []diagram.Node{
			{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"},
		}, []diagram.Edge{
			{From: "A", To: "B"}, {From: "A", To: "C"},
			{From: "B", To: "D"}, {From: "C", To: "D"}, {From: "D", To: "A"},
		})
	}
	first, err := mk()
	require.NoError(t, err)
	second, err := mk()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCycleRendersWithBackLane(t *testing.T) {
	cfg := diagram.DefaultConfig()
	cfg.GraphDirection = diagram.DirectionTD

	out, err := renderGraph(t, cfg, []diagram.Node{
		{ID: "A"}, {ID: "B"}, {ID: "C"},
	}, []diagram.Edge{
		{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "A"},
	})
	require.NoError(t, err)

	// The back lane is the leftmost column; the boxes shift right to make
	// room for it.
	column0 := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "│") || strings.HasPrefix(line, "┌") || strings.HasPrefix(line, "└") {
			column0 = true
		}
	}
	assert.True(t, column0, "back edge occupies a dedicated lane left of the flow:\n%s", out)
	assert.Contains(t, out, "►", "back edge re-enters pointing right")
}

func TestEdgeLabelRendered(t *testing.T) {
	cfg := diagram.DefaultConfig()
	out, err := renderGraph(t, cfg, []diagram.Node{
		{ID: "A"}, {ID: "B"},
	}, []diagram.Edge{
		{From: "A", To: "B", Label: "yes"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "yes")
}

func TestDashedEdgeGlyphs(t *testing.T) {
	cfg := diagram.DefaultConfig()
	cfg.GraphDirection = diagram.DirectionLR
	out, err := renderGraph(t, cfg, []diagram.Node{
		{ID: "A"}, {ID: "B"},
	}, []diagram.Edge{
		{From: "A", To: "B", Dashed: true},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "┈")
}

func TestLayoutOverflow(t *testing.T) {
	cfg := diagram.DefaultConfig()
	cfg.BoxPadding = 6000

	nodes, edges := twoBoxes()
	_, err := renderGraph(t, cfg, nodes, edges)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &diagram.Error{Kind: diagram.KindLayoutOverflow}))
}

func TestShowCoordinates(t *testing.T) {
	cfg := diagram.DefaultConfig()
	cfg.ShowCoordinates = true

	nodes, edges := twoBoxes()
	out, err := renderGraph(t, cfg, nodes, edges)
	require.NoError(t, err)

	assert.Contains(t, out, "bounds:")
	assert.Contains(t, out, "route A -> B:")
}

func TestContainment(t *testing.T) {
	cfg := diagram.DefaultConfig()
	out, err := renderGraph(t, cfg, []diagram.Node{
		{ID: "A"}, {ID: "B"}, {ID: "C"},
	}, []diagram.Edge{
		{From: "A", To: "B", Label: "left"}, {From: "A", To: "C"}, {From: "C", To: "A"},
	})
	require.NoError(t, err)

	for _, want := range []string{"A", "B", "C", "left", "►"} {
		assert.Contains(t, out, want, "every placed element survives into the canvas")
	}
}

func TestEmptyFlowchart(t *testing.T) {
	out, err := renderGraph(t, diagram.DefaultConfig(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
