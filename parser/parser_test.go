package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmd/diagram"
	"mmd/sequence"
)

func parseOK(t *testing.T, src string) (*Document, diagram.Config) {
	t.Helper()
	cfg := diagram.DefaultConfig()
	doc, err := Parse(src, &cfg)
	require.NoError(t, err)
	return doc, cfg
}

func TestParseFlowchartBasics(t *testing.T) {
	doc, cfg := parseOK(t, strings.Join([]string{
		"graph TD",
		`A["Start here"] --> B(Running)`,
		"B -->|done| C{Stop?}",
	}, "\n"))

	require.Equal(t, KindFlowchart, doc.Kind)
	f := doc.Flowchart
	assert.Equal(t, diagram.DirectionTD, cfg.GraphDirection)

	require.Len(t, f.Nodes, 3)
	assert.Equal(t, []string{"Start here"}, f.Nodes[0].Label)
	assert.Equal(t, diagram.ShapeRounded, f.Nodes[1].Shape)
	assert.Equal(t, diagram.ShapeDiamond, f.Nodes[2].Shape)

	require.Len(t, f.Edges, 2)
	assert.Equal(t, "done", f.Edges[1].Label)
}

func TestParseFlowchartChainsAndGroups(t *testing.T) {
	doc, _ := parseOK(t, "graph LR\nA --> B --> C\nD & E --> F")
	f := doc.Flowchart

	require.Len(t, f.Edges, 4)
	assert.Equal(t, "A", f.Edges[0].From)
	assert.Equal(t, "B", f.Edges[1].From)
	assert.Equal(t, "C", f.Edges[1].To)
	assert.Equal(t, "D", f.Edges[2].From)
	assert.Equal(t, "E", f.Edges[3].From)
	assert.Equal(t, "F", f.Edges[3].To)
}

func TestParseFlowchartDashedEdge(t *testing.T) {
	doc, _ := parseOK(t, "graph LR\nA -.-> B\nC ==> D")
	assert.True(t, doc.Flowchart.Edges[0].Dashed)
	assert.False(t, doc.Flowchart.Edges[1].Dashed, "thick arrows render as solid")
}

func TestParseFlowchartClasses(t *testing.T) {
	doc, _ := parseOK(t, strings.Join([]string{
		"flowchart LR",
		"A:::hot --> B",
		"class B cold",
		"classDef hot color:red",
		"classDef cold color:blue,fill:#eee",
	}, "\n"))
	f := doc.Flowchart

	assert.Equal(t, "hot", f.NodeByID("A").Class)
	assert.Equal(t, "cold", f.NodeByID("B").Class)
	assert.Equal(t, "red", f.Classes["hot"].Styles["color"])
	assert.Equal(t, "blue", f.Classes["cold"].Styles["color"])
}

func TestParseFlowchartSubgraphFlattened(t *testing.T) {
	doc, _ := parseOK(t, strings.Join([]string{
		"graph TD",
		"A --> B",
		"subgraph cluster",
		"  direction LR",
		"  B --> C",
		"end",
		"C --> A",
	}, "\n"))
	f := doc.Flowchart

	assert.Len(t, f.Nodes, 3)
	assert.Len(t, f.Edges, 3)
}

func TestParseFlowchartMultilineLabel(t *testing.T) {
	doc, _ := parseOK(t, "graph TD\nA[first<br>second] --> B")
	assert.Equal(t, []string{"first", "second"}, doc.Flowchart.Nodes[0].Label)
}

func TestParseDirectives(t *testing.T) {
	_, cfg := parseOK(t, "paddingX=9\ngraph LR\nboxPadding=0\nA --> B")
	assert.Equal(t, 9, cfg.PaddingX)
	assert.Equal(t, 0, cfg.BoxPadding)
}

func TestParseTerminator(t *testing.T) {
	doc, _ := parseOK(t, "graph LR\nA --> B\n---\nthis is not diagram source")
	assert.Len(t, doc.Flowchart.Edges, 1)
}

func TestParseCommentsIgnored(t *testing.T) {
	doc, _ := parseOK(t, "graph LR\n%% a comment\nA --> B %% trailing")
	assert.Len(t, doc.Flowchart.Edges, 1)
	assert.Len(t, doc.Flowchart.Nodes, 2)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind diagram.ErrorKind
		want string
	}{
		{"empty", "", diagram.KindParse, "empty diagram"},
		{"unknown header", "pie\n", diagram.KindParse, "line 1"},
		{"bad direction", "graph RL\nA --> B", diagram.KindUnsupportedDirection, `"RL"`},
		{"stray end", "graph TD\nend", diagram.KindParse, "end without subgraph"},
		{"unclosed bracket", "graph TD\nA[oops --> B", diagram.KindParse, "unclosed"},
		{"unclosed edge label", "graph TD\nA -->|oops B", diagram.KindParse, "unclosed edge label"},
		{"class of unknown node", "graph TD\nA --> B\nclass X hot", diagram.KindDanglingReference, `"X"`},
		{"bad message", "sequenceDiagram\njust words", diagram.KindParse, "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := diagram.DefaultConfig()
			_, err := Parse(tt.src, &cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, &diagram.Error{Kind: tt.kind}), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseSequence(t *testing.T) {
	doc, _ := parseOK(t, strings.Join([]string{
		"sequenceDiagram",
		"autonumber",
		"participant A as Alice",
		"A->>Bob: Hi",
		"Bob-->>A: Hi back",
		"Bob->>Bob: note to self",
	}, "\n"))

	require.Equal(t, KindSequence, doc.Kind)
	s := doc.Sequence
	assert.True(t, s.Autonumber)

	require.Len(t, s.Participants, 2)
	assert.Equal(t, "Alice", s.Participants[0].Label)

	require.Len(t, s.Events, 3)
	assert.False(t, s.Events[0].Dashed)
	assert.True(t, s.Events[1].Dashed)
	assert.Equal(t, "Bob", s.Events[2].To)
}

func TestParseSequenceActivationShorthand(t *testing.T) {
	doc, _ := parseOK(t, strings.Join([]string{
		"sequenceDiagram",
		"Alice->>+Bob: go",
		"Bob-->>-Alice: done",
	}, "\n"))

	s := doc.Sequence
	require.Len(t, s.Events, 4)
	assert.Equal(t, sequence.EventActivate, s.Events[0].Kind)
	assert.Equal(t, "Bob", s.Events[0].From)
	assert.Equal(t, sequence.EventMessage, s.Events[1].Kind)
	assert.Equal(t, sequence.EventMessage, s.Events[2].Kind)
	assert.Equal(t, sequence.EventDeactivate, s.Events[3].Kind)
	assert.Equal(t, "Bob", s.Events[3].From, "the minus deactivates the sender")
}

func TestParseSequenceExplicitActivation(t *testing.T) {
	doc, _ := parseOK(t, strings.Join([]string{
		"sequenceDiagram",
		"A->>B: go",
		"activate B",
		"B->>A: done",
		"deactivate B",
	}, "\n"))

	s := doc.Sequence
	require.Len(t, s.Events, 4)
	assert.Equal(t, sequence.EventActivate, s.Events[1].Kind)
	assert.Equal(t, sequence.EventDeactivate, s.Events[3].Kind)
}
