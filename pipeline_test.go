package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmd/diagram"
)

func TestRenderFlowchartEndToEnd(t *testing.T) {
	src := "flowchart TD\nA[\"Start\"] --> B[\"End\"]"
	out, err := renderSource(src, diagram.DefaultConfig())
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
	assert.Less(t, start, end, "top-down flow stacks Start above End")
	assert.Contains(t, out, "▼")
}

func TestRenderFlowchartASCII(t *testing.T) {
	cfg := diagram.DefaultConfig()
	cfg.ASCIIOnly = true

	out, err := renderSource("flowchart TD\nA[\"Start\"] --> B[\"End\"]", cfg)
	require.NoError(t, err)

	for _, r := range out {
		assert.Less(t, int(r), 128)
	}
	assert.Contains(t, out, "v")
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "|")
}

func TestRenderCycleTerminates(t *testing.T) {
	out, err := renderSource("graph TD\nA --> B --> C --> A", diagram.DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderSequenceEndToEnd(t *testing.T) {
	src := "sequenceDiagram\nAlice->>Bob: Hi\nBob->>Alice: Hi back"
	out, err := renderSource(src, diagram.DefaultConfig())
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	first, second := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "Hi") && first < 0 {
			first = i
		}
		if strings.Contains(l, "Hi back") {
			second = i
		}
	}
	assert.Less(t, first, second, "messages keep declaration order top to bottom")
	assert.Contains(t, lines[1], "Alice")
	assert.Contains(t, lines[1], "Bob")
}

func TestRenderDeterminism(t *testing.T) {
	src := "graph LR\nA --> B & C\nB --> D\nC --> D\nD -.->|retry| A"
	first, err := renderSource(src, diagram.DefaultConfig())
	require.NoError(t, err)
	second, err := renderSource(src, diagram.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderDirectiveOverridesFlag(t *testing.T) {
	wide, err := renderSource("paddingY=12\ngraph TD\nA --> B", diagram.DefaultConfig())
	require.NoError(t, err)
	narrow, err := renderSource("graph TD\nA --> B", diagram.DefaultConfig())
	require.NoError(t, err)

	assert.Greater(t, len(strings.Split(wide, "\n")), len(strings.Split(narrow, "\n")))
}

func TestRenderParseErrorKind(t *testing.T) {
	_, err := renderSource("not a diagram", diagram.DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, &diagram.Error{Kind: diagram.KindParse}))
}

func TestRenderBadDirectiveValue(t *testing.T) {
	_, err := renderSource("paddingX=-3\ngraph TD\nA --> B", diagram.DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, &diagram.Error{Kind: diagram.KindLayoutOverflow}),
		"negative padding fails the post-parse validation")
}

func TestRenderRejectsZeroPaddingDirective(t *testing.T) {
	for _, src := range []string{
		"paddingX=0\ngraph TD\nA --> B",
		"paddingY=0\ngraph TD\nA --> B",
	} {
		_, err := renderSource(src, diagram.DefaultConfig())
		require.Error(t, err)
		assert.True(t, errors.Is(err, &diagram.Error{Kind: diagram.KindLayoutOverflow}),
			"flush boxes leave no room to route, so zero padding is rejected")
	}
}
