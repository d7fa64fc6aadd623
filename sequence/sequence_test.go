package sequence

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmd/diagram"
)

func TestNewSequenceDuplicateParticipant(t *testing.T) {
	_, err := NewSequence([]Participant{{ID: "A"}, {ID: "A"}}, nil, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &diagram.Error{Kind: diagram.KindParse}))
}

func TestNewSequenceAutoCreatesParticipants(t *testing.T) {
	s, err := NewSequence(nil, []Event{
		{Kind: EventMessage, From: "Alice", To: "Bob"},
		{Kind: EventMessage, From: "Carol", To: "Alice"},
	}, false)
	require.NoError(t, err)

	var ids []string
	for _, p := range s.Participants {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, ids, "first-appearance order")
}

func TestNewSequenceUnknownActivation(t *testing.T) {
	_, err := NewSequence(nil, []Event{{Kind: EventActivate, From: "ghost"}}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &diagram.Error{Kind: diagram.KindDanglingReference}))
}

func TestDisplayLabelsAutonumber(t *testing.T) {
	s, err := NewSequence(nil, []Event{
		{Kind: EventMessage, From: "A", To: "B", Label: "hi"},
		{Kind: EventActivate, From: "B"},
		{Kind: EventMessage, From: "B", To: "A", Label: "yo"},
		{Kind: EventMessage, From: "A", To: "B"},
	}, true)
	require.NoError(t, err)

	labels := s.DisplayLabels()
	assert.Equal(t, "1. hi", labels[0])
	assert.Equal(t, "", labels[1], "activations are not numbered")
	assert.Equal(t, "2. yo", labels[2])
	assert.Equal(t, "3.", labels[3], "unlabeled messages still get a number")
}

func TestLayoutWidensForLabels(t *testing.T) {
	s, err := NewSequence(nil, []Event{
		{Kind: EventMessage, From: "A", To: "B", Label: "a rather long message label"},
	}, false)
	require.NoError(t, err)

	cfg := diagram.DefaultConfig()
	Layout(s, cfg)

	span := s.Participants[1].Center() - s.Participants[0].Center()
	assert.GreaterOrEqual(t, span, len("a rather long message label")+4)
}

func TestRenderMessageOrder(t *testing.T) {
	s, err := NewSequence(nil, []Event{
		{Kind: EventMessage, From: "Alice", To: "Bob", Label: "Hi"},
		{Kind: EventMessage, From: "Bob", To: "Alice", Label: "Hi back"},
	}, false)
	require.NoError(t, err)

	out, err := Render(s, diagram.DefaultConfig())
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
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "second message renders strictly below the first")

	assert.Contains(t, lines[1], "Alice")
	assert.Contains(t, lines[1], "Bob")
	assert.Contains(t, out, "►")
	assert.Contains(t, out, "◄")
}

func TestRenderSelfMessage(t *testing.T) {
	s, err := NewSequence(nil, []Event{
		{Kind: EventMessage, From: "A", To: "A", Label: "think"},
	}, false)
	require.NoError(t, err)

	out, err := Render(s, diagram.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "think")
	assert.Contains(t, out, "◄", "loop arrow points back into the lifeline")
	assert.Contains(t, out, "┐")
	assert.Contains(t, out, "┘")
}

func TestRenderActivationSpan(t *testing.T) {
	s, err := NewSequence(nil, []Event{
		{Kind: EventActivate, From: "A"},
		{Kind: EventMessage, From: "A", To: "B", Label: "work"},
		{Kind: EventDeactivate, From: "A"},
		{Kind: EventMessage, From: "B", To: "A", Label: "done"},
	}, false)
	require.NoError(t, err)

	out, err := Render(s, diagram.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "┃")
}

func TestRenderUnmatchedActivationRunsToEnd(t *testing.T) {
	s, err := NewSequence(nil, []Event{
		{Kind: EventMessage, From: "A", To: "B"},
		{Kind: EventActivate, From: "B"},
		{Kind: EventMessage, From: "A", To: "B"},
	}, false)
	require.NoError(t, err)

	out, err := Render(s, diagram.DefaultConfig())
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[len(lines)-1], "┃", "open activation extends to the final row")
}

func TestRenderASCII(t *testing.T) {
	s, err := NewSequence(nil, []Event{
		{Kind: EventMessage, From: "A", To: "B", Label: "hi"},
		{Kind: EventMessage, From: "B", To: "B", Label: "self"},
	}, false)
	require.NoError(t, err)

	cfg := diagram.DefaultConfig()
	cfg.ASCIIOnly = true
	out, err := Render(s, cfg)
	require.NoError(t, err)

	for _, r := range out {
		assert.Less(t, int(r), 128, "ascii output must not contain %q", string(r))
	}
}
