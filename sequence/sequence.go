// Package sequence models and renders sequence diagrams: participants as
// columns in first-appearance order, events as strictly declaration-ordered
// rows below the participant headers.
package sequence

import (
	"fmt"

	"mmd/diagram"
)

// Participant is one column of the diagram. X and Width describe the header
// box and are filled in by the layout pass.
type Participant struct {
	ID    string
	Label string

	X     int
	Width int
}

// Center returns the lifeline column of the participant.
func (p Participant) Center() int { return p.X + p.Width/2 }

// EventKind discriminates the event row types.
type EventKind int

const (
	EventMessage EventKind = iota
	EventActivate
	EventDeactivate
)

// Event is one entry in the diagram's strict declaration order. Activate and
// deactivate events name their target in From and leave To empty.
type Event struct {
	Kind   EventKind
	From   string
	To     string
	Label  string
	Dashed bool
}

// Sequence is the validated in-memory model handed to the layout pass.
type Sequence struct {
	Participants []Participant
	Events       []Event
	Autonumber   bool

	index map[string]int
}

// NewSequence builds a validated sequence diagram. Participants messages
// mention without a declaration are created on first appearance, matching
// the usual Mermaid behavior; a repeated explicit declaration is an error,
// as is an activation targeting an unknown participant.
func NewSequence(declared []Participant, events []Event, autonumber bool) (*Sequence, error) {
	s := &Sequence{Autonumber: autonumber, index: make(map[string]int)}
	for _, p := range declared {
		if _, ok := s.index[p.ID]; ok {
			return nil, &diagram.Error{
				Kind:    diagram.KindParse,
				Message: fmt.Sprintf("participant %q declared twice", p.ID),
			}
		}
		s.add(p)
	}
	for _, e := range events {
		switch e.Kind {
		case EventMessage:
			s.ensure(e.From)
			s.ensure(e.To)
		default:
			if _, ok := s.index[e.From]; !ok {
				return nil, diagram.DanglingReference(e.From)
			}
		}
		s.Events = append(s.Events, e)
	}
	return s, nil
}

func (s *Sequence) add(p Participant) {
	if p.Label == "" {
		p.Label = p.ID
	}
	s.index[p.ID] = len(s.Participants)
	s.Participants = append(s.Participants, p)
}

func (s *Sequence) ensure(id string) {
	if _, ok := s.index[id]; !ok {
		s.add(Participant{ID: id})
	}
}

// Column returns the participant's column position, or -1.
func (s *Sequence) Column(id string) int {
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}
