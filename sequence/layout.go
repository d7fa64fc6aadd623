package sequence

import (
	"fmt"

	"mmd/canvas"
	"mmd/diagram"
)

// Layout assigns every participant its header box geometry. Boxes size from
// their labels plus the box padding; lifelines then space out left to right
// by the participant spacing, widened wherever a message label needs more
// room than its span offers.
func Layout(s *Sequence, cfg diagram.Config) {
	for i := range s.Participants {
		p := &s.Participants[i]
		p.Width = canvas.TextWidth(p.Label) + 2*cfg.BoxPadding + 2
		if p.Width < 3 {
			p.Width = 3
		}
	}
	if len(s.Participants) == 0 {
		return
	}

	centers := make([]int, len(s.Participants))
	centers[0] = s.Participants[0].Width / 2
	for i := 1; i < len(centers); i++ {
		gap := s.Participants[i-1].Width/2 + s.Participants[i].Width/2 + cfg.ParticipantSpacing
		centers[i] = centers[i-1] + gap
	}

	// Widen spans whose message label would not fit between the lifelines,
	// shifting every column right of the span.
	labels := s.DisplayLabels()
	for i, e := range s.Events {
		if e.Kind != EventMessage || labels[i] == "" || e.From == e.To {
			continue
		}
		a, b := s.Column(e.From), s.Column(e.To)
		if a > b {
			a, b = b, a
		}
		need := canvas.TextWidth(labels[i]) + 4
		if deficit := need - (centers[b] - centers[a]); deficit > 0 {
			for j := b; j < len(centers); j++ {
				centers[j] += deficit
			}
		}
	}

	for i := range s.Participants {
		p := &s.Participants[i]
		p.X = centers[i] - p.Width/2
	}
}

// DisplayLabels returns the label drawn for each event, with autonumber
// prefixes applied to messages in declaration order.
func (s *Sequence) DisplayLabels() []string {
	out := make([]string, len(s.Events))
	n := 0
	for i, e := range s.Events {
		if e.Kind != EventMessage {
			continue
		}
		n++
		switch {
		case !s.Autonumber:
			out[i] = e.Label
		case e.Label == "":
			out[i] = fmt.Sprintf("%d.", n)
		default:
			out[i] = fmt.Sprintf("%d. %s", n, e.Label)
		}
	}
	return out
}
