package parser

import (
	"strings"

	"mmd/diagram"
	"mmd/sequence"
)

// parseSequence consumes the body following a sequenceDiagram header line.
func parseSequence(lines []string, start int) (*sequence.Sequence, error) {
	var (
		decls      []sequence.Participant
		events     []sequence.Event
		autonumber bool
	)

	for j := start; j < len(lines); j++ {
		lineno := j + 1
		line := stripComment(lines[j])
		if line == "" {
			continue
		}
		if isTerminator(line) {
			break
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "autonumber":
			autonumber = true
		case "participant", "actor":
			p, err := parseParticipant(fields, lineno)
			if err != nil {
				return nil, err
			}
			decls = append(decls, p)
		case "activate", "deactivate":
			if len(fields) != 2 {
				return nil, diagram.ParseError(lineno, "%s needs exactly one participant", fields[0])
			}
			kind := sequence.EventActivate
			if fields[0] == "deactivate" {
				kind = sequence.EventDeactivate
			}
			events = append(events, sequence.Event{Kind: kind, From: fields[1]})
		default:
			evs, err := parseMessage(line, lineno)
			if err != nil {
				return nil, err
			}
			events = append(events, evs...)
		}
	}
	return sequence.NewSequence(decls, events, autonumber)
}

// parseParticipant handles "participant A" and "participant A as Alice".
// Actors render the same as participants.
func parseParticipant(fields []string, lineno int) (sequence.Participant, error) {
	switch {
	case len(fields) == 2:
		return sequence.Participant{ID: fields[1]}, nil
	case len(fields) >= 4 && fields[2] == "as":
		label := unquote(strings.Join(fields[3:], " "))
		return sequence.Participant{ID: fields[1], Label: label}, nil
	default:
		return sequence.Participant{}, diagram.ParseError(lineno, "malformed participant declaration")
	}
}

// parseMessage handles one message line, expanding the Mermaid +/- shorthand
// into explicit activation events: "+" before the target activates it, "-"
// before the target deactivates the sender.
func parseMessage(line string, lineno int) ([]sequence.Event, error) {
	idx, width, dashed := findMessageArrow(line)
	if idx < 0 {
		return nil, diagram.ParseError(lineno, "expected a message, participant or activation, got %q", line)
	}

	from := strings.TrimSpace(line[:idx])
	rest := strings.TrimSpace(line[idx+width:])
	target, label, _ := strings.Cut(rest, ":")
	target = strings.TrimSpace(target)
	label = strings.TrimSpace(label)

	var activate, deactivate bool
	switch {
	case strings.HasPrefix(target, "+"):
		activate = true
		target = strings.TrimSpace(target[1:])
	case strings.HasPrefix(target, "-"):
		deactivate = true
		target = strings.TrimSpace(target[1:])
	}

	if from == "" || target == "" {
		return nil, diagram.ParseError(lineno, "message needs a sender and a receiver")
	}

	var events []sequence.Event
	if activate {
		events = append(events, sequence.Event{Kind: sequence.EventActivate, From: target})
	}
	events = append(events, sequence.Event{
		Kind:   sequence.EventMessage,
		From:   from,
		To:     target,
		Label:  label,
		Dashed: dashed,
	})
	if deactivate {
		events = append(events, sequence.Event{Kind: sequence.EventDeactivate, From: from})
	}
	return events, nil
}

// findMessageArrow locates the earliest message operator; at equal positions
// the longer operator wins, so "-->>" is never misread as "-->".
func findMessageArrow(s string) (idx, width int, dashed bool) {
	idx = -1
	for _, op := range []struct {
		tok    string
		dashed bool
	}{
		{"-->>", true},
		{"->>", false},
		{"-->", true},
		{"->", false},
	} {
		if i := strings.Index(s, op.tok); i >= 0 && (idx < 0 || i < idx) {
			idx, width, dashed = i, len(op.tok), op.dashed
		}
	}
	return idx, width, dashed
}
