// Package parser turns Mermaid-flavored diagram source into the in-memory
// models. Two dialects are recognized, flowcharts and sequence diagrams,
// chosen by the first meaningful line.
package parser

import (
	"strconv"
	"strings"

	"mmd/diagram"
	"mmd/sequence"
)

// Kind identifies the parsed diagram type.
type Kind int

const (
	KindFlowchart Kind = iota
	KindSequence
)

// Document is the result of a parse: exactly one of the diagram fields is
// set, according to Kind.
type Document struct {
	Kind      Kind
	Flowchart *diagram.Flowchart
	Sequence  *sequence.Sequence
}

// Parse reads diagram source and builds the model. Spacing directives in the
// source (paddingX=, paddingY=, boxPadding=) are applied to cfg as they are
// seen, overriding flag values. A line of three dashes ends the input early,
// so diagrams embedded in larger documents can be cut off.
func Parse(src string, cfg *diagram.Config) (*Document, error) {
	lines := strings.Split(src, "\n")

	for i, raw := range lines {
		line := stripComment(raw)
		if line == "" {
			continue
		}
		if isTerminator(line) {
			return nil, diagram.ParseError(i+1, "no diagram before terminator")
		}
		if ok, err := applyDirective(line, i+1, cfg); err != nil {
			return nil, err
		} else if ok {
			continue
		}

		head := strings.Fields(line)[0]
		switch head {
		case "sequenceDiagram":
			s, err := parseSequence(lines, i+1)
			if err != nil {
				return nil, err
			}
			return &Document{Kind: KindSequence, Sequence: s}, nil
		case "graph", "flowchart":
			f, err := parseFlowchart(line, lines, i+1, cfg)
			if err != nil {
				return nil, err
			}
			return &Document{Kind: KindFlowchart, Flowchart: f}, nil
		default:
			return nil, diagram.ParseError(i+1, "expected graph, flowchart or sequenceDiagram, got %q", head)
		}
	}
	return nil, diagram.ParseError(1, "empty diagram")
}

// stripComment drops %% comments and surrounding whitespace.
func stripComment(line string) string {
	if i := strings.Index(line, "%%"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// isTerminator reports whether the line cuts off the diagram source.
func isTerminator(line string) bool {
	if len(line) < 3 {
		return false
	}
	return strings.Trim(line, "-") == ""
}

// applyDirective handles key=value spacing directives. Returns ok=false when
// the line is not a directive.
func applyDirective(line string, lineno int, cfg *diagram.Config) (bool, error) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return false, nil
	}
	key = strings.TrimSpace(key)
	if key != "paddingX" && key != "paddingY" && key != "boxPadding" {
		return false, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return false, diagram.ParseError(lineno, "directive %s needs an integer, got %q", key, value)
	}
	switch key {
	case "paddingX":
		cfg.PaddingX = n
	case "paddingY":
		cfg.PaddingY = n
	default:
		cfg.BoxPadding = n
	}
	return true, nil
}

// splitLabel breaks a label on Mermaid <br> markers into display lines.
func splitLabel(label string) []string {
	for _, br := range []string{"<br/>", "<br />", "<br>"} {
		label = strings.ReplaceAll(label, br, "\x00")
	}
	parts := strings.Split(label, "\x00")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
