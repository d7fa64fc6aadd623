package parser

import (
	"strings"

	"mmd/diagram"
)

// parseFlowchart consumes the body following a graph/flowchart header line.
// Subgraphs are flattened: their nodes and edges join the parent graph and
// the grouping itself is dropped.
func parseFlowchart(header string, lines []string, start int, cfg *diagram.Config) (*diagram.Flowchart, error) {
	dir := cfg.GraphDirection
	if fields := strings.Fields(header); len(fields) > 1 {
		switch fields[1] {
		case "TD", "TB":
			dir = diagram.DirectionTD
		case "LR":
			dir = diagram.DirectionLR
		default:
			return nil, diagram.UnsupportedDirection(fields[1])
		}
	}
	cfg.GraphDirection = dir

	var (
		nodes       []diagram.Node
		edges       []diagram.Edge
		classes     = make(map[string]diagram.ClassStyle)
		assignments []classAssignment
		depth       int
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
		if ok, err := applyDirective(line, lineno, cfg); err != nil {
			return nil, err
		} else if ok {
			continue
		}

		head := strings.Fields(line)[0]
		switch head {
		case "subgraph":
			depth++
		case "end":
			depth--
			if depth < 0 {
				return nil, diagram.ParseError(lineno, "end without subgraph")
			}
		case "direction":
			if depth == 0 {
				return nil, diagram.ParseError(lineno, "direction outside subgraph")
			}
		case "classDef":
			name, style, err := parseClassDef(line, lineno)
			if err != nil {
				return nil, err
			}
			classes[name] = style
		case "class":
			a, err := parseClassAssignment(line, lineno)
			if err != nil {
				return nil, err
			}
			assignments = append(assignments, a)
		default:
			ns, es, err := parseEdgeLine(line, lineno)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, ns...)
			edges = append(edges, es...)
		}
	}
	if depth > 0 {
		return nil, diagram.ParseError(len(lines), "subgraph without end")
	}

	f, err := diagram.NewFlowchart(nodes, edges, dir)
	if err != nil {
		return nil, err
	}
	for name, style := range classes {
		f.Classes[name] = style
	}
	for _, a := range assignments {
		for _, id := range a.ids {
			n := f.NodeByID(id)
			if n == nil {
				return nil, diagram.DanglingReference(id)
			}
			n.Class = a.name
		}
	}
	return f, nil
}

type classAssignment struct {
	ids  []string
	name string
}

// parseClassDef handles "classDef name key:value,key:value".
func parseClassDef(line string, lineno int) (string, diagram.ClassStyle, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return "", diagram.ClassStyle{}, diagram.ParseError(lineno, "classDef needs a name and styles")
	}
	name := fields[1]
	styles := make(map[string]string)
	for _, pair := range strings.Split(strings.Join(fields[2:], ""), ",") {
		k, v, found := strings.Cut(pair, ":")
		if !found {
			return "", diagram.ClassStyle{}, diagram.ParseError(lineno, "malformed style %q", pair)
		}
		styles[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return name, diagram.ClassStyle{Name: name, Styles: styles}, nil
}

// parseClassAssignment handles "class id1,id2 name".
func parseClassAssignment(line string, lineno int) (classAssignment, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return classAssignment{}, diagram.ParseError(lineno, "class needs node ids and a class name")
	}
	ids := strings.Split(fields[1], ",")
	for i := range ids {
		ids[i] = strings.TrimSpace(ids[i])
	}
	return classAssignment{ids: ids, name: fields[2]}, nil
}

// parseEdgeLine handles a node declaration or a chain of edges, including
// "&" fan-out groups and |label| edge labels.
func parseEdgeLine(line string, lineno int) ([]diagram.Node, []diagram.Edge, error) {
	type arrow struct {
		dashed bool
		label  string
	}

	var groups [][]diagram.Node
	var arrows []arrow

	rest := line
	for {
		idx, width, dashed := findArrow(rest)
		if idx < 0 {
			g, err := parseGroup(rest, lineno)
			if err != nil {
				return nil, nil, err
			}
			groups = append(groups, g)
			break
		}
		g, err := parseGroup(rest[:idx], lineno)
		if err != nil {
			return nil, nil, err
		}
		groups = append(groups, g)
		rest = strings.TrimSpace(rest[idx+width:])

		label := ""
		if strings.HasPrefix(rest, "|") {
			end := strings.Index(rest[1:], "|")
			if end < 0 {
				return nil, nil, diagram.ParseError(lineno, "unclosed edge label")
			}
			label = unquote(strings.TrimSpace(rest[1 : 1+end]))
			rest = strings.TrimSpace(rest[end+2:])
		}
		arrows = append(arrows, arrow{dashed: dashed, label: label})
	}

	var nodes []diagram.Node
	for _, g := range groups {
		nodes = append(nodes, g...)
	}
	var edges []diagram.Edge
	for i, a := range arrows {
		for _, from := range groups[i] {
			for _, to := range groups[i+1] {
				edges = append(edges, diagram.Edge{
					From:   from.ID,
					To:     to.ID,
					Label:  a.label,
					Dashed: a.dashed,
				})
			}
		}
	}
	return nodes, edges, nil
}

// findArrow locates the earliest edge operator in s. Thick arrows render the
// same as plain ones.
func findArrow(s string) (idx, width int, dashed bool) {
	idx = -1
	for _, op := range []struct {
		tok    string
		dashed bool
	}{
		{"-.->", true},
		{"-->", false},
		{"==>", false},
	} {
		if i := strings.Index(s, op.tok); i >= 0 && (idx < 0 || i < idx) {
			idx, width, dashed = i, len(op.tok), op.dashed
		}
	}
	return idx, width, dashed
}

// parseGroup handles one side of an arrow: node refs joined by "&".
func parseGroup(s string, lineno int) ([]diagram.Node, error) {
	var nodes []diagram.Node
	for _, part := range strings.Split(s, "&") {
		n, err := parseNodeRef(strings.TrimSpace(part), lineno)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// parseNodeRef handles "id", "id[Label]", "id(Label)", "id{Label}" and the
// ":::class" suffix. Labels may be quoted and may hold <br> line breaks.
func parseNodeRef(s string, lineno int) (diagram.Node, error) {
	if s == "" {
		return diagram.Node{}, diagram.ParseError(lineno, "missing node")
	}

	var n diagram.Node
	i := strings.IndexAny(s, "[({")
	if i < 0 {
		id, class, _ := strings.Cut(s, ":::")
		n.ID, n.Class = strings.TrimSpace(id), strings.TrimSpace(class)
		return n, checkID(n.ID, lineno)
	}

	n.ID = strings.TrimSpace(s[:i])
	if err := checkID(n.ID, lineno); err != nil {
		return diagram.Node{}, err
	}

	var closing byte
	switch s[i] {
	case '[':
		closing = ']'
		n.Shape = diagram.ShapeRectangle
	case '(':
		closing = ')'
		n.Shape = diagram.ShapeRounded
	case '{':
		closing = '}'
		n.Shape = diagram.ShapeDiamond
	}
	j := strings.LastIndexByte(s, closing)
	if j <= i {
		return diagram.Node{}, diagram.ParseError(lineno, "unclosed %q in node %q", string(s[i]), n.ID)
	}

	label := strings.TrimSpace(s[i+1 : j])
	if n.Shape == diagram.ShapeRounded &&
		strings.HasPrefix(label, "(") && strings.HasSuffix(label, ")") {
		label = strings.TrimSpace(label[1 : len(label)-1]) // stadium form ((x))
	}
	n.Label = splitLabel(unquote(label))

	tail := strings.TrimSpace(s[j+1:])
	switch {
	case tail == "":
	case strings.HasPrefix(tail, ":::"):
		n.Class = strings.TrimSpace(tail[3:])
	default:
		return diagram.Node{}, diagram.ParseError(lineno, "unexpected %q after node %q", tail, n.ID)
	}
	return n, nil
}

func checkID(id string, lineno int) error {
	if id == "" {
		return diagram.ParseError(lineno, "missing node id")
	}
	if strings.ContainsAny(id, " \t") {
		return diagram.ParseError(lineno, "node id %q contains whitespace", id)
	}
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
