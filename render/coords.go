package render

import (
	"fmt"
	"strings"

	"mmd/diagram"
)

// annotate frames the output with column and row rulers and appends the
// canvas bounds plus every edge route. Meant for eyeballing layout problems,
// not for machine consumption.
func annotate(out string, f *diagram.Flowchart, b diagram.Bounds) string {
	var sb strings.Builder

	sb.WriteString("    ")
	for x := 0; x < b.Width(); x++ {
		sb.WriteByte('0' + byte(x%10))
	}
	sb.WriteByte('\n')
	for y, line := range strings.Split(out, "\n") {
		fmt.Fprintf(&sb, "%3d %s\n", y, line)
	}

	fmt.Fprintf(&sb, "\nbounds: %dx%d (min %d,%d)\n", b.Width(), b.Height(), b.Min.X, b.Min.Y)
	for _, e := range f.Edges {
		fmt.Fprintf(&sb, "route %s -> %s:", e.From, e.To)
		for _, p := range e.Route {
			fmt.Fprintf(&sb, " (%d,%d)", p.X, p.Y)
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
