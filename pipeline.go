package main

import (
	"mmd/diagram"
	"mmd/layout"
	"mmd/parser"
	"mmd/render"
	"mmd/routing"
	"mmd/sequence"
)

// renderSource runs the full pipeline on raw diagram source: parse, then for
// flowcharts layout, route and paint, for sequence diagrams the column
// layout and row painter. Spacing directives inside the source override the
// flag values, so the config is revalidated after parsing.
func renderSource(src string, cfg diagram.Config) (string, error) {
	doc, err := parser.Parse(src, &cfg)
	if err != nil {
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	if doc.Kind == parser.KindSequence {
		return sequence.Render(doc.Sequence, cfg)
	}

	f := doc.Flowchart
	layout.Apply(f, cfg)
	routing.Route(f, cfg)
	return render.Flowchart(f, cfg)
}
