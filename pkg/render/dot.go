// Package render exports section-tree topology as Graphviz DOT and renders
// it to SVG. It draws the structure of a reconstruction (sections as nodes,
// ownership as edges), not its geometry; geometric viewers are external
// collaborators.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/arborlab/morpho/pkg/morph"
)

// Options configures DOT export.
type Options struct {
	// Detailed includes point counts and section lengths in node labels.
	// When false, only the section id and type are shown.
	Detailed bool
}

// ToDOT converts a morphology's section topology to Graphviz DOT. The soma
// is one root node; every section is a box colored by neurite type, with an
// edge from its parent (or from the soma for neurite roots).
func ToDOT(m *morph.Morphology, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph morphology {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  soma [label=%q, shape=ellipse, fillcolor=lightgrey];\n",
		fmt.Sprintf("soma\n%d pts", len(m.Soma().Points())))

	for _, n := range m.Neurites() {
		for s := range morph.Preorder(n.RootNode()) {
			fmt.Fprintf(&buf, "  s%d [label=%q, fillcolor=%q];\n",
				s.ID(), nodeLabel(s, opts.Detailed), typeColor(s.Type()))
		}
	}

	buf.WriteString("\n")
	for _, n := range m.Neurites() {
		fmt.Fprintf(&buf, "  soma -> s%d;\n", n.RootNode().ID())
		for s := range morph.Preorder(n.RootNode()) {
			for _, c := range s.Children() {
				fmt.Fprintf(&buf, "  s%d -> s%d;\n", s.ID(), c.ID())
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(s *morph.Section, detailed bool) string {
	label := fmt.Sprintf("s%d\n%s", s.ID(), s.Type())
	if detailed {
		label += fmt.Sprintf("\n%d pts, %.2f µm", len(s.Points()), s.Length())
	}
	return label
}

func typeColor(t morph.NeuriteType) string {
	switch t {
	case morph.TypeAxon:
		return "lightblue"
	case morph.TypeBasalDendrite:
		return "palegreen"
	case morph.TypeApicalDendrite:
		return "khaki"
	}
	return "white"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
