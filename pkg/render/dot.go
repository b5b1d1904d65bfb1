// Package render turns a solved ladder into a Graphviz node-link chain.
//
// [ToDOT] emits DOT text; [SVG] runs it through Graphviz for an image.
// Each edge is labeled with the one letter that changed, which makes the
// single-substitution invariant visible at a glance.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/ytkachuk12/wordgraph/pkg/ladder"
)

// Options configures ladder rendering.
type Options struct {
	// Rankdir controls chain direction: "LR" (default) or "TB".
	Rankdir string
}

// ToDOT converts a ladder to Graphviz DOT format. Words become boxes and
// each step becomes an edge labeled with its letter substitution, e.g.
// "o→i" for fore→fire.
func ToDOT(l ladder.Ladder, opts Options) string {
	rankdir := opts.Rankdir
	if rankdir == "" {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph ladder {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("  edge [fontsize=10, fontname=\"monospace\"];\n")
	buf.WriteString("\n")

	for _, w := range l {
		fmt.Fprintf(&buf, "  %q;\n", w)
	}

	buf.WriteString("\n")
	for i := 1; i < len(l); i++ {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", l[i-1], l[i], stepLabel(l[i-1], l[i]))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// stepLabel describes the letter substitution between two consecutive
// ladder words, e.g. "o→i". Words in a valid ladder differ in exactly one
// position; anything else yields an empty label rather than a panic.
func stepLabel(from, to string) string {
	if len(from) != len(to) {
		return ""
	}
	for i := 0; i < len(from); i++ {
		if from[i] != to[i] {
			return fmt.Sprintf("%c→%c", from[i], to[i])
		}
	}
	return ""
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
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
