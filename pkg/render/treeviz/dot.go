package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/scadgen/pkg/scad"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds the dimension tag and comment to node labels.
	Detailed bool
}

// Fill colors by dimension.
var fills = map[scad.Dimension]string{
	scad.TwoD:   "#dbeafe",
	scad.ThreeD: "#fef3c7",
	scad.Mixed:  "white",
}

// ToDOT converts trees to Graphviz DOT source. Each root starts its own
// subtree in the same graph, in order.
func ToDOT(roots []*scad.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"monospace\", fontsize=14];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	w := &dotWriter{buf: &buf, opts: opts}
	for _, root := range roots {
		w.node(root)
	}

	if len(w.edges) > 0 {
		buf.WriteString("\n")
		for _, e := range w.edges {
			fmt.Fprintf(&buf, "  %s -> %s;\n", e[0], e[1])
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf   *bytes.Buffer
	opts  Options
	next  int
	edges [][2]string
}

func (w *dotWriter) node(n *scad.Node) string {
	if n == nil {
		return ""
	}
	id := "n" + strconv.Itoa(w.next)
	w.next++

	attrs := []string{fmt.Sprintf("label=%q", w.label(n))}
	if _, ok := n.Statement().(*scad.Block); ok {
		attrs = append(attrs, "shape=ellipse", "style=dashed")
	} else {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fills[n.Dimension()]))
	}
	if c := n.Comment(); c != "" {
		attrs = append(attrs, fmt.Sprintf("tooltip=%q", c))
	}
	fmt.Fprintf(w.buf, "  %s [%s];\n", id, strings.Join(attrs, ", "))

	for _, c := range n.Children() {
		w.edges = append(w.edges, [2]string{id, w.node(c)})
	}
	return id
}

func (w *dotWriter) label(n *scad.Node) string {
	var head string
	switch s := n.Statement().(type) {
	case *scad.Primitive:
		head = s.Header()
	case *scad.Modifier:
		head = s.Header()
	case *scad.Block:
		head = "{ }"
	}
	if !w.opts.Detailed {
		return head
	}
	parts := []string{head, n.Dimension().String()}
	if c := n.Comment(); c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one that
// scales in a browser.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
