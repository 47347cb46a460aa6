// Package treeviz draws OpenSCAD object trees as Graphviz diagrams.
//
// Every statement becomes a box labelled with its call header, filled by
// dimension, with an arrow to each child. Blocks appear as small "{ }"
// nodes so that grouping stays visible.
//
//	dot := treeviz.ToDOT(model.Objects, treeviz.Options{})
//	svg, err := treeviz.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools. SVG rendering runs in process via [github.com/goccy/go-graphviz].
package treeviz
