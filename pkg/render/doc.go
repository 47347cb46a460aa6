// Package render groups the non-OpenSCAD outputs of scadgen.
//
// OpenSCAD source itself is produced by [scad.Render]; the subpackages here
// draw the same trees for inspection:
//
//   - [treeviz]: statement trees as Graphviz DOT and SVG
package render
