// Package pkg provides the scadgen libraries for building OpenSCAD source.
//
// # Overview
//
// scadgen represents OpenSCAD programs as typed, dimension-checked trees and
// prints them as deterministic, human-readable text. The pkg directory is
// organized into three areas:
//
//  1. Core: [value] literals, [scad] statements, composition and rendering,
//     and the [shape] catalog of OpenSCAD builtins
//  2. Inputs and outputs: [model] TOML model files and [render/treeviz]
//     statement tree diagrams
//  3. Infrastructure: [pipeline] orchestration, [cache] backends,
//     [observability] hooks, [errors] and [buildinfo]
//
// # Architecture
//
// The typical data flow through scadgen:
//
//	Go code or TOML model
//	         ↓
//	    [shape] builders (typed parameters, required-field checks)
//	         ↓
//	    [scad] composition (2D/3D dimension checks)
//	         ↓
//	    [scad] rendering → .scad text, or [render/treeviz] → DOT/SVG
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/scadgen/pkg/scad"
//	    "github.com/matzehuels/scadgen/pkg/shape"
//	)
//
//	plate := shape.NewCube().SizeXYZ(40, 20, 4).MustBuild().Object()
//	hole := shape.NewCylinder().H(10).D(5).Center(true).MustBuild().Object()
//	fmt.Println(scad.Render(plate.Difference(hole).Node()))
//
// Model files go through the [pipeline] package, which adds caching:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, data, pipeline.Options{})
package pkg
