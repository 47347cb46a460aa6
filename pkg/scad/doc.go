// Package scad is a typed object model and printer for OpenSCAD source.
//
// A program is a tree of [Node] values. Each node wraps exactly one
// [Statement] and an optional comment. There are three kinds of statement:
//
//   - [Primitive]: a leaf such as square(size = 10) or sphere(r = 5)
//   - [Modifier]: a named operation with exactly one child, such as
//     translate([5, 5]) or difference()
//   - [Block]: an unnamed, brace-delimited group of zero or more children
//
// # Dimensions
//
// Every statement is tagged with a [Dimension]: [TwoD], [ThreeD] or [Mixed].
// Trees are assembled through the composition functions ([TryModify],
// [TryBlock], [TryCompose]) which check that every child's dimension is
// compatible with what its parent requires. A mismatch is reported as a
// [*DimensionMismatchError] before any text is produced. The panicking forms
// ([Modify], [NewBlock], [Compose]) are meant for tests and scripts; code
// that handles untrusted input should use the Try forms.
//
// [Object] lifts the check into the type system: Object[Planar] and
// Object[Solid] are distinct types, so [Union], [Difference] and
// [Intersection] cannot mix 2D and 3D operands.
//
// # Rendering
//
// [Render] turns a tree into text. It is pure and total: a tree that could be
// constructed can always be rendered, and rendering the same tree twice yields
// identical output. Indentation is two spaces per level.
//
//	cube := shape.NewCube().Size(15).Center(true).MustBuild()
//	fmt.Println(scad.Render(scad.NewPrimitive(cube)))
//	// cube(size = 15, center = true);
//
// Comments are emitted verbatim as /* text */. A comment containing "*/"
// produces broken output; callers that accept comment text from users must
// strip it themselves.
package scad
