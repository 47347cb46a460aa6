// Package shape is the catalog of OpenSCAD primitives and modifiers.
//
// Each statement type has a builder with one setter per parameter. Setters
// can be called in any order; Build finalizes the builder once and reports a
// missing required parameter as a *scad.MissingParameterError:
//
//	sq, err := shape.NewSquare().Size(10).Build()
//	if err != nil {
//	    return err
//	}
//	moved := shape.NewTranslate2D().V(5, 5).MustBuild().Apply(sq.Object())
//	fmt.Println(moved)
//	// translate([5, 5])
//	//   square(size = 10);
//
// The finalized values are typed by dimension. [Primitive2D.Object] returns a
// scad.Object[scad.Planar], and a [Modifier2D] only accepts planar children,
// so mixing 2D and 3D geometry is a compile error. [Projection] turns solids
// into planar shapes and [Extrusion] does the opposite.
//
// # Registry
//
// [Lookup] resolves a statement name and dimension to an [Entry]. Entries
// expose the signature used by the typed builders, which is how model files
// build trees without compile-time types.
package shape
