package shape

import (
	"github.com/matzehuels/scadgen/pkg/scad"
)

// Primitive2D is a finalized planar primitive such as square() or circle().
type Primitive2D struct{ body scad.Body }

// Body returns the name and parameters.
func (p Primitive2D) Body() scad.Body { return p.body }

// Dimension returns the primitive's tag.
func (p Primitive2D) Dimension() scad.Dimension { return scad.TwoD }

// Object wraps the primitive in a typed node.
func (p Primitive2D) Object() scad.Object[scad.Planar] { return scad.Leaf[scad.Planar](p) }

// Node wraps the primitive in an untyped node.
func (p Primitive2D) Node() *scad.Node { return scad.NewPrimitive(p) }

// Primitive3D is a finalized solid primitive such as cube() or sphere().
type Primitive3D struct{ body scad.Body }

// Body returns the name and parameters.
func (p Primitive3D) Body() scad.Body { return p.body }

// Dimension returns the primitive's tag.
func (p Primitive3D) Dimension() scad.Dimension { return scad.ThreeD }

// Object wraps the primitive in a typed node.
func (p Primitive3D) Object() scad.Object[scad.Solid] { return scad.Leaf[scad.Solid](p) }

// Node wraps the primitive in an untyped node.
func (p Primitive3D) Node() *scad.Node { return scad.NewPrimitive(p) }

// Modifier2D transforms planar geometry, e.g. translate([1, 2]).
type Modifier2D struct{ body scad.Body }

// Body returns the name and parameters.
func (m Modifier2D) Body() scad.Body { return m.body }

// Dimension returns the result dimension.
func (m Modifier2D) Dimension() scad.Dimension { return scad.TwoD }

// ChildDimension returns the dimension required of the child.
func (m Modifier2D) ChildDimension() scad.Dimension { return scad.TwoD }

// Apply wraps child.
func (m Modifier2D) Apply(child scad.Object[scad.Planar]) scad.Object[scad.Planar] {
	return scad.Apply[scad.Planar, scad.Planar](m, child)
}

// Modifier3D transforms solid geometry, e.g. rotate([0, 0, 90]).
type Modifier3D struct{ body scad.Body }

// Body returns the name and parameters.
func (m Modifier3D) Body() scad.Body { return m.body }

// Dimension returns the result dimension.
func (m Modifier3D) Dimension() scad.Dimension { return scad.ThreeD }

// ChildDimension returns the dimension required of the child.
func (m Modifier3D) ChildDimension() scad.Dimension { return scad.ThreeD }

// Apply wraps child.
func (m Modifier3D) Apply(child scad.Object[scad.Solid]) scad.Object[scad.Solid] {
	return scad.Apply[scad.Solid, scad.Solid](m, child)
}

// Projection flattens a solid into a planar shape.
type Projection struct{ body scad.Body }

// Body returns the name and parameters.
func (m Projection) Body() scad.Body { return m.body }

// Dimension returns the result dimension.
func (m Projection) Dimension() scad.Dimension { return scad.TwoD }

// ChildDimension returns the dimension required of the child.
func (m Projection) ChildDimension() scad.Dimension { return scad.ThreeD }

// Apply wraps child.
func (m Projection) Apply(child scad.Object[scad.Solid]) scad.Object[scad.Planar] {
	return scad.Apply[scad.Solid, scad.Planar](m, child)
}

// Extrusion sweeps a planar shape into a solid.
type Extrusion struct{ body scad.Body }

// Body returns the name and parameters.
func (m Extrusion) Body() scad.Body { return m.body }

// Dimension returns the result dimension.
func (m Extrusion) Dimension() scad.Dimension { return scad.ThreeD }

// ChildDimension returns the dimension required of the child.
func (m Extrusion) ChildDimension() scad.Dimension { return scad.TwoD }

// Apply wraps child.
func (m Extrusion) Apply(child scad.Object[scad.Planar]) scad.Object[scad.Solid] {
	return scad.Apply[scad.Planar, scad.Solid](m, child)
}

// Color tints geometry of either dimension.
type Color struct{ body scad.Body }

// Body returns the name and parameters.
func (m Color) Body() scad.Body { return m.body }

// Dimension returns the result dimension.
func (m Color) Dimension() scad.Dimension { return scad.Mixed }

// ChildDimension returns the dimension required of the child.
func (m Color) ChildDimension() scad.Dimension { return scad.Mixed }

// Paint applies c to child, keeping child's dimension.
func Paint[S scad.Space](c Color, child scad.Object[S]) scad.Object[S] {
	return scad.Apply[S, S](c, child)
}

// Operator is a parameterless modifier over any number of children:
// hull, minkowski, union, difference and intersection.
type Operator[S scad.Space] struct{ name string }

// Body returns the name and parameters.
func (o Operator[S]) Body() scad.Body { return scad.Body{Name: o.name} }

// Dimension returns the result dimension.
func (o Operator[S]) Dimension() scad.Dimension { return scad.SpaceOf[S]() }

// ChildDimension returns the dimension required of the child.
func (o Operator[S]) ChildDimension() scad.Dimension { return scad.SpaceOf[S]() }

// Apply wraps children, grouping them in a block unless there is exactly one.
func (o Operator[S]) Apply(children ...scad.Object[S]) scad.Object[S] {
	nodes := make([]*scad.Node, len(children))
	for i, c := range children {
		nodes[i] = c.Node()
	}
	return scad.MustLift[S](scad.Compose(o, nodes...))
}

// Hull returns hull().
func Hull[S scad.Space]() Operator[S] { return Operator[S]{name: "hull"} }

// Minkowski returns minkowski().
func Minkowski[S scad.Space]() Operator[S] { return Operator[S]{name: "minkowski"} }

// Union returns union().
func Union[S scad.Space]() Operator[S] { return Operator[S]{name: scad.OpUnion} }

// Difference returns difference().
func Difference[S scad.Space]() Operator[S] { return Operator[S]{name: scad.OpDifference} }

// Intersection returns intersection().
func Intersection[S scad.Space]() Operator[S] { return Operator[S]{name: scad.OpIntersection} }

// modifier is the untyped body produced by the registry.
type modifier struct {
	body  scad.Body
	dim   scad.Dimension
	child scad.Dimension
}

// Body returns the name and parameters.
func (m modifier) Body() scad.Body { return m.body }

// Dimension returns the result dimension.
func (m modifier) Dimension() scad.Dimension { return m.dim }

// ChildDimension returns the dimension required of the child.
func (m modifier) ChildDimension() scad.Dimension { return m.child }

// primitive is the untyped body produced by the registry.
type primitive struct {
	body scad.Body
	dim  scad.Dimension
}

// Body returns the name and parameters.
func (p primitive) Body() scad.Body { return p.body }

// Dimension returns the primitive's tag.
func (p primitive) Dimension() scad.Dimension { return p.dim }

// base holds what every typed builder shares.
type base[T any] struct {
	entry *Entry
	b     *scad.Builder
	wrap  func(scad.Body) T
}

func newBase[T any](e *Entry, wrap func(scad.Body) T) base[T] {
	return base[T]{entry: e, b: e.NewBuilder(), wrap: wrap}
}

// Build finalizes the builder. It can be called once.
func (x *base[T]) Build() (T, error) {
	body, err := x.entry.Finish(x.b)
	if err != nil {
		var zero T
		return zero, err
	}
	return x.wrap(body), nil
}

// MustBuild is like Build but panics on error.
func (x *base[T]) MustBuild() T {
	v, err := x.Build()
	if err != nil {
		panic(err)
	}
	return v
}

func wrap2D(b scad.Body) Primitive2D   { return Primitive2D{body: b} }
func wrap3D(b scad.Body) Primitive3D   { return Primitive3D{body: b} }
func wrapMod2D(b scad.Body) Modifier2D { return Modifier2D{body: b} }
func wrapMod3D(b scad.Body) Modifier3D { return Modifier3D{body: b} }
