package scad

import (
	"github.com/matzehuels/scadgen/pkg/errors"
)

// Planar marks 2D objects.
type Planar struct{}

// Solid marks 3D objects.
type Solid struct{}

// Space is the type-level dimension of an [Object].
type Space interface {
	Planar | Solid
}

// SpaceOf returns the dimension tag matching S.
func SpaceOf[S Space]() Dimension {
	var s S
	if _, ok := any(s).(Planar); ok {
		return TwoD
	}
	return ThreeD
}

// Object is a node whose dimension is known to the compiler.
type Object[S Space] struct {
	node *Node
}

// Lift checks that n fits space S and wraps it. Mixed nodes fit either space.
func Lift[S Space](n *Node) (Object[S], error) {
	if n.empty() {
		return Object[S]{}, errors.New(errors.ErrCodeInvalidInput, "lift: empty node")
	}
	want := SpaceOf[S]()
	if !n.Dimension().Compatible(want) {
		return Object[S]{}, &DimensionMismatchError{Statement: "lift", Expected: want, Actual: n.Dimension()}
	}
	return Object[S]{node: n}, nil
}

// MustLift is like [Lift] but panics on failure.
func MustLift[S Space](n *Node) Object[S] {
	o, err := Lift[S](n)
	if err != nil {
		panic(err)
	}
	return o
}

// Leaf wraps a catalog primitive whose dimension is S.
func Leaf[S Space](b PrimitiveBody) Object[S] {
	return MustLift[S](NewPrimitive(b))
}

// TryApply wraps child in the modifier b. It fails with DIMENSION_MISMATCH
// when b does not accept In or does not produce a node that fits Out.
func TryApply[In, Out Space](b ModifierBody, child Object[In]) (Object[Out], error) {
	n, err := TryModify(b, child.Node())
	if err != nil {
		return Object[Out]{}, err
	}
	return Lift[Out](n)
}

// Apply is like [TryApply] but panics on failure. Catalog modifiers declare
// dimensions matching their In and Out, so it never panics for them.
func Apply[In, Out Space](b ModifierBody, child Object[In]) Object[Out] {
	o, err := TryApply[In, Out](b, child)
	if err != nil {
		panic(err)
	}
	return o
}

// Group returns a block of objects, which OpenSCAD treats as an implicit
// union.
func Group[S Space](objs ...Object[S]) Object[S] {
	return Object[S]{node: NewBlock(nodes(objs)...)}
}

// Node returns the underlying node.
func (o Object[S]) Node() *Node { return o.node }

// IsZero reports whether o holds no node.
func (o Object[S]) IsZero() bool { return o.node == nil }

// Dimension returns the node's tag.
func (o Object[S]) Dimension() Dimension {
	if o.node == nil {
		return SpaceOf[S]()
	}
	return o.node.Dimension()
}

// WithComment returns a copy carrying comment.
func (o Object[S]) WithComment(comment string) Object[S] {
	return Object[S]{node: o.node.WithComment(comment)}
}

// String renders the object.
func (o Object[S]) String() string { return Render(o.node) }

func nodes[S Space](objs []Object[S]) []*Node {
	out := make([]*Node, len(objs))
	for i, o := range objs {
		out[i] = o.node
	}
	return out
}
