package scad

// Boolean operation names.
const (
	OpUnion        = "union"
	OpDifference   = "difference"
	OpIntersection = "intersection"
)

// booleanOp is a parameterless modifier used by the operator sugar.
type booleanOp struct {
	name string
	dim  Dimension
}

func (o booleanOp) Body() Body                { return Body{Name: o.name} }
func (o booleanOp) Dimension() Dimension      { return o.dim }
func (o booleanOp) ChildDimension() Dimension { return o.dim }

// Union merges a, b and more. Operands that are themselves uncommented
// unions are spliced in, so a.Union(b).Union(c) renders a single union().
func Union[S Space](a, b Object[S], more ...Object[S]) Object[S] {
	return combine(OpUnion, true, append([]Object[S]{a, b}, more...))
}

// Difference subtracts b and more from a. Only a is spliced when it is an
// uncommented difference, since difference is not associative on the right.
func Difference[S Space](a, b Object[S], more ...Object[S]) Object[S] {
	return combine(OpDifference, false, append([]Object[S]{a, b}, more...))
}

// Intersection keeps what a, b and more share. Nested uncommented
// intersections are spliced like unions.
func Intersection[S Space](a, b Object[S], more ...Object[S]) Object[S] {
	return combine(OpIntersection, true, append([]Object[S]{a, b}, more...))
}

// Union is the method form of [Union].
func (o Object[S]) Union(b Object[S], more ...Object[S]) Object[S] {
	return Union(o, b, more...)
}

// Difference is the method form of [Difference].
func (o Object[S]) Difference(b Object[S], more ...Object[S]) Object[S] {
	return Difference(o, b, more...)
}

// Intersection is the method form of [Intersection].
func (o Object[S]) Intersection(b Object[S], more ...Object[S]) Object[S] {
	return Intersection(o, b, more...)
}

func combine[S Space](op string, spliceAll bool, operands []Object[S]) Object[S] {
	var children []*Node
	for i, o := range operands {
		if i == 0 || spliceAll {
			if inner, ok := spliceable(o.node, op); ok {
				children = append(children, inner...)
				continue
			}
		}
		children = append(children, o.node)
	}

	body := booleanOp{name: op, dim: SpaceOf[S]()}
	return MustLift[S](Modify(body, NewBlock(children...)))
}

// spliceable returns the grouped children of n when n is an uncommented op()
// over an uncommented block.
func spliceable(n *Node, op string) ([]*Node, bool) {
	if n == nil || n.comment != "" {
		return nil, false
	}
	m, ok := n.stmt.(*Modifier)
	if !ok || m.body.Name != op || len(m.body.Params) > 0 {
		return nil, false
	}
	block, ok := m.child.stmt.(*Block)
	if !ok || m.child.comment != "" {
		return nil, false
	}
	return block.children, true
}
