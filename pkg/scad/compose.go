package scad

import (
	"github.com/matzehuels/scadgen/pkg/errors"
)

// NewPrimitive wraps a finalized primitive in a node.
func NewPrimitive(b PrimitiveBody) *Node {
	return &Node{stmt: &Primitive{body: b.Body().clone(), dim: b.Dimension()}}
}

// TryModify applies b to child, checking that the child's dimension is
// compatible with b.ChildDimension().
func TryModify(b ModifierBody, child *Node) (*Node, error) {
	body := b.Body()
	if child.empty() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s: child 0 is empty", body.Name)
	}

	require := b.ChildDimension()
	actual := child.Dimension()
	if !actual.Compatible(require) {
		return nil, &DimensionMismatchError{Statement: body.Name, Expected: require, Actual: actual, Index: 0}
	}

	dim := b.Dimension()
	if require == Mixed {
		dim = actual
	}
	return &Node{stmt: &Modifier{body: body.clone(), dim: dim, require: require, child: child}}, nil
}

// Modify is like [TryModify] but panics with the error on failure.
func Modify(b ModifierBody, child *Node) *Node {
	return must(TryModify(b, child))
}

// TryBlock groups children. All children must share one concrete dimension;
// Mixed children fit anywhere. The block's tag is that dimension, or Mixed
// when there are no concrete children.
func TryBlock(children ...*Node) (*Node, error) {
	dim := Mixed
	for i, c := range children {
		if c.empty() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "block: child %d is empty", i)
		}
		joined, ok := Join(dim, c.Dimension())
		if !ok {
			return nil, &DimensionMismatchError{Statement: "block", Expected: dim, Actual: c.Dimension(), Index: i}
		}
		dim = joined
	}
	return &Node{stmt: &Block{children: append([]*Node(nil), children...), dim: dim}}, nil
}

// NewBlock is like [TryBlock] but panics with the error on failure.
func NewBlock(children ...*Node) *Node {
	return must(TryBlock(children...))
}

// TryCompose applies b to children. A single child is attached directly;
// zero or several children are grouped in a block first. Mismatch errors
// report the index within children.
func TryCompose(b ModifierBody, children ...*Node) (*Node, error) {
	if len(children) == 1 {
		return TryModify(b, children[0])
	}

	require := b.ChildDimension()
	name := b.Body().Name
	for i, c := range children {
		if c.empty() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s: child %d is empty", name, i)
		}
		if !c.Dimension().Compatible(require) {
			return nil, &DimensionMismatchError{Statement: name, Expected: require, Actual: c.Dimension(), Index: i}
		}
	}

	block, err := TryBlock(children...)
	if err != nil {
		return nil, err
	}
	return TryModify(b, block)
}

// Compose is like [TryCompose] but panics with the error on failure.
func Compose(b ModifierBody, children ...*Node) *Node {
	return must(TryCompose(b, children...))
}

func must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}
