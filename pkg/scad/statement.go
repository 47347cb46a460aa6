package scad

// Statement is the payload of a [Node]. The set of implementations is closed:
// [*Primitive], [*Modifier] and [*Block].
type Statement interface {
	// Dimension returns the tag the statement produces.
	Dimension() Dimension
	statement()
}

// PrimitiveBody is a finalized leaf statement from the shape catalog.
type PrimitiveBody interface {
	Body() Body
	Dimension() Dimension
}

// ModifierBody is a finalized modifier from the shape catalog.
type ModifierBody interface {
	Body() Body
	// Dimension is the tag of the modified result. It is ignored for Mixed
	// modifiers, which take the tag of their child.
	Dimension() Dimension
	// ChildDimension is the tag required of the child.
	ChildDimension() Dimension
}

// Primitive is a leaf such as square(size = 10).
type Primitive struct {
	body Body
	dim  Dimension
}

func (*Primitive) statement() {}

// Dimension returns the primitive's fixed tag.
func (p *Primitive) Dimension() Dimension { return p.dim }

// Name returns the OpenSCAD module name.
func (p *Primitive) Name() string { return p.body.Name }

// Params returns the present parameters in declaration order.
func (p *Primitive) Params() []Param { return p.body.clone().Params }

// Header renders the call without terminator.
func (p *Primitive) Header() string { return p.body.Header() }

// Modifier applies a named operation to exactly one child.
type Modifier struct {
	body    Body
	dim     Dimension
	require Dimension
	child   *Node
}

func (*Modifier) statement() {}

// Dimension returns the tag of the modified result.
func (m *Modifier) Dimension() Dimension { return m.dim }

// RequiredDimension returns the tag the modifier requires of its child.
func (m *Modifier) RequiredDimension() Dimension { return m.require }

// Name returns the OpenSCAD module name.
func (m *Modifier) Name() string { return m.body.Name }

// Params returns the present parameters in declaration order.
func (m *Modifier) Params() []Param { return m.body.clone().Params }

// Header renders the call without body.
func (m *Modifier) Header() string { return m.body.Header() }

// Child returns the modified node.
func (m *Modifier) Child() *Node { return m.child }

// Block is an unnamed group rendered with braces.
type Block struct {
	children []*Node
	dim      Dimension
}

func (*Block) statement() {}

// Dimension returns the join of the children's tags, or Mixed when empty.
func (b *Block) Dimension() Dimension { return b.dim }

// Children returns the grouped nodes in order.
func (b *Block) Children() []*Node { return append([]*Node(nil), b.children...) }

// Len returns the number of children.
func (b *Block) Len() int { return len(b.children) }
