package scad

// Node is the renderable unit: one statement and an optional comment.
//
// Nodes are immutable once constructed. Reusing a node as the child of
// several parents is therefore safe; it renders once under each.
type Node struct {
	stmt    Statement
	comment string
}

// empty reports whether n is nil or a zero Node holding no statement.
func (n *Node) empty() bool { return n == nil || n.stmt == nil }

// Statement returns the wrapped statement.
func (n *Node) Statement() Statement { return n.stmt }

// Dimension returns the statement's tag.
func (n *Node) Dimension() Dimension { return n.stmt.Dimension() }

// Comment returns the attached comment, or "" when there is none.
func (n *Node) Comment() string { return n.comment }

// WithComment returns a copy of n carrying comment. An empty comment removes
// it.
func (n *Node) WithComment(comment string) *Node {
	cp := *n
	cp.comment = comment
	return &cp
}

// Children returns the nodes directly below n: none for a primitive, one for a
// modifier, and the grouped nodes for a block.
func (n *Node) Children() []*Node {
	switch s := n.stmt.(type) {
	case *Modifier:
		return []*Node{s.child}
	case *Block:
		return s.Children()
	}
	return nil
}

// String renders the node at indent level 0.
func (n *Node) String() string { return Render(n) }

// Walk visits n and its descendants depth first. Returning false from fn skips
// the node's children.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, depth+1, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	count := 0
	Walk(n, func(*Node, int) bool {
		count++
		return true
	})
	return count
}
