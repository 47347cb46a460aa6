package scad

import (
	"strings"
)

// indentUnit is written once per nesting level.
const indentUnit = "  "

// Render returns the source text of n at indent level 0, without a trailing
// newline. A nil node renders as the empty string.
func Render(n *Node) string {
	return RenderIndent(n, 0)
}

// RenderIndent returns the source text of n with every line indented by
// level steps.
func RenderIndent(n *Node, level int) string {
	if n == nil {
		return ""
	}
	p := printer{b: &strings.Builder{}, depth: max(level, 0)}
	p.node(n)
	return p.b.String()
}

type printer struct {
	b     *strings.Builder
	depth int
}

func (p *printer) write(s string) { p.b.WriteString(s) }
func (p *printer) nl()            { p.b.WriteByte('\n') }
func (p *printer) pad() {
	for i := 0; i < p.depth; i++ {
		p.b.WriteString(indentUnit)
	}
}
func (p *printer) line(s string)        { p.pad(); p.b.WriteString(s) }
func (p *printer) withIndent(fn func()) { p.depth++; fn(); p.depth-- }

func (p *printer) comment(text string) {
	if text == "" {
		return
	}
	p.line("/* " + text + " */")
	p.nl()
}

func (p *printer) node(n *Node) {
	p.comment(n.comment)
	switch s := n.stmt.(type) {
	case *Primitive:
		p.line(s.Header() + ";")
	case *Modifier:
		p.line(s.Header())
		p.modifierBody(s.child)
	case *Block:
		p.line("{")
		p.nl()
		p.withIndent(func() { p.children(s.children) })
		p.line("}")
	}
}

// modifierBody writes what follows a modifier header. A block child opens
// braces on the header line; anything else goes on the next line, one level
// deeper, with no braces.
func (p *printer) modifierBody(child *Node) {
	block, ok := child.stmt.(*Block)
	if !ok {
		p.nl()
		p.withIndent(func() { p.node(child) })
		return
	}

	p.write(" {")
	p.nl()
	p.withIndent(func() {
		p.comment(child.comment)
		p.children(block.children)
	})
	p.line("}")
}

func (p *printer) children(nodes []*Node) {
	for _, c := range nodes {
		p.node(c)
		p.nl()
	}
}
