package scad

import (
	"io"
	"strings"

	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/value"
)

// Document is a complete source file: header comment lines, global
// assignments such as $fn = 64, and top-level statements separated by blank
// lines.
type Document struct {
	header  []string
	globals []Param
	nodes   []*Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Header appends "//" comment lines written at the top of the file.
func (d *Document) Header(lines ...string) *Document {
	d.header = append(d.header, lines...)
	return d
}

// Set adds the assignment "name = v;". Setting a name twice replaces the
// earlier value in place.
func (d *Document) Set(name string, v value.Value) error {
	if err := errors.ValidateIdentifier(name); err != nil {
		return err
	}
	if v == nil {
		return errors.New(errors.ErrCodeInvalidValue, "%s: missing value", name)
	}
	for i := range d.globals {
		if d.globals[i].Name == name {
			d.globals[i].Value = v
			return nil
		}
	}
	d.globals = append(d.globals, Param{Name: name, Value: v})
	return nil
}

// Add appends top-level statements. Nil nodes are skipped.
func (d *Document) Add(nodes ...*Node) *Document {
	for _, n := range nodes {
		if n != nil {
			d.nodes = append(d.nodes, n)
		}
	}
	return d
}

// Nodes returns the top-level statements.
func (d *Document) Nodes() []*Node {
	return append([]*Node(nil), d.nodes...)
}

// String renders the whole document, ending with a newline.
func (d *Document) String() string {
	var sections []string

	if len(d.header) > 0 {
		lines := make([]string, len(d.header))
		for i, h := range d.header {
			lines[i] = strings.TrimRight("// "+h, " ")
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(d.globals) > 0 {
		lines := make([]string, len(d.globals))
		for i, g := range d.globals {
			lines[i] = g.String() + ";"
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	for _, n := range d.nodes {
		sections = append(sections, Render(n))
	}

	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// WriteTo writes the rendered document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
