package scad

import (
	"strings"

	"github.com/matzehuels/scadgen/pkg/value"
)

// Param is one argument of a call. An empty Name makes it positional.
type Param struct {
	Name  string
	Value value.Value
}

// String renders the argument as "name = literal" or "literal".
func (p Param) String() string {
	if p.Name == "" {
		return p.Value.Literal()
	}
	return p.Name + " = " + p.Value.Literal()
}

// Body is the name and present parameters of a primitive or modifier, in
// declaration order.
type Body struct {
	Name   string
	Params []Param
}

// Header renders the call without terminator, e.g. "cube(size = 15)".
func (b Body) Header() string {
	var sb strings.Builder
	sb.WriteString(b.Name)
	sb.WriteByte('(')
	for i, p := range b.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Param returns the value passed under name, if present.
func (b Body) Param(name string) (value.Value, bool) {
	for _, p := range b.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// clone copies the params and their values, so a built statement shares no
// slices with the caller.
func (b Body) clone() Body {
	params := make([]Param, len(b.Params))
	for i, p := range b.Params {
		params[i] = Param{Name: p.Name, Value: value.Clone(p.Value)}
	}
	return Body{Name: b.Name, Params: params}
}
