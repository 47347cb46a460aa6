package shape

import (
	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/scad"
	"github.com/matzehuels/scadgen/pkg/value"
)

func param(name string) scad.ParamSpec { return scad.ParamSpec{Name: name} }

func required(name string) scad.ParamSpec { return scad.ParamSpec{Name: name, Required: true} }

// positional writes the value without a name, as in translate([1, 2]).
func positional(name string, req bool) scad.ParamSpec {
	return scad.ParamSpec{Name: name, Keys: []string{""}, Required: req}
}

// either is a field written under one of several names, e.g. r or d.
func either(name string, req bool, keys ...string) scad.ParamSpec {
	return scad.ParamSpec{Name: name, Keys: keys, Required: req}
}

var fragments = []scad.ParamSpec{param("$fa"), param("$fn"), param("$fs")}

func with(specs []scad.ParamSpec, more ...scad.ParamSpec) []scad.ParamSpec {
	out := make([]scad.ParamSpec, 0, len(specs)+len(more))
	out = append(out, specs...)
	return append(out, more...)
}

// checkIndices fails b when an index list refers past the point list.
func checkIndices(stmt, pointsField, indexField string) func(*scad.Builder) {
	return func(b *scad.Builder) {
		pts, ok := b.Get(pointsField)
		if !ok {
			return
		}
		idx, ok := b.Get(indexField)
		if !ok {
			return
		}
		n, ok := listLen(pts)
		if !ok {
			return
		}
		groups, ok := idx.(value.List)
		if !ok {
			return
		}
		for gi, g := range groups {
			for _, i := range indexValues(g) {
				if i < 0 || i >= n {
					b.Fail(errors.New(errors.ErrCodeInvalidValue,
						"%s: %s[%d] refers to point %d of %d", stmt, indexField, gi, i, n))
					return
				}
			}
		}
	}
}

func listLen(v value.Value) (int, bool) {
	switch l := v.(type) {
	case value.List:
		return len(l), true
	case value.Vec:
		return len(l), true
	}
	return 0, false
}

func indexValues(v value.Value) []int {
	var out []int
	switch g := v.(type) {
	case value.Vec:
		for _, f := range g {
			out = append(out, int(f))
		}
	case value.List:
		for _, e := range g {
			switch x := e.(type) {
			case value.Int:
				out = append(out, int(x))
			case value.Number:
				out = append(out, int(x))
			}
		}
	case value.Int:
		out = append(out, int(g))
	case value.Number:
		out = append(out, int(g))
	}
	return out
}
