package model

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/scad"
	"github.com/matzehuels/scadgen/pkg/shape"
	"github.com/matzehuels/scadgen/pkg/value"
)

const kindBlock = "block"

// planarImports are file types import() reads as 2D geometry.
var planarImports = map[string]bool{".dxf": true, ".svg": true}

// build turns obj into a node. hint is the dimension the parent expects,
// or zero when it accepts anything.
func build(obj object, hint scad.Dimension, path string, depth int) (*scad.Node, error) {
	if depth >= MaxDepth {
		return nil, &PathError{Path: path, Err: errors.New(errors.ErrCodeInvalidModel, "nesting deeper than %d", MaxDepth)}
	}
	n, err := buildNode(obj, hint, path, depth)
	if err != nil {
		return nil, err
	}
	return n.WithComment(obj.Comment), nil
}

func buildNode(obj object, hint scad.Dimension, path string, depth int) (*scad.Node, error) {
	fail := func(err error) (*scad.Node, error) {
		return nil, &PathError{Path: path, Err: err}
	}

	if obj.Kind == "" {
		return fail(errors.New(errors.ErrCodeInvalidModel, "missing kind"))
	}
	dim, err := parseDim(obj.Dim)
	if err != nil {
		return fail(err)
	}

	if obj.Kind == kindBlock {
		if len(obj.Params) > 0 {
			return fail(errors.New(errors.ErrCodeInvalidModel, "block takes no params"))
		}
		if dim != 0 {
			hint = dim
		}
		children, err := buildChildren(obj.Children, hint, path, depth)
		if err != nil {
			return nil, err
		}
		n, err := scad.TryBlock(children...)
		if err != nil {
			return fail(err)
		}
		return n, nil
	}

	// Children are built first when the variant depends on them.
	var children []*scad.Node
	childrenBuilt := false

	entry, err := resolve(obj, dim, hint)
	if err != nil && len(obj.Children) > 0 && errors.Is(err, errors.ErrCodeInvalidModel) {
		children, err = buildChildren(obj.Children, 0, path, depth)
		if err != nil {
			return nil, err
		}
		childrenBuilt = true
		entry, err = resolve(obj, childDim(children), hint)
	}
	if err != nil {
		return fail(err)
	}

	body, err := entry.Finish(setParams(entry.NewBuilder(), obj.Params))
	if err != nil {
		return fail(err)
	}

	if entry.Kind == shape.KindPrimitive {
		if len(obj.Children) > 0 {
			return fail(errors.New(errors.ErrCodeInvalidModel, "%s takes no children", entry.Name()))
		}
		return scad.NewPrimitive(entry.Primitive(body)), nil
	}

	if !childrenBuilt {
		childHint := entry.Child
		if childHint == scad.Mixed {
			childHint = hint
		}
		children, err = buildChildren(obj.Children, childHint, path, depth)
		if err != nil {
			return nil, err
		}
	}
	n, err := scad.TryCompose(entry.Modifier(body), children...)
	if err != nil {
		return fail(err)
	}
	return n, nil
}

// resolve picks the catalog variant for obj. An explicit dim wins, then the
// parent's hint for names with several variants, then the file type for
// import.
func resolve(obj object, dim, hint scad.Dimension) (*shape.Entry, error) {
	if dim == scad.Mixed {
		dim = 0
	}
	if dim != 0 {
		return shape.Lookup(obj.Kind, dim)
	}
	variants := shape.Variants(obj.Kind)
	if len(variants) <= 1 {
		return shape.Lookup(obj.Kind, 0)
	}
	if hint == scad.TwoD || hint == scad.ThreeD {
		if e, err := shape.Lookup(obj.Kind, hint); err == nil {
			return e, nil
		}
	}
	if file, ok := obj.Params["file"].(string); ok {
		if planarImports[strings.ToLower(filepath.Ext(file))] {
			return shape.Lookup(obj.Kind, scad.TwoD)
		}
		return shape.Lookup(obj.Kind, scad.ThreeD)
	}
	return shape.Lookup(obj.Kind, 0)
}

func buildChildren(objs []object, hint scad.Dimension, path string, depth int) ([]*scad.Node, error) {
	children := make([]*scad.Node, 0, len(objs))
	for i, c := range objs {
		n, err := build(c, hint, fmt.Sprintf("%s.children[%d]", path, i), depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return children, nil
}

// childDim joins the children's dimensions, or returns zero when they
// conflict so that lookup reports the ambiguity.
func childDim(children []*scad.Node) scad.Dimension {
	dim := scad.Mixed
	for _, c := range children {
		joined, ok := scad.Join(dim, c.Dimension())
		if !ok {
			return 0
		}
		dim = joined
	}
	return dim
}

// setParams stages params in key order so the first bad key is reported
// deterministically.
func setParams(b *scad.Builder, params map[string]any) *scad.Builder {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, err := value.FromAny(params[k])
		if err != nil {
			b.Fail(errors.Wrap(errors.ErrCodeInvalidValue, err, "param %s", k))
			continue
		}
		b.Set(k, v)
	}
	return b
}

func parseDim(s string) (scad.Dimension, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case "2d":
		return scad.TwoD, nil
	case "3d":
		return scad.ThreeD, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidModel, "dim must be \"2d\" or \"3d\", got %q", s)
}
