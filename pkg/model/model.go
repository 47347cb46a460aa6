// Package model loads OpenSCAD object trees from TOML model files.
//
// A model file lists top-level objects. Each object names a catalog
// statement with kind, passes its arguments in params, and nests children:
//
//	header = ["mounting bracket"]
//
//	[globals]
//	fn = 64
//
//	[[object]]
//	kind = "difference"
//	comment = "plate with a hole"
//
//	  [[object.children]]
//	  kind = "cube"
//	  params = { size = [40, 20, 4] }
//
//	  [[object.children]]
//	  kind = "cylinder"
//	  params = { h = 10, d = 5, center = true }
//
// Statements that exist in two dimensions, such as translate or union, take
// their dimension from dim ("2d" or "3d"), from the parent, or from their
// children, in that order. A modifier with several children groups them in
// a block; kind = "block" writes a block explicitly.
//
// Errors name the offending object, e.g. "object[1].children[0]".
package model

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/scad"
	"github.com/matzehuels/scadgen/pkg/value"
)

// MaxDepth bounds object nesting.
const MaxDepth = 256

// Model is a decoded model file.
type Model struct {
	// Document holds the header, globals and objects, ready to render.
	Document *scad.Document
	// Objects are the top-level trees in file order.
	Objects []*scad.Node
}

// String renders the model as an OpenSCAD source file.
func (m *Model) String() string { return m.Document.String() }

// file mirrors the TOML layout.
type file struct {
	Header  []string       `toml:"header"`
	Globals map[string]any `toml:"globals"`
	Objects []object       `toml:"object"`
}

type object struct {
	Kind     string         `toml:"kind"`
	Dim      string         `toml:"dim"`
	Comment  string         `toml:"comment"`
	Params   map[string]any `toml:"params"`
	Children []object       `toml:"children"`
}

// Load reads and parses the model file at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "model %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	return Parse(data)
}

// Parse decodes a model and builds its trees.
func Parse(data []byte) (*Model, error) {
	var f file
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode model")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidModel, "unknown keys: %s", strings.Join(keys, ", "))
	}

	doc := scad.NewDocument().Header(f.Header...)
	if err := setGlobals(doc, f.Globals); err != nil {
		return nil, err
	}

	m := &Model{Document: doc}
	for i, obj := range f.Objects {
		n, err := build(obj, 0, fmt.Sprintf("object[%d]", i), 0)
		if err != nil {
			return nil, err
		}
		m.Objects = append(m.Objects, n)
	}
	doc.Add(m.Objects...)
	return m, nil
}

// setGlobals writes globals in name order. fn, fa and fs are shorthand for
// the special variables $fn, $fa and $fs.
func setGlobals(doc *scad.Document, globals map[string]any) error {
	names := make(map[string]string, len(globals))
	ordered := make([]string, 0, len(globals))
	for key := range globals {
		name := key
		switch key {
		case "fn", "fa", "fs":
			name = "$" + key
		}
		names[name] = key
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	for _, name := range ordered {
		v, err := value.FromAny(globals[names[name]])
		if err != nil {
			return &PathError{Path: "globals." + names[name], Err: err}
		}
		if err := doc.Set(name, v); err != nil {
			return &PathError{Path: "globals." + names[name], Err: err}
		}
	}
	return nil
}
