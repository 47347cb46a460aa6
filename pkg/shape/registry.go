package shape

import (
	"slices"
	"sort"

	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/scad"
)

// Kind distinguishes leaf statements from statements with a child.
type Kind uint8

const (
	KindPrimitive Kind = iota + 1
	KindModifier
)

// String returns the kind name used in listings.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindModifier:
		return "modifier"
	default:
		return "unknown"
	}
}

// Entry describes one catalog statement type.
type Entry struct {
	Sig  *scad.Signature
	Kind Kind
	// Dim is the dimension of the finished statement.
	Dim scad.Dimension
	// Child is the dimension a modifier requires of its child.
	Child scad.Dimension

	// validate checks constraints spanning several fields before Build.
	validate func(*scad.Builder)
}

// Name returns the statement name, e.g. "square".
func (e *Entry) Name() string { return e.Sig.Name }

// NewBuilder returns an empty builder for the entry's signature.
func (e *Entry) NewBuilder() *scad.Builder { return scad.NewBuilder(e.Sig) }

// Finish runs the entry's cross-field checks and finalizes b.
func (e *Entry) Finish(b *scad.Builder) (scad.Body, error) {
	if e.validate != nil {
		e.validate(b)
	}
	return b.Build()
}

// Primitive wraps a finished body as a primitive of the entry's dimension.
func (e *Entry) Primitive(body scad.Body) scad.PrimitiveBody {
	return primitive{body: body, dim: e.Dim}
}

// Modifier wraps a finished body as a modifier with the entry's dimensions.
func (e *Entry) Modifier(body scad.Body) scad.ModifierBody {
	return modifier{body: body, dim: e.Dim, child: e.Child}
}

var registry = map[string][]*Entry{}

func register(e *Entry) *Entry {
	registry[e.Sig.Name] = append(registry[e.Sig.Name], e)
	return e
}

func primitiveEntry(dim scad.Dimension, name string, params ...scad.ParamSpec) *Entry {
	return register(&Entry{
		Sig:  &scad.Signature{Name: name, Params: params},
		Kind: KindPrimitive,
		Dim:  dim,
	})
}

func modifierEntry(dim, child scad.Dimension, name string, params ...scad.ParamSpec) *Entry {
	return register(&Entry{
		Sig:   &scad.Signature{Name: name, Params: params},
		Kind:  KindModifier,
		Dim:   dim,
		Child: child,
	})
}

func (e *Entry) check(fn func(*scad.Builder)) *Entry {
	e.validate = fn
	return e
}

// Lookup finds the variant of name with dimension dim. A zero dim matches
// when the name has a single variant. Names with a 2D and a 3D variant,
// such as translate, need an explicit dim.
func Lookup(name string, dim scad.Dimension) (*Entry, error) {
	variants := registry[name]
	if len(variants) == 0 {
		return nil, errors.New(errors.ErrCodeUnknownShape, "unknown statement %q", name)
	}
	if dim == 0 {
		if len(variants) == 1 {
			return variants[0], nil
		}
		return nil, errors.New(errors.ErrCodeInvalidModel,
			"%s exists in %d dimensions, set dim", name, len(variants))
	}
	for _, e := range variants {
		if e.Dim == dim {
			return e, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnknownShape, "no %s variant of %s", dim, name)
}

// Variants returns every registered entry for name.
func Variants(name string) []*Entry {
	return slices.Clone(registry[name])
}

// Names returns the sorted statement names in the catalog.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
