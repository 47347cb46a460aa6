package scad

import (
	"slices"

	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/value"
)

// ParamSpec declares one field of a statement's parameter list.
type ParamSpec struct {
	// Name identifies the field.
	Name string
	// Keys are the argument names the field may be written under, e.g. "r"
	// and "d" for a circle's size. An empty key writes the value positionally.
	// Defaults to []string{Name}.
	Keys []string
	// Required fields must be set before the builder is finalized.
	Required bool
}

func (s ParamSpec) keys() []string {
	if len(s.Keys) == 0 {
		return []string{s.Name}
	}
	return s.Keys
}

// Signature is the static name and ordered parameter list of a statement
// type, supplied by the shape catalog.
type Signature struct {
	Name   string
	Params []ParamSpec
}

// lookup resolves key to a field index and the key to write it under.
// An exact key match wins over a field name match.
func (s *Signature) lookup(key string) (int, string, bool) {
	for i, p := range s.Params {
		if slices.Contains(p.keys(), key) {
			return i, key, true
		}
	}
	for i, p := range s.Params {
		if p.Name == key {
			return i, p.keys()[0], true
		}
	}
	return 0, "", false
}

// Builder stages parameter values for one statement. It is finalized exactly
// once by [Builder.Build].
//
// Setter errors are sticky: the first one is returned by Build, which lets the
// typed catalog builders chain setters without checking each call.
type Builder struct {
	sig    *Signature
	params []*Param
	err    error
	built  bool
}

// NewBuilder returns an empty builder for sig.
func NewBuilder(sig *Signature) *Builder {
	return &Builder{
		sig:    sig,
		params: make([]*Param, len(sig.Params)),
	}
}

// Signature returns the signature the builder was created for.
func (b *Builder) Signature() *Signature { return b.sig }

// Set stores a copy of v under key, which may be a field name or one of its
// keys. A nil v clears the field. Setting a field twice keeps the last value.
func (b *Builder) Set(key string, v value.Value) *Builder {
	i, name, ok := b.sig.lookup(key)
	if !ok {
		b.fail(errors.New(errors.ErrCodeInvalidParameter, "%s: unknown parameter %q", b.sig.Name, key))
		return b
	}
	if v == nil {
		b.params[i] = nil
		return b
	}
	b.params[i] = &Param{Name: name, Value: value.Clone(v)}
	return b
}

// Fail records err so that Build returns it. Catalog builders use it for
// field validation that needs more than one value.
func (b *Builder) Fail(err error) *Builder {
	b.fail(err)
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Get returns the value currently staged for the named field.
func (b *Builder) Get(field string) (value.Value, bool) {
	for i, p := range b.sig.Params {
		if p.Name == field && b.params[i] != nil {
			return b.params[i].Value, true
		}
	}
	return nil, false
}

// Build finalizes the staged parameters into a [Body].
//
// It fails with ALREADY_BUILT when called twice, with the first setter error
// if any, and with a [*MissingParameterError] naming the first required field
// that was never set.
func (b *Builder) Build() (Body, error) {
	if b.built {
		return Body{}, errors.New(errors.ErrCodeAlreadyBuilt, "%s: builder already finalized", b.sig.Name)
	}
	b.built = true

	if b.err != nil {
		return Body{}, b.err
	}

	body := Body{Name: b.sig.Name}
	for i, ps := range b.sig.Params {
		p := b.params[i]
		if p == nil {
			if ps.Required {
				return Body{}, &MissingParameterError{Statement: b.sig.Name, Field: ps.Name}
			}
			continue
		}
		body.Params = append(body.Params, *p)
	}
	return body, nil
}
