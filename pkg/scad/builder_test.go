package scad

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/value"
)

var cylinderSig = &Signature{
	Name: "cylinder",
	Params: []ParamSpec{
		{Name: "h", Required: true},
		{Name: "size", Keys: []string{"r", "d"}, Required: true},
		{Name: "center"},
	},
}

func TestBuilderOrder(t *testing.T) {
	body, err := NewBuilder(cylinderSig).
		Set("center", value.Bool(true)).
		Set("d", value.Number(4)).
		Set("h", value.Number(2)).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := body.Header(), "cylinder(h = 2, d = 4, center = true)"; got != want {
		t.Errorf("Header() = %q, want %q", got, want)
	}
}

func TestBuilderKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"alternative key", "r", "cylinder(h = 1, r = 3)"},
		{"field name uses first key", "size", "cylinder(h = 1, r = 3)"},
		{"second key", "d", "cylinder(h = 1, d = 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := NewBuilder(cylinderSig).Set("h", value.Int(1)).Set(tt.key, value.Number(3)).Build()
			if err != nil {
				t.Fatal(err)
			}
			if got := body.Header(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilderLastWriteWins(t *testing.T) {
	body, err := NewBuilder(cylinderSig).
		Set("h", value.Int(1)).
		Set("r", value.Number(1)).
		Set("d", value.Number(2)).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := body.Header(), "cylinder(h = 1, d = 2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuilderPositional(t *testing.T) {
	sig := &Signature{Name: "translate", Params: []ParamSpec{{Name: "v", Keys: []string{""}, Required: true}}}
	body, err := NewBuilder(sig).Set("v", value.Vec2(5, 5)).Build()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := body.Header(), "translate([5, 5])"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuilderMissing(t *testing.T) {
	tests := []struct {
		name  string
		b     *Builder
		field string
	}{
		{"nothing set", NewBuilder(cylinderSig), "h"},
		{"size missing", NewBuilder(cylinderSig).Set("h", value.Int(1)), "size"},
		{"cleared", NewBuilder(cylinderSig).Set("h", value.Int(1)).Set("r", value.Int(1)).Set("size", nil), "size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.Build()
			var mp *MissingParameterError
			if !stderrors.As(err, &mp) {
				t.Fatalf("err = %v, want *MissingParameterError", err)
			}
			if mp.Statement != "cylinder" || mp.Field != tt.field {
				t.Errorf("got (%s, %s), want (cylinder, %s)", mp.Statement, mp.Field, tt.field)
			}
			if !errors.Is(err, errors.ErrCodeMissingParameter) {
				t.Error("error does not carry MISSING_REQUIRED_PARAMETER")
			}
		})
	}
}

func TestBuilderStickyError(t *testing.T) {
	b := NewBuilder(cylinderSig).Set("radius", value.Int(1)).Set("h", value.Int(1)).Set("r", value.Int(1))
	_, err := b.Build()
	if !errors.Is(err, errors.ErrCodeInvalidParameter) {
		t.Errorf("err = %v, want INVALID_PARAMETER", err)
	}

	first := errors.New(errors.ErrCodeInvalidValue, "first")
	b = NewBuilder(cylinderSig).Fail(first).Fail(errors.New(errors.ErrCodeInternal, "second"))
	if _, err := b.Build(); err != first {
		t.Errorf("err = %v, want first failure", err)
	}
}

func TestBuilderAlreadyBuilt(t *testing.T) {
	b := NewBuilder(cylinderSig).Set("h", value.Int(1)).Set("r", value.Int(1))
	if _, err := b.Build(); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(); !errors.Is(err, errors.ErrCodeAlreadyBuilt) {
		t.Errorf("err = %v, want ALREADY_BUILT", err)
	}
}

func TestBuilderGet(t *testing.T) {
	b := NewBuilder(cylinderSig).Set("d", value.Number(2))
	v, ok := b.Get("size")
	if !ok || v.Literal() != "2" {
		t.Errorf("Get(size) = %v, %v", v, ok)
	}
	if _, ok := b.Get("h"); ok {
		t.Error("Get(h) reported an unset field")
	}
}

func TestBuilderCopiesValues(t *testing.T) {
	size := value.Vec3(1, 2, 3)
	b := NewBuilder(cylinderSig).Set("h", value.Number(1)).Set("d", size)
	size[0] = 9

	body, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	n := NewPrimitive(prim{"cylinder", ThreeD, body.Params})
	before := Render(n)
	body.Params[1].Value.(value.Vec)[1] = 9

	if want := "cylinder(h = 1, d = [1, 2, 3]);"; before != want {
		t.Errorf("staged value changed before Build: %q", before)
	}
	if after := Render(n); after != before {
		t.Errorf("node changed after construction:\nbefore %q\nafter  %q", before, after)
	}
}

func TestNodeParamsAreCopies(t *testing.T) {
	n := Modify(translate2D(5, 5), square(10))
	m := n.Statement().(*Modifier)
	m.Params()[0].Value.(value.Vec)[0] = 99

	if got, want := Render(n), "translate([5, 5])\n  square(size = 10);"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
