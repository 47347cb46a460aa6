package value

import (
	"math"
	"testing"

	"github.com/matzehuels/scadgen/pkg/errors"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.0, "1"},
		{1.2, "1.2"},
		{1.23456789, "1.23456789"},
		{1.234567891, "1.23456789"},
		{1.234567899, "1.2345679"},
		{1.23000000, "1.23"},
		{1.000000001, "1"},
		{1.999999999, "2"},
		{-1.0, "-1"},
		{-1.2, "-1.2"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{0.000000001, "0"},
		{-0.000000001, "0"},
		{123, "123"},
		{1e20, "100000000000000000000"},
		{0.5, "0.5"},
		{math.NaN(), "0/0"},
		{math.Inf(1), "1/0"},
		{math.Inf(-1), "-1/0"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"number", Number(10), "10"},
		{"fraction", Number(0.25), "0.25"},
		{"int", Int(64), "64"},
		{"negative int", Int(-3), "-3"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"string", String("Liberation Sans"), `"Liberation Sans"`},
		{"string quotes", String(`say "hi"`), `"say \"hi\""`},
		{"string backslash", String(`C:\parts`), `"C:\\parts"`},
		{"string newline", String("a\nb"), `"a\nb"`},
		{"ident", Ident("$t"), "$t"},
		{"vec2", Vec2(5, 5), "[5, 5]"},
		{"vec3", Vec3(1, -2.5, 0), "[1, -2.5, 0]"},
		{"vec4", Vec4(0, 0, 0, 1), "[0, 0, 0, 1]"},
		{"empty list", List{}, "[]"},
		{"points", Points(Vec2(0, 0), Vec2(10, 0), Vec2(0, 10)), "[[0, 0], [10, 0], [0, 10]]"},
		{"indices", Indices([]int{0, 1, 2}, []int{2, 3}), "[[0, 1, 2], [2, 3]]"},
		{"mixed list", List{Int(1), String("a"), Bool(false)}, `[1, "a", false]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Literal(); got != tt.want {
				t.Errorf("Literal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		name  string
		in    Color
		want  string
		named bool
	}{
		{"rgb", RGB(0.3, 0.5, 0.2), "[0.3, 0.5, 0.2]", false},
		{"rgba", RGBA(0.3, 0.5, 0.2, 1), "[0.3, 0.5, 0.2, 1]", false},
		{"named", Named("#C0FFEE"), `"#C0FFEE"`, true},
		{"svg name", Named("red"), `"red"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Literal(); got != tt.want {
				t.Errorf("Literal() = %q, want %q", got, tt.want)
			}
			if got := tt.in.IsNamed(); got != tt.named {
				t.Errorf("IsNamed() = %v, want %v", got, tt.named)
			}
		})
	}
}

func TestAngle(t *testing.T) {
	if got := Deg(90).Literal(); got != "90" {
		t.Errorf("Deg(90) = %q, want 90", got)
	}
	if got := Rad(math.Pi / 2).Literal(); got != "90" {
		t.Errorf("Rad(pi/2) = %q, want 90", got)
	}
	if got := Rad(math.Pi).Degrees(); math.Abs(got-180) > 1e-9 {
		t.Errorf("Rad(pi).Degrees() = %v, want 180", got)
	}
	if got := EulerDeg(0, 45, 90).Literal(); got != "[0, 45, 90]" {
		t.Errorf("EulerDeg = %q, want [0, 45, 90]", got)
	}
}

func TestMatrix(t *testing.T) {
	m := Affine2D([2][3]float64{
		{1, 0, 5},
		{0, 1, 7},
	})
	want := "[[1, 0, 0, 5], [0, 1, 0, 7], [0, 0, 1, 0]]"
	if got := m.Literal(); got != want {
		t.Errorf("Affine2D = %q, want %q", got, want)
	}

	if got := Identity3D().Literal(); got != "[[1, 0, 0, 0], [0, 1, 0, 0], [0, 0, 1, 0]]" {
		t.Errorf("Identity3D = %q", got)
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int64", int64(10), "10"},
		{"float", 2.5, "2.5"},
		{"bool", true, "true"},
		{"string", "red", `"red"`},
		{"numeric array", []any{int64(5), 2.5}, "[5, 2.5]"},
		{"nested array", []any{[]any{int64(0), int64(0)}, []any{int64(1), int64(0)}}, "[[0, 0], [1, 0]]"},
		{"empty array", []any{}, "[]"},
		{"value passthrough", Vec2(1, 2), "[1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromAny(tt.in)
			if err != nil {
				t.Fatalf("FromAny() error = %v", err)
			}
			if got := v.Literal(); got != tt.want {
				t.Errorf("FromAny().Literal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromAnyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"map", map[string]any{"x": 1}},
		{"map in array", []any{int64(1), map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromAny(tt.in)
			if err == nil {
				t.Fatal("FromAny() expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidValue) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidValue)
			}
		})
	}
}

func TestClone(t *testing.T) {
	vec := Vec2(1, 2)
	list := List{Vec2(0, 0), List{Int(1), Int(2)}}
	mat := Identity3D()

	tests := []struct {
		name   string
		v      Value
		mutate func()
	}{
		{"vec", vec, func() { vec[0] = 9 }},
		{"nested list", list, func() { list[0].(Vec)[1] = 9; list[1].(List)[0] = Int(9) }},
		{"matrix", mat, func() { mat[0][0] = 9 }},
		{"scalar", Number(1), func() {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Clone(tt.v)
			want := c.Literal()
			tt.mutate()
			if got := c.Literal(); got != want {
				t.Errorf("clone changed with source: got %q, want %q", got, want)
			}
		})
	}

	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestPointsCopies(t *testing.T) {
	p := Vec2(1, 0)
	pts := Points(p)
	p[0] = 42
	if got := pts.Literal(); got != "[[1, 0]]" {
		t.Errorf("Points = %q, want [[1, 0]]", got)
	}
}
