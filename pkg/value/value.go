package value

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Precision is the number of decimal places kept when formatting floats.
const Precision = 8

// Value is anything that has an OpenSCAD literal form.
type Value interface {
	Literal() string
}

// FormatFloat formats x with [Precision] decimal places, trimmed.
func FormatFloat(x float64) string {
	return formatFloat(x, Precision)
}

func formatFloat(x float64, places int) string {
	switch {
	case math.IsNaN(x):
		return "0/0"
	case math.IsInf(x, 1):
		return "1/0"
	case math.IsInf(x, -1):
		return "-1/0"
	}

	s := strconv.FormatFloat(x, 'f', places, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Number is a floating point literal.
type Number float64

// Literal formats n with [FormatFloat].
func (n Number) Literal() string { return FormatFloat(float64(n)) }

// Int is an integer literal, used for counts such as $fn and convexity.
type Int int64

// Literal formats i in base 10.
func (i Int) Literal() string { return strconv.FormatInt(int64(i), 10) }

// Bool is a boolean literal.
type Bool bool

// Literal returns "true" or "false".
func (b Bool) Literal() string {
	if b {
		return "true"
	}
	return "false"
}

// String is a double-quoted string literal.
type String string

// Literal quotes s, escaping quotes, backslashes and control characters.
func (s String) Literal() string { return quote(string(s)) }

// Ident is emitted verbatim, for references to variables such as $t.
type Ident string

// Literal returns the identifier unchanged.
func (i Ident) Literal() string { return string(i) }

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

// Vec is a fixed-length numeric vector such as a point, size or axis.
type Vec []float64

// Vec2 returns a two-element vector.
func Vec2(x, y float64) Vec { return Vec{x, y} }

// Vec3 returns a three-element vector.
func Vec3(x, y, z float64) Vec { return Vec{x, y, z} }

// Vec4 returns a four-element vector.
func Vec4(x, y, z, w float64) Vec { return Vec{x, y, z, w} }

// Len returns the number of components.
func (v Vec) Len() int { return len(v) }

// Literal returns the bracketed components, e.g. "[1, 2.5]".
func (v Vec) Literal() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = FormatFloat(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// List is a bracketed list of arbitrary values, e.g. polygon points or paths.
type List []Value

// Literal returns the bracketed literals of the elements.
func (l List) Literal() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.Literal()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Points returns a list of vectors. The vectors are copied.
func Points(pts ...Vec) List {
	l := make(List, len(pts))
	for i, p := range pts {
		l[i] = slices.Clone(p)
	}
	return l
}

// Indices returns a list of index lists, as used by polygon paths and
// polyhedron faces.
func Indices(groups ...[]int) List {
	l := make(List, len(groups))
	for i, g := range groups {
		inner := make(List, len(g))
		for j, idx := range g {
			inner[j] = Int(idx)
		}
		l[i] = inner
	}
	return l
}

// Clone returns a copy of v that shares no backing arrays with it. Scalar
// values are returned as is.
func Clone(v Value) Value {
	switch x := v.(type) {
	case Vec:
		return slices.Clone(x)
	case Matrix:
		return x.Clone()
	case List:
		out := make(List, len(x))
		for i, e := range x {
			out[i] = Clone(e)
		}
		return out
	}
	return v
}
