package shape

import (
	"github.com/matzehuels/scadgen/pkg/scad"
	"github.com/matzehuels/scadgen/pkg/value"
)

var (
	circleEntry = primitiveEntry(scad.TwoD, "circle",
		with([]scad.ParamSpec{either("size", true, "r", "d")}, fragments...)...)

	squareEntry = primitiveEntry(scad.TwoD, "square",
		required("size"), param("center"))

	polygonEntry = primitiveEntry(scad.TwoD, "polygon",
		required("points"), param("paths"), param("convexity")).
		check(checkIndices("polygon", "points", "paths"))

	textEntry = primitiveEntry(scad.TwoD, "text",
		required("text"), param("size"), param("font"), param("halign"), param("valign"),
		param("spacing"), param("direction"), param("language"), param("script"), param("$fn"))

	import2DEntry = primitiveEntry(scad.TwoD, "import",
		with([]scad.ParamSpec{required("file"), param("convexity"), param("id"), param("layer")}, fragments...)...)
)

// CircleBuilder stages a circle().
type CircleBuilder struct{ base[Primitive2D] }

// NewCircle starts a circle. Either R or D is required.
func NewCircle() *CircleBuilder { return &CircleBuilder{newBase(circleEntry, wrap2D)} }

// R sets the radius.
func (c *CircleBuilder) R(r float64) *CircleBuilder { c.b.Set("r", value.Number(r)); return c }

// D sets the diameter.
func (c *CircleBuilder) D(d float64) *CircleBuilder { c.b.Set("d", value.Number(d)); return c }

// Fa sets the minimum fragment angle in degrees.
func (c *CircleBuilder) Fa(deg float64) *CircleBuilder { c.b.Set("$fa", value.Number(deg)); return c }

// Fn sets a fixed number of fragments.
func (c *CircleBuilder) Fn(n int) *CircleBuilder { c.b.Set("$fn", value.Int(n)); return c }

// Fs sets the minimum fragment length.
func (c *CircleBuilder) Fs(s float64) *CircleBuilder { c.b.Set("$fs", value.Number(s)); return c }

// SquareBuilder stages a square().
type SquareBuilder struct{ base[Primitive2D] }

// NewSquare starts a square. Size is required.
func NewSquare() *SquareBuilder { return &SquareBuilder{newBase(squareEntry, wrap2D)} }

// Size sets equal side lengths.
func (s *SquareBuilder) Size(size float64) *SquareBuilder {
	s.b.Set("size", value.Number(size))
	return s
}

// SizeXY sets the side lengths separately.
func (s *SquareBuilder) SizeXY(x, y float64) *SquareBuilder {
	s.b.Set("size", value.Vec2(x, y))
	return s
}

// Center places the square's center at the origin.
func (s *SquareBuilder) Center(center bool) *SquareBuilder {
	s.b.Set("center", value.Bool(center))
	return s
}

// PolygonBuilder stages a polygon().
type PolygonBuilder struct{ base[Primitive2D] }

// NewPolygon starts a polygon. Points is required.
func NewPolygon() *PolygonBuilder { return &PolygonBuilder{newBase(polygonEntry, wrap2D)} }

// Points sets the outline vertices.
func (p *PolygonBuilder) Points(pts ...value.Vec) *PolygonBuilder {
	p.b.Set("points", value.Points(pts...))
	return p
}

// Paths sets index lists into Points. The first path is the outline and
// later paths are holes. Build fails if an index is out of range.
func (p *PolygonBuilder) Paths(paths ...[]int) *PolygonBuilder {
	p.b.Set("paths", value.Indices(paths...))
	return p
}

// Convexity bounds the ray crossings used by the preview renderer.
func (p *PolygonBuilder) Convexity(n int) *PolygonBuilder {
	p.b.Set("convexity", value.Int(n))
	return p
}

// TextBuilder stages a text().
type TextBuilder struct{ base[Primitive2D] }

// NewText starts a text. Text is required.
func NewText() *TextBuilder { return &TextBuilder{newBase(textEntry, wrap2D)} }

// Text sets the string to draw.
func (t *TextBuilder) Text(s string) *TextBuilder { t.b.Set("text", value.String(s)); return t }

// Size sets the approximate ascent in units.
func (t *TextBuilder) Size(size float64) *TextBuilder { t.b.Set("size", value.Number(size)); return t }

// Font sets the font name and style, e.g. "Liberation Sans:style=Bold".
func (t *TextBuilder) Font(font string) *TextBuilder { t.b.Set("font", value.String(font)); return t }

// HAlign sets horizontal alignment: "left", "center" or "right".
func (t *TextBuilder) HAlign(a string) *TextBuilder { t.b.Set("halign", value.String(a)); return t }

// VAlign sets vertical alignment: "top", "center", "baseline" or "bottom".
func (t *TextBuilder) VAlign(a string) *TextBuilder { t.b.Set("valign", value.String(a)); return t }

// Spacing scales the distance between characters.
func (t *TextBuilder) Spacing(s float64) *TextBuilder { t.b.Set("spacing", value.Number(s)); return t }

// Direction sets the text direction: "ltr", "rtl", "ttb" or "btt".
func (t *TextBuilder) Direction(d string) *TextBuilder {
	t.b.Set("direction", value.String(d))
	return t
}

// Language sets the language of the text, e.g. "en".
func (t *TextBuilder) Language(l string) *TextBuilder { t.b.Set("language", value.String(l)); return t }

// Script sets the script of the text, e.g. "latin".
func (t *TextBuilder) Script(s string) *TextBuilder { t.b.Set("script", value.String(s)); return t }

// Fn sets the number of fragments used for curves.
func (t *TextBuilder) Fn(n int) *TextBuilder { t.b.Set("$fn", value.Int(n)); return t }

// Import2DBuilder stages an import() of a planar file such as DXF or SVG.
type Import2DBuilder struct{ base[Primitive2D] }

// NewImport2D starts an import. File is required.
func NewImport2D() *Import2DBuilder { return &Import2DBuilder{newBase(import2DEntry, wrap2D)} }

// File sets the path of the file to import.
func (i *Import2DBuilder) File(path string) *Import2DBuilder {
	i.b.Set("file", value.String(path))
	return i
}

// Convexity bounds the ray crossings used by the preview renderer.
func (i *Import2DBuilder) Convexity(n int) *Import2DBuilder {
	i.b.Set("convexity", value.Int(n))
	return i
}

// ID selects one element or group of an SVG file.
func (i *Import2DBuilder) ID(id string) *Import2DBuilder {
	i.b.Set("id", value.String(id))
	return i
}

// Layer selects one layer of a DXF or SVG file.
func (i *Import2DBuilder) Layer(name string) *Import2DBuilder {
	i.b.Set("layer", value.String(name))
	return i
}

// Fa sets the minimum fragment angle in degrees.
func (i *Import2DBuilder) Fa(deg float64) *Import2DBuilder {
	i.b.Set("$fa", value.Number(deg))
	return i
}

// Fn sets a fixed number of fragments.
func (i *Import2DBuilder) Fn(n int) *Import2DBuilder { i.b.Set("$fn", value.Int(n)); return i }

// Fs sets the minimum fragment length.
func (i *Import2DBuilder) Fs(s float64) *Import2DBuilder { i.b.Set("$fs", value.Number(s)); return i }
