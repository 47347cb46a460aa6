package value

// Color is an RGB or RGBA vector, or a named color ("red", "#C0FFEE").
type Color struct {
	rgba  [4]float64
	alpha bool
	name  string
}

// RGB returns an opaque color with components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{rgba: [4]float64{r, g, b, 1}}
}

// RGBA returns a color with an explicit alpha component.
func RGBA(r, g, b, a float64) Color {
	return Color{rgba: [4]float64{r, g, b, a}, alpha: true}
}

// Named returns a color given by SVG name or hex string.
func Named(name string) Color {
	return Color{name: name}
}

// IsNamed reports whether c was created with [Named].
func (c Color) IsNamed() bool { return c.name != "" }

// Name returns the color name for named colors.
func (c Color) Name() string { return c.name }

// Literal returns a quoted name, or an [r, g, b] or [r, g, b, a] vector.
func (c Color) Literal() string {
	if c.IsNamed() {
		return quote(c.name)
	}
	if c.alpha {
		return Vec(c.rgba[:]).Literal()
	}
	return Vec(c.rgba[:3]).Literal()
}
