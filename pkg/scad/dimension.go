package scad

// Dimension classifies a statement as planar, solid, or either.
type Dimension uint8

const (
	// TwoD statements produce or consume planar geometry.
	TwoD Dimension = iota + 1
	// ThreeD statements produce or consume solid geometry.
	ThreeD
	// Mixed statements work on either, e.g. color().
	Mixed
)

// String returns "2D", "3D" or "Mixed".
func (d Dimension) String() string {
	switch d {
	case TwoD:
		return "2D"
	case ThreeD:
		return "3D"
	case Mixed:
		return "Mixed"
	default:
		return "Invalid"
	}
}

// Valid reports whether d is one of the three defined tags.
func (d Dimension) Valid() bool {
	return d == TwoD || d == ThreeD || d == Mixed
}

// Compatible reports whether a statement tagged d may be placed where
// required is expected.
func (d Dimension) Compatible(required Dimension) bool {
	return d == required || required == Mixed || d == Mixed
}

// Join returns the tag of a group holding both a and b. It reports false when
// a and b are distinct concrete tags.
func Join(a, b Dimension) (Dimension, bool) {
	switch {
	case a == Mixed:
		return b, true
	case b == Mixed:
		return a, true
	case a == b:
		return a, true
	default:
		return 0, false
	}
}
