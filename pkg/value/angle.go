package value

import "math"

// Angle is an angle in degrees; OpenSCAD takes all angles in degrees.
type Angle struct {
	deg float64
}

// Deg returns an angle of d degrees.
func Deg(d float64) Angle { return Angle{deg: d} }

// Rad returns an angle of r radians.
func Rad(r float64) Angle { return Angle{deg: r * 180 / math.Pi} }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return a.deg }

// Literal returns the angle in degrees.
func (a Angle) Literal() string { return FormatFloat(a.deg) }

// Angles is a vector of Euler angles in degrees.
type Angles [3]Angle

// EulerDeg returns rotations around x, y and z.
func EulerDeg(x, y, z float64) Angles {
	return Angles{Deg(x), Deg(y), Deg(z)}
}

// Literal returns the angles as an [x, y, z] vector.
func (a Angles) Literal() string {
	return Vec3(a[0].deg, a[1].deg, a[2].deg).Literal()
}
