package shape

import (
	"slices"

	"github.com/matzehuels/scadgen/pkg/scad"
	"github.com/matzehuels/scadgen/pkg/value"
)

var (
	translate2DEntry  = modifierEntry(scad.TwoD, scad.TwoD, "translate", positional("v", true))
	translate3DEntry  = modifierEntry(scad.ThreeD, scad.ThreeD, "translate", positional("v", true))
	rotate2DEntry     = modifierEntry(scad.TwoD, scad.TwoD, "rotate", positional("a", true))
	rotate3DEntry     = modifierEntry(scad.ThreeD, scad.ThreeD, "rotate", positional("a", true), param("v"))
	scale2DEntry      = modifierEntry(scad.TwoD, scad.TwoD, "scale", positional("v", true))
	scale3DEntry      = modifierEntry(scad.ThreeD, scad.ThreeD, "scale", positional("v", true))
	resize2DEntry     = modifierEntry(scad.TwoD, scad.TwoD, "resize", positional("newsize", true), param("auto"))
	resize3DEntry     = modifierEntry(scad.ThreeD, scad.ThreeD, "resize", positional("newsize", true), param("auto"))
	mirror2DEntry     = modifierEntry(scad.TwoD, scad.TwoD, "mirror", positional("v", true))
	mirror3DEntry     = modifierEntry(scad.ThreeD, scad.ThreeD, "mirror", positional("v", true))
	multmatrix2DEntry = modifierEntry(scad.TwoD, scad.TwoD, "multmatrix", required("m"))
	multmatrix3DEntry = modifierEntry(scad.ThreeD, scad.ThreeD, "multmatrix", required("m"))

	offsetEntry = modifierEntry(scad.TwoD, scad.TwoD, "offset",
		with([]scad.ParamSpec{either("amount", true, "r", "delta"), param("chamfer")}, fragments...)...)

	projectionEntry = modifierEntry(scad.TwoD, scad.ThreeD, "projection", param("cut"))

	linearExtrudeEntry = modifierEntry(scad.ThreeD, scad.TwoD, "linear_extrude",
		required("height"), param("v"), param("center"), param("convexity"),
		param("twist"), param("slices"), param("scale"), param("$fn"))

	rotateExtrudeEntry = modifierEntry(scad.ThreeD, scad.TwoD, "rotate_extrude",
		with([]scad.ParamSpec{param("angle"), param("start"), param("convexity")}, fragments...)...)

	colorEntry = modifierEntry(scad.Mixed, scad.Mixed, "color",
		either("c", true, "c", ""), param("alpha"))
)

func init() {
	for _, name := range []string{"hull", "minkowski", scad.OpUnion, scad.OpDifference, scad.OpIntersection} {
		modifierEntry(scad.TwoD, scad.TwoD, name)
		modifierEntry(scad.ThreeD, scad.ThreeD, name)
	}
}

// VectorBuilder stages a modifier taking one positional vector: translate,
// scale and mirror.
type VectorBuilder[M any] struct{ base[M] }

// NewTranslate2D starts a planar translate([x, y]).
func NewTranslate2D() *VectorBuilder[Modifier2D] {
	return &VectorBuilder[Modifier2D]{newBase(translate2DEntry, wrapMod2D)}
}

// NewTranslate3D starts a translate([x, y, z]).
func NewTranslate3D() *VectorBuilder[Modifier3D] {
	return &VectorBuilder[Modifier3D]{newBase(translate3DEntry, wrapMod3D)}
}

// NewScale2D starts a planar scale([x, y]).
func NewScale2D() *VectorBuilder[Modifier2D] {
	return &VectorBuilder[Modifier2D]{newBase(scale2DEntry, wrapMod2D)}
}

// NewScale3D starts a scale([x, y, z]).
func NewScale3D() *VectorBuilder[Modifier3D] {
	return &VectorBuilder[Modifier3D]{newBase(scale3DEntry, wrapMod3D)}
}

// NewMirror2D starts a planar mirror across the line normal to v.
func NewMirror2D() *VectorBuilder[Modifier2D] {
	return &VectorBuilder[Modifier2D]{newBase(mirror2DEntry, wrapMod2D)}
}

// NewMirror3D starts a mirror across the plane normal to v.
func NewMirror3D() *VectorBuilder[Modifier3D] {
	return &VectorBuilder[Modifier3D]{newBase(mirror3DEntry, wrapMod3D)}
}

// V sets the vector.
func (v *VectorBuilder[M]) V(xs ...float64) *VectorBuilder[M] {
	v.b.Set("v", value.Vec(slices.Clone(xs)))
	return v
}

// ResizeBuilder stages a resize().
type ResizeBuilder[M any] struct{ base[M] }

// NewResize2D starts a planar resize([x, y]).
func NewResize2D() *ResizeBuilder[Modifier2D] {
	return &ResizeBuilder[Modifier2D]{newBase(resize2DEntry, wrapMod2D)}
}

// NewResize3D starts a resize([x, y, z]).
func NewResize3D() *ResizeBuilder[Modifier3D] {
	return &ResizeBuilder[Modifier3D]{newBase(resize3DEntry, wrapMod3D)}
}

// NewSize sets the target size. A zero component keeps that axis.
func (r *ResizeBuilder[M]) NewSize(xs ...float64) *ResizeBuilder[M] {
	r.b.Set("newsize", value.Vec(slices.Clone(xs)))
	return r
}

// Auto scales zero components of the new size in proportion.
func (r *ResizeBuilder[M]) Auto(auto bool) *ResizeBuilder[M] {
	r.b.Set("auto", value.Bool(auto))
	return r
}

// MultmatrixBuilder stages a multmatrix().
type MultmatrixBuilder[M any] struct{ base[M] }

// NewMultmatrix2D starts a planar multmatrix. M is required.
func NewMultmatrix2D() *MultmatrixBuilder[Modifier2D] {
	return &MultmatrixBuilder[Modifier2D]{newBase(multmatrix2DEntry, wrapMod2D)}
}

// NewMultmatrix3D starts a multmatrix. M is required.
func NewMultmatrix3D() *MultmatrixBuilder[Modifier3D] {
	return &MultmatrixBuilder[Modifier3D]{newBase(multmatrix3DEntry, wrapMod3D)}
}

// M sets the transformation matrix, see [value.Affine2D] and
// [value.Affine3D].
func (m *MultmatrixBuilder[M]) M(matrix value.Matrix) *MultmatrixBuilder[M] {
	m.b.Set("m", matrix.Clone())
	return m
}

// Rotate2DBuilder stages a planar rotate(a).
type Rotate2DBuilder struct{ base[Modifier2D] }

// NewRotate2D starts a planar rotate. A is required.
func NewRotate2D() *Rotate2DBuilder { return &Rotate2DBuilder{newBase(rotate2DEntry, wrapMod2D)} }

// A sets the counterclockwise rotation.
func (r *Rotate2DBuilder) A(a value.Angle) *Rotate2DBuilder {
	r.b.Set("a", a)
	return r
}

// Rotate3DBuilder stages a rotate().
type Rotate3DBuilder struct{ base[Modifier3D] }

// NewRotate3D starts a rotate. A or Euler is required.
func NewRotate3D() *Rotate3DBuilder { return &Rotate3DBuilder{newBase(rotate3DEntry, wrapMod3D)} }

// A sets a rotation about Axis, or about z if no axis is set.
func (r *Rotate3DBuilder) A(a value.Angle) *Rotate3DBuilder {
	r.b.Set("a", a)
	return r
}

// Euler sets rotations about x, y and z, applied in that order.
func (r *Rotate3DBuilder) Euler(a value.Angles) *Rotate3DBuilder {
	r.b.Set("a", a)
	return r
}

// Axis sets the axis for A.
func (r *Rotate3DBuilder) Axis(x, y, z float64) *Rotate3DBuilder {
	r.b.Set("v", value.Vec3(x, y, z))
	return r
}

// OffsetBuilder stages an offset().
type OffsetBuilder struct{ base[Modifier2D] }

// NewOffset starts an offset. Either R or Delta is required.
func NewOffset() *OffsetBuilder { return &OffsetBuilder{newBase(offsetEntry, wrapMod2D)} }

// R offsets by a radius, rounding corners.
func (o *OffsetBuilder) R(r float64) *OffsetBuilder { o.b.Set("r", value.Number(r)); return o }

// Delta offsets by a distance, keeping corners sharp.
func (o *OffsetBuilder) Delta(d float64) *OffsetBuilder { o.b.Set("delta", value.Number(d)); return o }

// Chamfer cuts corners when offsetting by Delta.
func (o *OffsetBuilder) Chamfer(c bool) *OffsetBuilder { o.b.Set("chamfer", value.Bool(c)); return o }

// Fa sets the minimum fragment angle in degrees.
func (o *OffsetBuilder) Fa(deg float64) *OffsetBuilder { o.b.Set("$fa", value.Number(deg)); return o }

// Fn sets a fixed number of fragments.
func (o *OffsetBuilder) Fn(n int) *OffsetBuilder { o.b.Set("$fn", value.Int(n)); return o }

// Fs sets the minimum fragment length.
func (o *OffsetBuilder) Fs(size float64) *OffsetBuilder { o.b.Set("$fs", value.Number(size)); return o }

// ProjectionBuilder stages a projection().
type ProjectionBuilder struct{ base[Projection] }

// NewProjection starts a projection of a solid onto the xy plane.
func NewProjection() *ProjectionBuilder {
	return &ProjectionBuilder{newBase(projectionEntry, func(b scad.Body) Projection { return Projection{body: b} })}
}

// Cut projects the slice at z = 0 instead of the full shadow.
func (p *ProjectionBuilder) Cut(cut bool) *ProjectionBuilder {
	p.b.Set("cut", value.Bool(cut))
	return p
}

func wrapExtrusion(b scad.Body) Extrusion { return Extrusion{body: b} }

// LinearExtrudeBuilder stages a linear_extrude().
type LinearExtrudeBuilder struct{ base[Extrusion] }

// NewLinearExtrude starts a linear extrusion. Height is required.
func NewLinearExtrude() *LinearExtrudeBuilder {
	return &LinearExtrudeBuilder{newBase(linearExtrudeEntry, wrapExtrusion)}
}

// Height sets the extrusion length.
func (l *LinearExtrudeBuilder) Height(h float64) *LinearExtrudeBuilder {
	l.b.Set("height", value.Number(h))
	return l
}

// V sets the extrusion direction.
func (l *LinearExtrudeBuilder) V(x, y, z float64) *LinearExtrudeBuilder {
	l.b.Set("v", value.Vec3(x, y, z))
	return l
}

// Center centers the extrusion on z = 0.
func (l *LinearExtrudeBuilder) Center(c bool) *LinearExtrudeBuilder {
	l.b.Set("center", value.Bool(c))
	return l
}

// Convexity bounds the ray crossings used by the preview renderer.
func (l *LinearExtrudeBuilder) Convexity(n int) *LinearExtrudeBuilder {
	l.b.Set("convexity", value.Int(n))
	return l
}

// Twist rotates the shape over the extrusion height.
func (l *LinearExtrudeBuilder) Twist(a value.Angle) *LinearExtrudeBuilder {
	l.b.Set("twist", a)
	return l
}

// Slices sets the number of intermediate layers used for Twist.
func (l *LinearExtrudeBuilder) Slices(n int) *LinearExtrudeBuilder {
	l.b.Set("slices", value.Int(n))
	return l
}

// Scale sets the scale factor of the top face.
func (l *LinearExtrudeBuilder) Scale(x, y float64) *LinearExtrudeBuilder {
	l.b.Set("scale", value.Vec2(x, y))
	return l
}

// Fn sets a fixed number of fragments.
func (l *LinearExtrudeBuilder) Fn(n int) *LinearExtrudeBuilder {
	l.b.Set("$fn", value.Int(n))
	return l
}

// RotateExtrudeBuilder stages a rotate_extrude().
type RotateExtrudeBuilder struct{ base[Extrusion] }

// NewRotateExtrude starts a rotational extrusion about the z axis.
func NewRotateExtrude() *RotateExtrudeBuilder {
	return &RotateExtrudeBuilder{newBase(rotateExtrudeEntry, wrapExtrusion)}
}

// Angle sets the sweep. OpenSCAD defaults to a full turn.
func (r *RotateExtrudeBuilder) Angle(a value.Angle) *RotateExtrudeBuilder {
	r.b.Set("angle", a)
	return r
}

// Start sets the angle the sweep begins at.
func (r *RotateExtrudeBuilder) Start(a value.Angle) *RotateExtrudeBuilder {
	r.b.Set("start", a)
	return r
}

// Convexity bounds the ray crossings used by the preview renderer.
func (r *RotateExtrudeBuilder) Convexity(n int) *RotateExtrudeBuilder {
	r.b.Set("convexity", value.Int(n))
	return r
}

// Fa sets the minimum fragment angle in degrees.
func (r *RotateExtrudeBuilder) Fa(deg float64) *RotateExtrudeBuilder {
	r.b.Set("$fa", value.Number(deg))
	return r
}

// Fn sets a fixed number of fragments.
func (r *RotateExtrudeBuilder) Fn(n int) *RotateExtrudeBuilder {
	r.b.Set("$fn", value.Int(n))
	return r
}

// Fs sets the minimum fragment length.
func (r *RotateExtrudeBuilder) Fs(size float64) *RotateExtrudeBuilder {
	r.b.Set("$fs", value.Number(size))
	return r
}

// ColorBuilder stages a color().
type ColorBuilder struct{ base[Color] }

// NewColor starts a color. C is required.
func NewColor() *ColorBuilder {
	return &ColorBuilder{newBase(colorEntry, func(b scad.Body) Color { return Color{body: b} })}
}

// C sets the color. Named colors and hex strings are written positionally,
// vectors as c = [r, g, b].
func (c *ColorBuilder) C(col value.Color) *ColorBuilder {
	key := "c"
	if col.IsNamed() {
		key = ""
	}
	c.b.Set(key, col)
	return c
}

// Alpha sets the opacity in [0, 1].
func (c *ColorBuilder) Alpha(a float64) *ColorBuilder {
	c.b.Set("alpha", value.Number(a))
	return c
}
