package shape

import (
	"github.com/matzehuels/scadgen/pkg/errors"
	"github.com/matzehuels/scadgen/pkg/scad"
	"github.com/matzehuels/scadgen/pkg/value"
)

var (
	cubeEntry = primitiveEntry(scad.ThreeD, "cube",
		required("size"), param("center"))

	sphereEntry = primitiveEntry(scad.ThreeD, "sphere",
		with([]scad.ParamSpec{either("size", true, "r", "d")}, fragments...)...)

	cylinderEntry = primitiveEntry(scad.ThreeD, "cylinder",
		with([]scad.ParamSpec{
			required("h"),
			either("size", false, "r", "d"),
			either("size1", false, "r1", "d1"),
			either("size2", false, "r2", "d2"),
			param("center"),
		}, fragments...)...).
		check(checkCylinder)

	polyhedronEntry = primitiveEntry(scad.ThreeD, "polyhedron",
		required("points"), required("faces"), param("convexity")).
		check(checkIndices("polyhedron", "points", "faces"))

	surfaceEntry = primitiveEntry(scad.ThreeD, "surface",
		required("file"), param("center"), param("invert"), param("convexity"))

	import3DEntry = primitiveEntry(scad.ThreeD, "import",
		with([]scad.ParamSpec{required("file"), param("convexity")}, fragments...)...)
)

// checkCylinder requires a uniform size or both end sizes.
func checkCylinder(b *scad.Builder) {
	_, uniform := b.Get("size")
	_, bottom := b.Get("size1")
	_, top := b.Get("size2")
	switch {
	case uniform && (bottom || top):
		b.Fail(errors.New(errors.ErrCodeInvalidParameter,
			"cylinder: r/d cannot be combined with r1/r2"))
	case uniform, bottom && top:
	case bottom:
		b.Fail(&scad.MissingParameterError{Statement: "cylinder", Field: "size2"})
	case top:
		b.Fail(&scad.MissingParameterError{Statement: "cylinder", Field: "size1"})
	default:
		b.Fail(&scad.MissingParameterError{Statement: "cylinder", Field: "size"})
	}
}

// CubeBuilder stages a cube().
type CubeBuilder struct{ base[Primitive3D] }

// NewCube starts a cube. Size is required.
func NewCube() *CubeBuilder { return &CubeBuilder{newBase(cubeEntry, wrap3D)} }

// Size sets equal edge lengths.
func (c *CubeBuilder) Size(size float64) *CubeBuilder {
	c.b.Set("size", value.Number(size))
	return c
}

// SizeXYZ sets each edge length.
func (c *CubeBuilder) SizeXYZ(x, y, z float64) *CubeBuilder {
	c.b.Set("size", value.Vec3(x, y, z))
	return c
}

// Center places the cube's center at the origin.
func (c *CubeBuilder) Center(center bool) *CubeBuilder {
	c.b.Set("center", value.Bool(center))
	return c
}

// SphereBuilder stages a sphere().
type SphereBuilder struct{ base[Primitive3D] }

// NewSphere starts a sphere. Either R or D is required.
func NewSphere() *SphereBuilder { return &SphereBuilder{newBase(sphereEntry, wrap3D)} }

// R sets the radius.
func (s *SphereBuilder) R(r float64) *SphereBuilder { s.b.Set("r", value.Number(r)); return s }

// D sets the diameter.
func (s *SphereBuilder) D(d float64) *SphereBuilder { s.b.Set("d", value.Number(d)); return s }

// Fa sets the minimum fragment angle in degrees.
func (s *SphereBuilder) Fa(deg float64) *SphereBuilder { s.b.Set("$fa", value.Number(deg)); return s }

// Fn sets a fixed number of fragments.
func (s *SphereBuilder) Fn(n int) *SphereBuilder { s.b.Set("$fn", value.Int(n)); return s }

// Fs sets the minimum fragment length.
func (s *SphereBuilder) Fs(size float64) *SphereBuilder { s.b.Set("$fs", value.Number(size)); return s }

// CylinderBuilder stages a cylinder().
type CylinderBuilder struct{ base[Primitive3D] }

// NewCylinder starts a cylinder. H is required, plus either a uniform size
// (R or D) or both end sizes (R1 and R2, or D1 and D2).
func NewCylinder() *CylinderBuilder { return &CylinderBuilder{newBase(cylinderEntry, wrap3D)} }

// H sets the height.
func (c *CylinderBuilder) H(h float64) *CylinderBuilder { c.b.Set("h", value.Number(h)); return c }

// R sets a uniform radius.
func (c *CylinderBuilder) R(r float64) *CylinderBuilder { c.b.Set("r", value.Number(r)); return c }

// D sets a uniform diameter.
func (c *CylinderBuilder) D(d float64) *CylinderBuilder { c.b.Set("d", value.Number(d)); return c }

// R12 sets the bottom and top radii.
func (c *CylinderBuilder) R12(r1, r2 float64) *CylinderBuilder {
	c.b.Set("r1", value.Number(r1)).Set("r2", value.Number(r2))
	return c
}

// D12 sets the bottom and top diameters.
func (c *CylinderBuilder) D12(d1, d2 float64) *CylinderBuilder {
	c.b.Set("d1", value.Number(d1)).Set("d2", value.Number(d2))
	return c
}

// Center centers the cylinder on the z axis.
func (c *CylinderBuilder) Center(center bool) *CylinderBuilder {
	c.b.Set("center", value.Bool(center))
	return c
}

// Fa sets the minimum fragment angle in degrees.
func (c *CylinderBuilder) Fa(deg float64) *CylinderBuilder {
	c.b.Set("$fa", value.Number(deg))
	return c
}

// Fn sets a fixed number of fragments.
func (c *CylinderBuilder) Fn(n int) *CylinderBuilder { c.b.Set("$fn", value.Int(n)); return c }

// Fs sets the minimum fragment length.
func (c *CylinderBuilder) Fs(size float64) *CylinderBuilder {
	c.b.Set("$fs", value.Number(size))
	return c
}

// PolyhedronBuilder stages a polyhedron().
type PolyhedronBuilder struct{ base[Primitive3D] }

// NewPolyhedron starts a polyhedron. Points and Faces are required.
func NewPolyhedron() *PolyhedronBuilder {
	return &PolyhedronBuilder{newBase(polyhedronEntry, wrap3D)}
}

// Points sets the vertices.
func (p *PolyhedronBuilder) Points(pts ...value.Vec) *PolyhedronBuilder {
	p.b.Set("points", value.Points(pts...))
	return p
}

// Faces sets index lists into Points. Build fails if an index is out of
// range.
func (p *PolyhedronBuilder) Faces(faces ...[]int) *PolyhedronBuilder {
	p.b.Set("faces", value.Indices(faces...))
	return p
}

// Convexity bounds the ray crossings used by the preview renderer.
func (p *PolyhedronBuilder) Convexity(n int) *PolyhedronBuilder {
	p.b.Set("convexity", value.Int(n))
	return p
}

// SurfaceBuilder stages a surface() from a heightmap file.
type SurfaceBuilder struct{ base[Primitive3D] }

// NewSurface starts a surface. File is required.
func NewSurface() *SurfaceBuilder { return &SurfaceBuilder{newBase(surfaceEntry, wrap3D)} }

// File sets the heightmap file, a .dat table or an image.
func (s *SurfaceBuilder) File(path string) *SurfaceBuilder {
	s.b.Set("file", value.String(path))
	return s
}

// Center centers the surface on the origin.
func (s *SurfaceBuilder) Center(c bool) *SurfaceBuilder { s.b.Set("center", value.Bool(c)); return s }

// Invert inverts the heightmap of an image file.
func (s *SurfaceBuilder) Invert(inv bool) *SurfaceBuilder {
	s.b.Set("invert", value.Bool(inv))
	return s
}

// Convexity bounds the ray crossings used by the preview renderer.
func (s *SurfaceBuilder) Convexity(n int) *SurfaceBuilder {
	s.b.Set("convexity", value.Int(n))
	return s
}

// Import3DBuilder stages an import() of a mesh file such as STL or 3MF.
type Import3DBuilder struct{ base[Primitive3D] }

// NewImport3D starts an import. File is required.
func NewImport3D() *Import3DBuilder { return &Import3DBuilder{newBase(import3DEntry, wrap3D)} }

// File sets the path of the file to import.
func (i *Import3DBuilder) File(path string) *Import3DBuilder {
	i.b.Set("file", value.String(path))
	return i
}

// Convexity bounds the ray crossings used by the preview renderer.
func (i *Import3DBuilder) Convexity(n int) *Import3DBuilder {
	i.b.Set("convexity", value.Int(n))
	return i
}

// Fa sets the minimum fragment angle in degrees.
func (i *Import3DBuilder) Fa(deg float64) *Import3DBuilder {
	i.b.Set("$fa", value.Number(deg))
	return i
}

// Fn sets a fixed number of fragments.
func (i *Import3DBuilder) Fn(n int) *Import3DBuilder { i.b.Set("$fn", value.Int(n)); return i }

// Fs sets the minimum fragment length.
func (i *Import3DBuilder) Fs(size float64) *Import3DBuilder {
	i.b.Set("$fs", value.Number(size))
	return i
}
