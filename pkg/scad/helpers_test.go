package scad

import "github.com/matzehuels/scadgen/pkg/value"

// prim and mod are minimal catalog stand-ins.
type prim struct {
	name   string
	dim    Dimension
	params []Param
}

func (p prim) Body() Body           { return Body{Name: p.name, Params: p.params} }
func (p prim) Dimension() Dimension { return p.dim }

type mod struct {
	name   string
	dim    Dimension
	child  Dimension
	params []Param
}

func (m mod) Body() Body                { return Body{Name: m.name, Params: m.params} }
func (m mod) Dimension() Dimension      { return m.dim }
func (m mod) ChildDimension() Dimension { return m.child }

func square(size float64) *Node {
	return NewPrimitive(prim{"square", TwoD, []Param{{Name: "size", Value: value.Number(size)}}})
}

func sphere(r float64) *Node {
	return NewPrimitive(prim{"sphere", ThreeD, []Param{{Name: "r", Value: value.Number(r)}}})
}

func cube(size float64, center bool) *Node {
	params := []Param{{Name: "size", Value: value.Number(size)}}
	if center {
		params = append(params, Param{Name: "center", Value: value.Bool(true)})
	}
	return NewPrimitive(prim{"cube", ThreeD, params})
}

func translate2D(x, y float64) mod {
	return mod{"translate", TwoD, TwoD, []Param{{Value: value.Vec2(x, y)}}}
}

var (
	difference3D = mod{name: "difference", dim: ThreeD, child: ThreeD}
	color        = mod{"color", Mixed, Mixed, []Param{{Value: value.Named("red")}}}
	extrude      = mod{"linear_extrude", ThreeD, TwoD, []Param{{Name: "height", Value: value.Number(1)}}}
)
