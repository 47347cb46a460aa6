package value

import "strings"

// Matrix is a row-major affine transformation for multmatrix.
type Matrix [][]float64

// Affine2D embeds a 2x3 planar transform into the 3x4 form multmatrix expects.
func Affine2D(m [2][3]float64) Matrix {
	return Matrix{
		{m[0][0], m[0][1], 0, m[0][2]},
		{m[1][0], m[1][1], 0, m[1][2]},
		{0, 0, 1, 0},
	}
}

// Affine3D returns a 3x4 transform.
func Affine3D(m [3][4]float64) Matrix {
	out := make(Matrix, 3)
	for i := range m {
		out[i] = append([]float64(nil), m[i][:]...)
	}
	return out
}

// Identity3D returns the 3x4 identity transform.
func Identity3D() Matrix {
	return Affine3D([3][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	})
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Literal returns the rows as nested vectors.
func (m Matrix) Literal() string {
	rows := make([]string, len(m))
	for i, row := range m {
		rows[i] = Vec(row).Literal()
	}
	return "[" + strings.Join(rows, ", ") + "]"
}
