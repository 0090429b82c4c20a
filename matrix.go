package strokegeom

import "math"

// Matrix maps path space to device space:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Only the linear part (A, B, D, E) affects stroke width.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the matrix that leaves points unchanged.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a matrix that offsets points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a matrix that scales x and y independently.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a rotation by angle radians.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// NormalScale returns the RMS scale of the linear part,
// sqrt((a² + b² + d² + e²) / 2). It is 1 for any rotation.
func (m Matrix) NormalScale() float64 {
	return math.Sqrt(0.5 * (m.A*m.A + m.B*m.B + m.D*m.D + m.E*m.E))
}

// RowScale returns the Euclidean norm of row 0 (a, b) or row 1 (d, e)
// of the linear part. Any other row index returns 1.
func (m Matrix) RowScale(row int) float64 {
	switch row {
	case 0:
		return math.Sqrt(m.A*m.A + m.B*m.B)
	case 1:
		return math.Sqrt(m.D*m.D + m.E*m.E)
	default:
		return 1
	}
}
