package strokegeom

import (
	"fmt"
	"math"
)

// Point represents a 2D point or vector in double precision.
//
// Points compare with ==, which is exact. The stroker relies on this to
// recognise a subpath that returns to its first point.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Neg returns the negated vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Norm2 returns the squared length of the vector.
func (p Point) Norm2() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Norm returns the length of the vector.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// CWPerp returns the vector rotated 90 degrees clockwise.
func (p Point) CWPerp() Point {
	return Point{X: p.Y, Y: -p.X}
}

// PerpLen returns Perp rescaled to the signed length l.
// A zero vector has no direction and yields the zero vector.
func (p Point) PerpLen(l float64) Point {
	n := p.Norm()
	if n == 0 {
		return Point{}
	}
	s := l / n
	return Point{X: -p.Y * s, Y: p.X * s}
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
