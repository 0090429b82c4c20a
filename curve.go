package strokegeom

import "math"

// DefaultCurveTolerance is the default maximum distance, in device units,
// between a flattened offset curve and the true one.
const DefaultCurveTolerance = 0.25

// maxCurveSteps bounds the pieces a single curve is flattened into.
const maxCurveSteps = 1024

// CurveBuilder builds the stroke outline of a quadratic curve segment.
//
// Each method receives the curve p0, ctrl, p2, the half width perpLen and
// the perpendicular offsets perp0 and perp2 at its ends, and writes edges
// into sink. The outline must start at p0+perp0 and end at p2+perp2 on the
// outer side, and run from p2-perp2 back to p0-perp0 on the inner side, so
// that the stroker's joints and caps connect to it.
type CurveBuilder interface {
	// CurveExtent emits geometry for a bounding-box pass.
	CurveExtent(sink Sink, p0, ctrl, p2 Point, perpLen float64, perp0, perp2 Point)
	// HitTestCurve emits geometry for a hit-test pass in path coordinates.
	HitTestCurve(sink Sink, p0, ctrl, p2 Point, perpLen float64, perp0, perp2 Point)
	// BuildCurve emits fillable geometry for a solid pass.
	BuildCurve(sink Sink, p0, ctrl, p2 Point, perpLen float64, perp0, perp2 Point)
}

// FlatCurves is the default CurveBuilder. It flattens the curve into
// straight pieces and offsets each vertex along the curve normal.
// All three modes produce the same edges.
type FlatCurves struct {
	// Tolerance is the flattening tolerance. Non-positive values select
	// DefaultCurveTolerance.
	Tolerance float64
}

// CurveExtent implements CurveBuilder.
func (f FlatCurves) CurveExtent(sink Sink, p0, ctrl, p2 Point, perpLen float64, perp0, perp2 Point) {
	f.emit(sink, p0, ctrl, p2, perpLen, perp0, perp2)
}

// HitTestCurve implements CurveBuilder.
func (f FlatCurves) HitTestCurve(sink Sink, p0, ctrl, p2 Point, perpLen float64, perp0, perp2 Point) {
	f.emit(sink, p0, ctrl, p2, perpLen, perp0, perp2)
}

// BuildCurve implements CurveBuilder.
func (f FlatCurves) BuildCurve(sink Sink, p0, ctrl, p2 Point, perpLen float64, perp0, perp2 Point) {
	f.emit(sink, p0, ctrl, p2, perpLen, perp0, perp2)
}

func (f FlatCurves) emit(sink Sink, p0, ctrl, p2 Point, perpLen float64, perp0, perp2 Point) {
	n := f.Steps(p0, ctrl, p2, perpLen)
	dt := 1 / float64(n)

	last := p0.Add(perp0)
	for i := 1; i < n; i++ {
		t := float64(i) * dt
		p := quadPoint(p0, ctrl, p2, t).Add(quadNormal(p0, ctrl, p2, t, perpLen, perp0, perp2))
		sink.AddEdge(last, p)
		last = p
	}
	sink.AddEdge(last, p2.Add(perp2))

	last = p2.Sub(perp2)
	for i := n - 1; i > 0; i-- {
		t := float64(i) * dt
		p := quadPoint(p0, ctrl, p2, t).Sub(quadNormal(p0, ctrl, p2, t, perpLen, perp0, perp2))
		sink.AddEdge(last, p)
		last = p
	}
	sink.AddEdge(last, p0.Sub(perp0))
}

// Steps returns the number of straight pieces used for the offset curve.
// It covers both the chord error of the centre line, |p0-2c+p2|/(4n²),
// and the sagitta of the offset, perpLen*φ²/8 for a turn of φ per piece.
func (f FlatCurves) Steps(p0, ctrl, p2 Point, perpLen float64) int {
	tol := f.Tolerance
	if !(tol > 0) {
		tol = DefaultCurveTolerance
	}
	dd := p0.Sub(ctrl.Mul(2)).Add(p2).Norm()
	n := math.Sqrt(dd / (4 * tol))

	g0 := ctrl.Sub(p0)
	g2 := p2.Sub(ctrl)
	if d := g0.Norm2() * g2.Norm2(); d > 0 {
		phi := turnAngle(g0.Dot(g2) / math.Sqrt(d))
		n = math.Max(n, phi*math.Sqrt(math.Abs(perpLen)/(8*tol)))
	}

	steps := int(math.Ceil(n))
	switch {
	case steps < 1:
		return 1
	case steps > maxCurveSteps:
		return maxCurveSteps
	}
	return steps
}

// quadPoint evaluates the quadratic Bezier curve at t.
func quadPoint(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}

// quadNormal returns the offset of length perpLen perpendicular to the
// curve at t, on the same side as the end offsets. Where the derivative
// vanishes the nearer end offset is used.
func quadNormal(p0, p1, p2 Point, t, perpLen float64, perp0, perp2 Point) Point {
	d := p1.Sub(p0).Mul(1 - t).Add(p2.Sub(p1).Mul(t))
	if d == (Point{}) {
		if t < 0.5 {
			return perp0
		}
		return perp2
	}
	return d.PerpLen(perpLen)
}
