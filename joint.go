package strokegeom

import "math"

// joint emits the corner at p0 between a segment arriving with
// perpendicular perp1 and one leaving with perp2.
//
// The inner side of the turn is already covered by the two segment
// bodies, so it is only bridged by one straight edge. The outer side gets
// the miter, arc or bevel.
func (ps *pass) joint(p0, perp1, perp2 Point) {
	switch ps.joints {
	case JoinMiter, JoinRound:
		var p1, p2 Point
		// Zero means exactly doubled back; it takes the same side as a
		// positive turn.
		if perp2.Cross(perp1) >= 0 {
			ps.edge(p0.Sub(perp2), p0.Sub(perp1))
			p1, p2 = perp1, perp2
		} else {
			ps.edge(p0.Add(perp1), p0.Add(perp2))
			p1, p2 = perp2.Neg(), perp1.Neg()
		}
		if ps.joints == JoinMiter {
			ps.miterJoint(p0, p1, p2)
		} else {
			ps.roundJoint(p0, p1, p2, perp1, perp2)
		}
	default:
		ps.edge(p0.Add(perp1), p0.Add(perp2))
		ps.edge(p0.Sub(perp2), p0.Sub(perp1))
	}
}

// miterParam returns the distance a, in units of the offset length, along
// dir1 from p0+p1 and along dir2 from p0+p2 at which the two outer edges
// meet, clamped to limit. It solves
//
//	p1 + a*dir1 = p2 + a*dir2
//
// on whichever axis has the larger denominator. Parallel rays give limit.
func miterParam(p1, p2, dir1, dir2 Point, limit float64) float64 {
	dx := dir1.X - dir2.X
	dy := dir1.Y - dir2.Y
	var a float64
	switch {
	case dx == 0 && dy == 0:
		return limit
	case math.Abs(dx) > math.Abs(dy):
		a = (p2.X - p1.X) / dx
	default:
		a = (p2.Y - p1.Y) / dy
	}
	if a < limit {
		return a
	}
	return limit
}

// miterJoint fills the outer side between p0+p1 and p0+p2. Under the limit
// it is a single sharp vertex; at the limit the spike is cut off.
func (ps *pass) miterJoint(p0, p1, p2 Point) {
	dir1 := p1.CWPerp()
	dir2 := p2.Perp()
	a := miterParam(p1, p2, dir1, dir2, ps.miter)

	o1 := p0.Add(p1)
	o2 := p0.Add(p2)
	if a < ps.miter {
		point := o1.Add(dir1.Mul(a))
		ps.edge(o1, point)
		ps.edge(point, o2)
		return
	}
	point1 := o1.Add(dir1.Mul(a))
	point2 := o2.Add(dir2.Mul(a))
	ps.edge(o1, point1)
	ps.edge(point1, point2)
	ps.edge(point2, o2)
}

// roundJoint sweeps an arc from p0+p1 to p0+p2 through the turn angle
// between perp1 and perp2.
func (ps *pass) roundJoint(p0, p1, p2, perp1, perp2 Point) {
	denom := perp1.Norm2() * perp2.Norm2()
	if !(denom > 0) {
		return
	}
	ps.arc(p0, p1, turnAngle(perp1.Dot(perp2)/math.Sqrt(denom)), p2)
}

// turnAngle returns acos(cos) with the argument clamped to [-1, 1].
func turnAngle(cos float64) float64 {
	switch {
	case cos >= 1:
		return 0
	case cos <= -1:
		return math.Pi
	default:
		return math.Acos(cos)
	}
}
