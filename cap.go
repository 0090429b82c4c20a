package strokegeom

import "math"

// endCap closes an open subpath end at p0. perp points to the side the
// outline arrives on; the cap runs from p0+perp to p0-perp.
func (ps *pass) endCap(p0, perp Point) {
	switch ps.caps {
	case CapSquare:
		// Extension along the segment, away from the path.
		ext := perp.CWPerp()
		a := p0.Add(perp)
		b := a.Add(ext)
		d := p0.Sub(perp)
		c := d.Add(ext)
		ps.edge(a, b)
		ps.edge(b, c)
		ps.edge(c, d)
	case CapRound:
		ps.arc(p0, perp, math.Pi, perp.Neg())
	default:
		ps.edge(p0.Add(perp), p0.Sub(perp))
	}
}
