package strokegeom

import "math"

// arc approximates the circular arc around p0 that starts at p0+startPerp
// and sweeps theta radians towards startPerp.CWPerp(), in steps of the
// pass's angular step.
// The last edge always lands exactly on p0+endPerp.
func (ps *pass) arc(p0, startPerp Point, theta float64, endPerp Point) {
	other := startPerp.CWPerp()
	last := p0.Add(startPerp)
	for t := ps.step; t < theta; t += ps.step {
		s, c := math.Sincos(t)
		p := p0.Add(startPerp.Mul(c)).Add(other.Mul(s))
		ps.edge(last, p)
		last = p
	}
	ps.edge(last, p0.Add(endPerp))
}
