package strokegeom

import "math"

// AxisSnapper nudges straight, axis-aligned device-space runs so they
// rasterize crisply.
//
// t0 and t1 are the unaligned end points of a run; p0 and p1 are the
// points to adjust, which may already have been moved by an earlier run.
type AxisSnapper interface {
	Align(t0, t1 Point, p0, p1 *Point)
}

// GridSnapper snaps the shared coordinate of exactly horizontal or
// vertical runs to the nearest value of the form n+Offset.
type GridSnapper struct {
	Offset float64
}

// NewGridSnapper returns a snapper that puts both outline edges of a
// stroke with half width perpLen on pixel boundaries: pixel centres for
// odd device widths, pixel corners for even ones.
func NewGridSnapper(perpLen float64) GridSnapper {
	if int(math.Round(2*perpLen))%2 == 1 {
		return GridSnapper{Offset: 0.5}
	}
	return GridSnapper{}
}

// Align implements AxisSnapper.
func (g GridSnapper) Align(t0, t1 Point, p0, p1 *Point) {
	switch {
	case t0 == t1:
	case t0.X == t1.X:
		x := g.snap(t0.X)
		p0.X, p1.X = x, x
	case t0.Y == t1.Y:
		y := g.snap(t0.Y)
		p0.Y, p1.Y = y, y
	}
}

func (g GridSnapper) snap(v float64) float64 {
	return math.Floor(v-g.Offset+0.5) + g.Offset
}

// pixelCenter moves p to the centre of the pixel containing it.
func pixelCenter(p Point) Point {
	return Point{X: math.Floor(p.X) + 0.5, Y: math.Floor(p.Y) + 0.5}
}

// alignPoints adjusts device-space segments in place before tessellation.
//
// With hinting every point, control and tile points included, goes to its
// pixel centre. Otherwise only line runs are offered to snap, which sees
// each run's unaligned ends. Curves keep full precision, though their end
// point may be moved as the start of a following line. A line returning to
// the unaligned first point of its subpath is aligned together with it and
// then set to the aligned first point, so an exact closure survives.
func alignPoints(segs []Segment, hinting bool, snap AxisSnapper) {
	if hinting {
		for i, s := range segs {
			segs[i] = mapSegment(s, pixelCenter)
		}
		return
	}
	if snap == nil {
		return
	}

	ends := make([]Point, len(segs))
	var (
		first, prev           *Point
		unalignedFirst, uPrev Point
	)
	for i, s := range segs {
		switch s := s.(type) {
		case MoveTo:
			ends[i] = s.Point
			first = &ends[i]
			unalignedFirst = s.Point
		case LineTo:
			ends[i] = s.Point
			cur := &ends[i]
			closing := first != nil && prev != nil && s.Point == unalignedFirst
			if closing {
				snap.Align(uPrev, s.Point, prev, first)
			}
			if prev != nil {
				snap.Align(uPrev, s.Point, prev, cur)
			}
			if closing {
				*cur = *first
			}
		case CurveTo:
			ends[i] = s.Point
		default:
			continue
		}
		uPrev = segmentEnd(s)
		prev = &ends[i]
	}

	for i, s := range segs {
		switch s := s.(type) {
		case MoveTo:
			segs[i] = MoveTo{Point: ends[i]}
		case LineTo:
			segs[i] = LineTo{Point: ends[i]}
		case CurveTo:
			segs[i] = CurveTo{Control: s.Control, Point: ends[i]}
		}
	}
}

// segmentEnd returns the end point of a stroked segment.
func segmentEnd(s Segment) Point {
	switch s := s.(type) {
	case MoveTo:
		return s.Point
	case LineTo:
		return s.Point
	case CurveTo:
		return s.Point
	default:
		return Point{}
	}
}
