package strokegeom

import "math"

// Sink receives the edges produced by a tessellation pass.
//
// A sink belongs to one pass; concurrent passes must use separate sinks.
type Sink interface {
	AddEdge(p0, p1 Point)
}

// Mode selects what a pass is for. It decides the point source
// (device space, or raw path space for hit testing) and the curve builder method.
type Mode int

const (
	// ModeExtent accumulates a device-space bounding box.
	ModeExtent Mode = iota
	// ModeSolid accumulates fillable device-space polygon edges.
	ModeSolid
	// ModeHitTest accumulates edges in raw path coordinates for point tests.
	ModeHitTest
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeExtent:
		return "extent"
	case ModeSolid:
		return "solid"
	case ModeHitTest:
		return "hittest"
	default:
		return "unknown"
	}
}

// Edge is a directed line segment from P0 to P1.
type Edge struct {
	P0, P1 Point
}

// Extent is a bounding box accumulator. The zero value is empty.
type Extent struct {
	Min, Max Point
	valid    bool
}

// Add grows the extent to contain p.
func (e *Extent) Add(p Point) {
	if !e.valid {
		e.Min, e.Max, e.valid = p, p, true
		return
	}
	e.Min.X = math.Min(e.Min.X, p.X)
	e.Min.Y = math.Min(e.Min.Y, p.Y)
	e.Max.X = math.Max(e.Max.X, p.X)
	e.Max.Y = math.Max(e.Max.Y, p.Y)
}

// AddEdge implements Sink.
func (e *Extent) AddEdge(p0, p1 Point) {
	e.Add(p0)
	e.Add(p1)
}

// Empty reports whether nothing has been added.
func (e Extent) Empty() bool {
	return !e.valid
}

// Width returns the horizontal size of the extent.
func (e Extent) Width() float64 {
	return e.Max.X - e.Min.X
}

// Height returns the vertical size of the extent.
func (e Extent) Height() float64 {
	return e.Max.Y - e.Min.Y
}

// Union grows e to contain o.
func (e *Extent) Union(o Extent) {
	if o.valid {
		e.Add(o.Min)
		e.Add(o.Max)
	}
}

// EdgeList collects solid polygon edges for a fill rasterizer.
// The edges form closed loops of consistent winding and fill with the
// non-zero rule.
type EdgeList struct {
	Edges []Edge
}

// AddEdge implements Sink.
func (l *EdgeList) AddEdge(p0, p1 Point) {
	l.Edges = append(l.Edges, Edge{P0: p0, P1: p1})
}

// Len returns the number of collected edges.
func (l *EdgeList) Len() int {
	return len(l.Edges)
}

// Reset discards the collected edges, keeping the storage.
func (l *EdgeList) Reset() {
	l.Edges = l.Edges[:0]
}

// HitTest accumulates the winding number of the stroke outline around Point.
// Point is in raw path coordinates, the space ModeHitTest passes work in.
type HitTest struct {
	Point   Point
	winding int
}

// NewHitTest returns a hit test accumulator for p.
func NewHitTest(p Point) *HitTest {
	return &HitTest{Point: p}
}

// AddEdge implements Sink. It counts signed crossings of the horizontal
// ray from Point towards +X, using a half-open rule on Y so that shared
// vertices are counted once.
func (h *HitTest) AddEdge(p0, p1 Point) {
	y := h.Point.Y
	if p0.Y == p1.Y {
		return
	}
	dir := 1
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		dir = -1
	}
	if y < p0.Y || y >= p1.Y {
		return
	}
	x := p0.X + (y-p0.Y)*(p1.X-p0.X)/(p1.Y-p0.Y)
	if x > h.Point.X {
		h.winding += dir
	}
}

// Winding returns the accumulated winding number.
func (h *HitTest) Winding() int {
	return h.winding
}

// Hit reports whether Point lies inside the stroke under the non-zero rule.
func (h *HitTest) Hit() bool {
	return h.winding != 0
}
