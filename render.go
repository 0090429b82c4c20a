package strokegeom

import "math"

// maxArcSteps bounds the number of edges a single round joint or cap may emit.
const maxArcSteps = 4096

// LineRenderer tessellates one stroked path.
//
// It is read-only after construction. Every Iterate call builds its own
// traversal state, so one renderer may serve concurrent passes as long as
// each pass has its own Sink.
type LineRenderer struct {
	stroke Stroke
	path   *Path
	opts   options
}

// NewLineRenderer creates a renderer for path stroked with style.
// The path is expected in path space; Iterate maps it to device space.
func NewLineRenderer(style Stroke, path *Path, opts ...Option) *LineRenderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if path == nil {
		path = NewPath()
	}
	return &LineRenderer{stroke: style, path: path, opts: o}
}

// Stroke returns the style snapshot.
func (r *LineRenderer) Stroke() Stroke {
	return r.stroke
}

// Path returns the path-space path.
func (r *LineRenderer) Path() *Path {
	return r.path
}

// Iterate runs one tessellation pass, feeding edges for the stroke outline
// into sink.
//
// Extent and solid passes work on the path transformed by m and aligned
// for crisp lines. Hit-test passes work on the raw path coordinates, with
// the half width still derived from m.
//
// The result is the coverage alpha in 1/256 units. Zero means the stroke
// is too thin to be visible and nothing was emitted; it is not an error.
func (r *LineRenderer) Iterate(mode Mode, m Matrix, sink Sink) int {
	w := ComputeWidth(r.stroke, m)
	if !w.Visible() {
		Logger().Debug("strokegeom: stroke below visibility floor",
			"mode", mode, "thickness", r.stroke.Thickness, "alpha", w.Alpha)
		return 0
	}

	segs := r.path.Segments()
	if mode != ModeHitTest {
		dev := r.path.Transform(m)
		alignPoints(dev.segments, r.stroke.PixelHinting, r.snapper(w))
		segs = dev.segments
	}

	ps := newPass(r.stroke, w, mode, r.opts.curves, sink)
	ps.run(segs)

	Logger().Debug("strokegeom: stroke pass",
		"mode", mode, "segments", len(segs), "edges", ps.edges,
		"perp_len", w.PerpLen, "alpha", w.Alpha)
	return w.Alpha
}

// snapper returns the axis snapper for a pass of width w.
func (r *LineRenderer) snapper(w Width) AxisSnapper {
	if r.opts.snapperSet {
		return r.opts.snapper
	}
	return NewGridSnapper(w.PerpLen)
}

// Extent returns the device-space bounding box of the stroke under m
// and the pass alpha. The extent is empty when alpha is zero.
func (r *LineRenderer) Extent(m Matrix) (Extent, int) {
	var e Extent
	alpha := r.Iterate(ModeExtent, m, &e)
	return e, alpha
}

// Edges returns the device-space solid edges of the stroke under m
// and the pass alpha.
func (r *LineRenderer) Edges(m Matrix) ([]Edge, int) {
	var l EdgeList
	alpha := r.Iterate(ModeSolid, m, &l)
	return l.Edges, alpha
}

// HitTestPoint reports whether pt, given in path coordinates, lies on the
// stroke drawn under m. Invisible strokes are never hit.
func (r *LineRenderer) HitTestPoint(m Matrix, pt Point) bool {
	h := NewHitTest(pt)
	if r.Iterate(ModeHitTest, m, h) == 0 {
		return false
	}
	return h.Hit()
}

// curveFunc is the signature shared by the CurveBuilder methods.
type curveFunc func(sink Sink, p0, ctrl, p2 Point, perpLen float64, perp0, perp2 Point)

// pass is the traversal state of one Iterate call.
type pass struct {
	sink    Sink
	curve   curveFunc
	joints  Join
	caps    Cap
	miter   float64
	perpLen float64
	step    float64

	// Subpath state. points is 0 before any point, 1 with a start point
	// and no segment yet, and counts built segments plus one after that.
	first     Point
	firstPerp Point
	prev      Point
	prevPerp  Point
	points    int

	edges int
}

func newPass(s Stroke, w Width, mode Mode, curves CurveBuilder, sink Sink) *pass {
	ps := &pass{
		sink:    sink,
		joints:  s.Joints,
		caps:    s.Caps,
		miter:   s.MiterLimit,
		perpLen: w.PerpLen,
		step:    w.Step,
	}
	if !(ps.step >= math.Pi/maxArcSteps) {
		ps.step = math.Pi / maxArcSteps
	}
	switch mode {
	case ModeExtent:
		ps.curve = curves.CurveExtent
	case ModeHitTest:
		ps.curve = curves.HitTestCurve
	default:
		ps.curve = curves.BuildCurve
	}
	return ps
}

func (ps *pass) edge(p0, p1 Point) {
	ps.sink.AddEdge(p0, p1)
	ps.edges++
}

func (ps *pass) run(segs []Segment) {
	for _, s := range segs {
		switch s := s.(type) {
		case MoveTo:
			ps.moveTo(s.Point)
		case LineTo:
			ps.lineTo(s.Point)
		case CurveTo:
			ps.curveTo(s.Control, s.Point)
		case TileInfo:
			// Tiles only consume points.
		}
	}
	ps.finishSubpath(false)
}

func (ps *pass) moveTo(p Point) {
	if ps.points == 1 && ps.prev == p {
		return
	}
	ps.finishSubpath(true)
	ps.first = p
	ps.prev = p
	ps.points = 1
}

// finishSubpath ends the current subpath. On a move, a subpath of more
// than two points that returned exactly to its first point is joined
// there; every other subpath with a segment gets a cap at each end.
func (ps *pass) finishSubpath(atMove bool) {
	if ps.points < 2 {
		return
	}
	if atMove && ps.points > 2 && ps.prev == ps.first {
		ps.joint(ps.first, ps.prevPerp, ps.firstPerp)
	} else {
		ps.endCap(ps.first, ps.firstPerp.Neg())
		ps.endCap(ps.prev, ps.prevPerp)
	}
	ps.points = 1
}

func (ps *pass) lineTo(p Point) {
	if ps.points == 0 {
		ps.moveTo(p)
		return
	}
	if p == ps.prev {
		return
	}

	perp := p.Sub(ps.prev).PerpLen(ps.perpLen)
	ps.enter(perp)

	// Outer edge forward, inner edge backward.
	ps.edge(ps.prev.Add(perp), p.Add(perp))
	ps.edge(p.Sub(perp), ps.prev.Sub(perp))

	ps.advance(p, perp)
}

func (ps *pass) curveTo(ctrl, p Point) {
	if ps.points == 0 {
		ps.moveTo(p)
		return
	}
	if ctrl == ps.prev && p == ps.prev {
		return
	}

	// The trajectory leaves along ctrl-prev and arrives along p-ctrl.
	// A control point on an end point leaves only the chord for that end.
	g0 := ctrl.Sub(ps.prev)
	g2 := p.Sub(ctrl)
	if g0 == (Point{}) {
		g0 = p.Sub(ps.prev)
	}
	if g2 == (Point{}) {
		g2 = p.Sub(ps.prev)
	}
	perp := g0.PerpLen(ps.perpLen)
	perpEnd := g2.PerpLen(ps.perpLen)

	ps.enter(perp)
	ps.curve(ps, ps.prev, ctrl, p, ps.perpLen, perp, perpEnd)
	ps.advance(p, perpEnd)
}

// AddEdge lets a pass act as the sink handed to curve builders,
// so their edges are counted with the rest.
func (ps *pass) AddEdge(p0, p1 Point) {
	ps.edge(p0, p1)
}

// enter connects a new segment leaving prev with perpendicular perp.
func (ps *pass) enter(perp Point) {
	if ps.points > 1 {
		ps.joint(ps.prev, ps.prevPerp, perp)
	} else {
		ps.firstPerp = perp
	}
}

// advance moves to the end p of a built segment and closes the loop
// implicitly when p is exactly the subpath's first point.
func (ps *pass) advance(p, perp Point) {
	ps.prev = p
	ps.prevPerp = perp
	ps.points++
	if ps.points > 2 && p == ps.first {
		ps.joint(ps.first, ps.prevPerp, ps.firstPerp)
		ps.points = 1
	}
}
