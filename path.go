package strokegeom

import (
	"errors"
	"fmt"
	"math"
)

// Segment represents a single element in a path.
type Segment interface {
	isSegment()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// CurveTo draws a quadratic Bezier curve through Control to Point.
type CurveTo struct {
	Control Point
	Point   Point
}

func (CurveTo) isSegment() {}

// TileInfo carries the points of a tile command. Tiles are never stroked.
type TileInfo struct {
	Kind   Command
	Points []Point
}

func (TileInfo) isSegment() {}

// Path represents a vector path as a sequence of resolved segments.
type Path struct {
	segments []Segment
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segments: make([]Segment, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, LineTo{Point: pt})
	p.current = pt
}

// CurveTo draws a quadratic Bezier curve with control point (cx, cy) to (x, y).
func (p *Path) CurveTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, CurveTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// Close draws a line back to the exact start of the current subpath.
// The stroker sees the returning point and joins the ends instead of capping them.
func (p *Path) Close() {
	if p.current == p.start {
		return
	}
	p.segments = append(p.segments, LineTo{Point: p.start})
	p.current = p.start
}

// Append adds a segment as-is.
func (p *Path) Append(s Segment) {
	p.segments = append(p.segments, s)
	switch s := s.(type) {
	case MoveTo:
		p.start = s.Point
		p.current = s.Point
	case LineTo:
		p.current = s.Point
	case CurveTo:
		p.current = s.Point
	}
}

// Segments returns the segments of the path. The slice must not be modified.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// Current returns the current point.
func (p *Path) Current() Point {
	return p.current
}

// Transform returns a copy of the path with every point mapped through m.
// Tile points are transformed as well.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{
		segments: make([]Segment, len(p.segments)),
		start:    m.TransformPoint(p.start),
		current:  m.TransformPoint(p.current),
	}
	for i, s := range p.segments {
		out.segments[i] = mapSegment(s, m.TransformPoint)
	}
	return out
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return p.Transform(Identity())
}

// Bounds returns the bounding box of all stroked points of the path,
// including curve control points. Tile points are ignored.
func (p *Path) Bounds() Extent {
	var e Extent
	for _, s := range p.segments {
		switch s := s.(type) {
		case MoveTo:
			e.Add(s.Point)
		case LineTo:
			e.Add(s.Point)
		case CurveTo:
			e.Add(s.Control)
			e.Add(s.Point)
		}
	}
	return e
}

func mapSegment(s Segment, f func(Point) Point) Segment {
	switch s := s.(type) {
	case MoveTo:
		return MoveTo{Point: f(s.Point)}
	case LineTo:
		return LineTo{Point: f(s.Point)}
	case CurveTo:
		return CurveTo{Control: f(s.Control), Point: f(s.Point)}
	case TileInfo:
		pts := make([]Point, len(s.Points))
		for i, pt := range s.Points {
			pts[i] = f(pt)
		}
		return TileInfo{Kind: s.Kind, Points: pts}
	}
	return s
}

// Command is a path opcode in the raw dual-buffer form.
type Command uint8

// Path opcodes.
const (
	CmdBeginAt Command = iota
	CmdMoveTo
	CmdWideMoveTo
	CmdLineTo
	CmdWideLineTo
	CmdCurveTo
	CmdTile
	CmdTileTrans
	CmdTileCol
	CmdTileTransCol
)

var commandNames = [...]string{
	CmdBeginAt:      "BeginAt",
	CmdMoveTo:       "MoveTo",
	CmdWideMoveTo:   "WideMoveTo",
	CmdLineTo:       "LineTo",
	CmdWideLineTo:   "WideLineTo",
	CmdCurveTo:      "CurveTo",
	CmdTile:         "Tile",
	CmdTileTrans:    "TileTrans",
	CmdTileCol:      "TileCol",
	CmdTileTransCol: "TileTransCol",
}

var commandArity = [...]int{
	CmdBeginAt:      1,
	CmdMoveTo:       1,
	CmdWideMoveTo:   2,
	CmdLineTo:       1,
	CmdWideLineTo:   2,
	CmdCurveTo:      2,
	CmdTile:         3,
	CmdTileTrans:    4,
	CmdTileCol:      5,
	CmdTileTransCol: 6,
}

// String returns the opcode name.
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Arity returns the number of points the command consumes, or -1 if unknown.
func (c Command) Arity() int {
	if int(c) < len(commandArity) {
		return commandArity[c]
	}
	return -1
}

// Decoding errors.
var (
	// ErrUnknownCommand is returned for an opcode outside the known set.
	ErrUnknownCommand = errors.New("strokegeom: unknown path command")

	// ErrTruncated is returned when the point buffer ends inside a command.
	ErrTruncated = errors.New("strokegeom: point buffer truncated")
)

// Decode resolves parallel command and point buffers into a Path.
// Each command consumes Arity points from a shared cursor; wide variants
// drop their leading skip point. Extra trailing points are ignored.
func Decode(cmds []Command, points []Point) (*Path, error) {
	p := NewPath()
	cursor := 0
	for i, c := range cmds {
		n := c.Arity()
		if n < 0 {
			return nil, fmt.Errorf("command %d: %w: %v", i, ErrUnknownCommand, c)
		}
		if cursor+n > len(points) {
			return nil, fmt.Errorf("command %d (%v) needs %d points, %d left: %w",
				i, c, n, len(points)-cursor, ErrTruncated)
		}
		pts := points[cursor : cursor+n]
		cursor += n

		switch c {
		case CmdBeginAt, CmdMoveTo:
			p.Append(MoveTo{Point: pts[0]})
		case CmdWideMoveTo:
			p.Append(MoveTo{Point: pts[1]})
		case CmdLineTo:
			p.Append(LineTo{Point: pts[0]})
		case CmdWideLineTo:
			p.Append(LineTo{Point: pts[1]})
		case CmdCurveTo:
			p.Append(CurveTo{Control: pts[0], Point: pts[1]})
		default:
			p.Append(TileInfo{Kind: c, Points: append([]Point(nil), pts...)})
		}
	}
	Logger().Debug("strokegeom: decoded path",
		"commands", len(cmds), "points", cursor, "unused", len(points)-cursor)
	return p, nil
}

// DecodeFloats is Decode over a flat x0, y0, x1, y1, ... coordinate buffer.
func DecodeFloats(cmds []Command, coords []float64) (*Path, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("odd coordinate count %d: %w", len(coords), ErrTruncated)
	}
	points := make([]Point, len(coords)/2)
	for i := range points {
		x, y := coords[2*i], coords[2*i+1]
		if math.IsNaN(x) || math.IsNaN(y) {
			Logger().Warn("strokegeom: NaN coordinate in path buffer", "point", i)
		}
		points[i] = Pt(x, y)
	}
	return Decode(cmds, points)
}
