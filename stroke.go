package strokegeom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned when a cap, joint or scale mode name is not recognised.
var ErrUnknownStyle = errors.New("strokegeom: unknown stroke style name")

// Cap specifies the shape of open subpath endpoints.
type Cap int

const (
	// CapNone ends the stroke flat at the endpoint (butt).
	CapNone Cap = iota
	// CapSquare extends the stroke by half its width past the endpoint.
	CapSquare
	// CapRound adds a half circle of radius half the stroke width.
	CapRound
)

// String returns the string representation of the cap.
func (c Cap) String() string {
	switch c {
	case CapNone:
		return "none"
	case CapSquare:
		return "square"
	case CapRound:
		return "round"
	default:
		return fmt.Sprintf("Cap(%d)", int(c))
	}
}

// Join specifies the shape of the corner between two segments.
type Join int

const (
	// JoinMiter extends the outer edges to a point, limited by the miter limit.
	JoinMiter Join = iota
	// JoinRound fills the corner with a circular arc.
	JoinRound
	// JoinBevel cuts the corner with a straight edge.
	JoinBevel
)

// String returns the string representation of the join.
func (j Join) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("Join(%d)", int(j))
	}
}

// ScaleMode specifies how the stroke width reacts to the active transform.
type ScaleMode int

const (
	// ScaleNone keeps the thickness in device units.
	ScaleNone ScaleMode = iota
	// ScaleNormal scales by the RMS scale of the transform.
	ScaleNormal
	// ScaleVertical scales by the norm of the first matrix row.
	ScaleVertical
	// ScaleHorizontal scales by the norm of the second matrix row.
	ScaleHorizontal
)

// String returns the string representation of the scale mode.
func (m ScaleMode) String() string {
	switch m {
	case ScaleNone:
		return "none"
	case ScaleNormal:
		return "normal"
	case ScaleVertical:
		return "vertical"
	case ScaleHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("ScaleMode(%d)", int(m))
	}
}

// Stroke is the style snapshot used for one tessellation pass.
// It is a plain value; the renderer keeps its own copy.
type Stroke struct {
	// Thickness is the full line width in path units.
	// Zero selects a one device pixel hairline.
	Thickness float64

	// Caps is the shape of open subpath endpoints.
	Caps Cap

	// Joints is the shape of corners between segments.
	Joints Join

	// MiterLimit bounds the miter spike, measured in half widths
	// along each outer edge, before a miter degrades to a bevel.
	MiterLimit float64

	// ScaleMode selects how Thickness reacts to the transform.
	ScaleMode ScaleMode

	// PixelHinting snaps every device point to a pixel center.
	PixelHinting bool
}

// DefaultStroke returns a Stroke with default settings:
// a 1 unit line with round caps and joints, miter limit 3, normal scaling.
func DefaultStroke() Stroke {
	return Stroke{
		Thickness:  1.0,
		Caps:       CapRound,
		Joints:     JoinRound,
		MiterLimit: 3.0,
		ScaleMode:  ScaleNormal,
	}
}

// WithThickness returns a copy of the Stroke with the given thickness.
func (s Stroke) WithThickness(t float64) Stroke {
	s.Thickness = t
	return s
}

// WithCaps returns a copy of the Stroke with the given cap style.
func (s Stroke) WithCaps(c Cap) Stroke {
	s.Caps = c
	return s
}

// WithJoints returns a copy of the Stroke with the given joint style.
func (s Stroke) WithJoints(j Join) Stroke {
	s.Joints = j
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithScaleMode returns a copy of the Stroke with the given scale mode.
func (s Stroke) WithScaleMode(m ScaleMode) Stroke {
	s.ScaleMode = m
	return s
}

// WithPixelHinting returns a copy of the Stroke with pixel hinting set.
func (s Stroke) WithPixelHinting(on bool) Stroke {
	s.PixelHinting = on
	return s
}

// ParseCap parses a cap name. "butt" is accepted as an alias of "none".
func ParseCap(name string) (Cap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "butt":
		return CapNone, nil
	case "square":
		return CapSquare, nil
	case "round":
		return CapRound, nil
	}
	return CapNone, fmt.Errorf("cap %q: %w", name, ErrUnknownStyle)
}

// ParseJoin parses a joint name.
func ParseJoin(name string) (Join, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "miter":
		return JoinMiter, nil
	case "round":
		return JoinRound, nil
	case "bevel":
		return JoinBevel, nil
	}
	return JoinMiter, fmt.Errorf("joint %q: %w", name, ErrUnknownStyle)
}

// ParseScaleMode parses a scale mode name.
func ParseScaleMode(name string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return ScaleNone, nil
	case "normal":
		return ScaleNormal, nil
	case "vertical":
		return ScaleVertical, nil
	case "horizontal":
		return ScaleHorizontal, nil
	}
	return ScaleNone, fmt.Errorf("scale mode %q: %w", name, ErrUnknownStyle)
}
