package strokegeom

import "math"

const (
	// HairlineHalfWidth is the half width of a one device pixel line.
	HairlineHalfWidth = 0.5

	// FullAlpha is the coverage of a stroke at least one device pixel wide.
	FullAlpha = 256

	// MinAlpha is the visibility floor. Strokes whose coverage falls
	// below it produce no geometry at all.
	MinAlpha = 10
)

// Width is the device-space half width of a stroke for one pass.
type Width struct {
	// PerpLen is the length of the perpendicular offsets, after clamping
	// to HairlineHalfWidth.
	PerpLen float64

	// Step is the angular increment used when stepping round joints and caps.
	Step float64

	// Alpha is the coverage in 1/256 units: FullAlpha for wide strokes,
	// proportional to the missing width for sub-pixel ones.
	Alpha int
}

// Visible reports whether the stroke contributes any geometry.
func (w Width) Visible() bool {
	return w.Alpha >= MinAlpha
}

// ComputeWidth derives the half width, arc step and coverage of s under m.
//
// A zero thickness is a hairline and ignores the transform. Narrower than
// one device pixel, the width is clamped and the lost width is returned as
// reduced alpha. The arc step is derived from the unclamped half width.
func ComputeWidth(s Stroke, m Matrix) Width {
	perpLen := s.Thickness
	if perpLen == 0 {
		perpLen = HairlineHalfWidth
	} else if perpLen >= 0 {
		perpLen *= 0.5
		switch s.ScaleMode {
		case ScaleNormal:
			perpLen *= m.NormalScale()
		case ScaleVertical:
			perpLen *= m.RowScale(0)
		case ScaleHorizontal:
			perpLen *= m.RowScale(1)
		}
	}

	w := Width{
		PerpLen: perpLen,
		Step:    math.Pi / perpLen,
		Alpha:   FullAlpha,
	}
	if perpLen < HairlineHalfWidth || math.IsNaN(perpLen) {
		w.Alpha = 0
		if perpLen > 0 {
			w.Alpha = int(512 * perpLen)
		}
		w.PerpLen = HairlineHalfWidth
	}
	return w
}
