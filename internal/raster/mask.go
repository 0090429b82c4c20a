// Package raster fills solid stroke edges into coverage masks.
//
// It is the polygon fill stage behind strokegeom's solid passes: a Mask is
// a strokegeom.Sink, so a pass can write straight into it, and Draw turns
// the accumulated outline into an *image.Alpha with the pass alpha applied.
// Accumulation is done by golang.org/x/image/vector, which fills with the
// non-zero winding rule the stroke outlines are built for.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"golang.org/x/image/vector"

	"github.com/gogpu/strokegeom"
)

// Mask accumulates device-space edges over a pixel rectangle.
type Mask struct {
	bounds image.Rectangle
	ras    *vector.Rasterizer
	edges  int
}

// NewMask creates a mask covering bounds. Edge coordinates are in the
// same device space as bounds; nothing outside it is kept.
func NewMask(bounds image.Rectangle) *Mask {
	return &Mask{
		bounds: bounds,
		ras:    vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
	}
}

// Bounds returns the pixel rectangle of the mask.
func (m *Mask) Bounds() image.Rectangle {
	return m.bounds
}

// Edges returns the number of edges that reached the rasterizer.
func (m *Mask) Edges() int {
	return m.edges
}

// AddEdge implements strokegeom.Sink.
//
// Edges are clipped to the rows of the mask and folded onto its left and
// right borders. Both keep the winding of every pixel inside the mask.
func (m *Mask) AddEdge(p0, p1 strokegeom.Point) {
	w := float64(m.bounds.Dx())
	h := float64(m.bounds.Dy())
	ox := float64(m.bounds.Min.X)
	oy := float64(m.bounds.Min.Y)

	a := strokegeom.Pt(p0.X-ox, p0.Y-oy)
	b := strokegeom.Pt(p1.X-ox, p1.Y-oy)
	a, b, ok := clipRows(a, b, h)
	if !ok {
		return
	}

	// Split where the edge leaves the columns so that the outside parts
	// run along the border instead of bending the inside part.
	ts := make([]float64, 0, 4)
	ts = append(ts, 0)
	for _, x := range [2]float64{0, w} {
		if (a.X-x)*(b.X-x) < 0 {
			ts = append(ts, (x-a.X)/(b.X-a.X))
		}
	}
	ts = append(ts, 1)
	sort.Float64s(ts)

	m.ras.MoveTo(float32(clamp(a.X, 0, w)), float32(a.Y))
	for _, t := range ts[1:] {
		p := a.Lerp(b, t)
		m.ras.LineTo(float32(clamp(p.X, 0, w)), float32(p.Y))
	}
	m.edges++
}

// AddEdges adds every edge of a solid pass.
func (m *Mask) AddEdges(edges []strokegeom.Edge) {
	for _, e := range edges {
		m.AddEdge(e.P0, e.P1)
	}
}

// Draw renders the accumulated outline with coverage alpha in 1/256
// units, as returned by a strokegeom pass. The mask can be drawn once.
func (m *Mask) Draw(alpha int) *image.Alpha {
	dst := image.NewAlpha(m.bounds)
	if alpha <= 0 || m.edges == 0 {
		return dst
	}
	if alpha > 255 {
		alpha = 255
	}
	src := image.NewUniform(color.Alpha{A: uint8(alpha)})
	m.ras.DrawOp = draw.Src
	m.ras.Draw(dst, m.bounds, src, image.Point{})
	strokegeom.Logger().Debug("raster: mask drawn",
		"bounds", m.bounds, "edges", m.edges, "alpha", alpha)
	return dst
}

// Fill is a shortcut that rasterizes edges over bounds in one call.
func Fill(edges []strokegeom.Edge, alpha int, bounds image.Rectangle) *image.Alpha {
	m := NewMask(bounds)
	m.AddEdges(edges)
	return m.Draw(alpha)
}

// clipRows clips the segment a-b to 0 <= y <= h. Parts above or below
// the mask only change the winding of rows that are not drawn.
func clipRows(a, b strokegeom.Point, h float64) (strokegeom.Point, strokegeom.Point, bool) {
	if a.Y == b.Y {
		// Horizontal edges carry no winding.
		return a, b, false
	}
	if (a.Y < 0 && b.Y < 0) || (a.Y > h && b.Y > h) {
		return a, b, false
	}
	a = clipRow(a, b, 0, a.Y < 0)
	b = clipRow(b, a, 0, b.Y < 0)
	a = clipRow(a, b, h, a.Y > h)
	b = clipRow(b, a, h, b.Y > h)
	return a, b, true
}

// clipRow moves p along the line towards q onto y, when out is set.
func clipRow(p, q strokegeom.Point, y float64, out bool) strokegeom.Point {
	if !out {
		return p
	}
	t := (y - p.Y) / (q.Y - p.Y)
	return strokegeom.Pt(p.X+t*(q.X-p.X), y)
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
