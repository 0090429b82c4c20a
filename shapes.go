// shapes.go

package strokegeom

import "math"

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// CurveTo draws a quadratic Bezier curve.
func (b *PathBuilder) CurveTo(cx, cy, x, y float64) *PathBuilder {
	b.path.CurveTo(cx, cy, x, y)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect adds a closed rectangle, clockwise in a y-down space.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.path.MoveTo(x, y)
	b.path.LineTo(x+w, y)
	b.path.LineTo(x+w, y+h)
	b.path.LineTo(x, y+h)
	b.path.Close()
	return b
}

// RoundRect adds a rectangle whose corners are quadratic curves
// with the control point on the sharp corner.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	r = max(0, min(r, min(w, h)/2))
	if r == 0 {
		return b.Rect(x, y, w, h)
	}

	b.path.MoveTo(x+r, y)
	b.path.LineTo(x+w-r, y)
	b.path.CurveTo(x+w, y, x+w, y+r)
	b.path.LineTo(x+w, y+h-r)
	b.path.CurveTo(x+w, y+h, x+w-r, y+h)
	b.path.LineTo(x+r, y+h)
	b.path.CurveTo(x, y+h, x, y+h-r)
	b.path.LineTo(x, y+r)
	b.path.CurveTo(x, y, x+r, y)
	return b
}

// ellipseArcs is the number of quadratic pieces per full ellipse.
const ellipseArcs = 8

// Circle adds a circle to the path.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds an axis-aligned ellipse built from quadratic curves.
// The last curve ends on the exact starting point so the outline closes.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	step := 2 * math.Pi / ellipseArcs
	k := 1 / math.Cos(step/2)

	start := Pt(cx+rx, cy)
	b.path.MoveTo(start.X, start.Y)
	for i := 1; i <= ellipseArcs; i++ {
		mid := (float64(i) - 0.5) * step
		ctrl := Pt(cx+k*rx*math.Cos(mid), cy+k*ry*math.Sin(mid))
		end := start
		if i < ellipseArcs {
			a := float64(i) * step
			end = Pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
		}
		b.path.CurveTo(ctrl.X, ctrl.Y, end.X, end.Y)
	}
	return b
}

// Polygon adds a regular polygon to the path.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2 // Start at top

	for i := 0; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			b.path.MoveTo(x, y)
		} else {
			b.path.LineTo(x, y)
		}
	}
	b.path.Close()
	return b
}

// Star adds a star shape to the path.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float64, points int) *PathBuilder {
	if points < 3 {
		return b
	}

	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2

	for i := 0; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			b.path.MoveTo(x, y)
		} else {
			b.path.LineTo(x, y)
		}
	}
	b.path.Close()
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
