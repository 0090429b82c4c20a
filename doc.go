// Package strokegeom converts stroked vector paths into polygon edges.
//
// A path of move, line and quadratic curve segments together with a
// stroke style (thickness, caps, joints, miter limit, scale mode, pixel
// hinting) is walked once per pass. Each pass feeds the edges of the
// stroke outline into a Sink: an Extent for bounding boxes, an EdgeList
// for a polygon fill rasterizer, or a HitTest for point-in-stroke queries.
//
// # Geometry
//
// Every straight segment contributes two parallel edges offset by the
// half width: the outer one forward and the inner one backward, so the
// outline of each subpath has a consistent winding and fills with the
// non-zero rule. Corners get a joint:
//   - JoinMiter: a sharp vertex, cut to a bevel where the spike would
//     exceed the miter limit
//   - JoinRound: an arc stepped at a fixed angular increment
//   - JoinBevel: straight edges across the corner
//
// Open subpath ends get caps (CapNone, CapSquare, CapRound). A subpath
// whose last point is exactly equal to its first point is a closed loop:
// it gets a joint at that point and no caps. The comparison is exact.
//
// # Width
//
// ComputeWidth derives the device-space half width from the thickness
// and the transform according to the scale mode. Strokes thinner than
// one device pixel are drawn one pixel wide with reduced coverage alpha;
// below a visibility floor a pass emits nothing and returns zero.
//
// # Collaborators
//
// Curve segments are handed to a CurveBuilder (FlatCurves by default).
// Axis-aligned device runs are nudged by an AxisSnapper (GridSnapper by
// default) unless pixel hinting quantizes every point. PathBuilder
// assembles common closed shapes.
//
// # Usage
//
//	p := strokegeom.NewPath()
//	p.MoveTo(0, 0)
//	p.LineTo(100, 0)
//	p.LineTo(100, 100)
//
//	style := strokegeom.DefaultStroke().WithThickness(4).WithJoints(strokegeom.JoinMiter)
//	r := strokegeom.NewLineRenderer(style, p)
//
//	edges, alpha := r.Edges(strokegeom.Identity())
//	if alpha == 0 {
//	    return // invisible
//	}
package strokegeom
