package strokegeom

// Option configures a LineRenderer during creation.
//
// Example:
//
//	// Default collaborators
//	r := strokegeom.NewLineRenderer(style, path)
//
//	// Finer curve flattening, no axis snapping
//	r := strokegeom.NewLineRenderer(style, path,
//	    strokegeom.WithCurveBuilder(strokegeom.FlatCurves{Tolerance: 0.05}),
//	    strokegeom.WithAxisSnapper(nil))
type Option func(*options)

// options holds optional configuration for LineRenderer creation.
type options struct {
	curves     CurveBuilder
	snapper    AxisSnapper
	snapperSet bool
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		curves: FlatCurves{Tolerance: DefaultCurveTolerance},
	}
}

// WithCurveBuilder sets the collaborator that builds offset geometry for
// quadratic curve segments. A nil builder keeps the default.
func WithCurveBuilder(c CurveBuilder) Option {
	return func(o *options) {
		if c != nil {
			o.curves = c
		}
	}
}

// WithAxisSnapper sets the helper that nudges axis-aligned device-space
// runs when pixel hinting is off. Passing nil disables snapping.
// Without this option a GridSnapper matched to the stroke width is used.
func WithAxisSnapper(s AxisSnapper) Option {
	return func(o *options) {
		o.snapper = s
		o.snapperSet = true
	}
}
