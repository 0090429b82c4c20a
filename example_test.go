package strokegeom_test

import (
	"fmt"

	"github.com/gogpu/strokegeom"
)

func ExampleLineRenderer_Extent() {
	p := strokegeom.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 10)
	p.Close()

	style := strokegeom.DefaultStroke().
		WithThickness(2).
		WithJoints(strokegeom.JoinMiter)
	r := strokegeom.NewLineRenderer(style, p)

	e, alpha := r.Extent(strokegeom.Identity())
	fmt.Println(e.Min, e.Max, alpha)
	// Output: (-1, -1) (11, 11) 256
}

func ExampleLineRenderer_HitTestPoint() {
	p := strokegeom.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)

	r := strokegeom.NewLineRenderer(strokegeom.DefaultStroke().WithThickness(4), p)
	fmt.Println(r.HitTestPoint(strokegeom.Identity(), strokegeom.Pt(50, 1.5)))
	fmt.Println(r.HitTestPoint(strokegeom.Identity(), strokegeom.Pt(50, 3)))
	// Output:
	// true
	// false
}
