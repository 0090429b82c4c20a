package strokegeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestComputeWidth(t *testing.T) {
	tests := []struct {
		name      string
		thickness float64
		mode      ScaleMode
		m         Matrix
		want      Width
	}{
		{
			name: "identity normal", thickness: 2, mode: ScaleNormal, m: Identity(),
			want: Width{PerpLen: 1, Step: math.Pi, Alpha: FullAlpha},
		},
		{
			name: "hairline", thickness: 0, mode: ScaleNormal, m: Scale(10, 10),
			want: Width{PerpLen: 0.5, Step: 2 * math.Pi, Alpha: FullAlpha},
		},
		{
			name: "uniform scale", thickness: 2, mode: ScaleNormal, m: Scale(2, 2),
			want: Width{PerpLen: 2, Step: math.Pi / 2, Alpha: FullAlpha},
		},
		{
			name: "rotation keeps width", thickness: 4, mode: ScaleNormal, m: Rotate(1.1),
			want: Width{PerpLen: 2, Step: math.Pi / 2, Alpha: FullAlpha},
		},
		{
			name: "no scaling", thickness: 2, mode: ScaleNone, m: Scale(4, 4),
			want: Width{PerpLen: 1, Step: math.Pi, Alpha: FullAlpha},
		},
		{
			name: "vertical uses first row", thickness: 2, mode: ScaleVertical, m: Scale(3, 1),
			want: Width{PerpLen: 3, Step: math.Pi / 3, Alpha: FullAlpha},
		},
		{
			name: "horizontal uses second row", thickness: 2, mode: ScaleHorizontal, m: Scale(3, 1),
			want: Width{PerpLen: 1, Step: math.Pi, Alpha: FullAlpha},
		},
		{
			name: "sub-pixel", thickness: 0.4, mode: ScaleNone, m: Identity(),
			want: Width{PerpLen: 0.5, Step: 5 * math.Pi, Alpha: 102},
		},
		{
			name: "sub-pixel by transform", thickness: 2, mode: ScaleNormal, m: Scale(0.25, 0.25),
			want: Width{PerpLen: 0.5, Step: 4 * math.Pi, Alpha: 128},
		},
		{
			name: "exactly one pixel", thickness: 1, mode: ScaleNone, m: Identity(),
			want: Width{PerpLen: 0.5, Step: 2 * math.Pi, Alpha: FullAlpha},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStroke().WithThickness(tt.thickness).WithScaleMode(tt.mode)
			got := ComputeWidth(s, tt.m)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("ComputeWidth() mismatch (-want +got):\n%s", diff)
			}
			if !got.Visible() {
				t.Errorf("Visible() = false for alpha %d", got.Alpha)
			}
		})
	}
}

func TestComputeWidthInvisible(t *testing.T) {
	tests := []struct {
		name      string
		thickness float64
		want      int
	}{
		{"very thin", 0.02, 5},
		{"just under the floor", 0.038, 9},
		{"negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStroke().WithThickness(tt.thickness).WithScaleMode(ScaleNone)
			w := ComputeWidth(s, Identity())
			if w.Alpha != tt.want {
				t.Errorf("Alpha = %d, want %d", w.Alpha, tt.want)
			}
			if w.Visible() {
				t.Error("Visible() = true, want false")
			}
			if w.PerpLen != HairlineHalfWidth {
				t.Errorf("PerpLen = %v, want %v", w.PerpLen, HairlineHalfWidth)
			}
		})
	}
}

func TestComputeWidthFloor(t *testing.T) {
	// 512 * 0.01 = 5.12, well under MinAlpha; 512 * 0.02 = 10.24 is visible.
	thin := ComputeWidth(DefaultStroke().WithThickness(0.02).WithScaleMode(ScaleNone), Identity())
	if thin.Visible() {
		t.Errorf("perp 0.01: Visible() = true (alpha %d)", thin.Alpha)
	}
	edge := ComputeWidth(DefaultStroke().WithThickness(0.04).WithScaleMode(ScaleNone), Identity())
	if edge.Alpha != 10 || !edge.Visible() {
		t.Errorf("perp 0.02: alpha = %d visible = %v, want 10 true", edge.Alpha, edge.Visible())
	}
}
