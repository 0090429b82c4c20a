package strokegeom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathBuilding(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.CurveTo(15, 5, 10, 10)
	p.Close()

	want := []Segment{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(10, 0)},
		CurveTo{Control: Pt(15, 5), Point: Pt(10, 10)},
		LineTo{Point: Pt(0, 0)},
	}
	if diff := cmp.Diff(want, p.Segments()); diff != "" {
		t.Errorf("Segments() mismatch (-want +got):\n%s", diff)
	}
	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
	if p.Current() != Pt(0, 0) {
		t.Errorf("Current() = %v, want (0, 0)", p.Current())
	}
}

func TestPathCloseAlreadyClosed(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(5, 1)
	p.LineTo(1, 1)
	p.Close()
	if p.Len() != 3 {
		t.Errorf("Len() = %d after redundant Close, want 3", p.Len())
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.CurveTo(3, 4, 5, 6)
	p.Append(TileInfo{Kind: CmdTile, Points: []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3)}})

	got := p.Transform(Scale(2, 10))
	want := []Segment{
		MoveTo{Point: Pt(2, 20)},
		CurveTo{Control: Pt(6, 40), Point: Pt(10, 60)},
		TileInfo{Kind: CmdTile, Points: []Point{Pt(2, 10), Pt(4, 20), Pt(6, 30)}},
	}
	if diff := cmp.Diff(want, got.Segments()); diff != "" {
		t.Errorf("Transform() mismatch (-want +got):\n%s", diff)
	}
	// The source path keeps its coordinates.
	if s := p.Segments()[0].(MoveTo); s.Point != Pt(1, 2) {
		t.Errorf("source path modified: %v", s.Point)
	}
	if tile := p.Segments()[2].(TileInfo); tile.Points[0] != Pt(1, 1) {
		t.Errorf("source tile modified: %v", tile.Points)
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	if !p.Bounds().Empty() {
		t.Error("empty path has non-empty bounds")
	}
	p.MoveTo(1, 2)
	p.CurveTo(-3, 8, 5, 6)
	p.Append(TileInfo{Kind: CmdTile, Points: []Point{Pt(100, 100)}})

	b := p.Bounds()
	if b.Min != Pt(-3, 2) || b.Max != Pt(5, 8) {
		t.Errorf("Bounds() = %v..%v, want (-3, 2)..(5, 8)", b.Min, b.Max)
	}
}

func TestCommandArity(t *testing.T) {
	tests := []struct {
		cmd   Command
		arity int
		name  string
	}{
		{CmdBeginAt, 1, "BeginAt"},
		{CmdMoveTo, 1, "MoveTo"},
		{CmdWideMoveTo, 2, "WideMoveTo"},
		{CmdLineTo, 1, "LineTo"},
		{CmdWideLineTo, 2, "WideLineTo"},
		{CmdCurveTo, 2, "CurveTo"},
		{CmdTile, 3, "Tile"},
		{CmdTileTrans, 4, "TileTrans"},
		{CmdTileCol, 5, "TileCol"},
		{CmdTileTransCol, 6, "TileTransCol"},
		{Command(42), -1, "Command(42)"},
	}
	for _, tt := range tests {
		if got := tt.cmd.Arity(); got != tt.arity {
			t.Errorf("%v.Arity() = %d, want %d", tt.cmd, got, tt.arity)
		}
		if got := tt.cmd.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestDecode(t *testing.T) {
	cmds := []Command{CmdBeginAt, CmdWideLineTo, CmdCurveTo, CmdTile, CmdWideMoveTo, CmdLineTo}
	points := []Point{
		Pt(0, 0),                     // BeginAt
		Pt(-1, -1), Pt(10, 0),        // WideLineTo
		Pt(15, 5), Pt(10, 10),        // CurveTo
		Pt(1, 1), Pt(2, 2), Pt(3, 3), // Tile
		Pt(-9, -9), Pt(20, 20),       // WideMoveTo
		Pt(30, 20),                   // LineTo
		Pt(99, 99),                   // unused
	}
	p, err := Decode(cmds, points)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []Segment{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(10, 0)},
		CurveTo{Control: Pt(15, 5), Point: Pt(10, 10)},
		TileInfo{Kind: CmdTile, Points: []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3)}},
		MoveTo{Point: Pt(20, 20)},
		LineTo{Point: Pt(30, 20)},
	}
	if diff := cmp.Diff(want, p.Segments()); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTilePointsAreCopied(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	p, err := Decode([]Command{CmdMoveTo, CmdTile}, points)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	points[1] = Pt(42, 42)
	if tile := p.Segments()[1].(TileInfo); tile.Points[0] != Pt(1, 1) {
		t.Errorf("tile aliases the input buffer: %v", tile.Points)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		cmds   []Command
		points []Point
		want   error
	}{
		{"truncated line", []Command{CmdMoveTo, CmdLineTo}, []Point{Pt(0, 0)}, ErrTruncated},
		{"truncated tile", []Command{CmdTileTransCol}, make([]Point, 5), ErrTruncated},
		{"truncated wide move", []Command{CmdWideMoveTo}, make([]Point, 1), ErrTruncated},
		{"unknown", []Command{CmdMoveTo, Command(200)}, make([]Point, 4), ErrUnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(tt.cmds, tt.points)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
			if p != nil {
				t.Errorf("Decode() path = %v, want nil", p)
			}
		})
	}
}

func TestDecodeFloats(t *testing.T) {
	p, err := DecodeFloats([]Command{CmdMoveTo, CmdLineTo}, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("DecodeFloats() error = %v", err)
	}
	want := []Segment{MoveTo{Point: Pt(1, 2)}, LineTo{Point: Pt(3, 4)}}
	if diff := cmp.Diff(want, p.Segments()); diff != "" {
		t.Errorf("DecodeFloats() mismatch (-want +got):\n%s", diff)
	}

	if _, err := DecodeFloats([]Command{CmdMoveTo}, []float64{1, 2, 3}); !errors.Is(err, ErrTruncated) {
		t.Errorf("odd buffer error = %v, want ErrTruncated", err)
	}
}
