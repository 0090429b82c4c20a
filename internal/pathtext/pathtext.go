// Package pathtext reads stroke paths from a small text format.
//
// A path is a sequence of commands with absolute coordinates. Numbers are
// separated by blanks or commas, and '#' starts a comment:
//
//	M x y              move to
//	L x y              line to
//	Q cx cy x y        quadratic curve through (cx, cy) to (x, y)
//	Z                  line back to the exact first point of the subpath
//	T kind x y ...     tile command; kind is tile, tiletrans, tilecol or
//	                   tiletranscol and takes 3, 4, 5 or 6 points
//
// Command letters and tile kinds are case-insensitive.
package pathtext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gogpu/strokegeom"
)

var (
	// ErrUnknownTile is returned for a tile kind that is not recognised.
	ErrUnknownTile = errors.New("pathtext: unknown tile kind")

	// ErrTileArity is returned when a tile has the wrong number of points.
	ErrTileArity = errors.New("pathtext: wrong number of tile points")
)

var (
	pathLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n,]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`},
		{Name: "Ident", Pattern: `[A-Za-z]+`},
	})

	pathParser = participle.MustBuild[File](
		participle.Lexer(pathLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.CaseInsensitive("Ident"),
	)
)

// File is the root of a parsed path text.
type File struct {
	Commands []*Command `parser:"@@*"`
}

// Command is a single path command.
type Command struct {
	Pos lexer.Position

	Move  *Pair `parser:"  'M' @@"`
	Line  *Pair `parser:"| 'L' @@"`
	Curve *Quad `parser:"| 'Q' @@"`
	Close bool  `parser:"| @'Z'"`
	Tile  *Tile `parser:"| 'T' @@"`
}

// Pair is a point.
type Pair struct {
	X float64 `parser:"@Number"`
	Y float64 `parser:"@Number"`
}

// Point converts the pair to a strokegeom point.
func (p Pair) Point() strokegeom.Point {
	return strokegeom.Pt(p.X, p.Y)
}

// Quad holds the control and end points of a curve.
type Quad struct {
	Control Pair `parser:"@@"`
	End     Pair `parser:"@@"`
}

// Tile holds a tile command and its points.
type Tile struct {
	Kind   string `parser:"@Ident"`
	Points []Pair `parser:"@@*"`
}

var tileKinds = map[string]strokegeom.Command{
	"tile":         strokegeom.CmdTile,
	"tiletrans":    strokegeom.CmdTileTrans,
	"tilecol":      strokegeom.CmdTileCol,
	"tiletranscol": strokegeom.CmdTileTransCol,
}

// Parse reads path text from r. The name is used in error positions.
func Parse(name string, r io.Reader) (*strokegeom.Path, error) {
	f, err := pathParser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("pathtext: %w", err)
	}
	return f.Path()
}

// ParseString reads path text from s.
func ParseString(s string) (*strokegeom.Path, error) {
	f, err := pathParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("pathtext: %w", err)
	}
	return f.Path()
}

// Path builds the strokegeom path described by f.
func (f *File) Path() (*strokegeom.Path, error) {
	p := strokegeom.NewPath()
	for _, c := range f.Commands {
		switch {
		case c.Move != nil:
			p.MoveTo(c.Move.X, c.Move.Y)
		case c.Line != nil:
			p.LineTo(c.Line.X, c.Line.Y)
		case c.Curve != nil:
			p.CurveTo(c.Curve.Control.X, c.Curve.Control.Y, c.Curve.End.X, c.Curve.End.Y)
		case c.Close:
			p.Close()
		case c.Tile != nil:
			seg, err := c.Tile.segment()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.Pos, err)
			}
			p.Append(seg)
		}
	}
	strokegeom.Logger().Debug("pathtext: parsed path",
		"commands", len(f.Commands), "segments", p.Len())
	return p, nil
}

func (t *Tile) segment() (strokegeom.TileInfo, error) {
	kind, ok := tileKinds[strings.ToLower(t.Kind)]
	if !ok {
		return strokegeom.TileInfo{}, fmt.Errorf("%w: %q", ErrUnknownTile, t.Kind)
	}
	if n := kind.Arity(); len(t.Points) != n {
		return strokegeom.TileInfo{}, fmt.Errorf("%v takes %d points, got %d: %w",
			kind, n, len(t.Points), ErrTileArity)
	}
	pts := make([]strokegeom.Point, len(t.Points))
	for i, pt := range t.Points {
		pts[i] = pt.Point()
	}
	return strokegeom.TileInfo{Kind: kind, Points: pts}, nil
}
