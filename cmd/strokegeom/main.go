// Command strokegeom strokes a path read from text and reports the result.
//
// Usage:
//
//	strokegeom [flags] [file]
//
// The path is read from file, or from standard input when no file is given
// (see internal/pathtext for the format). Depending on -mode it prints the
// device-space extent of the stroke, the number of solid edges, or whether
// the -at point hits the stroke. With -png the solid edges are filled into
// a grayscale coverage mask.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/strokegeom"
	"github.com/gogpu/strokegeom/internal/pathtext"
	"github.com/gogpu/strokegeom/internal/raster"
)

func main() {
	flagCfg := defaultConfig()
	transform := flagCfg.bindFlags(flag.CommandLine)
	var (
		configFile = flag.String("config", "", "TOML file with stroke settings; explicit flags win")
		mode       = flag.String("mode", "extent", "pass to run: extent, solid, hittest")
		at         = flag.String("at", "0,0", "path-space point x,y for -mode hittest")
		output     = flag.String("png", "", "write the filled stroke as a PNG coverage mask")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	strokegeom.SetLogger(logger)

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	cfg, err := resolveConfig(*configFile, flagCfg, *transform, set)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	style, err := cfg.style()
	if err != nil {
		log.Fatalf("style: %v", err)
	}
	m, err := cfg.matrix()
	if err != nil {
		log.Fatalf("transform: %v", err)
	}
	path, err := readPath(flag.Arg(0))
	if err != nil {
		log.Fatalf("path: %v", err)
	}
	slog.Debug("stroke configured",
		"thickness", style.Thickness, "caps", style.Caps, "joints", style.Joints,
		"scale_mode", style.ScaleMode, "matrix", cfg.Transform)

	r := strokegeom.NewLineRenderer(style, path)
	switch *mode {
	case "extent":
		e, alpha := r.Extent(m)
		if alpha == 0 {
			fmt.Println("invisible")
			break
		}
		fmt.Printf("extent %v %v size %gx%g alpha %d\n", e.Min, e.Max, e.Width(), e.Height(), alpha)
	case "solid":
		edges, alpha := r.Edges(m)
		fmt.Printf("edges %d alpha %d\n", len(edges), alpha)
	case "hittest":
		pt, err := parsePoint(*at)
		if err != nil {
			log.Fatalf("at: %v", err)
		}
		fmt.Printf("hit %v\n", r.HitTestPoint(m, pt))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	if *output != "" {
		if err := writeMask(r, m, *output); err != nil {
			log.Fatalf("png: %v", err)
		}
		slog.Info("mask written", "file", *output)
	}
}

func parseStyle(thickness float64, caps, joints string, miter float64, scaleMode string, hinting bool) (strokegeom.Stroke, error) {
	c, err := strokegeom.ParseCap(caps)
	if err != nil {
		return strokegeom.Stroke{}, err
	}
	j, err := strokegeom.ParseJoin(joints)
	if err != nil {
		return strokegeom.Stroke{}, err
	}
	sm, err := strokegeom.ParseScaleMode(scaleMode)
	if err != nil {
		return strokegeom.Stroke{}, err
	}
	return strokegeom.DefaultStroke().
		WithThickness(thickness).
		WithCaps(c).
		WithJoints(j).
		WithMiterLimit(miter).
		WithScaleMode(sm).
		WithPixelHinting(hinting), nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parsePoint(s string) (strokegeom.Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return strokegeom.Point{}, err
	}
	return strokegeom.Pt(v[0], v[1]), nil
}

func readPath(name string) (*strokegeom.Path, error) {
	var r io.Reader = os.Stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}
	return pathtext.Parse(name, r)
}

// writeMask fills the stroke into a mask covering its extent plus one pixel.
func writeMask(r *strokegeom.LineRenderer, m strokegeom.Matrix, name string) error {
	e, alpha := r.Extent(m)
	if alpha == 0 || e.Empty() {
		return fmt.Errorf("stroke is invisible")
	}
	bounds := image.Rect(
		int(math.Floor(e.Min.X))-1, int(math.Floor(e.Min.Y))-1,
		int(math.Ceil(e.Max.X))+1, int(math.Ceil(e.Max.Y))+1,
	)
	mask := raster.NewMask(bounds)
	alpha = r.Iterate(strokegeom.ModeSolid, m, mask)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, mask.Draw(alpha)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
