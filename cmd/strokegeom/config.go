package main

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/strokegeom"
)

// config is the stroke setup, read from a TOML file and the command line.
//
//	thickness = 4
//	cap = "square"
//	join = "miter"
//	miter_limit = 2
//	scale_mode = "normal"
//	hinting = false
//	transform = [2, 0, 10, 0, 2, 10]
type config struct {
	Thickness  float64   `toml:"thickness"`
	Cap        string    `toml:"cap"`
	Join       string    `toml:"join"`
	MiterLimit float64   `toml:"miter_limit"`
	ScaleMode  string    `toml:"scale_mode"`
	Hinting    bool      `toml:"hinting"`
	Transform  []float64 `toml:"transform"`
}

func defaultConfig() config {
	return config{
		Thickness:  1,
		Cap:        "round",
		Join:       "round",
		MiterLimit: 3,
		ScaleMode:  "normal",
		Transform:  []float64{1, 0, 0, 0, 1, 0},
	}
}

// bindFlags registers the config fields on fs with the current values as defaults.
func (c *config) bindFlags(fs *flag.FlagSet) *string {
	fs.Float64Var(&c.Thickness, "thickness", c.Thickness, "stroke thickness in path units (0 = hairline)")
	fs.StringVar(&c.Cap, "cap", c.Cap, "cap style: none, square, round")
	fs.StringVar(&c.Join, "join", c.Join, "joint style: miter, round, bevel")
	fs.Float64Var(&c.MiterLimit, "miter", c.MiterLimit, "miter limit")
	fs.StringVar(&c.ScaleMode, "scale-mode", c.ScaleMode, "width scaling: none, normal, vertical, horizontal")
	fs.BoolVar(&c.Hinting, "hint", c.Hinting, "snap device points to pixel centres")
	return fs.String("transform", "", "affine matrix a,b,c,d,e,f")
}

// loadConfig decodes a TOML file over c. Keys missing from the file keep
// their current values; unknown keys are an error.
func loadConfig(name string, c *config) error {
	md, err := toml.DecodeFile(name, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", name, undecoded[0].String())
	}
	return nil
}

func (c config) style() (strokegeom.Stroke, error) {
	return parseStyle(c.Thickness, c.Cap, c.Join, c.MiterLimit, c.ScaleMode, c.Hinting)
}

func (c config) matrix() (strokegeom.Matrix, error) {
	v := c.Transform
	if len(v) != 6 {
		return strokegeom.Matrix{}, fmt.Errorf("transform wants 6 numbers, got %d", len(v))
	}
	return strokegeom.Matrix{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}, nil
}

// resolveConfig layers the optional config file under the flags that were
// set explicitly on the command line.
func resolveConfig(file string, flags config, transform string, set map[string]bool) (config, error) {
	cfg := flags
	if file != "" {
		cfg = defaultConfig()
		if err := loadConfig(file, &cfg); err != nil {
			return config{}, err
		}
		for name := range set {
			switch name {
			case "thickness":
				cfg.Thickness = flags.Thickness
			case "cap":
				cfg.Cap = flags.Cap
			case "join":
				cfg.Join = flags.Join
			case "miter":
				cfg.MiterLimit = flags.MiterLimit
			case "scale-mode":
				cfg.ScaleMode = flags.ScaleMode
			case "hint":
				cfg.Hinting = flags.Hinting
			}
		}
	}
	if transform != "" {
		v, err := parseFloats(transform, 6)
		if err != nil {
			return config{}, fmt.Errorf("transform: %w", err)
		}
		cfg.Transform = v
	}
	return cfg, nil
}
