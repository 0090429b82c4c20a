package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/strokegeom"
)

func TestConfigMatrix(t *testing.T) {
	cfg := defaultConfig()
	cfg.Transform = []float64{2, 0, 5, 0, 3, -1}
	m, err := cfg.matrix()
	if err != nil {
		t.Fatal(err)
	}
	want := strokegeom.Matrix{A: 2, C: 5, E: 3, F: -1}
	if m != want {
		t.Errorf("matrix() = %+v, want %+v", m, want)
	}
	cfg.Transform = []float64{1, 0, 0}
	if _, err := cfg.matrix(); err == nil {
		t.Error("short transform accepted")
	}
}

func TestResolveConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "style.toml")
	data := "thickness = 4\ncap = \"square\"\njoin = \"miter\"\ntransform = [2, 0, 10, 0, 2, 10]\n"
	if err := os.WriteFile(name, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	flags := defaultConfig()
	flags.Thickness = 6
	flags.Join = "bevel"
	cfg, err := resolveConfig(name, flags, "", map[string]bool{"thickness": true})
	if err != nil {
		t.Fatal(err)
	}
	want := defaultConfig()
	want.Thickness = 6 // explicit flag wins
	want.Cap = "square"
	want.Join = "miter" // flag not set explicitly
	want.Transform = []float64{2, 0, 10, 0, 2, 10}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("resolveConfig() mismatch (-want +got):\n%s", diff)
	}

	cfg, err = resolveConfig("", defaultConfig(), "1,0,0,0,1,x", nil)
	if err == nil {
		t.Errorf("bad transform accepted: %+v", cfg)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	name := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(name, []byte("thicknes = 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := defaultConfig()
	if err := loadConfig(name, &cfg); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestParseStyle(t *testing.T) {
	s, err := parseStyle(3, "square", "bevel", 2, "vertical", true)
	if err != nil {
		t.Fatal(err)
	}
	if s.Thickness != 3 || s.Caps != strokegeom.CapSquare || s.Joints != strokegeom.JoinBevel ||
		s.MiterLimit != 2 || s.ScaleMode != strokegeom.ScaleVertical || !s.PixelHinting {
		t.Errorf("parseStyle() = %+v", s)
	}
	if _, err := parseStyle(1, "pointy", "round", 3, "normal", false); err == nil {
		t.Error("unknown cap accepted")
	}
}

func TestWriteMask(t *testing.T) {
	p := strokegeom.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	r := strokegeom.NewLineRenderer(strokegeom.DefaultStroke().WithThickness(2), p)

	name := filepath.Join(t.TempDir(), "mask.png")
	if err := writeMask(r, strokegeom.Identity(), name); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		t.Errorf("mask file missing or empty: %v", err)
	}
}
