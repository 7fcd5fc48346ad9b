package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/fb"
	"github.com/gogpu/fb/internal/imageio"
	"github.com/gogpu/fb/scene"
)

func TestRun_DefaultScene(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	if err := run("", out, 2, false); err != nil {
		t.Fatal(err)
	}
	img, err := imageio.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("image is %dx%d, want 800x600", b.Dx(), b.Dy())
	}
	if got := fb.FromColor(img.At(0, 0)); got != scene.DefaultBackground {
		t.Errorf("(0,0) = %v, want background", got)
	}
	if got := fb.FromColor(img.At(408, 235)); got != fb.SkyBlue {
		t.Errorf("(408,235) = %v, want SkyBlue", got)
	}
}

func TestRun_SceneFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.toml")
	src := "width = 10\nheight = 10\nbackground = \"#000000\"\n\n" +
		"[[polygon]]\nfill = \"#ffffff\"\nvertices = [[1.0, 1.0], [1.0, 8.0], [8.0, 1.0]]\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "tri.tiff")
	if err := run(path, out, 1, false); err != nil {
		t.Fatal(err)
	}
	img, err := imageio.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := fb.FromColor(img.At(2, 2)); got != fb.White {
		t.Errorf("(2,2) = %v, want White", got)
	}
	if got := fb.FromColor(img.At(9, 9)); got != fb.Black {
		t.Errorf("(9,9) = %v, want Black", got)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	if err := run(filepath.Join(dir, "missing.toml"), filepath.Join(dir, "out.png"), 1, false); err == nil {
		t.Error("missing scene file succeeded")
	}
	if err := run("", filepath.Join(dir, "out.jpg"), 1, false); err == nil {
		t.Error("jpeg output succeeded")
	}
}

func TestRender_SkippedPolygonStillExports(t *testing.T) {
	s := &scene.Scene{
		Width:      10,
		Height:     10,
		Background: fb.Black,
		Polygons: []scene.Polygon{
			{Name: "sliver", Vertices: fb.Polygon(1, 1, 8, 8), Fill: fb.Red, Outline: fb.Red},
			{Name: "tri", Vertices: fb.Polygon(1, 1, 1, 8, 8, 1), Fill: fb.White, Outline: fb.White},
		},
	}
	out := filepath.Join(t.TempDir(), "out.png")
	err := render(s, out, 0, false)
	if !errors.Is(err, fb.ErrDegeneratePolygon) {
		t.Errorf("render = %v, want ErrDegeneratePolygon", err)
	}

	img, err := imageio.Load(out)
	if err != nil {
		t.Fatalf("image not written: %v", err)
	}
	if got := fb.FromColor(img.At(2, 2)); got != fb.White {
		t.Errorf("(2,2) = %v, want White", got)
	}
}
