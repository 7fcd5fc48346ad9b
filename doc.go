// Package fb provides a software polygon rasterizer for Go.
//
// # Overview
//
// fb renders 2D polygons into an in-memory RGBA framebuffer and writes the
// result to a lossless image file. It decides which pixels lie inside a
// polygon with an even-odd scanline fill and which lie on its boundary with
// Bresenham lines. There is no anti-aliasing and no blending: every write
// replaces the sample with the current color, so output is pixel-exact and
// reproducible.
//
// # Quick Start
//
//	import "github.com/gogpu/fb"
//
//	f, err := fb.NewFramebuffer(800, 600, fb.RGB(50, 50, 100))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tri := fb.Polygon(377, 249, 411, 197, 436, 249)
//	f.SetCurrentColor(fb.SkyBlue)
//	_ = f.FillPolygon(tri)
//	_ = f.DrawPolygon(tri)
//
//	_ = f.Export("out.png")
//
// # Fill Rule
//
// Interior pixels are found per integer scanline y from ceil(min y) to
// floor(max y). An edge counts on scanline y when one endpoint is at or
// above y and the other strictly below, so a vertex on the scanline is
// counted once and horizontal edges never count. Sorted intersections are
// paired and each pair fills ceil(x0) through floor(x1). The bottom row of
// an integer-aligned shape is therefore left to the outline.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Vertices are float64; pixel addresses are integers
//
// # Scenes
//
// The scene sub-package describes polygons with fill and outline colors,
// renders them in order and loads them from TOML files. cmd/polygons is the
// command line driver.
package fb

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
