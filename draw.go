package fb

import (
	"fmt"

	"github.com/gogpu/fb/internal/parallel"
	"github.com/gogpu/fb/internal/raster"
)

// FillPolygon fills the interior of the closed vertex loop with the
// current color using the even-odd scanline rule.
//
// Concave polygons and either winding order are supported. Vertices may
// lie outside the framebuffer; only in-bounds pixels are written. Fewer
// than 3 vertices returns ErrDegeneratePolygon and leaves the buffer
// untouched.
func (f *Framebuffer) FillPolygon(vertices []Point) error {
	if len(vertices) < 3 {
		return fmt.Errorf("fb: fill %d vertices: %w", len(vertices), ErrDegeneratePolygon)
	}

	yMin, yMax := raster.ClippedRange(vertices, f.height)
	if f.pool == nil {
		raster.FillRows(f, vertices, yMin, yMax)
	} else {
		f.fillBands(vertices, yMin, yMax)
	}

	Logger().Debug("polygon filled",
		"vertices", len(vertices), "yMin", yMin, "yMax", yMax, "color", f.current)
	return nil
}

// fillBands hands each worker a disjoint band of rows. Bands never share
// a row, so the unsynchronized writes never touch the same sample.
func (f *Framebuffer) fillBands(vertices []Point, yMin, yMax int) {
	bands := parallel.Bands(yMin, yMax, f.pool.Workers())
	jobs := make([]func(), len(bands))
	for i, b := range bands {
		jobs[i] = func() {
			raster.FillRows(f, vertices, b.Y0, b.Y1)
		}
	}
	f.pool.ExecuteAll(jobs)
}

// DrawPolygon strokes every edge of the closed vertex loop with the
// current color, including the edge from the last vertex back to the
// first. A single vertex draws nothing; no vertices returns
// ErrEmptyPolygon.
func (f *Framebuffer) DrawPolygon(vertices []Point) error {
	if err := raster.DrawPolygon(f, vertices); err != nil {
		return fmt.Errorf("fb: outline %d vertices: %w", len(vertices), err)
	}
	return nil
}

// DrawLine draws a one pixel wide line from start to end with the
// current color. Endpoints are rounded to the nearest pixel.
func (f *Framebuffer) DrawLine(start, end Point) {
	raster.DrawLine(f, start, end)
}
