package fb

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/fb/internal/parallel"
)

// Framebuffer is an in-memory RGBA pixel grid with a background color and
// a current drawing color.
//
// Samples are stored row-major with the origin at the top-left. Every write
// goes through the current color; writes outside the grid are dropped
// without error so rasterization may overshoot at rounding boundaries.
//
// A Framebuffer is not safe for concurrent use. The parallel fill enabled
// by WithWorkers splits each polygon into disjoint row bands internally.
type Framebuffer struct {
	width      int
	height     int
	data       []uint8 // RGBA format, 4 bytes per pixel
	background Color
	current    Color
	pool       *parallel.WorkerPool
}

// NewFramebuffer creates a width x height framebuffer with every sample set
// to background. The current color defaults to White.
// Returns ErrInvalidDimensions if width or height is not positive.
func NewFramebuffer(width, height int, background Color, opts ...Option) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Framebuffer{
		width:      width,
		height:     height,
		data:       make([]uint8, width*height*4),
		background: background,
		current:    o.current,
	}
	if o.workers > 1 {
		f.pool = parallel.NewWorkerPool(o.workers)
	}
	f.Clear()

	Logger().Debug("framebuffer created",
		"width", width, "height", height, "background", background, "workers", o.workers)
	return f, nil
}

// Close releases the worker pool started by WithWorkers. The framebuffer
// stays usable and falls back to sequential filling.
func (f *Framebuffer) Close() error {
	if f.pool != nil {
		f.pool.Close()
		f.pool = nil
	}
	return nil
}

// Width returns the width of the framebuffer.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the height of the framebuffer.
func (f *Framebuffer) Height() int {
	return f.height
}

// Background returns the color Clear writes.
func (f *Framebuffer) Background() Color {
	return f.background
}

// SetBackground changes the color used by the next Clear. Pixels already
// in the buffer are not touched.
func (f *Framebuffer) SetBackground(c Color) {
	f.background = c
}

// CurrentColor returns the color used by subsequent writes.
func (f *Framebuffer) CurrentColor() Color {
	return f.current
}

// SetCurrentColor sets the color used by subsequent writes; pixels
// already written keep their color.
func (f *Framebuffer) SetCurrentColor(c Color) {
	f.current = c
}

// Clear resets every sample to the background color.
func (f *Framebuffer) Clear() {
	if len(f.data) == 0 {
		return
	}
	c := f.background
	f.data[0], f.data[1], f.data[2], f.data[3] = c.R, c.G, c.B, c.A
	// Doubling copy: each pass fills twice as many pixels.
	for filled := 4; filled < len(f.data); filled *= 2 {
		copy(f.data[filled:], f.data[:filled])
	}
}

// SetPixel writes the current color at (x, y). Coordinates outside
// [0, Width()) x [0, Height()) are silently ignored.
func (f *Framebuffer) SetPixel(x, y int) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	c := f.current
	f.data[i+0] = c.R
	f.data[i+1] = c.G
	f.data[i+2] = c.B
	f.data[i+3] = c.A
}

// FillSpan writes the current color on row y from x1 through x2 inclusive.
// It is equivalent to calling SetPixel for each x, clamped to the row.
func (f *Framebuffer) FillSpan(x1, x2, y int) {
	if y < 0 || y >= f.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x1 = max(x1, 0)
	x2 = min(x2, f.width-1)
	if x1 > x2 {
		return
	}

	row := f.data[(y*f.width+x1)*4 : (y*f.width+x2+1)*4]
	c := f.current
	row[0], row[1], row[2], row[3] = c.R, c.G, c.B, c.A
	for filled := 4; filled < len(row); filled *= 2 {
		copy(row[filled:], row[:filled])
	}
}

// Pixel returns the color stored at (x, y); ok is false outside the grid.
func (f *Framebuffer) Pixel(x, y int) (c Color, ok bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Color{}, false
	}
	i := (y*f.width + x) * 4
	return Color{R: f.data[i], G: f.data[i+1], B: f.data[i+2], A: f.data[i+3]}, true
}

// ToImage copies the framebuffer into a new image.NRGBA.
func (f *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// At implements the image.Image interface.
func (f *Framebuffer) At(x, y int) color.Color {
	c, _ := f.Pixel(x, y)
	return c.NRGBA()
}

// Bounds implements the image.Image interface.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
