// Package raster provides the scanline polygon fill and the incremental
// line rasterizer used by fb.
//
// Both algorithms are pure functions over an explicit vertex slice and a
// Target. They only ever call Target.SetPixel (or SpanFiller.FillSpan) and
// never read pixels back, so the same vertices always produce the same
// pixel set.
package raster

import "errors"

// Errors returned for vertex sequences the rasterizer rejects. A rejected
// call never touches the target.
var (
	// ErrDegeneratePolygon is returned by FillPolygon for fewer than 3 vertices.
	ErrDegeneratePolygon = errors.New("degenerate polygon")

	// ErrEmptyPolygon is returned by DrawPolygon for a vertex sequence with no points.
	ErrEmptyPolygon = errors.New("empty polygon")
)

// Point represents a 2D point in buffer space (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Target is the write side of a pixel buffer (avoids import cycle).
//
// SetPixel must silently ignore coordinates outside
// [0, Width()) x [0, Height()).
type Target interface {
	Width() int
	Height() int
	SetPixel(x, y int)
}

// SpanFiller is an optional interface that targets can implement for optimized span filling.
// FillSpan writes the inclusive run [x1, x2] on row y; the rasterizer only
// calls it with coordinates already clipped to the target.
type SpanFiller interface {
	FillSpan(x1, x2, y int)
}

// Coordinates are clamped into int32 range before conversion so that huge
// or infinite vertex values never overflow the integer math.
const (
	coordMin = -1 << 31
	coordMax = 1<<31 - 1
)

// toCoord converts a float that has already been rounded to an integer
// pixel coordinate, saturating at the int32 limits.
func toCoord(f float64) int {
	switch {
	case f <= coordMin:
		return coordMin
	case f >= coordMax:
		return coordMax
	}
	return int(f)
}
