package fb

import "github.com/gogpu/fb/internal/raster"

// Point represents a 2D point in buffer space. Polygon vertices may carry
// fractional coordinates; pixel addresses are the integers they round or
// scan-convert to.
type Point = raster.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polygon builds a vertex loop from alternating x, y coordinates.
// A trailing odd coordinate is ignored.
func Polygon(coords ...float64) []Point {
	vs := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		vs = append(vs, Pt(coords[i], coords[i+1]))
	}
	return vs
}
