package raster

import (
	"math"
	"slices"
)

// Edge is the segment between two consecutive vertices of a closed loop.
// Edges are derived on the fly and never stored.
type Edge struct {
	P0, P1 Point
}

// EdgeAt returns edge i of the closed loop: vertices[i] to vertices[(i+1) mod n].
func EdgeAt(vertices []Point, i int) Edge {
	return Edge{
		P0: vertices[i],
		P1: vertices[(i+1)%len(vertices)],
	}
}

// Crosses reports whether scanline y intersects the edge under the
// half-open rule: the lower endpoint is included, the upper one excluded.
//
// A vertex lying exactly on the scanline is therefore counted by exactly
// one of its two edges, and horizontal edges never cross any scanline.
func (e Edge) Crosses(y float64) bool {
	return (e.P0.Y <= y && e.P1.Y > y) || (e.P1.Y <= y && e.P0.Y > y)
}

// XAtY returns the x coordinate where the edge meets scanline y.
// Only meaningful when Crosses(y) is true, which guarantees P0.Y != P1.Y.
//
// Interpolation always starts from the upper endpoint so an edge and its
// reverse give bit-identical results, which keeps the fill independent of
// winding order.
func (e Edge) XAtY(y float64) float64 {
	a, b := e.P0, e.P1
	if a.Y > b.Y {
		a, b = b, a
	}
	return a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
}

// intersections appends to xs the x coordinate of every edge crossing
// scanline y and returns the result sorted ascending. Non-finite
// intersections are dropped.
func intersections(xs []float64, vertices []Point, y float64) []float64 {
	for i := range vertices {
		e := EdgeAt(vertices, i)
		if !e.Crosses(y) {
			continue
		}
		x := e.XAtY(y)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		xs = append(xs, x)
	}
	slices.Sort(xs)
	return xs
}
