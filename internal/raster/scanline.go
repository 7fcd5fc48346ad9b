package raster

import "math"

// Span is an inclusive run of pixels [X0, X1] on row Y.
type Span struct {
	Y, X0, X1 int
}

// ScanlineRange returns the integer scanlines that can intersect the
// polygon: ceil(min y) through floor(max y). The range is empty
// (yMin > yMax) when the vertical extent contains no integer, as for a
// horizontal polygon at a fractional y. NaN coordinates are ignored.
func ScanlineRange(vertices []Point) (yMin, yMax int) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vertices {
		if v.Y < lo {
			lo = v.Y
		}
		if v.Y > hi {
			hi = v.Y
		}
	}
	if lo > hi {
		return 0, -1
	}
	return toCoord(math.Ceil(lo)), toCoord(math.Floor(hi))
}

// ClippedRange is ScanlineRange intersected with the rows [0, height).
func ClippedRange(vertices []Point, height int) (yMin, yMax int) {
	yMin, yMax = ScanlineRange(vertices)
	return max(yMin, 0), min(yMax, height-1)
}

// Spans returns the even-odd fill spans of the polygon on scanline y.
//
// Sorted intersections are paired consecutively; each pair fills
// ceil(x0) through floor(x1). A trailing unpaired intersection, which a
// simple polygon never produces, is dropped. Pairs that cover no pixel
// center are omitted. Spans are not clipped to any target.
func Spans(vertices []Point, y int) []Span {
	var spans []Span
	pairSpans(intersections(nil, vertices, float64(y)), func(x0, x1 int) {
		spans = append(spans, Span{Y: y, X0: x0, X1: x1})
	})
	return spans
}

// pairSpans calls fn for every consecutive pair of sorted intersections
// that covers at least one pixel center. An odd trailing value is ignored.
func pairSpans(xs []float64, fn func(x0, x1 int)) {
	for i := 0; i+1 < len(xs); i += 2 {
		x0 := toCoord(math.Ceil(xs[i]))
		x1 := toCoord(math.Floor(xs[i+1]))
		if x0 <= x1 {
			fn(x0, x1)
		}
	}
}

// FillPolygon fills the interior of the closed vertex loop on dst using
// the current color of dst.
//
// The fill is winding independent (even-odd parity), handles concave
// polygons with several spans per scanline and never fails for vertices
// outside the target. Fewer than 3 vertices returns ErrDegeneratePolygon
// without writing anything.
func FillPolygon(dst Target, vertices []Point) error {
	if len(vertices) < 3 {
		return ErrDegeneratePolygon
	}
	yMin, yMax := ClippedRange(vertices, dst.Height())
	FillRows(dst, vertices, yMin, yMax)
	return nil
}

// FillRows runs the scanline fill for rows y0 through y1 only. Callers
// that split a polygon across workers give each one a disjoint row range;
// the union of the bands writes exactly what FillPolygon writes.
func FillRows(dst Target, vertices []Point, y0, y1 int) {
	y0 = max(y0, 0)
	y1 = min(y1, dst.Height()-1)
	if y0 > y1 || len(vertices) < 3 {
		return
	}

	width := dst.Width()
	spanFiller, fast := dst.(SpanFiller)
	xs := make([]float64, 0, len(vertices))

	for y := y0; y <= y1; y++ {
		xs = intersections(xs[:0], vertices, float64(y))
		pairSpans(xs, func(x0, x1 int) {
			x0 = max(x0, 0)
			x1 = min(x1, width-1)
			if x0 > x1 {
				return
			}
			if fast {
				spanFiller.FillSpan(x0, x1, y)
				return
			}
			for x := x0; x <= x1; x++ {
				dst.SetPixel(x, y)
			}
		})
	}
}
