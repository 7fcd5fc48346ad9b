package raster

import (
	"image"
	"math"
	"math/bits"
	"sort"
)

// DrawLine writes the pixels approximating the segment from start to end.
//
// Endpoints are rounded to the nearest pixel (halves away from zero) and
// joined with Bresenham's algorithm, so the result has no gaps for any
// slope and a zero-length segment writes a single pixel. Only the part of
// the line inside the target is walked, so the cost is bounded by the
// target size however far the endpoints lie outside it. Segments with a
// non-finite endpoint are not drawn.
func DrawLine(dst Target, start, end Point) {
	x0, y0, ok0 := pixelOf(start)
	x1, y1, ok1 := pixelOf(end)
	if !ok0 || !ok1 {
		return
	}
	walkLine(x0, y0, x1, y1, image.Rect(0, 0, dst.Width(), dst.Height()), dst.SetPixel)
}

// Line returns the pixels DrawLine would write inside clip, in drawing
// order.
func Line(start, end Point, clip image.Rectangle) []image.Point {
	x0, y0, ok0 := pixelOf(start)
	x1, y1, ok1 := pixelOf(end)
	if !ok0 || !ok1 {
		return nil
	}
	var pts []image.Point
	walkLine(x0, y0, x1, y1, clip, func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}

func pixelOf(p Point) (x, y int, ok bool) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return 0, 0, false
	}
	return toCoord(math.Round(p.X)), toCoord(math.Round(p.Y)), true
}

// walkLine plots the pixels of the Bresenham line from (x0, y0) to (x1, y1)
// that fall inside clip, in drawing order.
//
// The line advances one pixel along its major axis per step. At step k the
// minor axis has moved floor((2*m*k + n) / (2*n)) pixels, where n and m are
// the major and minor extents; this is the same pixel the all-octant error
// form reaches incrementally. The visible steps form one contiguous range,
// found from the major bounds directly and from the minor bounds by binary
// search, and only that range is walked.
func walkLine(x0, y0, x1, y1 int, clip image.Rectangle, plot func(x, y int)) {
	if clip.Empty() {
		return
	}
	if x0 == x1 && y0 == y1 {
		if image.Pt(x0, y0).In(clip) {
			plot(x0, y0)
		}
		return
	}

	// a is the major axis, b the minor one.
	a0, b0 := int64(x0), int64(y0)
	da, db := int64(x1)-a0, int64(y1)-b0
	aLo, aHi := int64(clip.Min.X), int64(clip.Max.X)-1
	bLo, bHi := int64(clip.Min.Y), int64(clip.Max.Y)-1
	xMajor := abs64(da) >= abs64(db)
	if !xMajor {
		a0, b0, da, db = b0, a0, db, da
		aLo, aHi, bLo, bHi = bLo, bHi, aLo, aHi
	}
	sa, sb := int64(1), int64(1)
	if da < 0 {
		sa = -1
	}
	if db < 0 {
		sb = -1
	}
	n, m := uint64(abs64(da)), uint64(abs64(db))

	// Steps whose major coordinate is inside the clip.
	kLo, kHi := int64(0), int64(n)
	if sa > 0 {
		kLo, kHi = max(kLo, aLo-a0), min(kHi, aHi-a0)
	} else {
		kLo, kHi = max(kLo, a0-aHi), min(kHi, a0-aLo)
	}

	// Minor steps q(k) that keep the minor coordinate inside the clip.
	qLo, qHi := bLo-b0, bHi-b0
	if sb < 0 {
		qLo, qHi = b0-bHi, b0-bLo
	}
	if kLo > kHi || qHi < 0 || qLo > int64(m) {
		return
	}
	// q(k) is non-decreasing, so each minor bound cuts off a prefix or a
	// suffix of the steps.
	firstReaching := func(q int64) int64 {
		return int64(sort.Search(int(n)+1, func(k int) bool {
			got, _ := minorSteps(m, n, uint64(k))
			return int64(got) >= q
		}))
	}
	if qLo > 0 {
		kLo = max(kLo, firstReaching(qLo))
	}
	if qHi < int64(m) {
		kHi = min(kHi, firstReaching(qHi+1)-1)
	}
	if kLo > kHi {
		return
	}

	q, r := minorSteps(m, n, uint64(kLo))
	step, div := 2*m, 2*n
	for k := kLo; ; k++ {
		a, b := a0+sa*k, b0+sb*int64(q)
		if xMajor {
			plot(int(a), int(b))
		} else {
			plot(int(b), int(a))
		}
		if k == kHi {
			return
		}
		// m <= n, so the remainder wraps at most once per step.
		r += step
		if r >= div {
			r -= div
			q++
		}
	}
}

// minorSteps returns the quotient and remainder of (2*m*k + n) / (2*n) for
// k <= n with 128-bit intermediates, since extents reach 2^32.
func minorSteps(m, n, k uint64) (q, r uint64) {
	hi, lo := bits.Mul64(2*m, k)
	lo, carry := bits.Add64(lo, n, 0)
	return bits.Div64(hi+carry, lo, 2*n)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
