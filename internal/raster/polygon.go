package raster

// DrawPolygon strokes every edge of the closed vertex loop, including the
// closing edge from the last vertex back to the first.
//
// A single vertex is a no-op; no vertices returns ErrEmptyPolygon.
func DrawPolygon(dst Target, vertices []Point) error {
	n := len(vertices)
	switch n {
	case 0:
		return ErrEmptyPolygon
	case 1:
		return nil
	}
	for i := range n {
		e := EdgeAt(vertices, i)
		DrawLine(dst, e.P0, e.P1)
	}
	return nil
}
