package parallel

// MinBandRows is the smallest band Bands produces unless the whole range
// is shorter.
const MinBandRows = 16

// Band is an inclusive range of scanlines [Y0, Y1] owned by one job.
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of scanlines in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0 + 1
}

// Bands splits the inclusive scanline range [y0, y1] into at most n
// contiguous, disjoint bands that together cover the range exactly.
// An empty range (y0 > y1) yields no bands.
func Bands(y0, y1, n int) []Band {
	if y0 > y1 {
		return nil
	}
	rows := y1 - y0 + 1
	n = max(min(n, rows/MinBandRows), 1)

	bands := make([]Band, 0, n)
	per, extra := rows/n, rows%n
	start := y0
	for i := range n {
		h := per
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: start, Y1: start + h - 1})
		start += h
	}
	return bands
}
