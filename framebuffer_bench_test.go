package fb

import (
	"fmt"
	"testing"
)

// benchSilhouette is the 18-vertex concave outline from the default scene.
var benchSilhouette = Polygon(
	413, 177, 448, 159, 502, 88, 553, 53, 535, 36, 676, 37,
	660, 52, 750, 145, 761, 179, 672, 192, 659, 214, 615, 214,
	632, 230, 580, 230, 597, 215, 552, 214, 517, 144, 466, 180,
)

// BenchmarkFillSpanVsSetPixel compares FillSpan against repeated SetPixel calls.
func BenchmarkFillSpanVsSetPixel(b *testing.B) {
	f, _ := NewFramebuffer(1000, 1000, Black)
	f.SetCurrentColor(Red)

	for _, pixels := range []int{10, 100, 500} {
		b.Run(fmt.Sprintf("SetPixel_%dpx", pixels), func(b *testing.B) {
			for b.Loop() {
				for x := range pixels {
					f.SetPixel(x, 500)
				}
			}
		})
		b.Run(fmt.Sprintf("FillSpan_%dpx", pixels), func(b *testing.B) {
			for b.Loop() {
				f.FillSpan(0, pixels-1, 500)
			}
		})
	}
}

// BenchmarkFillPolygon measures the scanline fill sequentially and with
// band workers.
func BenchmarkFillPolygon(b *testing.B) {
	for _, workers := range []int{0, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			f, err := NewFramebuffer(800, 600, Black, WithWorkers(workers))
			if err != nil {
				b.Fatal(err)
			}
			defer f.Close()

			b.ReportAllocs()
			for b.Loop() {
				_ = f.FillPolygon(benchSilhouette)
			}
		})
	}
}

// BenchmarkDrawPolygon measures outlines, including one whose vertices lie
// far outside the buffer.
func BenchmarkDrawPolygon(b *testing.B) {
	polygons := []struct {
		name     string
		vertices []Point
	}{
		{"silhouette", benchSilhouette},
		{"far", Polygon(-1e12, 300, 1e12, 300, 400, 500)},
	}
	f, _ := NewFramebuffer(800, 600, Black)

	for _, p := range polygons {
		b.Run(p.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = f.DrawPolygon(p.vertices)
			}
		})
	}
}

func BenchmarkClear(b *testing.B) {
	f, _ := NewFramebuffer(800, 600, RGB(50, 50, 100))
	for b.Loop() {
		f.Clear()
	}
}
