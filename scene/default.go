package scene

import "github.com/gogpu/fb"

// DefaultBackground is the dark blue behind the default scene.
var DefaultBackground = fb.RGB(50, 50, 100)

// Default returns the stock 800x600 scene: four sky-blue polygons (a
// ten-point star, a tilted quad, a triangle and an 18-vertex silhouette)
// and a quad inside the silhouette filled with the background color, which
// reads as a hole with a sky-blue rim.
func Default() *Scene {
	solid := func(name string, coords ...float64) Polygon {
		return Polygon{
			Name:     name,
			Vertices: fb.Polygon(coords...),
			Fill:     fb.SkyBlue,
			Outline:  fb.SkyBlue,
		}
	}

	hole := solid("hole",
		682, 175, 708, 120, 735, 148, 739, 170)
	hole.Fill = DefaultBackground

	return &Scene{
		Width:      800,
		Height:     600,
		Background: DefaultBackground,
		Polygons: []Polygon{
			solid("star",
				165, 380, 185, 360, 180, 330, 207, 345, 233, 330,
				230, 360, 250, 380, 220, 385, 205, 410, 193, 383),
			solid("quad",
				321, 335, 288, 286, 339, 251, 374, 302),
			solid("triangle",
				377, 249, 411, 197, 436, 249),
			solid("silhouette",
				413, 177, 448, 159, 502, 88, 553, 53, 535, 36, 676, 37,
				660, 52, 750, 145, 761, 179, 672, 192, 659, 214, 615, 214,
				632, 230, 580, 230, 597, 215, 552, 214, 517, 144, 466, 180),
			hole,
		},
	}
}
