package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/fb"
)

// ErrInvalidScene is returned for scene files that decode but describe
// nothing drawable.
var ErrInvalidScene = errors.New("scene: invalid scene")

// sceneFile is the TOML layout of a scene:
//
//	width = 800
//	height = 600
//	background = "#323264"
//
//	[[polygon]]
//	name = "triangle"
//	fill = "#66bfff"
//	vertices = [[377.0, 249.0], [411.0, 197.0], [436.0, 249.0]]
type sceneFile struct {
	Width      int           `toml:"width"`
	Height     int           `toml:"height"`
	Background fb.Color      `toml:"background"`
	Polygons   []polygonFile `toml:"polygon"`
}

type polygonFile struct {
	Name      string       `toml:"name,omitempty"`
	Fill      *fb.Color    `toml:"fill,omitempty"`
	Outline   *fb.Color    `toml:"outline,omitempty"`
	NoFill    bool         `toml:"no_fill,omitempty"`
	NoOutline bool         `toml:"no_outline,omitempty"`
	Vertices  [][2]float64 `toml:"vertices"`
}

// Load reads a TOML scene file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scene: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a TOML scene.
//
// Colors are "#rrggbb" or "#rrggbbaa" strings. A missing fill defaults to
// White, the framebuffer's default pen, and a missing outline defaults to
// the fill color. Unknown keys are rejected so typos do not silently
// change the image.
func Parse(r io.Reader) (*Scene, error) {
	in := sceneFile{Background: fb.Black}
	md, err := toml.NewDecoder(r).Decode(&in)
	if err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScene, strings.Join(keys, ", "))
	}

	if in.Width <= 0 || in.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidScene, in.Width, in.Height)
	}

	s := &Scene{
		Width:      in.Width,
		Height:     in.Height,
		Background: in.Background,
		Polygons:   make([]Polygon, 0, len(in.Polygons)),
	}
	for i, pf := range in.Polygons {
		p := pf.polygon()
		if err := validate(&p); err != nil {
			return nil, fmt.Errorf("%w: polygon %s: %w", ErrInvalidScene, p.label(i), err)
		}
		s.Polygons = append(s.Polygons, p)
	}
	return s, nil
}

// Encode writes s to w in the layout Parse reads.
func (s *Scene) Encode(w io.Writer) error {
	out := sceneFile{
		Width:      s.Width,
		Height:     s.Height,
		Background: s.Background,
		Polygons:   make([]polygonFile, len(s.Polygons)),
	}
	for i := range s.Polygons {
		p := &s.Polygons[i]
		pf := polygonFile{
			Name:      p.Name,
			Fill:      &p.Fill,
			Outline:   &p.Outline,
			NoFill:    p.NoFill,
			NoOutline: p.NoOutline,
			Vertices:  make([][2]float64, len(p.Vertices)),
		}
		for j, v := range p.Vertices {
			pf.Vertices[j] = [2]float64{v.X, v.Y}
		}
		out.Polygons[i] = pf
	}
	if err := toml.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	return nil
}

func (pf *polygonFile) polygon() Polygon {
	p := Polygon{
		Name:      pf.Name,
		Fill:      fb.White,
		NoFill:    pf.NoFill,
		NoOutline: pf.NoOutline,
		Vertices:  make([]fb.Point, len(pf.Vertices)),
	}
	if pf.Fill != nil {
		p.Fill = *pf.Fill
	}
	p.Outline = p.Fill
	if pf.Outline != nil {
		p.Outline = *pf.Outline
	}
	for i, v := range pf.Vertices {
		p.Vertices[i] = fb.Pt(v[0], v[1])
	}
	return p
}

// validate rejects polygons Render would have to skip.
func validate(p *Polygon) error {
	switch {
	case !p.NoFill && len(p.Vertices) < 3:
		return fmt.Errorf("fill needs at least 3 vertices, got %d", len(p.Vertices))
	case !p.NoOutline && len(p.Vertices) == 0:
		return errors.New("outline needs at least 1 vertex")
	}
	return nil
}
