// Package scene describes a framebuffer image as an ordered list of
// polygons, each with a fill and an outline color, and renders it.
//
// Scenes are built in code, taken from Default, or loaded from TOML files
// with Load and Parse.
package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/fb"
)

// Polygon is one closed vertex loop with its colors.
//
// Render fills the polygon with Fill and then strokes its outline with
// Outline. NoFill and NoOutline skip the respective step.
type Polygon struct {
	// Name identifies the polygon in errors and log output.
	Name string

	Vertices  []fb.Point
	Fill      fb.Color
	Outline   fb.Color
	NoFill    bool
	NoOutline bool
}

// label returns the polygon name, or its 1-based position when unnamed.
func (p *Polygon) label(i int) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("#%d", i+1)
}

func (p *Polygon) render(dst *fb.Framebuffer) error {
	if !p.NoFill {
		dst.SetCurrentColor(p.Fill)
		if err := dst.FillPolygon(p.Vertices); err != nil {
			return err
		}
	}
	if !p.NoOutline {
		dst.SetCurrentColor(p.Outline)
		if err := dst.DrawPolygon(p.Vertices); err != nil {
			return err
		}
	}
	return nil
}

// Scene is a background color and the polygons painted over it, in order.
// Later polygons overwrite earlier ones.
type Scene struct {
	Width      int
	Height     int
	Background fb.Color
	Polygons   []Polygon
}

// NewFramebuffer creates a framebuffer sized and cleared for the scene.
func (s *Scene) NewFramebuffer(opts ...fb.Option) (*fb.Framebuffer, error) {
	return fb.NewFramebuffer(s.Width, s.Height, s.Background, opts...)
}

// Render clears dst to the scene background and draws every polygon.
//
// A polygon that cannot be drawn (too few vertices for a fill, none for
// an outline) is logged, skipped, and reported in the returned error; the
// polygons after it are still drawn.
func (s *Scene) Render(dst *fb.Framebuffer) error {
	dst.SetBackground(s.Background)
	dst.Clear()

	var errs []error
	for i := range s.Polygons {
		p := &s.Polygons[i]
		if err := p.render(dst); err != nil {
			fb.Logger().Warn("polygon skipped",
				"polygon", p.label(i), "vertices", len(p.Vertices), "err", err)
			errs = append(errs, fmt.Errorf("scene: polygon %s: %w", p.label(i), err))
		}
	}

	fb.Logger().Info("scene rendered",
		"width", dst.Width(), "height", dst.Height(),
		"polygons", len(s.Polygons), "skipped", len(errs))
	return errors.Join(errs...)
}
