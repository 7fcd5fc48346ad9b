package fb

import (
	"errors"

	"github.com/gogpu/fb/internal/imageio"
	"github.com/gogpu/fb/internal/raster"
)

var (
	// ErrInvalidDimensions is returned by NewFramebuffer when width or height is not positive.
	ErrInvalidDimensions = errors.New("fb: invalid dimensions")

	// ErrDegeneratePolygon is returned when filling fewer than 3 vertices.
	ErrDegeneratePolygon = raster.ErrDegeneratePolygon

	// ErrEmptyPolygon is returned when outlining a polygon with no vertices.
	ErrEmptyPolygon = raster.ErrEmptyPolygon

	// ErrUnsupportedFormat is returned by Export for an unknown or lossy file extension.
	ErrUnsupportedFormat = imageio.ErrUnsupportedFormat
)
