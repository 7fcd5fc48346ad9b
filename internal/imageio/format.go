// Package imageio encodes framebuffer images to lossless files and decodes
// them back for verification.
package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions with no lossless encoder.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Format identifies an output file format.
type Format uint8

const (
	// FormatPNG is the default output format.
	FormatPNG Format = iota

	// FormatBMP writes uncompressed Windows bitmaps. It has no alpha channel
	// and only accepts fully opaque images.
	FormatBMP

	// FormatTIFF writes Deflate-compressed TIFF.
	FormatTIFF
)

// String returns the canonical lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromPath picks the format from the file extension, case-insensitively.
// Lossy formats such as JPEG are rejected because they would not round-trip
// pixel values.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
