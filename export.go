package fb

import (
	"fmt"
	"io"

	"github.com/gogpu/fb/internal/imageio"
)

// Format identifies an export file format.
type Format = imageio.Format

// Supported export formats. All are lossless: every sample decodes to the
// value it had in memory. BMP stores no alpha and is refused for buffers
// holding any translucent pixel.
const (
	FormatPNG  = imageio.FormatPNG
	FormatBMP  = imageio.FormatBMP
	FormatTIFF = imageio.FormatTIFF
)

// Export writes the framebuffer to the file at path, creating or
// overwriting it. The format follows the extension: .png, .bmp, .tif or
// .tiff. Other extensions, and .bmp for a buffer that is not fully opaque,
// return ErrUnsupportedFormat without creating the file.
//
// I/O failures are returned wrapped; the in-memory buffer is never
// modified.
func (f *Framebuffer) Export(path string) error {
	format, err := imageio.FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("fb: export %s: %w", path, err)
	}
	if err := imageio.Save(path, f.ToImage(), format); err != nil {
		return fmt.Errorf("fb: export %s: %w", path, err)
	}
	Logger().Debug("framebuffer exported",
		"path", path, "format", format, "width", f.width, "height", f.height)
	return nil
}

// SavePNG saves the framebuffer to a PNG file regardless of extension.
func (f *Framebuffer) SavePNG(path string) error {
	if err := imageio.Save(path, f.ToImage(), imageio.FormatPNG); err != nil {
		return fmt.Errorf("fb: save png %s: %w", path, err)
	}
	return nil
}

// Encode writes the framebuffer to w in the given format.
func (f *Framebuffer) Encode(w io.Writer, format Format) error {
	return imageio.Encode(w, f.ToImage(), format)
}
