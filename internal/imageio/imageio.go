// Package imageio converts vfx buffers to and from image files for the
// benchmark harness and CLI. Filters themselves never touch the
// filesystem; capture and persistence stay at this boundary.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopixel/vfx"

	// Extra decode formats, registered for image.Decode.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when the output extension is not a
// supported encoder.
var ErrUnsupportedFormat = errors.New("imageio: unsupported output format")

// jpegQuality is the encoder quality for .jpg output.
const jpegQuality = 90

// Load reads an image file into a 3-channel vfx buffer, auto-detecting
// the format. Supported: PNG, JPEG, BMP, TIFF, WebP.
func Load(path string) (*vfx.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the
// format.
func Decode(r io.Reader) (*vfx.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	p := vfx.FromImage(img)
	vfx.Logger().Info("decoded image",
		"format", format,
		"width", p.Width(),
		"height", p.Height(),
	)
	return p, nil
}

// Save writes a vfx buffer to the given path, choosing the encoder from
// the file extension (.png, .jpg, .jpeg).
func Save(path string, p *vfx.Image) error {
	if p.Empty() {
		return vfx.ErrEmptyImage
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return save(path, p, func(w io.Writer) error {
			return png.Encode(w, p.ToImage())
		})
	case ".jpg", ".jpeg":
		return save(path, p, func(w io.Writer) error {
			return jpeg.Encode(w, p.ToImage(), &jpeg.Options{Quality: jpegQuality})
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func save(path string, p *vfx.Image, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("imageio: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	return nil
}
