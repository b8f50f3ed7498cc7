package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a supported export file format.
type Format int

const (
	// FormatPNG writes a lossless PNG.
	FormatPNG Format = iota

	// FormatJPEG writes a JPEG at a configurable quality. Any transparency
	// is flattened onto an opaque background first, since JPEG has no
	// alpha channel.
	FormatJPEG
)

// ErrUnsupportedFormat is returned when an export path has an extension
// other than .png, .jpg or .jpeg.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// FormatFromPath infers the export format from a path's extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Flatten composites img over an opaque black background, discarding any
// alpha channel.
func Flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)
	return flat
}

// Export writes img to path in the given format.
//
// PNG is lossless; JPEG is flattened and encoded at quality (1..100).
// Failures (unwritable path, encoder error) are returned to the caller,
// never swallowed: export is the one action in this tool where an error
// is terminal.
func Export(img image.Image, path string, format Format, quality int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	switch format {
	case FormatPNG:
		err = png.Encode(file, img)
	case FormatJPEG:
		err = jpeg.Encode(file, Flatten(img), &jpeg.Options{Quality: quality})
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return file.Close()
}
