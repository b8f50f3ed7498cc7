package text

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// faceOptions builds the truetype options for a given point size.
func faceOptions(size int) *truetype.Options {
	return &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	}
}

// DefaultFace returns a face built from the embedded Go Regular font at
// the given point size. It never touches the filesystem, so a collage can
// always be rendered even with no fonts installed.
func DefaultFace(size int) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, faceOptions(size)), nil
}

// LoadFace parses a TTF file and returns a face at the given point size.
//
// When path is empty the embedded default font is used instead.
func LoadFace(path string, size int) (font.Face, error) {
	if path == "" {
		return DefaultFace(size)
	}

	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}

	return truetype.NewFace(f, faceOptions(size)), nil
}
