package imaging

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	"github.com/disintegration/imaging"
)

// Placeholder fill colors. Failed lookups get a slightly lighter gray than
// never-looked-up blank cells so the two cases are distinguishable at a
// glance in the finished collage.
var (
	failedFill = color.NRGBA{R: 25, G: 25, B: 25, A: 255}
	blankFill  = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
)

// DecodeCover decodes downloaded artwork bytes into an image.
//
// JPEG, PNG and GIF are accepted; iTunes serves JPEG in practice but the
// decoder registrations make the tool tolerant of other sources.
func DecodeCover(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// FailedPlaceholder returns the solid-color square substituted when a
// cover lookup fails. Never nil, always size x size.
func FailedPlaceholder(size int) image.Image {
	return imaging.New(size, size, failedFill)
}

// BlankPlaceholder returns the darker square used for grid cells beyond
// the supplied entry list.
func BlankPlaceholder(size int) image.Image {
	return imaging.New(size, size, blankFill)
}

// FitCell center-crops src to a square and resizes it to size x size
// using Lanczos resampling.
//
// Covers are square at the source (600x600), so the crop is a no-op for
// them; it matters for user-supplied or oddly-sized images.
func FitCell(src image.Image, size int) image.Image {
	return imaging.Fill(src, size, size, imaging.Center, imaging.Lanczos)
}
