package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// ScaleToFit downscales img to fit within maxWidth x maxHeight, preserving
// aspect ratio. Images already inside the box are returned scaled 1:1 into
// a fresh RGBA so callers can treat the result uniformly.
//
// CatmullRom is used for quality; previews are small, so the cost is
// negligible.
func ScaleToFit(img image.Image, maxWidth, maxHeight int) *image.RGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			// Height is the limiting factor
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			// Width is the limiting factor
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
