package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/album-collage/internal/imaging"
)

// RenderImage draws img into the terminal as half-block art, scaled to fit
// maxCols x maxRows character cells while preserving aspect ratio.
//
// Each character cell shows two vertically stacked pixels: the upper-half
// block glyph takes the top pixel as foreground and the bottom pixel as
// background. With a truecolor terminal this gives a faithful, if chunky,
// preview of the composed collage.
func RenderImage(img image.Image, maxCols, maxRows int) string {
	if maxCols < 1 || maxRows < 1 {
		return ""
	}

	scaled := imaging.ScaleToFit(img, maxCols, maxRows*2)
	bounds := scaled.Bounds()

	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := hexColor(scaled.At(x, y))
			bottom := top
			if y+1 < bounds.Max.Y {
				bottom = hexColor(scaled.At(x, y+1))
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	const hexDigits = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint32{r >> 8, g >> 8, b >> 8} {
		out[1+i*2] = hexDigits[v>>4]
		out[2+i*2] = hexDigits[v&0xf]
	}
	return string(out)
}
