package collage

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/handiism/album-collage/internal/imaging"
	"github.com/handiism/album-collage/internal/model"
	"github.com/handiism/album-collage/internal/text"
	"golang.org/x/image/font"
)

// textInset is the horizontal gap between the margin edges and its text.
const textInset = 10

// Composer arranges fetched covers into a grid and renders the text
// margin. One Composer can compose any number of collages; it holds only
// the font face and is safe to reuse.
//
// Example usage:
//
//	face, _ := text.LoadFace("", cfg.FontSize)
//	composer := collage.NewComposer(face)
//	img := composer.Compose(covers, cfg)
type Composer struct {
	face font.Face
}

// NewComposer creates a Composer drawing margin text with face.
//
// The face's point size should match the GridConfig's FontSize; the
// composer trusts the face it is given.
func NewComposer(face font.Face) *Composer {
	return &Composer{face: face}
}

// Compose builds the collage bitmap.
//
// Covers are placed in row-major order: covers[i] lands at cell
// (i/Columns, i%Columns), center-cropped and resized to the cell size
// minus padding. Cells beyond len(covers) are filled with the blank
// placeholder. Covers beyond the grid capacity are ignored; the caller
// decides whether to warn about them.
//
// The right margin is black with white text: for each row, the labels of
// that row's entries are word-wrapped to the margin's inner width and
// drawn at the row's vertical offset, clipped to the row so long listings
// never bleed into the row below.
//
// cfg must have passed Validate; Compose does not re-check it.
func (c *Composer) Compose(covers []model.Cover, cfg model.GridConfig) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, cfg.Width(), cfg.Height()))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	capacity := cfg.Capacity()
	inner := cfg.CellSize - 2*cfg.Padding

	for i := 0; i < capacity; i++ {
		x, y := cfg.CellOrigin(i)

		var cell image.Image
		if i < len(covers) {
			cell = imaging.FitCell(covers[i].Image, inner)
		} else {
			cell = imaging.BlankPlaceholder(inner)
		}

		target := image.Rect(x+cfg.Padding, y+cfg.Padding, x+cfg.Padding+inner, y+cfg.Padding+inner)
		// Over, not Src: a cover with an alpha channel composites onto
		// the black canvas instead of writing holes into it.
		draw.Draw(canvas, target, cell, cell.Bounds().Min, draw.Over)
	}

	if cfg.MarginWidth > 0 {
		c.drawMargin(canvas, covers, cfg)
	}

	return canvas
}

// drawMargin renders each row's entry listing into the right margin.
func (c *Composer) drawMargin(canvas *image.RGBA, covers []model.Cover, cfg model.GridConfig) {
	marginX := cfg.Columns * cfg.CellSize
	maxLineWidth := cfg.MarginWidth - 2*textInset
	if maxLineWidth <= 0 {
		return
	}

	lineHeight := text.LineHeight(c.face) + cfg.LineSpacing
	ascent := text.Ascent(c.face)

	for row := 0; row < cfg.Rows; row++ {
		rowTop := row * cfg.CellSize
		rowBottom := rowTop + cfg.CellSize

		// Top of the next text line, relative to the canvas.
		y := rowTop + textInset

	rowText:
		for col := 0; col < cfg.Columns; col++ {
			i := row*cfg.Columns + col
			if i >= len(covers) {
				break
			}

			for _, line := range text.Wrap(c.face, covers[i].Entry.Label(), maxLineWidth) {
				// Clip: a line that would cross into the next row is
				// dropped, along with the rest of this row's listing.
				if y+lineHeight > rowBottom {
					break rowText
				}
				c.drawLine(canvas, line, marginX+textInset, y+ascent)
				y += lineHeight
			}
		}
	}
}

func (c *Composer) drawLine(dst *image.RGBA, line string, x, baseline int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: c.face,
		Dot:  freetype.Pt(x, baseline),
	}
	d.DrawString(line)
}
