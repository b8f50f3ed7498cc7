package collage

import (
	"image"
	"image/color"
	"testing"

	"github.com/handiism/album-collage/internal/model"
	"github.com/handiism/album-collage/internal/text"
)

func testFace(t *testing.T) *Composer {
	t.Helper()
	face, err := text.DefaultFace(12)
	if err != nil {
		t.Fatalf("loading test face: %v", err)
	}
	return NewComposer(face)
}

// solidCover builds a cover whose image is a uniform color, so cell
// placement can be asserted by sampling pixels.
func solidCover(artist, album string, c color.NRGBA) model.Cover {
	img := image.NewNRGBA(image.Rect(0, 0, 60, 60))
	for x := 0; x < 60; x++ {
		for y := 0; y < 60; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return model.Cover{
		Entry: model.Entry{Artist: artist, Album: album},
		Image: img,
	}
}

func sample(t *testing.T, img image.Image, x, y int) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestCompose_Dimensions(t *testing.T) {
	cfg := model.GridConfig{Columns: 2, Rows: 1, CellSize: 100, MarginWidth: 120, FontSize: 12, LineSpacing: 4}
	covers := []model.Cover{
		solidCover("The Beatles", "Abbey Road", color.NRGBA{R: 255, A: 255}),
		solidCover("Pink Floyd", "The Wall", color.NRGBA{G: 255, A: 255}),
	}

	img := testFace(t).Compose(covers, cfg)

	if img.Bounds().Dx() != 2*100+120 {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), 2*100+120)
	}
	if img.Bounds().Dy() != 100 {
		t.Errorf("height = %d, want 100", img.Bounds().Dy())
	}
}

func TestCompose_TransparentCoverStaysOpaque(t *testing.T) {
	cfg := model.GridConfig{Columns: 1, Rows: 1, CellSize: 50, MarginWidth: 0, FontSize: 12}

	// A fully transparent decoded image must composite onto the black
	// canvas, not write its alpha through it.
	covers := []model.Cover{solidCover("Ghost", "Clear", color.NRGBA{})}

	img := testFace(t).Compose(covers, cfg)

	got := color.RGBAModel.Convert(img.At(25, 25)).(color.RGBA)
	if got.A != 255 {
		t.Errorf("canvas alpha = %d, want 255", got.A)
	}
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("transparent cover should leave the cell black, got %+v", got)
	}
}

func TestCompose_RowMajorPlacement(t *testing.T) {
	cfg := model.GridConfig{Columns: 2, Rows: 2, CellSize: 50, MarginWidth: 0, FontSize: 12}
	red := color.NRGBA{R: 255, A: 255}
	green := color.NRGBA{G: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	covers := []model.Cover{
		solidCover("a", "1", red),
		solidCover("b", "2", green),
		solidCover("c", "3", blue),
		solidCover("d", "4", white),
	}

	img := testFace(t).Compose(covers, cfg)

	tests := []struct {
		index int
		x, y  int
		want  color.NRGBA
	}{
		{0, 25, 25, red},    // cell (0,0)
		{1, 75, 25, green},  // cell (0,1)
		{2, 25, 75, blue},   // cell (1,0)
		{3, 75, 75, white},  // cell (1,1)
	}

	for _, tt := range tests {
		if got := sample(t, img, tt.x, tt.y); got != tt.want {
			t.Errorf("cover %d: pixel (%d,%d) = %+v, want %+v", tt.index, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCompose_BlankCellsBeyondEntries(t *testing.T) {
	// 2x2 grid, 3 covers: the fourth cell stays background-colored.
	cfg := model.GridConfig{Columns: 2, Rows: 2, CellSize: 50, MarginWidth: 0, FontSize: 12}
	c := color.NRGBA{R: 200, A: 255}
	covers := []model.Cover{
		solidCover("a", "1", c),
		solidCover("b", "2", c),
		solidCover("c", "3", c),
	}

	img := testFace(t).Compose(covers, cfg)

	got := sample(t, img, 75, 75)
	if got.R > 40 || got.G > 40 || got.B > 40 {
		t.Errorf("fourth cell should be dark background, got %+v", got)
	}
	if got := sample(t, img, 25, 75); got != c {
		t.Errorf("third cover missing from cell (1,0): %+v", got)
	}
}

func TestCompose_ExtraCoversIgnored(t *testing.T) {
	cfg := model.GridConfig{Columns: 1, Rows: 1, CellSize: 40, MarginWidth: 0, FontSize: 12}
	covers := []model.Cover{
		solidCover("a", "1", color.NRGBA{R: 255, A: 255}),
		solidCover("b", "2", color.NRGBA{G: 255, A: 255}),
	}

	img := testFace(t).Compose(covers, cfg)

	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Fatalf("bounds = %v, want 40x40", img.Bounds())
	}
	if got := sample(t, img, 20, 20); (got != color.NRGBA{R: 255, A: 255}) {
		t.Errorf("first cover should fill the only cell, got %+v", got)
	}
}

func TestCompose_PaddingInsetsCover(t *testing.T) {
	cfg := model.GridConfig{Columns: 1, Rows: 1, CellSize: 60, MarginWidth: 0, FontSize: 12, Padding: 10}
	covers := []model.Cover{solidCover("a", "1", color.NRGBA{R: 255, A: 255})}

	img := testFace(t).Compose(covers, cfg)

	// Corner inside the padding band stays background.
	if got := sample(t, img, 5, 5); got.R != 0 {
		t.Errorf("padding band should be background, got %+v", got)
	}
	// Center carries the cover.
	if got := sample(t, img, 30, 30); (got != color.NRGBA{R: 255, A: 255}) {
		t.Errorf("cover missing inside padding, got %+v", got)
	}
}

func TestCompose_MarginHoldsText(t *testing.T) {
	cfg := model.GridConfig{Columns: 1, Rows: 1, CellSize: 100, MarginWidth: 150, FontSize: 12, LineSpacing: 4}
	covers := []model.Cover{solidCover("The Beatles", "Abbey Road", color.NRGBA{R: 255, A: 255})}

	img := testFace(t).Compose(covers, cfg)

	// Some pixel in the margin must be white-ish (anti-aliased text).
	found := false
	for x := 100; x < 250 && !found; x++ {
		for y := 0; y < 100 && !found; y++ {
			px := sample(t, img, x, y)
			if px.R > 128 && px.G > 128 && px.B > 128 {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected white text pixels in the margin, found none")
	}
}

func TestCompose_TextClippedToRow(t *testing.T) {
	// A tiny row with a long listing: text must not cross into row 2.
	cfg := model.GridConfig{Columns: 1, Rows: 2, CellSize: 30, MarginWidth: 80, FontSize: 12, LineSpacing: 4}
	covers := []model.Cover{
		solidCover("An Extremely Wordy Artist Name", "With A Very Long Album Title Indeed", color.NRGBA{R: 255, A: 255}),
	}

	img := testFace(t).Compose(covers, cfg)

	// Row 2 of the margin belongs to the (absent) second entry; it must
	// hold no text from the first row's overflow.
	for x := 30; x < 110; x++ {
		for y := 30; y < 60; y++ {
			px := sample(t, img, x, y)
			if px.R > 128 {
				t.Fatalf("overflow text at (%d,%d): %+v", x, y, px)
			}
		}
	}
}

func TestCompose_PlaceholderRendersLikeNormalCover(t *testing.T) {
	cfg := model.GridConfig{Columns: 1, Rows: 1, CellSize: 50, MarginWidth: 0, FontSize: 12}
	ph := model.Cover{
		Entry:       model.Entry{Artist: "Nobody", Album: "Nothing"},
		Image:       image.NewNRGBA(image.Rect(0, 0, 600, 600)),
		Placeholder: true,
	}

	img := testFace(t).Compose([]model.Cover{ph}, cfg)
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 50 {
		t.Errorf("bounds = %v, want 50x50", img.Bounds())
	}
}
