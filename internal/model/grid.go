package model

import "fmt"

// GridConfig holds the user-adjustable layout parameters for one collage.
//
// A GridConfig must pass Validate before composition. The composed image is
// Width() x Height() pixels: a Columns x Rows grid of CellSize cells with a
// MarginWidth text strip on the right edge.
//
// Example:
//
//	cfg := model.GridConfig{Columns: 4, Rows: 4, CellSize: 300, MarginWidth: 320, FontSize: 20}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
type GridConfig struct {
	// Columns is the number of grid columns. Must be > 0.
	Columns int

	// Rows is the number of grid rows. Must be > 0.
	Rows int

	// CellSize is the pixel width and height of one grid cell. Must be > 0.
	CellSize int

	// MarginWidth is the pixel width of the black text margin on the right
	// edge of the collage. May be 0 to omit the margin entirely.
	MarginWidth int

	// FontSize is the point size of the margin text. Must be > 0.
	FontSize int

	// Padding is the pixel inset applied inside each cell around its cover.
	// May be 0.
	Padding int

	// LineSpacing is the extra pixels between wrapped margin text lines.
	LineSpacing int
}

// Validate checks every field against its constraint and returns an error
// naming the first offending field, or nil.
func (g GridConfig) Validate() error {
	switch {
	case g.Columns <= 0:
		return fmt.Errorf("columns must be positive, got %d", g.Columns)
	case g.Rows <= 0:
		return fmt.Errorf("rows must be positive, got %d", g.Rows)
	case g.CellSize <= 0:
		return fmt.Errorf("cell size must be positive, got %d", g.CellSize)
	case g.MarginWidth < 0:
		return fmt.Errorf("margin width must not be negative, got %d", g.MarginWidth)
	case g.FontSize <= 0:
		return fmt.Errorf("font size must be positive, got %d", g.FontSize)
	case g.Padding < 0:
		return fmt.Errorf("padding must not be negative, got %d", g.Padding)
	case g.LineSpacing < 0:
		return fmt.Errorf("line spacing must not be negative, got %d", g.LineSpacing)
	case g.Padding*2 >= g.CellSize:
		return fmt.Errorf("padding %d leaves no room in a %dpx cell", g.Padding, g.CellSize)
	}
	return nil
}

// Capacity returns the number of cells in the grid.
func (g GridConfig) Capacity() int {
	return g.Columns * g.Rows
}

// Width returns the total collage width in pixels: the grid plus the margin.
func (g GridConfig) Width() int {
	return g.Columns*g.CellSize + g.MarginWidth
}

// Height returns the total collage height in pixels.
func (g GridConfig) Height() int {
	return g.Rows * g.CellSize
}

// CellOrigin returns the top-left pixel of the cell holding entry index i,
// placed in row-major order: row = i / Columns, col = i % Columns.
func (g GridConfig) CellOrigin(i int) (x, y int) {
	row := i / g.Columns
	col := i % g.Columns
	return col * g.CellSize, row * g.CellSize
}
