// Package model defines the core data structures used throughout
// the album-collage application.
//
// # Entry
//
// Entry represents one parsed "Artist - Album" line:
//
//	entries, warnings := model.ParseEntries(rawText, model.DefaultDelimiter)
//	for _, w := range warnings {
//	    fmt.Println("skipped:", w)
//	}
//
// # GridConfig
//
// GridConfig holds the layout parameters for one collage and knows the
// geometry derived from them:
//
//	cfg := model.GridConfig{Columns: 4, Rows: 4, CellSize: 300, MarginWidth: 320, FontSize: 20}
//	x, y := cfg.CellOrigin(5) // top-left pixel of the sixth cell, row-major
//
// # Cover
//
// Cover pairs an Entry with its fetched (or placeholder) artwork. The Image
// field is always usable; Placeholder and Err record why a lookup fell back.
package model
