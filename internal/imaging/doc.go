// Package imaging provides the image processing building blocks for the
// collage pipeline.
//
// This package contains functions for:
//   - Decoding downloaded cover art (JPEG, PNG, GIF)
//   - Square-cropping and resizing covers to cell size
//   - Solid-color placeholder generation
//   - Aspect-preserving preview scaling
//   - Alpha flattening and PNG/JPEG export
//
// # Covers
//
//	img, err := imaging.DecodeCover(data)
//	cell := imaging.FitCell(img, 300) // center crop + Lanczos resize
//
// # Placeholders
//
// Failed lookups and blank cells get fixed-size solid squares so the
// composer never handles a nil image:
//
//	ph := imaging.FailedPlaceholder(600)
//
// # Export
//
//	format, err := imaging.FormatFromPath("out.jpg") // FormatJPEG
//	err = imaging.Export(collage, "out.jpg", format, 95)
//
// JPEG export flattens transparency onto opaque black first; PNG is
// written losslessly.
package imaging
