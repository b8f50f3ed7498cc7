// Package collage composes fetched album covers into the final grid image.
//
// The Composer pastes each cover into its row-major cell, fills unused
// cells with a dark background, and renders each row's "Artist - Album"
// listing as word-wrapped white text in the black right margin:
//
//	face, _ := text.LoadFace(settings.FontPath, settings.FontSize)
//	composer := collage.NewComposer(face)
//	img := composer.Compose(covers, settings.ToGridConfig())
//
// Text that would overflow its row is clipped, never drawn across the
// row boundary. The produced *image.RGBA is not mutated afterwards; hand
// it straight to the preview or the exporter.
package collage
