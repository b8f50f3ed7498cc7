// Package text provides font loading, pixel-accurate measurement and
// greedy word wrapping for the collage margin.
//
// Faces come either from the embedded Go Regular font or a user-supplied
// TTF file:
//
//	face, err := text.LoadFace(settings.FontPath, settings.FontSize)
//
// Wrapping measures through the face's real advance widths, never a
// character count:
//
//	lines := text.Wrap(face, "Artist - A Rather Long Album Title", 300)
package text
