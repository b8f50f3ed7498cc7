package text

import (
	"strings"

	"golang.org/x/image/font"
)

// Width returns the rendered pixel width of s in face.
//
// Measurement goes through the font's actual advance metrics rather than a
// character-count heuristic, so wrapping holds up across fonts and sizes.
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight returns the pixel distance between consecutive baselines,
// before any extra line spacing.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// Ascent returns the pixel distance from a line's top to its baseline.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// Wrap splits s into lines whose rendered width fits maxWidth, using a
// greedy algorithm: words accumulate onto the current line until adding
// the next one would exceed maxWidth, then a new line starts.
//
// A single word wider than maxWidth gets a line of its own; that is the
// only case where a returned line can exceed the limit, and the caller
// clips it at draw time. The result always has at least one element.
func Wrap(face font.Face, s string, maxWidth int) []string {
	words := strings.Fields(s)

	var lines []string
	var cur string
	for _, w := range words {
		test := w
		if cur != "" {
			test = cur + " " + w
		}
		if Width(face, test) <= maxWidth {
			cur = test
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		cur = w
	}
	if cur != "" {
		lines = append(lines, cur)
	}

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
