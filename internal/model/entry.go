package model

import (
	"fmt"
	"strings"
)

// DefaultDelimiter separates artist from album in an input line.
const DefaultDelimiter = " - "

// Entry represents one parsed "Artist - Album" pair.
//
// Entries are created by ParseEntries and are immutable; their position in
// the parsed list determines their cell in the collage grid (row-major).
//
// Example:
//
//	entries, warnings := model.ParseEntries("The Beatles - Abbey Road\n", model.DefaultDelimiter)
//	// entries[0] = Entry{Artist: "The Beatles", Album: "Abbey Road"}
type Entry struct {
	// Artist is the text left of the first delimiter, trimmed.
	Artist string

	// Album is the text right of the first delimiter, trimmed.
	Album string
}

// IsEmpty reports whether the entry carries no artist and no album.
// Empty entries fill grid cells beyond the supplied list.
func (e Entry) IsEmpty() bool {
	return e.Artist == "" && e.Album == ""
}

// Label returns the display string drawn in the collage margin.
//
// An entry with only one half keeps just that half; a fully empty
// entry renders as a dash so each row's listing stays aligned.
func (e Entry) Label() string {
	label := strings.Trim(e.Artist+" - "+e.Album, " -")
	if label == "" {
		return "—"
	}
	if e.Artist != "" && e.Album != "" {
		return e.Artist + " - " + e.Album
	}
	return label
}

// ParseEntries splits raw multi-line text into Entries, one per non-empty line.
//
// Each line is split on the first occurrence of delimiter (left = artist,
// right = album, both trimmed). When the spaced delimiter is absent the line
// is split on its first "-" instead, so "Artist-Album" still parses. A line
// with no separator at all is skipped and reported in the returned warnings.
//
// The returned order matches input order; it determines row-major grid
// placement. Warnings are informational and never abort a build.
func ParseEntries(raw, delimiter string) ([]Entry, []string) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	var entries []Entry
	var warnings []string

	for i, line := range strings.Split(raw, "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}

		var artist, album string
		if before, after, ok := strings.Cut(s, delimiter); ok {
			artist, album = before, after
		} else if before, after, ok := strings.Cut(s, "-"); ok {
			artist, album = before, after
		} else {
			warnings = append(warnings, fmt.Sprintf("line %d: no %q separator in %q, skipped", i+1, delimiter, s))
			continue
		}

		entries = append(entries, Entry{
			Artist: strings.TrimSpace(artist),
			Album:  strings.TrimSpace(album),
		})
	}

	return entries, warnings
}
