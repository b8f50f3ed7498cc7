package model

import "image"

// Cover is the result of one cover art lookup.
//
// A Cover always carries a usable Image: when the lookup failed for any
// reason (no network, zero search results, decode error) the Image is a
// solid-color placeholder and Err records why. Callers never need to
// nil-check Image.
type Cover struct {
	// Entry is the album entry this cover belongs to.
	Entry Entry

	// Image is the decoded cover art, or a placeholder. Never nil.
	Image image.Image

	// Placeholder reports whether Image is a fallback rather than
	// fetched artwork.
	Placeholder bool

	// Err is the reason the lookup fell back to a placeholder.
	// Nil when Placeholder is false, and also nil for empty entries
	// that were never looked up.
	Err error
}
