package dto

import (
	"fmt"
	"regexp"
)

// thumbnailToken matches the size segment of an iTunes artwork URL,
// e.g. the "100x100bb." in ".../source/100x100bb.jpg".
var thumbnailToken = regexp.MustCompile(`/\d+x\d+bb\.`)

// SearchResponse represents the deserialized body of an iTunes Search API
// response.
type SearchResponse struct {
	ResultCount int      `json:"resultCount"`
	Results     []Result `json:"results"`
}

// Result is one album hit in a search response. Only the fields the
// collage needs are mapped; the API returns many more.
type Result struct {
	ArtistName     string `json:"artistName"`
	CollectionName string `json:"collectionName"`

	// ArtworkURL100 points at a 100x100 thumbnail. Use HighResArtworkURL
	// to request a larger rendition of the same image.
	ArtworkURL100 string `json:"artworkUrl100"`
}

// HighResArtworkURL rewrites the thumbnail URL to request size x size
// pixels. iTunes serves the same asset at arbitrary requested sizes by
// substituting the dimension token in the path.
//
// Returns an empty string when the result carries no artwork URL.
//
// Example:
//
//	r.ArtworkURL100 // .../100x100bb.jpg
//	r.HighResArtworkURL(600) // .../600x600bb.jpg
func (r Result) HighResArtworkURL(size int) string {
	if r.ArtworkURL100 == "" {
		return ""
	}
	return thumbnailToken.ReplaceAllString(r.ArtworkURL100, fmt.Sprintf("/%dx%dbb.", size, size))
}
