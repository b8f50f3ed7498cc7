package itunes

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/handiism/album-collage/internal/http"
	"github.com/handiism/album-collage/internal/itunes/dto"
)

// SearchURL is the public, keyless iTunes Search API endpoint.
const SearchURL = "https://itunes.apple.com/search"

// ErrNoResults is returned when a search matches no albums.
//
// This typically occurs when:
//   - The artist or album name is misspelled
//   - The album is not in the iTunes catalog
//   - The first result carries no artwork URL
var ErrNoResults = errors.New("no results for search term")

// Client queries the iTunes Search API for album artwork.
//
// Example usage:
//
//	client := NewClient(httpClient, 600)
//	artURL, err := client.LookupArtworkURL(ctx, "Pink Floyd", "The Wall")
//	if errors.Is(err, itunes.ErrNoResults) {
//	    // fall back to a placeholder
//	}
type Client struct {
	http        *http.Client
	baseURL     string
	artworkSize int
}

// NewClient creates a Client that requests artwork at artworkSize pixels
// square (600 matches the best rendition iTunes reliably serves).
func NewClient(httpClient *http.Client, artworkSize int) *Client {
	return &Client{
		http:        httpClient,
		baseURL:     SearchURL,
		artworkSize: artworkSize,
	}
}

// LookupArtworkURL searches for "artist album" and returns the first
// result's artwork URL, upgraded to the configured resolution.
//
// One GET, no retries: the tool is best-effort by design and the caller
// substitutes a placeholder on any error.
func (c *Client) LookupArtworkURL(ctx context.Context, artist, album string) (string, error) {
	term := strings.TrimSpace(artist + " " + album)

	q := url.Values{}
	q.Set("term", term)
	q.Set("media", "music")
	q.Set("entity", "album")
	q.Set("limit", "1")

	var resp dto.SearchResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"?"+q.Encode(), &resp); err != nil {
		return "", fmt.Errorf("searching %q: %w", term, err)
	}

	if resp.ResultCount == 0 || len(resp.Results) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoResults, term)
	}

	artURL := resp.Results[0].HighResArtworkURL(c.artworkSize)
	if artURL == "" {
		return "", fmt.Errorf("%w: %q has no artwork", ErrNoResults, term)
	}

	return artURL, nil
}
