// Package http provides an HTTP client configured for cover art lookups.
//
// The Client in this package handles:
//   - User-Agent headers on every outbound request
//   - JSON decoding of search API responses
//   - In-memory artwork downloads
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient("AlbumCollageMaker/1.1")
//
//	// Decode a JSON search response
//	var out dto.SearchResponse
//	err := client.GetJSON(ctx, searchURL, &out)
//
//	// Download artwork
//	data, err := client.DownloadBytes(ctx, artworkURL)
package http
