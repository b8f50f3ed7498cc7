// Package itunes looks up album cover art through the public iTunes
// Search API.
//
// The package handles two main use cases:
//
//  1. Resolving an artist/album pair to a high-resolution artwork URL
//  2. Downloading and decoding covers for a whole entry list, with
//     guaranteed placeholder fallback
//
// # Artwork Lookup
//
// Client performs one search per entry and upgrades the returned 100x100
// thumbnail URL to the requested resolution:
//
//	client := itunes.NewClient(httpClient, 600)
//	artURL, err := client.LookupArtworkURL(ctx, "Daft Punk", "Discovery")
//
// # Fetching Covers
//
// Fetcher collapses every failure mode to a solid-color placeholder so
// callers always receive a drawable image:
//
//	fetcher := itunes.NewFetcher(client, httpClient, 600, 4)
//	covers := fetcher.FetchAll(ctx, entries, nil)
//	// covers[i].Image is never nil
//
// # API Shape
//
// The search endpoint is keyless and returns JSON of the form
// {"resultCount": N, "results": [{"artworkUrl100": ...}, ...]}; only the
// first result is consulted. Lookups are best-effort with no retry loop.
package itunes
