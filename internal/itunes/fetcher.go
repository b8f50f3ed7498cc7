package itunes

import (
	"context"
	"fmt"

	"github.com/handiism/album-collage/internal/http"
	"github.com/handiism/album-collage/internal/imaging"
	"github.com/handiism/album-collage/internal/model"
	"golang.org/x/sync/errgroup"
)

// Fetcher turns album entries into covers, falling back to placeholders.
//
// Every lookup failure mode collapses to a placeholder cover so the composer
// never sees a nil or zero-size image: no network, zero search results,
// a malformed response, and an undecodable download all behave the same.
type Fetcher struct {
	client      *Client
	http        *http.Client
	artworkSize int
	concurrency int
}

// NewFetcher creates a Fetcher.
//
// concurrency bounds the number of lookups in flight at once; the result
// order is always the entry order regardless of completion order.
func NewFetcher(client *Client, httpClient *http.Client, artworkSize, concurrency int) *Fetcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Fetcher{
		client:      client,
		http:        httpClient,
		artworkSize: artworkSize,
		concurrency: concurrency,
	}
}

// FetchCover looks up and downloads the cover for one entry.
//
// The returned Cover always carries a usable image. Empty entries skip the
// network entirely and get the blank-cell placeholder.
func (f *Fetcher) FetchCover(ctx context.Context, entry model.Entry) model.Cover {
	if entry.IsEmpty() {
		return model.Cover{
			Entry:       entry,
			Image:       imaging.BlankPlaceholder(f.artworkSize),
			Placeholder: true,
		}
	}

	artURL, err := f.client.LookupArtworkURL(ctx, entry.Artist, entry.Album)
	if err != nil {
		return f.placeholder(entry, err)
	}

	data, err := f.http.DownloadBytes(ctx, artURL)
	if err != nil {
		return f.placeholder(entry, fmt.Errorf("downloading artwork: %w", err))
	}

	img, err := imaging.DecodeCover(data)
	if err != nil {
		return f.placeholder(entry, fmt.Errorf("decoding artwork: %w", err))
	}

	return model.Cover{Entry: entry, Image: img}
}

// FetchAll fetches covers for all entries, bounded by the configured
// concurrency, and reports completion of each through onFetched (may be
// nil; called from worker goroutines, so it must be safe for concurrent
// use). Result index i corresponds to entries[i].
//
// FetchAll never fails: per-entry errors are recorded on the covers.
func (f *Fetcher) FetchAll(ctx context.Context, entries []model.Entry, onFetched func(model.Cover)) []model.Cover {
	covers := make([]model.Cover, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			covers[i] = f.FetchCover(ctx, entry)
			if onFetched != nil {
				onFetched(covers[i])
			}
			return nil
		})
	}

	g.Wait() // no worker returns an error

	return covers
}

func (f *Fetcher) placeholder(entry model.Entry, err error) model.Cover {
	return model.Cover{
		Entry:       entry,
		Image:       imaging.FailedPlaceholder(f.artworkSize),
		Placeholder: true,
		Err:         err,
	}
}
