package build

import (
	"context"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/handiism/album-collage/internal/collage"
	"github.com/handiism/album-collage/internal/config"
	"github.com/handiism/album-collage/internal/http"
	"github.com/handiism/album-collage/internal/imaging"
	"github.com/handiism/album-collage/internal/itunes"
	"github.com/handiism/album-collage/internal/model"
	"github.com/handiism/album-collage/internal/text"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a build progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// CoverFetcher resolves entries to covers. Satisfied by itunes.Fetcher;
// tests substitute a stub so builds run without the network.
type CoverFetcher interface {
	FetchAll(ctx context.Context, entries []model.Entry, onFetched func(model.Cover)) []model.Cover
}

// Result holds the outcome of one collage build.
type Result struct {
	// Entries are the entries actually placed, in grid order.
	Entries []model.Entry

	// Dropped is how many trailing entries were discarded because the
	// grid had no cell for them.
	Dropped int

	// Placeholders is how many placed covers fell back to a placeholder.
	Placeholders int

	// Warnings collects parse warnings and per-cover failure reasons.
	Warnings []string

	// Image is the composed collage. Nil only when the build failed
	// outright (invalid configuration or empty input).
	Image *image.RGBA
}

// Manager coordinates collage builds: parse, fetch, compose, export.
//
// A Manager is created once per session; Build may be called repeatedly
// as the user edits the entry list or settings. The most recent collage
// is retained for preview and export.
type Manager struct {
	settings *config.Settings
	fetcher  CoverFetcher
	composer *collage.Composer

	totalCovers   int32
	fetchedCovers int32

	onProgress func(ProgressEvent)

	mu     sync.RWMutex
	result *Result
}

// NewManager creates a Manager wired to the iTunes search API.
//
// Settings must have passed Validate: the font face is built here, so an
// invalid FontSize or FontPath surfaces immediately rather than mid-build.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) (*Manager, error) {
	face, err := text.LoadFace(settings.FontPath, settings.FontSize)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}

	httpClient := http.NewClient(settings.UserAgent)
	searchClient := itunes.NewClient(httpClient, settings.ArtworkSize)
	fetcher := itunes.NewFetcher(searchClient, httpClient, settings.ArtworkSize, settings.FetchConcurrency)

	return &Manager{
		settings:   settings,
		fetcher:    fetcher,
		composer:   collage.NewComposer(face),
		onProgress: onProgress,
	}, nil
}

// Build parses rawText, fetches a cover per entry and composes the grid.
//
// Parse warnings, capacity overflow and fetch failures are reported as
// progress events and collected on the Result; none of them fail the
// build. Build fails only for invalid settings, an entry list that
// parses to nothing, or a cancelled context.
func (m *Manager) Build(ctx context.Context, rawText string) (*Result, error) {
	if err := m.settings.Validate(); err != nil {
		return nil, err
	}
	cfg := m.settings.ToGridConfig()

	entries, warnings := model.ParseEntries(rawText, m.settings.Delimiter)
	for _, w := range warnings {
		m.progress(ProgressEvent{Message: w, Level: LevelWarning})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries parsed from input")
	}

	res := &Result{Warnings: warnings}

	// Capacity policy: entries beyond the grid are dropped with a
	// warning, keeping the build best-effort end to end.
	if capacity := cfg.Capacity(); len(entries) > capacity {
		res.Dropped = len(entries) - capacity
		entries = entries[:capacity]
		msg := fmt.Sprintf("grid holds %d covers, dropping %d extra entr%s",
			capacity, res.Dropped, plural(res.Dropped, "y", "ies"))
		m.progress(ProgressEvent{Message: msg, Level: LevelWarning})
		res.Warnings = append(res.Warnings, msg)
	}
	res.Entries = entries

	atomic.StoreInt32(&m.totalCovers, int32(len(entries)))
	atomic.StoreInt32(&m.fetchedCovers, 0)

	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %d covers...", len(entries)), Level: LevelInfo})

	covers := m.fetcher.FetchAll(ctx, entries, func(c model.Cover) {
		atomic.AddInt32(&m.fetchedCovers, 1)
		if c.Err != nil {
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("%s: using placeholder (%v)", c.Entry.Label(), c.Err),
				Level:   LevelWarning,
			})
		} else if !c.Placeholder {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Fetched cover: %s", c.Entry.Label()), Level: LevelVerbose})
		}
	})

	// A cancelled fetch yields a full grid of placeholders, not a
	// collage; surface the cancellation instead of composing it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, c := range covers {
		if c.Placeholder {
			res.Placeholders++
		}
		if c.Err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", c.Entry.Label(), c.Err))
		}
	}

	m.progress(ProgressEvent{Message: "Composing collage...", Level: LevelInfo})
	res.Image = m.composer.Compose(covers, cfg)

	m.mu.Lock()
	m.result = res
	m.mu.Unlock()

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Collage ready (%dx%d)", res.Image.Bounds().Dx(), res.Image.Bounds().Dy()),
		Level:   LevelSuccess,
	})

	return res, nil
}

// Export writes the most recent collage to path, inferring PNG or JPEG
// from the extension.
//
// Export errors are terminal for the export action only; the retained
// collage stays available for preview and another attempt.
func (m *Manager) Export(path string) error {
	m.mu.RLock()
	res := m.result
	m.mu.RUnlock()

	if res == nil || res.Image == nil {
		return fmt.Errorf("no collage built yet")
	}

	format, err := imaging.FormatFromPath(path)
	if err != nil {
		return err
	}

	if err := imaging.Export(res.Image, path, format, m.settings.JPEGQuality); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Export failed: %v", err), Level: LevelError})
		return err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved: %s", path), Level: LevelSuccess})
	return nil
}

// Result returns the most recent build result, or nil before the first
// successful Build.
func (m *Manager) Result() *Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.result
}

// GetProgress returns how many covers of the current build have been
// fetched so far. Safe to call from another goroutine while Build runs.
func (m *Manager) GetProgress() (fetched, total int32) {
	return atomic.LoadInt32(&m.fetchedCovers), atomic.LoadInt32(&m.totalCovers)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
