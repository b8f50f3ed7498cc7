package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/album-collage/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Grid layout
	Columns     int `json:"columns"`
	Rows        int `json:"rows"`
	CellSize    int `json:"cell_size"`
	MarginWidth int `json:"margin_width"`
	FontSize    int `json:"font_size"`
	Padding     int `json:"padding"`
	LineSpacing int `json:"line_spacing"`

	// Entry parsing
	Delimiter string `json:"delimiter"`

	// Cover art lookup
	UserAgent        string `json:"user_agent"`
	ArtworkSize      int    `json:"artwork_size"`
	FetchConcurrency int    `json:"fetch_concurrency"`

	// Export
	OutputPath  string `json:"output_path"`
	JPEGQuality int    `json:"jpeg_quality"`

	// Text rendering; empty means the embedded default font.
	FontPath string `json:"font_path"`
}

// DefaultSettings returns settings with default values.
//
// The defaults produce a 4x4 grid of 300px cells with a 320px text margin,
// matching a 1520x1200 collage, and export to collage.png in the working
// directory.
func DefaultSettings() *Settings {
	return &Settings{
		Columns:     4,
		Rows:        4,
		CellSize:    300,
		MarginWidth: 320,
		FontSize:    20,
		Padding:     0,
		LineSpacing: 4,

		Delimiter: model.DefaultDelimiter,

		UserAgent:        "AlbumCollageMaker/1.1",
		ArtworkSize:      600,
		FetchConcurrency: 4,

		OutputPath:  "collage.png",
		JPEGQuality: 95,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so the tool always
// works without prior setup.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks every field against its declared constraint.
//
// Grid constraints are delegated to model.GridConfig; the remaining fields
// are checked here. The returned error names the offending field so it can
// be shown inline next to the input that caused it.
func (s *Settings) Validate() error {
	if err := s.ToGridConfig().Validate(); err != nil {
		return err
	}
	if s.JPEGQuality < 1 || s.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be in 1..100, got %d", s.JPEGQuality)
	}
	if s.FetchConcurrency <= 0 {
		return fmt.Errorf("fetch concurrency must be positive, got %d", s.FetchConcurrency)
	}
	if s.ArtworkSize <= 0 {
		return fmt.Errorf("artwork size must be positive, got %d", s.ArtworkSize)
	}
	return nil
}

// ToGridConfig converts settings to a model.GridConfig.
func (s *Settings) ToGridConfig() model.GridConfig {
	return model.GridConfig{
		Columns:     s.Columns,
		Rows:        s.Rows,
		CellSize:    s.CellSize,
		MarginWidth: s.MarginWidth,
		FontSize:    s.FontSize,
		Padding:     s.Padding,
		LineSpacing: s.LineSpacing,
	}
}
