package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultSettings_Valid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("default settings should validate: %v", err)
	}
}

func TestValidate_RejectsBadFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero columns", func(s *Settings) { s.Columns = 0 }},
		{"negative rows", func(s *Settings) { s.Rows = -2 }},
		{"zero cell size", func(s *Settings) { s.CellSize = 0 }},
		{"zero font size", func(s *Settings) { s.FontSize = 0 }},
		{"negative padding", func(s *Settings) { s.Padding = -5 }},
		{"quality too high", func(s *Settings) { s.JPEGQuality = 101 }},
		{"quality zero", func(s *Settings) { s.JPEGQuality = 0 }},
		{"zero concurrency", func(s *Settings) { s.FetchConcurrency = 0 }},
		{"zero artwork size", func(s *Settings) { s.ArtworkSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if settings.Columns != DefaultSettings().Columns {
		t.Errorf("expected default columns, got %d", settings.Columns)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.Columns = 5
	settings.JPEGQuality = 80
	settings.OutputPath = "wall.jpg"

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Columns != 5 || loaded.JPEGQuality != 80 || loaded.OutputPath != "wall.jpg" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	// Fields absent from the file keep their defaults.
	if loaded.CellSize != 300 {
		t.Errorf("CellSize = %d, want default 300", loaded.CellSize)
	}
}

func TestToGridConfig(t *testing.T) {
	s := DefaultSettings()
	g := s.ToGridConfig()
	if g.Columns != s.Columns || g.CellSize != s.CellSize || g.MarginWidth != s.MarginWidth {
		t.Errorf("ToGridConfig lost fields: %+v", g)
	}
}
