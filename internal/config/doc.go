// Package config provides configuration management for album-collage.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Validation of user-supplied parameters
//   - Conversion to model.GridConfig for the composer
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// 4x4 grid, 300px cells, 320px margin, PNG export to collage.png
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Validation
//
// Validate rejects non-positive grid dimensions before a build or export is
// allowed to proceed; the error names the offending field:
//
//	settings.Columns = 0
//	err := settings.Validate() // "columns must be positive, got 0"
package config
