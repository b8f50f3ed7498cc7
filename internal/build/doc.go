// Package build coordinates the whole collage pipeline: parsing the
// entry list, fetching covers, composing the grid and exporting it.
//
// # Manager
//
// Manager is the session object both frontends share. It owns the current
// settings and the most recent collage, and reports progress through a
// callback so the CLI can print events and the TUI can render them:
//
//	manager, err := build.NewManager(settings, func(e build.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	result, err := manager.Build(ctx, rawText)
//	err = manager.Export("collage.png")
//
// # Error Handling
//
// Parse warnings, entries beyond grid capacity and fetch failures never
// abort a build; they surface as Warning-level events and on the Result.
// Build itself fails only on invalid settings, an entry list that parses
// to nothing, or a cancelled context. A failed Export leaves the built
// collage intact for another try.
package build
