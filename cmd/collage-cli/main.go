package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/album-collage/internal/build"
	"github.com/handiism/album-collage/internal/config"
)

func main() {
	// Command line flags
	var (
		inputFlag   = flag.String("input", "", "File with Artist - Album lines (default: stdin)")
		outputFlag  = flag.String("output", "", "Output image path, .png or .jpg (overrides config)")
		configFlag  = flag.String("config", "", "Path to config file")
		columnsFlag = flag.Int("columns", 0, "Grid columns (overrides config)")
		rowsFlag    = flag.Int("rows", 0, "Grid rows (overrides config)")
		cellFlag    = flag.Int("cell", 0, "Cell size in pixels (overrides config)")
		marginFlag  = flag.Int("margin", 0, "Text margin width in pixels (overrides config)")
		fontFlag    = flag.Int("font-size", 0, "Margin font size (overrides config)")
		paddingFlag = flag.Int("padding", -1, "Cell padding in pixels (overrides config)")
		qualityFlag = flag.Int("quality", 0, "JPEG quality 1-100 (overrides config)")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *columnsFlag > 0 {
		settings.Columns = *columnsFlag
	}
	if *rowsFlag > 0 {
		settings.Rows = *rowsFlag
	}
	if *cellFlag > 0 {
		settings.CellSize = *cellFlag
	}
	if *marginFlag > 0 {
		settings.MarginWidth = *marginFlag
	}
	if *fontFlag > 0 {
		settings.FontSize = *fontFlag
	}
	if *paddingFlag >= 0 {
		settings.Padding = *paddingFlag
	}
	if *qualityFlag > 0 {
		settings.JPEGQuality = *qualityFlag
	}
	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}

	// Read entry list
	rawText, err := readInput(*inputFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	if rawText == "" {
		fmt.Println("Album Collage Maker - compose album covers into a grid")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  collage-cli -input albums.txt -output collage.png [options]")
		fmt.Println("  cat albums.txt | collage-cli [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: collage-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager, err := build.NewManager(settings, func(event build.ProgressEvent) {
		if event.Level == build.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := "  "
		switch event.Level {
		case build.LevelError:
			prefix = "✗ "
		case build.LevelWarning:
			prefix = "! "
		case build.LevelSuccess:
			prefix = "✓ "
		case build.LevelInfo:
			prefix = "› "
		}

		fmt.Println(prefix + event.Message)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := manager.Build(ctx, rawText)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("Build cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error building collage: %v\n", err)
		os.Exit(1)
	}

	if err := manager.Export(settings.OutputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Done: %d covers placed (%d placeholders, %d dropped) -> %s\n",
		len(result.Entries), result.Placeholders, result.Dropped, settings.OutputPath)
}

func readInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	// Only read stdin when it is piped; an interactive terminal with no
	// input should print usage instead of blocking.
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}
	if stat.Mode()&os.ModeCharDevice != 0 {
		return "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
