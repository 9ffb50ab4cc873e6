package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/albiontools/icon-downloader/internal/config"
	"github.com/albiontools/icon-downloader/internal/download"
	"github.com/albiontools/icon-downloader/internal/items"
)

func main() {
	// Command line flags
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		itemsFlag   = flag.String("items", "", "YAML overlay of extra name: identifier pairs")
		baseURLFlag = flag.String("base-url", "", "Render CDN base URL (overrides config)")
		dryRunFlag  = flag.Bool("dry-run", false, "Resolve lines without downloading")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
		helpFlag    = flag.Bool("help", false, "Show usage")
	)

	flag.Parse()

	if *helpFlag {
		fmt.Println("Albion Icon Downloader - Download item icons from the render CDN")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  albion-dl [options] [input-file] [output-dir]")
		fmt.Println()
		fmt.Println("Input file lines: Name, tier[, enchant[, quality]]")
		fmt.Println("Defaults: downloads.txt and downloads/")
		fmt.Println()
		fmt.Println("For interactive mode, use: albion-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(0)
	}

	// Load config
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags and positional arguments
	if flag.NArg() >= 1 {
		settings.InputPath = flag.Arg(0)
	}
	if flag.NArg() >= 2 {
		settings.OutputDir = flag.Arg(1)
	}
	if *baseURLFlag != "" {
		settings.BaseURL = *baseURLFlag
	}
	if *itemsFlag != "" {
		settings.ItemsOverlayPath = *itemsFlag
	}

	// Load the item table
	table, err := items.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading item data: %v\n", err)
		os.Exit(1)
	}
	if settings.ItemsOverlayPath != "" {
		if err := table.ApplyOverlay(settings.ItemsOverlayPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading item overlay: %v\n", err)
			os.Exit(1)
		}
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

	// Create manager with console reporting
	manager := download.NewManager(settings, table, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "[FAIL] "
		case download.LevelWarning:
			prefix = "[WARN] "
		case download.LevelSuccess:
			prefix = "[OK] "
		default:
			prefix = "[INFO] "
		}

		fmt.Println(prefix + event.Message)
	})
	manager.DryRun = *dryRunFlag

	if err := manager.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nRun cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	processed, total, succeeded, failed := manager.Progress()
	if total > 0 {
		fmt.Println()
		fmt.Printf("[INFO] Processed %d/%d line(s): %d downloaded, %d kept for retry.\n",
			processed, total, succeeded, failed)
	}
}
