package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/photovault/internal/adapter"
	"github.com/mmcdole/photovault/internal/adapter/source"
	"github.com/mmcdole/photovault/internal/picker"
	"github.com/mmcdole/photovault/internal/service"
	"github.com/mmcdole/photovault/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// ErrNotATerminal is returned when stdout is redirected
var ErrNotATerminal = errors.New("photovault needs an interactive terminal")

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("photovault %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotATerminal
	}

	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting photovault", "version", Version, "source", cfg.Source.Type, "base_url", cfg.Source.BaseURL)

	// Create photo source client
	client, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create photo source: %w", err)
	}

	// Create launcher (uses configured viewer or auto-detects)
	launcher := adapter.NewLauncher(cfg.Viewer.Command, cfg.Viewer.Args, logger)

	// Create services
	vaultSvc := service.NewVaultService(client, logger)
	viewerSvc := service.NewViewerService(launcher, logger)

	// Create TUI model
	model := tui.NewModel(vaultSvc, viewerSvc, tui.Config{
		GridColumns:   cfg.UI.GridColumns,
		EndThreshold:  cfg.UI.EndThreshold,
		FetchTimeout:  cfg.Source.Timeout,
		PickerDir:     cfg.Picker.StartDir,
		ShowHidden:    cfg.Picker.ShowHidden,
		PickerOptions: picker.DefaultOptions(),
	}, logger)

	// Run the TUI
	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
