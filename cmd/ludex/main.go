package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ludex/internal/collection"
	"ludex/internal/config"
	"ludex/internal/log"
	"ludex/internal/store"
	"ludex/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("ludex %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting ludex", "version", Version)

	// First run: write a starter config so users have a file to edit
	if config.FileUsed() == "" {
		if err := config.SaveConfig(cfg); err != nil {
			logger.Warn("failed to write default config", "error", err)
		} else {
			logger.Info("wrote default config")
		}
	}

	kv, err := store.Open(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer kv.Close()

	col := collection.NewStore(kv, logger)
	col.Load()
	col.LoadTheme()

	model := tui.NewModel(col)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI", "entries", col.Len(), "theme", col.Theme())

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
