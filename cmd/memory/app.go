package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memory-match/internal/catalog"
	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/stats"
	"github.com/vovakirdan/memory-match/internal/storage"
)

// loadGameConfig resolves the theme and the level presets and checks that
// the theme has enough symbols for every level.
func loadGameConfig() (config.Presets, catalog.Catalog, error) {
	cat, err := catalog.Get(flagTheme)
	if err != nil {
		names := make([]string, 0)
		for _, c := range catalog.List() {
			names = append(names, c.Name)
		}
		return config.Presets{}, catalog.Catalog{}, fmt.Errorf("%w (available: %s)", err, strings.Join(names, ", "))
	}

	presets, err := config.LoadLevels(flagConfig)
	if err != nil {
		return config.Presets{}, catalog.Catalog{}, err
	}
	if err := presets.Validate(cat.Len()); err != nil {
		return config.Presets{}, catalog.Catalog{}, err
	}
	return presets, cat, nil
}

// newFileLogger returns a logger writing to path. The TUI owns the terminal,
// so logs never go to stderr while playing. If the file cannot be opened
// logging is discarded.
func newFileLogger(path string) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if expanded, err := config.ExpandHome(path); err == nil && path != "" {
		//nolint:errcheck // Best-effort directory creation
		os.MkdirAll(filepath.Dir(expanded), 0o755)
		if f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	return newLogger(w, "memory"), closeFn
}

// newLogger builds a logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openStats opens the database and wraps it in the stats adapter. Without a
// database the game still works; stats then last for this run only.
func openStats(logger *log.Logger) (*storage.Store, *stats.Stats) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open stats database", "path", flagDBPath, "error", err)
		return nil, stats.New(nil, logger)
	}
	return store, stats.New(store, logger)
}
