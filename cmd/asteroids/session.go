package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.AsteroidsConfig, error) {
	cfg, err := config.LoadAsteroids(path)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyAsteroidsPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

// runtimeConfig builds the host settings, seeding from the clock when seed is 0.
func runtimeConfig(fps int, seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if fps > 0 {
		rc.TickRate = fps
	}
	rc.Seed = seed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc
}

// openStore opens the best scores store, falling back to its default path.
func openStore(kind, path string) (storage.Store, error) {
	if path == "" {
		path = storage.DefaultPath(kind)
	}
	return storage.Open(kind, path)
}

// newLogger returns a file logger and a func closing the file. An empty
// path discards every record.
func newLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if path != "" {
		path, err = expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //#nosec G304 -- path comes from the user
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
