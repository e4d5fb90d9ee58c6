// Package storage persists the best-scores table. TextStore keeps the
// classic "name,score" file; SQLiteStore uses the pure-Go modernc.org/sqlite
// driver to avoid CGO dependencies.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Store is a best-scores store that must be closed when the game ends.
type Store interface {
	Load() ([]core.ScoreRecord, error)
	Append(rec core.ScoreRecord) error
	Clear() error
	Close() error
}

// Open opens the store of the given kind ("text" or "sqlite") at path.
func Open(kind, path string) (Store, error) {
	switch kind {
	case "", "text":
		s, err := OpenText(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown store %q (expected text or sqlite)", kind)
	}
}

// DefaultPath returns the default location for the given store kind.
func DefaultPath(kind string) string {
	if kind == "sqlite" {
		return "~/.asteroids/scores.db"
	}
	return "~/.asteroids/best_scores.txt"
}

// preparePath expands a leading ~ and creates the parent directories.
func preparePath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
