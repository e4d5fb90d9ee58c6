package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// TextStore keeps one "name,score" record per line.
type TextStore struct {
	path string
}

// OpenText returns a store backed by the file at path. The file is created
// on the first Append.
func OpenText(path string) (*TextStore, error) {
	p, err := preparePath(path)
	if err != nil {
		return nil, err
	}
	return &TextStore{path: p}, nil
}

// Path returns the resolved file path.
func (s *TextStore) Path() string { return s.path }

// Load reads every record. A missing file is an empty table; malformed
// lines are skipped.
func (s *TextStore) Load() ([]core.ScoreRecord, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open file: %w", err)
	}
	defer f.Close()

	var records []core.ScoreRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rec, ok := parseLine(sc.Text())
		if ok {
			records = append(records, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read file: %w", err)
	}
	return records, nil
}

// Append adds rec at the end of the file.
func (s *TextStore) Append(rec core.ScoreRecord) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open file: %w", err)
	}
	name := strings.ReplaceAll(rec.Name, ",", " ")
	if _, err := fmt.Fprintf(f, "%s,%d\n", name, rec.Score); err != nil {
		f.Close()
		return fmt.Errorf("storage: cannot write score: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: cannot write score: %w", err)
	}
	return nil
}

// Clear removes every record.
func (s *TextStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Close is a no-op; the file is opened per call.
func (s *TextStore) Close() error { return nil }

func parseLine(line string) (core.ScoreRecord, bool) {
	name, score, ok := strings.Cut(strings.TrimSpace(line), ",")
	if !ok {
		return core.ScoreRecord{}, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(score))
	if err != nil {
		return core.ScoreRecord{}, false
	}
	return core.ScoreRecord{Name: name, Score: n}, true
}
