package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestOpenKinds(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		kind    string
		file    string
		wantErr bool
	}{
		{"text", "best.txt", false},
		{"", "default.txt", false},
		{"sqlite", "best.db", false},
		{"redis", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, err := Open(tt.kind, filepath.Join(dir, tt.file))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
			}
			if s != nil {
				s.Close()
			}
		})
	}
}

// Both stores must round-trip the same records.
func TestStoresAppendAndLoad(t *testing.T) {
	for _, kind := range []string{"text", "sqlite"} {
		t.Run(kind, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "scores")
			s, err := Open(kind, path)
			if err != nil {
				t.Fatalf("Open(%q) error = %v", kind, err)
			}
			defer s.Close()

			records, err := s.Load()
			if err != nil {
				t.Fatalf("Load() on empty store error = %v", err)
			}
			if len(records) != 0 {
				t.Errorf("Load() = %v, expected empty", records)
			}

			in := []core.ScoreRecord{{Name: "ana", Score: 120}, {Name: "bo", Score: 900}, {Name: "cy", Score: 120}}
			for _, r := range in {
				if err := s.Append(r); err != nil {
					t.Fatalf("Append(%v) error = %v", r, err)
				}
			}

			out, err := s.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(out) != len(in) {
				t.Fatalf("Load() returned %d records, expected %d", len(out), len(in))
			}
			for i := range in {
				if out[i] != in[i] {
					t.Errorf("Load()[%d] = %v, expected %v", i, out[i], in[i])
				}
			}

			if err := s.Clear(); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}
			if out, _ := s.Load(); len(out) != 0 {
				t.Errorf("Load() after Clear() = %v, expected empty", out)
			}
			if err := s.Clear(); err != nil {
				t.Errorf("Clear() on an empty store error = %v", err)
			}
		})
	}
}

func TestTextStoreFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.txt")
	s, err := OpenText(path)
	if err != nil {
		t.Fatalf("OpenText() error = %v", err)
	}

	if err := s.Append(core.ScoreRecord{Name: "a,b", Score: 42}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := string(data); got != "a b,42\n" {
		t.Errorf("file = %q, expected %q", got, "a b,42\n")
	}
}

func TestTextStoreSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.txt")
	content := "ana,100\n\nno comma\nbo,lots\n cy , 7 \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := OpenText(path)
	if err != nil {
		t.Fatalf("OpenText() error = %v", err)
	}
	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := []core.ScoreRecord{{Name: "ana", Score: 100}, {Name: "cy ", Score: 7}}
	if len(records) != len(expected) {
		t.Fatalf("Load() = %v, expected %v", records, expected)
	}
	for i := range expected {
		if records[i] != expected[i] {
			t.Errorf("Load()[%d] = %v, expected %v", i, records[i], expected[i])
		}
	}
}

func TestSQLiteStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteStoreTopScores(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if err := store.Append(core.ScoreRecord{Name: "p", Score: (i + 1) * 100}); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}
	store.Append(core.ScoreRecord{Name: "late", Score: 500})

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores(3) returned %d entries, expected 3", len(scores))
	}
	if scores[0].Score != 500 || scores[0].Name != "p" {
		t.Errorf("TopScores()[0] = %+v, expected the earlier 500", scores[0])
	}
	if scores[1].Name != "late" || scores[2].Score != 400 {
		t.Errorf("TopScores() order = %+v", scores)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Load() after Clear() = %v, expected empty", records)
	}
}

func TestSQLiteStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	store1.Append(core.ScoreRecord{Name: "kept", Score: 999})
	store1.Close()

	store2, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed on reopen: %v", err)
	}
	defer store2.Close()

	records, err := store2.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != 1 || records[0].Score != 999 {
		t.Errorf("Load() = %v, expected the record written before reopening", records)
	}
}
