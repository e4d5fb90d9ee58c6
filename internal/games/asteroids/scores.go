package asteroids

import (
	"sort"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ScoreStore persists best scores between runs.
type ScoreStore interface {
	Load() ([]core.ScoreRecord, error)
	Append(rec core.ScoreRecord) error
}

// BestScores is the in-memory table, always sorted by descending score.
// Equal scores keep insertion order.
type BestScores struct {
	records []core.ScoreRecord
	shown   int
}

// NewBestScores creates a table that compares against its top shown entries.
func NewBestScores(shown int, records []core.ScoreRecord) *BestScores {
	b := &BestScores{shown: shown}
	for _, r := range records {
		b.Insert(r)
	}
	return b
}

// Insert adds a record, keeping the table sorted.
func (b *BestScores) Insert(rec core.ScoreRecord) {
	i := sort.Search(len(b.records), func(i int) bool {
		return b.records[i].Score < rec.Score
	})
	b.records = append(b.records, core.ScoreRecord{})
	copy(b.records[i+1:], b.records[i:])
	b.records[i] = rec
}

// Qualifies reports whether score would enter the visible table. With a
// partly filled table any positive score qualifies.
func (b *BestScores) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	top := b.Top()
	if len(top) < b.shown {
		return true
	}
	for _, r := range top {
		if score > r.Score {
			return true
		}
	}
	return false
}

// Top returns up to shown records, best first.
func (b *BestScores) Top() []core.ScoreRecord {
	n := min(b.shown, len(b.records))
	out := make([]core.ScoreRecord, n)
	copy(out, b.records)
	return out
}

// All returns every record, best first.
func (b *BestScores) All() []core.ScoreRecord {
	out := make([]core.ScoreRecord, len(b.records))
	copy(out, b.records)
	return out
}

// Len returns the number of records.
func (b *BestScores) Len() int {
	return len(b.records)
}
