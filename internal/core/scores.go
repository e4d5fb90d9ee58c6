package core

// ScoreRecord is one entry of the best-scores table.
type ScoreRecord struct {
	Name  string
	Score int
}
