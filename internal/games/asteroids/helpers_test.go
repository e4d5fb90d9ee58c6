package asteroids

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const (
	testW = 800
	testH = 600
)

// recordingSound remembers what the game asked to play.
type recordingSound struct {
	loadErr error
	loaded  []core.SoundID
	played  []core.SoundID
	looping map[core.SoundID]bool
	volume  float64
}

func newRecordingSound() *recordingSound {
	return &recordingSound{looping: make(map[core.SoundID]bool)}
}

func (s *recordingSound) Load(ids []core.SoundID) error {
	if s.loadErr != nil {
		return s.loadErr
	}
	s.loaded = append(s.loaded, ids...)
	return nil
}

func (s *recordingSound) Play(id core.SoundID, loop bool) {
	s.played = append(s.played, id)
	if loop {
		s.looping[id] = true
	}
}

func (s *recordingSound) Stop(id core.SoundID) { delete(s.looping, id) }
func (s *recordingSound) StopAll()             { clear(s.looping) }
func (s *recordingSound) SetMasterVolume(v float64) {
	s.volume = v
}

func (s *recordingSound) count(id core.SoundID) int {
	n := 0
	for _, p := range s.played {
		if p == id {
			n++
		}
	}
	return n
}

// memoryStore is an in-memory ScoreStore.
type memoryStore struct {
	records []core.ScoreRecord
	err     error
}

func (m *memoryStore) Load() ([]core.ScoreRecord, error) { return m.records, nil }

func (m *memoryStore) Append(rec core.ScoreRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func testRenderer() core.NopRenderer {
	return core.NopRenderer{W: testW, H: testH}
}

func newTestGame(t *testing.T, seed int64, opts ...Option) (*Game, *recordingSound) {
	t.Helper()
	snd := newRecordingSound()
	g, err := New(config.DefaultAsteroidsConfig(), core.RuntimeConfig{TickRate: 60, Seed: seed}, testRenderer(), snd, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g, snd
}

// startedGame returns a game that has been restarted into play.
func startedGame(t *testing.T, seed int64, opts ...Option) (*Game, *recordingSound) {
	t.Helper()
	g, snd := newTestGame(t, seed, opts...)
	g.Restart()
	return g, snd
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
