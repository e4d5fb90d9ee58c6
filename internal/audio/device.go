// Package audio plays the game sounds through gopxl/beep. Each sound is
// loaded from <dir>/<id>.wav when present and synthesized otherwise.
package audio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// sink is where the master stream ends up.
type sink interface {
	start(rate beep.SampleRate, s beep.Streamer) error
	lock()
	unlock()
}

type speakerSink struct{}

func (speakerSink) start(rate beep.SampleRate, s beep.Streamer) error {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func (speakerSink) lock()   { speaker.Lock() }
func (speakerSink) unlock() { speaker.Unlock() }

// Device implements core.SoundDevice on the system speaker.
type Device struct {
	mu      sync.Mutex
	dir     string
	log     *log.Logger
	out     sink
	started bool

	mixer   *beep.Mixer
	master  *effects.Volume
	buffers map[core.SoundID]*beep.Buffer
	loops   map[core.SoundID]*beep.Ctrl
}

// NewDevice creates a device reading sound files from dir. An empty dir
// uses synthesized sounds only.
func NewDevice(dir string, logger *log.Logger) *Device {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &Device{
		dir:     dir,
		log:     logger,
		out:     speakerSink{},
		mixer:   mixer,
		master:  volumeEffect(mixer, 1),
		buffers: make(map[core.SoundID]*beep.Buffer),
		loops:   make(map[core.SoundID]*beep.Ctrl),
	}
}

// Load opens the speaker on first use and buffers every sound in ids.
func (d *Device) Load(ids []core.SoundID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.started {
		if err := d.out.start(sampleRate, d.master); err != nil {
			return fmt.Errorf("audio: cannot open speaker: %w", err)
		}
		d.started = true
	}

	for i, id := range ids {
		buf, err := loadBuffer(d.dir, id, int64(i))
		if err != nil {
			return err
		}
		d.buffers[id] = buf
	}
	d.log.Debug("sounds loaded", "count", len(ids), "dir", d.dir)
	return nil
}

// Play starts id from the beginning. A looping sound that is already
// playing is left alone.
func (d *Device) Play(id core.SoundID, loop bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf, ok := d.buffers[id]
	if !ok || !d.started {
		return
	}

	d.out.lock()
	defer d.out.unlock()

	s := buf.Streamer(0, buf.Len())
	if !loop {
		d.mixer.Add(s)
		return
	}
	if ctrl, ok := d.loops[id]; ok && !ctrl.Paused {
		return
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, s)}
	d.loops[id] = ctrl
	d.mixer.Add(ctrl)
}

// Stop silences a looping sound.
func (d *Device) Stop(id core.SoundID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ctrl, ok := d.loops[id]
	if !ok {
		return
	}
	d.out.lock()
	ctrl.Paused = true
	ctrl.Streamer = nil
	d.out.unlock()
	delete(d.loops, id)
}

// StopAll silences every sound.
func (d *Device) StopAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.out.lock()
	for _, ctrl := range d.loops {
		ctrl.Paused = true
		ctrl.Streamer = nil
	}
	d.mixer.Clear()
	d.out.unlock()
	clear(d.loops)
}

// SetMasterVolume sets the output level in [0, 1].
func (d *Device) SetMasterVolume(v float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	v = core.ClampF(v, 0, 1)
	d.out.lock()
	setVolume(d.master, v)
	d.out.unlock()
}

// loadBuffer decodes <dir>/<id>.wav, resampled to the device rate, or
// synthesizes the sound when the file does not exist.
func loadBuffer(dir string, id core.SoundID, seed int64) (*beep.Buffer, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})

	if dir != "" {
		path := filepath.Join(dir, string(id)+".wav")
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			s, format, err := wav.Decode(f)
			if err != nil {
				return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
			}
			defer s.Close()
			var src beep.Streamer = s
			if format.SampleRate != sampleRate {
				src = beep.Resample(4, format.SampleRate, sampleRate, s)
			}
			buf.Append(src)
			return buf, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
		}
	}

	s, err := synthesize(id, sampleRate, seed)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot synthesize %s: %w", id, err)
	}
	buf.Append(s)
	return buf, nil
}

// volumeEffect wraps s in a base-2 volume control set to v.
func volumeEffect(s beep.Streamer, v float64) *effects.Volume {
	e := &effects.Volume{Streamer: s, Base: 2}
	setVolume(e, v)
	return e
}

// setVolume maps a linear level to the logarithmic beep scale. Log2(0) is
// -Inf, so zero becomes silence.
func setVolume(e *effects.Volume, v float64) {
	if v <= 0 {
		e.Volume = 0
		e.Silent = true
		return
	}
	e.Volume = math.Log2(v)
	e.Silent = false
}
