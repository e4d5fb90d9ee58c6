package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// wave is an oscillator shape.
type wave int

const (
	waveSine wave = iota
	waveSquare
	waveNoise
)

// tone describes a synthesized fallback for one sound.
type tone struct {
	wave     wave
	freq     float64
	sweep    float64 // Hz per second, may be negative
	duration time.Duration
	gain     float64
}

// tones are used when no <id>.wav file is found.
var tones = map[core.SoundID][]tone{
	core.SoundBonus: {
		{wave: waveSine, freq: 880, duration: 120 * time.Millisecond, gain: 0.5},
		{wave: waveSine, freq: 1320, duration: 180 * time.Millisecond, gain: 0.5},
	},
	core.SoundShield:        {{wave: waveSine, freq: 330, sweep: 900, duration: 250 * time.Millisecond, gain: 0.4}},
	core.SoundShipFire:      {{wave: waveSquare, freq: 1400, sweep: -6000, duration: 90 * time.Millisecond, gain: 0.25}},
	core.SoundBangLarge:     {{wave: waveNoise, duration: 600 * time.Millisecond, gain: 0.6}},
	core.SoundBangMedium:    {{wave: waveNoise, duration: 400 * time.Millisecond, gain: 0.5}},
	core.SoundBangSmall:     {{wave: waveNoise, duration: 250 * time.Millisecond, gain: 0.4}},
	core.SoundSaucerBig:     {{wave: waveSquare, freq: 180, sweep: 200, duration: 300 * time.Millisecond, gain: 0.15}},
	core.SoundSaucerSmall:   {{wave: waveSquare, freq: 420, sweep: 600, duration: 200 * time.Millisecond, gain: 0.15}},
	core.SoundShipThrust:    {{wave: waveNoise, duration: 200 * time.Millisecond, gain: 0.2}},
	core.SoundShipExplosion: {{wave: waveNoise, duration: 900 * time.Millisecond, gain: 0.7}},
	core.SoundTrails: {
		{wave: waveSine, freq: 220, duration: 400 * time.Millisecond, gain: 0.3},
		{wave: waveSine, freq: 196, duration: 400 * time.Millisecond, gain: 0.3},
		{wave: waveSine, freq: 165, duration: 800 * time.Millisecond, gain: 0.3},
	},
}

// synthesize renders the tone sequence for id. Unknown ids get a short beep.
func synthesize(id core.SoundID, rate beep.SampleRate, seed int64) (beep.Streamer, error) {
	parts, ok := tones[id]
	if !ok {
		parts = []tone{{wave: waveSine, freq: 660, duration: 100 * time.Millisecond, gain: 0.3}}
	}

	rng := rand.New(rand.NewSource(seed))
	streams := make([]beep.Streamer, 0, len(parts))
	for _, p := range parts {
		s, err := p.streamer(rate, rng)
		if err != nil {
			return nil, err
		}
		streams = append(streams, s)
	}
	return beep.Seq(streams...), nil
}

func (t tone) streamer(rate beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	n := rate.N(t.duration)
	var src beep.Streamer
	switch {
	case t.wave == waveSine && t.sweep == 0:
		sine, err := generators.SineTone(rate, t.freq)
		if err != nil {
			return nil, err
		}
		src = sine
	default:
		src = &oscillator{wave: t.wave, freq: t.freq, sweep: t.sweep, rate: rate, rng: rng}
	}
	return &fade{streamer: beep.Take(n, src), total: n, gain: t.gain}, nil
}

// oscillator generates an endless wave with an optional linear sweep.
type oscillator struct {
	wave  wave
	freq  float64
	sweep float64
	phase float64
	pos   int
	rate  beep.SampleRate
	rng   *rand.Rand
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.pos) / float64(o.rate)
		freq := math.Max(o.freq+o.sweep*t, 20)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade scales a stream by gain with a linear release over its length.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	gain     float64
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := f.gain
		if f.total > 0 {
			vol *= 1 - float64(f.pos)/float64(f.total)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
