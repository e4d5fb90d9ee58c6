package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Particle is one fragment of an explosion.
//
// Asteroid debris is a point at Offset from the explosion origin, spreading
// outwards at a rate set by Scale. Ship debris is a hull Segment that spins
// by Spin degrees and moves by Offset every tick.
type Particle struct {
	Offset  core.Vec2
	Scale   float64
	Spin    float64
	Segment core.Polyline
}

// Debris is the short-lived fragment field of an exploding entity.
type Debris struct {
	Particles []Particle
	Origin    core.Vec2

	drift     core.Vec2
	remaining int
	total     int
}

// newPointDebris scatters 8 to 16 points radially around center.
func newPointDebris(rng *rand.Rand, center core.Vec2, radius float64, ticks int) *Debris {
	n := 8 + int(absJitter(rng, 16))/2
	step := 2 * math.Pi / float64(n)
	d := &Debris{
		Particles: make([]Particle, n),
		Origin:    center,
		remaining: ticks,
		total:     ticks,
	}
	for i := range d.Particles {
		dist := radius/4 + math.Abs(jitter(rng, radius))
		s, c := math.Sincos(float64(i) * step)
		d.Particles[i] = Particle{
			Offset: core.V(c*dist, s*dist),
			Scale:  absJitter(rng, 8),
		}
	}
	return d
}

// newSegmentDebris breaks an outline into its edges.
func newSegmentDebris(rng *rand.Rand, shape core.PolylineSet, size float64, ticks int) *Debris {
	segs := shape.Segments()
	shift := size * 0.01
	d := &Debris{
		Particles: make([]Particle, len(segs)),
		remaining: ticks,
		total:     ticks,
	}
	for i, seg := range segs {
		mid := seg[0].MidPoint(seg[1])
		d.Particles[i] = Particle{
			Offset:  mid.Scale(absJitter(rng, shift)),
			Spin:    jitter(rng, 2.5),
			Segment: seg,
		}
	}
	return d
}

// Active reports whether the countdown is still running.
func (d *Debris) Active() bool {
	return d != nil && d.remaining > 0
}

// Remaining returns the ticks left in the countdown.
func (d *Debris) Remaining() int {
	if d == nil {
		return 0
	}
	return d.remaining
}

// Fade returns the brightness fraction, 1 at the blast and 0 when spent.
func (d *Debris) Fade() float64 {
	if d == nil || d.total <= 0 {
		return 0
	}
	return float64(d.remaining) / float64(d.total)
}

// advancePoints moves point debris one tick. The origin drifts with the
// velocity the entity had when it exploded.
func (d *Debris) advancePoints(dt float64, vel core.Vec2, r core.Renderer) {
	if !d.Active() {
		return
	}
	d.remaining--
	elapsed := float64(d.total - d.remaining)
	d.Origin = d.Origin.Add(vel.Scale(dt))
	if d.remaining == 0 {
		return
	}
	c := core.ColorWhite.Fade(d.Fade())
	for _, p := range d.Particles {
		spread := (16 + p.Scale) / 100 * elapsed
		r.DrawPoint(d.Origin.Add(p.Offset.Scale(spread)), c)
	}
}

// advanceSegments spins and moves every segment in local space, then places
// the field at the ship position plus a damped momentum offset.
func (d *Debris) advanceSegments(dt float64, vel, pos core.Vec2, heading float64, r core.Renderer) {
	if !d.Active() {
		return
	}
	d.remaining--
	d.drift = d.drift.Add(vel.Scale(dt * 0.5))
	if d.remaining == 0 {
		return
	}
	c := core.ColorWhite.Fade(d.Fade())
	at := pos.Add(d.drift)
	for i := range d.Particles {
		p := &d.Particles[i]
		p.Segment = p.Segment.Rotate(p.Spin).Translate(p.Offset)
		r.DrawPolyline(p.Segment.Rotate(heading).Translate(at), 1, c, false)
	}
}
