package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// SizeClass is the three-tier asteroid category.
type SizeClass int

const (
	SizeBig SizeClass = iota
	SizeMedium
	SizeSmall
)

// String returns the class name.
func (c SizeClass) String() string {
	switch c {
	case SizeBig:
		return "big"
	case SizeMedium:
		return "medium"
	case SizeSmall:
		return "small"
	default:
		return "unknown"
	}
}

// child returns the class produced by splitting, and false for Small.
func (c SizeClass) child() (SizeClass, bool) {
	switch c {
	case SizeBig:
		return SizeMedium, true
	case SizeMedium:
		return SizeSmall, true
	default:
		return c, false
	}
}

func (c SizeClass) params(cfg config.AsteroidConfig) config.AsteroidSize {
	switch c {
	case SizeBig:
		return cfg.Big
	case SizeMedium:
		return cfg.Medium
	default:
		return cfg.Small
	}
}

func (c SizeClass) bang() core.SoundID {
	switch c {
	case SizeBig:
		return core.SoundBangLarge
	case SizeMedium:
		return core.SoundBangMedium
	default:
		return core.SoundBangSmall
	}
}

// Asteroid is a drifting, spinning rock.
// It never removes itself; the game sweeps it once it is dead and faded.
type Asteroid struct {
	Class  SizeClass
	Pos    core.Vec2
	Vel    core.Vec2
	Rot    float64 // Degrees
	Spin   float64 // Degrees per tick
	Radius float64

	shape   core.Polyline
	alive   bool
	visible bool
	debris  *Debris
	cfg     config.AsteroidConfig
}

// NewAsteroid builds a jittered polygon approximation of a circle.
func NewAsteroid(rng *rand.Rand, class SizeClass, pos, vel core.Vec2, cfg config.AsteroidConfig) *Asteroid {
	p := class.params(cfg)
	a := &Asteroid{
		Class:   class,
		Pos:     pos,
		Vel:     vel,
		Radius:  p.Radius + absJitter(rng, p.Jitter),
		alive:   true,
		visible: true,
		cfg:     cfg,
	}

	n := cfg.Vertices
	a.shape = make(core.Polyline, n)
	step := 2 * math.Pi / float64(n)
	for i := range a.shape {
		s, c := math.Sincos(float64(i) * step)
		a.shape[i] = core.V(
			c*a.Radius+jitter(rng, p.Roughness),
			s*a.Radius+jitter(rng, p.Roughness),
		)
	}

	a.Spin = rng.Float64() * vel.Length() * 0.25 * randSign(rng)
	return a
}

// Alive reports whether the asteroid takes part in collisions.
func (a *Asteroid) Alive() bool { return a.alive }

// Visible reports whether the outline is drawn.
func (a *Asteroid) Visible() bool { return a.visible }

// Exploding reports whether the debris animation is running.
func (a *Asteroid) Exploding() bool { return a.debris.Active() }

// ExplosionTicks returns the ticks left in the explosion countdown.
func (a *Asteroid) ExplosionTicks() int { return a.debris.Remaining() }

// Debris returns the explosion fragments, or nil before an explosion.
func (a *Asteroid) Debris() *Debris { return a.debris }

// Expired reports whether the asteroid is dead and fully faded.
func (a *Asteroid) Expired() bool {
	return !a.alive && !a.debris.Active()
}

// Shape returns the outline in world space.
func (a *Asteroid) Shape() core.Polyline {
	return a.shape.Rotate(a.Rot).Translate(a.Pos)
}

// Update advances motion or the explosion by one tick.
func (a *Asteroid) Update(dt float64, r core.Renderer) {
	switch {
	case a.alive:
		a.Pos = a.Pos.Add(a.Vel.Scale(dt))
		a.Rot = math.Mod(a.Rot+a.Spin, 360)
		if a.visible {
			r.DrawPolyline(a.Shape(), 1, core.ColorWhite, true)
		}
	case a.debris.Active():
		a.debris.advancePoints(dt, a.Vel, r)
	}
}

// CollidesWith reports whether p lies within the asteroid radius.
func (a *Asteroid) CollidesWith(p core.Vec2) bool {
	return a.Pos.Distance(p) <= a.Radius
}

// Explode kills the asteroid and seeds its debris field.
// Calling it on a dead asteroid does nothing.
func (a *Asteroid) Explode(rng *rand.Rand, snd core.SoundDevice) {
	if !a.alive {
		return
	}
	a.alive = false
	a.visible = false
	snd.Play(a.Class.bang(), false)
	a.debris = newPointDebris(rng, a.Pos, a.Radius, a.cfg.ExplosionTicks)
}

// Split returns the two children of a Big or Medium asteroid.
// Each child gets the parent velocity plus the parent velocity perturbed
// again by its own jitter.
func (a *Asteroid) Split(rng *rand.Rand) []*Asteroid {
	class, ok := a.Class.child()
	if !ok {
		return nil
	}
	ratio := a.cfg.SplitRatio
	children := make([]*Asteroid, 2)
	for i := range children {
		kick := core.V(jitter(rng, a.Vel.X)/ratio, jitter(rng, a.Vel.Y)/ratio)
		vel := a.Vel.Add(a.Vel.Add(kick))
		children[i] = NewAsteroid(rng, class, a.Pos, vel, a.cfg)
	}
	return children
}
