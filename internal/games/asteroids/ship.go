package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ShipClass identifies one of the three ships.
type ShipClass int

const (
	ShipHuman ShipClass = iota
	ShipAlienSmall
	ShipAlienBig

	shipClassCount
)

// String returns the class name.
func (c ShipClass) String() string {
	switch c {
	case ShipHuman:
		return "human"
	case ShipAlienSmall:
		return "alien-small"
	case ShipAlienBig:
		return "alien-big"
	default:
		return "unknown"
	}
}

// IsAlien reports whether the class is a saucer.
func (c ShipClass) IsAlien() bool {
	return c == ShipAlienSmall || c == ShipAlienBig
}

func (c ShipClass) saucerSound() core.SoundID {
	if c == ShipAlienBig {
		return core.SoundSaucerBig
	}
	return core.SoundSaucerSmall
}

// parkedPos is where invisible saucers wait, outside the arena.
var parkedPos = core.V(-100, -100)

// Ship is the player craft or one of the saucers. Ships are created once and
// never removed; a destroyed ship is simply not alive and not visible.
type Ship struct {
	Class ShipClass
	Pos   core.Vec2
	Vel   core.Vec2
	Rot   float64 // Degrees
	Size  core.Vec2

	alive        bool
	visible      bool
	shieldActive bool
	shieldTicks  int // Ticks since the last shield activation or respawn
	impulseTicks int
	thrustSound  int // Ticks until the thrust sound may play again
	cooldown     int // Ticks until the next shot
	wanderTicks  int
	blink        int

	hull   core.PolylineSet
	flame  core.Polyline
	shield core.Polyline
	debris *Debris

	cfg    config.ShipConfig
	aliens config.AlienConfig
}

// NewShip creates a ship of the given class. It starts dead and invisible;
// the game places it with Respawn or spawn.
func NewShip(class ShipClass, ship config.ShipConfig, aliens config.AlienConfig) *Ship {
	size := ship.Size
	if class == ShipAlienBig {
		size *= aliens.BigScale
	}
	s := &Ship{
		Class:  class,
		Pos:    parkedPos,
		Size:   core.V(size, size),
		cfg:    ship,
		aliens: aliens,
	}
	s.hull, s.flame = shipShapes(class, s.Size)
	s.shield = shieldRing(s.Size.X * 1.25)
	return s
}

// Alive reports whether the ship takes part in collisions.
func (s *Ship) Alive() bool { return s.alive }

// Visible reports whether the ship is drawn.
func (s *Ship) Visible() bool { return s.visible }

// ShieldActive reports whether missiles currently pass harmlessly.
func (s *Ship) ShieldActive() bool { return s.shieldActive }

// ShieldTicksRemaining returns how long the active shield lasts.
func (s *Ship) ShieldTicksRemaining() int {
	if !s.shieldActive {
		return 0
	}
	return max(0, s.cfg.ShieldTicks-s.shieldTicks)
}

// ImpulseTicks returns how long the engine flame keeps burning.
func (s *Ship) ImpulseTicks() int { return s.impulseTicks }

// Exploding reports whether the debris animation is running.
func (s *Ship) Exploding() bool { return s.debris.Active() }

// ExplosionTicks returns the ticks left in the explosion countdown.
func (s *Ship) ExplosionTicks() int { return s.debris.Remaining() }

// Hull returns the outline in world space.
func (s *Ship) Hull() core.PolylineSet {
	return s.hull.Rotate(s.Rot).Translate(s.Pos)
}

// Respawn puts the ship back in play at pos with zero velocity.
func (s *Ship) Respawn(pos core.Vec2, rot float64) {
	s.Pos = pos
	s.Vel = core.Vec2{}
	s.Rot = rot
	s.alive = true
	s.visible = true
	s.shieldActive = false
	s.shieldTicks = 0
	s.impulseTicks = 0
	s.cooldown = 0
	s.wanderTicks = 0
	s.debris = nil
}

// spawn launches a saucer and starts its engine hum.
func (s *Ship) spawn(pos, vel core.Vec2, snd core.SoundDevice) {
	s.Respawn(pos, 0)
	s.Vel = vel
	snd.Play(s.Class.saucerSound(), true)
}

// park hides a saucer outside the arena.
func (s *Ship) park(snd core.SoundDevice) {
	s.hide(snd)
	s.alive = false
	s.Pos = parkedPos
	s.Vel = core.Vec2{}
}

// hide makes the ship invisible and silences a saucer.
func (s *Ship) hide(snd core.SoundDevice) {
	if s.visible && s.Class.IsAlien() {
		snd.Stop(s.Class.saucerSound())
	}
	s.visible = false
}

// Rotate turns the human ship. Other ships and dead ships ignore it.
func (s *Ship) Rotate(deg float64) {
	if s.Class != ShipHuman || !s.alive {
		return
	}
	s.Rot = math.Mod(s.Rot+deg, 360)
	if s.Rot < 0 {
		s.Rot += 360
	}
}

// Impulse accelerates the human ship along its heading. Each velocity
// component is clamped on its own.
func (s *Ship) Impulse(mag float64, snd core.SoundDevice) {
	if s.Class != ShipHuman || !s.alive {
		return
	}
	s.Vel = s.Vel.Add(core.Heading(s.Rot).Scale(mag))
	limit := s.cfg.MaxVelocity
	s.Vel.X = core.ClampF(s.Vel.X, -limit, limit)
	s.Vel.Y = core.ClampF(s.Vel.Y, -limit, limit)
	s.impulseTicks = s.cfg.ImpulseTicks
	if s.thrustSound == 0 {
		snd.Play(core.SoundShipThrust, false)
		s.thrustSound = s.cfg.ThrustSoundTicks
	}
}

// ActivateShield raises the shield if it has recharged.
// It reports whether the shield went up.
func (s *Ship) ActivateShield(snd core.SoundDevice) bool {
	if s.Class != ShipHuman || !s.alive || s.shieldTicks <= s.cfg.ShieldTicks {
		return false
	}
	s.shieldTicks = 0
	s.shieldActive = true
	s.blink = 0
	snd.Play(core.SoundShield, false)
	return true
}

// CollidesAt reports whether p is within the ship's size of its center.
func (s *Ship) CollidesAt(p core.Vec2) bool {
	return s.Pos.Distance(p) <= s.Size.X
}

// Explode destroys the ship and breaks its hull into spinning segments.
// Calling it on a dead ship does nothing.
func (s *Ship) Explode(rng *rand.Rand, snd core.SoundDevice) {
	if !s.alive {
		return
	}
	s.alive = false
	s.hide(snd)
	s.shieldActive = false
	s.impulseTicks = 0
	snd.Play(core.SoundShipExplosion, false)
	s.debris = newSegmentDebris(rng, s.hull, s.Size.Length(), s.cfg.ExplosionTicks)
}

// Update advances the ship by one tick.
func (s *Ship) Update(dt float64, rng *rand.Rand, r core.Renderer) {
	if s.cooldown > 0 {
		s.cooldown--
	}
	if s.thrustSound > 0 {
		s.thrustSound--
	}

	if !s.alive {
		if s.debris.Active() {
			s.debris.advanceSegments(dt, s.Vel, s.Pos, s.Rot, r)
		}
		return
	}

	s.shieldTicks++
	if s.shieldActive && s.shieldTicks > s.cfg.ShieldTicks {
		s.shieldActive = false
	}

	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
	if s.Class.IsAlien() {
		s.wander(rng)
	}

	if s.impulseTicks > 0 {
		s.impulseTicks--
	}
	if s.visible {
		s.draw(r)
	}
}

// wander nudges a saucer every few ticks, keeping its horizontal direction.
func (s *Ship) wander(rng *rand.Rand) {
	s.wanderTicks++
	if s.wanderTicks <= s.aliens.WanderTicks {
		return
	}
	s.wanderTicks = 0
	s.Vel.Y += jitter(rng, s.aliens.WanderY)
	dir := 1.0
	if s.Vel.X < 0 {
		dir = -1
	}
	s.Vel.X += dir * absJitter(rng, s.aliens.WanderX)
}

func (s *Ship) draw(r core.Renderer) {
	for _, p := range s.Hull() {
		r.DrawPolyline(p, 1, core.ColorWhite, false)
	}
	if s.impulseTicks > 0 && s.flame != nil {
		r.DrawPolyline(s.flame.Rotate(s.Rot).Translate(s.Pos), 1, core.ColorOrange, false)
	}
	if s.shieldActive {
		r.DrawPolyline(s.shield.Translate(s.Pos), 1, s.shieldColor(), true)
	}
}

// shieldColor blinks during the last quarter of the shield budget.
func (s *Ship) shieldColor() core.Color {
	if s.shieldTicks*4 <= s.cfg.ShieldTicks*3 {
		return core.ColorCyan
	}
	s.blink = (s.blink + 1) % 5
	if s.blink < 3 {
		return core.ColorCyan
	}
	return core.ColorCyan.Fade(0.25)
}
