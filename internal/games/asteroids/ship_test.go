package asteroids

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func newTestShip(class ShipClass) *Ship {
	cfg := config.DefaultAsteroidsConfig()
	s := NewShip(class, cfg.Ship, cfg.Aliens)
	s.Respawn(core.V(400, 300), humanHeading)
	return s
}

func TestShieldCooldown(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := testRenderer()
	snd := newRecordingSound()
	s := newTestShip(ShipHuman)
	budget := s.cfg.ShieldTicks

	if s.ActivateShield(snd) {
		t.Fatal("shield should be charging right after respawn")
	}
	for i := 0; i <= budget; i++ {
		s.Update(0.1, rng, r)
	}
	if !s.ActivateShield(snd) {
		t.Fatal("shield should be ready after its budget elapsed")
	}
	if s.ShieldTicksRemaining() != budget {
		t.Errorf("ShieldTicksRemaining() = %d, expected %d", s.ShieldTicksRemaining(), budget)
	}

	for i := 0; i < budget/2; i++ {
		s.Update(0.1, rng, r)
	}
	if s.ActivateShield(snd) {
		t.Error("shield reactivated before its budget elapsed")
	}
	if got := s.ShieldTicksRemaining(); got != budget-budget/2 {
		t.Errorf("second activation changed remaining to %d, expected %d", got, budget-budget/2)
	}

	for i := budget / 2; i < budget; i++ {
		s.Update(0.1, rng, r)
	}
	if !s.ShieldActive() {
		t.Fatal("shield dropped before its budget elapsed")
	}
	s.Update(0.1, rng, r)
	if s.ShieldActive() {
		t.Fatal("shield still up after its budget elapsed")
	}
	if !s.ActivateShield(snd) {
		t.Error("shield should recharge once its budget elapsed")
	}
	if got := snd.count(core.SoundShield); got != 2 {
		t.Errorf("shield sound played %d times, expected 2", got)
	}
}

func TestImpulseClampsEachAxis(t *testing.T) {
	s := newTestShip(ShipHuman)
	s.Rot = 45
	s.Impulse(1000, core.NopSound{})

	limit := s.cfg.MaxVelocity
	if s.Vel.X != limit || s.Vel.Y != limit {
		t.Errorf("Vel = %v, expected (%v, %v)", s.Vel, limit, limit)
	}
	if s.Vel.Length() <= limit {
		t.Errorf("per-axis clamp should allow |v| = %v above %v", s.Vel.Length(), limit)
	}
	if s.ImpulseTicks() != s.cfg.ImpulseTicks {
		t.Errorf("ImpulseTicks() = %d, expected %d", s.ImpulseTicks(), s.cfg.ImpulseTicks)
	}

	s.Rot = 225
	for i := 0; i < 200; i++ {
		s.Impulse(50, core.NopSound{})
	}
	if s.Vel.X != -limit || s.Vel.Y != -limit {
		t.Errorf("Vel = %v, expected (%v, %v)", s.Vel, -limit, -limit)
	}
}

func TestImpulseFollowsHeading(t *testing.T) {
	s := newTestShip(ShipHuman)
	s.Impulse(4, core.NopSound{})
	if abs(s.Vel.X) > 1e-9 || abs(s.Vel.Y+4) > 1e-9 {
		t.Errorf("Vel = %v, expected (0, -4) for a ship facing up", s.Vel)
	}
}

func TestThrustSoundThrottled(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	snd := newRecordingSound()
	s := newTestShip(ShipHuman)

	for i := 0; i < s.cfg.ThrustSoundTicks; i++ {
		s.Impulse(1, snd)
		s.Update(0.1, rng, testRenderer())
	}
	if got := snd.count(core.SoundShipThrust); got != 1 {
		t.Errorf("thrust sound played %d times, expected 1", got)
	}
	s.Impulse(1, snd)
	if got := snd.count(core.SoundShipThrust); got != 2 {
		t.Errorf("thrust sound played %d times, expected 2", got)
	}
}

func TestAliensIgnoreSteering(t *testing.T) {
	for _, class := range []ShipClass{ShipAlienSmall, ShipAlienBig} {
		t.Run(class.String(), func(t *testing.T) {
			s := newTestShip(class)
			s.Rotate(30)
			s.Impulse(10, core.NopSound{})
			s.shieldTicks = 1000
			if s.ActivateShield(core.NopSound{}) {
				t.Error("alien raised a shield")
			}
			if s.Rot != humanHeading || s.Vel != (core.Vec2{}) {
				t.Errorf("alien moved: rot %v vel %v", s.Rot, s.Vel)
			}
		})
	}
}

func TestDeadShipIgnoresInput(t *testing.T) {
	s := newTestShip(ShipHuman)
	s.Explode(rand.New(rand.NewSource(1)), core.NopSound{})
	s.Rotate(30)
	s.Impulse(10, core.NopSound{})
	s.shieldTicks = 1000
	if s.ActivateShield(core.NopSound{}) {
		t.Error("dead ship raised a shield")
	}
	if s.Rot != humanHeading || s.Vel != (core.Vec2{}) {
		t.Errorf("dead ship moved: rot %v vel %v", s.Rot, s.Vel)
	}
}

func TestShipExplodeIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	snd := newRecordingSound()
	s := newTestShip(ShipHuman)
	s.Vel = core.V(10, 0)

	s.Explode(rng, snd)
	if s.Alive() || s.Visible() {
		t.Fatal("exploded ship should be dead and invisible")
	}
	if s.ExplosionTicks() != s.cfg.ExplosionTicks {
		t.Fatalf("ExplosionTicks() = %d, expected %d", s.ExplosionTicks(), s.cfg.ExplosionTicks)
	}
	// 5 hull points give 4 segments.
	if n := len(s.debris.Particles); n != 4 {
		t.Errorf("debris segments = %d, expected 4", n)
	}

	pos := s.Pos
	for i := 0; i < 5; i++ {
		s.Update(0.1, rng, testRenderer())
	}
	if s.Pos != pos {
		t.Error("exploding ship should not move; only its debris drifts")
	}
	remaining := s.ExplosionTicks()
	s.Explode(rng, snd)
	if s.ExplosionTicks() != remaining {
		t.Errorf("second Explode() reset countdown to %d, expected %d", s.ExplosionTicks(), remaining)
	}
	if got := snd.count(core.SoundShipExplosion); got != 1 {
		t.Errorf("explosion sound played %d times, expected 1", got)
	}

	for s.Exploding() {
		s.Update(0.1, rng, testRenderer())
	}
	if s.debris.drift.X <= 0 {
		t.Errorf("debris drift = %v, expected to carry the ship momentum", s.debris.drift)
	}
}

func TestSaucerShape(t *testing.T) {
	big := newTestShip(ShipAlienBig)
	small := newTestShip(ShipAlienSmall)
	if big.Size.X != small.Size.X*1.5 {
		t.Errorf("big saucer size = %v, expected 1.5 x %v", big.Size.X, small.Size.X)
	}
	if n := len(big.hull.Segments()); n != 10 {
		t.Errorf("saucer segments = %d, expected 10", n)
	}
}

func TestShipCollidesAt(t *testing.T) {
	s := newTestShip(ShipHuman)
	tests := []struct {
		name     string
		p        core.Vec2
		expected bool
	}{
		{"center", s.Pos, true},
		{"edge", s.Pos.Add(core.V(0, s.Size.X)), true},
		{"outside", s.Pos.Add(core.V(s.Size.X+1, 0)), false},
	}
	for _, tc := range tests {
		if got := s.CollidesAt(tc.p); got != tc.expected {
			t.Errorf("%s: CollidesAt() = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestSaucerWanderKeepsDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	s := newTestShip(ShipAlienSmall)
	s.Rot = 0
	s.Vel = core.V(-30, 0)
	for i := 0; i < 500; i++ {
		s.Update(0.1, rng, testRenderer())
	}
	if s.Vel.X > -30 {
		t.Errorf("Vel.X = %v, expected saucer to keep flying left", s.Vel.X)
	}
}
