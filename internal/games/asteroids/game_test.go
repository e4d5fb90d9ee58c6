package asteroids

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestNewStartsInSetup(t *testing.T) {
	g, snd := newTestGame(t, 1)

	if g.Phase() != PhaseSetup {
		t.Errorf("Phase() = %s, expected setup", g.Phase())
	}
	if g.Lives() != 3 || g.Level() != 1 || g.Score() != 0 {
		t.Errorf("lives/level/score = %d/%d/%d, expected 3/1/0", g.Lives(), g.Level(), g.Score())
	}
	if len(snd.loaded) != len(core.AllSounds()) {
		t.Errorf("loaded %d sounds, expected %d", len(snd.loaded), len(core.AllSounds()))
	}
	if snd.volume != 0.25 {
		t.Errorf("master volume = %v, expected 0.25", snd.volume)
	}
	for c := ShipClass(0); c < shipClassCount; c++ {
		if g.Ship(c).Alive() || g.Ship(c).Visible() {
			t.Errorf("%s ship should be parked before the first game", c)
		}
	}

	// The attract screen runs without any ship in play.
	for i := 0; i < 10; i++ {
		g.Tick(core.NewInputFrame())
	}
	if g.Phase() != PhaseSetup {
		t.Errorf("Phase() = %s after idle ticks, expected setup", g.Phase())
	}
}

func TestNewRefusesToPlayWithoutSounds(t *testing.T) {
	snd := newRecordingSound()
	snd.loadErr = errors.New("device busy")

	g, err := New(config.DefaultAsteroidsConfig(), core.RuntimeConfig{Seed: 1}, testRenderer(), snd)
	if err == nil {
		t.Fatal("New() expected error when sounds fail to load")
	}
	if !errors.Is(err, snd.loadErr) {
		t.Errorf("New() error = %v, expected to wrap %v", err, snd.loadErr)
	}
	if g != nil {
		t.Error("New() returned a game despite the load failure")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Game.Lives = 0
	if _, err := New(cfg, core.RuntimeConfig{}, testRenderer(), core.NopSound{}); err == nil {
		t.Error("New() expected error for zero lives")
	}
}

func TestRestart(t *testing.T) {
	g, _ := startedGame(t, 1)

	if g.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %s, expected playing", g.Phase())
	}
	human := g.Ship(ShipHuman)
	if !human.Alive() || !human.Visible() {
		t.Error("human ship should be alive and visible")
	}
	if human.Pos != core.V(testW/2, testH/2) || human.Rot != humanHeading {
		t.Errorf("human at %v facing %v, expected center facing %v", human.Pos, human.Rot, humanHeading)
	}
	for _, c := range []ShipClass{ShipAlienSmall, ShipAlienBig} {
		s := g.Ship(c)
		if s.Alive() || s.Visible() || s.Pos != parkedPos {
			t.Errorf("%s should be parked off-arena", c)
		}
	}
	if n := len(g.Asteroids()); n != 5 {
		t.Errorf("asteroids = %d, expected 5", n)
	}
	for _, a := range g.Asteroids() {
		if a.Pos.Distance(human.Pos) < g.cfg.Game.SafetyDistance {
			t.Errorf("asteroid at %v spawned inside the safety distance", a.Pos)
		}
	}
	if len(g.Missiles()) != 0 {
		t.Error("missiles should be cleared")
	}

	g.score = 300
	g.lives = 1
	g.level = 4
	g.gameOver = true
	g.Tick(input(core.ActionRestart))
	if g.Score() != 0 || g.Lives() != 3 || g.Level() != 1 || g.GameOver() {
		t.Errorf("restart left score/lives/level/over = %d/%d/%d/%v", g.Score(), g.Lives(), g.Level(), g.GameOver())
	}
}

func TestLevelAdvancesWhenFieldCleared(t *testing.T) {
	g, _ := startedGame(t, 5)

	for pass := 0; ; pass++ {
		if pass > 100 {
			t.Fatal("field never cleared")
		}
		alive := 0
		for _, a := range g.Asteroids() {
			if a.Alive() {
				alive++
				g.missiles = append(g.missiles, &Missile{Pos: a.Pos, Armed: true, FiredBy: ShipHuman})
			}
		}
		if alive == 0 {
			break
		}
		if g.levelClearedCheck() {
			t.Fatal("level advanced while asteroids were alive")
		}
		g.missilesVsAsteroids()
		g.sweep()
	}

	// 5 big, 10 medium and 20 small asteroids.
	if g.Score() != 5*5+10*10+20*20 {
		t.Errorf("Score() = %d, expected %d", g.Score(), 5*5+10*10+20*20)
	}

	if !g.levelClearedCheck() {
		t.Fatal("levelClearedCheck() = false with no live asteroids")
	}
	if g.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", g.Level())
	}
	if n := len(g.Asteroids()); n != 10 {
		t.Errorf("asteroids = %d, expected 10", n)
	}
	for _, a := range g.Asteroids() {
		if !a.Alive() || a.Class != SizeBig {
			t.Error("new level should contain only live big asteroids")
		}
	}
	if g.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", g.Lives())
	}
	if len(g.Missiles()) != 0 {
		t.Errorf("missiles = %d, expected 0", len(g.Missiles()))
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	g, snd := startedGame(t, 2)
	g.lives = 1
	human := g.Ship(ShipHuman)
	g.Ship(ShipAlienBig).spawn(core.V(10, 10), core.V(5, 0), snd)
	g.asteroids = []*Asteroid{NewAsteroid(g.rng, SizeBig, human.Pos, core.Vec2{}, g.cfg.Asteroids)}

	g.resolveCollisions()

	if g.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", g.Lives())
	}
	if !g.GameOver() || g.Phase() != PhaseGameOver {
		t.Fatalf("GameOver() = %v, Phase() = %s", g.GameOver(), g.Phase())
	}
	for c := ShipClass(0); c < shipClassCount; c++ {
		if g.Ship(c).Alive() || g.Ship(c).Visible() {
			t.Errorf("%s ship should be dead and invisible after game over", c)
		}
	}
	if !snd.looping[core.SoundTrails] {
		t.Error("game over music should loop")
	}
	if snd.looping[core.SoundSaucerBig] {
		t.Error("saucer hum should stop at game over")
	}
	if g.AwaitingName() {
		t.Error("a zero score should not ask for a name")
	}
}

func TestHumanMissileHitEndsGameImmediately(t *testing.T) {
	g, snd := startedGame(t, 2)
	g.lives = 1
	g.asteroids = nil
	alien := g.Ship(ShipAlienSmall)
	alien.spawn(core.V(100, 100), core.V(5, 0), snd)
	human := g.Ship(ShipHuman)
	g.missiles = []*Missile{{Pos: human.Pos, Armed: true, FiredBy: ShipAlienSmall}}

	g.missilesVsShips()

	if !g.GameOver() {
		t.Fatal("missile hit on the last life should end the game")
	}
	if alien.Alive() {
		t.Error("game over should take the saucer out of play")
	}
}

func TestMissileNeverHitsItsShooter(t *testing.T) {
	offsets := []core.Vec2{{}, core.V(3, 0), core.V(0, -7), core.V(5, 5)}
	for c := ShipClass(0); c < shipClassCount; c++ {
		for _, off := range offsets {
			g, snd := startedGame(t, 3)
			g.asteroids = nil
			ship := g.Ship(c)
			if c.IsAlien() {
				ship.spawn(core.V(200, 200), core.V(10, 0), snd)
			}
			g.missiles = []*Missile{{Pos: ship.Pos.Add(off), Armed: true, FiredBy: c}}

			g.missilesVsShips()

			if !ship.Alive() {
				t.Errorf("%s destroyed by its own missile at offset %v", c, off)
			}
			if !g.missiles[0].Armed {
				t.Errorf("%s own missile was spent at offset %v", c, off)
			}
		}
	}
}

func TestMissileHitsOtherShip(t *testing.T) {
	tests := []struct {
		target ShipClass
		score  int
		lives  int
	}{
		{ShipAlienBig, 100, 3},
		{ShipAlienSmall, 500, 3},
		{ShipHuman, 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.target.String(), func(t *testing.T) {
			g, snd := startedGame(t, 4)
			g.asteroids = nil
			target := g.Ship(tc.target)
			shooter := ShipHuman
			if tc.target == ShipHuman {
				shooter = ShipAlienBig
			} else {
				target.spawn(core.V(200, 200), core.V(10, 0), snd)
			}
			g.missiles = []*Missile{{Pos: target.Pos, Armed: true, FiredBy: shooter}}

			g.missilesVsShips()

			if target.Alive() {
				t.Error("target survived the hit")
			}
			if g.missiles[0].Armed {
				t.Error("missile should be spent")
			}
			if g.Score() != tc.score || g.Lives() != tc.lives {
				t.Errorf("score/lives = %d/%d, expected %d/%d", g.Score(), g.Lives(), tc.score, tc.lives)
			}
		})
	}
}

func TestShieldAbsorbsMissile(t *testing.T) {
	g, _ := startedGame(t, 4)
	human := g.Ship(ShipHuman)
	human.shieldTicks = human.cfg.ShieldTicks + 1
	if !human.ActivateShield(g.sound) {
		t.Fatal("ActivateShield() = false")
	}
	g.missiles = []*Missile{{Pos: human.Pos, Armed: true, FiredBy: ShipAlienBig}}

	g.missilesVsShips()

	if !human.Alive() || g.Lives() != 3 {
		t.Error("shielded ship was destroyed")
	}
	if !g.missiles[0].Armed {
		t.Error("missile should pass through the shield")
	}
}

func TestMissileSplitsAsteroid(t *testing.T) {
	g, _ := startedGame(t, 6)
	rock := NewAsteroid(g.rng, SizeBig, core.V(100, 100), core.V(4, 4), g.cfg.Asteroids)
	g.asteroids = []*Asteroid{rock}
	g.missiles = []*Missile{{Pos: rock.Pos, Armed: true, FiredBy: ShipHuman}}

	g.missilesVsAsteroids()

	if rock.Alive() {
		t.Error("asteroid survived the hit")
	}
	if n := len(g.Asteroids()); n != 3 {
		t.Fatalf("asteroids = %d, expected parent plus 2 children", n)
	}
	for _, c := range g.Asteroids()[1:] {
		if !c.Alive() || c.Class != SizeMedium {
			t.Errorf("child alive=%v class=%s, expected live medium", c.Alive(), c.Class)
		}
	}
	if g.Score() != 5 {
		t.Errorf("Score() = %d, expected 5", g.Score())
	}

	g.sweep()
	if len(g.Missiles()) != 0 {
		t.Error("spent missile should be swept")
	}
	if len(g.Asteroids()) != 3 {
		t.Error("exploding asteroid should stay until its debris fades")
	}
}

func TestMissilesOutOfBounds(t *testing.T) {
	g, _ := startedGame(t, 6)
	g.missiles = []*Missile{
		{Pos: core.V(-1, 10), Armed: true},
		{Pos: core.V(10, testH+1), Armed: true},
		{Pos: core.V(10, 10), Armed: true},
	}
	g.missilesOutOfBounds()
	g.sweep()
	if n := len(g.Missiles()); n != 1 {
		t.Errorf("missiles = %d, expected 1", n)
	}
}

func TestHumanVsAliensPrefersBig(t *testing.T) {
	g, snd := startedGame(t, 7)
	human := g.Ship(ShipHuman)
	big := g.Ship(ShipAlienBig)
	small := g.Ship(ShipAlienSmall)
	big.spawn(human.Pos, core.V(5, 0), snd)
	small.spawn(human.Pos, core.V(5, 0), snd)

	g.humanVsAliens()

	if human.Alive() || big.Alive() {
		t.Error("human and big saucer should both explode")
	}
	if !small.Alive() {
		t.Error("small saucer should be skipped once the big one hit")
	}
	if g.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", g.Lives())
	}
}

func TestShipsVsAsteroidsFirstHitWins(t *testing.T) {
	g, _ := startedGame(t, 8)
	human := g.Ship(ShipHuman)
	first := NewAsteroid(g.rng, SizeBig, human.Pos, core.Vec2{}, g.cfg.Asteroids)
	second := NewAsteroid(g.rng, SizeBig, human.Pos.Add(core.V(5, 0)), core.Vec2{}, g.cfg.Asteroids)
	g.asteroids = []*Asteroid{first, second}

	g.shipsVsAsteroids()

	if first.Alive() {
		t.Error("first asteroid should explode with the ship")
	}
	if !second.Alive() {
		t.Error("second asteroid should survive: the ship was already dead")
	}
	if g.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", g.Lives())
	}
	if g.Score() != 0 {
		t.Error("ramming an asteroid should not score")
	}
}

func TestBonusLife(t *testing.T) {
	g, snd := startedGame(t, 9)

	g.score = 999
	g.bonusCheck()
	if g.Lives() != 3 {
		t.Fatalf("Lives() = %d below the threshold, expected 3", g.Lives())
	}

	g.addScore(1)
	g.bonusCheck()
	if g.Lives() != 4 {
		t.Errorf("Lives() = %d, expected 4", g.Lives())
	}
	if g.bonusIndex != 2 {
		t.Errorf("bonusIndex = %d, expected 2", g.bonusIndex)
	}

	g.score = 1999
	g.bonusCheck()
	if g.Lives() != 4 {
		t.Errorf("Lives() = %d before 2000, expected 4", g.Lives())
	}
	g.score = 2000
	g.bonusCheck()
	if g.Lives() != 5 {
		t.Errorf("Lives() = %d at 2000, expected 5", g.Lives())
	}
	if got := snd.count(core.SoundBonus); got != 2 {
		t.Errorf("bonus sound played %d times, expected 2", got)
	}
}

func TestBestScoreNameEntry(t *testing.T) {
	store := &memoryStore{records: []core.ScoreRecord{{Name: "old", Score: 50}}}
	g, _ := startedGame(t, 10, WithScoreStore(store))
	g.score = 700
	g.lives = 1
	human := g.Ship(ShipHuman)
	g.asteroids = []*Asteroid{NewAsteroid(g.rng, SizeBig, human.Pos, core.Vec2{}, g.cfg.Asteroids)}

	g.resolveCollisions()

	if !g.AwaitingName() || !g.Paused() {
		t.Fatalf("AwaitingName() = %v, Paused() = %v, expected both true", g.AwaitingName(), g.Paused())
	}
	if g.PendingScore() != 700 {
		t.Errorf("PendingScore() = %d, expected 700", g.PendingScore())
	}

	before := g.CreateSnapshot()
	g.Tick(input(core.ActionPause))
	g.Tick(input(core.ActionRestart))
	after := g.CreateSnapshot()
	if before.Hash() != after.Hash() {
		t.Error("the simulation advanced while waiting for a name")
	}

	g.SubmitName("  ace,pilot ")
	if g.AwaitingName() || g.Paused() {
		t.Error("SubmitName() should resume the game")
	}
	best := g.BestScores()
	if len(best) != 2 || best[0] != (core.ScoreRecord{Name: "ace pilot", Score: 700}) {
		t.Errorf("BestScores() = %v", best)
	}
	if n := len(store.records); n != 2 {
		t.Errorf("store has %d records, expected 2", n)
	}

	g.SubmitName("again")
	if len(g.BestScores()) != 2 {
		t.Error("SubmitName() without a pending score should do nothing")
	}
}

func TestBestScoreSaveFailureKeepsScore(t *testing.T) {
	store := &memoryStore{err: errors.New("disk full")}
	g, _ := startedGame(t, 10, WithScoreStore(store))
	g.gameOver = true
	g.score = 120
	g.bestScoreCheck()
	g.SubmitName("neo")

	if best := g.BestScores(); len(best) != 1 || best[0].Score != 120 {
		t.Errorf("BestScores() = %v, expected the unsaved score in memory", best)
	}
}

func TestCancelName(t *testing.T) {
	g, _ := startedGame(t, 10)
	g.gameOver = true
	g.score = 10
	g.bestScoreCheck()
	if !g.AwaitingName() {
		t.Fatal("AwaitingName() = false, expected true")
	}
	g.CancelName()
	if g.AwaitingName() || g.Paused() || len(g.BestScores()) != 0 {
		t.Error("CancelName() should resume without recording")
	}
}

func TestPauseSkipsTick(t *testing.T) {
	g, _ := startedGame(t, 11)
	g.Tick(core.NewInputFrame())

	g.Tick(input(core.ActionPause))
	if g.Phase() != PhasePaused {
		t.Fatalf("Phase() = %s, expected paused", g.Phase())
	}
	before := g.CreateSnapshot()
	for i := 0; i < 30; i++ {
		g.Tick(input(core.ActionFire, core.ActionThrust, core.ActionRestart))
	}
	after := g.CreateSnapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused game changed state")
	}

	g.Tick(input(core.ActionPause))
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase() = %s, expected playing", g.Phase())
	}
}

func TestQuitIsFinal(t *testing.T) {
	g, snd := startedGame(t, 12)
	snd.looping[core.SoundSaucerBig] = true
	g.Tick(input(core.ActionQuit))
	if g.Running() {
		t.Fatal("Running() = true after quit")
	}
	if len(snd.looping) != 0 {
		t.Error("quit should stop every sound")
	}
	before := g.CreateSnapshot()
	g.Tick(input(core.ActionRestart))
	g.Tick(core.NewInputFrame())
	after := g.CreateSnapshot()
	if before.Hash() != after.Hash() || g.Running() {
		t.Error("quit game kept running")
	}
}

func TestVolumeSteps(t *testing.T) {
	g, snd := startedGame(t, 13)
	g.Tick(input(core.ActionVolumeUp))
	if abs(g.Volume()-0.30) > 1e-9 || abs(snd.volume-0.30) > 1e-9 {
		t.Errorf("Volume() = %v, device = %v, expected 0.30", g.Volume(), snd.volume)
	}
	for i := 0; i < 30; i++ {
		g.Tick(input(core.ActionVolumeUp))
	}
	if g.Volume() != 1 {
		t.Errorf("Volume() = %v, expected clamp at 1", g.Volume())
	}
	for i := 0; i < 30; i++ {
		g.Tick(input(core.ActionVolumeDown))
	}
	if g.Volume() != 0 {
		t.Errorf("Volume() = %v, expected clamp at 0", g.Volume())
	}
}

func TestHumanRespawnWaitsForSafeCenter(t *testing.T) {
	g, _ := startedGame(t, 14)
	human := g.Ship(ShipHuman)
	human.Vel = core.V(30, 0)
	human.Explode(g.rng, g.sound)

	g.asteroids = nil
	g.humanRespawnCheck()
	if human.Alive() {
		t.Fatal("ship respawned mid-explosion")
	}
	for human.Exploding() {
		human.Update(g.cfg.Arena.DT, g.rng, g.renderer)
	}

	center := g.renderer.ScreenCenter()
	g.asteroids = []*Asteroid{NewAsteroid(g.rng, SizeSmall, center.Add(core.V(20, 0)), core.Vec2{}, g.cfg.Asteroids)}
	g.humanRespawnCheck()
	if human.Alive() {
		t.Fatal("ship respawned next to an asteroid")
	}

	g.asteroids[0].Pos = core.V(10, 10)
	g.humanRespawnCheck()
	if !human.Alive() || !human.Visible() {
		t.Fatal("ship did not respawn at a safe center")
	}
	if human.Pos != center || human.Rot != humanHeading || human.Vel != (core.Vec2{}) {
		t.Errorf("respawned at %v rot %v vel %v", human.Pos, human.Rot, human.Vel)
	}
}

func TestAlienSpawnAndPark(t *testing.T) {
	g, snd := startedGame(t, 15)
	g.alienSpawnIn = 1
	g.alienSpawnCheck()

	var alien *Ship
	for _, c := range []ShipClass{ShipAlienSmall, ShipAlienBig} {
		if g.Ship(c).Visible() {
			alien = g.Ship(c)
		}
	}
	if alien == nil {
		t.Fatal("no saucer spawned")
	}
	if !alien.Alive() {
		t.Error("spawned saucer should be alive")
	}
	switch alien.Pos.X {
	case 0:
		if alien.Vel.X <= 0 {
			t.Errorf("saucer on the left edge flies %v", alien.Vel)
		}
	case testW:
		if alien.Vel.X >= 0 {
			t.Errorf("saucer on the right edge flies %v", alien.Vel)
		}
	default:
		t.Errorf("saucer spawned at x = %v, expected an edge", alien.Pos.X)
	}
	if alien.Pos.Y < 50 || alien.Pos.Y > testH-50 {
		t.Errorf("saucer spawned at y = %v, expected within the margins", alien.Pos.Y)
	}
	if !snd.looping[alien.Class.saucerSound()] {
		t.Error("saucer hum should loop while visible")
	}
	if g.alienSpawnIn < 1 {
		t.Errorf("spawn countdown = %d, expected it to be rearmed", g.alienSpawnIn)
	}

	alien.Pos.X = -1
	g.forceInsideLimits()
	if alien.Alive() || alien.Visible() || alien.Pos != parkedPos {
		t.Error("saucer leaving sideways should be parked")
	}
	if snd.looping[alien.Class.saucerSound()] {
		t.Error("parked saucer should be silent")
	}
}

func TestForceInsideLimitsWraps(t *testing.T) {
	g, _ := startedGame(t, 16)
	human := g.Ship(ShipHuman)
	human.Pos = core.V(testW+10, -5)
	rock := g.Asteroids()[0]
	rock.Pos = core.V(-20, testH+30)
	saucer := g.Ship(ShipAlienBig)
	saucer.spawn(core.V(100, -10), core.V(5, 0), g.sound)

	g.forceInsideLimits()

	if human.Pos != core.V(10, testH-5) {
		t.Errorf("human at %v, expected wrapped to (10, %d)", human.Pos, testH-5)
	}
	if rock.Pos != core.V(testW-20, 30) {
		t.Errorf("asteroid at %v, expected wrapped", rock.Pos)
	}
	if saucer.Pos != core.V(100, testH-10) || !saucer.Alive() {
		t.Errorf("saucer at %v alive=%v, expected vertical wrap", saucer.Pos, saucer.Alive())
	}
}

func TestHumanFireRate(t *testing.T) {
	g, snd := startedGame(t, 17)
	g.asteroids = []*Asteroid{NewAsteroid(g.rng, SizeSmall, core.V(20, 20), core.Vec2{}, g.cfg.Asteroids)}
	g.alienSpawnIn = 1 << 30

	ticks := g.cfg.Ship.ShotDelay*3 + 1
	for i := 0; i < ticks; i++ {
		g.Tick(input(core.ActionFire))
	}
	if got := snd.count(core.SoundShipFire); got != 4 {
		t.Errorf("fired %d shots in %d ticks, expected 4", got, ticks)
	}
	for _, m := range g.Missiles() {
		if m.FiredBy != ShipHuman {
			t.Errorf("missile fired by %s, expected human", m.FiredBy)
		}
	}
}

func TestAlienFiresAtHuman(t *testing.T) {
	g, _ := startedGame(t, 18)
	g.asteroids = nil
	alien := g.Ship(ShipAlienSmall)
	alien.spawn(core.V(100, 300), core.V(0, 0), g.sound)

	if !g.tryFire(alien) {
		t.Fatal("tryFire() = false for a fresh saucer")
	}
	m := g.Missiles()[0]
	if m.Vel.X <= 0 {
		t.Errorf("saucer missile velocity %v, expected towards the human", m.Vel)
	}
	if g.tryFire(alien) {
		t.Error("tryFire() ignored the saucer cooldown")
	}

	g.Ship(ShipHuman).Explode(g.rng, g.sound)
	alien.cooldown = 0
	if g.tryFire(alien) {
		t.Error("saucer fired at a dead ship")
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(tick int) core.InputFrame {
		f := core.NewInputFrame()
		f.Set(core.ActionFire)
		if tick%40 < 10 {
			f.Set(core.ActionRotateLeft)
		}
		if tick%90 < 5 {
			f.Set(core.ActionThrust)
		}
		if tick == 150 {
			f.Set(core.ActionShield)
		}
		return f
	}
	run := func(seed int64) uint64 {
		g, _ := startedGame(t, seed)
		for i := 0; i < 1200; i++ {
			g.Tick(script(i))
		}
		snap := g.CreateSnapshot()
		return snap.Hash()
	}

	a, b := run(99), run(99)
	if a != b {
		t.Errorf("same seed produced hashes %x and %x", a, b)
	}
	if c := run(100); c == a {
		t.Error("different seeds produced the same state")
	}
}
