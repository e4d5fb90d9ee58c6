// Package asteroids implements the arcade simulation: entity state machines,
// motion, collisions, scoring and level progression. It draws and plays
// sounds only through the core.Renderer and core.SoundDevice contracts.
package asteroids

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Phase is the coarse game state.
type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// humanHeading points the human ship up the screen.
const humanHeading = 180

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithScoreStore loads best scores from s and persists new ones to it.
func WithScoreStore(s ScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// Game owns every entity and the game state. It is not safe for
// concurrent use; the host calls Tick from a single loop.
type Game struct {
	cfg        config.AsteroidsConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	renderer   core.Renderer
	sound      core.SoundDevice
	store      ScoreStore
	log        *log.Logger
	difficulty *config.DifficultyManager

	ships     [shipClassCount]*Ship
	asteroids []*Asteroid
	missiles  []*Missile

	lives      int
	score      int
	level      int
	bonusIndex int
	running    bool
	paused     bool
	gameOver   bool
	started    bool
	volume     float64

	awaitingName bool
	scoreChecked bool
	pendingScore int
	best         *BestScores

	tickCount    int
	alienSpawnIn int
	attractTicks int
}

// New builds a game in the setup phase. It loads every sound up front and
// refuses to build a game when that fails.
func New(cfg config.AsteroidsConfig, runtime core.RuntimeConfig, r core.Renderer, snd core.SoundDevice, opts ...Option) (*Game, error) {
	if r == nil || snd == nil {
		panic("asteroids: New requires a renderer and a sound device")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		runtime:    runtime,
		rng:        rand.New(rand.NewSource(runtime.Seed)),
		renderer:   r,
		sound:      snd,
		log:        log.New(io.Discard),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		running:    true,
		gameOver:   true,
		level:      cfg.Game.StartLevel,
		lives:      cfg.Game.Lives,
		bonusIndex: 1,
		volume:     core.ClampF(cfg.Game.Volume, 0, 1),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := snd.Load(core.AllSounds()); err != nil {
		return nil, fmt.Errorf("asteroids: cannot load sounds: %w", err)
	}
	snd.SetMasterVolume(g.volume)

	var records []core.ScoreRecord
	if g.store != nil {
		loaded, err := g.store.Load()
		if err != nil {
			g.log.Warn("best scores unavailable", "err", err)
		}
		records = loaded
	}
	g.best = NewBestScores(cfg.Game.BestScores, records)

	for c := ShipClass(0); c < shipClassCount; c++ {
		g.ships[c] = NewShip(c, cfg.Ship, cfg.Aliens)
	}
	g.buildField(g.level)
	return g, nil
}

// Restart begins a new game from the first level.
func (g *Game) Restart() {
	g.sound.StopAll()
	g.missiles = g.missiles[:0]
	g.asteroids = g.asteroids[:0]

	g.ships[ShipHuman].Respawn(g.renderer.ScreenCenter(), humanHeading)
	g.ships[ShipAlienSmall].park(g.sound)
	g.ships[ShipAlienBig].park(g.sound)

	g.lives = g.cfg.Game.Lives
	g.level = g.cfg.Game.StartLevel
	g.score = 0
	g.bonusIndex = 1
	g.gameOver = false
	g.paused = false
	g.started = true
	g.awaitingName = false
	g.scoreChecked = false
	g.tickCount = 0
	g.resetAlienTimer()
	g.buildField(g.level)

	g.log.Info("game started", "level", g.level, "lives", g.lives, "asteroids", len(g.asteroids))
}

// Tick advances the simulation by one fixed step.
func (g *Game) Tick(in core.InputFrame) {
	g.handleCommands(in)
	if !g.running || g.paused {
		return
	}

	dt := g.cfg.Arena.DT
	g.renderer.Clear(core.ColorBlack)

	if !g.gameOver {
		g.steerHuman(in)
	}

	for _, s := range g.ships {
		s.Update(dt, g.rng, g.renderer)
	}
	if !g.gameOver {
		g.tryFire(g.ships[ShipAlienSmall])
		g.tryFire(g.ships[ShipAlienBig])
	}
	for _, m := range g.missiles {
		m.Update(dt, g.renderer)
	}
	for _, a := range g.asteroids {
		a.Update(dt, g.renderer)
	}
	g.forceInsideLimits()

	if !g.gameOver {
		g.humanRespawnCheck()
		g.alienSpawnCheck()
		g.resolveCollisions()
		g.bonusCheck()
		if !g.gameOver {
			g.levelClearedCheck()
		}
	} else {
		g.drawAttract()
	}

	g.sweep()
	g.drawHUD()
	g.tickCount++
}

// handleCommands applies the edge-triggered intents.
func (g *Game) handleCommands(in core.InputFrame) {
	if !g.running {
		return
	}
	if in.Has(core.ActionQuit) {
		g.Quit()
		return
	}
	if in.Has(core.ActionVolumeUp) {
		g.SetVolume(g.volume + g.cfg.Game.VolumeStep)
	}
	if in.Has(core.ActionVolumeDown) {
		g.SetVolume(g.volume - g.cfg.Game.VolumeStep)
	}
	if g.awaitingName {
		return
	}
	if in.Has(core.ActionPause) && g.started {
		g.paused = !g.paused
		return
	}
	if in.Has(core.ActionRestart) && !g.paused {
		g.Restart()
	}
}

// steerHuman applies the held intents to the human ship.
func (g *Game) steerHuman(in core.InputFrame) {
	human := g.ships[ShipHuman]
	if !human.alive {
		return
	}
	step := g.cfg.Ship.RotationStep
	if in.Has(core.ActionRotateLeft) {
		human.Rotate(step)
	}
	if in.Has(core.ActionRotateRight) {
		human.Rotate(-step)
	}
	if in.Has(core.ActionThrust) {
		human.Impulse(g.cfg.Ship.Impulse, g.sound)
	}
	if in.Has(core.ActionShield) {
		human.ActivateShield(g.sound)
	}
	if in.Has(core.ActionFire) {
		g.tryFire(human)
	}
}

// tryFire arms a new missile if the ship may shoot. Human shots carry the
// ship velocity; saucers aim at the human with a class-dependent error.
func (g *Game) tryFire(s *Ship) bool {
	if !s.alive || !s.visible || s.cooldown > 0 {
		return false
	}
	speed := g.cfg.Missiles.Speed

	var vel core.Vec2
	if s.Class == ShipHuman {
		vel = core.Heading(s.Rot).Scale(speed).Add(s.Vel)
		s.cooldown = g.cfg.Ship.ShotDelay
		g.sound.Play(core.SoundShipFire, false)
	} else {
		target := g.ships[ShipHuman]
		if !target.alive {
			return false
		}
		aim := g.cfg.Aliens.SmallAimError
		if s.Class == ShipAlienBig {
			aim = g.cfg.Aliens.BigAimError
		}
		aim *= math.Pi / 180
		d := target.Pos.Sub(s.Pos)
		angle := math.Atan2(d.Y, d.X) + aim + jitter(g.rng, aim)
		sin, cos := math.Sincos(angle)
		vel = core.V(cos*speed, sin*speed)
		s.cooldown = g.cfg.Aliens.ShotDelay
	}

	g.missiles = append(g.missiles, &Missile{
		Pos:     s.Pos,
		Vel:     vel,
		Armed:   true,
		FiredBy: s.Class,
	})
	return true
}

// forceInsideLimits wraps the human ship and asteroids around the arena.
// Saucers wrap vertically and are parked once they leave sideways.
func (g *Game) forceInsideLimits() {
	w, h := g.bounds()

	if human := g.ships[ShipHuman]; human.alive {
		human.Pos = core.V(core.WrapF(human.Pos.X, w), core.WrapF(human.Pos.Y, h))
	}
	for _, c := range []ShipClass{ShipAlienSmall, ShipAlienBig} {
		s := g.ships[c]
		if !s.alive {
			continue
		}
		s.Pos.Y = core.WrapF(s.Pos.Y, h)
		if s.Pos.X < 0 || s.Pos.X > w {
			s.park(g.sound)
			g.log.Debug("saucer left the arena", "class", c)
		}
	}
	for _, a := range g.asteroids {
		if a.alive {
			a.Pos = core.V(core.WrapF(a.Pos.X, w), core.WrapF(a.Pos.Y, h))
		}
	}
}

// humanRespawnCheck brings the human ship back at the center once its
// explosion is over and no asteroid is within the safety distance.
func (g *Game) humanRespawnCheck() {
	human := g.ships[ShipHuman]
	if human.alive || human.Exploding() {
		return
	}
	center := g.renderer.ScreenCenter()
	for _, a := range g.asteroids {
		if a.alive && a.Pos.Distance(center) < g.cfg.Game.SafetyDistance {
			return
		}
	}
	human.Respawn(center, humanHeading)
}

// alienSpawnCheck launches a saucer from a random side when the spawn
// countdown runs out and the chosen saucer is not already flying.
func (g *Game) alienSpawnCheck() {
	g.alienSpawnIn--
	if g.alienSpawnIn > 0 {
		return
	}
	g.resetAlienTimer()

	class := ShipAlienSmall
	if g.rng.Intn(2) == 0 {
		class = ShipAlienBig
	}
	s := g.ships[class]
	if s.visible {
		return
	}

	w, h := g.bounds()
	cy := h / 2
	y := cy + jitter(g.rng, cy-g.cfg.Aliens.EdgeMargin)
	speed := g.cfg.Aliens.Speed + absJitter(g.rng, g.cfg.Aliens.SpeedJitter)
	x := 0.0
	if g.rng.Intn(2) == 0 {
		x = w
		speed = -speed
	}
	s.spawn(core.V(x, y), core.V(speed, 0), g.sound)
	g.log.Debug("saucer spawned", "class", class, "x", x, "y", y)
}

func (g *Game) resetAlienTimer() {
	base := g.difficulty.SpawnInterval(g.cfg.Aliens.SpawnInterval, g.progress())
	g.alienSpawnIn = base + int(jitter(g.rng, float64(g.cfg.Aliens.SpawnJitter)))
	if g.alienSpawnIn < 1 {
		g.alienSpawnIn = 1
	}
}

// bonusCheck grants an extra life each time the score passes the next
// multiple of the bonus threshold.
func (g *Game) bonusCheck() {
	if g.score < g.cfg.Game.BonusPoints*g.bonusIndex {
		return
	}
	g.lives++
	g.bonusIndex++
	g.sound.Play(core.SoundBonus, false)
	g.log.Info("bonus life", "score", g.score, "lives", g.lives)
}

// levelClearedCheck advances the level once no asteroid is alive.
func (g *Game) levelClearedCheck() bool {
	for _, a := range g.asteroids {
		if a.alive {
			return false
		}
	}
	g.advanceLevel()
	return true
}

// advanceLevel clears the arena and builds the next, larger field.
func (g *Game) advanceLevel() {
	g.missiles = g.missiles[:0]
	g.asteroids = g.asteroids[:0]
	g.level++
	g.buildField(g.level)
	g.log.Info("level cleared", "level", g.level, "score", g.score)
}

// buildField scatters level * asteroids_per_level big asteroids, keeping the
// arena center clear for the human ship.
func (g *Game) buildField(level int) {
	w, h := g.bounds()
	center := core.V(w/2, h/2)
	speed := g.difficulty.Speed(g.cfg.Asteroids.Speed, g.progress())
	minSpeed := g.cfg.Asteroids.MinSpeed

	n := level * g.cfg.Game.AsteroidsPerLevel
	for i := 0; i < n; i++ {
		pos := core.V(absJitter(g.rng, w), absJitter(g.rng, h))
		for try := 0; try < 8 && pos.Distance(center) < g.cfg.Game.SafetyDistance*2; try++ {
			pos = core.V(absJitter(g.rng, w), absJitter(g.rng, h))
		}
		vel := core.V(jitter(g.rng, speed)+minSpeed, jitter(g.rng, speed)+minSpeed)
		g.asteroids = append(g.asteroids, NewAsteroid(g.rng, SizeBig, pos, vel, g.cfg.Asteroids))
	}
}

// enterGameOver kills every ship and starts the game over music.
func (g *Game) enterGameOver() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.attractTicks = 0
	for _, s := range g.ships {
		s.hide(g.sound)
		s.alive = false
	}
	g.sound.Play(core.SoundTrails, true)
	g.log.Info("game over", "score", g.score, "level", g.level)
}

// bestScoreCheck asks the host for a name if the final score qualifies.
func (g *Game) bestScoreCheck() {
	if !g.gameOver || g.scoreChecked {
		return
	}
	g.scoreChecked = true
	if !g.best.Qualifies(g.score) {
		return
	}
	g.awaitingName = true
	g.pendingScore = g.score
	g.paused = true
}

// SubmitName records the pending best score under name and resumes.
func (g *Game) SubmitName(name string) {
	if !g.awaitingName {
		return
	}
	name = strings.TrimSpace(strings.ReplaceAll(name, ",", " "))
	if name == "" {
		name = "anonymous"
	}
	rec := core.ScoreRecord{Name: name, Score: g.pendingScore}
	g.best.Insert(rec)
	if g.store != nil {
		if err := g.store.Append(rec); err != nil {
			g.log.Warn("cannot save best score", "name", name, "score", rec.Score, "err", err)
		}
	}
	g.awaitingName = false
	g.paused = false
}

// CancelName drops the pending best score and resumes.
func (g *Game) CancelName() {
	if !g.awaitingName {
		return
	}
	g.awaitingName = false
	g.paused = false
}

// sweep drops spent missiles and dead, faded asteroids.
func (g *Game) sweep() {
	missiles := g.missiles[:0]
	for _, m := range g.missiles {
		if m.Armed {
			missiles = append(missiles, m)
		}
	}
	clear(g.missiles[len(missiles):])
	g.missiles = missiles

	rocks := g.asteroids[:0]
	for _, a := range g.asteroids {
		if !a.Expired() {
			rocks = append(rocks, a)
		}
	}
	clear(g.asteroids[len(rocks):])
	g.asteroids = rocks
}

// Quit stops the game for good.
func (g *Game) Quit() {
	if !g.running {
		return
	}
	g.running = false
	g.sound.StopAll()
}

// SetVolume sets the master volume, clamped to [0, 1].
func (g *Game) SetVolume(v float64) {
	g.volume = core.ClampF(v, 0, 1)
	g.sound.SetMasterVolume(g.volume)
}

// Volume returns the master volume.
func (g *Game) Volume() float64 { return g.volume }

// Running reports whether the game has not been quit.
func (g *Game) Running() bool { return g.running }

// Paused reports whether ticks are being skipped.
func (g *Game) Paused() bool { return g.paused }

// GameOver reports whether the last game has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// AwaitingName reports whether the host should prompt for a name.
func (g *Game) AwaitingName() bool { return g.awaitingName }

// PendingScore returns the score waiting for a name.
func (g *Game) PendingScore() int { return g.pendingScore }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// BestScores returns the best-scores table, best first.
func (g *Game) BestScores() []core.ScoreRecord { return g.best.All() }

// Ship returns the ship of the given class.
func (g *Game) Ship(c ShipClass) *Ship { return g.ships[c] }

// Asteroids returns the active asteroid collection. Callers must not keep it.
func (g *Game) Asteroids() []*Asteroid { return g.asteroids }

// Missiles returns the active missiles. Callers must not keep it.
func (g *Game) Missiles() []*Missile { return g.missiles }

// Phase returns the coarse game state.
func (g *Game) Phase() Phase {
	switch {
	case !g.started:
		return PhaseSetup
	case g.gameOver:
		return PhaseGameOver
	case g.paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// State summarizes the game for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		Lives:        g.lives,
		Level:        g.level,
		GameOver:     g.gameOver,
		Paused:       g.paused,
		Running:      g.running,
		AwaitingName: g.awaitingName,
	}
}

func (g *Game) bounds() (float64, float64) {
	return g.renderer.ClientBounds()
}

func (g *Game) progress() config.Progress {
	return config.Progress{Level: g.level, Score: g.score, Ticks: g.tickCount}
}
