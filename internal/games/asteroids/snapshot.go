package asteroids

import "math"

// Snapshot captures the simulation state for determinism testing.
type Snapshot struct {
	Tick       int
	Lives      int
	Score      int
	Level      int
	BonusIndex int
	GameOver   bool
	Paused     bool

	// Ship data: [x, y, vx, vy, rot, alive, visible, shield] per ship
	ShipData []float64

	// Asteroid data: [class, x, y, vx, vy, radius, alive, explosionTicks] per asteroid
	AsteroidData []float64

	// Missile data: [x, y, vx, vy, firedBy] per armed missile
	MissileData []float64
}

// CreateSnapshot captures the current game state.
func (g *Game) CreateSnapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tickCount,
		Lives:      g.lives,
		Score:      g.score,
		Level:      g.level,
		BonusIndex: g.bonusIndex,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}

	for _, s := range g.ships {
		snap.ShipData = append(snap.ShipData,
			s.Pos.X, s.Pos.Y, s.Vel.X, s.Vel.Y, s.Rot,
			boolF(s.alive), boolF(s.visible), boolF(s.shieldActive))
	}
	for _, a := range g.asteroids {
		snap.AsteroidData = append(snap.AsteroidData,
			float64(a.Class), a.Pos.X, a.Pos.Y, a.Vel.X, a.Vel.Y, a.Radius,
			boolF(a.alive), float64(a.ExplosionTicks()))
	}
	for _, m := range g.missiles {
		if m.Armed {
			snap.MissileData = append(snap.MissileData,
				m.Pos.X, m.Pos.Y, m.Vel.X, m.Vel.Y, float64(m.FiredBy))
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(boolF(snap.GameOver))
	h = h*31 + uint64(boolF(snap.Paused))

	for _, v := range snap.ShipData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.AsteroidData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.MissileData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
