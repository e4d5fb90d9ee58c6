package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Missile is a shot. FiredBy names the ship class that fired it and is
// only used to keep a ship from hitting itself.
type Missile struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Armed   bool
	FiredBy ShipClass
}

// Update moves an armed missile and draws it.
func (m *Missile) Update(dt float64, r core.Renderer) {
	if !m.Armed {
		return
	}
	m.Pos = m.Pos.Add(m.Vel.Scale(dt))
	r.DrawPoint(m.Pos, core.ColorWhite)
}

// Disarm spends the missile. The game drops it at the end of the tick.
func (m *Missile) Disarm() {
	m.Armed = false
}

// inside reports whether the missile is within a w x h arena.
func (m *Missile) inside(w, h float64) bool {
	return m.Pos.X >= 0 && m.Pos.X <= w && m.Pos.Y >= 0 && m.Pos.Y <= h
}
