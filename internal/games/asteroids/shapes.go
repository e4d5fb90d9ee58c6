package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Unit silhouettes. They are scaled by the ship size when a ship is built.
// The nose of the human ship points to +Y.
var (
	humanHull = core.Polyline{
		{X: .5, Y: -.5}, {X: 0, Y: .5}, {X: -.5, Y: -.5}, {X: 0, Y: -.25}, {X: .5, Y: -.5},
	}
	humanFlame = core.Polyline{
		{X: -.25, Y: -.25}, {X: -.1, Y: -.3}, {X: 0, Y: -.75}, {X: .1, Y: -.3}, {X: .25, Y: -.25},
	}
	saucerHull = core.Polyline{
		{X: .5, Y: 0}, {X: .25, Y: -.25}, {X: -.25, Y: -.25}, {X: -.5, Y: 0},
		{X: -.25, Y: .25}, {X: .25, Y: .25}, {X: .5, Y: 0}, {X: -.5, Y: 0},
	}
	saucerDome = core.Polyline{
		{X: .2, Y: -.25}, {X: .15, Y: -.4}, {X: -.15, Y: -.4}, {X: -.2, Y: -.25},
	}
)

const shieldPoints = 64

// shipShapes builds the hull and flame of a ship class at the given size.
func shipShapes(class ShipClass, size core.Vec2) (hull core.PolylineSet, flame core.Polyline) {
	if class == ShipHuman {
		return core.PolylineSet{humanHull.Mul(size)}, humanFlame.Mul(size)
	}
	return core.PolylineSet{saucerHull.Mul(size), saucerDome.Mul(size)}, nil
}

// shieldRing builds a closed circle around the ship.
func shieldRing(radius float64) core.Polyline {
	ring := make(core.Polyline, shieldPoints)
	step := 2 * math.Pi / shieldPoints
	for i := range ring {
		s, c := math.Sincos(float64(i) * step)
		ring[i] = core.V(c*radius, s*radius)
	}
	return ring
}
