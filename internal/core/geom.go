// Package core provides the geometry kernel and the collaborator contracts
// (renderer, sound device, input) shared by the simulation and its frontends.
// It has no external dependencies so game logic stays pure and testable.
package core

import "math"

// Vec2 is a 2D vector in arena pixel space. It is a value type: every
// operation returns a new vector and never aliases the receiver.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Translate is Add under the name used by shape transforms.
func (v Vec2) Translate(o Vec2) Vec2 {
	return v.Add(o)
}

// Rotate rotates v about the origin by deg degrees.
// Positive angles turn +Y towards +X, which is clockwise on a screen
// with Y growing downwards.
func (v Vec2) Rotate(deg float64) Vec2 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Vec2{
		X: v.X*c + v.Y*s,
		Y: -v.X*s + v.Y*c,
	}
}

// Length returns the Euclidean norm.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// MidPoint returns the point halfway between v and o.
func (v Vec2) MidPoint(o Vec2) Vec2 {
	return Vec2{(v.X + o.X) / 2, (v.Y + o.Y) / 2}
}

// Heading returns the unit vector a ship nose points along after being
// rotated by deg. The unrotated nose points to +Y.
func Heading(deg float64) Vec2 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Vec2{X: s, Y: c}
}

// Polyline is an ordered sequence of points, rendered open or closed.
type Polyline []Vec2

// Clone returns a copy that shares no storage with p.
func (p Polyline) Clone() Polyline {
	out := make(Polyline, len(p))
	copy(out, p)
	return out
}

// Rotate returns p rotated about the origin.
func (p Polyline) Rotate(deg float64) Polyline {
	out := make(Polyline, len(p))
	for i, v := range p {
		out[i] = v.Rotate(deg)
	}
	return out
}

// Translate returns p moved by o.
func (p Polyline) Translate(o Vec2) Polyline {
	out := make(Polyline, len(p))
	for i, v := range p {
		out[i] = v.Add(o)
	}
	return out
}

// Mul returns p scaled component-wise by k.
func (p Polyline) Mul(k Vec2) Polyline {
	out := make(Polyline, len(p))
	for i, v := range p {
		out[i] = v.Mul(k)
	}
	return out
}

// Segments splits p into two-point polylines, one per edge.
func (p Polyline) Segments() []Polyline {
	if len(p) < 2 {
		return nil
	}
	out := make([]Polyline, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		out = append(out, Polyline{p[i-1], p[i]})
	}
	return out
}

// PolylineSet is a silhouette made of several polylines.
type PolylineSet []Polyline

// Clone deep-copies the set.
func (s PolylineSet) Clone() PolylineSet {
	out := make(PolylineSet, len(s))
	for i, p := range s {
		out[i] = p.Clone()
	}
	return out
}

// Rotate rotates every polyline in the set.
func (s PolylineSet) Rotate(deg float64) PolylineSet {
	out := make(PolylineSet, len(s))
	for i, p := range s {
		out[i] = p.Rotate(deg)
	}
	return out
}

// Translate moves every polyline in the set.
func (s PolylineSet) Translate(o Vec2) PolylineSet {
	out := make(PolylineSet, len(s))
	for i, p := range s {
		out[i] = p.Translate(o)
	}
	return out
}

// Segments flattens the set into single-edge polylines.
func (s PolylineSet) Segments() []Polyline {
	var out []Polyline
	for _, p := range s {
		out = append(out, p.Segments()...)
	}
	return out
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// WrapF wraps val into [0, max) toroidally.
func WrapF(val, max float64) float64 {
	if max <= 0 {
		return val
	}
	val = math.Mod(val, max)
	if val < 0 {
		val += max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
