// Package gui hosts the game in a desktop window with Ebitengine. The
// simulation draws into a display list during Update; Draw replays it.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

type line struct {
	x0, y0, x1, y1 float32
	width          float32
	color          core.Color
}

type label struct {
	text string
	x, y int
}

// Renderer records draw calls for one frame.
type Renderer struct {
	w, h       float64
	background core.Color
	lines      []line
	points     []line
	labels     []label
}

// NewRenderer creates a renderer for a w x h arena.
func NewRenderer(w, h float64) *Renderer {
	return &Renderer{w: w, h: h}
}

// Clear starts a new frame.
func (r *Renderer) Clear(c core.Color) {
	r.background = c
	r.lines = r.lines[:0]
	r.points = r.points[:0]
	r.labels = r.labels[:0]
}

// DrawPolyline records the segments of points.
func (r *Renderer) DrawPolyline(points core.Polyline, width int, c core.Color, closed bool) {
	n := len(points)
	if n < 2 {
		if n == 1 {
			r.DrawPoint(points[0], c)
		}
		return
	}
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a, b := points[i], points[(i+1)%n]
		r.lines = append(r.lines, line{
			x0:    float32(a.X),
			y0:    float32(a.Y),
			x1:    float32(b.X),
			y1:    float32(b.Y),
			width: float32(max(width, 1)),
			color: c,
		})
	}
}

// DrawPoint records a one pixel dot.
func (r *Renderer) DrawPoint(p core.Vec2, c core.Color) {
	r.points = append(r.points, line{x0: float32(p.X), y0: float32(p.Y), color: c})
}

// DrawText records s anchored on (x, y). The debug font is white only.
func (r *Renderer) DrawText(s string, x, y float64, _ core.Color, align core.Align) {
	left, top := textOrigin(s, x, y, align)
	r.labels = append(r.labels, label{text: s, x: left, y: top})
}

// ScreenCenter returns the arena center.
func (r *Renderer) ScreenCenter() core.Vec2 {
	return core.V(r.w/2, r.h/2)
}

// ClientBounds returns the arena size.
func (r *Renderer) ClientBounds() (float64, float64) {
	return r.w, r.h
}

// Draw replays the recorded frame onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.background)
	for _, l := range r.lines {
		vector.StrokeLine(screen, l.x0, l.y0, l.x1, l.y1, l.width, l.color, true)
	}
	for _, p := range r.points {
		vector.DrawFilledRect(screen, p.x0, p.y0, 1, 1, p.color, false)
	}
	for _, l := range r.labels {
		ebitenutil.DebugPrintAt(screen, l.text, l.x, l.y)
	}
}

// textOrigin returns the top-left pixel for s so that its baseline row is
// centered on y and it is aligned on x.
func textOrigin(s string, x, y float64, align core.Align) (int, int) {
	w := float64(len([]rune(s)) * glyphW)
	switch align {
	case core.AlignCenter:
		x -= w / 2
	case core.AlignRight:
		x -= w
	}
	return int(x), int(y - glyphH/2)
}
