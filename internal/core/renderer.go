package core

// Align controls horizontal text placement relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Renderer is the drawing surface the simulation emits to. All coordinates
// are in arena pixel space with the origin at the top-left corner.
type Renderer interface {
	Clear(c Color)
	DrawPolyline(points Polyline, width int, c Color, closed bool)
	DrawPoint(p Vec2, c Color)
	DrawText(s string, x, y float64, c Color, align Align)
	ScreenCenter() Vec2
	ClientBounds() (w, h float64)
}

// NopRenderer discards every draw call. Its bounds are fixed at
// construction, which makes it suitable for headless simulation.
type NopRenderer struct {
	W, H float64
}

func (NopRenderer) Clear(Color)                                     {}
func (NopRenderer) DrawPolyline(Polyline, int, Color, bool)         {}
func (NopRenderer) DrawPoint(Vec2, Color)                           {}
func (NopRenderer) DrawText(string, float64, float64, Color, Align) {}

// ScreenCenter returns the middle of the bounds.
func (r NopRenderer) ScreenCenter() Vec2 {
	return Vec2{r.W / 2, r.H / 2}
}

// ClientBounds returns the fixed bounds.
func (r NopRenderer) ClientBounds() (float64, float64) {
	return r.W, r.H
}
