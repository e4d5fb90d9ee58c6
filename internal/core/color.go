package core

import "fmt"

// Color is a 24-bit RGB color. Frontends convert it to whatever their
// surface understands (lipgloss hex strings, image/color values).
type Color struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorBlack  = Color{0, 0, 0}
	ColorWhite  = Color{255, 255, 255}
	ColorRed    = Color{255, 64, 64}
	ColorYellow = Color{255, 255, 0}
	ColorOrange = Color{255, 160, 0}
	ColorCyan   = Color{0, 255, 255}
	ColorGreen  = Color{64, 255, 64}
	ColorGray   = Color{128, 128, 128}
)

// Gray returns a neutral color of brightness b.
func Gray(b uint8) Color {
	return Color{b, b, b}
}

// Fade scales c towards black by f in [0, 1].
func (c Color) Fade(f float64) Color {
	f = ClampF(f, 0, 1)
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
