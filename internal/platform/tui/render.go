package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// TermRenderer draws the arena onto a character Screen. Arena pixels are
// scaled to the screen size, so the simulation never sees the terminal
// dimensions.
type TermRenderer struct {
	screen *core.Screen
	arenaW float64
	arenaH float64
}

// NewTermRenderer creates a renderer for an arenaW x arenaH arena shown on
// a cols x rows screen.
func NewTermRenderer(arenaW, arenaH float64, cols, rows int) *TermRenderer {
	return &TermRenderer{
		screen: core.NewScreen(max(cols, 1), max(rows, 1)),
		arenaW: arenaW,
		arenaH: arenaH,
	}
}

// Screen returns the backing buffer.
func (r *TermRenderer) Screen() *core.Screen { return r.screen }

// Resize changes the screen size. Content is discarded.
func (r *TermRenderer) Resize(cols, rows int) {
	r.screen.Resize(max(cols, 1), max(rows, 1))
}

// Clear blanks the screen. The terminal background stays as it is.
func (r *TermRenderer) Clear(core.Color) {
	r.screen.Clear()
}

// DrawPolyline rasterizes each segment with a glyph matching its slope.
func (r *TermRenderer) DrawPolyline(points core.Polyline, _ int, c core.Color, closed bool) {
	n := len(points)
	if n == 0 {
		return
	}
	if n == 1 {
		r.DrawPoint(points[0], c)
		return
	}
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		x0, y0 := r.cell(points[i])
		x1, y1 := r.cell(points[(i+1)%n])
		r.screen.DrawLine(x0, y0, x1, y1, slopeGlyph(x1-x0, y1-y0), c)
	}
}

// DrawPoint marks the cell containing p.
func (r *TermRenderer) DrawPoint(p core.Vec2, c core.Color) {
	x, y := r.cell(p)
	r.screen.Set(x, y, '.', c)
}

// DrawText writes s on the row containing y, aligned on x.
func (r *TermRenderer) DrawText(s string, x, y float64, c core.Color, align core.Align) {
	col, row := r.cell(core.V(x, y))
	n := len([]rune(s))
	switch align {
	case core.AlignCenter:
		col -= n / 2
	case core.AlignRight:
		col -= n - 1
	}
	col = core.Clamp(col, 0, max(r.screen.Width()-n, 0))
	r.screen.DrawText(col, row, s, c)
}

// ScreenCenter returns the arena center.
func (r *TermRenderer) ScreenCenter() core.Vec2 {
	return core.V(r.arenaW/2, r.arenaH/2)
}

// ClientBounds returns the arena size.
func (r *TermRenderer) ClientBounds() (float64, float64) {
	return r.arenaW, r.arenaH
}

// cell maps an arena point to screen coordinates.
func (r *TermRenderer) cell(p core.Vec2) (int, int) {
	sx := float64(r.screen.Width()) / r.arenaW
	sy := float64(r.screen.Height()) / r.arenaH
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// slopeGlyph picks the character closest to the direction (dx, dy) in
// screen space, where y grows downwards.
func slopeGlyph(dx, dy int) rune {
	adx, ady := core.Abs(dx), core.Abs(dy)
	switch {
	case adx == 0 && ady == 0:
		return '*'
	case ady*2 < adx:
		return '-'
	case adx*2 < ady:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// styleCache holds one lipgloss style per color.
type styleCache map[core.Color]lipgloss.Style

func (sc styleCache) get(c core.Color) lipgloss.Style {
	if s, ok := sc[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c != core.ColorBlack {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	sc[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				// Blanks take the color of the run they interrupt.
				if cell.Color != start && cell.Rune != ' ' {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
