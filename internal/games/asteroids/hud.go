package asteroids

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

//go:embed help.txt
var helpText string

// HelpLines returns the key reference shown on the attract screen.
func HelpLines() []string {
	return strings.Split(strings.TrimRight(helpText, "\n"), "\n")
}

const (
	hudMargin  = 16
	lineHeight = 20
)

// attract pages cycled while no game is running.
const (
	pageTitle = iota
	pageHelp
	pageScores
	pageCount
)

// drawHUD shows ships left, level and score along the top edge.
func (g *Game) drawHUD() {
	w, _ := g.bounds()
	r := g.renderer
	r.DrawText(fmt.Sprintf("Ships: %d", g.lives), hudMargin, hudMargin, core.ColorWhite, core.AlignLeft)
	r.DrawText(fmt.Sprintf("Level: %d", g.level), w/2, hudMargin, core.ColorWhite, core.AlignCenter)
	r.DrawText(fmt.Sprintf("Score: %d", g.score), w-hudMargin, hudMargin, core.ColorWhite, core.AlignRight)
}

// drawAttract cycles between the title, the key help and the best scores.
func (g *Game) drawAttract() {
	per := max(g.cfg.Game.AttractTicks, 1)
	page := (g.attractTicks / per) % pageCount
	g.attractTicks++

	center := g.renderer.ScreenCenter()
	switch page {
	case pageTitle:
		title := "GAME OVER"
		if !g.started {
			title = "ASTEROIDS"
		}
		g.drawLines([]string{title, "", "press N to start"}, center, core.ColorWhite)
	case pageHelp:
		g.drawLines(HelpLines(), center, core.ColorGray)
	case pageScores:
		lines := []string{"BEST SCORES", ""}
		for i, rec := range g.best.Top() {
			lines = append(lines, fmt.Sprintf("%2d. %-16s %6d", i+1, rec.Name, rec.Score))
		}
		if g.best.Len() == 0 {
			lines = append(lines, "no scores yet")
		}
		g.drawLines(lines, center, core.ColorYellow)
	}
}

// drawLines centers a block of text on c.
func (g *Game) drawLines(lines []string, c core.Vec2, col core.Color) {
	top := c.Y - float64(len(lines)-1)*lineHeight/2
	for i, l := range lines {
		g.renderer.DrawText(l, c.X, top+float64(i)*lineHeight, col, core.AlignCenter)
	}
}
