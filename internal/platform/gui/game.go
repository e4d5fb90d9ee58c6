package gui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

// ebitenKeys reads the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// host adapts the simulation to ebiten.Game. Ebitengine calls Update at the
// configured TPS, which is the simulation tick.
type host struct {
	ctx      context.Context
	game     *asteroids.Game
	renderer *Renderer
	keys     keyState
	frame    core.InputFrame
	name     nameBuffer
	naming   bool
	chars    []rune
	log      *log.Logger
}

func newHost(ctx context.Context, g *asteroids.Game, r *Renderer, logger *log.Logger) *host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &host{
		ctx:      ctx,
		game:     g,
		renderer: r,
		keys:     ebitenKeys{},
		frame:    core.NewInputFrame(),
		name:     nameBuffer{limit: 16},
		log:      logger,
	}
}

// Update advances one tick.
func (h *host) Update() error {
	if h.ctx.Err() != nil {
		h.game.Quit()
		return ebiten.Termination
	}

	if h.naming {
		h.updateName()
		return nil
	}

	readFrame(h.keys, &h.frame)
	h.game.Tick(h.frame)
	if !h.game.Running() {
		return ebiten.Termination
	}

	if h.game.AwaitingName() {
		h.naming = true
		h.name.reset()
	}
	return nil
}

// updateName edits the best-score name. Enter submits, Escape skips.
func (h *host) updateName() {
	h.chars = ebiten.AppendInputChars(h.chars[:0])
	h.name.add(h.chars)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		h.name.backspace()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		h.game.SubmitName(h.name.String())
		h.log.Info("best score recorded", "name", h.name.String(), "score", h.game.PendingScore())
		h.naming = false
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		h.game.CancelName()
		h.naming = false
	}
}

// Draw replays the last frame plus any prompt.
func (h *host) Draw(screen *ebiten.Image) {
	h.renderer.Draw(screen)

	c := h.renderer.ScreenCenter()
	switch {
	case h.naming:
		prompt := fmt.Sprintf("New best score: %d", h.game.PendingScore())
		h.printCentered(screen, prompt, c.X, c.Y-glyphH*2)
		h.printCentered(screen, "Name: "+h.name.String()+"_", c.X, c.Y)
		h.printCentered(screen, "enter to save, esc to skip", c.X, c.Y+glyphH*2)
	case h.game.Paused():
		h.printCentered(screen, "PAUSED", c.X, c.Y)
	}
}

func (h *host) printCentered(screen *ebiten.Image, s string, x, y float64) {
	left, top := textOrigin(s, x, y, core.AlignCenter)
	ebitenutil.DebugPrintAt(screen, s, left, top)
}

// Layout keeps the logical screen at the arena size; Ebitengine scales it
// to the window.
func (h *host) Layout(_, _ int) (int, int) {
	w, hh := h.renderer.ClientBounds()
	return int(w), int(hh)
}
