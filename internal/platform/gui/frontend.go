package gui

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "window" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Window (Ebitengine)" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, s registry.Session) error {
	r := NewRenderer(s.ArenaW, s.ArenaH)
	game, err := s.NewGame(r)
	if err != nil {
		return err
	}

	tps := s.Runtime.TickRate
	if tps <= 0 {
		tps = 60
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(int(s.ArenaW), int(s.ArenaH))
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newHost(ctx, game, r, s.Log)); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
