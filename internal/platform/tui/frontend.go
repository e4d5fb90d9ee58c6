package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Fallback size when the terminal does not report one.
const (
	defaultCols = 100
	defaultRows = 40
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in the current terminal.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "tui" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, s registry.Session) error {
	fd := int(os.Stdout.Fd()) //#nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return errors.New("tui: stdout is not a terminal")
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= helpRows {
		cols, rows = defaultCols, defaultRows
	}

	r := NewTermRenderer(s.ArenaW, s.ArenaH, cols, rows-helpRows)
	game, err := s.NewGame(r)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, r, s.Runtime.TickRate, s.Log),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
