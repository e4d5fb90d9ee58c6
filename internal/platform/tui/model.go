package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

// helpRows is the space reserved below the arena for the help bar.
const helpRows = 1

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("229")).Padding(1, 2)
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	game     *asteroids.Game
	renderer *TermRenderer
	styles   styleCache
	keys     KeyMap
	input    *Input
	help     help.Model
	name     textinput.Model
	naming   bool
	tickRate int
	width    int
	height   int
	log      *log.Logger
}

// NewModel creates a model around a game that draws to r.
func NewModel(game *asteroids.Game, r *TermRenderer, tickRate int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 16
	ti.Width = 20

	// Hold for roughly a quarter second, long enough to bridge the
	// keyboard auto-repeat delay.
	return Model{
		game:     game,
		renderer: r,
		styles:   make(styleCache),
		keys:     DefaultKeyMap(),
		input:    NewInput(tickRate / 4),
		help:     help.New(),
		name:     ti,
		tickRate: tickRate,
		width:    r.Screen().Width(),
		height:   r.Screen().Height() + helpRows,
		log:      logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.Resize(msg.Width, msg.Height-helpRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	m.input.Press(m.keys.MapKey(msg))
	return m, nil
}

// handleNameKey feeds the name modal. Enter submits, Esc skips.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.game.SubmitName(m.name.Value())
		m.log.Info("best score recorded", "name", m.name.Value(), "score", m.game.PendingScore())
		m.closeNameModal()
		return m, nil
	case tea.KeyEsc, tea.KeyCtrlC:
		m.game.CancelName()
		m.closeNameModal()
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *Model) closeNameModal() {
	m.naming = false
	m.name.Blur()
	m.name.Reset()
	m.input.Reset()
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Tick(m.input.Frame())

	if !m.game.Running() {
		return m, tea.Quit
	}

	if m.game.AwaitingName() && !m.naming {
		m.naming = true
		m.input.Reset()
		cmd := m.name.Focus()
		return m, tea.Batch(cmd, tickCmd(m.tickRate))
	}

	return m, tickCmd(m.tickRate)
}

// View renders the arena, any overlay and the help bar.
func (m Model) View() string {
	if !m.game.Running() {
		return ""
	}

	arena := RenderScreen(m.renderer.Screen(), m.styles)
	switch {
	case m.naming:
		arena = m.centered(modalStyle.Render(fmt.Sprintf(
			"New best score: %d\n\n%s\n\nenter to save, esc to skip",
			m.game.PendingScore(), m.name.View())))
	case m.game.Paused():
		arena = m.centered(bannerStyle.Render("PAUSED"))
	}

	return arena + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// centered replaces the arena area with box placed in its middle.
func (m Model) centered(box string) string {
	s := m.renderer.Screen()
	return lipgloss.Place(s.Width(), s.Height(), lipgloss.Center, lipgloss.Center, box)
}

// Naming reports whether the name modal is open.
func (m Model) Naming() bool { return m.naming }
