package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Model is the Bubble Tea model for one snake game.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a terminal of the given size.
// A nil rng seeds from the clock.
func NewModel(cfg snake.Config, rng snake.RNG, width, height int) Model {
	m := Model{
		session: session.New(cfg, rng),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.screen = core.NewScreen(width, m.boardHeight())
	m.help.Width = width
	return m
}

// boardHeight leaves one row for the help line.
func (m Model) boardHeight() int {
	return max(m.height-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Config().Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m.dispatch(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.dispatch(MouseAction(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, m.boardHeight())
		return m, nil

	case TickMsg:
		m.session.Tick()
		return m, tickCmd(m.session.Config().Tick)
	}

	return m, nil
}

// dispatch applies an input action. The tick loop keeps running in every
// status; Advance is a no-op unless the game is running.
func (m Model) dispatch(a core.Action) (tea.Model, tea.Cmd) {
	if a == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if a != core.ActionNone {
		m.session.Apply(a)
	}
	return m, nil
}

// State returns the current game state.
func (m Model) State() snake.State {
	return m.session.State()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	RenderBoard(m.screen, m.session.State(), m.session.Config())

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program in the alternate screen.
func Run(cfg snake.Config, rng snake.RNG, width, height int) error {
	p := tea.NewProgram(
		NewModel(cfg, rng, width, height),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
