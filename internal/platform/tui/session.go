package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arena/internal/config"
	"github.com/vovakirdan/brick-arena/internal/core"
	"github.com/vovakirdan/brick-arena/internal/level"
	"github.com/vovakirdan/brick-arena/internal/storage"
)

// SessionOptions configures a full session: menu, play and runs board.
type SessionOptions struct {
	Levels     []level.Level
	Arena      config.ArenaConfig // Base config; the chosen difficulty is applied per run
	Difficulty config.DifficultyPreset
	Runtime    core.RuntimeConfig
	Store      *storage.Store // May be nil
	Logger     *log.Logger    // May be nil
	Player     string

	// Start, when set, skips the menu and plays this level first.
	Start *level.Level
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewPlay
	viewRuns
)

// SessionModel manages the session flow: menu -> play -> menu, with the
// runs board reachable from the menu. It is the top-level model for both
// local and SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	view     sessionView
	menu     MenuModel
	play     *PlayModel
	runs     RunsModel
	lastErr  error
	quitting bool
}

// NewSessionModel creates a session model. It fails only when Start is set
// and cannot be built.
func NewSessionModel(opts SessionOptions) (SessionModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	m := SessionModel{opts: opts}
	m.menu = m.newMenu()
	if opts.Start != nil {
		if err := m.startPlay(*opts.Start); err != nil {
			return SessionModel{}, err
		}
	}
	return m, nil
}

func (m *SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.opts.Levels, m.opts.Store, m.opts.Logger, m.opts.Difficulty, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

// startPlay switches to a play view of l at the session's difficulty.
func (m *SessionModel) startPlay(l level.Level) error {
	cfg := m.opts.Arena
	config.ApplyPreset(&cfg, m.opts.Difficulty)
	play, err := NewPlayModel(PlayOptions{
		Level:      l,
		Arena:      cfg,
		Difficulty: m.opts.Difficulty,
		Runtime:    m.opts.Runtime,
		Store:      m.opts.Store,
		Logger:     m.opts.Logger,
		Player:     m.opts.Player,
		CanGoBack:  true,
	})
	if err != nil {
		return err
	}
	m.play = &play
	m.view = viewPlay
	return nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.view == viewPlay && m.play != nil {
		return m.play.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime = m.opts.Runtime.WithSize(wsm.Width, wsm.Height)
	}

	switch m.view {
	case viewPlay:
		return m.updatePlay(msg)
	case viewRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	m.opts.Difficulty = m.menu.Difficulty()

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsRuns():
		m.runs = NewRunsModel(m.opts.Levels, m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.view = viewRuns
		m.menu = m.newMenu()
		return m, m.runs.Init()

	case m.menu.Selected() != nil:
		selected := *m.menu.Selected()
		m.menu = m.newMenu()
		if err := m.startPlay(selected); err != nil {
			m.opts.Logger.Error("cannot start level", "level", selected.ID, "error", err)
			m.lastErr = err
			return m, nil
		}
		m.lastErr = nil
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates when in play mode.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(PlayModel); ok {
		m.play = &playModel
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.play.BackToMenu() {
		m.play = nil
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateRuns handles updates when the runs board is open.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runs.Update(msg)
	if runsModel, ok := newModel.(RunsModel); ok {
		m.runs = runsModel
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.runs.IsGoingBack() {
		m.view = viewMenu
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewPlay:
		return m.play.View()
	case viewRuns:
		return m.runs.View()
	}

	view := m.menu.View()
	if m.lastErr != nil {
		view += "\n" + centerText(errorStyle.Render(m.lastErr.Error()), m.opts.Runtime.ScreenW)
	}
	return view
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Run starts a local Bubble Tea program for the session.
func Run(opts SessionOptions) error {
	model, err := NewSessionModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
