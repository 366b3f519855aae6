package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arena/internal/arena"
	"github.com/vovakirdan/brick-arena/internal/config"
	"github.com/vovakirdan/brick-arena/internal/core"
	"github.com/vovakirdan/brick-arena/internal/level"
	"github.com/vovakirdan/brick-arena/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RuntimeFor derives the frame timing of a terminal session from cfg.
func RuntimeFor(cfg config.ArenaConfig, width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig().WithSize(width, height)
	if cfg.Display.FPS > 0 {
		rc.FPS = cfg.Display.FPS
	}
	if cfg.Simulation.FrameMS > 0 {
		rc.FrameMS = cfg.Simulation.FrameMS
	}
	if cfg.Display.HoldFrames > 0 {
		rc.HoldFrames = cfg.Display.HoldFrames
	}
	return rc
}

// PlayOptions configures a play view.
type PlayOptions struct {
	Level      level.Level
	Arena      config.ArenaConfig // Already adjusted for Difficulty
	Difficulty config.DifficultyPreset
	Runtime    core.RuntimeConfig
	Store      *storage.Store // May be nil
	Logger     *log.Logger    // May be nil
	Player     string
	CanGoBack  bool // Esc returns to a menu instead of being ignored
}

// PlayModel is the Bubble Tea model that plays one level.
type PlayModel struct {
	opts     PlayOptions
	id       int64
	state    *arena.State
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	steering *core.Steering
	bricks   int // Bricks at the start of the run

	paused     bool
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewPlayModel builds the level and returns a model ready to run.
func NewPlayModel(opts PlayOptions) (PlayModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	m := PlayModel{
		opts:     opts,
		id:       nextPlayID(),
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		config:   opts.Runtime,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    core.NewInputFrame(),
		steering: core.NewSteering(opts.Runtime.HoldFrames),
	}
	m.help.Width = opts.Runtime.ScreenW
	m.keys.Back.SetEnabled(opts.CanGoBack)
	if err := m.reset(); err != nil {
		return PlayModel{}, err
	}
	return m, nil
}

// reset rebuilds the arena from the level.
func (m *PlayModel) reset() error {
	state, err := level.Build(m.opts.Level, m.opts.Arena, arena.WithLogger(m.opts.Logger))
	if err != nil {
		return err
	}
	m.state = state
	m.bricks = state.Grid().Len()
	m.paused = false
	m.saved = false
	m.steering.Reset()
	m.input.Clear()
	return nil
}

// Init starts the frame loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.id, m.config.FPS)
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config = m.config.WithSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if msg.ID != m.id || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Steering keys are latched in the
// input frame and applied on the next tick; everything else acts at once.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.finish(storage.OutcomeQuit)
		m.backToMenu = true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Pause):
		if !m.state.IsOver() {
			m.paused = !m.paused
		}
	case key.Matches(msg, m.keys.Restart):
		m.finish(storage.OutcomeQuit)
		if err := m.reset(); err != nil {
			m.opts.Logger.Error("cannot restart level", "level", m.opts.Level.ID, "error", err)
		}
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
	default:
		m.keys.MapKeyToFrame(msg, &m.input)
	}
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.state.IsOver() {
		m.steering.Apply(m.input)
		m.state.SetPaddleDirection(paddleDirection(m.steering.Step()))
		m.state.Tick(m.config.FrameMS)

		switch {
		case m.state.IsWon():
			m.finish(storage.OutcomeWon)
		case m.state.IsLost():
			m.finish(storage.OutcomeLost)
		}
	}

	m.input.Clear()
	return m, tickCmd(m.id, m.config.FPS)
}

// finish records the run once. Runs that never advanced are not recorded.
func (m *PlayModel) finish(outcome storage.Outcome) {
	if m.saved || m.state.Elapsed() == 0 {
		return
	}
	m.saved = true

	snap := m.state.Snapshot()
	run := storage.Run{
		LevelID:         m.opts.Level.ID,
		Player:          m.opts.Player,
		Difficulty:      string(m.opts.Difficulty),
		Outcome:         outcome,
		SimMS:           m.state.Elapsed(),
		BricksDestroyed: m.bricks - m.state.Grid().Len(),
		BricksRemaining: m.state.Grid().Len(),
		SnapshotHash:    snap.Hash(),
	}
	m.opts.Logger.Info("run finished",
		"level", run.LevelID,
		"player", run.Player,
		"outcome", run.Outcome,
		"elapsed", run.SimMS,
	)
	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save run", "level", run.LevelID, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *PlayModel) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arena", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.opts.Level.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// draw renders the arena into the screen buffer, leaving room for help.
func (m *PlayModel) draw() string {
	helpView := helpStyle.Render(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-lipgloss.Height(helpView))
	DrawPlay(m.screen, m.state.Frame(), HUD{
		Level:      m.opts.Level.Name,
		Difficulty: string(m.opts.Difficulty),
		Paused:     m.paused,
	})
	return helpView
}

// View renders the play view.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	helpView := m.draw()
	return RenderScreen(m.screen) + "\n" + helpView
}

// State exposes the running arena.
func (m PlayModel) State() *arena.State { return m.state }

// IsPaused reports whether the simulation is paused.
func (m PlayModel) IsPaused() bool { return m.paused }

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m PlayModel) BackToMenu() bool { return m.backToMenu }

// Saved reports whether the current run has been recorded.
func (m PlayModel) Saved() bool { return m.saved }
