package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arena/internal/config"
	"github.com/vovakirdan/brick-arena/internal/level"
	"github.com/vovakirdan/brick-arena/internal/storage"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	levels     []level.Level
	stats      map[string]*storage.LevelStats
	cursor     int
	difficulty config.DifficultyPreset
	width      int
	height     int
	keys       MenuKeyMap
	help       help.Model

	quitting bool
	selected *level.Level // Set when user selects a level
	wantRuns bool         // True if user pressed Tab for the runs board
}

// NewMenuModel creates a new menu model. Stats are read from store when it
// is not nil. A failed read is logged and the menu shows no stats.
func NewMenuModel(levels []level.Level, store *storage.Store, logger *log.Logger, difficulty config.DifficultyPreset, width, height int) MenuModel {
	m := MenuModel{
		levels:     levels,
		difficulty: difficulty,
		width:      width,
		height:     height,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
	if m.difficulty == "" {
		m.difficulty = config.DifficultyNormal
	}
	m.keys.Back.SetEnabled(false)
	m.help.Width = width
	if store != nil {
		stats, err := store.GetAllLevelStats()
		if err != nil && logger != nil {
			logger.Warn("could not read level stats", "error", err)
		}
		m.stats = stats
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			selected := m.levels[m.cursor]
			m.selected = &selected
		}
	case MenuActionDifficulty:
		m.difficulty = nextPreset(m.difficulty)
	case MenuActionRuns:
		m.wantRuns = true
	}
	return m, nil
}

func nextPreset(p config.DifficultyPreset) config.DifficultyPreset {
	presets := config.Presets()
	for i, q := range presets {
		if q == p {
			return presets[(i+1)%len(presets)]
		}
	}
	return config.DifficultyNormal
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R I C K   A R E N A"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Select a level   difficulty: %s", m.difficulty), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(dimStyle.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	for i, l := range m.levels {
		cursor := "  "
		line := l.Name
		if i == m.cursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		cols, rows := l.Size()
		info := fmt.Sprintf("%dx%d", cols, rows)
		if st, ok := m.stats[l.ID]; ok && st.Runs > 0 {
			info += fmt.Sprintf("  won %d/%d", st.Wins, st.Runs)
			if st.BestWinMS > 0 {
				info += "  best " + formatElapsed(st.BestWinMS)
			}
		}
		b.WriteString(centerText(cursor+line+"  "+dimStyle.Render(info), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected level, or nil if none selected.
func (m MenuModel) Selected() *level.Level {
	return m.selected
}

// Difficulty returns the currently chosen preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRuns returns true if user requested the runs board.
func (m MenuModel) WantsRuns() bool {
	return m.wantRuns
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
