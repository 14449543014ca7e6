package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyfire/internal/config"
	"github.com/vovakirdan/skyfire/internal/core"
	"github.com/vovakirdan/skyfire/internal/storage"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

var menuItems = []struct {
	title  string
	choice MenuChoice
}{
	{"Play", MenuChoicePlay},
	{"High Scores", MenuChoiceScores},
	{"Quit", MenuChoiceQuit},
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor   int
	preset   int // Index into config.Presets
	width    int
	height   int
	store    *storage.Store
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	best     map[config.DifficultyPreset]int
	choice   MenuChoice
	quitting bool
}

// NewMenuModel creates a new menu model with preset selected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		best:   make(map[config.DifficultyPreset]int),
	}
	for i, p := range config.Presets {
		if p == preset {
			m.preset = i
		}
	}

	if store != nil {
		for _, p := range config.Presets {
			if high, err := store.HighScore(string(p)); err == nil {
				m.best[p] = high
			}
		}
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		m.preset = (m.preset + len(config.Presets) - 1) % len(config.Presets)

	case key.Matches(msg, m.keys.Right):
		m.preset = (m.preset + 1) % len(config.Presets)

	case key.Matches(msg, m.keys.Select):
		m.choice = menuItems[m.cursor].choice
		if m.choice == MenuChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S K Y F I R E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("hold the line"), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	preset := m.Preset()
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", preset), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("best %d", m.best[preset])), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(menuDimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected entry, MenuChoiceNone while still open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the difficulty currently shown.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.preset]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring styled text by its
// visible cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
