package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfire/internal/config"
	"github.com/vovakirdan/skyfire/internal/core"
	"github.com/vovakirdan/skyfire/internal/games/shooter"
	"github.com/vovakirdan/skyfire/internal/storage"
)

// footerRows is the help line below the game screen.
const footerRows = 1

var (
	footerHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footerStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	footerErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// GameOptions configures a game model.
type GameOptions struct {
	Store  *storage.Store // Optional score storage
	Mode   string         // Difficulty preset; scores are ranked per mode
	Player string         // Recorded with saved scores

	// Logger receives run summaries. It must not write to the terminal the
	// game is drawn on; leave nil for local play.
	Logger *log.Logger

	// ScreenshotDir defaults to ~/.skyfire/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one Skyfire game. Its Update is the
// only place the game is mutated: frame, spawn and clock ticks each re-arm
// themselves, and keys only write the latch or trigger phase changes.
type Model struct {
	game    *shooter.Game
	screen  *core.Screen
	runtime core.RuntimeConfig
	opts    GameOptions
	keys    KeyMap
	help    help.Model
	hold    *HoldTracker
	gen     int64

	state      shooter.State
	best       int
	saveErr    error
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a model for a fresh game.
func NewModel(cfg config.SkyfireConfig, runtime core.RuntimeConfig, opts GameOptions) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}

	gameRuntime := runtime
	gameRuntime.ScreenH = fieldRows(runtime.ScreenH)
	game := shooter.New(cfg, gameRuntime)

	m := Model{
		game:    game,
		screen:  core.NewScreen(runtime.ScreenW, gameRuntime.ScreenH),
		runtime: runtime,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    NewHoldTracker(cfg.Input.HoldTimeout),
		gen:     nextGeneration(),
		state:   game.State(),
	}
	m.help.Width = runtime.ScreenW

	if opts.Store != nil {
		if best, err := opts.Store.HighScore(opts.Mode); err == nil {
			m.best = best
		}
	}
	return m
}

func fieldRows(height int) int {
	return core.Max(0, height-footerRows)
}

// Init starts the three periodic callbacks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.gen, m.runtime.TickRate),
		spawnCmd(m.gen, m.game.SpawnInterval()),
		clockCmd(m.gen, m.game.ClockInterval()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.handleFrame(msg.At)

	case SpawnMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.game.SpawnTick()
		return m, spawnCmd(m.gen, m.game.SpawnInterval())

	case ClockMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.game.ClockTick()
		m.state = m.game.State()
		return m, clockCmd(m.gen, m.game.ClockInterval())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	latch := m.game.Latch()
	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight, core.ActionFire:
		m.hold.Press(latch, a, time.Now())

	case core.ActionPause:
		m.game.TogglePause()

	case core.ActionStart:
		m.game.Start()

	case core.ActionRestart:
		// Only offered on the pause and game-over overlays
		if m.game.Phase() != shooter.PhaseRunning {
			m.hold.Reset(latch)
			m.game.Restart()
			m.scoreSaved = false
			m.saveErr = nil
		}

	case core.ActionBack:
		if m.game.Phase() != shooter.PhaseRunning {
			m.hold.Reset(latch)
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	m.state = m.game.State()
	return m, nil
}

// handleResize follows terminal resizes without resetting the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	rows := fieldRows(msg.Height)
	m.screen.Resize(msg.Width, rows)
	m.game.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame runs one simulation frame and re-arms the frame tick, whatever
// the phase.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Expire(m.game.Latch(), now)
	res := m.game.Frame(now)
	m.state = res.State

	if m.state.Phase == shooter.PhaseGameOver && !m.scoreSaved {
		m.recordGameOver()
	}

	return m, frameCmd(m.gen, m.runtime.TickRate)
}

// recordGameOver saves a positive score once per run.
func (m *Model) recordGameOver() {
	m.scoreSaved = true

	if m.opts.Logger != nil {
		m.opts.Logger.Info("run finished",
			"player", m.opts.Player,
			"mode", m.opts.Mode,
			"score", m.state.Score,
			"seconds", m.state.ElapsedSeconds,
		)
	}

	if m.state.Score <= 0 || m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		Mode:        m.opts.Mode,
		Score:       m.state.Score,
		ElapsedSecs: m.state.ElapsedSeconds,
		Player:      m.opts.Player,
	})
	if err != nil {
		m.saveErr = err
		if m.opts.Logger != nil {
			m.opts.Logger.Warn("could not save score", "error", err)
		}
		return
	}
	m.best = core.Max(m.best, m.state.Score)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".skyfire", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game screen and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	status := fmt.Sprintf("%s · best %d", m.opts.Mode, core.Max(m.best, m.state.Score))
	style := footerStatusStyle
	if m.saveErr != nil {
		status = "score not saved"
		style = footerErrorStyle
	}

	h := m.help
	h.Width = core.Max(0, m.runtime.ScreenW-lipgloss.Width(status)-2)
	return footerHelpStyle.Render(h.View(m.keys)) + "  " + style.Render(status)
}

// State returns the last observed game state.
func (m Model) State() shooter.State {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameResult is returned by Run.
type GameResult struct {
	State      shooter.State
	BackToMenu bool
}

// Run starts a standalone Bubble Tea program for one game.
func Run(cfg config.SkyfireConfig, runtime core.RuntimeConfig, opts GameOptions) (GameResult, error) {
	model := NewModel(cfg, runtime, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return GameResult{}, nil
	}
	return GameResult{State: m.State(), BackToMenu: m.BackToMenu()}, nil
}
