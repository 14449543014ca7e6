// Package shooter implements Skyfire, a vertical arcade shooter.
// The ship slides along the bottom of the field and fires upward while
// enemies descend from the top. The simulation is pure: wall-clock time is
// passed in by the caller and nothing here blocks.
package shooter

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/skyfire/internal/config"
	"github.com/vovakirdan/skyfire/internal/core"
)

// HUDRows is the number of screen rows above the field.
const HUDRows = 1

// Game owns the whole simulation state. All methods must be called from a
// single goroutine; the drivers in this package and in the TUI serialise
// frame, spawn and clock callbacks.
type Game struct {
	cfg        config.SkyfireConfig
	runtime    core.RuntimeConfig
	field      Field
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	latch      *core.Latch

	player  Player
	bullets []Bullet
	enemies []Enemy
	state   State

	started     bool      // Whether the first start has happened
	fireReadyAt time.Time // Zero means firing is armed
	fps         FPSMeter
	frames      int // Running frames since the last restart
	events      []Event
}

// New creates a game in the Paused phase, waiting for Start.
func New(cfg config.SkyfireConfig, runtime core.RuntimeConfig) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		latch:      core.NewLatch(),
	}
	g.Reset(runtime)
	return g
}

// ID returns the identifier used for score storage and logging.
func (g *Game) ID() string {
	return "skyfire"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Skyfire"
}

// Reset discards everything and returns to the initial Paused phase, as if
// the game had just been created.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.field = fieldFor(g.cfg, runtime)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.latch.ReleaseAll()
	g.started = false
	g.resetRun()
	g.state.Phase = PhasePaused
}

// resetRun clears every per-run value in one step.
func (g *Game) resetRun() {
	g.state = State{Lives: g.cfg.Gameplay.Lives}
	g.bullets = nil
	g.enemies = nil
	g.fireReadyAt = time.Time{}
	g.frames = 0
	g.player = Player{Position{
		X: (g.field.Width - g.cfg.Player.Width) / 2,
		Y: g.playerY(),
	}}
}

// Start begins or resumes play. It does nothing after game over.
func (g *Game) Start() {
	if g.state.Phase == PhaseGameOver {
		return
	}
	g.state.Phase = PhaseRunning
	g.started = true
}

// TogglePause switches between Running and Paused. GameOver only exits via
// Restart.
func (g *Game) TogglePause() {
	switch g.state.Phase {
	case PhaseRunning:
		g.state.Phase = PhasePaused
	case PhasePaused:
		g.state.Phase = PhaseRunning
		g.started = true
	}
}

// Restart resets score, lives, clock, entities and cooldown, then runs.
// It is accepted in every phase.
func (g *Game) Restart() {
	g.resetRun()
	g.state.Phase = PhaseRunning
	g.started = true
}

// Latch returns the held-key latch read by every frame.
func (g *Game) Latch() *core.Latch {
	return g.latch
}

// Frame advances the simulation by one display refresh.
// Movement, collision and lifecycle run as one step, and only while Running.
func (g *Game) Frame(now time.Time) FrameResult {
	fps := g.fps.Sample(now)
	g.events = nil

	if g.state.Phase == PhaseRunning {
		g.frames++
		escaped := g.move(now)
		g.resolveCollisions()
		g.loseLives(escaped)
	}

	return FrameResult{State: g.state, Events: g.events, FPS: fps}
}

// State returns the current counters and phase.
func (g *Game) State() State {
	return g.state
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Overlay returns the message box that should cover the field.
func (g *Game) Overlay() Overlay {
	switch {
	case g.state.Phase == PhaseGameOver:
		return OverlayGameOver
	case g.state.Phase == PhasePaused && !g.started:
		return OverlayStart
	case g.state.Phase == PhasePaused:
		return OverlayPause
	default:
		return OverlayNone
	}
}

// Field returns the play-field size in world units.
func (g *Game) Field() Field {
	return g.field
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.SkyfireConfig {
	return g.cfg
}

// ClockInterval returns the period of the elapsed-time clock.
func (g *Game) ClockInterval() time.Duration {
	return g.cfg.Timing.ClockInterval
}

// Resize follows a terminal resize. Only axes that fit the terminal change.
// The player is re-anchored and clamped; entities left outside the new field
// are dropped without costing a life.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	next := fieldFor(g.cfg, g.runtime)
	if next == g.field {
		return
	}
	g.field = next

	g.player.Y = g.playerY()
	g.clampPlayer()

	bullet, enemy := g.bulletSize(), g.enemySize()
	g.bullets = retain(g.bullets, func(_ int, b Bullet) bool {
		return b.X <= g.field.Width-bullet.W && b.Y <= g.field.Height-bullet.H
	})
	g.enemies = retain(g.enemies, func(_ int, e Enemy) bool {
		return e.X <= g.field.Width-enemy.W && e.Y <= g.field.Height-enemy.H
	})
}

func (g *Game) emit(kind EventKind, at Position) {
	g.events = append(g.events, Event{Kind: kind, At: at})
}

func (g *Game) playerY() float64 {
	return math.Max(0, g.field.Height-g.cfg.Player.Height-g.cfg.Player.BottomMargin)
}

func (g *Game) playerSize() Size {
	return Size{W: g.cfg.Player.Width, H: g.cfg.Player.Height}
}

func (g *Game) bulletSize() Size {
	return Size{W: g.cfg.Bullet.Width, H: g.cfg.Bullet.Height}
}

func (g *Game) enemySize() Size {
	return Size{W: g.cfg.Enemy.Width, H: g.cfg.Enemy.Height}
}

// fieldFor resolves configured field dimensions, filling zero axes from the
// terminal. The field is never narrower than the ship.
func fieldFor(cfg config.SkyfireConfig, runtime core.RuntimeConfig) Field {
	f := Field{Width: cfg.Field.Width, Height: cfg.Field.Height}
	if f.Width == 0 {
		f.Width = float64(runtime.ScreenW)
	}
	if f.Height == 0 {
		f.Height = float64(runtime.ScreenH - HUDRows)
	}
	f.Width = math.Max(f.Width, cfg.Player.Width)
	f.Height = math.Max(f.Height, cfg.Player.Height+cfg.Player.BottomMargin)
	return f
}
