package shooter

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/skyfire/internal/config"
	"github.com/vovakirdan/skyfire/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// testConfig uses a fixed 800x600 field with pixel-like sizes.
func testConfig() config.SkyfireConfig {
	cfg := config.DefaultConfig()
	cfg.Field = config.FieldConfig{Width: 800, Height: 600}
	cfg.Player = config.PlayerConfig{Width: 50, Height: 20, Speed: 7, BottomMargin: 10}
	cfg.Bullet = config.BulletConfig{Width: 4, Height: 10, Speed: 8}
	cfg.Enemy = config.EnemyConfig{Width: 40, Height: 30, Speed: 2}
	return cfg
}

func newRunning(t *testing.T) *Game {
	t.Helper()
	g := New(testConfig(), core.DefaultConfig())
	g.Start()
	if g.Phase() != PhaseRunning {
		t.Fatalf("Phase after Start = %s, expected running", g.Phase())
	}
	return g
}

// frameAt returns the time of frame i at roughly 60 FPS.
func frameAt(i int) time.Time {
	return t0.Add(time.Duration(i) * 16 * time.Millisecond)
}

func TestNewGameStartsPaused(t *testing.T) {
	g := New(testConfig(), core.DefaultConfig())

	if g.Phase() != PhasePaused {
		t.Errorf("Phase = %s, expected paused", g.Phase())
	}
	if g.Overlay() != OverlayStart {
		t.Errorf("Overlay = %d, expected start overlay", g.Overlay())
	}
	st := g.State()
	if st.Score != 0 || st.Lives != 3 || st.ElapsedSeconds != 0 {
		t.Errorf("State = %+v, expected score 0, lives 3, time 0", st)
	}
	if g.player.X != 375 || g.player.Y != 570 {
		t.Errorf("player at (%v, %v), expected (375, 570)", g.player.X, g.player.Y)
	}
}

func TestFramesOutsideRunningChangeNothing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
	}{
		{"paused", func(g *Game) { g.TogglePause() }},
		{"game over", func(g *Game) {
			g.state.Lives = 0
			g.state.Phase = PhaseGameOver
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newRunning(t)
			g.bullets = []Bullet{{Position{100, 300}}}
			g.enemies = []Enemy{{Position{200, 100}}, {Position{300, 569}}}
			g.state.Score = 400
			tc.setup(g)

			g.latch.Press(core.ActionLeft)
			g.latch.Press(core.ActionFire)

			before := g.Snapshot()
			for i := 0; i < 30; i++ {
				res := g.Frame(frameAt(i))
				if len(res.Events) != 0 {
					t.Fatalf("frame %d produced events %v", i, res.Events)
				}
			}
			after := g.Snapshot()
			after.FPS = before.FPS

			if !reflect.DeepEqual(before, after) {
				t.Errorf("state changed while not running:\nbefore %+v\nafter  %+v", before, after)
			}
		})
	}
}

func TestHoldLeftTenFrames(t *testing.T) {
	g := newRunning(t)
	g.player.X = 400
	g.latch.Press(core.ActionLeft)

	for i := 0; i < 10; i++ {
		g.Frame(frameAt(i))
	}

	if g.player.X != 330 {
		t.Errorf("player x = %v, expected 330", g.player.X)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	combos := []struct {
		name        string
		left, right bool
	}{
		{"none", false, false},
		{"left", true, false},
		{"right", false, true},
		{"both", true, true},
	}

	for _, start := range []float64{0, 3, 375, 747, 750} {
		for _, c := range combos {
			g := newRunning(t)
			g.player.X = start
			if c.left {
				g.latch.Press(core.ActionLeft)
			}
			if c.right {
				g.latch.Press(core.ActionRight)
			}

			for i := 0; i < 150; i++ {
				g.Frame(frameAt(i))
				if g.player.X < 0 || g.player.X > 750 {
					t.Fatalf("%s from %v: x = %v out of [0, 750] at frame %d", c.name, start, g.player.X, i)
				}
			}
		}
	}
}

func TestHoldingBothDirectionsCancels(t *testing.T) {
	g := newRunning(t)
	g.player.X = 200
	g.latch.Press(core.ActionLeft)
	g.latch.Press(core.ActionRight)

	for i := 0; i < 5; i++ {
		g.Frame(frameAt(i))
	}
	if g.player.X != 200 {
		t.Errorf("player x = %v, expected 200", g.player.X)
	}
}

func TestLatchPersistsAcrossFrames(t *testing.T) {
	g := newRunning(t)
	g.player.X = 100
	g.latch.Press(core.ActionRight)

	g.Frame(frameAt(0))
	g.Frame(frameAt(1))
	g.latch.Release(core.ActionRight)
	g.Frame(frameAt(2))

	if g.player.X != 114 {
		t.Errorf("player x = %v, expected 114", g.player.X)
	}
}

func TestBulletsLeaveTopEdge(t *testing.T) {
	g := newRunning(t)
	g.bullets = []Bullet{{Position{10, 7}}, {Position{20, 8}}, {Position{30, 100}}}

	g.Frame(frameAt(0))

	want := []Bullet{{Position{20, 0}}, {Position{30, 92}}}
	if !reflect.DeepEqual(g.bullets, want) {
		t.Errorf("bullets = %v, expected %v", g.bullets, want)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	g := newRunning(t)
	g.latch.Press(core.ActionFire)
	g.Frame(t0)
	g.state.Score = 1200
	g.state.ElapsedSeconds = 42
	g.enemies = []Enemy{{Position{10, 569}}}
	g.state.Lives = 1
	g.Frame(t0.Add(10 * time.Millisecond))

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase = %s, expected game over", g.Phase())
	}

	g.Restart()

	st := g.State()
	if st != (State{Score: 0, Lives: 3, ElapsedSeconds: 0, Phase: PhaseRunning}) {
		t.Errorf("State after restart = %+v", st)
	}
	if len(g.bullets) != 0 || len(g.enemies) != 0 {
		t.Errorf("entities survived restart: %d bullets, %d enemies", len(g.bullets), len(g.enemies))
	}
	if g.player.X != 375 {
		t.Errorf("player x = %v, expected re-centred 375", g.player.X)
	}
	if g.Overlay() != OverlayNone {
		t.Errorf("Overlay = %d, expected none", g.Overlay())
	}

	// The cooldown is re-armed: firing works at once.
	res := g.Frame(t0.Add(20 * time.Millisecond))
	if res.Count(EventShot) != 1 {
		t.Errorf("expected a shot right after restart, got events %v", res.Events)
	}
}

func TestRestartFromPause(t *testing.T) {
	g := newRunning(t)
	g.state.Score = 300
	g.TogglePause()

	g.Restart()

	if g.Phase() != PhaseRunning || g.State().Score != 0 {
		t.Errorf("State after restart from pause = %+v", g.State())
	}
}

func TestPhaseTransitions(t *testing.T) {
	g := New(testConfig(), core.DefaultConfig())

	g.TogglePause()
	if g.Phase() != PhaseRunning {
		t.Errorf("toggle from initial pause: %s, expected running", g.Phase())
	}
	g.TogglePause()
	if g.Phase() != PhasePaused || g.Overlay() != OverlayPause {
		t.Errorf("toggle while running: %s overlay %d, expected paused with pause overlay", g.Phase(), g.Overlay())
	}
	g.Start()
	if g.Phase() != PhaseRunning {
		t.Errorf("Start while paused: %s, expected running", g.Phase())
	}

	g.state.Lives = 0
	g.state.Phase = PhaseGameOver

	g.TogglePause()
	if g.Phase() != PhaseGameOver {
		t.Errorf("toggle during game over changed phase to %s", g.Phase())
	}
	g.Start()
	if g.Phase() != PhaseGameOver {
		t.Errorf("Start during game over changed phase to %s", g.Phase())
	}
}

func TestResetReturnsToStartOverlay(t *testing.T) {
	g := newRunning(t)
	g.latch.Press(core.ActionFire)
	g.state.Score = 500

	g.Reset(core.DefaultConfig())

	if g.Overlay() != OverlayStart || g.State().Score != 0 {
		t.Errorf("after Reset: overlay %d state %+v", g.Overlay(), g.State())
	}
	if g.latch.IsHeld(core.ActionFire) {
		t.Error("Reset should release held keys")
	}
}

func TestFieldFitsTerminal(t *testing.T) {
	g := New(config.DefaultConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if f := g.Field(); f.Width != 80 || f.Height != 23 {
		t.Errorf("Field = %+v, expected 80x23", f)
	}
	// 23 - 2 (ship) - 1 (margin)
	if g.player.Y != 20 {
		t.Errorf("player y = %v, expected 20", g.player.Y)
	}
}

func TestResize(t *testing.T) {
	g := New(config.DefaultConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.Start()
	g.player.X = 70
	g.enemies = []Enemy{{Position{10, 5}}, {Position{60, 5}}, {Position{10, 15}}}
	g.bullets = []Bullet{{Position{10, 5}}, {Position{70, 5}}}

	g.Resize(40, 12)

	if f := g.Field(); f.Width != 40 || f.Height != 11 {
		t.Fatalf("Field = %+v, expected 40x11", f)
	}
	if g.player.X != 35 || g.player.Y != 8 {
		t.Errorf("player at (%v, %v), expected (35, 8)", g.player.X, g.player.Y)
	}
	if len(g.enemies) != 1 || g.enemies[0].X != 10 || g.enemies[0].Y != 5 {
		t.Errorf("enemies = %v, expected only the one inside", g.enemies)
	}
	if len(g.bullets) != 1 {
		t.Errorf("bullets = %v, expected only the one inside", g.bullets)
	}
	if g.State().Lives != 3 {
		t.Errorf("dropping enemies on resize cost lives: %d", g.State().Lives)
	}
}

func TestResizeKeepsFixedField(t *testing.T) {
	g := newRunning(t)
	g.Resize(40, 12)

	if f := g.Field(); f.Width != 800 || f.Height != 600 {
		t.Errorf("fixed field changed to %+v", f)
	}
}
