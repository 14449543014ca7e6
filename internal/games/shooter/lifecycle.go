package shooter

import "time"

// loseLives takes one life per escaped enemy. Lives never drop below zero and
// the game ends in the same tick they reach it.
func (g *Game) loseLives(escaped int) {
	for i := 0; i < escaped && g.state.Phase == PhaseRunning; i++ {
		if g.state.Lives > 0 {
			g.state.Lives--
			g.emit(EventLifeLost, g.player.Position)
		}
		if g.state.Lives == 0 {
			g.state.Phase = PhaseGameOver
			g.emit(EventGameOver, g.player.Position)
		}
	}
}

// SpawnTick is the spawner callback. While Running it appends one enemy at a
// random x along the top edge and reports true. In any other phase the tick
// is ignored; the caller keeps its schedule.
func (g *Game) SpawnTick() bool {
	if g.state.Phase != PhaseRunning {
		return false
	}

	span := g.field.Width - g.cfg.Enemy.Width
	x := 0.0
	if span > 0 {
		x = g.rng.Float64() * span
	}
	g.enemies = append(g.enemies, Enemy{Position{X: x, Y: 0}})
	return true
}

// ClockTick is the elapsed-time callback, counting seconds while Running.
func (g *Game) ClockTick() {
	if g.state.Phase == PhaseRunning {
		g.state.ElapsedSeconds++
	}
}

// SpawnInterval returns the current spawner period. It shortens as the run
// progresses when difficulty progression is enabled.
func (g *Game) SpawnInterval() time.Duration {
	return g.difficulty.SpawnInterval(g.cfg.Timing.SpawnInterval, g.state.Score, g.state.ElapsedSeconds)
}
