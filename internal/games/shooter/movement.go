package shooter

import (
	"time"

	"github.com/vovakirdan/skyfire/internal/core"
)

// move runs the movement step and returns how many enemies escaped past the
// bottom edge. Escaped enemies are already removed.
func (g *Game) move(now time.Time) int {
	g.movePlayer()
	g.moveBullets()
	escaped := g.moveEnemies()
	g.tryFire(now)
	return escaped
}

// movePlayer applies left then right, so holding both nets to zero, then clamps.
func (g *Game) movePlayer() {
	speed := g.cfg.Player.Speed
	if g.latch.IsHeld(core.ActionLeft) {
		g.player.X -= speed
	}
	if g.latch.IsHeld(core.ActionRight) {
		g.player.X += speed
	}
	g.clampPlayer()
}

func (g *Game) clampPlayer() {
	g.player.X = core.ClampF(g.player.X, 0, g.field.Width-g.cfg.Player.Width)
}

func (g *Game) moveBullets() {
	speed := g.cfg.Bullet.Speed
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y -= speed
		if b.Y >= 0 {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

func (g *Game) moveEnemies() int {
	speed := g.EnemySpeed()
	floor := g.field.Height - g.cfg.Enemy.Height
	escaped := 0
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		e.Y += speed
		if e.Y > floor {
			escaped++
			g.emit(EventEnemyEscaped, e.Position)
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept
	return escaped
}

// tryFire spawns one bullet when fire is held and the cooldown has expired.
// The cooldown is measured in wall time so the fire rate does not depend on
// the frame rate.
func (g *Game) tryFire(now time.Time) {
	if !g.latch.IsHeld(core.ActionFire) {
		return
	}
	if !g.fireReadyAt.IsZero() && now.Before(g.fireReadyAt) {
		return
	}

	b := Bullet{Position{
		X: g.player.X + (g.cfg.Player.Width-g.cfg.Bullet.Width)/2,
		Y: g.player.Y - g.cfg.Bullet.Height,
	}}
	g.bullets = append(g.bullets, b)
	g.fireReadyAt = now.Add(g.cfg.Timing.FireCooldown)
	g.emit(EventShot, b.Position)
}

// EnemySpeed returns the current per-frame enemy speed.
func (g *Game) EnemySpeed() float64 {
	return g.difficulty.EnemySpeed(g.cfg.Enemy.Speed, g.state.Score, g.state.ElapsedSeconds)
}
