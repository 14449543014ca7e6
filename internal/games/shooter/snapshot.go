package shooter

import "github.com/vovakirdan/skyfire/internal/core"

// Snapshot is a detached copy of everything a view or pilot reads.
type Snapshot struct {
	State   State
	Overlay Overlay
	FPS     float64
	Field   Field
	Player  core.Box
	Bullets []core.Box
	Enemies []core.Box

	PlayerSpeed float64
	EnemySpeed  float64
}

// Snapshot copies the current game state. The result stays valid after
// further frames.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:       g.state,
		Overlay:     g.Overlay(),
		FPS:         g.fps.FPS(),
		Field:       g.field,
		Player:      box(g.player.Position, g.playerSize()),
		Bullets:     make([]core.Box, len(g.bullets)),
		Enemies:     make([]core.Box, len(g.enemies)),
		PlayerSpeed: g.cfg.Player.Speed,
		EnemySpeed:  g.EnemySpeed(),
	}
	bs, es := g.bulletSize(), g.enemySize()
	for i, b := range g.bullets {
		s.Bullets[i] = box(b.Position, bs)
	}
	for i, e := range g.enemies {
		s.Enemies[i] = box(e.Position, es)
	}
	return s
}
