package shooter

// resolveCollisions pairs bullets with enemies. Bullets are visited in order
// and each tests enemies in stored order; the first overlap destroys both.
// Destroyed enemies are skipped for later bullets, and removal happens after
// the pass so no entity is skipped or visited twice.
func (g *Game) resolveCollisions() {
	if len(g.bullets) == 0 || len(g.enemies) == 0 {
		return
	}

	bulletSize, enemySize := g.bulletSize(), g.enemySize()
	destroyed := make([]bool, len(g.enemies))

	g.bullets = retain(g.bullets, func(_ int, b Bullet) bool {
		bb := box(b.Position, bulletSize)
		for j, e := range g.enemies {
			if destroyed[j] || !bb.Overlaps(box(e.Position, enemySize)) {
				continue
			}
			destroyed[j] = true
			g.state.Score += g.cfg.Gameplay.HitAward
			g.emit(EventHit, e.Position)
			return false
		}
		return true
	})

	g.enemies = retain(g.enemies, func(i int, _ Enemy) bool {
		return !destroyed[i]
	})
}
