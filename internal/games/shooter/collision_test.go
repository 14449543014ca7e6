package shooter

import (
	"testing"
)

func TestCollisions(t *testing.T) {
	// Bullets move up 8 and enemies down 2 before the collision pass.
	tests := []struct {
		name        string
		bullets     []Bullet
		enemies     []Enemy
		wantScore   int
		wantBullets int
		wantEnemies []Enemy // After movement
	}{
		{
			name:        "overlap removes both",
			bullets:     []Bullet{{Position{100, 100}}},
			enemies:     []Enemy{{Position{90, 70}}},
			wantScore:   100,
			wantBullets: 0,
			wantEnemies: nil,
		},
		{
			name:        "bullet kills at most one enemy",
			bullets:     []Bullet{{Position{100, 100}}},
			enemies:     []Enemy{{Position{90, 70}}, {Position{95, 70}}},
			wantScore:   100,
			wantBullets: 0,
			wantEnemies: []Enemy{{Position{95, 72}}},
		},
		{
			name:        "destroyed enemy is not matched again",
			bullets:     []Bullet{{Position{100, 100}}, {Position{102, 100}}},
			enemies:     []Enemy{{Position{90, 70}}},
			wantScore:   100,
			wantBullets: 1,
			wantEnemies: nil,
		},
		{
			name:        "two pairs score twice",
			bullets:     []Bullet{{Position{100, 100}}, {Position{300, 100}}},
			enemies:     []Enemy{{Position{290, 70}}, {Position{90, 70}}},
			wantScore:   200,
			wantBullets: 0,
			wantEnemies: nil,
		},
		{
			name:        "touching edges do not collide",
			bullets:     []Bullet{{Position{130, 100}}}, // left edge meets enemy right edge
			enemies:     []Enemy{{Position{90, 70}}},
			wantScore:   0,
			wantBullets: 1,
			wantEnemies: []Enemy{{Position{90, 72}}},
		},
		{
			name:        "miss leaves everything",
			bullets:     []Bullet{{Position{500, 300}}},
			enemies:     []Enemy{{Position{90, 70}}},
			wantScore:   0,
			wantBullets: 1,
			wantEnemies: []Enemy{{Position{90, 72}}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newRunning(t)
			g.bullets = tc.bullets
			g.enemies = tc.enemies

			res := g.Frame(t0)

			if res.State.Score != tc.wantScore {
				t.Errorf("score = %d, expected %d", res.State.Score, tc.wantScore)
			}
			if got := res.Count(EventHit); got != tc.wantScore/100 {
				t.Errorf("hit events = %d, expected %d", got, tc.wantScore/100)
			}
			if len(g.bullets) != tc.wantBullets {
				t.Errorf("bullets left = %d, expected %d", len(g.bullets), tc.wantBullets)
			}
			if len(g.enemies) != len(tc.wantEnemies) {
				t.Fatalf("enemies = %v, expected %v", g.enemies, tc.wantEnemies)
			}
			for i := range g.enemies {
				if g.enemies[i] != tc.wantEnemies[i] {
					t.Errorf("enemy %d = %v, expected %v", i, g.enemies[i], tc.wantEnemies[i])
				}
			}
		})
	}
}

func TestCollisionDeterministicOrder(t *testing.T) {
	// Same layout twice must destroy the same enemy.
	run := func() []Enemy {
		g := newRunning(t)
		g.bullets = []Bullet{{Position{100, 100}}}
		g.enemies = []Enemy{{Position{95, 70}}, {Position{90, 70}}, {Position{85, 70}}}
		g.Frame(t0)
		return append([]Enemy(nil), g.enemies...)
	}

	first, second := run(), run()
	if len(first) != 2 || first[0].X != 90 || first[1].X != 85 {
		t.Fatalf("expected the first stored enemy to be destroyed, left %v", first)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("run differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
}
