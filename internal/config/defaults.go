package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/skyfire.yaml
var defaultSkyfireYAML []byte

// DefaultConfig returns the built-in Skyfire configuration.
// It mirrors defaults/skyfire.yaml and is the last fallback when the embedded
// YAML cannot be decoded.
func DefaultConfig() SkyfireConfig {
	return SkyfireConfig{
		Player: PlayerConfig{
			Width:        5,
			Height:       2,
			Speed:        0.7,
			BottomMargin: 1,
		},
		Bullet: BulletConfig{
			Width:  1,
			Height: 1,
			Speed:  0.5,
		},
		Enemy: EnemyConfig{
			Width:  3,
			Height: 1,
			Speed:  0.05,
		},
		Timing: TimingConfig{
			SpawnInterval: 2 * time.Second,
			FireCooldown:  300 * time.Millisecond,
			ClockInterval: time.Second,
		},
		Gameplay: GameplayConfig{
			Lives:    3,
			HitAward: 100,
		},
		Input: InputConfig{
			HoldTimeout: 300 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				EnemySpeedMultiplier:   1.0,
				SpawnIntervalReduction: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `config` dumps and docs.
func DefaultYAML() []byte {
	return defaultSkyfireYAML
}
