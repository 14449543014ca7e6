// Package config provides YAML-based game configuration loading and
// difficulty management for Skyfire.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SkyfireConfig contains all tunable parameters of the shooter.
// Sizes and speeds are in world units; speeds are per frame.
type SkyfireConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Timing     TimingConfig     `yaml:"timing"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig fixes the play-field size. Zero values fit the terminal.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between ship and field bottom
}

// BulletConfig defines projectiles fired by the ship.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// EnemyConfig defines descending enemies.
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// TimingConfig holds the wall-clock intervals.
type TimingConfig struct {
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	FireCooldown  time.Duration `yaml:"fire_cooldown"`
	ClockInterval time.Duration `yaml:"clock_interval"`
}

// GameplayConfig holds scoring rules.
type GameplayConfig struct {
	Lives    int `yaml:"lives"`
	HitAward int `yaml:"hit_award"`
}

// InputConfig tunes terminal input handling.
type InputConfig struct {
	// HoldTimeout is how long a key counts as held after its last repeat.
	// Terminals do not report key releases.
	HoldTimeout time.Duration `yaml:"hold_timeout"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or elapsed seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	EnemySpeedMultiplier   float64 `yaml:"enemy_speed_multiplier"`   // Added to enemy speed factor
	SpawnIntervalReduction float64 `yaml:"spawn_interval_reduction"` // Fraction of the interval removed
}

// Validate checks that every size, speed and interval is usable.
// All problems are reported together.
func (c SkyfireConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("bullet.width", c.Bullet.Width)
	positive("bullet.height", c.Bullet.Height)
	positive("bullet.speed", c.Bullet.Speed)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("enemy.speed", c.Enemy.Speed)

	if c.Field.Width < 0 || c.Field.Height < 0 {
		errs = append(errs, fmt.Errorf("field size must not be negative, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Player.BottomMargin < 0 {
		errs = append(errs, fmt.Errorf("player.bottom_margin must not be negative, got %v", c.Player.BottomMargin))
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"timing.spawn_interval", c.Timing.SpawnInterval},
		{"timing.fire_cooldown", c.Timing.FireCooldown},
		{"timing.clock_interval", c.Timing.ClockInterval},
		{"input.hold_timeout", c.Input.HoldTimeout},
	}
	for _, d := range durations {
		if d.d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", d.name, d.d))
		}
	}

	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.HitAward < 0 {
		errs = append(errs, fmt.Errorf("gameplay.hit_award must not be negative, got %d", c.Gameplay.HitAward))
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of none, score, time", c.Difficulty.Progression.Type))
	}
	if r := c.Difficulty.Scaling.SpawnIntervalReduction; r < 0 || r >= 1 {
		errs = append(errs, fmt.Errorf("difficulty.scaling.spawn_interval_reduction must be in [0, 1), got %v", r))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset.
// An empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
