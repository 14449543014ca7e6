package config

import (
	"math"
	"time"
)

// minSpawnInterval keeps the spawner from degenerating into a flood.
const minSpawnInterval = 250 * time.Millisecond

// DifficultyManager calculates dynamic game parameters based on score/time.
// When progression is disabled every parameter is returned unchanged.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level (0.0 to 1.0) based on score or
// elapsed seconds.
func (d *DifficultyManager) Level(score, seconds int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(seconds) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed returns the per-frame enemy speed for the current level.
func (d *DifficultyManager) EnemySpeed(base float64, score, seconds int) float64 {
	if !d.IsEnabled() {
		return base
	}
	level := d.Level(score, seconds)
	return base * (1.0 + level*d.cfg.Scaling.EnemySpeedMultiplier)
}

// SpawnInterval returns the enemy spawn period for the current level.
func (d *DifficultyManager) SpawnInterval(base time.Duration, score, seconds int) time.Duration {
	if !d.IsEnabled() {
		return base
	}
	level := d.Level(score, seconds)
	scaled := time.Duration(float64(base) * (1.0 - level*d.cfg.Scaling.SpawnIntervalReduction))
	if scaled < minSpawnInterval {
		scaled = minSpawnInterval
	}
	return scaled
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
