package config

import "math"

// DifficultyManager scales enemy parameters by level number.
// Level 1 always uses the base values.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "level"
}

// Level returns the difficulty (0.0 to 1.0) for a 1-based level number.
func (d *DifficultyManager) Level(levelNum int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 1 {
		maxAt = 2 // Prevent division by zero
	}

	progress := float64(levelNum-1) / float64(maxAt-1)
	return clampF(progress, 0.0, 1.0)
}

// SpawnRate returns the enemy spawn rate for a level.
func (d *DifficultyManager) SpawnRate(base float64, levelNum int) float64 {
	return base * (1.0 + d.Level(levelNum)*d.cfg.Scaling.SpawnRateMultiplier)
}

// EnemySpeed returns the enemy speed for a level.
func (d *DifficultyManager) EnemySpeed(base float64, levelNum int) float64 {
	return base * (1.0 + d.Level(levelNum)*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
