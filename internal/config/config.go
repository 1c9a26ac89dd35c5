// Package config provides YAML-based configuration loading and difficulty
// management for the crossing game.
package config

import "fmt"

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Level      LevelConfig      `yaml:"level"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Gems       GemConfig        `yaml:"gems"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LevelConfig defines the grid size in tiles and the tile size in pixels.
type LevelConfig struct {
	WidthTiles  int     `yaml:"width_tiles"`
	HeightTiles int     `yaml:"height_tiles"`
	TileWidth   float64 `yaml:"tile_width"`
	TileHeight  float64 `yaml:"tile_height"`
}

// PlayerConfig defines where the player starts each level.
type PlayerConfig struct {
	StartRow int `yaml:"start_row"`
	StartCol int `yaml:"start_col"`
}

// EnemyConfig defines enemy spawning and collision.
type EnemyConfig struct {
	SpawnRate float64 `yaml:"spawn_rate"` // Expected spawns per second
	Speed     float64 `yaml:"speed"`      // Pixels per second
	HitRadius float64 `yaml:"hit_radius"` // Fraction of tile width
}

// GemConfig defines the collectibles placed on each level.
type GemConfig struct {
	Count        int     `yaml:"count"`
	Points       int     `yaml:"points"`
	PickupRadius float64 `yaml:"pickup_radius"` // Fraction of tile width
}

// TimingConfig defines the state machine timers, in seconds.
type TimingConfig struct {
	GracePeriod   float64 `yaml:"grace_period"`
	BlinkInterval float64 `yaml:"blink_interval"`
}

// DifficultyConfig defines how levels get harder.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level number at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Added to enemy speed at max difficulty
	SpawnRateMultiplier float64 `yaml:"spawn_rate_multiplier"` // Added to spawn rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", name)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ValidationError describes a rejected configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable game.
func (c CrossingConfig) Validate() error {
	switch {
	case c.Level.WidthTiles < 1:
		return ValidationError{"level.width_tiles", "must be at least 1"}
	case c.Level.HeightTiles < 4:
		return ValidationError{"level.height_tiles", "must be at least 4 (water, stone, two grass rows)"}
	case c.Level.TileWidth <= 0 || c.Level.TileHeight <= 0:
		return ValidationError{"level.tile_width", "tile size must be positive"}
	case c.Player.StartRow < 0 || c.Player.StartRow >= c.Level.HeightTiles:
		return ValidationError{"player.start_row", fmt.Sprintf("must be in [0, %d)", c.Level.HeightTiles)}
	case c.Player.StartCol < 0 || c.Player.StartCol >= c.Level.WidthTiles:
		return ValidationError{"player.start_col", fmt.Sprintf("must be in [0, %d)", c.Level.WidthTiles)}
	case c.Enemies.SpawnRate < 0:
		return ValidationError{"enemies.spawn_rate", "must not be negative"}
	case c.Enemies.Speed <= 0:
		return ValidationError{"enemies.speed", "must be positive"}
	case c.Enemies.HitRadius <= 0:
		return ValidationError{"enemies.hit_radius", "must be positive"}
	case c.Gems.Count < 0:
		return ValidationError{"gems.count", "must not be negative"}
	case c.Gems.Count > c.Level.WidthTiles*(c.Level.HeightTiles-3):
		return ValidationError{"gems.count", "more gems than stone tiles"}
	case c.Gems.Points < 0:
		return ValidationError{"gems.points", "must not be negative"}
	case c.Gems.PickupRadius <= 0:
		return ValidationError{"gems.pickup_radius", "must be positive"}
	case c.Timing.GracePeriod < 0:
		return ValidationError{"timing.grace_period", "must not be negative"}
	case c.Timing.BlinkInterval < 0:
		return ValidationError{"timing.blink_interval", "must not be negative"}
	}

	switch c.Difficulty.Progression.Type {
	case "level", "none":
	default:
		return ValidationError{"difficulty.progression.type", fmt.Sprintf("unknown type %q", c.Difficulty.Progression.Type)}
	}
	return nil
}
