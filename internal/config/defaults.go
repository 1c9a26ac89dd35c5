package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Level: LevelConfig{
			WidthTiles:  5,
			HeightTiles: 6,
			TileWidth:   101,
			TileHeight:  83,
		},
		Player: PlayerConfig{
			StartRow: 5,
			StartCol: 2,
		},
		Enemies: EnemyConfig{
			SpawnRate: 0.5,
			Speed:     100,
			HitRadius: 0.6,
		},
		Gems: GemConfig{
			Count:        3,
			Points:       100,
			PickupRadius: 0.5,
		},
		Timing: TimingConfig{
			GracePeriod:   2,
			BlinkInterval: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     1.0,
				SpawnRateMultiplier: 2.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
