package config

import (
	"math"
	"testing"
)

func TestDifficultyIdentityAtLevelOne(t *testing.T) {
	d := NewDifficultyManager(DefaultCrossingConfig().Difficulty)

	if got := d.SpawnRate(0.5, 1); got != 0.5 {
		t.Errorf("SpawnRate at level 1 = %f, expected 0.5", got)
	}
	if got := d.EnemySpeed(100, 1); got != 100 {
		t.Errorf("EnemySpeed at level 1 = %f, expected 100", got)
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "level", MaxAt: 5},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, SpawnRateMultiplier: 2.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		level int
		diff  float64
		speed float64
		rate  float64
	}{
		{1, 0, 100, 0.5},
		{3, 0.5, 150, 1.0},
		{5, 1, 200, 1.5},
		{12, 1, 200, 1.5}, // capped
	}

	for _, tc := range tests {
		if got := d.Level(tc.level); math.Abs(got-tc.diff) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.level, got, tc.diff)
		}
		if got := d.EnemySpeed(100, tc.level); math.Abs(got-tc.speed) > 1e-9 {
			t.Errorf("EnemySpeed(100, %d) = %f, expected %f", tc.level, got, tc.speed)
		}
		if got := d.SpawnRate(0.5, tc.level); math.Abs(got-tc.rate) > 1e-9 {
			t.Errorf("SpawnRate(0.5, %d) = %f, expected %f", tc.level, got, tc.rate)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  DifficultyConfig
	}{
		{"disabled", DifficultyConfig{Enabled: false, Progression: ProgressionConfig{Type: "level", MaxAt: 5}}},
		{"progression none", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none", MaxAt: 5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Scaling = ScalingConfig{SpeedMultiplier: 1, SpawnRateMultiplier: 1}
			d := NewDifficultyManager(tc.cfg)
			if d.IsEnabled() {
				t.Error("IsEnabled() should be false")
			}
			if got := d.EnemySpeed(100, 9); got != 100 {
				t.Errorf("EnemySpeed = %f, expected the base value", got)
			}
		})
	}
}

func TestDifficultyMaxAtGuard(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "level", MaxAt: 0},
	})

	if got := d.Level(2); got != 1 {
		t.Errorf("Level(2) with max_at 0 = %f, expected 1", got)
	}
	if got := d.Level(1); got != 0 {
		t.Errorf("Level(1) with max_at 0 = %f, expected 0", got)
	}
}
