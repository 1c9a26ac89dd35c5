package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultCrossingConfig() {
		t.Errorf("embedded defaults differ from DefaultCrossingConfig():\n%+v\n%+v", cfg, DefaultCrossingConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *CrossingConfig)
		field  string
	}{
		{"defaults", func(c *CrossingConfig) {}, ""},
		{"no columns", func(c *CrossingConfig) { c.Level.WidthTiles = 0 }, "level.width_tiles"},
		{"too few rows", func(c *CrossingConfig) { c.Level.HeightTiles = 3 }, "level.height_tiles"},
		{"zero tile", func(c *CrossingConfig) { c.Level.TileHeight = 0 }, "level.tile_width"},
		{"start below grid", func(c *CrossingConfig) { c.Player.StartRow = 6 }, "player.start_row"},
		{"start left of grid", func(c *CrossingConfig) { c.Player.StartCol = -1 }, "player.start_col"},
		{"negative spawn rate", func(c *CrossingConfig) { c.Enemies.SpawnRate = -1 }, "enemies.spawn_rate"},
		{"still enemies", func(c *CrossingConfig) { c.Enemies.Speed = 0 }, "enemies.speed"},
		{"too many gems", func(c *CrossingConfig) { c.Gems.Count = 16 }, "gems.count"},
		{"negative grace", func(c *CrossingConfig) { c.Timing.GracePeriod = -0.5 }, "timing.grace_period"},
		{"unknown progression", func(c *CrossingConfig) { c.Difficulty.Progression.Type = "score" }, "difficulty.progression.type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyCrossingPreset(t *testing.T) {
	base := DefaultCrossingConfig()

	normal := base
	ApplyCrossingPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should keep the configured values")
	}

	fixed := base
	ApplyCrossingPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	easy := base
	ApplyCrossingPreset(&easy, DifficultyEasy)
	if easy.Enemies.SpawnRate >= base.Enemies.SpawnRate || easy.Enemies.Speed >= base.Enemies.Speed {
		t.Errorf("easy preset should slow enemies down, got rate %f speed %f", easy.Enemies.SpawnRate, easy.Enemies.Speed)
	}

	hard := base
	ApplyCrossingPreset(&hard, DifficultyHard)
	if hard.Enemies.SpawnRate <= base.Enemies.SpawnRate || hard.Timing.GracePeriod >= base.Timing.GracePeriod {
		t.Errorf("hard preset should raise pressure, got rate %f grace %f", hard.Enemies.SpawnRate, hard.Timing.GracePeriod)
	}
}

func TestApplyCrossingPresetKeepsDisabledProgression(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyNormal, DifficultyEasy, DifficultyHard} {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			cfg.Difficulty.Enabled = false

			ApplyCrossingPreset(&cfg, preset)
			if cfg.Difficulty.Enabled {
				t.Errorf("%s preset re-enabled progression turned off in the config", preset)
			}
		})
	}
}

// isolate points the user and local search locations at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home, work
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, src, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg != DefaultCrossingConfig() {
		t.Error("embedded config should equal the built-in defaults")
	}
}

func TestResolveSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "crossing.yaml"), "gems:\n  count: 5\n")
	cfg, src, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if src != SourceLocal || cfg.Gems.Count != 5 {
		t.Errorf("got source %q gems %d, expected local config with 5 gems", src, cfg.Gems.Count)
	}
	// keys the file does not set keep their defaults
	if cfg.Enemies.Speed != 100 {
		t.Errorf("enemy speed = %f, expected default 100", cfg.Enemies.Speed)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", "crossing.yaml"), "gems:\n  count: 7\n")
	cfg, src, _ = Resolve("")
	if src != SourceUser || cfg.Gems.Count != 7 {
		t.Errorf("got source %q gems %d, expected user config with 7 gems", src, cfg.Gems.Count)
	}

	custom := filepath.Join(work, "mine.yaml")
	writeFile(t, custom, "gems:\n  count: 1\n")
	cfg, src, _ = Resolve(custom)
	if src != SourceCustom || cfg.Gems.Count != 1 {
		t.Errorf("got source %q gems %d, expected custom config with 1 gem", src, cfg.Gems.Count)
	}
}

func TestResolveSkipsInvalidSearchFiles(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(home, ".arcade", "configs", "crossing.yaml"), "gems: [not, a, map]\n")
	writeFile(t, filepath.Join(work, "configs", "crossing.yaml"), "enemies:\n  speed: -4\n")

	_, src, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
}

func TestResolveCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, src, err := Resolve(filepath.Join(dir, "missing.yaml")); err == nil || src != SourceCustom {
		t.Error("expected an error for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "level: {width_tiles: [")
	if _, _, err := Resolve(bad); err == nil {
		t.Error("expected an error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "gems:\n  count: -1\n")
	_, _, err := Resolve(invalid)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected a wrapped ValidationError, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultCrossingConfig()
	cfg.Gems.Count = 4

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := parse(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed the config:\n%s", data)
	}
}
