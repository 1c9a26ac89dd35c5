package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Where a configuration came from.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Resolve loads the crossing configuration and reports which source was used.
// Search order: customPath -> ~/.arcade/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when they fail.
func Resolve(customPath string) (CrossingConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crossing.yaml"); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(filepath.Join("configs", "crossing.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultCrossingYAML); err == nil && cfg.Validate() == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultCrossingConfig(), SourceBuiltin, nil
}

// readFile reads and parses one YAML file on top of the built-in defaults,
// so a partial file only overrides the keys it sets.
func readFile(path string) (CrossingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrossingConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg CrossingConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values; fixed turns per-level progression off.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	}

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.SpawnRate *= 0.6
		cfg.Enemies.Speed *= 0.8
		cfg.Difficulty.Progression.MaxAt *= 2
	case DifficultyHard:
		cfg.Enemies.SpawnRate *= 1.6
		cfg.Enemies.Speed *= 1.3
		cfg.Timing.GracePeriod /= 2
	}
}
