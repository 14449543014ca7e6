package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Skyfire configuration.
// Search order: customPath -> ~/.skyfire/configs/skyfire.yaml -> ./configs/skyfire.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped when broken.
func Load(customPath string) (SkyfireConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultConfig(), err
		}
		if err := cfg.Validate(); err != nil {
			return DefaultConfig(), fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/skyfire.yaml"}
	if userCfgPath := userConfigPath("skyfire.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return embeddedConfig(), nil
}

// loadFile decodes a YAML file on top of the defaults.
func loadFile(path string) (SkyfireConfig, error) {
	cfg := embeddedConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// embeddedConfig decodes the embedded YAML, falling back to DefaultConfig.
func embeddedConfig() SkyfireConfig {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultSkyfireYAML, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Marshal renders a configuration as YAML.
func Marshal(cfg SkyfireConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfire", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SkyfireConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Enemy.Speed *= 0.75
		cfg.Timing.SpawnInterval = cfg.Timing.SpawnInterval * 5 / 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Timing.SpawnInterval = cfg.Timing.SpawnInterval * 3 / 5
		cfg.Difficulty.Enabled = true
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
		if cfg.Difficulty.Progression.MaxAt <= 0 {
			cfg.Difficulty.Progression.MaxAt = 5000
		}
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
