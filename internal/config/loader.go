package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadCat loads Clumsy Cat Chaos configuration.
// Search order: customPath -> ~/.arcade/configs/cat.yaml -> ./configs/cat.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadCat(customPath string) (CatConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCat(customPath, data)
		if err != nil {
			return CatConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return CatConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{
		userConfigPath("cat.yaml"),
		userConfigPath("cat.toml"),
		filepath.Join("configs", "cat.yaml"),
		filepath.Join("configs", "cat.toml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseCat(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCat("cat.yaml", defaultCatYAML)
	if err != nil {
		return DefaultCatConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseCat decodes data on top of the built-in defaults.
// The format is chosen by file extension: .toml uses TOML, anything else YAML.
func parseCat(path string, data []byte) (CatConfig, error) {
	cfg := DefaultCatConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return CatConfig{}, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CatConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyCatPreset modifies the config based on a difficulty preset.
func ApplyCatPreset(cfg *CatConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.BaseIntervalMs = 2400
		cfg.Spawner.BaseHazardSpeed = -3.5
	case DifficultyHard:
		cfg.Spawner.BaseIntervalMs = 1600
		cfg.Spawner.MinIntervalMs = 650
		cfg.Spawner.BaseHazardSpeed = -5
	case DifficultyFixed:
		// Cadence and speed stay at their level-0 values
		cfg.Spawner.DecayPerLevelMs = 0
		cfg.Spawner.SpeedPerLevel = 0
	}
}
