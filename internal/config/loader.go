package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const invadersFile = "invaders.yaml"

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
//
// Files are merged over the defaults, so a partial file only overrides the
// keys it names. A broken custom file is an error; broken files found by
// the search are skipped with a warning.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(invadersFile) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		found := DefaultInvadersConfig()
		if err := yaml.Unmarshal(data, &found); err != nil {
			log.Warn("skipping config", "path", path, "error", err)
			continue
		}
		if err := found.Validate(); err != nil {
			log.Warn("skipping config", "path", path, "error", err)
			continue
		}
		log.Debug("loaded config", "path", path)
		return found, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyInvadersPreset adjusts the crowd for a difficulty preset.
// Normal keeps whatever the loaded file says.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Invaders.Initial = 5
		cfg.Invaders.SpawnEvery = 15
		cfg.Invaders.MaxSize = 40
	case DifficultyHard:
		cfg.Invaders.Initial = 20
		cfg.Invaders.SpawnEvery = 6
		cfg.Invaders.MinSpeed = -3
		cfg.Invaders.MaxSpeed = 2
		cfg.Invaders.Jitter = 0.5
	}
}
