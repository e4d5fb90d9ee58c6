package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const asteroidsFile = "asteroids.yaml"

// LoadAsteroids loads the simulation configuration.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil {
		cfg = DefaultAsteroidsConfig()
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(asteroidsFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if overlay, ok := decodeOver(cfg, data); ok {
				return overlay, overlay.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", asteroidsFile)); err == nil {
		if overlay, ok := decodeOver(cfg, data); ok {
			return overlay, overlay.Validate()
		}
	}

	return cfg, nil
}

// decodeOver unmarshals data on top of base. A malformed file is skipped
// rather than half-applied.
func decodeOver(base AsteroidsConfig, data []byte) (AsteroidsConfig, bool) {
	out := base
	if err := yaml.Unmarshal(data, &out); err != nil {
		return base, false
	}
	return out, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Game.Lives = 5
		cfg.Ship.ShieldTicks = 150
	case DifficultyHard:
		cfg.Game.Lives = 2
		cfg.Aliens.ShotDelay = 12
	}
}
