package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the farm configuration.
// Search order: customPath -> ~/.lunafarm/config.yaml -> ./configs/lunafarm.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/lunafarm.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize backfills zero-valued fields with defaults so a partial user
// config still yields a playable game.
func normalize(cfg Config) Config {
	def := Default()
	if cfg.Sim.PickupDistance <= 0 {
		cfg.Sim.PickupDistance = def.Sim.PickupDistance
	}
	if cfg.Sim.CropDistance <= 0 {
		cfg.Sim.CropDistance = def.Sim.CropDistance
	}
	if cfg.Sim.IdleResetMs <= 0 {
		cfg.Sim.IdleResetMs = def.Sim.IdleResetMs
	}
	if cfg.Npc.MoveWaitMs <= 0 {
		cfg.Npc.MoveWaitMs = def.Npc.MoveWaitMs
	}
	if cfg.Npc.PauseMs <= 0 {
		cfg.Npc.PauseMs = def.Npc.PauseMs
	}
	if len(cfg.Messages) == 0 {
		cfg.Messages = def.Messages
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lunafarm", filename)
}
