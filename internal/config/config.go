// Package config provides YAML-based tuning and narrative configuration for
// the farm, with embedded defaults.
package config

import (
	"github.com/moonacre/lunafarm/internal/sim"
)

// Config is the full loadable configuration.
type Config struct {
	Sim      SimConfig `yaml:"sim"`
	Npc      NpcConfig `yaml:"npc"`
	Messages []string  `yaml:"messages"`
}

// SimConfig tunes interaction distances and cadences.
type SimConfig struct {
	PickupDistance int   `yaml:"pickup_distance"`
	CropDistance   int   `yaml:"crop_distance"`
	IdleResetMs    int64 `yaml:"idle_reset_ms"`
}

// NpcConfig tunes the NPC wander machine.
type NpcConfig struct {
	MoveWaitMs int64 `yaml:"move_wait_ms"`
	PauseMs    int64 `yaml:"pause_ms"`
}

// Tuning converts the loaded configuration into simulation tuning.
func (c Config) Tuning() sim.Tuning {
	return sim.Tuning{
		PickupDistance: c.Sim.PickupDistance,
		CropDistance:   c.Sim.CropDistance,
		IdleResetMs:    c.Sim.IdleResetMs,
		NpcMoveWaitMs:  c.Npc.MoveWaitMs,
		NpcPauseMs:     c.Npc.PauseMs,
	}
}
