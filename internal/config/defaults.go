package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultInvadersYAML))
	copy(out, defaultInvadersYAML)
	return out
}

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Arena: InvadersArena{
			UnitsPerCol: 5,
			UnitsPerRow: 10,
			HUDRows:     1,
		},
		Player: InvadersPlayer{
			Size:  10,
			Speed: 2,
		},
		Invaders: InvadersCrowd{
			Initial:    10,
			SpawnEvery: 10,
			MinSize:    5,
			MaxSize:    55,
			MinSpeed:   -2,
			MaxSpeed:   1,
			Jitter:     0,
		},
		Spawn: InvadersSpawn{
			SafetyMargin: 5,
			MaxAttempts:  100,
		},
		Win: InvadersWin{
			Rule:         "population",
			GrowthFactor: 2,
		},
	}
}
