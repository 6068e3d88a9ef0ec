// Package config provides YAML-based configuration loading and static
// presets for the invaders game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/sim"
)

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Arena    InvadersArena  `yaml:"arena"`
	Player   InvadersPlayer `yaml:"player"`
	Invaders InvadersCrowd  `yaml:"invaders"`
	Spawn    InvadersSpawn  `yaml:"spawn"`
	Win      InvadersWin    `yaml:"win"`
}

// InvadersArena maps terminal cells to arena units.
type InvadersArena struct {
	UnitsPerCol float64 `yaml:"units_per_col"` // Arena units covered by one terminal column
	UnitsPerRow float64 `yaml:"units_per_row"` // Arena units covered by one terminal row
	HUDRows     int     `yaml:"hud_rows"`      // Rows reserved for the status line
}

// InvadersPlayer defines the player square.
type InvadersPlayer struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // Units per tick per held direction
}

// InvadersCrowd defines how many invaders appear and how they look and move.
type InvadersCrowd struct {
	Initial    int     `yaml:"initial"`
	SpawnEvery int     `yaml:"spawn_every"` // Ticks between spawns, 0 disables
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	Jitter     float64 `yaml:"jitter"`
}

// InvadersSpawn defines the safety zone kept free around the player.
type InvadersSpawn struct {
	SafetyMargin float64 `yaml:"safety_margin"`
	MaxAttempts  int     `yaml:"max_attempts"`
}

// InvadersWin selects the win rule.
type InvadersWin struct {
	Rule         string  `yaml:"rule"`          // "population" or "growth"
	GrowthFactor float64 `yaml:"growth_factor"` // Player width / arena width for the growth rule
}

// DifficultyPreset represents a named parameter set. Presets are static;
// nothing changes while a game runs.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want easy, normal or hard)", name)
	}
}

// Sim converts the config into simulation parameters for an arena of the
// given size.
func (c InvadersConfig) Sim(width, height float64, seed int64) sim.Config {
	return sim.Config{
		Width:            width,
		Height:           height,
		InitialInvaders:  c.Invaders.Initial,
		SpawnEvery:       c.Invaders.SpawnEvery,
		PlayerSize:       c.Player.Size,
		PlayerSpeed:      c.Player.Speed,
		InvaderMinSize:   c.Invaders.MinSize,
		InvaderMaxSize:   c.Invaders.MaxSize,
		InvaderMinSpeed:  c.Invaders.MinSpeed,
		InvaderMaxSpeed:  c.Invaders.MaxSpeed,
		Jitter:           c.Invaders.Jitter,
		SafetyMargin:     c.Spawn.SafetyMargin,
		MaxSpawnAttempts: c.Spawn.MaxAttempts,
		WinRule:          sim.WinRule(c.Win.Rule),
		GrowthFactor:     c.Win.GrowthFactor,
		Seed:             seed,
	}
}

// Validate checks the config against an arbitrary arena. The arena size
// itself comes from the terminal and is checked when the game starts.
func (c InvadersConfig) Validate() error {
	if c.Arena.UnitsPerCol <= 0 || c.Arena.UnitsPerRow <= 0 {
		return fmt.Errorf("config: arena units per cell must be positive, got %gx%g",
			c.Arena.UnitsPerCol, c.Arena.UnitsPerRow)
	}
	if c.Arena.HUDRows < 0 {
		return fmt.Errorf("config: negative hud_rows %d", c.Arena.HUDRows)
	}
	if err := c.Sim(100, 100, 0).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
