package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every construction-time contract violation.
var ErrInvalidConfig = errors.New("sim: invalid config")

// WinRule selects how a running simulation can end in the player's favor.
type WinRule string

const (
	// WinPopulation ends the game when the last invader disappears while the
	// player is still alive.
	WinPopulation WinRule = "population"

	// WinGrowth ends the game when the player grows wider than
	// GrowthFactor times the arena width.
	WinGrowth WinRule = "growth"
)

// Config holds every tunable of a simulation. Units are arena units; the
// platform decides how many of them fit in a terminal cell.
type Config struct {
	Width  float64 // Arena width
	Height float64 // Arena height

	InitialInvaders int // Invaders placed at construction, no player avoidance
	SpawnEvery      int // Spawn one invader every N frames, starting at frame 0. 0 disables.

	PlayerSize  float64 // Side of the starting player square
	PlayerSpeed float64 // Displacement per tick per held direction

	InvaderMinSize  float64 // Invader side is uniform in [min, max)
	InvaderMaxSize  float64
	InvaderMinSpeed float64 // Invader velocity per axis is uniform in [min, max)
	InvaderMaxSpeed float64
	Jitter          float64 // Per-tick drift uniform in [0, Jitter) per axis. 0 disables.

	SafetyMargin     float64 // Added to the player half extent when spawning
	MaxSpawnAttempts int     // Rejection sampling cap; the last draw wins on exhaustion

	WinRule      WinRule
	GrowthFactor float64 // Only used by WinGrowth

	Seed int64
}

// DefaultConfig returns the classic rules for an arena of the given size.
func DefaultConfig(width, height float64, invaders int) Config {
	return Config{
		Width:            width,
		Height:           height,
		InitialInvaders:  invaders,
		SpawnEvery:       10,
		PlayerSize:       10,
		PlayerSpeed:      2,
		InvaderMinSize:   5,
		InvaderMaxSize:   55,
		InvaderMinSpeed:  -2,
		InvaderMaxSpeed:  1,
		Jitter:           0,
		SafetyMargin:     5,
		MaxSpawnAttempts: 100,
		WinRule:          WinPopulation,
		GrowthFactor:     2,
	}
}

// Validate checks construction preconditions.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.InitialInvaders < 0:
		return fmt.Errorf("%w: negative initial invader count %d", ErrInvalidConfig, c.InitialInvaders)
	case c.SpawnEvery < 0:
		return fmt.Errorf("%w: negative spawn interval %d", ErrInvalidConfig, c.SpawnEvery)
	case c.PlayerSize <= 0:
		return fmt.Errorf("%w: player size must be positive, got %g", ErrInvalidConfig, c.PlayerSize)
	case c.PlayerSpeed < 0:
		return fmt.Errorf("%w: negative player speed %g", ErrInvalidConfig, c.PlayerSpeed)
	case c.InvaderMinSize <= 0 || c.InvaderMaxSize < c.InvaderMinSize:
		return fmt.Errorf("%w: invader size range [%g, %g)", ErrInvalidConfig, c.InvaderMinSize, c.InvaderMaxSize)
	case c.InvaderMaxSpeed < c.InvaderMinSpeed:
		return fmt.Errorf("%w: invader speed range [%g, %g)", ErrInvalidConfig, c.InvaderMinSpeed, c.InvaderMaxSpeed)
	case c.Jitter < 0:
		return fmt.Errorf("%w: negative jitter %g", ErrInvalidConfig, c.Jitter)
	case c.SafetyMargin < 0:
		return fmt.Errorf("%w: negative safety margin %g", ErrInvalidConfig, c.SafetyMargin)
	case c.MaxSpawnAttempts < 1:
		return fmt.Errorf("%w: spawn attempts must be at least 1, got %d", ErrInvalidConfig, c.MaxSpawnAttempts)
	}

	switch c.WinRule {
	case WinPopulation, "":
	case WinGrowth:
		if c.GrowthFactor <= 0 {
			return fmt.Errorf("%w: growth factor must be positive, got %g", ErrInvalidConfig, c.GrowthFactor)
		}
	default:
		return fmt.Errorf("%w: unknown win rule %q", ErrInvalidConfig, c.WinRule)
	}

	return nil
}

// State is the simulation lifecycle. Won and Lost are terminal.
type State int

const (
	StateRunning State = iota
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Stopped reports whether the state is terminal.
func (s State) Stopped() bool {
	return s == StateWon || s == StateLost
}
