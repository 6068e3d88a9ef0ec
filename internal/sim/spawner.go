package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Spawner generates invaders with random position, size and velocity.
// It shares the simulation RNG so a seed reproduces the whole game.
type Spawner struct {
	rng *rand.Rand
	cfg Config
}

// NewSpawner creates a spawner drawing from rng with the ranges in cfg.
func NewSpawner(rng *rand.Rand, cfg Config) *Spawner {
	return &Spawner{
		rng: rng,
		cfg: cfg,
	}
}

// Initial returns n invaders placed anywhere in the arena.
// The starting batch does not avoid the player.
func (sp *Spawner) Initial(n int) []Entity {
	invaders := make([]Entity, 0, n)
	for i := 0; i < n; i++ {
		invaders = append(invaders, sp.draw())
	}
	return invaders
}

// One returns a single invader that does not overlap the safety box around
// the player. After MaxSpawnAttempts rejected draws the last one is used.
func (sp *Spawner) One(player core.Box) Entity {
	safe := sp.SafetyBox(player)

	var inv Entity
	for attempt := 0; attempt < sp.cfg.MaxSpawnAttempts; attempt++ {
		inv = sp.draw()
		if !inv.Box.Overlaps(safe) {
			return inv
		}
	}
	return inv
}

// SafetyBox returns the exclusion zone used by One.
func (sp *Spawner) SafetyBox(player core.Box) core.Box {
	margin := core.Vec{X: sp.cfg.SafetyMargin, Y: sp.cfg.SafetyMargin}
	return core.Box{
		Center: player.Center,
		Half:   player.Half.Add(margin),
	}
}

// draw produces one unchecked invader. The ID is assigned by the simulation.
func (sp *Spawner) draw() Entity {
	x := sp.rng.Float64() * sp.cfg.Width
	y := sp.rng.Float64() * sp.cfg.Height
	size := sp.uniform(sp.cfg.InvaderMinSize, sp.cfg.InvaderMaxSize)
	vx := sp.uniform(sp.cfg.InvaderMinSpeed, sp.cfg.InvaderMaxSpeed)
	vy := sp.uniform(sp.cfg.InvaderMinSpeed, sp.cfg.InvaderMaxSpeed)

	return Entity{
		Kind:     KindInvader,
		Box:      core.NewBox(x, y, size, size),
		Velocity: core.Vec{X: vx, Y: vy},
	}
}

// jitter returns the per-tick drift for one invader.
func (sp *Spawner) jitter() core.Vec {
	if sp.cfg.Jitter <= 0 {
		return core.Vec{}
	}
	return core.Vec{
		X: sp.rng.Float64() * sp.cfg.Jitter,
		Y: sp.rng.Float64() * sp.cfg.Jitter,
	}
}

func (sp *Spawner) uniform(lo, hi float64) float64 {
	return lo + sp.rng.Float64()*(hi-lo)
}
