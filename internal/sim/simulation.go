// Package sim implements the invader arena: a player square that grows by
// eating smaller invaders and dies touching larger ones.
//
// The package is pure game logic. It never draws, never reads devices and
// never sleeps; the platform calls Tick once per frame and reads Entities
// afterwards.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Simulation owns the live entity collection and advances it frame by frame.
type Simulation struct {
	cfg      Config
	rng      *rand.Rand
	spawner  *Spawner
	entities []Entity
	playerID uint64
	nextID   uint64
	frame    int
	state    State
	eaten    int
	spawned  int
}

// New builds a running simulation with the player centered in the arena and
// cfg.InitialInvaders placed at random.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.WinRule == "" {
		cfg.WinRule = WinPopulation
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	s := &Simulation{
		cfg:      cfg,
		rng:      rng,
		spawner:  NewSpawner(rng, cfg),
		entities: make([]Entity, 0, cfg.InitialInvaders+16),
		nextID:   1,
		state:    StateRunning,
	}

	for _, inv := range s.spawner.Initial(cfg.InitialInvaders) {
		s.add(inv)
	}

	player := s.add(Entity{
		Kind: KindPlayer,
		Box:  core.NewBox(cfg.Width/2, cfg.Height/2, cfg.PlayerSize, cfg.PlayerSize),
	})
	s.playerID = player.ID

	return s, nil
}

// add appends e under a fresh ID and returns the stored copy.
func (s *Simulation) add(e Entity) Entity {
	e.ID = s.nextID
	s.nextID++
	s.entities = append(s.entities, e)
	return e
}

// Tick advances the simulation by one frame. Once the state is terminal,
// Tick does nothing, including the frame counter.
func (s *Simulation) Tick(in Input) {
	if s.state.Stopped() {
		return
	}
	if in == nil {
		in = core.InputFrame{}
	}

	s.spawnScheduled()
	invadersAtStart := s.Invaders()

	s.move(in)
	s.cull()
	s.resolve(s.detect())
	s.evaluate(invadersAtStart)

	s.frame++
}

// spawnScheduled appends one invader on every SpawnEvery-th frame.
func (s *Simulation) spawnScheduled() {
	if s.cfg.SpawnEvery <= 0 || s.frame%s.cfg.SpawnEvery != 0 {
		return
	}
	player, ok := s.Player()
	if !ok {
		return
	}
	s.add(s.spawner.One(player.Box))
	s.spawned++
}

func (s *Simulation) move(in Input) {
	for i := range s.entities {
		e := &s.entities[i]
		switch e.Kind {
		case KindPlayer:
			e.stepPlayer(in, s.cfg.PlayerSpeed)
		case KindInvader:
			e.stepInvader(s.spawner.jitter())
		}
	}
}

// cull removes every entity that left the arena, the player included.
func (s *Simulation) cull() {
	var gone map[uint64]bool
	for _, e := range s.entities {
		if e.Box.OutOfBounds(s.cfg.Width, s.cfg.Height) {
			if gone == nil {
				gone = make(map[uint64]bool)
			}
			gone[e.ID] = true
		}
	}
	s.removeAll(gone)
}

// detect returns the slice indexes of every entity overlapping the player,
// in pair order (i < j). Invader-invader contacts are ignored.
func (s *Simulation) detect() []int {
	var hits []int
	for i := 0; i < len(s.entities); i++ {
		for j := i + 1; j < len(s.entities); j++ {
			a, b := s.entities[i], s.entities[j]
			if a.ID == b.ID || !a.Box.Overlaps(b.Box) {
				continue
			}
			switch {
			case a.IsPlayer():
				hits = append(hits, j)
			case b.IsPlayer():
				hits = append(hits, i)
			}
		}
	}
	return hits
}

// resolve applies every contact in detection order against the player's
// size as it grows within this tick, including contacts after a fatal one.
// Removals are applied after all contacts.
func (s *Simulation) resolve(hits []int) {
	if len(hits) == 0 {
		return
	}

	pi := s.playerIndex()
	if pi < 0 {
		return
	}
	player := &s.entities[pi]

	gone := make(map[uint64]bool, len(hits))
	for _, idx := range hits {
		other := s.entities[idx]
		if player.Area() > other.Area() {
			player.absorb(other)
			gone[other.ID] = true
			s.eaten++
			continue
		}
		gone[player.ID] = true
	}
	s.removeAll(gone)
}

func (s *Simulation) evaluate(invadersAtStart int) {
	player, ok := s.Player()
	if !ok {
		s.state = StateLost
		return
	}

	switch s.cfg.WinRule {
	case WinGrowth:
		if player.Box.Size().X > s.cfg.GrowthFactor*s.cfg.Width {
			s.state = StateWon
		}
	case WinPopulation:
		if invadersAtStart > 0 && s.Invaders() == 0 {
			s.state = StateWon
		}
	}
}

// removeAll drops the given IDs, keeping the order of the rest.
// Removing the player stops the simulation.
func (s *Simulation) removeAll(ids map[uint64]bool) {
	if len(ids) == 0 {
		return
	}
	kept := s.entities[:0]
	for _, e := range s.entities {
		if ids[e.ID] {
			continue
		}
		kept = append(kept, e)
	}
	s.entities = kept

	if ids[s.playerID] {
		s.state = StateLost
	}
}

func (s *Simulation) playerIndex() int {
	for i, e := range s.entities {
		if e.ID == s.playerID {
			return i
		}
	}
	return -1
}

// Entities returns a copy of the live entities in render order.
func (s *Simulation) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Player returns the player entity, or false once it has been removed.
func (s *Simulation) Player() (Entity, bool) {
	if i := s.playerIndex(); i >= 0 {
		return s.entities[i], true
	}
	return Entity{}, false
}

// Invaders returns the number of live invaders.
func (s *Simulation) Invaders() int {
	n := 0
	for _, e := range s.entities {
		if e.Kind == KindInvader {
			n++
		}
	}
	return n
}

// State returns the current lifecycle state.
func (s *Simulation) State() State {
	return s.state
}

// FrameCount returns the number of ticks processed while running.
func (s *Simulation) FrameCount() int {
	return s.frame
}

// Eaten returns how many invaders the player has absorbed.
func (s *Simulation) Eaten() int {
	return s.eaten
}

// Spawned returns how many invaders the cadence has added since construction.
func (s *Simulation) Spawned() int {
	return s.spawned
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config {
	return s.cfg
}
