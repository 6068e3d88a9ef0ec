// Package headless drives a simulation without a terminal, for batch runs
// and reproducible replays.
package headless

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sim"
)

// Steering chooses the held keys for the next tick.
type Steering func(s *sim.Simulation) core.InputFrame

// Idle never presses anything.
func Idle(*sim.Simulation) core.InputFrame {
	return core.NewInputFrame()
}

// fleeRadius is how close, in player widths, a deadly invader must be
// before Greedy runs from it.
const fleeRadius = 3.0

// Greedy runs from the nearest invader it cannot eat when one is close,
// and otherwise heads for the nearest invader it can.
func Greedy(s *sim.Simulation) core.InputFrame {
	player, ok := s.Player()
	if !ok {
		return core.NewInputFrame()
	}

	var prey, threat *sim.Entity
	preyDist, threatDist := math.Inf(1), math.Inf(1)
	entities := s.Entities()
	for i := range entities {
		e := &entities[i]
		if e.IsPlayer() {
			continue
		}
		d := distance(player.Box.Center, e.Box.Center)
		if e.Area() < player.Area() {
			if d < preyDist {
				prey, preyDist = e, d
			}
		} else if gap := d - e.Box.Half.X; gap < threatDist {
			threat, threatDist = e, gap
		}
	}

	switch {
	case threat != nil && threatDist < fleeRadius*player.Box.Size().X:
		return toward(threat.Box.Center, player.Box.Center)
	case prey != nil:
		return toward(player.Box.Center, prey.Box.Center)
	}
	return core.NewInputFrame()
}

// toward returns the keys that move from a in the direction of b.
func toward(from, to core.Vec) core.InputFrame {
	f := core.NewInputFrame()
	switch {
	case to.X < from.X:
		f.Set(core.ActionLeft)
	case to.X > from.X:
		f.Set(core.ActionRight)
	}
	switch {
	case to.Y < from.Y:
		f.Set(core.ActionUp)
	case to.Y > from.Y:
		f.Set(core.ActionDown)
	}
	return f
}

func distance(a, b core.Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// ParseSteering resolves a steering policy by name.
func ParseSteering(name string) (Steering, error) {
	switch name {
	case "", "idle", "none":
		return Idle, nil
	case "greedy":
		return Greedy, nil
	default:
		return nil, fmt.Errorf("headless: unknown steering %q (want idle or greedy)", name)
	}
}
