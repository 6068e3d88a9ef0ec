package headless

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/sim"
)

// Summary reports how a headless run ended.
type Summary struct {
	Ticks      int // Ticks requested from the simulation by this run
	Frames     int // Simulation frame counter at the end
	State      sim.State
	Eaten      int
	Spawned    int
	Invaders   int
	PlayerSize float64 // 0 once the player is gone
	Canceled   bool    // Stopped by the context before the game ended
}

// Run ticks s until it stops, maxTicks is reached or ctx is canceled.
// maxTicks <= 0 means no limit.
func Run(ctx context.Context, s *sim.Simulation, steer Steering, maxTicks int, logger *log.Logger) Summary {
	if steer == nil {
		steer = Idle
	}
	if logger == nil {
		logger = log.Default()
	}

	var sum Summary
	for !s.State().Stopped() && (maxTicks <= 0 || sum.Ticks < maxTicks) {
		if ctx.Err() != nil {
			sum.Canceled = true
			logger.Warn("run canceled", "frame", s.FrameCount())
			break
		}

		eaten := s.Eaten()
		s.Tick(steer(s))
		sum.Ticks++

		if n := s.Eaten() - eaten; n > 0 {
			logger.Debug("ate", "count", n, "frame", s.FrameCount()-1)
		}
		if s.State().Stopped() {
			logger.Info("game over", "outcome", s.State(), "frame", s.FrameCount())
		}
	}

	sum.Frames = s.FrameCount()
	sum.State = s.State()
	sum.Eaten = s.Eaten()
	sum.Spawned = s.Spawned()
	sum.Invaders = s.Invaders()
	if p, ok := s.Player(); ok {
		sum.PlayerSize = p.Box.Size().X
	}
	return sum
}
