package headless

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sim"
)

var quiet = log.New(io.Discard)

func newSim(t *testing.T, cfg sim.Config) *sim.Simulation {
	t.Helper()
	s, err := sim.New(cfg)
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	return s
}

func TestRunStopsAtTickLimit(t *testing.T) {
	cfg := sim.DefaultConfig(900, 600, 0)
	cfg.SpawnEvery = 0
	s := newSim(t, cfg)

	sum := Run(context.Background(), s, Idle, 50, quiet)

	if sum.Ticks != 50 || sum.Frames != 50 {
		t.Errorf("ticks = %d frames = %d, expected 50", sum.Ticks, sum.Frames)
	}
	if sum.State != sim.StateRunning || sum.Canceled {
		t.Errorf("summary = %+v", sum)
	}
	if sum.PlayerSize != 10 {
		t.Errorf("PlayerSize = %g", sum.PlayerSize)
	}
}

func TestRunStopsWhenGameEnds(t *testing.T) {
	cfg := sim.DefaultConfig(100, 100, 0)
	cfg.SpawnEvery = 0
	cfg.PlayerSpeed = 100
	s := newSim(t, cfg)

	left := func(*sim.Simulation) core.InputFrame { return core.NewInputFrame(core.ActionLeft) }
	sum := Run(context.Background(), s, left, 0, quiet)

	if sum.State != sim.StateLost || sum.Ticks != 1 {
		t.Errorf("summary = %+v, expected a loss after one tick", sum)
	}
	if sum.PlayerSize != 0 {
		t.Errorf("PlayerSize = %g after loss", sum.PlayerSize)
	}
}

func TestRunCanceled(t *testing.T) {
	s := newSim(t, sim.DefaultConfig(900, 600, 0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum := Run(ctx, s, nil, 0, quiet)
	if !sum.Canceled || sum.Ticks != 0 {
		t.Errorf("summary = %+v, expected immediate cancel", sum)
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := sim.DefaultConfig(400, 230, 10)
	cfg.Seed = 77

	a := Run(context.Background(), newSim(t, cfg), Greedy, 500, quiet)
	b := Run(context.Background(), newSim(t, cfg), Greedy, 500, quiet)
	if a != b {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestToward(t *testing.T) {
	tests := []struct {
		name     string
		from, to core.Vec
		want     []core.Action
	}{
		{"up left", core.Vec{X: 10, Y: 10}, core.Vec{X: 0, Y: 0}, []core.Action{core.ActionLeft, core.ActionUp}},
		{"down right", core.Vec{X: 0, Y: 0}, core.Vec{X: 5, Y: 5}, []core.Action{core.ActionRight, core.ActionDown}},
		{"same row", core.Vec{X: 0, Y: 3}, core.Vec{X: 5, Y: 3}, []core.Action{core.ActionRight}},
		{"same spot", core.Vec{X: 1, Y: 1}, core.Vec{X: 1, Y: 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := toward(tt.from, tt.to)
			if len(f.Actions) != len(tt.want) {
				t.Fatalf("actions = %v, expected %v", f.Actions, tt.want)
			}
			for _, a := range tt.want {
				if !f.Has(a) {
					t.Errorf("missing %v in %v", a, f.Actions)
				}
			}
		})
	}
}

func TestGreedyChoosesTarget(t *testing.T) {
	cfg := sim.DefaultConfig(900, 600, 0)
	cfg.SpawnEvery = 0
	cfg.InvaderMinSpeed, cfg.InvaderMaxSpeed = 0, 0

	// No invaders: nothing to do.
	s := newSim(t, cfg)
	if f := Greedy(s); len(f.Actions) != 0 {
		t.Errorf("empty arena frame = %v", f.Actions)
	}

	// Only edible invaders (max size below the player): head toward the nearest.
	cfg.InitialInvaders = 5
	cfg.InvaderMinSize, cfg.InvaderMaxSize = 2, 3
	s = newSim(t, cfg)
	player, _ := s.Player()
	f := Greedy(s)
	if len(f.Actions) == 0 {
		t.Fatal("greedy should chase prey")
	}
	before := nearest(s, player.Box.Center)
	s.Tick(f)
	after, _ := s.Player()
	if s.Eaten() == 0 && nearest(s, after.Box.Center) >= before {
		t.Error("greedy step did not get closer to prey")
	}
}

func nearest(s *sim.Simulation, from core.Vec) float64 {
	best := -1.0
	for _, e := range s.Entities() {
		if e.IsPlayer() {
			continue
		}
		if d := distance(from, e.Box.Center); best < 0 || d < best {
			best = d
		}
	}
	return best
}

func TestParseSteering(t *testing.T) {
	for _, name := range []string{"", "idle", "none", "greedy"} {
		if _, err := ParseSteering(name); err != nil {
			t.Errorf("ParseSteering(%q): %v", name, err)
		}
	}
	if _, err := ParseSteering("cheat"); err == nil {
		t.Error("expected error for unknown steering")
	}
}
