// Package invaders implements "grow or die": the player square eats
// smaller invaders and dies touching larger ones.
package invaders

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/sim"
)

// Registered game IDs.
const (
	ID       = "invaders"
	GrowthID = "invaders_growth"
)

// Smallest playable terminal, HUD included.
const (
	MinCols = 20
	MinRows = 8
)

// Game adapts a sim.Simulation to the registry.Game interface.
type Game struct {
	id     string
	title  string
	cfg    config.InvadersConfig
	logger *log.Logger

	sim      *sim.Simulation
	runtime  core.RuntimeConfig
	paused   bool
	tooSmall bool
	err      error // Last construction error, shown instead of the arena
	reported bool  // Outcome already logged
}

// New creates a game with the given identity and configuration.
func New(id, title string, cfg config.InvadersConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		id:     id,
		title:  title,
		cfg:    cfg,
		logger: logger.WithPrefix(id),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh simulation sized to the screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.sim = nil
	g.paused = false
	g.err = nil
	g.reported = false

	cols, rows := g.arenaCells()
	g.tooSmall = cols < MinCols || rc.ScreenH < MinRows || rows < 1
	if g.tooSmall {
		g.logger.Debug("window too small", "cols", rc.ScreenW, "rows", rc.ScreenH)
		return
	}

	w, h := g.arenaSize()
	s, err := sim.New(g.cfg.Sim(w, h, rc.Seed))
	if err != nil {
		g.err = err
		g.logger.Error("cannot start game", "error", err)
		return
	}
	g.sim = s

	g.logger.Info("game started",
		"arena", fmt.Sprintf("%gx%g", w, h),
		"invaders", g.cfg.Invaders.Initial,
		"rule", s.Config().WinRule,
		"seed", rc.Seed)
}

// arenaCells returns the terminal cells available to the arena.
func (g *Game) arenaCells() (cols, rows int) {
	return g.runtime.ScreenW, g.runtime.ScreenH - g.cfg.Arena.HUDRows
}

// arenaSize returns the arena in simulation units.
func (g *Game) arenaSize() (w, h float64) {
	cols, rows := g.arenaCells()
	return float64(cols) * g.cfg.Arena.UnitsPerCol, float64(rows) * g.cfg.Arena.UnitsPerRow
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil || g.sim.State().Stopped() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sim.Tick(in)

	if st := g.sim.State(); st.Stopped() && !g.reported {
		g.reported = true
		size := 0.0
		if p, ok := g.sim.Player(); ok {
			size = p.Box.Size().X
		}
		g.logger.Info("game over",
			"outcome", st,
			"eaten", g.sim.Eaten(),
			"size", size,
			"frames", g.sim.FrameCount())
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. Score is the number of invaders eaten.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.sim == nil {
		return st
	}
	st.Score = g.sim.Eaten()
	st.GameOver = g.sim.State().Stopped()
	st.Won = g.sim.State() == sim.StateWon
	return st
}

// Simulation exposes the running simulation, nil when none could be built.
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Invaders",
		Description: "Eat smaller invaders, avoid bigger ones, clear the arena",
	}, factory(ID, "Invaders", ""))

	registry.Register(registry.GameInfo{
		ID:          GrowthID,
		Title:       "Invaders: Growth",
		Description: "Grow wider than the arena to win",
	}, factory(GrowthID, "Invaders: Growth", sim.WinGrowth))
}

// factory loads the config for each new game so edits apply on restart
// from the menu. A non-empty rule overrides the configured win rule.
func factory(id, title string, rule sim.WinRule) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadInvaders(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Preset)
		if err != nil {
			return nil, err
		}
		config.ApplyInvadersPreset(&cfg, preset)
		if rule != "" {
			cfg.Win.Rule = string(rule)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return New(id, title, cfg, opts.Logger), nil
	}
}
