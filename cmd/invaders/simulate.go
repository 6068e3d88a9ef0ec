package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/headless"
	"github.com/vovakirdan/tui-invaders/internal/sim"
)

var (
	flagTicks    int
	flagWidth    float64
	flagHeight   float64
	flagInvaders int
	flagSteer    string
	flagRule     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a game headless and print a summary",
	Long: `Run the simulation without a terminal UI.

The arena size is given in simulation units. The same seed, config and
steering always produce the same result.

Steering:
  idle    - Never move
  greedy  - Run from nearby threats, otherwise chase the nearest prey

Examples:
  invaders simulate --seed 42
  invaders simulate --steer greedy --ticks 10000 --log-level debug
  invaders simulate --width 900 --height 600 --invaders 24 --rule growth`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to run (0 = until the game ends)")
	simulateCmd.Flags().Float64Var(&flagWidth, "width", 900, "Arena width in units")
	simulateCmd.Flags().Float64Var(&flagHeight, "height", 600, "Arena height in units")
	simulateCmd.Flags().IntVar(&flagInvaders, "invaders", -1, "Initial invaders (-1 = from config)")
	simulateCmd.Flags().StringVar(&flagSteer, "steer", "idle", "Steering policy: idle, greedy")
	simulateCmd.Flags().StringVar(&flagRule, "rule", "", "Win rule override: population, growth")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger := log.Default()

	steer, err := headless.ParseSteering(flagSteer)
	if err != nil {
		return err
	}

	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}
	config.ApplyInvadersPreset(&cfg, preset)
	if flagInvaders >= 0 {
		cfg.Invaders.Initial = flagInvaders
	}
	if flagRule != "" {
		cfg.Win.Rule = flagRule
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := sim.New(cfg.Sim(flagWidth, flagHeight, seed))
	if err != nil {
		return err
	}
	logger.Info("simulation started",
		"arena", fmt.Sprintf("%gx%g", flagWidth, flagHeight),
		"invaders", cfg.Invaders.Initial,
		"rule", s.Config().WinRule,
		"steer", flagSteer,
		"seed", seed)

	ctx, stop := shutdownContext(cmd.Context())
	defer stop()

	start := time.Now()
	sum := headless.Run(ctx, s, steer, flagTicks, logger)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "outcome:     %s\n", sum.State)
	fmt.Fprintf(out, "frames:      %d\n", sum.Frames)
	fmt.Fprintf(out, "eaten:       %d\n", sum.Eaten)
	fmt.Fprintf(out, "spawned:     %d\n", sum.Spawned)
	fmt.Fprintf(out, "invaders:    %d\n", sum.Invaders)
	fmt.Fprintf(out, "player size: %g\n", sum.PlayerSize)
	fmt.Fprintf(out, "seed:        %d\n", seed)
	if sum.Canceled {
		fmt.Fprintln(out, "(interrupted)")
	}

	logger.Debug("simulation finished", "elapsed", time.Since(start))
	if sum.Canceled {
		return context.Canceled
	}
	return nil
}

// shutdownContext is canceled by Ctrl+C or by a supervisor's SIGTERM.
func shutdownContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
