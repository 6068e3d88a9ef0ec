package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: invaders).

Controls:
  Arrows/WASD/HJKL - Move
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Ctrl+Y           - Copy the screen to the clipboard
  Esc/B            - Back to menu
  Q/Ctrl+C         - Quit

Presets:
  easy   - Fewer, smaller invaders, slower trickle
  normal - Values from the config file
  hard   - Crowded, fast arena

Examples:
  invaders play
  invaders play invaders_growth
  invaders play --preset hard --seed 42
  invaders play --config ./my-invaders.yaml --log-file play.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file (the terminal is busy)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := invaders.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'invaders list' to see available games", gameID)
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, gameOptions(logger))
	if err != nil {
		return err
	}

	res, err := tui.Run(game, runtimeConfig(), logger)
	if err != nil {
		return err
	}
	logger.Info("session ended", "game", gameID, "score", res.State.Score, "won", res.State.Won)
	return nil
}

// runtimeConfig reads the terminal size and applies the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playLogger returns the logger used while the TUI owns the terminal.
// Without --log-file everything is discarded.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	// Config warnings raised by game factories go to the same file
	log.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}
