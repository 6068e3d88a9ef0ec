package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print configuration",
	Long: `Print the embedded default configuration, ready to be saved as
~/.arcade/configs/invaders.yaml and edited.

With --resolved, print the configuration a game would actually use after
the search order and --preset are applied.

Examples:
  invaders config > ~/.arcade/configs/invaders.yaml
  invaders config --resolved --preset hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagResolved {
		_, err := out.Write(config.DefaultYAML())
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

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
