package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the built-in game config as YAML. Save it to
~/.asteroids/configs/asteroids.yaml or pass it with --config to tune the game.

With --resolved, prints the config the game would actually use after
applying --config and --difficulty.

Examples:
  asteroids config > ~/.asteroids/configs/asteroids.yaml
  asteroids config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective config instead of the defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigResolved {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyAsteroidsPreset(&cfg, config.ParsePreset(flagDifficulty))

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
