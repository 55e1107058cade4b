package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  S            - Scoreboard
  Q            - Quit

The play flags --config, --difficulty, --record and --hold-ms apply here too.

Examples:
  asteroids menu
  asteroids menu --fps 30
  asteroids menu --record`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	applyGameFlags(logger)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	fixedSeed := cfg.Seed != 0

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("creating game", "game", menuResult.GameID, "error", err)
			continue
		}

		if !fixedSeed {
			cfg.Seed = time.Now().UnixNano()
		}

		res, err := tui.Run(game, store, cfg, modelOptions(cfg.TickRate)...)
		if err != nil {
			return err
		}
		if res.ReplayErr != nil {
			logger.Error("replay was not saved", "error", res.ReplayErr)
		}
		if !res.BackToMenu {
			reportRun(res)
			return nil
		}
	}
}
