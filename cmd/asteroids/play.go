package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/replay"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     bool
	flagHoldMS     int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: asteroids).

Modes:
  asteroids          - One field, clear it to win
  asteroids_endless  - Bigger waves until the ship is hit

Controls:
  Left/Right, A/D    - Rotate
  Up/W               - Thrust
  Space/F            - Fire
  P                  - Pause
  Enter/R            - Restart (after game over)
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Terminals only report key presses, so a key counts as held for
--hold-ms after its last press (or autorepeat).

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  asteroids play
  asteroids play asteroids_endless --difficulty hard
  asteroids play --record --seed 42
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagRecord, "record", false, "Record a replay to "+replay.DefaultDir)
	cmd.Flags().IntVar(&flagHoldMS, "hold-ms", int(tui.DefaultHoldDuration/time.Millisecond), "How long a key press counts as held (ms)")
}

// applyGameFlags pushes --config and --difficulty into the game package.
// A broken config is reported here; the game itself falls back to defaults.
func applyGameFlags(l *log.Logger) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		l.Warn("unknown difficulty preset, using config values", "difficulty", flagDifficulty)
	}
	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)
	if err := asteroids.CheckConfig(); err != nil {
		l.Warn("could not load game config, using defaults", "error", err)
	}
}

// modelOptions builds the game model options shared by play and menu.
func modelOptions(tickRate int) []tui.ModelOption {
	hold := time.Duration(flagHoldMS) * time.Millisecond
	opts := []tui.ModelOption{tui.WithHoldTicks(tui.HoldTicksFor(hold, tickRate))}
	if flagRecord {
		opts = append(opts, tui.WithRecording(replay.DefaultDir))
	}
	return opts
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := asteroids.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'asteroids list' to see available modes", gameID)
	}

	applyGameFlags(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	res, err := tui.Run(game, store, cfg, modelOptions(cfg.TickRate)...)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	reportRun(res)
	return nil
}

// reportRun prints the outcome once the alt screen is gone.
func reportRun(res tui.RunResult) {
	if res.State.Score > 0 {
		fmt.Printf("Score: %d (wave %d)\n", res.State.Score, res.State.Wave)
	}
	if res.ReplayErr != nil {
		logger.Error("replay was not saved", "error", res.ReplayErr)
	} else if res.ReplayPath != "" {
		fmt.Printf("Replay saved: %s\n", res.ReplayPath)
	}
}
