// asteroids is a terminal Asteroids game.
//
// Usage:
//
//	asteroids list                    - List game modes
//	asteroids play [mode]             - Play a mode (default: asteroids)
//	asteroids menu                    - Pick a mode interactively
//	asteroids serve                   - Start SSH server for remote play
//	asteroids scores [mode]           - Show high scores
//	asteroids replay list             - List recorded replays
//	asteroids replay verify <file>    - Re-run a replay and check its checksum
//	asteroids replay watch <file>     - Watch a replay
//	asteroids config                  - Print the game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.asteroids/scores.db)
//	--debug              - Draw hitboxes and bullet counts
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"

	// Register game modes
	_ "github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagDebug    bool
	flagLogLevel string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "asteroids",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids in your terminal",
	Long: `Fly a ship around a wrapping field, shoot the drifting rocks and
don't let them touch you.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - List, verify and watch recorded games
  config   - Print the game config YAML

Examples:
  asteroids play
  asteroids play asteroids_endless --difficulty hard
  asteroids play --record --seed 42
  asteroids menu
  asteroids serve --ssh :2222
  asteroids replay verify ~/.asteroids/replays/<id>.cbor`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw hitboxes and debug counters")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from global flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", err)
	}

	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Debug = flagDebug
	return cfg
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
