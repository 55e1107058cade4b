package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/replay"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var flagReplayLimit int

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "List, verify and watch recorded games",
	Long: `Replays are recorded with 'asteroids play --record'. A replay stores the
seed, the game config and every tick's input, so the game can be re-run
exactly. Verification re-runs it headless and compares the final state
checksum with the recorded one.

Examples:
  asteroids replay list
  asteroids replay verify ~/.asteroids/replays/<id>.cbor
  asteroids replay watch <id>`,
}

var replayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent replays",
	Args:  cobra.NoArgs,
	RunE:  runReplayList,
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify <file|id>",
	Short: "Re-run a replay and check its checksum",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplayVerify,
}

var replayWatchCmd = &cobra.Command{
	Use:   "watch <file|id>",
	Short: "Watch a replay",
	Long: `Play back a recorded game in the terminal.

Controls:
  Space/P      - Pause
  +/Right      - Faster
  -/Left       - Slower
  Q/Esc        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runReplayWatch,
}

func init() {
	replayListCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Number of replays to show")

	replayCmd.AddCommand(replayListCmd)
	replayCmd.AddCommand(replayVerifyCmd)
	replayCmd.AddCommand(replayWatchCmd)
}

func runReplayList(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	entries, err := store.RecentReplays(flagReplayLimit)
	if err != nil {
		return fmt.Errorf("retrieving replays: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Run 'asteroids play --record' to record one.")
		return nil
	}

	fmt.Printf("  %-36s  %-18s  %-8s  %-8s  %s\n", "ID", "Mode", "Score", "Ticks", "When")
	for _, e := range entries {
		fmt.Printf("  %-36s  %-18s  %-8s  %-8s  %s\n",
			e.ReplayID, e.GameID, humanize.Comma(int64(e.Score)), humanize.Comma(int64(e.Ticks)), humanize.Time(e.CreatedAt))
		fmt.Printf("    %s\n", e.Path)
	}
	return nil
}

// loadReplay loads a replay from a file path, or by ID through the replay index.
func loadReplay(ref string) (*replay.File, error) {
	path, err := replay.ExpandPath(ref)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr == nil {
		return replay.Load(path)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	entry, err := store.ReplayByID(ref)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("no replay file or ID %q", ref)
	}
	return replay.Load(entry.Path)
}

func runReplayVerify(_ *cobra.Command, args []string) error {
	f, err := loadReplay(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Replay %s (%s)\n", f.ID, f.GameID)
	fmt.Printf("  seed %d, %s ticks at %d Hz (%s)\n",
		f.Seed, humanize.Comma(int64(f.Ticks())), f.TickRate, f.Duration().Round(time.Millisecond))

	res, err := replay.Verify(f)
	switch {
	case errors.Is(err, replay.ErrChecksum):
		fmt.Printf("  FAILED: %v\n", err)
		return err
	case err != nil:
		return err
	}

	fmt.Printf("  final score %s, checksum %016x\n", humanize.Comma(int64(res.State.Score)), res.Checksum)
	fmt.Println("  OK")
	return nil
}

func runReplayWatch(_ *cobra.Command, args []string) error {
	f, err := loadReplay(args[0])
	if err != nil {
		return err
	}
	return tui.RunWatch(f, runtimeConfig())
}
