package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
	flagScoresYes   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores and stats for a mode (default: asteroids).

Examples:
  asteroids scores
  asteroids scores asteroids_endless --limit 20
  asteroids scores --limit 0          # every recorded run
  asteroids scores --all              # summary of all modes
  asteroids scores asteroids --clear --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every mode")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresYes, "yes", false, "Confirm --clear")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagScoresAll {
		return runScoresSummary()
	}

	gameID := asteroids.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 'asteroids list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if !flagScoresYes {
			return fmt.Errorf("refusing to clear %s scores without --yes", gameID)
		}
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all %s scores.\n", info.Title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresLimit == 0 {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'asteroids play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-4s  %s\n", "Rank", "Score", "Wave", "When")
	fmt.Printf("  %-4s  %-10s  %-4s  %s\n", "----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %-4d  %s\n", i+1, humanize.Comma(int64(entry.Score)), entry.Wave, humanize.Time(entry.CreatedAt))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		logger.Warn("could not load stats", "error", err)
		return nil
	}

	fmt.Println()
	fmt.Printf("Games played: %d\n", stats.GamesCount)
	fmt.Printf("Best: %s  Average: %s  Best wave: %d\n",
		humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.AvgScore)), stats.BestWave)
	return nil
}

// runScoresSummary prints one line of stats per played mode.
func runScoresSummary() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	fmt.Printf("  %-20s  %6s  %10s  %10s  %4s  %s\n", "Mode", "Games", "Best", "Average", "Wave", "Last played")
	for _, m := range registry.List() {
		st, ok := all[m.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-20s  %6d  %10s  %10s  %4d  %s\n", m.Title, st.GamesCount,
			humanize.Comma(int64(st.HighScore)), humanize.Comma(int64(st.AvgScore)),
			st.BestWave, humanize.Time(st.LastPlayed))
	}
	return nil
}
