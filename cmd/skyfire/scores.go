package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfire/internal/config"
	"github.com/vovakirdan/skyfire/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a difficulty",
	Long: `Display the top 10 high scores for a difficulty mode.
Without an argument the --difficulty preset is shown.

Examples:
  skyfire scores
  skyfire scores hard
  skyfire scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	mode := string(preset)
	if len(args) > 0 {
		mode = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		n, err := store.ClearScores(mode)
		if err != nil {
			return err
		}
		logger.Info("scores cleared", "mode", mode, "count", n)
		return nil
	}

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - Skyfire (%s)\n\n", mode)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'skyfire play --difficulty %s' to set the first high score!\n", mode)
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-12s  %s\n", "Rank", "Score", "Time", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-12s  %s\n", "----", "-----", "----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-6s  %-12s  %s\n",
			i+1, entry.Score, clock(entry.ElapsedSecs), player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d   Runs: %d   Average: %.0f   Longest: %s\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, clock(stats.LongestRun))
	return nil
}

func clock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
