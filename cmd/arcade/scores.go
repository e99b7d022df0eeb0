package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typing-arcade/internal/registry"
	"github.com/vovakirdan/typing-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show run history for a game",
	Long: `Display the most recent runs and overall statistics for the specified game.

Examples:
  arcade scores typing
  arcade scores typing_endless --limit 25`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Run History - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to start your history!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-5s  %-18s  %-7s  %-5s  %-8s  %-8s  %s\n",
		"Result", "Level", "Enemy", "Score", "Words", "Mistakes", "Time", "Date")
	fmt.Printf("  %-8s  %-5s  %-18s  %-7s  %-5s  %-8s  %-8s  %s\n",
		"------", "-----", "-----", "-----", "-----", "--------", "----", "----")

	for _, r := range runs {
		fmt.Printf("  %-8s  %-5d  %-18s  %-7d  %-5d  %-8d  %-8s  %s\n",
			r.Result, r.Level, r.Enemy, r.Score, r.Words, r.Mistakes,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Victories: %d  Best score: %d  Best level: %d  Average: %.0f\n",
		stats.GamesCount, stats.Victories, stats.HighScore, stats.BestLevel, stats.AvgScore)

	if best, err := store.BestRun(gameID); err == nil && best != nil {
		fmt.Printf("Best run: %s on level %d against %s (%d points)\n",
			best.Result, best.Level, best.Enemy, best.Score)
	}
}
