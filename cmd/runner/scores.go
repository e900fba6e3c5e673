package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-runner/internal/config"
	"github.com/vovakirdan/square-runner/internal/platform/tui"
	"github.com/vovakirdan/square-runner/internal/runner"
	"github.com/vovakirdan/square-runner/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores for a difficulty preset.

Examples:
  runner scores
  runner scores --difficulty hard
  runner scores --all
  runner scores --clear
  runner scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run across difficulties")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "clear", "tui")
}

func runScores(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		logger.Fatal("invalid difficulty", "error", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "error", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(runner.GameID); err != nil {
			logger.Error("cannot clear scores", "error", err)
			return
		}
		fmt.Println("All Square Runner scores cleared.")
		return
	}

	if flagScoresAll {
		printAllScores(store)
		return
	}

	if flagScoresTUI {
		err := tui.RunScoreboard(store, tui.ScoreboardConfig{
			GameID: runner.GameID,
			Title:  "Square Runner",
			Mode:   preset,
			Width:  80,
			Height: 24,
		})
		if err != nil {
			logger.Error("scoreboard failed", "error", err)
		}
		return
	}

	scores, err := store.TopScores(runner.GameID, string(preset), flagScoresLimit)
	if err != nil {
		logger.Error("cannot retrieve scores", "error", err)
		return
	}

	fmt.Printf("High Scores - Square Runner (%s)\n", preset)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play --difficulty %s' to set the first high score!\n", preset)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-16s  %s\n", i+1, entry.Score, entry.Player, dateStr)
	}

	stats, err := store.GetGameStats(runner.GameID, string(preset))
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

// printAllScores lists every run, best first, with its difficulty.
func printAllScores(store *storage.Store) {
	scores, err := store.AllScores(runner.GameID)
	if err != nil {
		logger.Error("cannot retrieve scores", "error", err)
		return
	}

	fmt.Println("All Runs - Square Runner")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-16s  %s\n", "Rank", "Score", "Mode", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-16s  %s\n", "----", "-----", "----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %-16s  %s\n", i+1, entry.Score, entry.Mode, entry.Player, dateStr)
	}
}
