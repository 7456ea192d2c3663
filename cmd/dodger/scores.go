package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dodger/internal/registry"
	"github.com/vovakirdan/lane-dodger/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <track>",
	Short: "Show high scores for a track",
	Long: `Display the best runs for the specified track.

Examples:
  dodger scores corridor
  dodger scores topdown --limit 25
  dodger scores topdown --all
  dodger scores corridor --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored runs for the track")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every stored run instead of the top --limit")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown track %q (run 'dodger list' to see available tracks)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", game.Title())
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dodger play %s' to set the first high score!\n", gameID)
		return nil
	}

	printRuns(os.Stdout, scores)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Longest: %.1fs   Total time: %.0fs\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LongestRun, stats.TotalPlayed)
	return nil
}

// printRuns writes one ranked line per run.
func printRuns(w io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %-6s  %s\n", "Rank", "Score", "Time", "Peak", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %-6s  %s\n", "----", "-----", "----", "----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-8s  %-6s  %s\n", i+1, e.Score,
			fmt.Sprintf("%.1fs", e.ElapsedSecs),
			fmt.Sprintf("%.2fx", e.PeakMultiplier),
			e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
