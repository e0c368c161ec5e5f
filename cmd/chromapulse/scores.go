package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromapulse/internal/leaderboard"
	"github.com/vovakirdan/chromapulse/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and recent runs",
	Long: `Display the top 10 leaderboard, the most recent runs and lifetime stats.

Examples:
  chromapulse scores
  chromapulse scores --recent 5
  chromapulse scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries := leaderboard.NewStore(store, nil).Entries()

	fmt.Println("High Scores - ChromaPulse")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'chromapulse play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "Rank", "Name", "Score", "Combo", "Date")
		fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "----", "----", "-----", "-----", "----")
		for i, e := range entries {
			fmt.Printf("  %-4d  %-16s  %-8d  %-6d  %s\n", i+1, e.Name, e.Score, e.MaxCombo, e.Date)
		}
	}

	runs, err := store.RecentRuns(flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent runs:")
		fmt.Println()
		fmt.Printf("  %-16s  %-8s  %-6s  %-5s  %s\n", "Ended", "Score", "Combo", "Acc", "Time")
		fmt.Printf("  %-16s  %-8s  %-6s  %-5s  %s\n", "-----", "-----", "-----", "---", "----")
		for _, r := range runs {
			fmt.Printf("  %-16s  %-8d  %-6d  %-5s  %s\n",
				r.EndedAt.Format("2006-01-02 15:04"),
				r.Score,
				r.MaxCombo,
				fmt.Sprintf("%d%%", r.Accuracy()),
				r.Duration.Round(time.Second),
			)
		}
	}

	stats, err := store.Stats()
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f  Best combo: %d  Total hits: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestCombo, stats.TotalHits)
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
