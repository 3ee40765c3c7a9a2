package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var flagHistory bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the leaderboard, or the most recent games with --history.

Examples:
  tetris scores
  tetris scores --history
  tetris scores --leaderboard ./scores.txt`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "Show recent games and totals instead")
}

func runScores(cmd *cobra.Command, args []string) {
	a, err := setup(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if flagHistory {
		printHistory(a)
		return
	}

	entries := a.scores.Entries()
	fmt.Println("Leaderboard")
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return
	}
	for i, e := range entries {
		fmt.Printf("#%02d    %3s    %05d\n", i+1, e.Name, e.Score)
	}
}

func printHistory(a *app) {
	if a.store == nil {
		fmt.Fprintln(os.Stderr, "Error: game history is not available")
		os.Exit(1)
	}

	games, err := a.store.RecentGames(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Games")
	fmt.Println()
	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-10s  %7s  %5s  %3s  %8s  %s\n", "Date", "Player", "Score", "Lines", "Lvl", "Time", "Difficulty")
	fmt.Printf("  %-16s  %-10s  %7s  %5s  %3s  %8s  %s\n", "----", "------", "-----", "-----", "---", "----", "----------")
	for _, g := range games {
		fmt.Printf("  %-16s  %-10s  %7d  %5d  %3d  %8s  %s\n",
			g.CreatedAt.Format("2006-01-02 15:04"),
			g.Player,
			g.Score,
			g.Lines,
			g.Level,
			g.Duration.Round(time.Second),
			g.Difficulty,
		)
	}

	stats, err := a.store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.0f  Total lines: %d\n",
		stats.Games, stats.BestScore, stats.AvgScore, stats.TotalLines)
	if best, err := a.store.TopGames(1); err == nil && len(best) == 1 {
		fmt.Printf("Best game: %d by %s on %s\n", best[0].Score, best[0].Player, best[0].CreatedAt.Format("2006-01-02"))
	}
}
