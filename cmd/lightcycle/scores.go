package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the match history",
	Long: `Display the most recent matches and the overall record.

Examples:
  lightcycle scores
  lightcycle scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of matches to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'lightcycle play' to ride the first one!")
		return
	}

	fmt.Printf("  %-18s  %-7s  %-10s  %-7s  %s\n", "When", "Riders", "Winner", "Ticks", "Length")
	fmt.Printf("  %-18s  %-7s  %-10s  %-7s  %s\n", "----", "------", "------", "-----", "------")

	for _, m := range matches {
		winner := "draw"
		switch {
		case m.WinnerID == arena.ControlledID:
			winner = "you"
		case m.WinnerID > 0:
			winner = fmt.Sprintf("rider %d", m.WinnerID)
		}
		length := (time.Duration(m.DurationMs) * time.Millisecond).Round(time.Second)
		fmt.Printf("  %-18s  %-7d  %-10s  %-7d  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.RiderCount, winner, m.Ticks, length)
	}

	stats, err := store.Stats()
	if err == nil && stats.Total > 0 {
		fmt.Println()
		fmt.Printf("Record: %d matches, %d wins, %d losses, %d draws\n",
			stats.Total, stats.PlayerWins, stats.BotWins, stats.Draws)
	}
}
