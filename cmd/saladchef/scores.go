package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/salad-chef/internal/storage"
)

var (
	flagRounds int
	flagReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the ten high score slots, per-mode statistics and the most
recent rounds.

Examples:
  saladchef scores
  saladchef scores --rounds 20
  saladchef scores --db ./scores.db
  saladchef scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Number of recent rounds to list")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Empty the high score table before showing it")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting scores: %v\n", err)
			return
		}
		fmt.Println("High scores reset.")
		fmt.Println()
	}

	scores, err := store.TopScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Println("High Scores - Salad Chef")
	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := ""
		if entry.Name != storage.EmptyName {
			dateStr = entry.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-10s  %-6d  %s\n", i+1, entry.Name, entry.Score, dateStr)
	}

	// Show best
	if best, err := store.HighScore(); err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}

	// Per-mode statistics
	fmt.Println()
	for _, mode := range []string{"versus", "solo"} {
		stats, err := store.ModeStats(mode)
		if err != nil || stats.Rounds == 0 {
			continue
		}
		fmt.Printf("%-7s %d rounds, best %d, Player1 won %d, Player2 won %d\n",
			mode+":", stats.Rounds, stats.BestScore, stats.Player1Wins, stats.Player2Wins)
	}

	if flagRounds <= 0 {
		return
	}
	rounds, err := store.RecentRounds(flagRounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}
	if len(rounds) == 0 {
		fmt.Println("No rounds played yet.")
		fmt.Println()
		fmt.Println("Play 'saladchef play' to set the first high score!")
		return
	}

	fmt.Println()
	fmt.Println("Recent rounds:")
	for _, r := range rounds {
		winner := r.Winner
		if winner == "" {
			winner = "nobody"
		}
		fmt.Printf("  %s  %-6s  %4d - %-4d  %-8s  %ds\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, r.Player1Score, r.Player2Score, winner, r.Duration)
	}
}
