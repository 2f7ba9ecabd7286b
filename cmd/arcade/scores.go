package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-arcade/internal/registry"
	"github.com/vovakirdan/cat-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

--all lists every recorded score. --clear deletes the game's scores and
play sessions.

Examples:
  arcade scores clumsy-cat
  arcade scores clumsy-cat --limit 25
  arcade scores clumsy-cat --all
  arcade scores clumsy-cat --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and sessions for the game")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "clear")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", info.Title)
		return
	}

	scores, err := loadScores(store, gameID, flagScoresAll, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	printScores(os.Stdout, info.Title, gameID, scores)
}

// loadScores returns either the top limit scores or every score.
func loadScores(store *storage.Store, gameID string, all bool, limit int) ([]storage.ScoreEntry, error) {
	if all {
		return store.AllScores(gameID)
	}
	return store.TopScores(gameID, limit)
}

func printScores(w io.Writer, title, gameID string, scores []storage.ScoreEntry) {
	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", scores[0].Score)
}
