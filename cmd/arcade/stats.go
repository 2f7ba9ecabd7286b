package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-arcade/internal/platform/tui"
	"github.com/vovakirdan/cat-arcade/internal/registry"
	"github.com/vovakirdan/cat-arcade/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show play statistics",
	Long: `Display aggregated statistics: sessions started, games played, best,
average and total score, and total and average play time.

Without a game ID, every game that has been played is listed.

Examples:
  arcade stats
  arcade stats clumsy-cat`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(_ *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var stats []*storage.GameStats
	if len(args) == 1 {
		st, err := store.GetGameStats(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			return
		}
		stats = append(stats, st)
	} else {
		all, err := store.GetAllGamesStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			return
		}
		for _, st := range all {
			stats = append(stats, st)
		}
		sort.Slice(stats, func(i, j int) bool { return stats[i].GameID < stats[j].GameID })
	}

	printStats(os.Stdout, stats)
}

func printStats(w io.Writer, stats []*storage.GameStats) {
	if len(stats) == 0 || (len(stats) == 1 && stats[0].GamesPlayed == 0 && stats[0].GamesStarted == 0) {
		fmt.Fprintln(w, "No games played yet.")
		return
	}

	const row = "  %-12s  %-7s  %-6s  %-8s  %-8s  %-10s  %-10s  %-9s  %s\n"
	fmt.Fprintf(w, row, "Game", "Started", "Played", "Best", "Average", "Total", "Play time", "Avg time", "Last played")
	fmt.Fprintf(w, row, "----", "-------", "------", "----", "-------", "-----", "---------", "--------", "-----------")

	for _, st := range stats {
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-12s  %-7d  %-6d  %-8d  %-8.1f  %-10d  %-10s  %-9s  %s\n",
			st.GameID, st.GamesStarted, st.GamesPlayed, st.HighScore, st.AvgScore, st.TotalScore,
			tui.FormatPlayTime(st.TotalPlayTime), tui.FormatPlayTime(st.AvgPlayTime), last)
	}
}
