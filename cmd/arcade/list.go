package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-arcade/internal/registry"
	"github.com/vovakirdan/cat-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with its best stored score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are optional; a missing database just leaves the column empty
	best := make(map[string]int, len(games))
	if store, err := storage.Open(flagDBPath); err == nil {
		for _, g := range games {
			if score, err := store.HighScore(g.ID); err == nil {
				best[g.ID] = score
			}
		}
		_ = store.Close()
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Best")
	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "--", titleWidth, "-----", "----")

	for _, g := range games {
		bestStr := "-"
		if score := best[g.ID]; score > 0 {
			bestStr = fmt.Sprint(score)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", idWidth, g.ID, titleWidth, g.Title, bestStr)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
