package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-arcade/internal/config"
	"github.com/vovakirdan/cat-arcade/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default configuration",
	Long: `Print the built-in YAML configuration of a game.

Save it as ~/.arcade/configs/cat.yaml (or pass it with --config) and edit
it to tune physics, spawning and scoring.

Examples:
  arcade config clumsy-cat > ~/.arcade/configs/cat.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: %q has no configuration\n", gameID)
		os.Exit(1)
	}
	_, _ = os.Stdout.Write(data)
}
