package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/games/catchaos"
	"github.com/vovakirdan/cat-arcade/internal/platform/tui"
	"github.com/vovakirdan/cat-arcade/internal/registry"
	"github.com/vovakirdan/cat-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHoldMS     int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move (hold)
  Space/Up/W       - Jump
  Enter            - Start
  R                - Retry (after game over)
  B/Esc            - Back
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Terminals do not report key releases, so a held key counts as released
once it has not repeated for --hold-ms milliseconds.

Difficulty options:
  easy   - Slower hazards and spawns
  normal - Default tuning
  hard   - Faster hazards and spawns
  fixed  - No progression, level 1 cadence and speed forever

Configuration files may be YAML or TOML (by extension).

Examples:
  arcade play clumsy-cat
  arcade play clumsy-cat --difficulty hard
  arcade play clumsy-cat --seed 42
  arcade play clumsy-cat --config ./my-cat.toml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagHoldMS, "hold-ms", int(tui.DefaultHoldTimeout/time.Millisecond), "Milliseconds before a held key counts as released")
}

// configureGames passes the game flags to the game packages before creation.
// A bad config file or difficulty name is reported before anything starts.
func configureGames(logger *log.Logger) error {
	catchaos.SetLogger(logger)
	if err := catchaos.SetConfigPath(flagConfig); err != nil {
		return err
	}
	return catchaos.SetDifficultyPreset(flagDifficulty)
}

// terminalConfig creates a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Failures degrade to a run without scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := configureGames(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, terminalConfig(), tui.Options{
		Store:       store,
		Logger:      logger,
		HoldTimeout: time.Duration(flagHoldMS) * time.Millisecond,
	})

	// Close store before potential exit
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
