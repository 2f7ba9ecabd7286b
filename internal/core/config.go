package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Smallest terminal a game is drawn on. Below this the platform skips ticks.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// SurfaceAvailable reports whether the screen is large enough to play on.
func (c RuntimeConfig) SurfaceAvailable() bool {
	return c.ScreenW >= MinScreenW && c.ScreenH >= MinScreenH
}

// Phase is the coarse lifecycle state of a game, as seen by the platform.
type Phase string

const (
	PhaseIdle     Phase = "idle"     // Waiting for the player to start
	PhasePlaying  Phase = "playing"  // Simulation is ticking
	PhaseGameOver Phase = "gameover" // Final score frozen
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int  // Current score
	Level    int  // Current level (1-based)
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Skipped is true when the tick did not advance the simulation
	// (not playing, or no render surface was available).
	Skipped bool
}
