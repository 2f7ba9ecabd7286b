package config

import (
	_ "embed"
)

//go:embed defaults/cat.yaml
var defaultCatYAML []byte

// DefaultCatConfig returns the built-in Clumsy Cat Chaos configuration.
// It mirrors defaults/cat.yaml and is used when the embedded file cannot be parsed.
func DefaultCatConfig() CatConfig {
	return CatConfig{
		World: WorldConfig{
			Width:        800,
			Height:       500,
			GroundHeight: 60,
		},
		Actor: ActorConfig{
			SpawnX:    100,
			SpawnY:    300,
			Width:     40,
			Height:    40,
			MoveSpeed: 6,
			Friction:  0.8,
		},
		Physics: PhysicsConfig{
			Gravity:      0.6,
			JumpVelocity: -12,
		},
		Spawner: SpawnerConfig{
			BaseIntervalMs:  2000,
			MinIntervalMs:   800,
			DecayPerLevelMs: 200,
			BaseHazardSpeed: -4,
			SpeedPerLevel:   -0.5,
		},
		Scoring: ScoringConfig{
			StartLives:      3,
			StartLevel:      1,
			LevelUpPerLevel: 100,
		},
		Archetypes: []ArchetypeConfig{
			{Tag: "plant", Width: 40, Height: 60, Points: 10}, // tall and narrow
			{Tag: "box", Width: 50, Height: 50, Points: 15},
			{Tag: "ball", Width: 30, Height: 30, Points: 20}, // small and fast
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "clumsy-cat":
		return defaultCatYAML
	default:
		return nil
	}
}
