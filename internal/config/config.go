// Package config provides YAML/TOML game configuration loading and the
// level curve used by the arcade games.
package config

// CatConfig contains all tunables for Clumsy Cat Chaos.
// Every constant the engine uses lives here so tests can vary them.
type CatConfig struct {
	World      WorldConfig       `yaml:"world" toml:"world"`
	Actor      ActorConfig       `yaml:"actor" toml:"actor"`
	Physics    PhysicsConfig     `yaml:"physics" toml:"physics"`
	Spawner    SpawnerConfig     `yaml:"spawner" toml:"spawner"`
	Scoring    ScoringConfig     `yaml:"scoring" toml:"scoring"`
	Archetypes []ArchetypeConfig `yaml:"archetypes" toml:"archetypes"`
}

// WorldConfig defines the playfield in world units (pixels).
type WorldConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	GroundHeight float64 `yaml:"ground_height" toml:"ground_height"`
}

// ActorConfig defines the player-controlled cat.
type ActorConfig struct {
	SpawnX    float64 `yaml:"spawn_x" toml:"spawn_x"`
	SpawnY    float64 `yaml:"spawn_y" toml:"spawn_y"`
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	MoveSpeed float64 `yaml:"move_speed" toml:"move_speed"` // |vx| while a direction is held
	Friction  float64 `yaml:"friction" toml:"friction"`     // vx multiplier per tick when no direction is held
}

// PhysicsConfig defines per-tick forces.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity" toml:"jump_velocity"`
}

// SpawnerConfig defines hazard cadence and speed.
// Speeds are signed: negative values move hazards to the left.
type SpawnerConfig struct {
	BaseIntervalMs  int     `yaml:"base_interval_ms" toml:"base_interval_ms"`
	MinIntervalMs   int     `yaml:"min_interval_ms" toml:"min_interval_ms"`
	DecayPerLevelMs int     `yaml:"decay_per_level_ms" toml:"decay_per_level_ms"`
	BaseHazardSpeed float64 `yaml:"base_hazard_speed" toml:"base_hazard_speed"`
	SpeedPerLevel   float64 `yaml:"speed_per_level" toml:"speed_per_level"`
}

// ScoringConfig defines lives and level progression.
type ScoringConfig struct {
	StartLives      int `yaml:"start_lives" toml:"start_lives"`
	StartLevel      int `yaml:"start_level" toml:"start_level"`
	LevelUpPerLevel int `yaml:"level_up_per_level" toml:"level_up_per_level"` // score must exceed level * this
}

// ArchetypeConfig is one entry of the hazard catalog.
type ArchetypeConfig struct {
	Tag    string  `yaml:"tag" toml:"tag"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Points int     `yaml:"points" toml:"points"`
}

// GroundY returns the resting y of a box of the given height.
func (w WorldConfig) GroundY(height float64) float64 {
	return w.Height - w.GroundHeight - height
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
