package config

import "time"

// LevelCurve derives per-level game parameters from the spawner and scoring config.
type LevelCurve struct {
	spawner SpawnerConfig
	scoring ScoringConfig
}

// NewLevelCurve creates a level curve for the given config.
func NewLevelCurve(cfg CatConfig) *LevelCurve {
	return &LevelCurve{
		spawner: cfg.Spawner,
		scoring: cfg.Scoring,
	}
}

// SpawnInterval returns the minimum gap between spawns at the given level:
// max(min, base - level*decay).
func (c *LevelCurve) SpawnInterval(level int) time.Duration {
	ms := c.spawner.BaseIntervalMs - level*c.spawner.DecayPerLevelMs
	if ms < c.spawner.MinIntervalMs {
		ms = c.spawner.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// HazardSpeed returns the signed horizontal velocity of hazards spawned at the level.
func (c *LevelCurve) HazardSpeed(level int) float64 {
	return c.spawner.BaseHazardSpeed + float64(level)*c.spawner.SpeedPerLevel
}

// LevelUpThreshold returns the score that must be exceeded to leave the level.
func (c *LevelCurve) LevelUpThreshold(level int) int {
	return level * c.scoring.LevelUpPerLevel
}
