package config

import (
	"errors"
	"fmt"
)

// MaxLives is the largest number of lives a session may start with.
// The HUD has room for exactly three hearts.
const MaxLives = 3

// Validate reports every inconsistent setting in the config.
func (c CatConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)
	check(c.World.GroundHeight >= 0 && c.World.GroundHeight < c.World.Height,
		"world.ground_height must be in [0, height), got %v", c.World.GroundHeight)

	check(c.Actor.Width > 0 && c.Actor.Width <= c.World.Width,
		"actor.width must be in (0, world.width], got %v", c.Actor.Width)
	check(c.Actor.Height > 0 && c.Actor.Height <= c.World.Height-c.World.GroundHeight,
		"actor.height must fit above the ground, got %v", c.Actor.Height)
	check(c.Actor.MoveSpeed >= 0, "actor.move_speed must not be negative, got %v", c.Actor.MoveSpeed)
	check(c.Actor.Friction >= 0 && c.Actor.Friction <= 1,
		"actor.friction must be in [0, 1], got %v", c.Actor.Friction)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpVelocity < 0, "physics.jump_velocity must be negative (upwards), got %v", c.Physics.JumpVelocity)

	check(c.Spawner.BaseIntervalMs > 0, "spawner.base_interval_ms must be positive, got %d", c.Spawner.BaseIntervalMs)
	check(c.Spawner.MinIntervalMs > 0 && c.Spawner.MinIntervalMs <= c.Spawner.BaseIntervalMs,
		"spawner.min_interval_ms must be in (0, base_interval_ms], got %d", c.Spawner.MinIntervalMs)
	check(c.Spawner.DecayPerLevelMs >= 0, "spawner.decay_per_level_ms must not be negative, got %d", c.Spawner.DecayPerLevelMs)
	check(c.Spawner.BaseHazardSpeed < 0, "spawner.base_hazard_speed must be negative (leftwards), got %v", c.Spawner.BaseHazardSpeed)
	check(c.Spawner.SpeedPerLevel <= 0, "spawner.speed_per_level must not be positive, got %v", c.Spawner.SpeedPerLevel)

	check(c.Scoring.StartLives >= 1 && c.Scoring.StartLives <= MaxLives,
		"scoring.start_lives must be in [1, %d], got %d", MaxLives, c.Scoring.StartLives)
	check(c.Scoring.StartLevel >= 1, "scoring.start_level must be at least 1, got %d", c.Scoring.StartLevel)
	check(c.Scoring.LevelUpPerLevel > 0, "scoring.level_up_per_level must be positive, got %d", c.Scoring.LevelUpPerLevel)

	check(len(c.Archetypes) > 0, "archetypes must not be empty")
	for i, a := range c.Archetypes {
		check(a.Tag != "", "archetypes[%d].tag must not be empty", i)
		check(a.Width > 0 && a.Height > 0, "archetypes[%d] (%s) must have a positive size", i, a.Tag)
		check(a.Points >= 0, "archetypes[%d] (%s) points must not be negative, got %d", i, a.Tag, a.Points)
	}

	return errors.Join(errs...)
}
