package catchaos

import (
	"time"

	"github.com/vovakirdan/cat-arcade/internal/config"
)

// Session is the complete simulation state of one run.
// It is passed by value through the tick pipeline and owned by the Engine.
type Session struct {
	Actor   Actor
	Hazards []Hazard // Live hazards in creation order

	// LastSpawn is the clock reading of the most recent spawn.
	// Spawned is false until the session's first hazard appears.
	LastSpawn time.Duration
	Spawned   bool

	Score int
	Level int
	Lives int
}

// NewSession creates a fresh session at the configured start values.
func NewSession(cfg config.CatConfig, now time.Duration) Session {
	return Session{
		Actor:     newActor(cfg.Actor),
		Hazards:   make([]Hazard, 0, 8),
		LastSpawn: now,
		Level:     cfg.Scoring.StartLevel,
		Lives:     cfg.Scoring.StartLives,
	}
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	c := s
	c.Hazards = append([]Hazard(nil), s.Hazards...)
	return c
}
