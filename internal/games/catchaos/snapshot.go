package catchaos

import "github.com/vovakirdan/cat-arcade/internal/core"

// Snapshot is a read-only view of the engine after a tick.
// It shares no memory with the engine.
type Snapshot struct {
	Phase   core.Phase
	Score   int
	Level   int
	Lives   int
	Actor   Actor
	Hazards []Hazard
	Events  Events // What happened during the last tick
}

func newSnapshot(phase core.Phase, s Session, ev Events) Snapshot {
	ev.Passed = append([]Hazard(nil), ev.Passed...)
	return Snapshot{
		Phase:   phase,
		Score:   s.Score,
		Level:   s.Level,
		Lives:   s.Lives,
		Actor:   s.Actor,
		Hazards: append([]Hazard(nil), s.Hazards...),
		Events:  ev,
	}
}

// GameState converts the snapshot into the platform's status record.
func (s Snapshot) GameState() core.GameState {
	return core.GameState{
		Phase:    s.Phase,
		Score:    s.Score,
		Level:    s.Level,
		Lives:    s.Lives,
		GameOver: s.Phase == core.PhaseGameOver,
	}
}
