package catchaos

import "github.com/vovakirdan/cat-arcade/internal/config"

// Events summarises what happened during one tick.
type Events struct {
	Spawned  bool
	Hits     int      // Hazards that struck the actor
	Passed   []Hazard // Hazards that left the world and scored
	Points   int      // Score gained this tick
	LevelUp  bool
	GameOver bool
}

// Resolve moves every hazard and settles collisions and pass-throughs.
//
// Each hazard has exactly one outcome per tick, checked in this order:
// it hits the actor (one life lost, no points), it has left the world
// (points awarded), or it stays live. When the last life is lost the
// remaining hazards are carried over without being moved.
// The level rises at most once per tick.
func Resolve(s Session, curve *config.LevelCurve) (Session, Events) {
	var ev Events

	live := make([]Hazard, 0, len(s.Hazards))
	actor := s.Actor.Rect()

	for i, h := range s.Hazards {
		if ev.GameOver {
			live = append(live, s.Hazards[i:]...)
			break
		}

		h.X += h.VX

		switch {
		case actor.Overlaps(h.Rect()):
			ev.Hits++
			s.Lives--
			if s.Lives <= 0 {
				s.Lives = 0
				ev.GameOver = true
			}

		case h.OffScreen():
			s.Score += h.Points
			ev.Points += h.Points
			ev.Passed = append(ev.Passed, h)
			if !ev.LevelUp && s.Score > curve.LevelUpThreshold(s.Level) {
				s.Level++
				ev.LevelUp = true
			}

		default:
			live = append(live, h)
		}
	}

	s.Hazards = live
	return s, ev
}
