package catchaos

import (
	"time"

	"github.com/vovakirdan/cat-arcade/internal/config"
)

// Picker chooses an archetype index in [0, n).
type Picker func(n int) int

// Spawner creates hazards on a level-dependent cadence.
type Spawner struct {
	catalog []Archetype
	world   config.WorldConfig
	curve   *config.LevelCurve
	pick    Picker
}

// NewSpawner creates a spawner for the given config. pick must not be nil.
func NewSpawner(cfg config.CatConfig, curve *config.LevelCurve, pick Picker) *Spawner {
	return &Spawner{
		catalog: Catalog(cfg.Archetypes),
		world:   cfg.World,
		curve:   curve,
		pick:    pick,
	}
}

// Due reports whether a hazard should spawn at now.
// The first tick of a session always spawns.
func (sp *Spawner) Due(s Session, now time.Duration) bool {
	if !s.Spawned {
		return true
	}
	return now-s.LastSpawn > sp.curve.SpawnInterval(s.Level)
}

// NewHazard creates a hazard of a random archetype just past the right edge.
func (sp *Spawner) NewHazard(level int) Hazard {
	if len(sp.catalog) == 0 {
		return Hazard{}
	}

	i := sp.pick(len(sp.catalog))
	if i < 0 || i >= len(sp.catalog) {
		i = 0
	}
	a := sp.catalog[i]

	return Hazard{
		X:         sp.world.Width,
		Y:         sp.world.GroundY(a.Height),
		VX:        sp.curve.HazardSpeed(level),
		Width:     a.Width,
		Height:    a.Height,
		Archetype: a.Tag,
		Points:    a.Points,
	}
}

// Update appends a new hazard to the session when one is due.
// The returned session never shares its hazard slice with s.
func (sp *Spawner) Update(s Session, now time.Duration) (Session, bool) {
	if len(sp.catalog) == 0 || !sp.Due(s, now) {
		return s, false
	}

	hazards := make([]Hazard, len(s.Hazards), len(s.Hazards)+1)
	copy(hazards, s.Hazards)
	s.Hazards = append(hazards, sp.NewHazard(s.Level))
	s.LastSpawn = now
	s.Spawned = true

	return s, true
}
