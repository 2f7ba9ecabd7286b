package catchaos

import (
	"github.com/vovakirdan/cat-arcade/internal/config"
	"github.com/vovakirdan/cat-arcade/internal/core"
)

// Actor is the player-controlled cat. Coordinates are world pixels with the
// origin at the top-left; Y grows downwards.
type Actor struct {
	X, Y     float64 // Top-left corner
	VX, VY   float64 // Velocity in pixels per tick
	Width    float64
	Height   float64
	Grounded bool // True iff the last integration snapped the actor to the ground
}

// Rect returns the actor's bounding box.
func (a Actor) Rect() core.RectF {
	return core.NewRectF(a.X, a.Y, a.Width, a.Height)
}

// newActor creates an actor at the configured spawn point, at rest.
func newActor(cfg config.ActorConfig) Actor {
	return Actor{
		X:      cfg.SpawnX,
		Y:      cfg.SpawnY,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Archetype is a fixed hazard template.
type Archetype struct {
	Tag    string // Visual tag, also used to pick a glyph
	Width  float64
	Height float64
	Points int // Awarded when a hazard of this kind is dodged
}

// Catalog builds the archetype table from config.
func Catalog(entries []config.ArchetypeConfig) []Archetype {
	catalog := make([]Archetype, len(entries))
	for i, e := range entries {
		catalog[i] = Archetype{
			Tag:    e.Tag,
			Width:  e.Width,
			Height: e.Height,
			Points: e.Points,
		}
	}
	return catalog
}

// Hazard is a spawned obstacle. Hazards only move horizontally.
type Hazard struct {
	X, Y      float64
	VX        float64 // Always negative: hazards travel leftwards
	Width     float64
	Height    float64
	Archetype string
	Points    int
}

// Rect returns the hazard's bounding box.
func (h Hazard) Rect() core.RectF {
	return core.NewRectF(h.X, h.Y, h.Width, h.Height)
}

// OffScreen reports whether the hazard's right edge has fully left the world.
func (h Hazard) OffScreen() bool {
	return h.X+h.Width < 0
}
