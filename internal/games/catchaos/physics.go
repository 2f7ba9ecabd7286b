package catchaos

import (
	"github.com/vovakirdan/cat-arcade/internal/config"
	"github.com/vovakirdan/cat-arcade/internal/core"
)

// Integrate advances the actor by one tick:
// horizontal intent, gravity, position, horizontal clamp, ground snap.
func Integrate(a Actor, in Intent, cfg config.CatConfig) Actor {
	// Held direction sets speed outright; otherwise slide to a stop
	switch {
	case in.Left:
		a.VX = -cfg.Actor.MoveSpeed
	case in.Right:
		a.VX = cfg.Actor.MoveSpeed
	default:
		a.VX *= cfg.Actor.Friction
	}

	a.VY += cfg.Physics.Gravity

	a.X += a.VX
	a.Y += a.VY

	// Clamp position only; velocity is left as is
	a.X = core.ClampF(a.X, 0, cfg.World.Width-a.Width)

	groundY := cfg.World.GroundY(a.Height)
	if a.Y >= groundY {
		a.Y = groundY
		a.VY = 0
		a.Grounded = true
	} else {
		a.Grounded = false
	}

	return a
}

// ApplyJump launches a grounded actor. Airborne actors are returned unchanged.
func ApplyJump(a Actor, cfg config.PhysicsConfig) Actor {
	if !a.Grounded {
		return a
	}
	a.VY = cfg.JumpVelocity
	a.Grounded = false
	return a
}
