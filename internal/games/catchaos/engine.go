// Package catchaos implements Clumsy Cat Chaos, a side-scrolling obstacle game.
// The cat runs and jumps along the ground while household hazards slide in
// from the right; dodged hazards score, hits cost one of three lives.
//
// The engine (Engine, Session and the tick pipeline) has no dependency on any
// terminal library. Game adapts it to the arcade registry.
package catchaos

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cat-arcade/internal/config"
	"github.com/vovakirdan/cat-arcade/internal/core"
)

// GameOverFunc receives the final score when a session ends.
type GameOverFunc func(finalScore int)

// Option configures an Engine.
type Option func(*Engine)

// WithGameOver registers the game-over callback.
func WithGameOver(fn GameOverFunc) Option {
	return func(e *Engine) {
		e.onGameOver = fn
	}
}

// WithSeed seeds the archetype draw.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithPicker replaces the random archetype draw.
func WithPicker(p Picker) Option {
	return func(e *Engine) {
		e.picker = p
	}
}

// Engine runs sessions through idle, playing and gameover.
// It is not safe for concurrent use; ticks and key events must come from
// one goroutine.
type Engine struct {
	cfg     config.CatConfig
	curve   *config.LevelCurve
	spawner *Spawner
	sampler Sampler

	phase    core.Phase
	session  Session
	last     Events
	reported bool

	seed       int64
	rng        *rand.Rand
	picker     Picker
	onGameOver GameOverFunc
}

// NewEngine creates an idle engine.
func NewEngine(cfg config.CatConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg,
		curve: config.NewLevelCurve(cfg),
		phase: core.PhaseIdle,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.picker == nil {
		e.rng = rand.New(rand.NewSource(e.seed))
		e.picker = e.rng.Intn
	}
	e.spawner = NewSpawner(cfg, e.curve, e.picker)
	e.session = NewSession(cfg, 0)

	return e
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() core.Phase {
	return e.phase
}

// Session returns a copy of the current session.
func (e *Engine) Session() Session {
	return e.session.Clone()
}

// Start begins a new session from idle. It reports whether a session started.
func (e *Engine) Start(now time.Duration) bool {
	if e.phase != core.PhaseIdle {
		return false
	}
	e.begin(now)
	return true
}

// Retry replaces a finished session with a fresh one.
func (e *Engine) Retry(now time.Duration) bool {
	if e.phase != core.PhaseGameOver {
		return false
	}
	e.begin(now)
	return true
}

// Exit abandons the current session and returns to idle.
// Abandoning a running session does not report a game over.
func (e *Engine) Exit() {
	e.phase = core.PhaseIdle
	e.session = NewSession(e.cfg, 0)
	e.last = Events{}
	e.sampler.Reset()
}

func (e *Engine) begin(now time.Duration) {
	e.session = NewSession(e.cfg, now)
	e.last = Events{}
	e.reported = false
	e.sampler.Reset()
	e.phase = core.PhasePlaying
}

// Tick advances the running session by one step.
// Outside the playing phase it changes nothing.
func (e *Engine) Tick(now time.Duration) Snapshot {
	if e.phase != core.PhasePlaying {
		return e.Snapshot()
	}

	s, ev := e.step(e.session, e.sampler.Sample(), now)
	e.session = s
	e.last = ev

	if ev.GameOver {
		e.phase = core.PhaseGameOver
		if !e.reported {
			e.reported = true
			if e.onGameOver != nil {
				e.onGameOver(s.Score)
			}
		}
	}

	return e.Snapshot()
}

// step is the pure tick pipeline: jump, integrate, spawn, resolve.
func (e *Engine) step(s Session, in Intent, now time.Duration) (Session, Events) {
	if in.Jump {
		s.Actor = ApplyJump(s.Actor, e.cfg.Physics)
	}
	s.Actor = Integrate(s.Actor, in, e.cfg)

	s, spawned := e.spawner.Update(s, now)

	s, ev := Resolve(s, e.curve)
	ev.Spawned = spawned

	return s, ev
}

// JumpRequested queues a jump for the next tick.
func (e *Engine) JumpRequested() {
	if e.phase != core.PhasePlaying {
		return
	}
	e.sampler.RequestJump()
}

// SetMoveIntent holds or releases a direction.
// Presses outside the playing phase are ignored; releases always apply.
func (e *Engine) SetMoveIntent(d Direction, held bool) {
	if held && e.phase != core.PhasePlaying {
		return
	}
	e.sampler.SetMove(d, held)
}

// KeyDown forwards a raw key press to the sampler.
func (e *Engine) KeyDown(k Key) {
	if e.phase != core.PhasePlaying {
		if k == KeyJump {
			e.sampler.noteJumpHeld()
		}
		return
	}
	e.sampler.KeyDown(k)
}

// KeyUp forwards a raw key release to the sampler.
func (e *Engine) KeyUp(k Key) {
	e.sampler.KeyUp(k)
}

// Snapshot returns the state the presentation layer draws.
func (e *Engine) Snapshot() Snapshot {
	return newSnapshot(e.phase, e.session, e.last)
}
