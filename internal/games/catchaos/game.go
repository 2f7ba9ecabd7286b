package catchaos

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/cat-arcade/internal/config"
	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/registry"
)

// GameID is the identifier used for the CLI and score storage.
const GameID = "clumsy-cat"

// Level-up banner timing, in seconds.
const (
	bannerSlide = 0.5
	bannerHold  = 1.2
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var frameClock bool
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
// The file is loaded and validated right away; on error the previous
// path is kept.
func SetConfigPath(path string) error {
	if path != "" {
		if _, err := config.LoadCat(path); err != nil {
			return err
		}
	}
	configPath = path
	return nil
}

// SetDifficultyPreset sets the difficulty preset.
// An empty name keeps the config file's values.
func SetDifficultyPreset(preset string) error {
	parsed := config.ParsePreset(preset)
	if preset != "" && parsed == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}
	difficultyPreset = parsed
	return nil
}

// SetLogger sets the logger used to report config fallbacks.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetFrameClock makes new games derive spawn timing from the tick count
// instead of the wall clock, so seeded runs replay identically.
func SetFrameClock(enabled bool) {
	frameClock = enabled
}

// Game adapts the engine to the arcade registry.
type Game struct {
	engine     *Engine
	cfg        config.CatConfig
	runtime    core.RuntimeConfig
	clock      core.Clock
	frames     *core.FrameClock // Non-nil when the clock is tick driven
	onGameOver GameOverFunc
	snap       Snapshot

	banner     *gween.Tween
	bannerPos  float32 // Slide progress, 0 off-screen right to 1 centered
	bannerLeft float32 // Seconds the banner stays up after sliding in
	bannerText string
	tickCount  int
	preset     config.DifficultyPreset
}

// New creates a new Clumsy Cat Chaos game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Clumsy Cat Chaos"
}

// OnGameOver sets the callback invoked once per finished session.
func (g *Game) OnGameOver(fn func(finalScore int)) {
	g.onGameOver = fn
}

// Reset loads the config and puts a fresh engine on the idle screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCat(configPath)
	if err != nil {
		logger.Warn("could not load config, using defaults", "path", configPath, "error", err)
		cfg = config.DefaultCatConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCatPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.preset = difficultyPreset

	if frameClock {
		g.frames = core.NewFrameClock(runtime.TickRate)
		g.clock = g.frames
	} else {
		g.frames = nil
		g.clock = core.NewSystemClock()
	}

	g.engine = NewEngine(cfg,
		WithSeed(runtime.Seed),
		WithGameOver(func(finalScore int) {
			if g.onGameOver != nil {
				g.onGameOver(finalScore)
			}
		}),
	)
	g.snap = g.engine.Snapshot()
	g.banner = nil
	g.bannerLeft = 0
	g.tickCount = 0
}

// Step replays the frame's key events into the engine, then ticks it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(g.runtime)
	}
	if g.frames != nil {
		g.frames.Advance()
	}
	now := g.clock.Now()

	for _, ev := range in.Events {
		if ev.Action == core.ActionBack && ev.Pressed {
			g.engine.Exit()
			g.snap = g.engine.Snapshot()
			return core.StepResult{State: g.State(), Skipped: true}
		}
		g.applyEvent(ev, now)
	}

	if g.engine.Phase() != core.PhasePlaying {
		g.snap = g.engine.Snapshot()
		return core.StepResult{State: g.State(), Skipped: true}
	}

	g.tickCount++
	g.snap = g.engine.Tick(now)
	g.updateBanner()

	return core.StepResult{State: g.State()}
}

// applyEvent routes one press or release by the current phase.
func (g *Game) applyEvent(ev core.KeyEvent, now time.Duration) {
	key := keyFor(ev.Action)

	if !ev.Pressed {
		if key != KeyUnknown {
			g.engine.KeyUp(key)
		}
		return
	}

	switch g.engine.Phase() {
	case core.PhaseIdle:
		if key != KeyUnknown {
			g.engine.KeyDown(key)
		}
		if ev.Action == core.ActionConfirm || ev.Action == core.ActionJump {
			g.engine.Start(now)
		}
	case core.PhaseGameOver:
		if key != KeyUnknown {
			g.engine.KeyDown(key)
		}
		if ev.Action == core.ActionRestart {
			g.engine.Retry(now)
			g.banner = nil
			g.bannerLeft = 0
		}
	default:
		if key != KeyUnknown {
			g.engine.KeyDown(key)
		}
	}
}

// keyFor maps platform actions onto engine keys.
func keyFor(a core.Action) Key {
	switch a {
	case core.ActionLeft:
		return KeyLeft
	case core.ActionRight:
		return KeyRight
	case core.ActionJump:
		return KeyJump
	default:
		return KeyUnknown
	}
}

// updateBanner starts or advances the level-up banner tween.
func (g *Game) updateBanner() {
	dt := float32(1) / float32(core.Max(g.runtime.TickRate, 1))

	if g.snap.Events.LevelUp {
		g.bannerText = levelBanner(g.snap.Level)
		g.banner = gween.New(0, 1, bannerSlide, ease.OutQuad)
		g.bannerPos = 0
		g.bannerLeft = bannerHold
		return
	}

	if g.banner == nil {
		return
	}

	pos, finished := g.banner.Update(dt)
	g.bannerPos = pos
	if !finished {
		return
	}
	g.bannerLeft -= dt
	if g.bannerLeft <= 0 {
		g.banner = nil
	}
}

// Snapshot returns the state after the last step.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.snap.GameState()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
