package catchaos

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/cat-arcade/internal/config"
	"github.com/vovakirdan/cat-arcade/internal/core"
)

const frame = time.Second / 60

// ticker drives an engine with 60 Hz timestamps.
type ticker struct {
	e   *Engine
	now time.Duration
}

func (tk *ticker) tick() Snapshot {
	tk.now += frame
	return tk.e.Tick(tk.now)
}

func (tk *ticker) run(n int) Snapshot {
	var snap Snapshot
	for range n {
		snap = tk.tick()
	}
	return snap
}

func newTestEngine(opts ...Option) *ticker {
	opts = append([]Option{WithPicker(fixedPick(0))}, opts...)
	return &ticker{e: NewEngine(config.DefaultCatConfig(), opts...)}
}

func TestEngineStartsIdle(t *testing.T) {
	tk := newTestEngine()

	if tk.e.Phase() != core.PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", tk.e.Phase())
	}

	snap := tk.run(5)
	if snap.Phase != core.PhaseIdle || len(snap.Hazards) != 0 {
		t.Errorf("Tick() while idle should do nothing, got %+v", snap)
	}
	if snap.Lives != 3 || snap.Level != 1 || snap.Score != 0 {
		t.Errorf("idle snapshot = %d/%d/%d, expected 3 lives, level 1, score 0", snap.Lives, snap.Level, snap.Score)
	}
}

func TestEngineTransitions(t *testing.T) {
	tk := newTestEngine()

	if tk.e.Retry(0) {
		t.Error("Retry() from idle should be rejected")
	}
	if !tk.e.Start(0) {
		t.Fatal("Start() from idle should succeed")
	}
	if tk.e.Phase() != core.PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", tk.e.Phase())
	}
	if tk.e.Start(0) {
		t.Error("Start() while playing should be rejected")
	}

	tk.e.Exit()
	if tk.e.Phase() != core.PhaseIdle {
		t.Errorf("Phase() after Exit() = %v, expected idle", tk.e.Phase())
	}
}

func TestEngineFirstTickSpawns(t *testing.T) {
	tk := newTestEngine()
	tk.e.Start(0)

	snap := tk.tick()
	if len(snap.Hazards) != 1 {
		t.Fatalf("len(Hazards) = %d, expected 1", len(snap.Hazards))
	}
	if snap.Hazards[0].VX != -4.5 {
		t.Errorf("VX = %v, expected -4.5 at level 1", snap.Hazards[0].VX)
	}
	if snap.Hazards[0].X != 795.5 {
		t.Errorf("X = %v, expected 795.5 after its first move", snap.Hazards[0].X)
	}
	if !snap.Events.Spawned {
		t.Error("Events.Spawned should be set")
	}
}

func TestEngineSpawnCadence(t *testing.T) {
	e := NewEngine(config.DefaultCatConfig(), WithPicker(fixedPick(2)))
	e.Start(0)

	ms := time.Millisecond
	if n := len(e.Tick(16 * ms).Hazards); n != 1 {
		t.Fatalf("len(Hazards) = %d, expected 1", n)
	}
	if n := len(e.Tick(1816 * ms).Hazards); n != 1 {
		t.Errorf("len(Hazards) = %d, expected 1 at exactly the interval", n)
	}
	if n := len(e.Tick(1817 * ms).Hazards); n != 2 {
		t.Errorf("len(Hazards) = %d, expected 2 once the interval is exceeded", n)
	}
}

func TestEngineJump(t *testing.T) {
	tk := newTestEngine()
	tk.e.Start(0)

	snap := tk.run(20)
	if !snap.Actor.Grounded {
		t.Fatal("actor should have landed after 20 ticks")
	}

	tk.e.JumpRequested()
	snap = tk.tick()
	if !approx(snap.Actor.VY, -11.4) {
		t.Errorf("VY = %v, expected -11.4 one tick after the jump", snap.Actor.VY)
	}

	// Airborne: a second request has no effect
	tk.e.JumpRequested()
	snap = tk.tick()
	if !approx(snap.Actor.VY, -10.8) {
		t.Errorf("VY = %v, expected -10.8 (no double jump)", snap.Actor.VY)
	}
}

func TestEngineHeldJumpKeyDoesNotRepeat(t *testing.T) {
	tk := newTestEngine()

	// The key that starts the game is still down when play begins
	tk.e.KeyDown(KeyJump)
	tk.e.Start(0)
	tk.run(20)

	tk.e.KeyDown(KeyJump)
	snap := tk.tick()
	if !snap.Actor.Grounded || snap.Actor.Y != 400 {
		t.Errorf("auto-repeat of a held jump key should not jump, actor = %+v", snap.Actor)
	}

	tk.e.KeyUp(KeyJump)
	tk.e.KeyDown(KeyJump)
	snap = tk.tick()
	if snap.Actor.Grounded || snap.Actor.Y >= 400 {
		t.Errorf("fresh key-down should jump, actor = %+v", snap.Actor)
	}
}

func TestEngineLeftClamp(t *testing.T) {
	tk := newTestEngine()
	tk.e.Start(0)

	tk.e.SetMoveIntent(DirLeft, true)
	snap := tk.run(30)
	if snap.Actor.X != 0 {
		t.Errorf("X = %v, expected 0", snap.Actor.X)
	}
}

func TestEngineMoveRelease(t *testing.T) {
	tk := newTestEngine()
	tk.e.Start(0)

	tk.e.SetMoveIntent(DirRight, true)
	snap := tk.tick()
	if snap.Actor.VX != 6 {
		t.Errorf("VX = %v, expected 6 while held", snap.Actor.VX)
	}

	tk.e.SetMoveIntent(DirRight, false)
	snap = tk.tick()
	if !approx(snap.Actor.VX, 4.8) {
		t.Errorf("VX = %v, expected 4.8 after release", snap.Actor.VX)
	}
}

func TestEngineMovePressIgnoredOutsidePlaying(t *testing.T) {
	tk := newTestEngine()

	tk.e.SetMoveIntent(DirRight, true)
	tk.e.KeyDown(KeyLeft)
	if in := tk.e.sampler.Sample(); in.Left || in.Right {
		t.Errorf("Sample() = %+v, expected presses ignored while idle", in)
	}
}

// runToGameOver ticks a stationary cat into hazards until the session ends.
func runToGameOver(t *testing.T, tk *ticker) Snapshot {
	t.Helper()
	for range 5000 {
		snap := tk.tick()
		if snap.Phase == core.PhaseGameOver {
			return snap
		}
	}
	t.Fatal("session never ended")
	return Snapshot{}
}

func TestEngineThreeHitsEndTheSession(t *testing.T) {
	var reports []int
	tk := newTestEngine(WithGameOver(func(finalScore int) {
		reports = append(reports, finalScore)
	}))
	tk.e.Start(0)

	snap := runToGameOver(t, tk)
	if snap.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", snap.Lives)
	}
	if len(reports) != 1 || reports[0] != 0 {
		t.Fatalf("game-over reports = %v, expected exactly [0]", reports)
	}

	// Further ticks are no-ops and never report again
	before := tk.e.Session()
	tk.run(100)
	if len(reports) != 1 {
		t.Errorf("game-over reported %d times, expected once", len(reports))
	}
	if !reflect.DeepEqual(before, tk.e.Session()) {
		t.Error("Tick() after game over should not change the session")
	}
}

func TestEngineRetry(t *testing.T) {
	var reports int
	tk := newTestEngine(WithGameOver(func(int) { reports++ }))
	tk.e.Start(0)
	runToGameOver(t, tk)

	if !tk.e.Retry(tk.now) {
		t.Fatal("Retry() after game over should succeed")
	}
	s := tk.e.Session()
	if s.Lives != 3 || s.Score != 0 || s.Level != 1 || len(s.Hazards) != 0 {
		t.Errorf("session after Retry() = %+v, expected a fresh one", s)
	}
	if s.Actor != newActor(config.DefaultCatConfig().Actor) {
		t.Errorf("actor after Retry() = %+v, expected spawn state", s.Actor)
	}

	runToGameOver(t, tk)
	if reports != 2 {
		t.Errorf("reports = %d, expected one per session", reports)
	}
}

func TestEngineExitWhilePlayingDoesNotReport(t *testing.T) {
	reported := false
	tk := newTestEngine(WithGameOver(func(int) { reported = true }))
	tk.e.Start(0)
	tk.run(200)

	tk.e.Exit()
	tk.run(10)

	if reported {
		t.Error("abandoning a session should not report a game over")
	}
	if snap := tk.e.Snapshot(); snap.Phase != core.PhaseIdle || len(snap.Hazards) != 0 {
		t.Errorf("snapshot after Exit() = %+v, expected a clean idle state", snap)
	}
}

func TestEngineDeterministicWithSeed(t *testing.T) {
	play := func() Session {
		tk := &ticker{e: NewEngine(config.DefaultCatConfig(), WithSeed(7))}
		tk.e.Start(0)
		for i := range 600 {
			switch i % 90 {
			case 10:
				tk.e.KeyDown(KeyJump)
			case 12:
				tk.e.KeyUp(KeyJump)
			case 30:
				tk.e.SetMoveIntent(DirRight, true)
			case 50:
				tk.e.SetMoveIntent(DirRight, false)
			}
			tk.tick()
		}
		return tk.e.Session()
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input produced different sessions:\n%+v\n%+v", a, b)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	tk := newTestEngine()
	tk.e.Start(0)

	snap := tk.tick()
	snap.Hazards[0].X = -999

	if tk.e.Session().Hazards[0].X == -999 {
		t.Error("modifying a snapshot should not affect the engine")
	}
}

func TestSnapshotGameState(t *testing.T) {
	snap := Snapshot{Phase: core.PhaseGameOver, Score: 40, Level: 2, Lives: 0}
	state := snap.GameState()

	if !state.GameOver || state.Score != 40 || state.Level != 2 || state.Lives != 0 {
		t.Errorf("GameState() = %+v, unexpected", state)
	}
}

func TestEngineInvariantsUnderRandomInput(t *testing.T) {
	runs, maxTicks := 200, 20000
	if testing.Short() {
		runs, maxTicks = 20, 2000
	}

	cfg := config.DefaultCatConfig()
	groundY := cfg.World.GroundY(cfg.Actor.Height)
	maxX := cfg.World.Width - cfg.Actor.Width
	keys := []Key{KeyLeft, KeyRight, KeyJump}

	for run := range runs {
		rng := rand.New(rand.NewSource(int64(run)))
		reports := 0
		e := NewEngine(cfg, WithSeed(int64(run)), WithGameOver(func(int) { reports++ }))

		var now time.Duration
		finished := 0
		prev := e.Snapshot()
		ticks := 1 + rng.Intn(maxTicks)

		for tick := range ticks {
			switch e.Phase() {
			case core.PhaseIdle:
				if rng.Intn(10) == 0 {
					e.Start(now)
					prev = e.Snapshot()
				}
			case core.PhaseGameOver:
				if rng.Intn(10) == 0 {
					e.Retry(now)
					prev = e.Snapshot()
				}
			case core.PhasePlaying:
				if rng.Intn(2000) == 0 {
					e.Exit()
					prev = e.Snapshot()
				}
			}

			for range rng.Intn(4) {
				k := keys[rng.Intn(len(keys))]
				switch rng.Intn(4) {
				case 0:
					e.KeyUp(k)
				case 1:
					e.JumpRequested()
				case 2:
					e.SetMoveIntent(Direction(rng.Intn(2)), rng.Intn(2) == 0)
				default:
					e.KeyDown(k)
				}
			}

			now += time.Duration(1+rng.Intn(50)) * time.Millisecond
			wasPlaying := e.Phase() == core.PhasePlaying
			snap := e.Tick(now)

			if wasPlaying && snap.Phase == core.PhaseGameOver {
				finished++
			}
			if x := snap.Actor.X; x < 0 || x > maxX {
				t.Fatalf("run %d tick %d: Actor.X = %v, expected within [0, %v]", run, tick, x, maxX)
			}
			if y := snap.Actor.Y; y > groundY {
				t.Fatalf("run %d tick %d: Actor.Y = %v, expected at most %v", run, tick, y, groundY)
			}
			if snap.Lives < 0 || snap.Lives > cfg.Scoring.StartLives {
				t.Fatalf("run %d tick %d: Lives = %d, expected within [0, %d]", run, tick, snap.Lives, cfg.Scoring.StartLives)
			}
			if d := snap.Level - prev.Level; d < 0 || d > 1 {
				t.Fatalf("run %d tick %d: Level %d -> %d, expected a rise of at most 1", run, tick, prev.Level, snap.Level)
			}
			if snap.Score < prev.Score {
				t.Fatalf("run %d tick %d: Score %d -> %d, expected no decrease", run, tick, prev.Score, snap.Score)
			}
			if reports != finished {
				t.Fatalf("run %d tick %d: game-over reports = %d, expected %d", run, tick, reports, finished)
			}
			prev = snap
		}
	}
}
