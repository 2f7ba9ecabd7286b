package catchaos

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/registry"
)

// newTestGame creates a game isolated from any user config, on a frame clock.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	SetFrameClock(true)
	t.Cleanup(func() { SetFrameClock(false) })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func press(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Press(a)
	return f
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q should be registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != GameID || g.Title() != "Clumsy Cat Chaos" {
		t.Errorf("ID()/Title() = %q/%q, unexpected", g.ID(), g.Title())
	}
}

func TestGameIdleUntilConfirm(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(core.NewInputFrame())
	if !res.Skipped || res.State.Phase != core.PhaseIdle {
		t.Errorf("Step() while idle = %+v, expected a skipped idle step", res)
	}

	res = g.Step(press(core.ActionConfirm))
	if res.Skipped || res.State.Phase != core.PhasePlaying {
		t.Fatalf("Step(Confirm) = %+v, expected the session to start and tick", res)
	}
	if n := len(g.Snapshot().Hazards); n != 1 {
		t.Errorf("len(Hazards) = %d, expected the first spawn", n)
	}
}

func TestGameJumpKeyStarts(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(press(core.ActionJump))
	if res.State.Phase != core.PhasePlaying {
		t.Errorf("Phase = %v, expected Space to start the game", res.State.Phase)
	}
}

func TestGameBackExits(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionConfirm))

	res := g.Step(press(core.ActionBack))
	if !res.Skipped || res.State.Phase != core.PhaseIdle {
		t.Errorf("Step(Back) = %+v, expected idle without a tick", res)
	}
}

func TestGameHoldAndRelease(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionConfirm))

	g.Step(press(core.ActionRight))
	g.Step(core.NewInputFrame())
	if vx := g.Snapshot().Actor.VX; vx != 6 {
		t.Errorf("VX = %v, expected 6 while right is held between frames", vx)
	}

	release := core.NewInputFrame()
	release.Release(core.ActionRight)
	g.Step(release)
	if vx := g.Snapshot().Actor.VX; !approx(vx, 4.8) {
		t.Errorf("VX = %v, expected friction after release", vx)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t)

	var reports []int
	g.OnGameOver(func(finalScore int) {
		reports = append(reports, finalScore)
	})
	g.Step(press(core.ActionConfirm))

	var res core.StepResult
	for range 5000 {
		res = g.Step(core.NewInputFrame())
		if res.State.GameOver {
			break
		}
	}
	if !res.State.GameOver {
		t.Fatal("game never ended")
	}
	if len(reports) != 1 || reports[0] != 0 {
		t.Errorf("reports = %v, expected [0]", reports)
	}

	res = g.Step(press(core.ActionRestart))
	if res.State.Phase != core.PhasePlaying || res.State.Lives != 3 {
		t.Errorf("Step(Restart) = %+v, expected a fresh session", res)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "CLUMSY CAT CHAOS") {
		t.Error("idle screen should show the title")
	}

	g.Step(press(core.ActionConfirm))
	g.Render(screen)
	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "LEVEL 1") {
		t.Errorf("HUD = %q, expected score and level", hud)
	}
	if strings.Count(hud, string(HeartFull)) != 3 {
		t.Errorf("HUD = %q, expected three full hearts", hud)
	}
	if !strings.Contains(screen.String(), string(CatBody)) {
		t.Error("cat should be drawn")
	}
}

func TestGameRenderTinyScreens(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionConfirm))

	for _, size := range [][2]int{{0, 0}, {1, 1}, {10, 3}, {200, 60}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen)
	}
}

func TestLookForFallback(t *testing.T) {
	if l := lookFor("box"); l.Glyph != '▣' {
		t.Errorf("lookFor(box) = %q, expected ▣", l.Glyph)
	}
	if l := lookFor("vase"); l.Glyph != DefaultChar {
		t.Errorf("lookFor(vase) = %q, expected fallback %q", l.Glyph, DefaultChar)
	}
}

func TestLevelUpBanner(t *testing.T) {
	g := newTestGame(t)

	g.snap.Level = 2
	g.snap.Events.LevelUp = true
	g.updateBanner()
	if g.banner == nil || g.bannerText != "LEVEL UP! 2" {
		t.Fatalf("banner = %v %q, expected LEVEL UP! 2", g.banner, g.bannerText)
	}

	g.snap.Events.LevelUp = false
	for range 200 {
		g.updateBanner()
		if g.banner == nil {
			break
		}
	}
	if g.banner != nil {
		t.Error("banner should disappear after sliding in and holding")
	}
	if g.bannerPos != 1 {
		t.Errorf("bannerPos = %v, expected the slide to finish at 1", g.bannerPos)
	}
}

// resetGameFlags restores the package-level settings after a test changes them.
func resetGameFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath = ""
		difficultyPreset = ""
	})
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func TestSetConfigPath(t *testing.T) {
	resetGameFlags(t)

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", "physics:\n  gravity: 2.0\n", false},
		{"too many lives", "scoring:\n  start_lives: 9\nphysics:\n  gravity: 2.0\n", true},
		{"bad yaml", "physics: [\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			configPath = ""
			path := writeConfig(t, "cat.yaml", tc.body)
			err := SetConfigPath(path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("SetConfigPath() error = %v, expected error %v", err, tc.wantErr)
			}
			if tc.wantErr && configPath != "" {
				t.Errorf("configPath = %q, expected it unchanged on error", configPath)
			}
		})
	}

	if err := SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("SetConfigPath() should fail for a missing file")
	}
	if err := SetConfigPath(""); err != nil {
		t.Errorf("SetConfigPath(\"\") error = %v, expected nil", err)
	}
}

func TestCustomConfigApplied(t *testing.T) {
	resetGameFlags(t)
	path := writeConfig(t, "cat.yaml", "physics:\n  gravity: 2.0\n")
	if err := SetConfigPath(path); err != nil {
		t.Fatalf("SetConfigPath() error: %v", err)
	}

	g := newTestGame(t)
	if g.cfg.Physics.Gravity != 2 {
		t.Errorf("Gravity = %v, expected 2", g.cfg.Physics.Gravity)
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	resetGameFlags(t)

	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if err := SetDifficultyPreset(name); err != nil {
			t.Errorf("SetDifficultyPreset(%q) error = %v, expected nil", name, err)
		}
	}
	if err := SetDifficultyPreset("nightmare"); err == nil {
		t.Error("SetDifficultyPreset(nightmare) should fail")
	}
	if difficultyPreset != "fixed" {
		t.Errorf("difficultyPreset = %q, expected fixed to stay after a bad name", difficultyPreset)
	}
}

func TestFixedModeHUD(t *testing.T) {
	resetGameFlags(t)
	if err := SetDifficultyPreset("fixed"); err != nil {
		t.Fatalf("SetDifficultyPreset() error: %v", err)
	}

	g := newTestGame(t)
	g.Step(press(core.ActionConfirm))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "LEVEL 1 (fixed)") {
		t.Errorf("HUD = %q, expected the fixed marker", hud)
	}
}
