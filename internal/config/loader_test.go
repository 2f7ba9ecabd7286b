package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseCat("cat.yaml", defaultCatYAML)
	if err != nil {
		t.Fatalf("parseCat(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCatConfig()) {
		t.Errorf("embedded defaults differ from DefaultCatConfig():\n got  %+v\n want %+v", cfg, DefaultCatConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadCatCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cat.yaml")
	data := `
physics:
  gravity: 0.9
scoring:
  start_lives: 2
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCat(path)
	if err != nil {
		t.Fatalf("LoadCat() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("Gravity = %v, expected 0.9", cfg.Physics.Gravity)
	}
	if cfg.Scoring.StartLives != 2 {
		t.Errorf("StartLives = %d, expected 2", cfg.Scoring.StartLives)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpVelocity != -12 {
		t.Errorf("JumpVelocity = %v, expected default -12", cfg.Physics.JumpVelocity)
	}
	if len(cfg.Archetypes) != 3 {
		t.Errorf("len(Archetypes) = %d, expected default 3", len(cfg.Archetypes))
	}
}

func TestLoadCatCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cat.toml")
	data := `
[world]
width = 640

[[archetypes]]
tag = "vase"
width = 20
height = 40
points = 25
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCat(path)
	if err != nil {
		t.Fatalf("LoadCat() failed: %v", err)
	}
	if cfg.World.Width != 640 {
		t.Errorf("World.Width = %v, expected 640", cfg.World.Width)
	}
	if cfg.World.Height != 500 {
		t.Errorf("World.Height = %v, expected default 500", cfg.World.Height)
	}
	if len(cfg.Archetypes) != 1 || cfg.Archetypes[0].Tag != "vase" || cfg.Archetypes[0].Points != 25 {
		t.Errorf("Archetypes = %+v, expected a single vase worth 25", cfg.Archetypes)
	}
}

func TestLoadCatErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCat(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadCat() with missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCat(broken); err == nil {
		t.Error("LoadCat() with malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("scoring:\n  start_lives: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCat(invalid)
	if err == nil {
		t.Fatal("LoadCat() with 5 lives should fail validation")
	}
	if !strings.Contains(err.Error(), "start_lives") {
		t.Errorf("error should mention start_lives, got %v", err)
	}
}

func TestLoadCatFallsBackToDefault(t *testing.T) {
	// Point HOME somewhere empty and run from an empty directory
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadCat("")
	if err != nil {
		t.Fatalf("LoadCat(\"\") failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCatConfig()) {
		t.Errorf("LoadCat(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadCatUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cat.yaml"), []byte("physics:\n  gravity: 1.2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCat("")
	if err != nil {
		t.Fatalf("LoadCat(\"\") failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("Gravity = %v, expected 1.2 from user config", cfg.Physics.Gravity)
	}
}

func TestApplyCatPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		baseInterval int
		decay        int
		speedPerLvl  float64
	}{
		{DifficultyNormal, 2000, 200, -0.5},
		{DifficultyEasy, 2400, 200, -0.5},
		{DifficultyHard, 1600, 200, -0.5},
		{DifficultyFixed, 2000, 0, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCatConfig()
			ApplyCatPreset(&cfg, tc.preset)

			if cfg.Spawner.BaseIntervalMs != tc.baseInterval {
				t.Errorf("BaseIntervalMs = %d, expected %d", cfg.Spawner.BaseIntervalMs, tc.baseInterval)
			}
			if cfg.Spawner.DecayPerLevelMs != tc.decay {
				t.Errorf("DecayPerLevelMs = %d, expected %d", cfg.Spawner.DecayPerLevelMs, tc.decay)
			}
			if cfg.Spawner.SpeedPerLevel != tc.speedPerLvl {
				t.Errorf("SpeedPerLevel = %v, expected %v", cfg.Spawner.SpeedPerLevel, tc.speedPerLvl)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s should produce a valid config, got %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(\"hard\") should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("ParsePreset should return empty for unknown presets")
	}
	if !IsFixedPreset(ParsePreset("fixed")) {
		t.Error("fixed should be a fixed preset")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	data := GetDefaultYAML("clumsy-cat")
	if len(data) == 0 {
		t.Fatal("GetDefaultYAML(\"clumsy-cat\") should return the embedded file")
	}
	if _, err := parseCat("cat.yaml", data); err != nil {
		t.Errorf("embedded YAML should parse, got %v", err)
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("GetDefaultYAML should return nil for unknown games")
	}
}
