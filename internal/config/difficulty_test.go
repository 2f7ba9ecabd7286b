package config

import (
	"strings"
	"testing"
	"time"
)

func TestLevelCurveSpawnInterval(t *testing.T) {
	curve := NewLevelCurve(DefaultCatConfig())

	tests := []struct {
		level    int
		expected time.Duration
	}{
		{0, 2000 * time.Millisecond},
		{1, 1800 * time.Millisecond},
		{3, 1400 * time.Millisecond},
		{6, 800 * time.Millisecond},  // exactly at the floor
		{7, 800 * time.Millisecond},  // clamped
		{50, 800 * time.Millisecond}, // clamped
	}

	for _, tc := range tests {
		if got := curve.SpawnInterval(tc.level); got != tc.expected {
			t.Errorf("SpawnInterval(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestLevelCurveHazardSpeed(t *testing.T) {
	curve := NewLevelCurve(DefaultCatConfig())

	tests := []struct {
		level    int
		expected float64
	}{
		{1, -4.5},
		{2, -5},
		{5, -6.5},
	}

	for _, tc := range tests {
		if got := curve.HazardSpeed(tc.level); got != tc.expected {
			t.Errorf("HazardSpeed(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestLevelCurveThreshold(t *testing.T) {
	curve := NewLevelCurve(DefaultCatConfig())
	if curve.LevelUpThreshold(1) != 100 {
		t.Errorf("LevelUpThreshold(1) = %d, expected 100", curve.LevelUpThreshold(1))
	}
	if curve.LevelUpThreshold(4) != 400 {
		t.Errorf("LevelUpThreshold(4) = %d, expected 400", curve.LevelUpThreshold(4))
	}
}

func TestLevelCurveFixedPreset(t *testing.T) {
	cfg := DefaultCatConfig()
	ApplyCatPreset(&cfg, DifficultyFixed)
	curve := NewLevelCurve(cfg)

	if curve.SpawnInterval(1) != curve.SpawnInterval(9) {
		t.Error("fixed preset should not tighten spawn cadence")
	}
	if curve.HazardSpeed(1) != curve.HazardSpeed(9) {
		t.Error("fixed preset should not speed hazards up")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultCatConfig()
	cfg.World.Width = 0
	cfg.Physics.JumpVelocity = 5
	cfg.Archetypes = nil

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	for _, want := range []string{"world.width", "jump_velocity", "archetypes"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validate() error should mention %q, got %q", want, msg)
		}
	}
}
