package config

import (
	"math"
	"testing"
)

func timeDifficulty(initial float64, maxAt int) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: "time", MaxAt: maxAt},
		Scaling:      ScalingConfig{SpawnMultiplier: 1.0, RetargetMultiplier: 0.8},
	}
}

func TestLevelProgressionOverTime(t *testing.T) {
	d := NewDifficultyManager(timeDifficulty(0, 1000))

	tests := []struct {
		ticks int
		want  float64
	}{
		{0, 0.0},
		{500, 0.5},
		{1000, 1.0},
		{5000, 1.0}, // saturates at max
	}
	for _, tc := range tests {
		if got := d.Level(0, tc.ticks); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(0, %d) = %v, expected %v", tc.ticks, got, tc.want)
		}
	}
}

func TestLevelInterpolatesFromInitial(t *testing.T) {
	d := NewDifficultyManager(timeDifficulty(0.5, 1000))

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected the initial level 0.5", got)
	}
	if got := d.Level(0, 500); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level halfway = %v, expected 0.75", got)
	}
}

func TestLevelFixedWhenDisabled(t *testing.T) {
	cfg := timeDifficulty(0.3, 1000)
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 9999); got != 0.3 {
		t.Errorf("Level = %v, expected the initial level when disabled", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled should report false")
	}
}

func TestLevelByScore(t *testing.T) {
	cfg := timeDifficulty(0, 200)
	cfg.Progression.Type = "score"
	d := NewDifficultyManager(cfg)

	if got := d.Level(100, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(100, 0) = %v, expected 0.5", got)
	}
}

func TestSpawnChanceScalesAndCaps(t *testing.T) {
	d := NewDifficultyManager(timeDifficulty(0, 1000))

	if got := d.SpawnChance(0.1, 0, 0); got != 0.1 {
		t.Errorf("SpawnChance at level 0 = %v, expected the base 0.1", got)
	}
	if got := d.SpawnChance(0.1, 0, 1000); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("SpawnChance at max level = %v, expected 0.2", got)
	}
	if got := d.SpawnChance(0.8, 0, 1000); got != 0.9 {
		t.Errorf("SpawnChance = %v, expected the 0.9 cap", got)
	}
}

func TestRetargetChanceScales(t *testing.T) {
	d := NewDifficultyManager(timeDifficulty(0, 1000))

	if got := d.RetargetChance(0.3, 0, 1000); math.Abs(got-0.54) > 1e-9 {
		t.Errorf("RetargetChance at max level = %v, expected 0.54", got)
	}
}
