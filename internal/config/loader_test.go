package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTunnelCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tunnel.yaml")

	data := []byte(`
walls:
  initial_half_width: 8
  target_offset: 4
  min_width: 5
  retarget_chance: 0.5
  retarget_range: 3
player:
  glyph: "@"
enemies:
  spawn_chance: 0.25
projectiles:
  speed: 1
  energy_divisor: 4
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTunnel(path)
	if err != nil {
		t.Fatalf("LoadTunnel: %v", err)
	}

	if cfg.Walls.InitialHalfWidth != 8 {
		t.Errorf("InitialHalfWidth = %d, expected 8", cfg.Walls.InitialHalfWidth)
	}
	if cfg.Walls.MinWidth != 5 {
		t.Errorf("MinWidth = %d, expected 5", cfg.Walls.MinWidth)
	}
	if cfg.Enemies.SpawnChance != 0.25 {
		t.Errorf("SpawnChance = %v, expected 0.25", cfg.Enemies.SpawnChance)
	}
	if cfg.PlayerGlyph() != '@' {
		t.Errorf("PlayerGlyph = %q, expected '@'", cfg.PlayerGlyph())
	}
}

func TestLoadTunnelMissingCustomPath(t *testing.T) {
	_, err := LoadTunnel(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected an error for an explicit path that does not exist")
	}
}

func TestLoadTunnelMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("walls: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTunnel(path); err == nil {
		t.Error("expected a parse error for malformed YAML")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Point the home directory at an empty sandbox so no user config is
	// picked up, then load with no custom path.
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadTunnel("")
	if err != nil {
		t.Fatalf("LoadTunnel: %v", err)
	}

	want := DefaultTunnelConfig()
	if cfg.Walls != want.Walls {
		t.Errorf("Walls = %+v, expected %+v", cfg.Walls, want.Walls)
	}
	if cfg.Enemies != want.Enemies {
		t.Errorf("Enemies = %+v, expected %+v", cfg.Enemies, want.Enemies)
	}
	if cfg.Projectiles != want.Projectiles {
		t.Errorf("Projectiles = %+v, expected %+v", cfg.Projectiles, want.Projectiles)
	}
}

func TestApplyTunnelPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTunnelConfig()
			ApplyTunnelPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}

	cfg := DefaultTunnelConfig()
	ApplyTunnelPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset must disable difficulty progression")
	}
}
