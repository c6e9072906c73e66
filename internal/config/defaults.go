package config

import (
	_ "embed"
)

//go:embed defaults/tunnel.yaml
var defaultTunnelYAML []byte

// DefaultTunnelConfig returns the hardcoded default tunnel configuration.
// Used as the last-resort fallback if the embedded YAML cannot be parsed.
func DefaultTunnelConfig() TunnelConfig {
	return TunnelConfig{
		Walls: WallsConfig{
			InitialHalfWidth: 5,
			TargetOffset:     7,
			MinWidth:         3,
			RetargetChance:   0.3,
			RetargetRange:    5,
		},
		Player: PlayerConfig{
			Glyph: "▲",
		},
		Enemies: EnemiesConfig{
			SpawnChance: 0.1,
		},
		Projectiles: ProjectilesConfig{
			Speed:         2,
			EnergyDivisor: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 1200,
			},
			Scaling: ScalingConfig{
				SpawnMultiplier:    1.0,
				RetargetMultiplier: 0.8,
			},
		},
	}
}
