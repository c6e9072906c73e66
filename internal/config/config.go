// Package config provides YAML-based game tuning and difficulty
// management for the tunnel game.
package config

// TunnelConfig contains all tuning for the tunnel game.
type TunnelConfig struct {
	Walls       WallsConfig       `yaml:"walls"`
	Player      PlayerConfig      `yaml:"player"`
	Enemies     EnemiesConfig     `yaml:"enemies"`
	Projectiles ProjectilesConfig `yaml:"projectiles"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// WallsConfig defines the tunnel geometry and its random walk.
type WallsConfig struct {
	InitialHalfWidth int     `yaml:"initial_half_width"` // Half the opening width at start
	TargetOffset     int     `yaml:"target_offset"`      // Initial drift target distance from center
	MinWidth         int     `yaml:"min_width"`          // Enforced floor on right-left per row
	RetargetChance   float64 `yaml:"retarget_chance"`    // Per-tick chance to pick a new drift target
	RetargetRange    int     `yaml:"retarget_range"`     // New target drawn within +/- this of the old
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Glyph string `yaml:"glyph"` // Display symbol, first rune is used
}

// EnemiesConfig defines enemy spawning.
type EnemiesConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick chance of a new enemy at row 0
}

// ProjectilesConfig defines projectile flight parameters.
type ProjectilesConfig struct {
	Speed         int `yaml:"speed"`          // Rows climbed per tick
	EnergyDivisor int `yaml:"energy_divisor"` // Energy at launch = screen height / divisor
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnMultiplier    float64 `yaml:"spawn_multiplier"`    // Added to enemy spawn chance at max difficulty
	RetargetMultiplier float64 `yaml:"retarget_multiplier"` // Added to wall retarget chance at max difficulty
}

// PlayerGlyph returns the configured player rune, falling back to '▲'.
func (c TunnelConfig) PlayerGlyph() rune {
	for _, r := range c.Player.Glyph {
		return r
	}
	return '▲'
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
