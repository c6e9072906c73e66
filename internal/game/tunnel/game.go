package tunnel

import (
	"fmt"
	"math/rand"

	"github.com/mzheleznov/tui-tunnel/internal/config"
	"github.com/mzheleznov/tui-tunnel/internal/core"
	"github.com/mzheleznov/tui-tunnel/internal/registry"
)

// Visual characters for rendering
const (
	WallChar       = '█'
	EnemyChar      = '◆'
	ProjectileChar = '↑'
)

// Score tuning
const (
	scorePerTick = 1
	scorePerKill = 25
)

// Game adapts the tunnel world to the platform's game interface.
// It owns the world, applies player intents, scales tuning by difficulty
// and keeps the running score.
type Game struct {
	world      *World
	runtime    core.RuntimeConfig
	cfg        config.TunnelConfig
	difficulty *config.DifficultyManager
	score      int
	tickCount  int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// New creates a new tunnel game instance with tuning loaded from config.
func New() *Game {
	cfg, err := config.LoadTunnel(configPath)
	if err != nil {
		cfg = config.DefaultTunnelConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTunnelPreset(&cfg, difficultyPreset)
	}

	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// NewWithConfig creates a game with explicit tuning, bypassing config
// file discovery. Used by tests.
func NewWithConfig(cfg config.TunnelConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tunnel"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tunnel Rush"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.score = 0
	g.tickCount = 0

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.world = NewWorld(
		cfg.ScreenW,
		cfg.ScreenH,
		g.cfg.Walls.InitialHalfWidth,
		g.cfg.Walls.TargetOffset,
		g.cfg.PlayerGlyph(),
		rng,
	)
}

// World exposes the simulation state. Read-only use outside this package.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick: player intents first, then physics.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || g.world.Status != StatusAlive {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if move := in.Move(); move != core.ActionNone {
		g.world.MovePlayer(move)
	}
	if in.Has(core.ActionFire) {
		g.world.FireProjectile(g.projectileEnergy())
	}

	rep := Advance(g.world, g.tuning())

	g.score += scorePerTick + rep.EnemiesShot*scorePerKill

	return core.StepResult{State: g.State()}
}

// tuning derives the per-tick physics parameters from config and the
// current difficulty level.
func (g *Game) tuning() Tuning {
	return Tuning{
		MinWidth:        g.cfg.Walls.MinWidth,
		RetargetChance:  g.difficulty.RetargetChance(g.cfg.Walls.RetargetChance, g.score, g.tickCount),
		RetargetRange:   g.cfg.Walls.RetargetRange,
		SpawnChance:     g.difficulty.SpawnChance(g.cfg.Enemies.SpawnChance, g.score, g.tickCount),
		ProjectileSpeed: g.cfg.Projectiles.Speed,
	}
}

// projectileEnergy returns the tick budget of a freshly fired projectile.
func (g *Game) projectileEnergy() int {
	div := g.cfg.Projectiles.EnergyDivisor
	if div <= 0 {
		div = 2
	}
	return core.Max(g.runtime.ScreenH/div, 1)
}

// Render draws the current world to the screen buffer: walls first, then
// enemies, then projectiles, and the player last so it sits on top of any
// overlapping entity.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	w := g.world

	for y, span := range w.Rows {
		dst.DrawHLineColored(0, y, span.Left+1, WallChar, core.ColorGray)
		dst.DrawHLineColored(span.Right, y, w.MaxCol-span.Right, WallChar, core.ColorGray)
	}

	for _, e := range w.Enemies {
		dst.SetCell(e.Pos.Col, e.Pos.Row, EnemyChar, core.ColorBrightRed)
	}
	for _, p := range w.Projectiles {
		dst.SetCell(p.Pos.Col, p.Pos.Row, ProjectileChar, core.ColorBrightYellow)
	}
	dst.SetCell(w.Player.Col, w.Player.Row, w.Glyph, core.ColorBrightCyan)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	if w.Status == StatusDead {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	over := g.world != nil && g.world.Status != StatusAlive
	return core.GameState{
		Score:    g.score,
		GameOver: over,
	}
}

// Ticks returns the number of ticks survived this run.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Register the game with the registry
func init() {
	registry.Register("tunnel", func() registry.Game {
		return New()
	})
}
