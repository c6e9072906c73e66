// Package tunnel implements the tunnel-diving game: the player steers a
// glyph down a vertically scrolling corridor whose walls randomly narrow
// and widen, dodging enemies and shooting them down.
package tunnel

import (
	"math/rand"

	"github.com/mzheleznov/tui-tunnel/internal/core"
)

// Status is the lifecycle state of a run.
type Status int

const (
	StatusAlive Status = iota
	StatusDead
	// Paused and Animation are declared for future use; no transition
	// into them exists yet.
	StatusPaused
	StatusAnimation
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	case StatusPaused:
		return "paused"
	case StatusAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

// Span is one row of the tunnel: the columns of the left and right wall
// edges. The corridor is the open cells strictly between them.
type Span struct {
	Left, Right int
}

// Width returns the corridor width of the span.
func (s Span) Width() int {
	return s.Right - s.Left
}

// Enemy is an ephemeral entity scrolling down from row 0.
type Enemy struct {
	Pos core.Point
}

// Projectile climbs the screen until its energy runs out or it nears the top.
type Projectile struct {
	Pos    core.Point
	Energy int // Remaining forward ticks before expiry
}

// World is the single mutable simulation state for one run.
// It is mutated only by Advance and the player-intent application in
// Game.Step; the renderer reads it without modification.
type World struct {
	Player      core.Point
	Rows        []Span // One span per visible row; index = screen row
	TargetLeft  int    // Column the left edge of row 0 drifts toward
	TargetRight int    // Column the right edge of row 0 drifts toward
	Status      Status
	Enemies     []Enemy
	Projectiles []Projectile
	Glyph       rune // Player display symbol, fixed at construction
	MaxRow      int
	MaxCol      int

	rng *rand.Rand
}

// NewWorld builds the initial world for a terminal of maxCol x maxRow cells.
// The player starts on the bottom row at the horizontal center, inside a
// straight corridor that immediately begins drifting toward wider targets.
// The caller should provide maxCol >= 14 and maxRow >= 1 for the geometry
// to be meaningful; smaller terminals are saturated, not rejected.
func NewWorld(maxCol, maxRow int, halfWidth, targetOffset int, glyph rune, rng *rand.Rand) *World {
	center := maxCol / 2

	rows := make([]Span, core.Max(maxRow, 1))
	span := Span{
		Left:  core.Max(center-halfWidth, 0),
		Right: core.Min(center+halfWidth, core.Max(maxCol-1, 1)),
	}
	for i := range rows {
		rows[i] = span
	}

	return &World{
		Player:      core.P(core.Max(maxRow-1, 0), center),
		Rows:        rows,
		TargetLeft:  core.Max(center-targetOffset, 0),
		TargetRight: core.Min(center+targetOffset, core.Max(maxCol-1, 1)),
		Status:      StatusAlive,
		Glyph:       glyph,
		MaxRow:      maxRow,
		MaxCol:      maxCol,
		rng:         rng,
	}
}

// FireProjectile launches a projectile from the player's position.
// At most one projectile may be in flight; firing while one exists is a no-op.
func (w *World) FireProjectile(energy int) {
	if len(w.Projectiles) > 0 {
		return
	}
	w.Projectiles = append(w.Projectiles, Projectile{
		Pos:    w.Player,
		Energy: energy,
	})
}

// MovePlayer applies a movement intent, clamped so the player stays
// strictly inside [1, max-1] on the moved axis. Out-of-range intents are
// silently dropped, never wrapped.
func (w *World) MovePlayer(action core.Action) {
	switch action {
	case core.ActionUp:
		if w.Player.Row > 1 {
			w.Player.Row--
		}
	case core.ActionDown:
		if w.Player.Row < w.MaxRow-1 {
			w.Player.Row++
		}
	case core.ActionLeft:
		if w.Player.Col > 1 {
			w.Player.Col--
		}
	case core.ActionRight:
		if w.Player.Col < w.MaxCol-1 {
			w.Player.Col++
		}
	}
}
