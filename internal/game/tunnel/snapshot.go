package tunnel

import "github.com/mzheleznov/tui-tunnel/internal/core"

// Snapshot captures the complete simulation state for determinism testing
// and replay comparison. Slices are deep copies.
type Snapshot struct {
	Tick        int
	Score       int
	Status      Status
	Player      core.Point
	TargetLeft  int
	TargetRight int
	Rows        []Span
	Enemies     []core.Point
	Projectiles []Projectile
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.tickCount,
		Score: g.score,
	}
	if g.world == nil {
		return snap
	}

	w := g.world
	snap.Status = w.Status
	snap.Player = w.Player
	snap.TargetLeft = w.TargetLeft
	snap.TargetRight = w.TargetRight

	snap.Rows = make([]Span, len(w.Rows))
	copy(snap.Rows, w.Rows)

	snap.Enemies = make([]core.Point, len(w.Enemies))
	for i, e := range w.Enemies {
		snap.Enemies[i] = e.Pos
	}

	snap.Projectiles = make([]Projectile, len(w.Projectiles))
	copy(snap.Projectiles, w.Projectiles)

	return snap
}

// Equal reports whether two snapshots describe identical states.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Tick != other.Tick || s.Score != other.Score || s.Status != other.Status {
		return false
	}
	if !s.Player.Equals(other.Player) {
		return false
	}
	if s.TargetLeft != other.TargetLeft || s.TargetRight != other.TargetRight {
		return false
	}
	if len(s.Rows) != len(other.Rows) || len(s.Enemies) != len(other.Enemies) || len(s.Projectiles) != len(other.Projectiles) {
		return false
	}
	for i := range s.Rows {
		if s.Rows[i] != other.Rows[i] {
			return false
		}
	}
	for i := range s.Enemies {
		if !s.Enemies[i].Equals(other.Enemies[i]) {
			return false
		}
	}
	for i := range s.Projectiles {
		if s.Projectiles[i] != other.Projectiles[i] {
			return false
		}
	}
	return true
}
