package tunnel

import (
	"math/rand"
	"testing"

	"github.com/mzheleznov/tui-tunnel/internal/core"
)

func newTestWorld(maxCol, maxRow int) *World {
	rng := rand.New(rand.NewSource(1))
	return NewWorld(maxCol, maxRow, 5, 7, '▲', rng)
}

func TestNewWorldGeometry(t *testing.T) {
	w := newTestWorld(40, 20)

	if !w.Player.Equals(core.P(19, 20)) {
		t.Errorf("Player = %v, expected (19,20)", w.Player)
	}
	if len(w.Rows) != 20 {
		t.Fatalf("len(Rows) = %d, expected 20", len(w.Rows))
	}
	for i, span := range w.Rows {
		if span.Left != 15 || span.Right != 25 {
			t.Errorf("Rows[%d] = %+v, expected {15 25}", i, span)
		}
	}
	if w.TargetLeft != 13 || w.TargetRight != 27 {
		t.Errorf("Targets = (%d, %d), expected (13, 27)", w.TargetLeft, w.TargetRight)
	}
	if w.Status != StatusAlive {
		t.Errorf("Status = %v, expected alive", w.Status)
	}
	if len(w.Enemies) != 0 || len(w.Projectiles) != 0 {
		t.Error("Entity lists should start empty")
	}
	if w.Glyph != '▲' {
		t.Errorf("Glyph = %q, expected '▲'", w.Glyph)
	}
}

func TestMovePlayerClamping(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Point
		action   core.Action
		expected core.Point
	}{
		{"up inside", core.P(10, 20), core.ActionUp, core.P(9, 20)},
		{"down inside", core.P(10, 20), core.ActionDown, core.P(11, 20)},
		{"left inside", core.P(10, 20), core.ActionLeft, core.P(10, 19)},
		{"right inside", core.P(10, 20), core.ActionRight, core.P(10, 21)},
		{"up at top bound", core.P(1, 20), core.ActionUp, core.P(1, 20)},
		{"down at bottom bound", core.P(19, 20), core.ActionDown, core.P(19, 20)},
		{"left at left bound", core.P(10, 1), core.ActionLeft, core.P(10, 1)},
		{"right at right bound", core.P(10, 39), core.ActionRight, core.P(10, 39)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(40, 20)
			w.Player = tc.start
			w.MovePlayer(tc.action)
			if !w.Player.Equals(tc.expected) {
				t.Errorf("Player = %v, expected %v", w.Player, tc.expected)
			}
		})
	}
}

func TestFireProjectileSingleFlight(t *testing.T) {
	w := newTestWorld(40, 20)

	w.FireProjectile(10)
	if len(w.Projectiles) != 1 {
		t.Fatalf("len(Projectiles) = %d, expected 1", len(w.Projectiles))
	}
	if !w.Projectiles[0].Pos.Equals(w.Player) {
		t.Errorf("Projectile position = %v, expected player position %v", w.Projectiles[0].Pos, w.Player)
	}
	if w.Projectiles[0].Energy != 10 {
		t.Errorf("Energy = %d, expected 10", w.Projectiles[0].Energy)
	}

	// A second launch while one is in flight is a no-op
	w.FireProjectile(10)
	if len(w.Projectiles) != 1 {
		t.Errorf("len(Projectiles) = %d after refire, expected 1", len(w.Projectiles))
	}
}

func TestNewWorldTinyTerminalSaturates(t *testing.T) {
	// Degenerate sizes get saturated geometry rather than panics.
	w := newTestWorld(6, 2)

	if w.Rows[0].Left < 0 {
		t.Errorf("Left wall = %d, should not be negative", w.Rows[0].Left)
	}
	if w.TargetLeft < 0 {
		t.Errorf("TargetLeft = %d, should not be negative", w.TargetLeft)
	}
}
