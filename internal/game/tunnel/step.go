package tunnel

import "github.com/mzheleznov/tui-tunnel/internal/core"

// Projectiles are removed as soon as they climb past the exit row, and
// their energy is zeroed one row earlier so they never leave the screen.
const (
	projectileExitRow = 3
	projectileFadeRow = 2
)

// Tuning holds the per-tick physics parameters, after any difficulty
// scaling has been applied by the caller.
type Tuning struct {
	MinWidth        int     // Enforced floor on corridor width per row
	RetargetChance  float64 // Chance to pick a new drift target once reached
	RetargetRange   int     // New target drawn within +/- this of the old
	SpawnChance     float64 // Chance of a new enemy at row 0
	ProjectileSpeed int     // Rows a projectile climbs per tick
}

// Report summarizes what happened during one tick.
type Report struct {
	EnemiesShot int
}

// Advance runs one simulation tick. The phases run in a fixed order;
// collision checks happen against the pre-scroll geometry, matching what
// the player saw on the previous frame.
func Advance(w *World, tn Tuning) Report {
	var rep Report

	w.checkWallCollision()
	rep.EnemiesShot = w.resolveEnemyHits()
	w.scrollWalls(tn)
	w.retargetWalls(tn)
	w.moveEnemies()
	w.spawnEnemy(tn)
	w.moveProjectiles(tn)

	return rep
}

// checkWallCollision kills the player when its column touches either wall
// of the row it occupies.
func (w *World) checkWallCollision() {
	if w.Player.Row < 0 || w.Player.Row >= len(w.Rows) {
		return
	}
	row := w.Rows[w.Player.Row]
	if w.Player.Col <= row.Left || w.Player.Col >= row.Right {
		w.Status = StatusDead
	}
}

// resolveEnemyHits handles player-enemy and projectile-enemy collisions.
// Enemies are scanned in reverse index order so removal mid-scan is safe.
// Each enemy is removed at most once per tick even if several projectiles
// could hit it. Returns the number of enemies shot down.
func (w *World) resolveEnemyHits() int {
	shot := 0
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if e.Pos.Equals(w.Player) {
			w.Status = StatusDead
		}
		for _, p := range w.Projectiles {
			if p.Pos.Equals(e.Pos) || p.Pos.Equals(e.Pos.Above()) {
				w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
				shot++
				break
			}
		}
	}
	return shot
}

// scrollWalls shifts every span down one row and drifts row 0's edges one
// unit toward their targets. A narrowing step is skipped when it would
// take the corridor below the width floor; the floor is an invariant of
// every row after every tick, not an assumption.
func (w *World) scrollWalls(tn Tuning) {
	for i := len(w.Rows) - 1; i >= 1; i-- {
		w.Rows[i] = w.Rows[i-1]
	}

	head := &w.Rows[0]
	switch {
	case head.Left < w.TargetLeft:
		if head.Right-(head.Left+1) >= tn.MinWidth {
			head.Left++
		}
	case head.Left > w.TargetLeft:
		head.Left--
	}
	switch {
	case head.Right > w.TargetRight:
		if (head.Right-1)-head.Left >= tn.MinWidth {
			head.Right--
		}
	case head.Right < w.TargetRight:
		head.Right++
	}
}

// retargetWalls rolls for a new drift target on each side whose edge has
// arrived. Targets never retarget mid-transition. The width floor is
// restored by pushing the right target up; the left target is left alone.
func (w *World) retargetWalls(tn Tuning) {
	head := w.Rows[0]
	if head.Left == w.TargetLeft && w.rng.Float64() < tn.RetargetChance {
		w.TargetLeft = w.drawTarget(w.TargetLeft, tn.RetargetRange)
	}
	if head.Right == w.TargetRight && w.rng.Float64() < tn.RetargetChance {
		w.TargetRight = w.drawTarget(w.TargetRight, tn.RetargetRange)
	}

	if core.Abs(w.TargetRight-w.TargetLeft) < tn.MinWidth {
		w.TargetRight = core.Min(w.TargetRight+tn.MinWidth, core.Max(w.MaxCol-1, 1))
	}
}

// drawTarget picks a uniform value in [old-spread, old+spread), clamped to
// the visible field so the walls cannot walk off the screen.
func (w *World) drawTarget(old, spread int) int {
	if spread < 1 {
		return old
	}
	v := old - spread + w.rng.Intn(2*spread)
	return core.Clamp(v, 1, core.Max(w.MaxCol-2, 1))
}

// moveEnemies advances every enemy one row down; an enemy that has already
// reached the bottom row is removed instead.
func (w *World) moveEnemies() {
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		if w.Enemies[i].Pos.Row < w.MaxRow {
			w.Enemies[i].Pos.Row++
		} else {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
		}
	}
}

// spawnEnemy rolls for a new enemy at row 0, strictly inside the opening
// near the top of the screen. The opening deliberately spans the left edge
// of row 0 and the right edge of row 1 as an approximation of the corridor
// there.
func (w *World) spawnEnemy(tn Tuning) {
	if w.rng.Float64() >= tn.SpawnChance {
		return
	}
	lo := w.Rows[0].Left
	hi := lo + 2
	if len(w.Rows) > 1 {
		hi = w.Rows[1].Right
	}
	if hi-lo < 2 {
		return
	}
	col := lo + 1 + w.rng.Intn(hi-lo-1)
	w.Enemies = append(w.Enemies, Enemy{Pos: core.P(0, col)})
}

// moveProjectiles climbs every projectile and expires the ones that ran
// out of energy or came too close to the top of the screen.
func (w *World) moveProjectiles(tn Tuning) {
	for i := len(w.Projectiles) - 1; i >= 0; i-- {
		p := &w.Projectiles[i]
		if p.Energy == 0 || p.Pos.Row < projectileExitRow {
			w.Projectiles = append(w.Projectiles[:i], w.Projectiles[i+1:]...)
			continue
		}
		p.Pos.Row = core.Max(p.Pos.Row-tn.ProjectileSpeed, 0)
		p.Energy--
		if p.Pos.Row < projectileFadeRow {
			p.Energy = 0
		}
	}
}
