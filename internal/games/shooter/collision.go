package shooter

import "github.com/vovakirdan/shooter3d/internal/core"

// CheckCollision reports whether two bodies are strictly closer than threshold.
func CheckCollision(a, b *core.Body, threshold float64) bool {
	return a.Position.Distance(b.Position) < threshold
}

// Collides applies the configured collision threshold.
func (w *World) Collides(a, b *core.Body) bool {
	return CheckCollision(a, b, w.cfg.Collision.Threshold)
}

// OutOfBounds reports whether any coordinate of b lies beyond the world box.
// A coordinate exactly on the boundary is still inside.
func (w *World) OutOfBounds(b *core.Body) bool {
	hx, hy, hz := w.cfg.HalfExtent()
	p := b.Position
	return p.X < -hx || p.X > hx ||
		p.Y < -hy || p.Y > hy ||
		p.Z < -hz || p.Z > hz
}

// resolvePlayerEnemy applies ramming damage. A colliding enemy deals its
// current health to the player and dies, including one already flagged out
// of bounds this tick. Once the player is out of health the remaining
// enemies are not checked against the player this tick.
func (w *World) resolvePlayerEnemy(r *TickReport) {
	p := &w.Player
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if w.Collides(&p.Body, &e.Body) {
			p.Health -= e.Health
			r.DamageTaken += e.Health
			e.Health = 0
			e.Alive = false
			r.Rammed++
		}
		if p.Health <= 0 {
			p.Alive = false
			r.PlayerDied = true
			break
		}
	}
}

// resolveBulletEnemy resolves each bullet against at most one enemy: the
// first one it touches. The bullet is spent on any hit, but the kill bonus
// is only granted when the hit takes a live enemy to zero health, so an
// enemy already dead this tick is never scored twice.
func (w *World) resolveBulletEnemy(r *TickReport) {
	p := &w.Player
	for i := range p.Bullets {
		b := &p.Bullets[i]
		for j := range w.Enemies {
			e := &w.Enemies[j]
			if !w.Collides(&b.Body, &e.Body) {
				continue
			}
			b.Active = false
			e.Health -= b.Damage
			r.Hits++
			if e.Alive && e.Health <= 0 {
				e.Alive = false
				p.Score += w.cfg.Scoring.KillBonus
				r.Kills++
			}
			break
		}
	}
}
