package shooter

import (
	"math"

	"github.com/vovakirdan/shooter3d/internal/config"
	"github.com/vovakirdan/shooter3d/internal/core"
)

// SpawnEnemy adds one enemy at a random integer position inside the world
// box, unless the enemy cap is reached. It reports whether an enemy was added.
func (w *World) SpawnEnemy() (core.Vector3, bool) {
	if len(w.Enemies) >= w.cfg.Limits.MaxEnemies {
		return core.Vector3{}, false
	}
	pos := core.Vec3(
		w.sampleAxis(w.cfg.World.SizeX),
		w.sampleAxis(w.cfg.World.SizeY),
		w.sampleAxis(w.cfg.World.SizeZ),
	)
	w.Enemies = append(w.Enemies, NewEnemy(pos, w.cfg.Enemy.Mass, w.cfg.Enemy.Health))
	return pos, true
}

// sampleAxis draws one coordinate for an axis of the given full size.
func (w *World) sampleAxis(size float64) float64 {
	if w.cfg.Spawn.Sampling == config.SamplingLegacy {
		// [0, size) shifted by half: the upper edge is never produced.
		return float64(w.rng.Intn(max(int(size), 1))) - size/2
	}
	h := int(math.Floor(size / 2))
	return float64(w.rng.Intn(2*h+1) - h)
}

// ShootBullet fires one bullet straight along +Z from in front of the player,
// inheriting the player's velocity. When the magazine overflows the oldest
// bullets are dropped.
func (w *World) ShootBullet() {
	p := &w.Player
	forward := core.Vec3(0, 0, w.cfg.Bullet.Speed)
	b := NewBullet(
		p.Position.Add(forward),
		p.Velocity.Add(forward),
		w.cfg.Bullet.Mass,
		w.cfg.Bullet.Damage,
	)
	p.Bullets = append(p.Bullets, b)
	if over := len(p.Bullets) - w.cfg.Limits.MaxBullets; over > 0 {
		p.Bullets = append(p.Bullets[:0], p.Bullets[over:]...)
	}
}
