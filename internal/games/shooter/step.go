package shooter

import (
	"slices"

	"github.com/vovakirdan/shooter3d/internal/core"
)

// TickReport summarises what happened during one world tick.
type TickReport struct {
	Tick           uint64
	Hits           int     // Bullet impacts
	Kills          int     // Enemies destroyed by bullets
	Rammed         int     // Enemies destroyed by colliding with the player
	DamageTaken    float64 // Health the player lost
	BulletsRemoved int     // Bullets compacted away (spent or out of bounds)
	EnemiesRemoved int     // Enemies compacted away (dead or out of bounds)
	PlayerDied     bool
	Spawned        bool
	SpawnPos       core.Vector3
}

// Step advances the world by dt seconds. The order is fixed:
// integrate the player, integrate and bounds-check bullets then enemies,
// resolve player/enemy then bullet/enemy collisions, drop spent bullets and
// dead enemies keeping survivors in order, and finally run the spawn clock.
func (w *World) Step(dt float64) TickReport {
	w.Tick++
	r := TickReport{Tick: w.Tick}

	w.Player.IntegrateWith(dt, w.gravity)

	for i := range w.Player.Bullets {
		b := &w.Player.Bullets[i]
		b.IntegrateWith(dt, w.gravity)
		if w.OutOfBounds(&b.Body) {
			b.Active = false
		}
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		e.IntegrateWith(dt, w.gravity)
		if w.OutOfBounds(&e.Body) {
			e.Alive = false
		}
	}

	w.resolvePlayerEnemy(&r)
	w.resolveBulletEnemy(&r)

	before := len(w.Player.Bullets)
	w.Player.Bullets = slices.DeleteFunc(w.Player.Bullets, func(b Bullet) bool { return !b.Active })
	r.BulletsRemoved = before - len(w.Player.Bullets)

	before = len(w.Enemies)
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e Enemy) bool { return !e.Alive })
	r.EnemiesRemoved = before - len(w.Enemies)

	w.Elapsed += dt
	if w.Elapsed > w.cfg.Spawn.Interval {
		r.SpawnPos, r.Spawned = w.SpawnEnemy()
		w.Elapsed -= w.cfg.Spawn.Interval
	}

	return r
}
