package shooter

import "github.com/vovakirdan/shooter3d/internal/core"

// Bullet is a projectile fired by the player.
// Inactive bullets are removed at the end of the tick.
type Bullet struct {
	core.Body
	Damage float64
	Active bool
}

// NewBullet creates an active bullet.
func NewBullet(pos, vel core.Vector3, mass, damage float64) Bullet {
	return Bullet{
		Body:   core.NewBody(pos, vel, mass),
		Damage: damage,
		Active: true,
	}
}

// Enemy is a hostile body. Dead enemies are removed at the end of the tick.
type Enemy struct {
	core.Body
	Health float64
	Alive  bool
}

// NewEnemy creates a live enemy at rest.
func NewEnemy(pos core.Vector3, mass, health float64) Enemy {
	return Enemy{
		Body:   core.NewBody(pos, core.Vector3{}, mass),
		Health: health,
		Alive:  true,
	}
}

// Player is the single player-controlled body. It owns its bullets, oldest first.
type Player struct {
	core.Body
	Health  float64
	Alive   bool
	Score   int
	Bullets []Bullet
}

// NewPlayer creates a live player at rest with no bullets and no score.
func NewPlayer(start core.Vector3, mass, health float64) Player {
	return Player{
		Body:   core.NewBody(start, core.Vector3{}, mass),
		Health: health,
		Alive:  true,
	}
}
