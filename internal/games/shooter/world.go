package shooter

import (
	"math/rand"

	"github.com/vovakirdan/shooter3d/internal/config"
	"github.com/vovakirdan/shooter3d/internal/core"
)

// Phase is the session state derived from the player after each tick.
type Phase int

const (
	PhaseRunning  Phase = iota // Player alive, ticks advance the world
	PhaseGameOver              // Player dead, waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// World owns every entity of a session: the player (and through it the
// bullets), the enemies and the spawn clock. It is mutated only by its own
// methods, one tick at a time.
type World struct {
	Player  Player
	Enemies []Enemy
	Elapsed float64 // Seconds accumulated towards the next spawn
	Tick    uint64  // Ticks since the last reset

	cfg     config.ShooterConfig
	gravity core.Vector3
	rng     *rand.Rand
}

// NewWorld creates a world in its initial state.
// The seed drives enemy spawn positions only.
func NewWorld(cfg config.ShooterConfig, seed int64) *World {
	w := &World{
		cfg:     cfg,
		gravity: core.Vec3(0, cfg.World.Gravity, 0),
		rng:     rand.New(rand.NewSource(seed)),
	}
	w.Reset()
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.ShooterConfig {
	return w.cfg
}

// Reset restores the initial session state: the player back at the start
// position at rest with full health and no score, and no bullets, enemies
// or accumulated time.
func (w *World) Reset() {
	start := core.Vec3(w.cfg.Player.Start.X, w.cfg.Player.Start.Y, w.cfg.Player.Start.Z)
	w.Player = NewPlayer(start, w.cfg.Player.Mass, w.cfg.Player.Health)
	w.Player.Bullets = make([]Bullet, 0, w.cfg.Limits.MaxBullets+1)
	w.Enemies = make([]Enemy, 0, w.cfg.Limits.MaxEnemies)
	w.Elapsed = 0
	w.Tick = 0
}

// Phase reports whether the session is still running.
func (w *World) Phase() Phase {
	if !w.Player.Alive {
		return PhaseGameOver
	}
	return PhaseRunning
}
