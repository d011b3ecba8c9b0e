// Package shooter implements a turn-based 3D shooter: a player fires bullets
// along +Z at enemies that spawn periodically inside a cubic world, with
// everything falling under gravity.
package shooter

import (
	"github.com/vovakirdan/shooter3d/internal/config"
	"github.com/vovakirdan/shooter3d/internal/core"
	"github.com/vovakirdan/shooter3d/internal/registry"
)

// Registered game IDs.
const (
	GameID        = "shooter"
	ClassicGameID = "shooter_classic"
)

// activeConfig is the configuration new games start with, set via CLI.
var activeConfig = config.DefaultShooterConfig()

// UseConfig sets the configuration used by games created afterwards.
func UseConfig(cfg config.ShooterConfig) {
	activeConfig = cfg
}

// Game wraps a World with the platform's game contract.
type Game struct {
	classic   bool
	fixed     *config.ShooterConfig
	world     *World
	last      TickReport
	paused    bool
	round     int
	restarted bool
	events    []core.Event
}

// New creates a shooter using the active configuration.
func New() *Game {
	return &Game{}
}

// NewClassic creates a shooter whose enemy spawns use the legacy sampling range.
func NewClassic() *Game {
	return &Game{classic: true}
}

// NewWithConfig creates a shooter bound to cfg regardless of the active configuration.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return ClassicGameID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "3D Shooter (Classic spawns)"
	}
	return "3D Shooter"
}

func (g *Game) config() config.ShooterConfig {
	cfg := activeConfig
	if g.fixed != nil {
		cfg = *g.fixed
	}
	if g.classic {
		cfg.Spawn.Sampling = config.SamplingLegacy
	}
	return cfg
}

// Reset starts a new session. The runtime seed drives enemy spawning.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.world = NewWorld(g.config(), rt.Seed)
	g.last = TickReport{}
	g.paused = false
	g.round = 1
	g.restarted = false
	g.events = g.events[:0]
}

// World exposes the simulation state.
func (g *Game) World() *World {
	return g.world
}

// LastReport returns the report of the most recent world tick.
func (g *Game) LastReport() TickReport {
	return g.last
}

// Round returns the 1-based number of the current session since Reset.
func (g *Game) Round() int {
	return g.round
}

// Restarted reports whether the last Step began a new round.
func (g *Game) Restarted() bool {
	return g.restarted
}

// Step advances the game by one tick.
// After game over only a restart action has any effect; it returns the world
// to its initial state without reseeding, so the next round's spawns differ.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.restarted = false
	g.events = g.events[:0]

	if g.world.Phase() == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.world.Reset()
			g.last = TickReport{}
			g.paused = false
			g.round++
			g.restarted = true
			g.events = append(g.events, core.NewEvent("restart", "round", g.round))
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFire) {
		g.world.ShootBullet()
	}
	g.last = g.world.Step(g.world.cfg.World.DT)
	g.recordEvents(g.last)

	return core.StepResult{State: g.State()}
}

func (g *Game) recordEvents(r TickReport) {
	p := &g.world.Player
	if r.Spawned {
		g.events = append(g.events, core.NewEvent("enemy spawned",
			"tick", r.Tick, "pos", r.SpawnPos.String(), "enemies", len(g.world.Enemies)))
	}
	if r.Kills > 0 {
		g.events = append(g.events, core.NewEvent("enemy killed",
			"tick", r.Tick, "kills", r.Kills, "score", p.Score))
	}
	if r.Rammed > 0 {
		g.events = append(g.events, core.NewEvent("player hit",
			"tick", r.Tick, "damage", r.DamageTaken, "health", p.Health))
	}
	if r.PlayerDied {
		g.events = append(g.events, core.NewEvent("game over",
			"tick", r.Tick, "round", g.round, "score", p.Score))
	}
}

// Events returns the events produced by the last Step.
// The slice is reused by the next Step.
func (g *Game) Events() []core.Event {
	return g.events
}

// StatusLines returns the plain-text dump of the current world.
func (g *Game) StatusLines() []string {
	return StatusLines(g.world)
}

// GameOverLines returns the game-over summary and prompt.
func (g *Game) GameOverLines() []string {
	return GameOverLines(g.world.Player.Score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Player.Score,
		GameOver: g.world.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the current flat state of the world.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicGameID, func() registry.Game {
		return NewClassic()
	})
}
