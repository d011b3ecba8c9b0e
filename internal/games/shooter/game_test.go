package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/shooter3d/internal/config"
	"github.com/vovakirdan/shooter3d/internal/core"
	"github.com/vovakirdan/shooter3d/internal/registry"
)

func newTestGame(cfg config.ShooterConfig, seed int64) *Game {
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: seed})
	return g
}

// fastSpawns spawns an enemy every other half-second tick.
func fastSpawns() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.World.DT = 0.5
	cfg.Spawn.Interval = 1
	return cfg
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 60)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%4 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func() *Game {
		g := newTestGame(fastSpawns(), 12345)
		for _, in := range inputs {
			g.Step(in)
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
	e1, e2 := g1.World().Enemies, g2.World().Enemies
	if len(e1) != len(e2) {
		t.Fatalf("enemy counts differ: %d vs %d", len(e1), len(e2))
	}
	for i := range e1 {
		if e1[i].Position != e2[i].Position {
			t.Errorf("enemy %d at %v vs %v", i, e1[i].Position, e2[i].Position)
		}
	}
}

func TestGameFireHappensBeforePhysics(t *testing.T) {
	g := newTestGame(config.DefaultShooterConfig(), 1)
	g.Step(core.FrameOf(core.ActionFire))

	bullets := g.World().Player.Bullets
	if len(bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(bullets))
	}
	if z := bullets[0].Position.Z; z != 5 {
		t.Errorf("bullet z = %g, expected to have moved one tick from 0", z)
	}
	if g.World().Tick != 1 {
		t.Errorf("tick = %d", g.World().Tick)
	}
}

func TestGameIgnoresEmptyInput(t *testing.T) {
	g := newTestGame(config.DefaultShooterConfig(), 1)
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.World().Player.Bullets) != 0 || g.World().Tick != 5 {
		t.Errorf("bullets = %d, tick = %d", len(g.World().Player.Bullets), g.World().Tick)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(config.DefaultShooterConfig(), 1)

	res := g.Step(core.FrameOf(core.ActionPause))
	if !res.State.Paused || g.World().Tick != 0 {
		t.Fatalf("pause should freeze the world, state %+v tick %d", res.State, g.World().Tick)
	}

	g.Step(core.FrameOf(core.ActionFire))
	if len(g.World().Player.Bullets) != 0 {
		t.Error("firing while paused should have no effect")
	}

	res = g.Step(core.FrameOf(core.ActionPause))
	if res.State.Paused || g.World().Tick != 1 {
		t.Errorf("unpausing should resume in the same tick, state %+v tick %d", res.State, g.World().Tick)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(weightless(), 1)
	w := g.World()
	w.Enemies = append(w.Enemies, NewEnemy(w.Player.Position, 1, 250))
	w.Player.Score = 30

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Score != 30 {
		t.Fatalf("state = %+v, expected game over with score kept", res.State)
	}
	if !hasEvent(g.Events(), "game over") {
		t.Errorf("events = %v, expected game over", g.Events())
	}

	tick := w.Tick
	g.Step(core.FrameOf(core.ActionFire))
	if w.Tick != tick || len(w.Player.Bullets) != 0 {
		t.Error("game over should freeze the world until restart")
	}

	res = g.Step(core.FrameOf(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 {
		t.Fatalf("restart should begin a fresh round, state %+v", res.State)
	}
	if !g.Restarted() || g.Round() != 2 || !hasEvent(g.Events(), "restart") {
		t.Errorf("restarted = %v, round = %d, events = %v", g.Restarted(), g.Round(), g.Events())
	}
	p := g.World().Player
	if p.Health != 100 || p.Position != core.Vec3(0, 0, -50) || len(g.World().Enemies) != 0 {
		t.Errorf("player = %+v, enemies = %d", p, len(g.World().Enemies))
	}

	g.Step(core.NewInputFrame())
	if g.Restarted() {
		t.Error("Restarted should only be true for the restarting step")
	}
}

func TestGameEvents(t *testing.T) {
	g := newTestGame(fastSpawns(), 8)

	g.Step(core.NewInputFrame()) // elapsed 0.5
	g.Step(core.NewInputFrame()) // elapsed 1.0, not above the interval
	if len(g.Events()) != 0 {
		t.Fatalf("unexpected events %v", g.Events())
	}
	g.Step(core.NewInputFrame())
	if !hasEvent(g.Events(), "enemy spawned") || !g.LastReport().Spawned {
		t.Errorf("events = %v, expected a spawn", g.Events())
	}
}

func TestGameVariants(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	if g.ID() != GameID || g.World().Config().Spawn.Sampling != config.SamplingUniform {
		t.Errorf("default game: id %q, sampling %q", g.ID(), g.World().Config().Spawn.Sampling)
	}

	c := NewClassic()
	c.Reset(core.DefaultConfig())
	if c.ID() != ClassicGameID || c.World().Config().Spawn.Sampling != config.SamplingLegacy {
		t.Errorf("classic game: id %q, sampling %q", c.ID(), c.World().Config().Spawn.Sampling)
	}
	if c.Title() == g.Title() {
		t.Error("variants should have distinct titles")
	}
}

func TestUseConfig(t *testing.T) {
	orig := activeConfig
	defer UseConfig(orig)

	cfg := config.DefaultShooterConfig()
	cfg.Player.Health = 5
	UseConfig(cfg)

	g := New()
	g.Reset(core.DefaultConfig())
	if g.World().Player.Health != 5 {
		t.Errorf("health = %g, expected the active config to apply", g.World().Player.Health)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{GameID, ClassicGameID} {
		g, err := registry.CreateReporting(id)
		if err != nil {
			t.Fatalf("CreateReporting(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(config.DefaultShooterConfig(), 1)
	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.Row(0), "Score: 0") || !strings.Contains(s.Row(0), "Health: 100") {
		t.Errorf("HUD row = %q", s.Row(0))
	}
	// Player at x=0 (mid column), z=-50 (bottom row) of the radar's inner area.
	if s.Get(27, 22) != PlayerGlyph {
		t.Errorf("player glyph missing, radar:\n%s", s.String())
	}
	if !strings.Contains(s.String(), "Enemies 0/10") {
		t.Error("sidebar should show enemy count")
	}

	w := g.World()
	w.Enemies = append(w.Enemies, NewEnemy(core.Vec3(50, 0, 50), 1, 100))
	g.Render(s)
	if s.Get(53-1, 2) != EnemyGlyph {
		t.Errorf("enemy at the +x/+z corner should be top-right, radar:\n%s", s.String())
	}

	w.Player.Alive = false
	g.Render(s)
	if !strings.Contains(s.String(), "Game Over!") || !strings.Contains(s.String(), "(Y/N)") {
		t.Errorf("game over prompt missing:\n%s", s.String())
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(config.DefaultShooterConfig(), 1)
	s := core.NewScreen(3, 2)
	g.Render(s) // must not panic
}

func hasEvent(events []core.Event, msg string) bool {
	for _, e := range events {
		if e.Msg == msg {
			return true
		}
	}
	return false
}
