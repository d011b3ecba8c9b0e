package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shooter3d/internal/config"
	"github.com/vovakirdan/shooter3d/internal/core"
	"github.com/vovakirdan/shooter3d/internal/games/shooter"
	"github.com/vovakirdan/shooter3d/internal/platform/eventlog"
)

var rt = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 99}

func TestRunWritesOneRowPerTick(t *testing.T) {
	g := shooter.NewWithConfig(config.DefaultShooterConfig())
	var buf bytes.Buffer

	sum, err := Run(context.Background(), g, rt, "s.s", 5, &buf, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if sum.Ticks != 5 || sum.Phase != shooter.PhaseRunning {
		t.Errorf("summary = %+v", sum)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, expected header + 5 rows:\n%s", len(lines), buf.String())
	}
	expectedHeader := "tick,elapsed,player_x,player_y,player_z,player_health,score,bullets,enemies,kills,spawned,game_over"
	if lines[0] != expectedHeader {
		t.Errorf("header = %q", lines[0])
	}

	records, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	bullets := []int{1, 1, 2, 2, 2}
	for i, rec := range records {
		if rec.Tick != uint64(i+1) {
			t.Errorf("row %d tick = %d", i, rec.Tick)
		}
		if rec.Bullets != bullets[i] {
			t.Errorf("row %d bullets = %d, expected %d", i, rec.Bullets, bullets[i])
		}
	}
}

func TestRunQuitStopsEarly(t *testing.T) {
	g := shooter.NewWithConfig(config.DefaultShooterConfig())
	var buf bytes.Buffer

	sum, err := Run(context.Background(), g, rt, "..q..", 100, &buf, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if sum.Ticks != 2 {
		t.Errorf("ticks = %d, expected 2", sum.Ticks)
	}
}

// lethal spawns one enemy on the player after the first tick, killing it on the second.
func lethal() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.World.Gravity = 0
	cfg.World.SizeX, cfg.World.SizeY, cfg.World.SizeZ = 1, 1, 1
	cfg.World.DT = 1
	cfg.Spawn.Interval = 0.5
	cfg.Player.Start = config.Point3{}
	cfg.Enemy.Health = 500
	return cfg
}

func TestRunStopsAtGameOver(t *testing.T) {
	g := shooter.NewWithConfig(lethal())
	var buf bytes.Buffer

	sum, err := Run(context.Background(), g, rt, "", 100, &buf, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if sum.Ticks != 2 || sum.Phase != shooter.PhaseGameOver {
		t.Errorf("summary = %+v, expected game over at tick 2", sum)
	}
	records, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	last := records[len(records)-1]
	if !last.GameOver || last.PlayerHealth != -400 {
		t.Errorf("last record = %+v", last)
	}
	if !records[0].Spawned {
		t.Error("first tick should have spawned the enemy")
	}
}

func TestRunPausedStepsRepeatState(t *testing.T) {
	g := shooter.NewWithConfig(config.DefaultShooterConfig())
	var buf bytes.Buffer

	sum, err := Run(context.Background(), g, rt, ".p.p", 4, &buf, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	// Ticks: 1, paused, paused, unpaused and ticked.
	if sum.Ticks != 2 {
		t.Errorf("ticks = %d, expected 2", sum.Ticks)
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Spawn.Interval = 0.25

	run := func() string {
		var buf bytes.Buffer
		if _, err := Run(context.Background(), shooter.NewWithConfig(cfg), rt, strings.Repeat("s...", 20), 80, &buf, nil); err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		return buf.String()
	}
	if a, b := run(), run(); a != b {
		t.Error("same seed and script should give identical traces")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := Run(ctx, shooter.NewWithConfig(config.DefaultShooterConfig()), rt, "", 10, &buf, nil)
	if err != context.Canceled {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
}

func TestRunLogsGameEvents(t *testing.T) {
	var logs, csv bytes.Buffer
	events := eventlog.NewRecorder(eventlog.New(&logs, log.DebugLevel))

	if _, err := Run(context.Background(), shooter.NewWithConfig(lethal()), rt, "", 100, &csv, events); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	out := logs.String()
	for _, msg := range []string{"round started", "enemy spawned", "player hit", "game over"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
	if !strings.Contains(out, events.Round()) {
		t.Error("events should carry the round id")
	}
}
