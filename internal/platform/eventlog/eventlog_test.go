package eventlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shooter3d/internal/core"
)

func TestRecorderRoundIDs(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(New(&buf, log.InfoLevel))

	if r.Round() != "" {
		t.Errorf("Round() = %q before any round", r.Round())
	}
	first := r.RoundStarted("shooter", 7)
	second := r.RoundStarted("shooter", 7)
	if first == "" || first == second {
		t.Errorf("round ids %q and %q should be distinct and non-empty", first, second)
	}

	out := buf.String()
	if !strings.Contains(out, "round started") || !strings.Contains(out, second) {
		t.Errorf("log output missing round start:\n%s", out)
	}
	if !strings.Contains(out, Prefix) {
		t.Errorf("log output missing prefix:\n%s", out)
	}
}

func TestRecorderEmitLevels(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(New(&buf, log.InfoLevel))
	r.RoundStarted("shooter", 1)
	buf.Reset()

	r.Emit([]core.Event{
		core.NewEvent("enemy spawned", "tick", 101),
		core.NewEvent("enemy killed", "tick", 120, "score", 10),
	})

	out := buf.String()
	if strings.Contains(out, "enemy spawned") {
		t.Errorf("spawn events should be debug only:\n%s", out)
	}
	if !strings.Contains(out, "enemy killed") || !strings.Contains(out, "score=10") {
		t.Errorf("kill event missing:\n%s", out)
	}
}

func TestNilLoggerDiscards(t *testing.T) {
	r := NewRecorder(nil)
	r.RoundStarted("shooter", 1)
	r.Emit([]core.Event{core.NewEvent("game over")})
	if r.Logger() == nil {
		t.Error("Logger() should never be nil")
	}
}
