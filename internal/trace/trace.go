// Package trace runs a game headless from a command script and records
// one CSV row per tick.
package trace

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/shooter3d/internal/core"
	"github.com/vovakirdan/shooter3d/internal/games/shooter"
	"github.com/vovakirdan/shooter3d/internal/platform/eventlog"
)

// Record is the state of the world after one tick.
type Record struct {
	Tick         uint64  `csv:"tick"`
	Elapsed      float64 `csv:"elapsed"`
	PlayerX      float64 `csv:"player_x"`
	PlayerY      float64 `csv:"player_y"`
	PlayerZ      float64 `csv:"player_z"`
	PlayerHealth float64 `csv:"player_health"`
	Score        int     `csv:"score"`
	Bullets      int     `csv:"bullets"`
	Enemies      int     `csv:"enemies"`
	Kills        int     `csv:"kills"`
	Spawned      bool    `csv:"spawned"`
	GameOver     bool    `csv:"game_over"`
}

// NewRecord builds a record from a snapshot and the report of the tick that produced it.
func NewRecord(s shooter.Snapshot, r shooter.TickReport) Record {
	return Record{
		Tick:         s.Tick,
		Elapsed:      s.Elapsed,
		PlayerX:      s.PlayerX,
		PlayerY:      s.PlayerY,
		PlayerZ:      s.PlayerZ,
		PlayerHealth: s.PlayerHealth,
		Score:        s.Score,
		Bullets:      s.Bullets,
		Enemies:      s.Enemies,
		Kills:        r.Kills,
		Spawned:      r.Spawned,
		GameOver:     s.Phase == shooter.PhaseGameOver,
	}
}

// Writer appends records to a CSV stream, writing the header once.
type Writer struct {
	out           io.Writer
	headerWritten bool
}

// NewWriter creates a writer on out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write appends one record.
func (w *Writer) Write(rec Record) error {
	records := []Record{rec}

	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("trace: writing record: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
		return fmt.Errorf("trace: writing record: %w", err)
	}
	return nil
}

// Read parses a CSV trace produced by Writer.
func Read(in io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(in, &records); err != nil {
		return nil, fmt.Errorf("trace: reading records: %w", err)
	}
	return records, nil
}

// Summary describes how a run ended.
type Summary struct {
	Ticks uint64
	Score int
	Kills int
	Phase shooter.Phase
}

// Run resets g and steps it once per script character, writing a record
// after every step. Once the script is exhausted the remaining steps get no
// input. A quit command or game over ends the run early. At most maxTicks
// steps are run; paused steps count but do not advance the world.
// Game events of every step go to events, which may be nil.
func Run(ctx context.Context, g *shooter.Game, rt core.RuntimeConfig, script string, maxTicks int, out io.Writer, events *eventlog.Recorder) (Summary, error) {
	if events == nil {
		events = eventlog.NewRecorder(nil)
	}
	g.Reset(rt)
	events.RoundStarted(g.ID(), rt.Seed)
	w := NewWriter(out)
	cmds := []rune(script)

	var sum Summary
	for i := 0; i < maxTicks; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		in := core.NewInputFrame()
		if i < len(cmds) {
			a := core.ParseCommand(cmds[i])
			if a == core.ActionQuit {
				break
			}
			in.Set(a)
		}

		res := g.Step(in)
		events.Emit(g.Events())
		snap := g.Snapshot()
		rep := g.LastReport()
		if snap.Tick == sum.Ticks {
			rep = shooter.TickReport{Tick: snap.Tick}
		}

		sum.Ticks = snap.Tick
		sum.Score = snap.Score
		sum.Kills += rep.Kills
		sum.Phase = snap.Phase

		if err := w.Write(NewRecord(snap, rep)); err != nil {
			return sum, err
		}
		if res.State.GameOver {
			break
		}
	}
	return sum, nil
}
