// Package console runs a game in line mode: one command character per tick
// from a reader, and the plain-text world dump after every tick.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/vovakirdan/shooter3d/internal/core"
	"github.com/vovakirdan/shooter3d/internal/platform/eventlog"
	"github.com/vovakirdan/shooter3d/internal/registry"
)

// Runner drives a game from a command stream.
type Runner struct {
	In     io.Reader
	Out    io.Writer
	Game   registry.ReportingGame
	Config core.RuntimeConfig
	Events *eventlog.Recorder // Optional
}

// Run resets the game and plays until the user quits, declines to play
// again, the input ends or ctx is cancelled. Reaching the end of the input
// is a normal way to finish and returns nil.
func (r *Runner) Run(ctx context.Context) error {
	if r.Events == nil {
		r.Events = eventlog.NewRecorder(nil)
	}
	in := bufio.NewReader(r.In)

	r.Game.Reset(r.Config)
	r.Events.RoundStarted(r.Game.ID(), r.Config.Seed)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := readCommand(in)
		if err != nil {
			return endOfInput(err)
		}
		if cmd == core.ActionQuit {
			return nil
		}

		res := r.Game.Step(core.FrameOf(cmd))
		r.Events.Emit(r.Game.Events())
		if err := r.writeLines(r.Game.StatusLines()); err != nil {
			return err
		}

		if !res.State.GameOver {
			continue
		}
		again, err := r.promptRestart(in)
		if err != nil || !again {
			return err
		}
	}
}

// promptRestart shows the game-over prompt and waits for a yes or no.
// Any other command is ignored.
func (r *Runner) promptRestart(in *bufio.Reader) (bool, error) {
	if err := r.writeLines(r.Game.GameOverLines()); err != nil {
		return false, err
	}
	for {
		cmd, err := readCommand(in)
		if err != nil {
			return false, endOfInput(err)
		}
		switch cmd {
		case core.ActionRestart:
			r.Game.Step(core.FrameOf(core.ActionRestart))
			r.Events.Emit(r.Game.Events())
			r.Events.RoundStarted(r.Game.ID(), r.Config.Seed)
			return true, nil
		case core.ActionDecline:
			return false, nil
		}
	}
}

func (r *Runner) writeLines(lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(r.Out, l); err != nil {
			return fmt.Errorf("console: write: %w", err)
		}
	}
	return nil
}

// readCommand reads the next non-whitespace character and maps it to an action.
func readCommand(in *bufio.Reader) (core.Action, error) {
	for {
		ch, _, err := in.ReadRune()
		if err != nil {
			return core.ActionNone, err
		}
		if unicode.IsSpace(ch) {
			continue
		}
		return core.ParseCommand(ch), nil
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("console: read: %w", err)
}
