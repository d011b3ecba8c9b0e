// Package eventlog writes game events to a structured charm logger.
// Each round gets a random id so the lines of a session can be grouped.
package eventlog

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/shooter3d/internal/core"
)

// Prefix is prepended to every log line.
const Prefix = "shooter"

// New creates a timestamped logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
	})
	logger.SetLevel(level)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

// Recorder forwards game events to a logger, tagged with the current round.
type Recorder struct {
	logger *log.Logger
	base   *log.Logger
	round  string
}

// NewRecorder creates a recorder. A nil logger discards events.
func NewRecorder(logger *log.Logger) *Recorder {
	if logger == nil {
		logger = Discard()
	}
	return &Recorder{logger: logger, base: logger}
}

// RoundStarted begins a new round and logs it at info level.
func (r *Recorder) RoundStarted(gameID string, seed int64) string {
	r.round = uuid.NewString()
	r.logger = r.base.With("round", r.round)
	r.logger.Info("round started", "game", gameID, "seed", seed)
	return r.round
}

// Round returns the id of the current round, empty before the first one.
func (r *Recorder) Round() string {
	return r.round
}

// Emit logs each event. Spawns and hits are debug noise; kills, restarts
// and game over are logged at info level.
func (r *Recorder) Emit(events []core.Event) {
	for _, ev := range events {
		switch ev.Msg {
		case "enemy spawned", "player hit":
			r.logger.Debug(ev.Msg, ev.KeyVals...)
		default:
			r.logger.Info(ev.Msg, ev.KeyVals...)
		}
	}
}

// Logger returns the logger events are written to.
func (r *Recorder) Logger() *log.Logger {
	return r.logger
}
