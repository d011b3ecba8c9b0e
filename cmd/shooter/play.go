package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shooter3d/internal/platform/console"
	"github.com/vovakirdan/shooter3d/internal/platform/eventlog"
	"github.com/vovakirdan/shooter3d/internal/platform/tui"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: shooter).

Controls:
  S/Space  - Fire a bullet
  P        - Pause
  Y        - Play again (after game over)
  N        - Leave (after game over)
  Q/Ctrl+C - Quit

In line mode (--plain, or when stdin is not a terminal) every command
character advances the world one tick and the world is printed after
each tick. Any other character just advances time.

Difficulty options:
  easy   - Weaker enemies, slower spawns
  normal - Default values
  hard   - Tougher enemies, faster spawns, higher enemy cap
  fixed  - Values exactly as configured

Examples:
  shooter play
  shooter play --difficulty hard
  echo "sss q" | shooter play --plain --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use line mode instead of the TUI")
}

func runPlay(cmd *cobra.Command, args []string) error {
	plain := flagPlain || !term.IsTerminal(int(os.Stdin.Fd()))

	logger, closeLog, err := openLogger(!plain)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(gameArg(args), logger)
	if err != nil {
		return err
	}
	events := eventlog.NewRecorder(logger)

	if plain {
		r := &console.Runner{
			In:     os.Stdin,
			Out:    os.Stdout,
			Game:   game,
			Config: runtimeConfig(80, 24),
			Events: events,
		}
		return r.Run(cmd.Context())
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(game, runtimeConfig(width, height), events)
}
