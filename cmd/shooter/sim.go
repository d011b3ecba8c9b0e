package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooter3d/internal/games/shooter"
	"github.com/vovakirdan/shooter3d/internal/platform/eventlog"
	"github.com/vovakirdan/shooter3d/internal/trace"
)

var (
	flagScript string
	flagTicks  int
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run a scripted game and print a CSV trace",
	Long: `Runs the game without a terminal UI. Each character of --script is the
command for one tick (S fires, P pauses, Q stops, anything else waits);
once the script runs out the remaining ticks get no input. One CSV row is
printed per tick. The run stops at game over or after --ticks ticks.

Examples:
  shooter sim --ticks 500 --seed 1
  shooter sim --script "s.........s" --ticks 100 > trace.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Commands, one character per tick")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := openLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(gameArg(args), logger)
	if err != nil {
		return err
	}
	g, ok := game.(*shooter.Game)
	if !ok {
		return fmt.Errorf("game %q cannot be traced", game.ID())
	}

	rt := runtimeConfig(80, 24)
	sum, err := trace.Run(cmd.Context(), g, rt, flagScript, flagTicks, os.Stdout, eventlog.NewRecorder(logger))
	if err != nil {
		return err
	}
	logger.Info("simulation finished",
		"game", g.ID(), "seed", rt.Seed, "ticks", sum.Ticks,
		"score", sum.Score, "kills", sum.Kills, "phase", sum.Phase)
	return nil
}
