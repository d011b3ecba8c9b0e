// shooter is a turn-based 3D shooter simulation for the terminal.
//
// Usage:
//
//	shooter list             - List available game variants
//	shooter play [game]      - Play interactively (TUI, or line mode with --plain)
//	shooter sim [game]       - Run a scripted game headless and print a CSV trace
//	shooter config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - TUI tick rate (default: 10)
//	--seed <value>        - RNG seed for reproducible spawns
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/shooter3d/internal/games/shooter"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "3D Shooter - a turn-based shooter in your terminal",
	Long: `3D Shooter simulates a player firing bullets along +Z at enemies that
spawn inside a 100x100x100 world, with everything falling under gravity.

Available commands:
  list     - Show all game variants
  play     - Play a game
  sim      - Run a scripted game and print a CSV trace
  config   - Print the effective configuration

Examples:
  shooter play
  shooter play --plain < commands.txt
  shooter play shooter_classic --difficulty hard
  shooter sim --script "s..s" --ticks 200 --seed 42
  shooter config --config ./my-shooter.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "TUI tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
