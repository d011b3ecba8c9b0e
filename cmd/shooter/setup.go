package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shooter3d/internal/config"
	"github.com/vovakirdan/shooter3d/internal/core"
	"github.com/vovakirdan/shooter3d/internal/games/shooter"
	"github.com/vovakirdan/shooter3d/internal/registry"
)

// loadConfig resolves the configuration from --config and --difficulty.
// The flag preset wins over one named in the file.
func loadConfig() (config.ShooterConfig, string, error) {
	cfg, source, err := config.LoadShooter(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	name := flagDifficulty
	if name == "" {
		name = cfg.Difficulty.Preset
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyShooterPreset(&cfg, preset)
	return cfg, source, nil
}

// newGame loads the configuration and creates the requested variant.
func newGame(gameID string, logger *log.Logger) (registry.ReportingGame, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q, run 'shooter list' to see available games", gameID)
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "source", source, "preset", cfg.Difficulty.Preset)
	shooter.UseConfig(cfg)

	game, err := registry.CreateReporting(gameID)
	if err != nil {
		return nil, fmt.Errorf("error creating game: %w", err)
	}
	return game, nil
}

// runtimeConfig builds the runtime config from the global flags.
// A zero seed is replaced with a time-based one.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return shooter.GameID
}
