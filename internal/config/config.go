// Package config provides YAML-based configuration loading and difficulty
// presets for the shooter simulation.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Spawn sampling modes.
const (
	// SamplingUniform draws integer coordinates uniformly from [-half, +half].
	SamplingUniform = "uniform"
	// SamplingLegacy draws from [0, size) and subtracts half, giving
	// [-half, half-1] on each axis.
	SamplingLegacy = "legacy"
)

// ShooterConfig contains every tunable constant of the simulation.
type ShooterConfig struct {
	World      WorldConfig      `yaml:"world"`
	Limits     LimitsConfig     `yaml:"limits"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Collision  CollisionConfig  `yaml:"collision"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the world box and integration step.
type WorldConfig struct {
	SizeX   float64 `yaml:"size_x"` // Full extent; the box spans ±SizeX/2
	SizeY   float64 `yaml:"size_y"`
	SizeZ   float64 `yaml:"size_z"`
	DT      float64 `yaml:"dt"`      // Seconds per tick
	Gravity float64 `yaml:"gravity"` // Y acceleration, negative is down
}

// LimitsConfig defines the population caps.
type LimitsConfig struct {
	MaxBullets int `yaml:"max_bullets"`
	MaxEnemies int `yaml:"max_enemies"`
}

// PlayerConfig defines the player's initial state.
type PlayerConfig struct {
	Start  Point3  `yaml:"start,flow"`
	Health float64 `yaml:"health"`
	Mass   float64 `yaml:"mass"`
}

// Point3 is a position written as {x: .., y: .., z: ..}.
type Point3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// BulletConfig defines bullet parameters.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
	Mass   float64 `yaml:"mass"`
}

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	Health float64 `yaml:"health"`
	Mass   float64 `yaml:"mass"`
}

// CollisionConfig defines the hit distance.
type CollisionConfig struct {
	Threshold float64 `yaml:"threshold"`
}

// SpawnConfig defines periodic enemy spawning.
type SpawnConfig struct {
	Interval float64 `yaml:"interval"` // Simulated seconds between spawns
	Sampling string  `yaml:"sampling"` // "uniform" or "legacy"
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	KillBonus int `yaml:"kill_bonus"`
}

// DifficultyConfig records which preset, if any, produced this config.
type DifficultyConfig struct {
	Preset string `yaml:"preset"`
}

// HalfExtent returns the half-size of the world box on each axis.
func (c ShooterConfig) HalfExtent() (x, y, z float64) {
	return c.World.SizeX / 2, c.World.SizeY / 2, c.World.SizeZ / 2
}

// Validate checks that the config can drive a simulation.
func (c ShooterConfig) Validate() error {
	switch {
	case c.World.SizeX <= 0 || c.World.SizeY <= 0 || c.World.SizeZ <= 0:
		return fmt.Errorf("%w: world sizes must be positive", ErrInvalidConfig)
	case c.World.DT <= 0:
		return fmt.Errorf("%w: world.dt must be positive, got %g", ErrInvalidConfig, c.World.DT)
	case c.Limits.MaxBullets <= 0:
		return fmt.Errorf("%w: limits.max_bullets must be positive, got %d", ErrInvalidConfig, c.Limits.MaxBullets)
	case c.Limits.MaxEnemies < 0:
		return fmt.Errorf("%w: limits.max_enemies must not be negative, got %d", ErrInvalidConfig, c.Limits.MaxEnemies)
	case c.Player.Health <= 0:
		return fmt.Errorf("%w: player.health must be positive, got %g", ErrInvalidConfig, c.Player.Health)
	case c.Bullet.Damage < 0:
		return fmt.Errorf("%w: bullet.damage must not be negative, got %g", ErrInvalidConfig, c.Bullet.Damage)
	case c.Collision.Threshold <= 0:
		return fmt.Errorf("%w: collision.threshold must be positive, got %g", ErrInvalidConfig, c.Collision.Threshold)
	case c.Spawn.Interval <= 0:
		return fmt.Errorf("%w: spawn.interval must be positive, got %g", ErrInvalidConfig, c.Spawn.Interval)
	case c.Scoring.KillBonus < 0:
		return fmt.Errorf("%w: scoring.kill_bonus must not be negative, got %d", ErrInvalidConfig, c.Scoring.KillBonus)
	}
	switch c.Spawn.Sampling {
	case SamplingUniform, SamplingLegacy:
	default:
		return fmt.Errorf("%w: unknown spawn.sampling %q", ErrInvalidConfig, c.Spawn.Sampling)
	}
	return nil
}

// YAML renders the config as a YAML document.
func (c ShooterConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
