package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration.
// It matches defaults/shooter.yaml and is used if the embedded file is unreadable.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			SizeX:   100,
			SizeY:   100,
			SizeZ:   100,
			DT:      0.1,
			Gravity: -9.8,
		},
		Limits: LimitsConfig{
			MaxBullets: 100,
			MaxEnemies: 10,
		},
		Player: PlayerConfig{
			Start:  Point3{X: 0, Y: 0, Z: -50},
			Health: 100,
			Mass:   1,
		},
		Bullet: BulletConfig{
			Speed:  50,
			Damage: 10,
			Mass:   0.01,
		},
		Enemy: EnemyConfig{
			Health: 100,
			Mass:   1,
		},
		Collision: CollisionConfig{
			Threshold: 1.0,
		},
		Spawn: SpawnConfig{
			Interval: 10,
			Sampling: SamplingUniform,
		},
		Scoring: ScoringConfig{
			KillBonus: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
