package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in configuration.
// It matches defaults/asteroids.yaml and is used if the embedded file fails to parse.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Field: FieldConfig{
			Width:  640,
			Height: 360,
		},
		Player: PlayerConfig{
			Speed:         120,
			RotationSpeed: 250,
			Radius:        6,
			Lines:         3,
			StartAngle:    -90,
			HitboxDivisor: 1.5,
		},
		Bullets: BulletConfig{
			Speed:           250,
			Width:           2,
			Height:          6,
			MuzzleOffset:    5,
			Padding:         50,
			FireInterval:    1.0 / 8,
			InitialCapacity: 256,
		},
		Asteroids: AsteroidConfig{
			Count:            10,
			Radius:           40,
			Lines:            8,
			MinSpeed:         50,
			MaxSpeed:         100,
			HitboxDivisor:    1.25,
			ShrinkPerHit:     10,
			SpeedUpMin:       10,
			SpeedUpMax:       20,
			TurnRange:        360,
			DestroyedAtLines: 4,
			PerWave:          1,
			Max:              20,
		},
		Scoring: ScoringConfig{
			HitPoints:    10,
			DestroyBonus: 50,
			WaveBonus:    100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ExtraAsteroids:  4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultAsteroidsYAML
}
