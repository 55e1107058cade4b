// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all tunable parameters of the game.
type AsteroidsConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical playfield in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Speed         float64 `yaml:"speed"`          // Units per second while thrusting
	RotationSpeed float64 `yaml:"rotation_speed"` // Degrees per second
	Radius        float64 `yaml:"radius"`
	Lines         int     `yaml:"lines"`
	StartAngle    float64 `yaml:"start_angle"`
	HitboxDivisor float64 `yaml:"hitbox_divisor"` // Hitbox half-size = radius / divisor
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Speed           float64 `yaml:"speed"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MuzzleOffset    float64 `yaml:"muzzle_offset"`    // Spawn distance ahead of the ship
	Padding         float64 `yaml:"padding"`          // Distance outside the field before removal
	FireInterval    float64 `yaml:"fire_interval"`    // Seconds between shots
	InitialCapacity int     `yaml:"initial_capacity"` // Preallocated bullet slots
}

// AsteroidConfig defines the asteroid field.
type AsteroidConfig struct {
	Count            int     `yaml:"count"`
	Radius           float64 `yaml:"radius"`
	Lines            int     `yaml:"lines"`
	MinSpeed         int     `yaml:"min_speed"`
	MaxSpeed         int     `yaml:"max_speed"`
	HitboxDivisor    float64 `yaml:"hitbox_divisor"`
	ShrinkPerHit     float64 `yaml:"shrink_per_hit"`
	SpeedUpMin       int     `yaml:"speed_up_min"`
	SpeedUpMax       int     `yaml:"speed_up_max"`
	TurnRange        int     `yaml:"turn_range"`         // Heading changes by up to +-turn_range degrees
	DestroyedAtLines int     `yaml:"destroyed_at_lines"` // Asteroids at or below this are gone
	PerWave          int     `yaml:"per_wave"`           // Extra asteroids per endless wave
	Max              int     `yaml:"max"`
}

// ScoringConfig defines points.
type ScoringConfig struct {
	HitPoints    int `yaml:"hit_points"`
	DestroyBonus int `yaml:"destroy_bonus"`
	WaveBonus    int `yaml:"wave_bonus"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "wave" or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks/wave at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to asteroid speed factor at max difficulty
	ExtraAsteroids  int     `yaml:"extra_asteroids"`  // Asteroids added to a wave at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks values the simulation divides by or iterates over.
func (c AsteroidsConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have a positive size", ErrInvalidConfig)
	case c.Player.HitboxDivisor <= 0 || c.Asteroids.HitboxDivisor <= 0:
		return fmt.Errorf("%w: hitbox divisors must be positive", ErrInvalidConfig)
	case c.Player.Lines < 3:
		return fmt.Errorf("%w: player needs at least 3 lines", ErrInvalidConfig)
	case c.Asteroids.Count < 1 || c.Asteroids.Max < c.Asteroids.Count:
		return fmt.Errorf("%w: asteroid count must be within [1, max]", ErrInvalidConfig)
	case c.Asteroids.PerWave < 0:
		return fmt.Errorf("%w: asteroid per_wave must not be negative", ErrInvalidConfig)
	case c.Asteroids.Lines < 3 || c.Asteroids.Lines <= c.Asteroids.DestroyedAtLines:
		return fmt.Errorf("%w: asteroids need at least 3 lines and more than destroyed_at_lines", ErrInvalidConfig)
	case c.Asteroids.MinSpeed > c.Asteroids.MaxSpeed:
		return fmt.Errorf("%w: asteroid min_speed exceeds max_speed", ErrInvalidConfig)
	case c.Asteroids.SpeedUpMin > c.Asteroids.SpeedUpMax:
		return fmt.Errorf("%w: asteroid speed_up_min exceeds speed_up_max", ErrInvalidConfig)
	case c.Bullets.FireInterval < 0:
		return fmt.Errorf("%w: fire_interval must not be negative", ErrInvalidConfig)
	}
	return nil
}
