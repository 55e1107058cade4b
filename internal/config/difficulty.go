package config

// Progress is the input the difficulty curve is evaluated against.
type Progress struct {
	Score int
	Ticks int
	Wave  int
}

// DifficultyManager calculates dynamic game parameters based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: ClampLevel(cfg.InitialLevel),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	case "wave":
		// Wave 1 is the starting point
		progress = float64(p.Wave-1) / maxAt
	default:
		return d.initialLevel
	}

	progress = ClampLevel(progress)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedFactor returns the multiplier applied to asteroid spawn speeds.
func (d *DifficultyManager) SpeedFactor(p Progress) float64 {
	return 1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier
}

// ExtraAsteroids returns how many asteroids to add on top of a wave's base count.
func (d *DifficultyManager) ExtraAsteroids(p Progress) int {
	return int(d.Level(p) * float64(d.cfg.Scaling.ExtraAsteroids))
}

// ClampLevel restricts a level to [0, 1].
func ClampLevel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
