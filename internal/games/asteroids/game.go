// Package asteroids implements the Asteroids game.
// A triangle ship flies over a wrapping field, shoots bullets, and must avoid
// or destroy drifting asteroids. All logic runs on fixed ticks and is fully
// deterministic for a given seed and input sequence.
package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Phase is the high-level game state.
type Phase int

const (
	PhasePlaying  Phase = iota // Simulation running
	PhaseGameOver              // Ship collided with an asteroid
	PhaseCleared               // Classic mode: every asteroid destroyed
)

// String returns the phase name used in snapshots.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic GameMode = iota // One field; clearing it ends the round
	ModeEndless                 // New, larger waves until the ship is hit
)

// Registry IDs.
const (
	IDClassic = "asteroids"
	IDEndless = "asteroids_endless"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// CheckConfig loads the config that new games will use and reports why it
// cannot be used. Games fall back to the defaults in that case.
func CheckConfig() error {
	_, err := config.LoadAsteroids(configPath)
	return err
}

// Game implements the Asteroids game logic.
type Game struct {
	mode GameMode

	ship      Poly
	asteroids []Poly
	bullets   *BulletPool

	phase     Phase
	paused    bool
	score     int
	best      int // Stored high score, shown in the HUD
	wave      int
	tickCount int
	fireTimer float64 // Seconds since the last shot
	restarts  int

	runtime    core.RuntimeConfig
	cfg        config.AsteroidsConfig
	override   *config.AsteroidsConfig // Fixed config, bypasses file loading
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// New creates a new Asteroids game instance (classic mode).
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new Asteroids game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
// Replays use this to rerun with the exact recorded configuration.
func NewWithConfig(mode GameMode, cfg config.AsteroidsConfig) *Game {
	return &Game{mode: mode, override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Asteroids (Endless)"
	}
	return "Asteroids"
}

// Description returns a one-line summary of the mode.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Waves keep growing until the ship is hit"
	}
	return "Clear one field of rocks"
}

// Mode returns the game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}

// Config returns the configuration the current run uses.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.restarts = 0
	g.startRound()
}

// loadConfig resolves the game config: override, then file/preset.
func (g *Game) loadConfig() config.AsteroidsConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	return cfg
}

// startRound resets everything except the RNG stream.
func (g *Game) startRound() {
	g.phase = PhasePlaying
	g.paused = false
	g.best = max(g.best, g.score)
	g.score = 0
	g.wave = 1
	g.tickCount = 0
	// First shot is available immediately
	g.fireTimer = g.cfg.Bullets.FireInterval

	g.ship = g.newShip()
	if g.bullets == nil {
		g.bullets = NewBulletPool(g.cfg.Bullets.InitialCapacity)
	} else {
		g.bullets.Reset()
	}
	g.asteroids = make([]Poly, 0, g.cfg.Asteroids.Max)
	g.spawnWave()
}

// SetBest sets the high score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase != PhasePlaying {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.restarts++
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.DeltaTime()
	result := core.StepResult{}

	g.tickCount++
	g.fireTimer += dt

	g.updateShip(in, dt)

	if in.Has(core.ActionFire) && g.fireTimer >= g.cfg.Bullets.FireInterval {
		g.shoot()
		g.fireTimer = 0
		result.ShotsFired++
	}

	g.updateBullets(dt)
	g.updateAsteroids(dt)

	result.Hits, result.Destroyed = g.resolveBulletHits()

	if g.shipCollides() {
		g.phase = PhaseGameOver
	}

	g.bullets.Compact()

	if g.phase == PhasePlaying && g.liveAsteroids() == 0 {
		g.score += g.cfg.Scoring.WaveBonus
		if g.mode == ModeEndless {
			g.wave++
			g.spawnWave()
		} else {
			g.phase = PhaseCleared
		}
	}

	result.State = g.State()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Wave:     g.wave,
		GameOver: g.phase != PhasePlaying,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Register the game modes with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}
