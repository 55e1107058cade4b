package asteroids

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, mode GameMode) *Game {
	t.Helper()
	g := NewWithConfig(mode, config.DefaultAsteroidsConfig())
	g.Reset(testRuntime(42))
	return g
}

// isolate leaves a single stationary asteroid far from the ship.
func isolate(g *Game) {
	g.asteroids = []Poly{{
		Pos:    core.Vec2{X: 600, Y: 300},
		Radius: 40,
		Lines:  8,
		Alive:  true,
	}}
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t, ModeClassic)

	assert.Equal(t, core.Vec2{X: 320, Y: 180}, g.ship.Pos)
	assert.Equal(t, -90.0, g.ship.Angle)
	assert.Equal(t, 3, g.ship.Lines)
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 0, g.bullets.Len())
	assert.Equal(t, 256, g.bullets.Cap())

	require.Len(t, g.asteroids, 10)
	for _, a := range g.asteroids {
		assert.True(t, a.Alive)
		assert.Equal(t, 0.0, a.Pos.Y)
		assert.GreaterOrEqual(t, a.Pos.X, 0.0)
		assert.LessOrEqual(t, a.Pos.X, 640.0)
		assert.Equal(t, 40.0, a.Radius)
		assert.Equal(t, 8, a.Lines)
		assert.GreaterOrEqual(t, a.Speed, 50.0)
		assert.LessOrEqual(t, a.Speed, 100.0)
		assert.GreaterOrEqual(t, a.Angle, -360.0)
		assert.LessOrEqual(t, a.Angle, 360.0)
	}

	state := g.State()
	assert.Equal(t, core.GameState{Score: 0, Wave: 1}, state)
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		switch {
		case i%40 < 10:
			inputs[i] = input(core.ActionRotateLeft, core.ActionFire)
		case i%40 < 25:
			inputs[i] = input(core.ActionThrust, core.ActionFire)
		default:
			inputs[i] = input(core.ActionRotateRight)
		}
	}

	run := func() (uint64, core.GameState) {
		g := newTestGame(t, ModeEndless)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Checksum(), g.State()
	}

	sum1, state1 := run()
	sum2, state2 := run()
	assert.Equal(t, sum1, sum2, "same seed and inputs must produce the same state")
	assert.Equal(t, state1, state2)
	assert.NotZero(t, sum1)
}

func TestShipRotation(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	isolate(g)

	g.Step(input(core.ActionRotateRight))
	assert.InDelta(t, 270+250.0/60, g.ship.Angle, 1e-9)

	g.Step(input(core.ActionRotateLeft))
	g.Step(input(core.ActionRotateLeft))
	assert.InDelta(t, 270-250.0/60, g.ship.Angle, 1e-9)
}

func TestShipThrustMovesAlongHeading(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	isolate(g)

	g.Step(input(core.ActionThrust))
	assert.InDelta(t, 320, g.ship.Pos.X, 1e-9)
	assert.InDelta(t, 180-2.0, g.ship.Pos.Y, 1e-9)

	// No thrust, no drift
	g.Step(input())
	assert.InDelta(t, 178, g.ship.Pos.Y, 1e-9)
}

func TestShipWrapsAtFieldEdges(t *testing.T) {
	tests := []struct {
		name     string
		pos      core.Vec2
		angle    float64
		expected core.Vec2
	}{
		{"left edge", core.Vec2{X: 1, Y: 100}, 180, core.Vec2{X: 640, Y: 100}},
		{"right edge", core.Vec2{X: 639, Y: 100}, 0, core.Vec2{X: 0, Y: 100}},
		{"top edge", core.Vec2{X: 100, Y: 1}, 270, core.Vec2{X: 100, Y: 360}},
		{"bottom edge", core.Vec2{X: 100, Y: 359}, 90, core.Vec2{X: 100, Y: 0}},
		{"top left corner", core.Vec2{X: 1, Y: 1}, 225, core.Vec2{X: 640, Y: 360}},
		{"bottom right corner", core.Vec2{X: 639, Y: 359}, 45, core.Vec2{X: 0, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, ModeClassic)
			isolate(g)
			g.ship.Pos = tc.pos
			g.ship.Angle = tc.angle

			g.Step(input(core.ActionThrust))

			assert.InDelta(t, tc.expected.X, g.ship.Pos.X, 1e-6)
			assert.InDelta(t, tc.expected.Y, g.ship.Pos.Y, 1e-6)
			assert.Equal(t, PhasePlaying, g.Phase())
		})
	}
}

func TestAsteroidWrapsWithRadiusMargin(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.asteroids = []Poly{
		{Pos: core.Vec2{X: 679.5, Y: 100}, Angle: 0, Radius: 40, Lines: 8, Speed: 60, Alive: true},
		{Pos: core.Vec2{X: 100, Y: -39.5}, Angle: 270, Radius: 40, Lines: 8, Speed: 60, Alive: true},
	}

	g.Step(input())

	assert.Equal(t, -40.0, g.asteroids[0].Pos.X)
	assert.InDelta(t, 100, g.asteroids[0].Pos.Y, 1e-9)
	assert.Equal(t, 400.0, g.asteroids[1].Pos.Y)
}

func TestAsteroidWrapsBothAxesAtCorner(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.asteroids = []Poly{
		{Pos: core.Vec2{X: 679.5, Y: -39.5}, Angle: 315, Radius: 40, Lines: 8, Speed: 60, Alive: true},
	}

	g.Step(input())

	assert.Equal(t, -40.0, g.asteroids[0].Pos.X)
	assert.Equal(t, 400.0, g.asteroids[0].Pos.Y)
}

func TestWaveNeverEmpty(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Asteroids.Count = 0
	cfg.Asteroids.Max = 0
	g := NewWithConfig(ModeEndless, cfg)
	g.Reset(testRuntime(42))

	require.Equal(t, 1, g.liveAsteroids())
	for range 60 {
		g.Step(input())
	}
	assert.Equal(t, 1, g.State().Wave)
	assert.Zero(t, g.State().Score)
}

func TestAsteroidInsideMarginDoesNotWrap(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.asteroids = []Poly{
		{Pos: core.Vec2{X: 650, Y: 100}, Angle: 0, Radius: 40, Lines: 8, Speed: 60, Alive: true},
	}

	g.Step(input())
	assert.InDelta(t, 651, g.asteroids[0].Pos.X, 1e-9)
}

func TestFireSpawnsBulletAheadOfShip(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	isolate(g)

	res := g.Step(input(core.ActionFire))
	assert.Equal(t, 1, res.ShotsFired)
	require.Equal(t, 1, g.bullets.Len())

	b := g.bullets.Items()[0]
	assert.InDelta(t, 320, b.Pos.X, 1e-9)
	assert.InDelta(t, 180-5-250.0/60, b.Pos.Y, 1e-9)
	assert.Equal(t, core.Vec2{X: 2, Y: 6}, b.Size)
	assert.Equal(t, g.ship.Angle, b.Angle)
}

func TestFireRateLimit(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	isolate(g)

	shots := 0
	for range 60 {
		shots += g.Step(input(core.ActionFire)).ShotsFired
	}
	// One shot right away, then one every 8 ticks at 60 Hz
	assert.Equal(t, 8, shots)
}

func TestBulletRemovedPastPadding(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	isolate(g)
	g.bullets.Append(Bullet{Pos: core.Vec2{X: 320, Y: -48}, Size: core.Vec2{X: 2, Y: 6}, Angle: 270})
	g.bullets.Append(Bullet{Pos: core.Vec2{X: 320, Y: 100}, Size: core.Vec2{X: 2, Y: 6}, Angle: 270})

	g.Step(input())

	require.Equal(t, 1, g.bullets.Len())
	assert.InDelta(t, 100-250.0/60, g.bullets.Items()[0].Pos.Y, 1e-9)
}

func TestBulletHitShrinksAsteroid(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.asteroids = []Poly{
		{Pos: core.Vec2{X: 320, Y: 60}, Radius: 40, Lines: 8, Alive: true},
		{Pos: core.Vec2{X: 600, Y: 300}, Radius: 40, Lines: 8, Alive: true},
	}
	g.bullets.Append(Bullet{Pos: core.Vec2{X: 318, Y: 60}, Size: core.Vec2{X: 2, Y: 6}, Angle: 0})

	res := g.Step(input())

	assert.Equal(t, 1, res.Hits)
	assert.Equal(t, 0, res.Destroyed)
	assert.Equal(t, 0, g.bullets.Len(), "bullet is consumed by the hit")

	a := g.asteroids[0]
	assert.True(t, a.Alive)
	assert.Equal(t, 30.0, a.Radius)
	assert.Equal(t, 7, a.Lines)
	assert.GreaterOrEqual(t, a.Speed, 10.0)
	assert.LessOrEqual(t, a.Speed, 20.0)
	assert.Equal(t, 10, g.State().Score)
}

func TestBulletHitsOnlyOneAsteroid(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.asteroids = []Poly{
		{Pos: core.Vec2{X: 320, Y: 60}, Radius: 40, Lines: 8, Alive: true},
		{Pos: core.Vec2{X: 330, Y: 60}, Radius: 40, Lines: 8, Alive: true},
	}
	g.bullets.Append(Bullet{Pos: core.Vec2{X: 322, Y: 60}, Size: core.Vec2{X: 2, Y: 6}, Angle: 0})

	res := g.Step(input())
	assert.Equal(t, 1, res.Hits)
	assert.Equal(t, 8, g.asteroids[1].Lines)
}

func TestAsteroidDestroyedAfterFourHits(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	a := Poly{Radius: 40, Lines: 8, Alive: true}

	for i := range 3 {
		assert.False(t, g.hitAsteroid(&a), "hit %d should not destroy", i+1)
	}
	assert.True(t, g.hitAsteroid(&a))
	assert.False(t, a.Alive)
	assert.Equal(t, 4, a.Lines)
}

func TestClearingClassicFieldEndsRound(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.asteroids = []Poly{
		{Pos: core.Vec2{X: 320, Y: 60}, Radius: 10, Lines: 5, Alive: true},
	}
	g.bullets.Append(Bullet{Pos: core.Vec2{X: 318, Y: 60}, Size: core.Vec2{X: 2, Y: 6}, Angle: 0})

	res := g.Step(input())

	assert.Equal(t, 1, res.Destroyed)
	assert.Equal(t, PhaseCleared, g.Phase())
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 10+50+100, res.State.Score)
}

func TestEndlessSpawnsNextWave(t *testing.T) {
	g := newTestGame(t, ModeEndless)
	g.asteroids = []Poly{
		{Pos: core.Vec2{X: 320, Y: 60}, Radius: 10, Lines: 5, Alive: true},
	}
	g.bullets.Append(Bullet{Pos: core.Vec2{X: 318, Y: 60}, Size: core.Vec2{X: 2, Y: 6}, Angle: 0})

	res := g.Step(input())

	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 2, res.State.Wave)
	assert.Equal(t, 11, g.liveAsteroids())
}

func TestShipCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.asteroids = []Poly{
		{Pos: core.Vec2{X: 320, Y: 160}, Radius: 40, Lines: 8, Alive: true},
	}

	res := g.Step(input())

	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.True(t, res.State.GameOver)

	// Game over ignores play input
	g.Step(input(core.ActionThrust, core.ActionFire))
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, 0, g.bullets.Len())
}

func TestDestroyedAsteroidDoesNotCollide(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.asteroids = []Poly{
		{Pos: core.Vec2{X: 320, Y: 180}, Radius: 0, Lines: 4, Alive: false},
		{Pos: core.Vec2{X: 600, Y: 300}, Radius: 40, Lines: 8, Alive: true},
	}

	g.Step(input())
	assert.Equal(t, PhasePlaying, g.Phase())
}

func TestConfirmRestartsAfterGameOver(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.ship.Pos = core.Vec2{X: 10, Y: 10}
	g.asteroids = []Poly{
		{Pos: core.Vec2{X: 10, Y: 10}, Radius: 40, Lines: 8, Alive: true},
	}
	g.score = 70
	g.Step(input())
	require.Equal(t, PhaseGameOver, g.Phase())

	res := g.Step(input(core.ActionConfirm))

	assert.Equal(t, PhasePlaying, g.Phase())
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, core.Vec2{X: 320, Y: 180}, g.ship.Pos)
	assert.Equal(t, 10, g.liveAsteroids())
	assert.Equal(t, 1, g.restarts)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	isolate(g)

	g.Step(input(core.ActionPause))
	require.True(t, g.State().Paused)

	before := g.Checksum()
	g.Step(input(core.ActionThrust, core.ActionFire))
	assert.Equal(t, before, g.Checksum())

	g.Step(input(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestBulletPoolGrowsAndCompacts(t *testing.T) {
	p := NewBulletPool(2)
	for i := range 3 {
		p.Append(Bullet{Angle: float64(i)})
	}
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 4, p.Cap())

	p.Items()[1].QueueFree = true
	p.Compact()

	require.Equal(t, 2, p.Len())
	assert.Equal(t, 0.0, p.Items()[0].Angle)
	assert.Equal(t, 2.0, p.Items()[1].Angle)

	p.Reset()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 4, p.Cap())
}

func TestBrokenConfigFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asteroids.yaml")
	require.NoError(t, os.WriteFile(path, []byte("asteroids:\n  count: 0\n"), 0o600))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	assert.ErrorIs(t, CheckConfig(), config.ErrInvalidConfig)

	g := New()
	g.Reset(testRuntime(1))
	ref := NewWithConfig(ModeClassic, config.DefaultAsteroidsConfig())
	ref.Reset(testRuntime(1))
	assert.Equal(t, ref.Checksum(), g.Checksum())
}

func TestModeMetadata(t *testing.T) {
	assert.Equal(t, IDClassic, New().ID())
	assert.Equal(t, IDEndless, NewEndless().ID())
	assert.Equal(t, "Asteroids (Endless)", NewEndless().Title())
}

func TestModesRegistered(t *testing.T) {
	info, ok := registry.Info(IDEndless)
	require.True(t, ok)
	assert.Equal(t, NewEndless().Title(), info.Title)
	assert.Equal(t, NewEndless().Description(), info.Description)
	assert.True(t, registry.Exists(IDClassic))
}
