package asteroids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestViewportFitsScreen(t *testing.T) {
	sizes := [][2]int{{80, 24}, {120, 40}, {30, 12}, {200, 30}}
	for _, sz := range sizes {
		vp := NewViewport(sz[0], sz[1], 640, 360)

		assert.GreaterOrEqual(t, vp.Frame.X, 0)
		assert.Equal(t, 1, vp.Frame.Y, "frame starts below the HUD row")
		assert.LessOrEqual(t, vp.Frame.Right(), sz[0])
		assert.LessOrEqual(t, vp.Frame.Bottom(), sz[1])
		assert.InDelta(t, 2*vp.UnitsPerCol, vp.UnitsPerRow, 1e-9)

		in := vp.Inner()
		x, y := vp.ToCell(core.Vec2{X: 0, Y: 0})
		assert.Equal(t, in.X, x)
		assert.Equal(t, in.Y, y)

		x, y = vp.ToCell(core.Vec2{X: 639.9, Y: 359.9})
		assert.True(t, in.Contains(x, y), "far corner %d,%d outside %+v for %v", x, y, in, sz)
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.Row(0), "SCORE 0  BEST 0  WAVE 1  ROCKS 10")
	assert.Contains(t, screen.Row(0), "Asteroids")

	vp := NewViewport(80, 24, 640, 360)
	x, y := vp.ToCell(g.ship.Pos)
	assert.Equal(t, '↑', screen.Get(x, y))
	assert.Equal(t, core.ColorShip, screen.GetCell(x, y).Color)
}

func TestRenderBestScore(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.SetBest(750)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.Row(0), "SCORE 0  BEST 750")

	// A run beating the record shows its own score
	g.score = 900
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "SCORE 900  BEST 900")

	// The record survives a restart
	g.phase = PhaseGameOver
	g.Step(input(core.ActionConfirm))
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "SCORE 0  BEST 900")
}

func TestRenderBullet(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	isolate(g)
	g.bullets.Append(Bullet{Pos: core.Vec2{X: 100, Y: 100}, Size: core.Vec2{X: 2, Y: 6}})
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	x, y := NewViewport(80, 24, 640, 360).ToCell(core.Vec2{X: 100, Y: 100})
	assert.Equal(t, BulletChar, screen.Get(x, y))
}

func TestRenderSkipsDestroyedAsteroids(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.asteroids = []Poly{{Pos: core.Vec2{X: 100, Y: 100}, Radius: 4, Lines: 4, Alive: false}}
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	x, y := NewViewport(80, 24, 640, 360).ToCell(core.Vec2{X: 100, Y: 100})
	assert.Equal(t, ' ', screen.Get(x, y))
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	screen := core.NewScreen(20, 8)

	g.Render(screen)

	assert.Contains(t, screen.String(), "Terminal too small")
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	screen := core.NewScreen(80, 24)

	g.Step(input(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(input(core.ActionPause))
	g.phase = PhaseGameOver
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Press Enter to play again")

	g.phase = PhaseCleared
	g.Render(screen)
	assert.Contains(t, screen.String(), "FIELD CLEARED")
}

func TestRenderDebugShowsBulletCount(t *testing.T) {
	g := NewWithConfig(ModeClassic, config.DefaultAsteroidsConfig())
	rt := testRuntime(1)
	rt.Debug = true
	g.Reset(rt)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	require.True(t, strings.Contains(screen.Row(23), "bullets=0 cap=256"))
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{90, '↓'},
		{-90, '↑'},
		{180, '←'},
		{350, '→'},
		{130, '↙'},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, shipGlyph(tc.angle), "angle %v", tc.angle)
	}
}
