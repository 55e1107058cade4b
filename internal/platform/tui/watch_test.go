package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/replay"
)

// recordTicks records n ticks of steady fire on a classic game.
func recordTicks(t *testing.T, n int) *replay.File {
	t.Helper()

	cfg := config.DefaultAsteroidsConfig()
	rt := testConfig()
	g := asteroids.NewWithConfig(asteroids.ModeClassic, cfg)
	g.Reset(rt)

	rec := replay.NewRecorder(g.ID(), rt, cfg)
	for range n {
		in := core.NewInputFrame()
		in.Set(core.ActionFire)
		g.Step(in)
		rec.Record(in)
	}
	return rec.Finish(g.Checksum(), g.State().Score)
}

func updateWatch(t *testing.T, m WatchModel, msg tea.Msg) WatchModel {
	t.Helper()
	next, _ := m.Update(msg)
	w, ok := next.(WatchModel)
	require.True(t, ok)
	return w
}

func TestWatchPlaysAndVerifies(t *testing.T) {
	f := recordTicks(t, 10)
	m, err := NewWatchModel(f, testConfig())
	require.NoError(t, err)

	for range 9 {
		m = updateWatch(t, m, TickMsg{})
	}
	assert.False(t, m.Verified())
	assert.Contains(t, m.View(), "playing")

	m = updateWatch(t, m, TickMsg{})
	assert.True(t, m.Verified())
	assert.Contains(t, m.View(), "verified")
}

func TestWatchDebugDrawsHitboxes(t *testing.T) {
	f := recordTicks(t, 5)
	cfg := testConfig()
	cfg.Debug = true
	m, err := NewWatchModel(f, cfg)
	require.NoError(t, err)

	for range 5 {
		m = updateWatch(t, m, TickMsg{})
	}
	view := m.View()
	assert.Contains(t, view, "bullets=")
	assert.Contains(t, view, string(asteroids.HitboxChar))
	assert.True(t, m.Verified())
}

func TestWatchDetectsMismatch(t *testing.T) {
	f := recordTicks(t, 3)
	f.FinalChecksum++

	m, err := NewWatchModel(f, testConfig())
	require.NoError(t, err)
	for range 3 {
		m = updateWatch(t, m, TickMsg{})
	}
	assert.False(t, m.Verified())
	assert.Contains(t, m.View(), "CHECKSUM MISMATCH")
}

func TestWatchSpeedAndPause(t *testing.T) {
	f := recordTicks(t, 20)
	m, err := NewWatchModel(f, testConfig())
	require.NoError(t, err)

	m = updateWatch(t, m, runeKey('+'))
	m = updateWatch(t, m, runeKey('+'))
	assert.Equal(t, 4, m.speed)

	m = updateWatch(t, m, TickMsg{})
	played, _ := m.player.Progress()
	assert.Equal(t, 4, played)

	m = updateWatch(t, m, runeKey('p'))
	m = updateWatch(t, m, TickMsg{})
	played, _ = m.player.Progress()
	assert.Equal(t, 4, played)

	for range 5 {
		m = updateWatch(t, m, runeKey('-'))
	}
	assert.Equal(t, 1, m.speed)
}

func TestWatchUnknownGame(t *testing.T) {
	f := recordTicks(t, 1)
	f.GameID = "missing"

	_, err := NewWatchModel(f, testConfig())
	assert.Error(t, err)
}
