package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/replay"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// stubGame records the input it receives and reports a scripted state.
type stubGame struct {
	resets int
	inputs []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string                   { return "stub" }
func (g *stubGame) Title() string                { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)      { dst.Clear(); dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState        { return g.state }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	return core.StepResult{State: g.state}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// update feeds a message and returns the resulting Model and command.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewModelPicksSeed(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0

	m := NewModel(&stubGame{}, nil, cfg)
	assert.NotZero(t, m.config.Seed)
}

func TestModelInitResetsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())

	cmd := m.Init()
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, g.resets)
}

func TestModelHeldKeysReachGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), WithHoldTicks(2))
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for range 3 {
		m, _ = update(t, m, TickMsg{})
	}

	require.Len(t, g.inputs, 3)
	assert.True(t, g.inputs[0].Has(core.ActionThrust))
	assert.True(t, g.inputs[1].Has(core.ActionThrust))
	assert.False(t, g.inputs[2].Has(core.ActionThrust))
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store := openStore(t)
	g := &stubGame{}
	m := NewModel(g, store, testConfig())
	m.Init()

	g.state = core.GameState{Score: 120, Wave: 2, GameOver: true}
	for range 5 {
		m, _ = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 120, scores[0].Score)
	assert.Equal(t, 2, scores[0].Wave)
	assert.Equal(t, "new high score!", m.status)

	// Restart, then a second game over
	g.state = core.GameState{Wave: 1}
	m, _ = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 40, Wave: 1, GameOver: true}
	m, _ = update(t, m, TickMsg{})

	scores, err = store.TopScores("stub", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
	assert.Equal(t, "rank #2", m.status)
}

func TestModelShowsStoredHighScore(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(asteroids.IDClassic, 300, 1)
	require.NoError(t, err)

	g := asteroids.NewWithConfig(asteroids.ModeClassic, config.DefaultAsteroidsConfig())
	m := NewModel(g, store, testConfig())
	m.Init()

	assert.Contains(t, m.View(), "BEST 300")
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &stubGame{state: core.GameState{GameOver: true}}
	m := NewModel(g, store, testConfig())
	m.Init()

	update(t, m, TickMsg{})

	high, err := store.HighScore("stub")
	require.NoError(t, err)
	assert.Zero(t, high)
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig())
	m.Init()

	m, cmd := update(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.BackToMenu())
	assert.Nil(t, cmd)

	g.state = core.GameState{Paused: true}
	m, _ = update(t, m, TickMsg{})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.True(t, m.BackToMenu())
	assert.NotNil(t, cmd)
}

func TestEmbeddedModelDoesNotQuitProgram(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig(), embedded())
	m.Init()

	m, cmd := update(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Nil(t, cmd)
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 40, m.screen.Height())
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&stubGame{}, nil, testConfig(), WithScreenshotDir(dir))
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "stub")
	assert.Contains(t, m.View(), "saved stub_")
}

func TestModelRecordsVerifiableReplay(t *testing.T) {
	store := openStore(t)
	dir := t.TempDir()
	game := asteroids.NewWithConfig(asteroids.ModeClassic, config.DefaultAsteroidsConfig())

	m := NewModel(game, store, testConfig(), WithRecording(dir))
	m.Init()

	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft},
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyUp},
	}
	for i := range 240 {
		if i%20 == 0 {
			m, _ = update(t, m, keys[(i/20)%len(keys)])
		}
		m, _ = update(t, m, TickMsg{})
	}

	m, _ = update(t, m, runeKey('q'))

	path := m.ReplayPath()
	require.NotEmpty(t, path)

	f, err := replay.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 240, f.Ticks())
	assert.Equal(t, int64(99), f.Seed)

	_, err = replay.Verify(f)
	assert.NoError(t, err)

	entries, err := store.RecentReplays(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, f.ID, entries[0].ReplayID)
	assert.Equal(t, path, entries[0].Path)
}

func TestRecordingUnsupportedGame(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig(), WithRecording(t.TempDir()))
	m.Init()

	m, _ = update(t, m, runeKey('q'))
	assert.Empty(t, m.ReplayPath())
	assert.ErrorIs(t, m.rec.err, errNotRecordable)
}
