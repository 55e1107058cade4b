package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// DefaultScreenshotDir is where Ctrl+S writes text screenshots.
const DefaultScreenshotDir = "~/.asteroids/screenshots"

// statusTicks is how long a status message stays on screen.
const statusTicks = 120

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithHoldTicks sets how many ticks a key press keeps its action held.
func WithHoldTicks(n int) ModelOption {
	return func(m *Model) {
		m.held = NewHeldInput(n)
	}
}

// WithRecording records the session into dir and indexes it in the store.
func WithRecording(dir string) ModelOption {
	return func(m *Model) {
		m.rec = &recording{dir: dir, store: m.store}
	}
}

// WithScreenshotDir overrides the screenshot directory.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// withTickGen tags the model's tick loop so ticks of earlier games are ignored.
func withTickGen(gen int) ModelOption {
	return func(m *Model) {
		m.tickGen = gen
	}
}

// embedded makes back/quit report to the parent model instead of ending the program.
func embedded() ModelOption {
	return func(m *Model) {
		m.embedded = true
	}
}

// Model is the Bubble Tea model for a game in progress.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      GameKeyMap
	held      *HeldInput
	rec       *recording
	gameState core.GameState

	screenshotDir string
	status        string
	statusLeft    int

	scoreSaved bool // Score already stored for the current game over
	quitting   bool
	backToMenu bool
	embedded   bool
	tickGen    int
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case scores are not saved.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:         store,
		config:        cfg,
		keys:          DefaultGameKeyMap(),
		held:          NewHeldInput(HoldTicksFor(DefaultHoldDuration, cfg.TickRate)),
		screenshotDir: DefaultScreenshotDir,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadBest()
	if m.rec != nil {
		m.rec.start(m.game, m.config)
	}
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The field is letterboxed into any size, so the game keeps running
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.takeScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.finishRecording()
		m.quitting = true
		return m, m.exit()

	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.finishRecording()
			m.backToMenu = true
			return m, m.exit()
		}
		return m, nil

	default:
		m.held.Press(action)
		return m, nil
	}
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.held.Next()
	result := m.game.Step(frame)
	if m.rec != nil {
		m.rec.record(frame)
	}
	m.gameState = result.State

	// Save once per game over; a restart clears GameOver again
	if m.gameState.GameOver {
		if !m.scoreSaved {
			m.saveScore()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	if m.statusLeft > 0 {
		m.statusLeft--
	}

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// loadBest passes the stored high score to games that display it.
func (m Model) loadBest() {
	bt, ok := m.game.(registry.BestTracker)
	if !ok || m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.game.ID()); err == nil {
		bt.SetBest(best)
	}
}

// saveScore stores the finished run and reports its leaderboard rank.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	id := m.game.ID()
	if _, err := m.store.SaveScore(id, m.gameState.Score, m.gameState.Wave); err != nil {
		m.setStatus("score not saved: " + err.Error())
		return
	}
	rank, err := m.store.Rank(id, m.gameState.Score)
	switch {
	case err != nil:
		return
	case rank == 1:
		m.setStatus("new high score!")
	default:
		m.setStatus(fmt.Sprintf("rank #%d", rank))
	}
}

// exit ends the program unless the model runs inside a session.
func (m Model) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

func (m *Model) finishRecording() {
	if m.rec == nil {
		return
	}
	m.rec.finish(m.game)
	if m.rec.err != nil {
		m.setStatus("replay not saved: " + m.rec.err.Error())
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// takeScreenshot saves the current frame as plain text.
func (m *Model) takeScreenshot() {
	m.game.Render(m.screen)

	path, err := SaveScreenshot(m.screenshotDir, m.game.ID(), m.screen)
	if err != nil {
		m.setStatus("screenshot failed: " + err.Error())
		return
	}
	m.setStatus("saved " + filepath.Base(path))
}

// SaveScreenshot writes a screen as text to dir and returns the file path.
func SaveScreenshot(dir, gameID string, s *core.Screen) (string, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", gameID, time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.statusLeft > 0 && m.status != "" {
		m.screen.DrawTextColored(1, m.screen.Height()-1, " "+m.status+" ", core.ColorStatus)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// ReplayPath returns the path of the saved replay, if one was written.
func (m Model) ReplayPath() string {
	if m.rec == nil {
		return ""
	}
	return m.rec.path
}

// RunResult describes how a local game ended.
type RunResult struct {
	State      core.GameState
	BackToMenu bool
	ReplayPath string
	ReplayErr  error
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (RunResult, error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return RunResult{}, nil
	}

	res := RunResult{
		State:      m.State(),
		BackToMenu: m.BackToMenu(),
		ReplayPath: m.ReplayPath(),
	}
	if m.rec != nil {
		res.ReplayErr = m.rec.err
	}
	return res, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: get home dir: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
