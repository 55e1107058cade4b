package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/replay"
)

// Playback speed bounds, in simulation ticks per displayed tick.
const (
	minWatchSpeed = 1
	maxWatchSpeed = 8
)

// WatchKeyMap defines the replay viewer bindings.
type WatchKeyMap struct {
	Pause  key.Binding
	Faster key.Binding
	Slower key.Binding
	Quit   key.Binding
}

// DefaultWatchKeyMap returns the default replay viewer bindings.
func DefaultWatchKeyMap() WatchKeyMap {
	return WatchKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "right"),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "left"),
			key.WithHelp("-", "slower"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// verifyStatus is the outcome of comparing the final checksum.
type verifyStatus int

const (
	verifyPending verifyStatus = iota
	verifyOK
	verifyMismatch
)

// WatchModel plays a recorded replay back on screen.
type WatchModel struct {
	file     *replay.File
	game     *asteroids.Game
	player   *replay.Player
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     WatchKeyMap
	speed    int
	paused   bool
	verify   verifyStatus
	quitting bool
}

// NewWatchModel prepares playback of f. cfg supplies the screen size.
func NewWatchModel(f *replay.File, cfg core.RuntimeConfig) (WatchModel, error) {
	game, err := replay.NewGame(f)
	if err != nil {
		return WatchModel{}, err
	}

	// Debug only changes rendering, so the recorded run is unaffected
	rt := f.Runtime()
	rt.Debug = cfg.Debug
	game.Reset(rt)

	cfg.TickRate = f.TickRate
	return WatchModel{
		file:   f,
		game:   game,
		player: replay.NewPlayer(f),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultWatchKeyMap(),
		speed:  minWatchSpeed,
	}, nil
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, 0)
}

// Update handles messages for the replay viewer.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Faster):
			m.speed = min(m.speed*2, maxWatchSpeed)
		case key.Matches(msg, m.keys.Slower):
			m.speed = max(m.speed/2, minWatchSpeed)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.advance()
		return m, tickCmd(m.config.TickRate, 0)
	}

	return m, nil
}

// advance steps the game by the current speed and checks the result at the end.
func (m *WatchModel) advance() {
	if m.paused {
		return
	}

	for range m.speed {
		in, ok := m.player.Next()
		if !ok {
			break
		}
		m.game.Step(in)
	}

	if m.player.Done() && m.verify == verifyPending {
		if m.game.Checksum() == m.file.FinalChecksum {
			m.verify = verifyOK
		} else {
			m.verify = verifyMismatch
		}
	}
}

// View renders the replay and a status line.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	status := m.statusLine()
	m.screen.DrawTextColored(max(m.screen.Width()-len(status)-1, 1), m.screen.Height()-1, status, core.ColorStatus)
	return RenderScreen(m.screen)
}

func (m WatchModel) statusLine() string {
	played, total := m.player.Progress()
	rate := float64(max(m.file.TickRate, 1))

	state := "playing"
	switch {
	case m.verify == verifyOK:
		state = "verified"
	case m.verify == verifyMismatch:
		state = "CHECKSUM MISMATCH"
	case m.paused:
		state = "paused"
	}

	return fmt.Sprintf(" REPLAY %.1fs/%.1fs x%d %s ",
		float64(played)/rate, float64(total)/rate, m.speed, state)
}

// Verified reports whether playback finished and matched the recorded checksum.
func (m WatchModel) Verified() bool {
	return m.verify == verifyOK
}

// RunWatch plays a replay in the terminal.
func RunWatch(f *replay.File, cfg core.RuntimeConfig) error {
	model, err := NewWatchModel(f, cfg)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
