package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

const (
	statsPanelMinWidth = 80 // Narrower terminals get a one-line summary instead
	statsPanelWidth    = 26
	maxScores          = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextMode, k.PrevMode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of each mode with a stats summary.
type ScoreboardModel struct {
	modes    []registry.GameInfo
	mode     int
	store    *storage.Store
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
	back     bool
	embedded bool
}

// NewScoreboardModel creates a scoreboard showing the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.selectMode(0)
	return m
}

func (m *ScoreboardModel) wide() bool {
	return m.width >= statsPanelMinWidth
}

// newTable builds the score table sized to the window.
func (m *ScoreboardModel) newTable() table.Model {
	when := 14
	if m.wide() {
		when = 18
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 10},
			{Title: "Wave", Width: 5},
			{Title: "When", Width: when},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, tabs, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(accentColor).
		Background(highlightBg).
		Bold(false)
	t.SetStyles(s)
	return t
}

// selectMode switches to mode i (wrapping) and reloads its scores.
func (m *ScoreboardModel) selectMode(i int) {
	m.scores, m.stats = nil, nil
	if len(m.modes) == 0 {
		m.table.SetRows(nil)
		return
	}

	m.mode = (i%len(m.modes) + len(m.modes)) % len(m.modes)
	if m.store != nil {
		id := m.modes[m.mode].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			humanize.Comma(int64(s.Score)),
			strconv.Itoa(s.Wave),
			humanize.Time(s.CreatedAt),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exit()
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, m.exit()
		case key.Matches(msg, m.keys.NextMode):
			m.selectMode(m.mode + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.selectMode(m.mode - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.mode].Title
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.modeTabs(), m.width))
	b.WriteString("\n\n")

	scores := panelStyle.Render(m.tableContent())
	if m.wide() {
		stats := panelStyle.Width(statsPanelWidth).Render(m.statsPanel())
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, scores, "  ", stats), m.width))
	} else {
		b.WriteString(centerText(subtleStyle.Render(m.statsLine()), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(scores, m.width))
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// modeTabs renders one tab per mode, collapsing to the current one if they don't fit.
func (m ScoreboardModel) modeTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		name := shortTitle(g.Title)
		if i == m.mode {
			tabs[i] = selectedStyle.Padding(0, 1).Render(name)
		} else {
			tabs[i] = subtleStyle.Render(" " + name + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.modes) > 0 {
		return fmt.Sprintf("< %s >", shortTitle(m.modes[m.mode].Title))
	}
	return line
}

func (m ScoreboardModel) tableContent() string {
	if len(m.scores) == 0 {
		return subtleStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nClear some rocks to set a high score!")
	}
	return m.table.View()
}

// statsPanel lists the mode's aggregate stats, one per row.
func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "Stats\n\n" + subtleStyle.Render("no games played")
	}
	rows := [][2]string{
		{"Games", humanize.Comma(int64(m.stats.GamesCount))},
		{"Best", humanize.Comma(int64(m.stats.HighScore))},
		{"Average", humanize.Comma(int64(m.stats.AvgScore))},
		{"Best wave", strconv.Itoa(m.stats.BestWave)},
		{"Last", humanize.Time(m.stats.LastPlayed)},
	}
	var b strings.Builder
	b.WriteString("Stats\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "\n%-10s %s", r[0], r[1])
	}
	return b.String()
}

// statsLine is the narrow-terminal version of statsPanel.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no games played"
	}
	return fmt.Sprintf("%s games | best %s | avg %s | best wave %d",
		humanize.Comma(int64(m.stats.GamesCount)),
		humanize.Comma(int64(m.stats.HighScore)),
		humanize.Comma(int64(m.stats.AvgScore)),
		m.stats.BestWave,
	)
}

// shortTitle drops the shared game name from a mode title.
func shortTitle(title string) string {
	if rest, ok := strings.CutPrefix(title, "Asteroids ("); ok {
		return strings.TrimSuffix(rest, ")")
	}
	if title == "Asteroids" {
		return "Classic"
	}
	return title
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// It reports whether the user went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
