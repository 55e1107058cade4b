package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// menuTitle is drawn above the mode list.
const menuTitle = "A S T E R O I D S"

// MenuItem is one selectable game mode with its records.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	HighScore   int
	BestWave    int
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	action   MenuAction // Last action that closed the menu
	embedded bool
}

// NewMenuModel lists every registered mode with its best score and wave.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, len(modes))
	for i, g := range modes {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store == nil {
			continue
		}
		if stats, err := store.GetGameStats(g.ID); err == nil {
			items[i].HighScore = stats.HighScore
			items[i].BestWave = stats.BestWave
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.MenuAction(msg); a {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		m.action = a
		return m, m.exit()
	case MenuActionQuit, MenuActionBack, MenuActionScoreboard:
		m.action = a
		return m, m.exit()
	}
	return m, nil
}

func (m MenuModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.IsQuitting() {
		return ""
	}

	var b strings.Builder
	line := func(s string) {
		b.WriteString(centerText(s, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	line(titleStyle.Render(menuTitle))
	b.WriteString("\n")
	line(subtleStyle.Render("Select a mode"))
	b.WriteString("\n")

	for i, item := range m.items {
		record := "no record"
		if item.HighScore > 0 {
			record = fmt.Sprintf("best %s  wave %d", humanize.Comma(int64(item.HighScore)), item.BestWave)
		}
		row := fmt.Sprintf("  %-22s %20s  ", item.Title, record)
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		line(row)
		line(subtleStyle.Render(fmt.Sprintf("  %-44s", item.Description)))
	}

	b.WriteString("\n")
	line(subtleStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen item, or nil if the menu closed otherwise.
func (m MenuModel) Selected() *MenuItem {
	if m.action != MenuActionSelect || len(m.items) == 0 {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.action == MenuActionQuit || m.action == MenuActionBack
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.action == MenuActionScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
