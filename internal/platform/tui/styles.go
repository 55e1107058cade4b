package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared look of the menu, scoreboard and replay screens.
var (
	accentColor = lipgloss.Color("229")
	highlightBg = lipgloss.Color("57")
	subtleColor = lipgloss.Color("241")
	borderColor = lipgloss.Color("240")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	subtleStyle   = lipgloss.NewStyle().Foreground(subtleColor)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Background(highlightBg)
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
