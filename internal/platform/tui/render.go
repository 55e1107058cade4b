package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// palette maps draw roles to ANSI 256 color codes.
var palette = [core.NumColors]string{
	core.ColorDefault:  "",
	core.ColorShip:     "14",
	core.ColorAsteroid: "7",
	core.ColorBullet:   "11",
	core.ColorBorder:   "245",
	core.ColorHUD:      "15",
	core.ColorMuted:    "245",
	core.ColorHitbox:   "2",
	core.ColorDebug:    "1",
	core.ColorStatus:   "11",
}

// cellStyles holds one lipgloss style per palette entry.
var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for i, code := range palette {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells with the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(color).Render(run.String()))
			}
		}
	}
	return sb.String()
}
