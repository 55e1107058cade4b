package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(0, 1, "ship", core.ColorShip)
	s.SetColored(5, 1, '•', core.ColorBullet)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 2)
	assert.Equal(t, "plain     ", lines[0])
	assert.Equal(t, "ship •    ", lines[1])
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, "x", ansi.Strip(styleFor(core.Color(200)).Render("x")))
}

func TestPaletteCoversEveryRole(t *testing.T) {
	for c := core.Color(1); int(c) < core.NumColors; c++ {
		assert.NotEmpty(t, palette[c], "no terminal color for %s", c)
	}
}
