package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	BulletChar   = '•'
	AsteroidChar = '*'
	HitboxChar   = '+'
)

// Minimum terminal size to draw the field
const (
	MinScreenW = 30
	MinScreenH = 12
)

// shipGlyphs are heading arrows, clockwise from "right" in 45 degree steps.
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Viewport maps field units to screen cells. Terminal cells are roughly
// twice as tall as wide, so one row spans twice the units of one column.
type Viewport struct {
	Frame       core.Rect // Border box; the field is drawn inside it
	UnitsPerCol float64
	UnitsPerRow float64
}

// NewViewport fits a fieldW x fieldH field into the area below the HUD row,
// preserving the aspect ratio and centering the result.
func NewViewport(screenW, screenH int, fieldW, fieldH float64) Viewport {
	innerW := max(screenW-2, 1)
	innerH := max(screenH-3, 1) // HUD row plus top and bottom border

	u := math.Max(fieldW/float64(innerW), fieldH/(2*float64(innerH)))
	cols := min(int(math.Ceil(fieldW/u)), innerW)
	rows := min(int(math.Ceil(fieldH/(2*u))), innerH)

	frame := core.NewRect((screenW-cols-2)/2, 1, cols+2, rows+2)
	return Viewport{Frame: frame, UnitsPerCol: u, UnitsPerRow: 2 * u}
}

// Inner returns the drawable field area in cells.
func (v Viewport) Inner() core.Rect {
	return core.NewRect(v.Frame.X+1, v.Frame.Y+1, v.Frame.W-2, v.Frame.H-2)
}

// ToCell converts a field position to a screen cell.
func (v Viewport) ToCell(p core.Vec2) (int, int) {
	in := v.Inner()
	return in.X + int(math.Floor(p.X/v.UnitsPerCol)), in.Y + int(math.Floor(p.Y/v.UnitsPerRow))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH))
		return
	}

	vp := NewViewport(dst.Width(), dst.Height(), g.cfg.Field.Width, g.cfg.Field.Height)
	dst.DrawBoxColored(vp.Frame, core.ColorBorder)

	switch g.phase {
	case PhasePlaying:
		g.renderField(dst, vp)
	case PhaseGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press Enter to play again", g.score))
	case PhaseCleared:
		g.drawCenteredBox(dst, "FIELD CLEARED", fmt.Sprintf("Score: %d  |  Press Enter to play again", g.score))
	}

	g.renderHUD(dst)

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderField draws asteroids, bullets and the ship.
func (g *Game) renderField(dst *core.Screen, vp Viewport) {
	clip := vp.Inner()

	for _, a := range g.asteroids {
		if !a.Alive || a.Lines <= g.cfg.Asteroids.DestroyedAtLines {
			continue
		}
		if g.runtime.Debug {
			g.drawHitbox(dst, vp, a.Hitbox(g.cfg.Asteroids.HitboxDivisor))
		}
		g.drawPoly(dst, vp, a, AsteroidChar, core.ColorAsteroid)
	}

	for _, b := range g.bullets.Items() {
		x, y := vp.ToCell(b.Pos)
		if clip.Contains(x, y) {
			dst.SetColored(x, y, BulletChar, core.ColorBullet)
		}
	}

	if g.runtime.Debug {
		g.drawHitbox(dst, vp, g.ship.Hitbox(g.cfg.Player.HitboxDivisor))
	}
	g.drawPoly(dst, vp, g.ship, shipGlyph(g.ship.Angle), core.ColorShip)
}

// drawPoly outlines a polygon. Polygons smaller than about two cells
// collapse to a single glyph at their center.
func (g *Game) drawPoly(dst *core.Screen, vp Viewport, p Poly, small rune, c core.Color) {
	clip := vp.Inner()

	if p.Radius*2 < vp.UnitsPerCol*2 || p.Radius*2 < vp.UnitsPerRow {
		x, y := vp.ToCell(p.Pos)
		if clip.Contains(x, y) {
			dst.SetColored(x, y, small, c)
		}
		return
	}

	verts := p.Vertices()
	for i := range verts {
		x0, y0 := vp.ToCell(verts[i])
		x1, y1 := vp.ToCell(verts[(i+1)%len(verts)])
		dst.DrawLineIn(clip, x0, y0, x1, y1, c)
	}
}

// drawHitbox marks the corners of a collision box.
func (g *Game) drawHitbox(dst *core.Screen, vp Viewport, r core.RectF) {
	clip := vp.Inner()
	x0, y0 := vp.ToCell(core.Vec2{X: r.X, Y: r.Y})
	x1, y1 := vp.ToCell(core.Vec2{X: r.X + r.W, Y: r.Y + r.H})
	for _, pt := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		if clip.Contains(pt[0], pt[1]) {
			dst.SetColored(pt[0], pt[1], HitboxChar, core.ColorHitbox)
		}
	}
}

// renderHUD draws the status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" SCORE %d  BEST %d  WAVE %d  ROCKS %d ",
		g.score, max(g.best, g.score), g.wave, g.liveAsteroids())
	dst.DrawTextColored(1, 0, hud, core.ColorHUD)

	title := g.Title()
	dst.DrawTextColored(dst.Width()-len(title)-2, 0, title, core.ColorMuted)

	if g.runtime.Debug {
		dbg := fmt.Sprintf(" bullets=%d cap=%d ", g.bullets.Len(), g.bullets.Cap())
		dst.DrawTextColored(1, dst.Height()-1, dbg, core.ColorDebug)
	}
}

// drawCenteredBox draws a message box in the center of the screen.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorHUD)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// shipGlyph picks the arrow closest to the heading.
func shipGlyph(angle float64) rune {
	idx := int(math.Round(normalizeAngle(angle)/45)) % len(shipGlyphs)
	return shipGlyphs[idx]
}
