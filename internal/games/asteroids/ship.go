package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// newShip places the ship at the field center.
func (g *Game) newShip() Poly {
	pc := g.cfg.Player
	return Poly{
		Pos:    core.Vec2{X: g.cfg.Field.Width / 2, Y: g.cfg.Field.Height / 2},
		Angle:  pc.StartAngle,
		Radius: pc.Radius,
		Lines:  pc.Lines,
		Alive:  true,
	}
}

// updateShip applies rotation and thrust, then wraps at the field edges.
func (g *Game) updateShip(in core.InputFrame, dt float64) {
	pc := g.cfg.Player

	if in.Has(core.ActionRotateLeft) {
		g.ship.Angle -= pc.RotationSpeed * dt
	}
	if in.Has(core.ActionRotateRight) {
		g.ship.Angle += pc.RotationSpeed * dt
	}
	g.ship.Angle = normalizeAngle(g.ship.Angle)

	if in.Has(core.ActionThrust) {
		g.ship.Pos = g.ship.Pos.Add(core.Direction(g.ship.Angle).Scale(pc.Speed * dt))
	}

	g.ship.Pos.X = core.WrapAxis(g.ship.Pos.X, 0, g.cfg.Field.Width)
	g.ship.Pos.Y = core.WrapAxis(g.ship.Pos.Y, 0, g.cfg.Field.Height)
}

// shoot spawns a bullet just ahead of the ship's nose.
func (g *Game) shoot() {
	bc := g.cfg.Bullets
	g.bullets.Append(Bullet{
		Pos:   g.ship.Pos.Add(core.Direction(g.ship.Angle).Scale(bc.MuzzleOffset)),
		Size:  core.Vec2{X: bc.Width, Y: bc.Height},
		Angle: g.ship.Angle,
	})
}

// updateBullets moves bullets and marks the ones past the padded field.
func (g *Game) updateBullets(dt float64) {
	bc := g.cfg.Bullets
	w, h := g.cfg.Field.Width, g.cfg.Field.Height

	items := g.bullets.Items()
	for i := range items {
		b := &items[i]
		b.Pos = b.Pos.Add(core.Direction(b.Angle).Scale(bc.Speed * dt))

		if b.Pos.X <= -bc.Padding || b.Pos.X >= w+bc.Padding ||
			b.Pos.Y <= -bc.Padding || b.Pos.Y >= h+bc.Padding {
			b.QueueFree = true
		}
	}
}
