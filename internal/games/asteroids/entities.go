package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Poly is a regular-polygon object: the ship or an asteroid.
type Poly struct {
	Pos    core.Vec2
	Angle  float64 // Heading in degrees
	Radius float64
	Lines  int     // Number of polygon sides
	Speed  float64 // Units per second (asteroids only)
	Alive  bool
}

// Hitbox returns the square collision box, half-size radius/divisor.
func (p Poly) Hitbox(divisor float64) core.RectF {
	return core.CenteredSquare(p.Pos, p.Radius/divisor)
}

// Vertices returns the polygon corners. The first vertex points along Angle.
func (p Poly) Vertices() []core.Vec2 {
	if p.Lines < 3 {
		return nil
	}
	out := make([]core.Vec2, p.Lines)
	step := 360.0 / float64(p.Lines)
	for i := range out {
		out[i] = p.Pos.Add(core.Direction(p.Angle + float64(i)*step).Scale(p.Radius))
	}
	return out
}

// Bullet is a short-lived projectile.
type Bullet struct {
	Pos       core.Vec2
	Size      core.Vec2
	Angle     float64
	QueueFree bool // Marked for removal at the end of the tick
}

// Hitbox returns the bullet's axis-aligned box centered on its position.
func (b Bullet) Hitbox() core.RectF {
	return core.RectF{
		X: b.Pos.X - b.Size.X/2,
		Y: b.Pos.Y - b.Size.Y/2,
		W: b.Size.X,
		H: b.Size.Y,
	}
}

// BulletPool is a growable bullet array. Capacity doubles when full.
type BulletPool struct {
	items []Bullet
}

// NewBulletPool preallocates capacity slots.
func NewBulletPool(capacity int) *BulletPool {
	return &BulletPool{items: make([]Bullet, 0, max(capacity, 1))}
}

// Append adds a bullet, doubling the backing array when it is full.
func (p *BulletPool) Append(b Bullet) {
	if len(p.items) == cap(p.items) {
		grown := make([]Bullet, len(p.items), cap(p.items)*2)
		copy(grown, p.items)
		p.items = grown
	}
	p.items = append(p.items, b)
}

// Compact drops bullets marked QueueFree, keeping the order of the rest.
func (p *BulletPool) Compact() {
	kept := p.items[:0]
	for _, b := range p.items {
		if b.QueueFree {
			continue
		}
		kept = append(kept, b)
	}
	clear(p.items[len(kept):])
	p.items = kept
}

// Reset removes all bullets but keeps the allocation.
func (p *BulletPool) Reset() {
	p.items = p.items[:0]
}

// Items exposes the live slice for in-place updates.
func (p *BulletPool) Items() []Bullet {
	return p.items
}

// Len returns the number of bullets.
func (p *BulletPool) Len() int {
	return len(p.items)
}

// Cap returns the current capacity.
func (p *BulletPool) Cap() int {
	return cap(p.items)
}

// normalizeAngle maps degrees into [0, 360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
