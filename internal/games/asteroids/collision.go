package asteroids

// resolveBulletHits tests every live bullet against every live asteroid.
// A bullet is consumed by the first asteroid it overlaps.
func (g *Game) resolveBulletHits() (hits, destroyed int) {
	div := g.cfg.Asteroids.HitboxDivisor

	items := g.bullets.Items()
	for i := range items {
		b := &items[i]
		if b.QueueFree {
			continue
		}
		box := b.Hitbox()

		for j := range g.asteroids {
			a := &g.asteroids[j]
			if !a.Alive || !box.Intersects(a.Hitbox(div)) {
				continue
			}

			b.QueueFree = true
			hits++
			g.score += g.cfg.Scoring.HitPoints
			if g.hitAsteroid(a) {
				destroyed++
				g.score += g.cfg.Scoring.DestroyBonus
			}
			break
		}
	}
	return hits, destroyed
}

// shipCollides reports whether the ship overlaps any live asteroid.
func (g *Game) shipCollides() bool {
	shipBox := g.ship.Hitbox(g.cfg.Player.HitboxDivisor)
	div := g.cfg.Asteroids.HitboxDivisor

	for _, a := range g.asteroids {
		if a.Alive && shipBox.Intersects(a.Hitbox(div)) {
			return true
		}
	}
	return false
}
