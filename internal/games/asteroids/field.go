package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// randRange returns an integer in [lo, hi], inclusive on both ends.
func (g *Game) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// progress returns the current difficulty inputs.
func (g *Game) progress() config.Progress {
	return config.Progress{Score: g.score, Ticks: g.tickCount, Wave: g.wave}
}

// waveSize returns how many asteroids the current wave spawns.
func (g *Game) waveSize() int {
	ac := g.cfg.Asteroids
	n := ac.Count + (g.wave-1)*ac.PerWave + g.difficulty.ExtraAsteroids(g.progress())
	return core.Clamp(n, 1, max(ac.Max, 1))
}

// spawnAsteroid creates an asteroid along the top edge with a random heading.
func (g *Game) spawnAsteroid() Poly {
	ac := g.cfg.Asteroids
	speedFactor := g.difficulty.SpeedFactor(g.progress())
	return Poly{
		Pos: core.Vec2{
			X: float64(g.randRange(0, int(g.cfg.Field.Width))),
			Y: 0,
		},
		Angle:  float64(g.randRange(-ac.TurnRange, ac.TurnRange)),
		Radius: ac.Radius,
		Lines:  ac.Lines,
		Speed:  float64(g.randRange(ac.MinSpeed, ac.MaxSpeed)) * speedFactor,
		Alive:  true,
	}
}

// spawnWave replaces the asteroid field with a fresh wave.
func (g *Game) spawnWave() {
	n := g.waveSize()
	g.asteroids = g.asteroids[:0]
	for range n {
		g.asteroids = append(g.asteroids, g.spawnAsteroid())
	}
}

// updateAsteroids moves live asteroids and wraps them once fully off-field.
func (g *Game) updateAsteroids(dt float64) {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height

	for i := range g.asteroids {
		a := &g.asteroids[i]
		if !a.Alive {
			continue
		}
		a.Pos = a.Pos.Add(core.Direction(a.Angle).Scale(a.Speed * dt))
		a.Pos.X = core.WrapAxis(a.Pos.X, -a.Radius, w+a.Radius)
		a.Pos.Y = core.WrapAxis(a.Pos.Y, -a.Radius, h+a.Radius)
	}
}

// hitAsteroid shrinks, speeds up and turns an asteroid after a bullet strike.
// Returns true if the hit destroyed it.
func (g *Game) hitAsteroid(a *Poly) bool {
	ac := g.cfg.Asteroids
	a.Radius -= ac.ShrinkPerHit
	a.Lines--
	a.Speed += float64(g.randRange(ac.SpeedUpMin, ac.SpeedUpMax))
	a.Angle = normalizeAngle(a.Angle + float64(g.randRange(-ac.TurnRange, ac.TurnRange)))

	if a.Lines <= ac.DestroyedAtLines || a.Radius <= 0 {
		a.Alive = false
		return true
	}
	return false
}

// liveAsteroids counts asteroids that can still collide.
func (g *Game) liveAsteroids() int {
	n := 0
	for _, a := range g.asteroids {
		if a.Alive {
			n++
		}
	}
	return n
}
