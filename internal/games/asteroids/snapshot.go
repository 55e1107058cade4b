package asteroids

import (
	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
)

// Snapshot contains the complete simulation state for replay verification.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      int
	Phase     string
	Paused    bool
	Score     int
	Wave      int
	Restarts  int
	FireTimer float64

	// Ship: X, Y, Angle
	Ship [3]float64

	// Each asteroid is 6 values: X, Y, Angle, Radius, Lines, Speed.
	// Destroyed asteroids are omitted.
	AsteroidCount int
	AsteroidData  []float64

	// Each bullet is 3 values: X, Y, Angle
	BulletCount int
	BulletData  []float64
}

// snapshotEncoder uses core deterministic encoding so equal snapshots hash equally.
var snapshotEncoder = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tickCount,
		Phase:     g.phase.String(),
		Paused:    g.paused,
		Score:     g.score,
		Wave:      g.wave,
		Restarts:  g.restarts,
		FireTimer: g.fireTimer,
		Ship:      [3]float64{g.ship.Pos.X, g.ship.Pos.Y, g.ship.Angle},
	}

	for _, a := range g.asteroids {
		if !a.Alive {
			continue
		}
		s.AsteroidCount++
		s.AsteroidData = append(s.AsteroidData,
			a.Pos.X, a.Pos.Y, a.Angle, a.Radius, float64(a.Lines), a.Speed)
	}

	for _, b := range g.bullets.Items() {
		s.BulletCount++
		s.BulletData = append(s.BulletData, b.Pos.X, b.Pos.Y, b.Angle)
	}

	return s
}

// Encode serializes the snapshot deterministically.
func (s Snapshot) Encode() ([]byte, error) {
	return snapshotEncoder.Marshal(s)
}

// Checksum returns an xxhash of the encoded snapshot.
// Two runs with the same seed, config and inputs yield the same checksum.
func (g *Game) Checksum() uint64 {
	data, err := g.Snapshot().Encode()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}
