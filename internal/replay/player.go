package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

// Result is the outcome of a headless playback.
type Result struct {
	Checksum uint64
	State    core.GameState
	Ticks    int
}

// NewGame builds and resets the game a replay was recorded on.
func NewGame(f *File) (*asteroids.Game, error) {
	var mode asteroids.GameMode
	switch f.GameID {
	case asteroids.IDClassic:
		mode = asteroids.ModeClassic
	case asteroids.IDEndless:
		mode = asteroids.ModeEndless
	default:
		return nil, fmt.Errorf("replay: unknown game %q", f.GameID)
	}

	g := asteroids.NewWithConfig(mode, f.Config)
	g.Reset(f.Runtime())
	return g, nil
}

// Play reruns the replay headless and returns the final state.
func Play(f *File) (Result, error) {
	g, err := NewGame(f)
	if err != nil {
		return Result{}, err
	}

	var state core.GameState
	for _, bits := range f.Inputs {
		state = g.Step(core.InputFrameFromBits(bits)).State
	}
	if len(f.Inputs) == 0 {
		state = g.State()
	}

	return Result{Checksum: g.Checksum(), State: state, Ticks: len(f.Inputs)}, nil
}

// Verify plays the replay and checks the final checksum.
func Verify(f *File) (Result, error) {
	res, err := Play(f)
	if err != nil {
		return res, err
	}
	if res.Checksum != f.FinalChecksum {
		return res, fmt.Errorf("%w: recorded %016x, got %016x", ErrChecksum, f.FinalChecksum, res.Checksum)
	}
	return res, nil
}

// Player feeds recorded input one tick at a time, for watching a replay.
type Player struct {
	file *File
	pos  int
}

// NewPlayer creates a player positioned at the first tick.
func NewPlayer(f *File) *Player {
	return &Player{file: f}
}

// Next returns the input for the next tick, or false once the replay is exhausted.
func (p *Player) Next() (core.InputFrame, bool) {
	if p.pos >= len(p.file.Inputs) {
		return core.InputFrame{}, false
	}
	in := core.InputFrameFromBits(p.file.Inputs[p.pos])
	p.pos++
	return in, true
}

// Done reports whether every tick has been played.
func (p *Player) Done() bool {
	return p.pos >= len(p.file.Inputs)
}

// Progress returns played and total tick counts.
func (p *Player) Progress() (int, int) {
	return p.pos, len(p.file.Inputs)
}
