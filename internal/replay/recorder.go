package replay

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Recorder collects the input of a running session.
type Recorder struct {
	file File
}

// NewRecorder starts a recording for a game that was just reset with runtime and cfg.
func NewRecorder(gameID string, runtime core.RuntimeConfig, cfg config.AsteroidsConfig) *Recorder {
	return &Recorder{
		file: File{
			Version:    Version,
			ID:         NewID(),
			GameID:     gameID,
			RecordedAt: time.Now().UTC().Truncate(time.Second),
			Seed:       runtime.Seed,
			TickRate:   runtime.TickRate,
			Config:     cfg,
			ConfigHash: HashConfig(cfg),
			Inputs:     make([]uint32, 0, 60*runtime.TickRate),
		},
	}
}

// ID returns the ID the finished replay will carry.
func (r *Recorder) ID() string {
	return r.file.ID
}

// Record appends the input applied on one tick.
func (r *Recorder) Record(in core.InputFrame) {
	r.file.Inputs = append(r.file.Inputs, in.Bits())
}

// Ticks returns how many ticks have been recorded.
func (r *Recorder) Ticks() int {
	return len(r.file.Inputs)
}

// Finish seals the recording with the final state of the game.
// The recorder can keep recording afterwards; the returned File is a copy.
func (r *Recorder) Finish(checksum uint64, score int) *File {
	f := r.file
	f.Inputs = append([]uint32(nil), r.file.Inputs...)
	f.FinalChecksum = checksum
	f.FinalScore = score
	return &f
}
