package tui

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/replay"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// errNotRecordable is reported for games that cannot be replayed.
var errNotRecordable = errors.New("tui: game does not support recording")

// configuredGame exposes the tuning a run uses, which replays need.
type configuredGame interface {
	Config() config.AsteroidsConfig
}

// recording ties a replay.Recorder to a running model.
// It is shared by pointer so every copy of the model records into it.
type recording struct {
	dir   string
	store *storage.Store
	rec   *replay.Recorder
	path  string
	err   error
}

// start begins recording a game that was just reset.
func (r *recording) start(game registry.Game, rt core.RuntimeConfig) {
	cg, ok := game.(configuredGame)
	if !ok {
		r.err = errNotRecordable
		return
	}
	r.rec = replay.NewRecorder(game.ID(), rt, cg.Config())
}

func (r *recording) record(in core.InputFrame) {
	if r.rec != nil {
		r.rec.Record(in)
	}
}

// finish writes the replay file and indexes it. Later calls are no-ops.
func (r *recording) finish(game registry.Game) {
	if r.rec == nil || r.path != "" || r.err != nil {
		return
	}

	cs, ok := game.(registry.Checksummer)
	if !ok {
		r.err = errNotRecordable
		return
	}

	file := r.rec.Finish(cs.Checksum(), game.State().Score)

	dir, err := replay.ExpandPath(r.dir)
	if err != nil {
		r.err = err
		return
	}
	path := replay.PathFor(dir, file.ID)
	if err := file.Save(path); err != nil {
		r.err = err
		return
	}
	r.path = path

	if r.store == nil {
		return
	}
	_, err = r.store.SaveReplay(storage.ReplayEntry{
		ReplayID: file.ID,
		GameID:   file.GameID,
		Path:     path,
		Seed:     file.Seed,
		Ticks:    file.Ticks(),
		Score:    file.FinalScore,
		Checksum: file.FinalChecksum,
	})
	if err != nil {
		r.err = fmt.Errorf("tui: index replay: %w", err)
	}
}
