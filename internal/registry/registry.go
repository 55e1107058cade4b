// Package registry keeps the playable game modes.
// Modes register a factory from init(), so the CLI, the menus and the SSH
// server can list and create them without importing each one.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Game is the interface every game mode implements.
// Games are pure simulation: the platform owns input mapping, timing and
// drawing the screen buffer to a terminal.
type Game interface {
	// ID is the stable mode identifier used on the CLI and in score storage.
	ID() string
	Title() string

	// Reset starts a new run for the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Checksummer is implemented by games whose state can be hashed for replay verification.
type Checksummer interface {
	Checksum() uint64
}

// BestTracker is implemented by games that show the stored high score while playing.
type BestTracker interface {
	SetBest(score int)
}

// Describer is implemented by games that carry a one-line description.
type Describer interface {
	Description() string
}

// GameInfo is the metadata captured when a mode registers.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for unregistered IDs.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. It panics on a duplicate ID, which is a wiring bug.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	sample := f()
	info := GameInfo{ID: id, Title: sample.Title()}
	if d, ok := sample.(Describer); ok {
		info.Description = d.Description()
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Info returns the metadata of a registered mode.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
