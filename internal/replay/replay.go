// Package replay records the per-tick input of a game session and plays it
// back headless. The simulation is deterministic, so seed, config and inputs
// are enough to rebuild the final state, which is checked against a stored
// snapshot checksum.
package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Version is the replay file format version.
const Version = 1

// DefaultDir is where recorded replays are written.
const DefaultDir = "~/.asteroids/replays"

// FileExt is the replay file extension.
const FileExt = ".cbor"

var (
	// ErrVersion is returned when a replay file has an unsupported version.
	ErrVersion = errors.New("replay: unsupported version")
	// ErrChecksum is returned when playback does not reproduce the recorded state.
	ErrChecksum = errors.New("replay: checksum mismatch")
	// ErrConfigHash is returned when the embedded config does not match its hash.
	ErrConfigHash = errors.New("replay: config hash mismatch")
)

// File is a recorded session.
type File struct {
	Version    int       `cbor:"v"`
	ID         string    `cbor:"id"`
	GameID     string    `cbor:"game"`
	RecordedAt time.Time `cbor:"at"`

	Seed     int64 `cbor:"seed"`
	TickRate int   `cbor:"tick_rate"`

	Config     config.AsteroidsConfig `cbor:"config"`
	ConfigHash uint64                 `cbor:"config_hash"`

	// One action bitmask per simulated tick
	Inputs []uint32 `cbor:"inputs"`

	FinalChecksum uint64 `cbor:"checksum"`
	FinalScore    int    `cbor:"score"`
}

// Ticks returns the number of recorded ticks.
func (f *File) Ticks() int {
	return len(f.Inputs)
}

// Duration returns the simulated time covered by the replay.
func (f *File) Duration() time.Duration {
	rate := f.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(len(f.Inputs)) * time.Second / time.Duration(rate)
}

// Runtime returns the runtime config the replay was recorded with.
func (f *File) Runtime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.Seed = f.Seed
	rt.TickRate = f.TickRate
	return rt
}

var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// HashConfig returns a stable hash of a game config.
func HashConfig(cfg config.AsteroidsConfig) uint64 {
	data, err := encMode.Marshal(cfg)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// Encode serializes the replay.
func (f *File) Encode() ([]byte, error) {
	data, err := encMode.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("replay: encode: %w", err)
	}
	return data, nil
}

// Decode parses a replay and checks its version and config hash.
func Decode(data []byte) (*File, error) {
	var f File
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, f.Version)
	}
	if HashConfig(f.Config) != f.ConfigHash {
		return nil, ErrConfigHash
	}
	if err := f.Config.Validate(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &f, nil
}

// Save writes the replay to path, creating parent directories.
// A leading ~ is expanded to the user's home directory.
func (f *File) Save(path string) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}

	data, err := f.Encode()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}
	return nil
}

// Load reads a replay from path.
func Load(path string) (*File, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read: %w", err)
	}
	return Decode(data)
}

// PathFor returns the file path for a replay ID inside dir.
func PathFor(dir, id string) string {
	return filepath.Join(dir, id+FileExt)
}

// NewID returns a fresh replay ID.
func NewID() string {
	return uuid.NewString()
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("replay: get home dir: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}
