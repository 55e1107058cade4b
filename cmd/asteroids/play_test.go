package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

func TestApplyGameFlagsReportsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asteroids.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field:\n  width: 0\n"), 0o600))

	flagConfig, flagDifficulty = path, "nightmare"
	t.Cleanup(func() {
		flagConfig, flagDifficulty = "", ""
		asteroids.SetConfigPath("")
		asteroids.SetDifficultyPreset("")
	})

	var buf bytes.Buffer
	applyGameFlags(log.New(&buf))

	out := buf.String()
	assert.Contains(t, out, "could not load game config")
	assert.Contains(t, out, "unknown difficulty preset")
}

func TestApplyGameFlagsQuietForDefaults(t *testing.T) {
	flagConfig, flagDifficulty = "", "hard"
	t.Cleanup(func() {
		flagDifficulty = ""
		asteroids.SetDifficultyPreset("")
	})
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	applyGameFlags(log.New(&buf))
	assert.Empty(t, buf.String())
}
