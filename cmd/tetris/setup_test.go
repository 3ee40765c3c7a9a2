package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	flagConfig = ""
	flagDifficulty = ""
	flagWidth = 0
	flagHeight = 0
	flagFPS = 60
	flagSeed = 0
	flagDBPath = filepath.Join(dir, "history.db")
	flagLeaderboard = filepath.Join(dir, "leaderboard.txt")
	flagLogPath = ""
	flagLogLevel = "info"
}

func TestSetupAppliesFlags(t *testing.T) {
	resetFlags(t)
	flagWidth = 12
	flagHeight = 24
	flagSeed = 99
	flagDifficulty = "hard"

	a, err := setup(io.Discard)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, 12, a.runtime.BoardW)
	assert.Equal(t, 24, a.runtime.BoardH)
	assert.Equal(t, int64(99), a.runtime.Seed)
	assert.Equal(t, config.DifficultyHard, a.config.Difficulty.Preset)
	assert.Equal(t, 400, a.config.Timing.BaseMs)
	assert.NotNil(t, a.store)
	assert.Empty(t, a.scores.Entries())
}

func TestSetupRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name  string
		apply func()
	}{
		{"narrow board", func() { flagWidth = 3 }},
		{"unknown difficulty", func() { flagDifficulty = "insane" }},
		{"negative fps", func() { flagFPS = -1 }},
		{"bad log level", func() { flagLogLevel = "loud" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags(t)
			tc.apply()
			_, err := setup(io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestSetupLogFile(t *testing.T) {
	resetFlags(t)
	flagLogPath = filepath.Join(t.TempDir(), "tetris.log")
	flagLogLevel = "debug"

	a, err := setup(io.Discard)
	require.NoError(t, err)
	a.logger.Info("hello")
	a.Close()

	assert.FileExists(t, flagLogPath)
}

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("0.0.0.0:2222"))
	assert.Equal(t, "nope", portOf("nope"))
}
