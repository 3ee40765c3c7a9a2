package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltIn(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultTetrisConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("board:\n  width: 12\ntiming:\n  base_ms: 700\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height, "unset fields keep their defaults")
	assert.Equal(t, 700*time.Millisecond, cfg.EngineTiming().Base)
	assert.Equal(t, 50*time.Millisecond, cfg.EngineTiming().Step)
	assert.Equal(t, 125*time.Millisecond, cfg.InputPoll())
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"), "")
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [1, 2"), 0o600))
	_, err = Load(bad, "")
	assert.Error(t, err)

	narrow := filepath.Join(dir, "narrow.yaml")
	require.NoError(t, os.WriteFile(narrow, []byte("board:\n  width: 3\n"), 0o600))
	_, err = Load(narrow, "")
	assert.Error(t, err)
}

func TestLoadPresetOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty:\n  preset: easy\n"), 0o600))

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, cfg.Difficulty.Preset)
	assert.Equal(t, 800, cfg.Timing.BaseMs)

	cfg, err = Load(path, "hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, cfg.Difficulty.Preset)
	assert.Equal(t, 400, cfg.Timing.BaseMs)
	assert.Equal(t, 30, cfg.Timing.StepMs)

	_, err = Load(path, "impossible")
	assert.Error(t, err)
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		base   int
		step   int
	}{
		{DifficultyEasy, 800, 40},
		{DifficultyNormal, 600, 50},
		{DifficultyHard, 400, 30},
		{DifficultyFixed, 600, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyPreset(&cfg, tc.preset)
			assert.Equal(t, tc.base, cfg.Timing.BaseMs)
			assert.Equal(t, tc.step, cfg.Timing.StepMs)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestFixedPresetNeverSpeedsUp(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	timing := cfg.EngineTiming()
	assert.Equal(t, timing.Period(1), timing.Period(20))
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("fixed")
	require.NoError(t, err)
	assert.Equal(t, DifficultyFixed, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
	}{
		{"narrow board", func(c *TetrisConfig) { c.Board.Width = 3 }},
		{"no rows", func(c *TetrisConfig) { c.Board.Height = 0 }},
		{"negative poll", func(c *TetrisConfig) { c.Input.PollMs = -1 }},
		{"period reaches zero", func(c *TetrisConfig) { c.Timing.StepMs = 60 }},
		{"unknown preset", func(c *TetrisConfig) { c.Difficulty.Preset = "turbo" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/.tetris/leaderboard.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tetris", "leaderboard.txt"), got)

	got, err = ExpandHome("/tmp/x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", got)
}
