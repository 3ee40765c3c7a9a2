package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration, used when no file can be read.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseMs:   600,
			StepMs:   50,
			CapLevel: 10,
		},
		Input: InputConfig{
			PollMs: 125,
		},
		Leaderboard: LeaderboardConfig{
			Path: "~/.tetris/leaderboard.txt",
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, e.g. for
// writing a starter config.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
