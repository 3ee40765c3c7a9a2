// Package config loads the game's YAML configuration and applies difficulty presets.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// TetrisConfig is the complete game configuration.
type TetrisConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Timing      TimingConfig      `yaml:"timing"`
	Input       InputConfig       `yaml:"input"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// BoardConfig sets the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig sets the gravity schedule.
// The fall period at level L is base_ms - step_ms*min(L-1, cap_level).
type TimingConfig struct {
	BaseMs   int `yaml:"base_ms"`
	StepMs   int `yaml:"step_ms"`
	CapLevel int `yaml:"cap_level"`
}

// InputConfig sets how often movement commands are applied.
type InputConfig struct {
	PollMs int `yaml:"poll_ms"`
}

// LeaderboardConfig locates the high score file.
type LeaderboardConfig struct {
	Path string `yaml:"path"`
}

// DifficultyConfig names the preset applied on top of the file values.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// EngineTiming converts the timing section to the engine's schedule.
func (c TetrisConfig) EngineTiming() engine.Timing {
	return engine.Timing{
		Base:     time.Duration(c.Timing.BaseMs) * time.Millisecond,
		Step:     time.Duration(c.Timing.StepMs) * time.Millisecond,
		CapLevel: c.Timing.CapLevel,
	}
}

// InputPoll returns the input poll period.
func (c TetrisConfig) InputPoll() time.Duration {
	return time.Duration(c.Input.PollMs) * time.Millisecond
}

// Validate reports the first setting the game cannot run with.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < minBoardWidth {
		return fmt.Errorf("config: board width %d is below the minimum of %d", c.Board.Width, minBoardWidth)
	}
	if c.Board.Height <= 0 {
		return fmt.Errorf("config: board height %d must be positive", c.Board.Height)
	}
	if c.Input.PollMs < 0 {
		return fmt.Errorf("config: input poll_ms %d must not be negative", c.Input.PollMs)
	}
	if err := c.EngineTiming().Validate(); err != nil {
		return fmt.Errorf("config: invalid timing: %w", err)
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}

// minBoardWidth is the widest piece, so a horizontal I always fits.
const minBoardWidth = 4
