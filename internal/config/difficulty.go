package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // gravity never speeds up
)

// Presets lists every preset in order of increasing difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyPreset adjusts the gravity schedule for a preset. Normal keeps the
// configured values.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseMs = 800
		cfg.Timing.StepMs = 40
	case DifficultyHard:
		cfg.Timing.BaseMs = 400
		cfg.Timing.StepMs = 30
	case DifficultyFixed:
		cfg.Timing.StepMs = 0
	}
}
