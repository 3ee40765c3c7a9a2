package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// A missing or unreadable custom path is an error; the other locations are
// skipped when they cannot be read or parsed. Fields a file leaves out keep
// their default values.
//
// preset overrides the difficulty named in the file when non-empty; the
// resulting preset is applied before validation.
func Load(customPath, preset string) (TetrisConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if preset == "" {
		preset = string(cfg.Difficulty.Preset)
	}
	p, err := ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, p)
	return cfg, cfg.Validate()
}

func load(customPath string) (TetrisConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", "tetris.yaml")}
	if userPath := userConfigPath("tetris.yaml"); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultTetrisYAML); err == nil {
		return cfg, nil
	}
	return DefaultTetrisConfig(), nil
}

// parse decodes YAML over the built-in defaults.
func parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
