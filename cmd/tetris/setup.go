package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// app holds everything a command needs after flags have been resolved.
type app struct {
	config  config.TetrisConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	store   *storage.Store
	scores  *tui.ScoreKeeper
	closers []io.Closer
}

// setup loads the configuration, applies flag overrides and opens the
// leaderboard and history. logTo is used when --log is not given.
func setup(logTo io.Writer) (*app, error) {
	a := &app{}

	logger, logFile, err := newLogger(logTo)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	if logFile != nil {
		a.closers = append(a.closers, logFile)
	}

	cfg, err := config.Load(flagConfig, flagDifficulty)
	if err != nil {
		a.Close()
		return nil, err
	}
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	if flagLeaderboard != "" {
		cfg.Leaderboard.Path = flagLeaderboard
	}
	if err := cfg.Validate(); err != nil {
		a.Close()
		return nil, err
	}
	if flagFPS <= 0 {
		a.Close()
		return nil, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	a.config = cfg
	a.runtime = core.RuntimeConfig{
		BoardW:    cfg.Board.Width,
		BoardH:    cfg.Board.Height,
		TickRate:  flagFPS,
		InputPoll: cfg.InputPoll(),
		Seed:      flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("running without game history", "error", err)
	} else {
		a.store = store
		a.closers = append(a.closers, store)
	}

	boardPath, err := config.ExpandHome(cfg.Leaderboard.Path)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.scores = tui.NewScoreKeeper(boardPath, a.store, logger)

	logger.Debug("configuration loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"difficulty", cfg.Difficulty.Preset,
		"leaderboard", boardPath,
	)
	return a, nil
}

// newLogger builds the logger from --log and --log-level.
func newLogger(fallback io.Writer) (*log.Logger, *os.File, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	var file *os.File
	if flagLogPath != "" {
		path, err := config.ExpandHome(flagLogPath)
		if err != nil {
			return nil, nil, err
		}
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = file
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, file, nil
}

// sessionOptions returns the options for a local or SSH session.
func (a *app) sessionOptions(player string, skipMenu bool) tui.Options {
	return tui.Options{
		Config:   a.config,
		Runtime:  a.runtime,
		Scores:   a.scores,
		Logger:   a.logger,
		Player:   player,
		SkipMenu: skipMenu,
	}
}

// Close releases the history database and the log file.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i].Close()
	}
}
