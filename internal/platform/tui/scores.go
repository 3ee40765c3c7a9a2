package tui

import (
	"errors"
	"io"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/leaderboard"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// historyLimit is how many recent games the leaderboard screen lists.
const historyLimit = 50

// ScoreKeeper owns the high score table and the game history. It is shared
// by every session of an SSH server, so all access is serialized.
type ScoreKeeper struct {
	mu     sync.Mutex
	board  *leaderboard.Leaderboard
	path   string // empty keeps the table in memory only
	store  *storage.Store
	logger *log.Logger
}

// NewScoreKeeper loads the leaderboard from path. A missing or corrupt file
// starts an empty table. store may be nil.
func NewScoreKeeper(path string, store *storage.Store, logger *log.Logger) *ScoreKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	k := &ScoreKeeper{path: path, store: store, logger: logger}
	if path == "" {
		k.board = leaderboard.New()
		return k
	}

	board, err := leaderboard.LoadFile(path)
	switch {
	case err == nil:
		k.board = board
	case errors.Is(err, fs.ErrNotExist):
		k.board = leaderboard.New()
	default:
		logger.Warn("starting with an empty leaderboard", "path", path, "error", err)
		k.board = leaderboard.New()
	}
	return k
}

// Qualifies reports whether score earns a leaderboard entry.
func (k *ScoreKeeper) Qualifies(score int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.board.Place(score)
	return ok
}

// Add inserts a leaderboard entry, writes the file and returns the rank the
// entry took.
func (k *ScoreKeeper) Add(name string, score int) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	rank, _ := k.board.Place(score)
	if err := k.board.AddScore(name, score); err != nil {
		return 0, err
	}
	k.logger.Info("leaderboard entry", "name", name, "score", score, "rank", rank+1)
	if k.path == "" {
		return rank, nil
	}
	return rank, k.board.SaveFile(k.path)
}

// Entries returns the leaderboard, best first.
func (k *ScoreKeeper) Entries() []leaderboard.Entry {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.board.Entries()
}

// Record stores a finished game in the history. Failures are logged only.
func (k *ScoreKeeper) Record(g storage.GameRecord) {
	if k.store == nil {
		return
	}
	if _, err := k.store.SaveGame(g); err != nil {
		k.logger.Warn("cannot record game", "error", err)
	}
}

// History returns the most recent games, or nil without a history store.
func (k *ScoreKeeper) History() []storage.GameRecord {
	if k.store == nil {
		return nil
	}
	games, err := k.store.RecentGames(historyLimit)
	if err != nil {
		k.logger.Warn("cannot read history", "error", err)
		return nil
	}
	return games
}
