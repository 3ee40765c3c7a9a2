// Package storage records finished games in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID         int64
	Player     string // leaderboard initials, or the SSH user; may be empty
	Score      int
	Lines      int
	Level      int
	Pieces     int
	Duration   time.Duration
	Difficulty string
	Seed       int64
	CreatedAt  time.Time
}

// Stats aggregates the whole history.
type Stats struct {
	Games      int
	BestScore  int
	AvgScore   float64
	TotalLines int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			pieces INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a finished game and returns its ID.
func (s *Store) SaveGame(g GameRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO games (player, score, lines, level, pieces, duration_ms, difficulty, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.Player, g.Score, g.Lines, g.Level, g.Pieces, g.Duration.Milliseconds(), g.Difficulty, g.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectGames = `SELECT id, player, score, lines, level, pieces, duration_ms, difficulty, seed, created_at FROM games`

// TopGames returns the highest scoring games, best first.
func (s *Store) TopGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(selectGames+` ORDER BY score DESC, id ASC LIMIT ?`, limit)
}

// RecentGames returns the most recently finished games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryGames(selectGames+` ORDER BY id DESC LIMIT ?`, limit)
}

func (s *Store) queryGames(query string, args ...any) ([]GameRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&g.ID, &g.Player, &g.Score, &g.Lines, &g.Level, &g.Pieces,
			&durationMs, &g.Difficulty, &g.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.Duration = time.Duration(durationMs) * time.Millisecond
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// HighScore returns the best recorded score, or 0 with no history.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM games").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates every recorded game.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(lines), 0)
		 FROM games`,
	).Scan(&st.Games, &st.BestScore, &st.AvgScore, &st.TotalLines)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM games ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Stats{}, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		st.LastPlayed = parseTime(lastPlayed)
	}

	return st, nil
}

// ClearGames deletes the whole history.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
