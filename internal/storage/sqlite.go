// Package storage keeps finished-game results in SQLite.
// It uses the pure-Go modernc.org/sqlite driver, so no CGO is required.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store is a handle to the results database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID           int64
	GameID       string
	Score        int
	Level        int
	BlocksPlaced int
	LinesCleared int
	CreatedAt    time.Time
}

// Stats aggregates every result of one mode.
type Stats struct {
	GameID     string
	Games      int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	TotalLines int
	LastPlayed time.Time
}

// Open creates or opens the database at dbPath. A leading ~ is expanded,
// parent directories are created and the schema is migrated.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
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

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			blocks_placed INTEGER NOT NULL DEFAULT 0,
			lines_cleared INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(game_id, score DESC);
	`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its row ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: result has no game id")
	}
	res, err := s.db.Exec(
		`INSERT INTO results (game_id, score, level, blocks_placed, lines_cleared)
		 VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.Score, r.Level, r.BlocksPlaced, r.LinesCleared,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopResults returns up to limit results for a mode, best score first.
// Equal scores keep insertion order. A non-positive limit means 10.
func (s *Store) TopResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, level, blocks_placed, lines_cleared, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Level, &r.BlocksPlaced, &r.LinesCleared, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// HighScore returns the best score for a mode, or 0 when none exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM results WHERE game_id = ?", gameID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates a mode's results. A mode with no results has zero stats.
func (s *Store) Stats(gameID string) (Stats, error) {
	st := Stats{GameID: gameID}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), COALESCE(SUM(lines_cleared), 0), MAX(created_at)
		 FROM results WHERE game_id = ?`,
		gameID,
	).Scan(&st.Games, &st.HighScore, &st.AvgScore, &st.BestLevel, &st.TotalLines, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// ClearResults deletes every result of a mode.
func (s *Store) ClearResults(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime accepts what the driver hands back for a DATETIME column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
