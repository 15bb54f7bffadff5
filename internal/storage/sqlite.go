// Package storage provides SQLite-based persistence for solve history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve-history persistence.
type Store struct {
	db *sql.DB
}

// SolveRecord represents one completed search invocation.
type SolveRecord struct {
	ID         int64
	Board      string // Canonical start-board serialization
	Side       int    // Grid side length
	Outcome    string // "already-solved", "solved", or "unsolvable"
	Moves      int    // Solution length (0 unless solved)
	Expanded   int    // Nodes taken off the frontier
	DurationMs int64
	CreatedAt  time.Time
}

// SolveStats contains aggregated statistics over the solve history.
type SolveStats struct {
	Total       int
	Solved      int
	Unsolvable  int
	BestMoves   int // Shortest non-empty solution, 0 if none
	AvgMoves    float64
	AvgExpanded float64
	LastSolve   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board TEXT NOT NULL,
			side INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			expanded INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_created ON solves(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_solves_outcome ON solves(outcome);
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

// SaveSolve records a completed search. Returns the ID of the inserted record.
func (s *Store) SaveSolve(rec SolveRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO solves (board, side, outcome, moves, expanded, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Board, rec.Side, rec.Outcome, rec.Moves, rec.Expanded, rec.DurationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSolves retrieves the most recent solve records, newest first.
func (s *Store) RecentSolves(limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, board, side, outcome, moves, expanded, duration_ms, created_at
		 FROM solves
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var records []SolveRecord
	for rows.Next() {
		var rec SolveRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Board, &rec.Side, &rec.Outcome,
			&rec.Moves, &rec.Expanded, &rec.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats retrieves aggregated statistics over the whole solve history.
func (s *Store) Stats() (*SolveStats, error) {
	stats := &SolveStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'solved' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'unsolvable' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(expanded), 0)
		 FROM solves`,
	).Scan(&stats.Total, &stats.Solved, &stats.Unsolvable, &stats.AvgExpanded)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get solve stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0)
		 FROM solves WHERE outcome = 'solved'`,
	).Scan(&stats.BestMoves, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get move stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves ORDER BY id DESC LIMIT 1`,
	).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last solve: %w", err)
	}
	if err == nil {
		stats.LastSolve = parseTimestamp(last)
	}

	return stats, nil
}

// ClearSolves deletes the entire solve history.
func (s *Store) ClearSolves() error {
	_, err := s.db.Exec("DELETE FROM solves")
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
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
