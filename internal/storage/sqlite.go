// Package storage provides SQLite-based persistence for match history.
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

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchResult represents the outcome of one finished match.
type MatchResult struct {
	ID         int64
	WinnerID   int // 0 = draw
	PlayerWon  bool
	RiderCount int
	Ticks      int
	DurationMs int
	CreatedAt  time.Time
}

// MatchStats aggregates the match history.
type MatchStats struct {
	Total      int
	PlayerWins int
	BotWins    int
	Draws      int
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			winner_id INTEGER NOT NULL,
			player_won INTEGER NOT NULL DEFAULT 0,
			rider_count INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchResult) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO matches (winner_id, player_won, rider_count, ticks, duration_ms) VALUES (?, ?, ?, ?, ?)",
		m.WinnerID, boolToInt(m.PlayerWon), m.RiderCount, m.Ticks, m.DurationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent N matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, winner_id, player_won, rider_count, ticks, duration_ms, created_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchResult
	for rows.Next() {
		var m MatchResult
		var playerWon int
		var createdAt any
		if err := rows.Scan(&m.ID, &m.WinnerID, &playerWon, &m.RiderCount, &m.Ticks, &m.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.PlayerWon = playerWon != 0

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			m.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				m.CreatedAt = parsed
			}
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// Stats returns aggregate counts over the whole match history.
func (s *Store) Stats() (MatchStats, error) {
	var st MatchStats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(player_won), 0),
		        COALESCE(SUM(CASE WHEN winner_id != 0 AND player_won = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner_id = 0 THEN 1 ELSE 0 END), 0)
		 FROM matches`,
	).Scan(&st.Total, &st.PlayerWins, &st.BotWins, &st.Draws)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// ClearMatches deletes the entire match history.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
