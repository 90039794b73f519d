// Package storage provides SQLite-based persistence for Salad Chef scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
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

// migrate creates the database schema if it doesn't exist and seeds the
// fixed high score slots.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			slot INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			player1_score INTEGER NOT NULL DEFAULT 0,
			player2_score INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_mode ON rounds(mode);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	for slot := 0; slot < TopScoreSlots; slot++ {
		if _, err := s.db.Exec(
			"INSERT OR IGNORE INTO high_scores (slot, name, score) VALUES (?, ?, ?)",
			slot, EmptyName, 0,
		); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// TopScores returns all slots ordered by score descending.
func (s *Store) TopScores() ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT slot, name, score, updated_at
		 FROM high_scores
		 ORDER BY score DESC, slot ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var updatedAt any
		if err := rows.Scan(&e.Slot, &e.Name, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecordScore replaces the lowest slot with (name, score) if score is not
// lower than it. Among equal minimums the first slot is replaced.
func (s *Store) RecordScore(name string, score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var slot, lowest int
	err = tx.QueryRow(
		"SELECT slot, score FROM high_scores ORDER BY score ASC, slot ASC LIMIT 1",
	).Scan(&slot, &lowest)
	if err != nil {
		return fmt.Errorf("storage: cannot find lowest score: %w", err)
	}
	if score < lowest {
		return nil
	}

	if _, err := tx.Exec(
		"UPDATE high_scores SET name = ?, score = ?, updated_at = CURRENT_TIMESTAMP WHERE slot = ?",
		name, score, slot,
	); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return nil
}

// HighScore returns the best recorded score, 0 when nothing was recorded.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM high_scores").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores resets every slot to the empty entry.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec(
		"UPDATE high_scores SET name = ?, score = 0, updated_at = CURRENT_TIMESTAMP",
		EmptyName,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveRound records a finished round and returns its id.
// A new uuid is generated when the record has none.
func (s *Store) SaveRound(r RoundRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	} else if _, err := uuid.Parse(r.ID); err != nil {
		return "", fmt.Errorf("storage: invalid round id %q: %w", r.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (round_id, mode, player1_score, player2_score, winner, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Mode, r.Player1Score, r.Player2Score, r.Winner, r.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r.ID, nil
}

// RoundByID retrieves a round by its id. Returns nil if it does not exist.
func (s *Store) RoundByID(id string) (*RoundRecord, error) {
	var r RoundRecord
	var createdAt any
	err := s.db.QueryRow(
		`SELECT round_id, mode, player1_score, player2_score, winner, duration_secs, created_at
		 FROM rounds
		 WHERE round_id = ?`,
		id,
	).Scan(&r.ID, &r.Mode, &r.Player1Score, &r.Player2Score, &r.Winner, &r.Duration, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT round_id, mode, player1_score, player2_score, winner, duration_secs, created_at
		 FROM rounds
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Player1Score, &r.Player2Score, &r.Winner, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// ModeStats retrieves aggregated round statistics for one mode.
func (s *Store) ModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(MAX(player1_score, player2_score)), 0),
		        COALESCE(SUM(CASE WHEN winner = 'Player1' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'Player2' THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM rounds WHERE mode = ?`,
		mode,
	).Scan(&stats.Rounds, &stats.BestScore, &stats.Player1Wins, &stats.Player2Wins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles the datetime column as either time.Time or string.
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
