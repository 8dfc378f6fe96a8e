// Package storage provides SQLite-based persistence for match history.
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

// End reasons recorded with a match.
const (
	EndQuit       = "quit"
	EndDisconnect = "disconnect"
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// Match is one finished local match.
type Match struct {
	ID         int64
	MatchID    string // UUID, generated on save when empty
	Player     string
	ScoreLeft  int
	ScoreRight int
	Ticks      int64
	Duration   time.Duration // stored with second precision
	EndReason  string
	CreatedAt  time.Time
}

// Winner returns "left", "right" or "draw".
func (m Match) Winner() string {
	switch {
	case m.ScoreLeft > m.ScoreRight:
		return "left"
	case m.ScoreRight > m.ScoreLeft:
		return "right"
	default:
		return "draw"
	}
}

// PlayerStats aggregates every match of one player.
type PlayerStats struct {
	Player      string
	Matches     int
	LeftPoints  int
	RightPoints int
	LongestSecs int
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			score_left INTEGER NOT NULL DEFAULT 0,
			score_right INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
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

// SaveMatch records a finished match and returns the stored copy
// with its row ID and match ID filled in.
func (s *Store) SaveMatch(m Match) (Match, error) {
	if m.MatchID == "" {
		m.MatchID = uuid.NewString()
	} else if _, err := uuid.Parse(m.MatchID); err != nil {
		return m, fmt.Errorf("storage: invalid match id %q: %w", m.MatchID, err)
	}
	if m.EndReason == "" {
		m.EndReason = EndQuit
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, player, score_left, score_right, ticks, duration_secs, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID,
		m.Player,
		m.ScoreLeft,
		m.ScoreRight,
		m.Ticks,
		int64(m.Duration/time.Second),
		m.EndReason,
	)
	if err != nil {
		return m, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return m, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	m.ID = id

	return m, nil
}

const matchColumns = `id, match_id, player, score_left, score_right, ticks, duration_secs, end_reason, created_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (Match, error) {
	var m Match
	var secs int64
	var createdAt any

	if err := row.Scan(
		&m.ID,
		&m.MatchID,
		&m.Player,
		&m.ScoreLeft,
		&m.ScoreRight,
		&m.Ticks,
		&secs,
		&m.EndReason,
		&createdAt,
	); err != nil {
		return m, err
	}

	m.Duration = time.Duration(secs) * time.Second
	m.CreatedAt = parseTime(createdAt)
	return m, nil
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

// MatchByID retrieves a match by its UUID. Returns nil if absent.
func (s *Store) MatchByID(matchID string) (*Match, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}

	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	return collectMatches(rows)
}

// PlayerMatches retrieves the most recent matches of one player.
func (s *Store) PlayerMatches(player string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player matches: %w", err)
	}
	defer rows.Close()

	return collectMatches(rows)
}

func collectMatches(rows *sql.Rows) ([]Match, error) {
	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// PlayerStats retrieves aggregated statistics for one player.
func (s *Store) PlayerStats(player string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(score_left), 0), COALESCE(SUM(score_right), 0),
		        COALESCE(MAX(duration_secs), 0), MAX(created_at)
		 FROM matches WHERE player = ?`,
		player,
	).Scan(&stats.Matches, &stats.LeftPoints, &stats.RightPoints, &stats.LongestSecs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearMatches deletes the history of one player, or everything when
// player is empty.
func (s *Store) ClearMatches(player string) error {
	var err error
	if player == "" {
		_, err = s.db.Exec("DELETE FROM matches")
	} else {
		_, err = s.db.Exec("DELETE FROM matches WHERE player = ?", player)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
