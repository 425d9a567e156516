// Package storage provides SQLite-based persistence for per-profile player
// settings. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// DefaultPath is where the settings database lives unless overridden.
const DefaultPath = "~/.pong/pong.db"

// Store manages the SQLite database connection for settings persistence.
type Store struct {
	db *sql.DB
}

// Settings are the user choices remembered between sessions.
type Settings struct {
	Profile         string
	SpeedMultiplier float64
	Difficulty      string // Empty keeps the config file's CPU tuning
	UpdatedAt       time.Time
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
		CREATE TABLE IF NOT EXISTS settings (
			profile TEXT PRIMARY KEY,
			speed_multiplier REAL NOT NULL DEFAULT 1.0,
			difficulty TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// LoadSettings returns the saved settings for a profile.
// The bool is false when the profile has never been saved.
func (s *Store) LoadSettings(profile string) (Settings, bool, error) {
	profile = normalizeProfile(profile)

	st := Settings{Profile: profile}
	var updatedAt any
	err := s.db.QueryRow(
		"SELECT speed_multiplier, difficulty, updated_at FROM settings WHERE profile = ?",
		profile,
	).Scan(&st.SpeedMultiplier, &st.Difficulty, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{Profile: profile}, false, nil
	}
	if err != nil {
		return Settings{}, false, fmt.Errorf("storage: cannot load settings for %q: %w", profile, err)
	}
	st.UpdatedAt = parseTime(updatedAt)
	return st, true, nil
}

// SaveSettings stores the settings for st.Profile, replacing older values.
func (s *Store) SaveSettings(st Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (profile, speed_multiplier, difficulty, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(profile) DO UPDATE SET
			speed_multiplier = excluded.speed_multiplier,
			difficulty = excluded.difficulty,
			updated_at = excluded.updated_at`,
		normalizeProfile(st.Profile), st.SpeedMultiplier, st.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}

// DeleteSettings forgets a profile. Deleting an unknown profile is not an error.
func (s *Store) DeleteSettings(profile string) error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE profile = ?", normalizeProfile(profile)); err != nil {
		return fmt.Errorf("storage: cannot delete settings: %w", err)
	}
	return nil
}

// Profiles returns all saved settings ordered by profile name.
func (s *Store) Profiles() ([]Settings, error) {
	rows, err := s.db.Query(
		"SELECT profile, speed_multiplier, difficulty, updated_at FROM settings ORDER BY profile",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var out []Settings
	for rows.Next() {
		var st Settings
		var updatedAt any
		if err := rows.Scan(&st.Profile, &st.SpeedMultiplier, &st.Difficulty, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan profile: %w", err)
		}
		st.UpdatedAt = parseTime(updatedAt)
		out = append(out, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// parseTime handles the driver returning either time.Time or text.
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

// normalizeProfile maps an empty name to "local".
func normalizeProfile(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "local"
	}
	return p
}
