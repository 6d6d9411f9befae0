// Package storage provides SQLite-based persistence for the seed journal.
// Maps themselves are never stored: a bookmarked seed plus its generator
// parameters is enough to reproduce a layout deterministically.
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

// Store manages the SQLite database connection for the seed journal.
type Store struct {
	db *sql.DB
}

// SeedEntry is one bookmarked generation: the mode it was made in, the seed,
// the world dimensions and the generator parameter (fill probability or
// carve ratio, depending on mode).
type SeedEntry struct {
	ID        int64
	Mode      string
	Seed      int64
	Width     int
	Height    int
	Param     float64
	Note      string
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS seeds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			param REAL NOT NULL DEFAULT 0,
			note TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_seeds_mode ON seeds(mode);
		CREATE INDEX IF NOT EXISTS idx_seeds_recent ON seeds(created_at DESC);
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

// SaveSeed records a bookmarked generation.
// Returns the ID of the inserted record.
func (s *Store) SaveSeed(e SeedEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO seeds (mode, seed, width, height, param, note) VALUES (?, ?, ?, ?, ?, ?)",
		e.Mode, e.Seed, e.Width, e.Height, e.Param, e.Note,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save seed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSeeds retrieves the most recently bookmarked seeds across all modes.
func (s *Store) RecentSeeds(limit int) ([]SeedEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, seed, width, height, param, note, created_at
		 FROM seeds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query seeds: %w", err)
	}
	defer rows.Close()

	return scanSeeds(rows)
}

// SeedsForMode retrieves bookmarked seeds for one mode, newest first.
func (s *Store) SeedsForMode(mode string, limit int) ([]SeedEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, seed, width, height, param, note, created_at
		 FROM seeds
		 WHERE mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query seeds: %w", err)
	}
	defer rows.Close()

	return scanSeeds(rows)
}

// LastSeed returns the most recent bookmark for a mode, or nil if none.
func (s *Store) LastSeed(mode string) (*SeedEntry, error) {
	entries, err := s.SeedsForMode(mode, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// ClearSeeds deletes all bookmarks for the given mode, or every bookmark
// when mode is empty.
func (s *Store) ClearSeeds(mode string) error {
	var err error
	if mode == "" {
		_, err = s.db.Exec("DELETE FROM seeds")
	} else {
		_, err = s.db.Exec("DELETE FROM seeds WHERE mode = ?", mode)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear seeds: %w", err)
	}
	return nil
}

// Count returns the total number of bookmarked seeds.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM seeds").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count seeds: %w", err)
	}
	return n, nil
}

func scanSeeds(rows *sql.Rows) ([]SeedEntry, error) {
	var entries []SeedEntry
	for rows.Next() {
		var e SeedEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Seed, &e.Width, &e.Height, &e.Param, &e.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - the driver may hand back either type
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
