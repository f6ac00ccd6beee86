// Package history persists REPL input lines in a small sqlite database so
// sessions can recall what earlier ones ran.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	line       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: %w", err)
	}
	return &Store{db: db}, nil
}

// DefaultPath is ~/.quill/history.db, or a local file when the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".quill_history.db"
	}
	return filepath.Join(home, ".quill", "history.db")
}

// Append records one input line under the session's run id.
func (s *Store) Append(runID, line string) error {
	_, err := s.db.Exec(
		"INSERT INTO history (run_id, line, created_at) VALUES (?, ?, ?)",
		runID, line, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

// Recent returns up to n of the most recent lines, oldest first.
func (s *Store) Recent(n int) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT line FROM (SELECT id, line FROM history ORDER BY id DESC LIMIT ?) ORDER BY id ASC", n,
	)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("history: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return lines, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
