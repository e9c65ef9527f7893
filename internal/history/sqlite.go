// internal/history/sqlite.go
//
// SQLite-backed Recorder.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Bootstrapping the moves table (idempotent CREATE TABLE IF NOT EXISTS).
//   - Inserting one row per applied transfer.
//
// Note: enabled when the session is started with a HANOI_DB path; the
// in-memory recorder is the default otherwise.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS moves (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    seq        INTEGER NOT NULL,
    src        TEXT    NOT NULL,
    dst        TEXT    NOT NULL,
    undo       INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);`

// SQLite records transfers into a moves table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (and creates if missing) the database at dsn and ensures
// the schema exists.
//
//   - Ensures the parent directory exists for relative DSNs
//     (e.g. ./data/hanoi.db).
//   - Configures busy timeout and WAL journaling mode.
func NewSQLite(dsn string) (*SQLite, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create moves table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Record inserts one row for the entry.
func (s *SQLite) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO moves (seq, src, dst, undo, created_at)
        VALUES (?, ?, ?, ?, ?)`,
		e.Seq, e.From, e.To, e.Undo, e.At,
	)
	return err
}

// Close closes the underlying database handle.
func (s *SQLite) Close() error { return s.db.Close() }
