// Package sqlite provides the opt-in durable session store backed by a
// SQLite database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/banterhq/banter"
	"github.com/banterhq/banter/json"
	_ "modernc.org/sqlite"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    position   INTEGER PRIMARY KEY,
    id         TEXT NOT NULL UNIQUE,
    title      TEXT NOT NULL,
    created_at TEXT NOT NULL,
    messages   TEXT NOT NULL DEFAULT '[]'
);
`

// Interface compliance check.
var _ banter.Store = (*Store)(nil)

// Store implements [banter.Store] on a SQLite database. Save replaces the
// whole list inside one transaction, preserving the last-writer-wins
// contract; position records the list order (newest first).
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns the stored session list in list order.
func (s *Store) Load() ([]banter.Session, error) {
	rows, err := s.db.Query(`
		SELECT id, title, created_at, messages
		FROM sessions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	defer rows.Close()

	var sessions []banter.Session
	for rows.Next() {
		var sess banter.Session
		var createdAt, msgJSON string
		if err := rows.Scan(&sess.ID, &sess.Title, &createdAt, &msgJSON); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		msgs, err := json.UnmarshalMessages([]byte(msgJSON))
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", sess.ID, err)
		}
		sess.Messages = msgs
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Save replaces the stored list with sessions, in order.
func (s *Store) Save(sessions []banter.Session) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	for i, sess := range sessions {
		msgJSON, err := json.MarshalMessages(sess.Messages)
		if err != nil {
			return fmt.Errorf("session %s: %w", sess.ID, err)
		}
		_, err = tx.Exec(`
			INSERT INTO sessions (position, id, title, created_at, messages)
			VALUES (?, ?, ?, ?, ?)`,
			i, sess.ID, sess.Title,
			sess.CreatedAt.Format(time.RFC3339Nano), string(msgJSON))
		if err != nil {
			return fmt.Errorf("insert session %s: %w", sess.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
