// Package store persists parsed chat messages in an embedded SQLite
// database. The store holds at most one imported conversation at a
// time: every import replaces the previous batch wholesale.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS messages (
    id     INTEGER PRIMARY KEY AUTOINCREMENT,
    sender TEXT NOT NULL,
    body   TEXT NOT NULL,
    ts     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages(sender);
CREATE INDEX IF NOT EXISTS idx_messages_ts ON messages(ts);
`

// DB wraps the SQLite handle. Callers own the handle explicitly: open
// it at the start of a command and close it when done.
type DB struct {
	db   *sql.DB
	path string
}

func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &DB{db: db, path: dbPath}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// ReplaceAll clears the previous batch and inserts msgs in order inside
// a single transaction, so a reader never observes a mix of two
// imports. It returns the number of rows stored.
func (d *DB) ReplaceAll(msgs []parse.Message) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages"); err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare("INSERT INTO messages (sender, body, ts) VALUES (?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, m := range msgs {
		if _, err := stmt.Exec(m.Sender, m.Body, m.Timestamp.Unix()); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(msgs), nil
}

// ReadAll returns every stored message in insertion order with its
// store-assigned key attached. Timestamps are rehydrated into loc so
// hour and weekday based analytics see the wall clock the messages were
// decoded in.
func (d *DB) ReadAll(loc *time.Location) ([]parse.Message, error) {
	rows, err := d.db.Query("SELECT id, sender, body, ts FROM messages ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []parse.Message
	for rows.Next() {
		var m parse.Message
		var ts int64
		if err := rows.Scan(&m.ID, &m.Sender, &m.Body, &ts); err != nil {
			return nil, err
		}
		m.Timestamp = time.Unix(ts, 0).In(loc)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (d *DB) Count() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&n)
	return n, err
}

// Reset tears the message table down and recreates it empty. No process
// restart is required to reinitialize the store.
func (d *DB) Reset() error {
	if _, err := d.db.Exec("DROP TABLE IF EXISTS messages"); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}
	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("recreate schema: %w", err)
	}
	return nil
}

// Path returns the database file location, for diagnostics.
func (d *DB) Path() string {
	return d.path
}
