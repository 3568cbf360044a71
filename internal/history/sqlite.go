// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/cardscan/pkg/types"
)

const dbFile = "history.db"

// SQLiteSnapshot persists the collection in a SQLite database. One row per
// item, ordered by position; each Save rewrites the table in a single
// transaction. Timestamps are stored as RFC 3339 text.
type SQLiteSnapshot struct {
	db *sql.DB
}

// NewSQLiteSnapshot opens or creates dir/history.db and its schema.
func NewSQLiteSnapshot(dir string) (*SQLiteSnapshot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &SQLiteSnapshot{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteSnapshot) Close() error {
	return s.db.Close()
}

func (s *SQLiteSnapshot) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS history (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		image TEXT NOT NULL,
		contact TEXT NOT NULL,
		language TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		filename TEXT NOT NULL
	)`)
	return err
}

// Load reads all items in position order. Rows whose contact payload or
// timestamp cannot be decoded are logged and skipped.
func (s *SQLiteSnapshot) Load() ([]types.HistoryItem, error) {
	rows, err := s.db.Query(`SELECT id, image, contact, language, timestamp, filename
		FROM history ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var items []types.HistoryItem
	for rows.Next() {
		var item types.HistoryItem
		var contact, language, timestamp string
		if err := rows.Scan(&item.ID, &item.Image, &contact, &language, &timestamp, &item.Filename); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if err := json.Unmarshal([]byte(contact), &item.Contact); err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping history item %s: %v\n", item.ID, err)
			continue
		}
		ts, err := time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping history item %s: %v\n", item.ID, err)
			continue
		}
		item.Language = types.Language(language)
		item.Timestamp = ts
		items = append(items, item)
	}
	return items, rows.Err()
}

// Save rewrites the history table with the given collection.
func (s *SQLiteSnapshot) Save(items []types.HistoryItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning history save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO history
		(position, id, image, contact, language, timestamp, filename)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing history insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		contact, err := json.Marshal(item.Contact)
		if err != nil {
			return fmt.Errorf("marshaling contact %s: %w", item.ID, err)
		}
		_, err = stmt.Exec(i, item.ID, item.Image, string(contact),
			string(item.Language), item.Timestamp.Format(time.RFC3339Nano), item.Filename)
		if err != nil {
			return fmt.Errorf("inserting history item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing history save: %w", err)
	}
	return nil
}
