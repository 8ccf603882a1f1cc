package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LogEntry is one audit row: exactly one per successful prediction.
type LogEntry struct {
	ID          int64   `json:"id"`
	Timestamp   string  `json:"timestamp"`
	Amount      float64 `json:"amount"`
	Prediction  int     `json:"prediction"`
	Probability float64 `json:"probability"`
}

// Store is the prediction audit log backed by a SQLite file. It is the sole
// writer and reader of the logs table.
type Store struct {
	database *sql.DB
}

// Open opens or creates the store and ensures the schema exists. Safe to call
// on every process start.
func Open(path string) (*Store, error) {
	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// sqlite does not tolerate concurrent writers on one handle; a single
	// pooled connection serializes appends.
	database.SetMaxOpenConns(1)

	query := `
    CREATE TABLE IF NOT EXISTS logs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        timestamp TEXT,
        amount REAL,
        prediction INTEGER,
        probability REAL
    );
    `
	if _, err := database.Exec(query); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize logs table: %w", err)
	}

	return &Store{database: database}, nil
}

// Append inserts one entry and commits before returning. A failed commit
// leaves no visible row.
func (s *Store) Append(entry LogEntry) error {
	if s == nil || s.database == nil {
		return errors.New("store not initialized")
	}

	tx, err := s.database.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        INSERT INTO logs (timestamp, amount, prediction, probability)
        VALUES (?, ?, ?, ?)`,
		entry.Timestamp, entry.Amount, entry.Prediction, entry.Probability)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// CountEntries returns the number of audit rows. The HTTP surface never reads
// the log; this exists for operational checks and tests.
func (s *Store) CountEntries() (int, error) {
	if s == nil || s.database == nil {
		return 0, errors.New("store not initialized")
	}
	var count int
	err := s.database.QueryRow(`SELECT COUNT(*) FROM logs`).Scan(&count)
	return count, err
}

// LastEntry returns the most recent audit row, or sql.ErrNoRows when empty.
func (s *Store) LastEntry() (LogEntry, error) {
	var entry LogEntry
	if s == nil || s.database == nil {
		return entry, errors.New("store not initialized")
	}
	err := s.database.QueryRow(`
        SELECT id, timestamp, amount, prediction, probability
        FROM logs
        ORDER BY id DESC
        LIMIT 1`).Scan(&entry.ID, &entry.Timestamp, &entry.Amount, &entry.Prediction, &entry.Probability)
	return entry, err
}

// Close releases the underlying handle.
func (s *Store) Close() error {
	if s == nil || s.database == nil {
		return nil
	}
	return s.database.Close()
}
