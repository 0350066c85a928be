package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// DB represents a wrapper around the SQL database connection.
type DB struct {
	conn *sql.DB
}

// Open creates a new database connection and ensures the schema is up to date.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Execute the schema to create tables if they don't exist.
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Lookup is a cached dictionary entry.
type Lookup struct {
	Word      string
	Entry     string
	FetchedAt time.Time
}

// FindLookup retrieves a cached entry by word. It returns nil when the word
// has not been cached.
func (db *DB) FindLookup(ctx context.Context, word string) (*Lookup, error) {
	var l Lookup
	row := db.conn.QueryRowContext(ctx, `
		SELECT word, entry, fetched_at
		FROM lookups WHERE word = ?
	`, word)

	err := row.Scan(&l.Word, &l.Entry, &l.FetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find lookup for %s: %w", word, err)
	}
	return &l, nil
}

// SaveLookup inserts or replaces the cached entry of a word.
func (db *DB) SaveLookup(ctx context.Context, word, entry string) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO lookups (word, entry, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(word) DO UPDATE SET entry = excluded.entry, fetched_at = excluded.fetched_at
	`, word, entry, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save lookup for %s: %w", word, err)
	}
	return nil
}

// CountLookups returns the number of cached entries.
func (db *DB) CountLookups(ctx context.Context) (int, error) {
	var n int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM lookups`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count lookups: %w", err)
	}
	return n, nil
}
