// internal/persistence/postgres_store.go
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore keeps saved sessions in a PostgreSQL table, one JSONB document per row.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and creates the table if needed.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS rune_hall_sessions (
		id TEXT PRIMARY KEY,
		saved_at TIMESTAMP WITH TIME ZONE NOT NULL,
		hall_index INTEGER NOT NULL,
		record JSONB NOT NULL
	);
	`
	_, err := ps.db.Exec(schema)
	return err
}

// Save inserts or replaces the session.
func (ps *PostgresStore) Save(rec *SessionRecord) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("save session: missing id")
	}
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	query := `
	INSERT INTO rune_hall_sessions (id, saved_at, hall_index, record)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id)
	DO UPDATE SET saved_at = $2, hall_index = $3, record = $4
	`
	if _, err := ps.db.Exec(query, rec.ID, rec.SavedAt, rec.HallIndex, string(doc)); err != nil {
		return fmt.Errorf("failed to save session %s: %w", rec.ID, err)
	}
	return nil
}

// Load returns the session saved under id.
func (ps *PostgresStore) Load(id string) (*SessionRecord, error) {
	return ps.queryOne(`SELECT record FROM rune_hall_sessions WHERE id = $1`, id)
}

// Latest returns the most recently saved session.
func (ps *PostgresStore) Latest() (*SessionRecord, error) {
	return ps.queryOne(`SELECT record FROM rune_hall_sessions ORDER BY saved_at DESC LIMIT 1`)
}

func (ps *PostgresStore) queryOne(query string, args ...interface{}) (*SessionRecord, error) {
	var doc string
	err := ps.db.QueryRow(query, args...).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var rec SessionRecord
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &rec, nil
}

// List returns all saves, newest first.
func (ps *PostgresStore) List() ([]Summary, error) {
	rows, err := ps.db.Query(`SELECT id, saved_at, hall_index FROM rune_hall_sessions ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.SavedAt, &s.HallIndex); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes the session saved under id.
func (ps *PostgresStore) Delete(id string) error {
	res, err := ps.db.Exec(`DELETE FROM rune_hall_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete session %s: %w", id, ErrNotFound)
	}
	return nil
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
