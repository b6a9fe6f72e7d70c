// Package credstore persists the API key and user id between runs.
// The two slots are independently addressable: either may be absent
// on its own, and absence is distinct from an empty string.
package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const (
	slotAPIKey = "api_key"
	slotUserID = "user_id"
)

var ErrNoAPIKey = errors.New("no api key stored - please log in first")

type Credentials struct {
	APIKey *string
	UserID *string
}

// Complete reports whether both slots are present. Only a complete pair
// is worth attempting a login with.
func (c Credentials) Complete() bool {
	return c.APIKey != nil && c.UserID != nil
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS credentials (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize credential store: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context) (Credentials, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, value FROM credentials`)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var creds Credentials
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Credentials{}, fmt.Errorf("failed to scan credential: %w", err)
		}
		switch name {
		case slotAPIKey:
			v := value
			creds.APIKey = &v
		case slotUserID:
			v := value
			creds.UserID = &v
		}
	}
	if err := rows.Err(); err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials: %w", err)
	}

	return creds, nil
}

// Save writes both slots unconditionally, overwriting prior values.
func (s *Store) Save(ctx context.Context, apiKey, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `INSERT INTO credentials (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`

	for _, slot := range []struct{ name, value string }{
		{slotAPIKey, apiKey},
		{slotUserID, userID},
	} {
		if _, err := tx.ExecContext(ctx, upsert, slot.name, slot.value); err != nil {
			return fmt.Errorf("failed to save %s: %w", slot.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

// Clear removes all persisted slots. Clearing an empty store is not an
// error.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

// APIKey satisfies the client's key source. A missing slot yields
// ErrNoAPIKey so callers can fail before making a request.
func (s *Store) APIKey(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE name = ?`, slotAPIKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoAPIKey
		}
		return "", fmt.Errorf("failed to load api key: %w", err)
	}
	return value, nil
}
