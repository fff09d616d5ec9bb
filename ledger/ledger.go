// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrAlreadyVoted   = errors.New("already voted")
)

// Store runs every ledger operation against the shared database. It keeps no
// state of its own; scores and vote state are always read fresh.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// withTx runs fn in a transaction that commits only if fn succeeds.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err came from a UNIQUE or PRIMARY KEY constraint.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
		}
	}

	return false
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func eventExists(ctx context.Context, q queryer, eventID int64) error {
	var id int64
	err := q.QueryRowContext(ctx, `SELECT id FROM event WHERE id = $1`, eventID).Scan(&id)
	if err == sql.ErrNoRows {
		return fmt.Errorf("event %d: %w", eventID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to query event: %w", err)
	}
	return nil
}

// sentimentEvent returns the event a sentiment belongs to.
func sentimentEvent(ctx context.Context, q queryer, sentimentID int64) (int64, error) {
	var eventID int64
	err := q.QueryRowContext(ctx, `SELECT event_id FROM sentiment WHERE id = $1`, sentimentID).Scan(&eventID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("sentiment %d: %w", sentimentID, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query sentiment: %w", err)
	}
	return eventID, nil
}
