// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateSession persists a new anonymous session and returns its id.
func (s *Store) CreateSession(ctx context.Context) (string, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, created_at) VALUES ($1, $2)
	`, id, s.now())
	if err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}

	return id, nil
}

// RestoreSession re-creates the row for a session id carried by a valid cookie
// whose row is gone, e.g. after the database was reset.
func (s *Store) RestoreSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, created_at) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`, sessionID, s.now())
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return nil
}

// SessionExists reports whether a session row is present.
func (s *Store) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM session WHERE id = $1)
	`, sessionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query session: %w", err)
	}
	return exists, nil
}
