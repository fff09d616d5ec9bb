// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"
)

// CastHeart records one heart for (event, session). The insert is not
// preceded by an existence check: uq_event_session decides, and a violation
// comes back as ErrAlreadyVoted. Hearts cannot be taken back.
func (s *Store) CastHeart(ctx context.Context, eventID int64, sessionID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := eventExists(ctx, tx, eventID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO heart (date, event_id, session_id)
			VALUES ($1, $2, $3)
		`, s.now(), eventID, sessionID)
		if isUniqueViolation(err) {
			return fmt.Errorf("heart on event %d: %w", eventID, ErrAlreadyVoted)
		}
		if err != nil {
			return fmt.Errorf("failed to insert heart: %w", err)
		}

		return nil
	})
}
