// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/love-wall/models"
)

type voteAction int

const (
	voteKeep voteAction = iota
	voteCreate
	voteFlip
	voteDelete
)

// voteTransitions maps (current, desired) to the action taken. current is
// DirectionNone when the session has not voted on the sentiment.
var voteTransitions = map[string]map[string]voteAction{
	models.DirectionNone: {
		models.DirectionUp:   voteCreate,
		models.DirectionDown: voteCreate,
		models.DirectionNone: voteKeep,
	},
	models.DirectionUp: {
		models.DirectionUp:   voteKeep,
		models.DirectionDown: voteFlip,
		models.DirectionNone: voteDelete,
	},
	models.DirectionDown: {
		models.DirectionUp:   voteFlip,
		models.DirectionDown: voteKeep,
		models.DirectionNone: voteDelete,
	},
}

// SetVote moves the (sentiment, session) vote to the desired direction
// ("up", "down" or "none"). Repeating the current direction is a no-op, a
// changed direction updates the existing row in place, and "none" removes it.
// Losing a create race to a concurrent request from the same session returns
// ErrAlreadyVoted; the caller should re-read state rather than replay the write.
func (s *Store) SetVote(ctx context.Context, sentimentID int64, sessionID, desired string) (models.VoteResult, error) {
	result := models.VoteResult{}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		eventID, err := sentimentEvent(ctx, tx, sentimentID)
		if err != nil {
			return err
		}
		result.EventID = eventID

		direction, ok := models.ParseVoteDirection(desired)
		if !ok {
			return fmt.Errorf("vote direction %q: %w", desired, ErrInvalidRequest)
		}
		desired = direction
		result.Direction = direction

		var voteID int64
		current := models.DirectionNone
		err = tx.QueryRowContext(ctx, `
			SELECT id, direction FROM sentiment_vote
			WHERE sentiment_id = $1 AND session_id = $2
		`, sentimentID, sessionID).Scan(&voteID, &current)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("failed to query vote: %w", err)
		}

		switch voteTransitions[current][desired] {
		case voteCreate:
			_, err = tx.ExecContext(ctx, `
				INSERT INTO sentiment_vote (date, sentiment_id, session_id, direction)
				VALUES ($1, $2, $3, $4)
			`, s.now(), sentimentID, sessionID, desired)
			if isUniqueViolation(err) {
				return fmt.Errorf("vote on sentiment %d: %w", sentimentID, ErrAlreadyVoted)
			}
			if err != nil {
				return fmt.Errorf("failed to insert vote: %w", err)
			}
			result.Transition = models.TransitionCreated

		case voteFlip:
			if err := flipVote(ctx, tx, voteID, desired, s.now()); err != nil {
				return err
			}
			result.Transition = models.TransitionFlipped

		case voteDelete:
			if err := deleteVote(ctx, tx, voteID); err != nil {
				return err
			}
			result.Transition = models.TransitionDeleted

		default:
			result.Transition = models.TransitionUnchanged
		}

		return nil
	})
	if err != nil {
		return models.VoteResult{}, err
	}

	return result, nil
}

// flipVote changes the direction of an existing vote row. A row that vanished
// since it was read means a concurrent request won; that is ErrAlreadyVoted.
func flipVote(ctx context.Context, tx *sql.Tx, voteID int64, direction string, now time.Time) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE sentiment_vote SET direction = $1, date = $2 WHERE id = $3
	`, direction, now, voteID)
	if err != nil {
		return fmt.Errorf("failed to update vote: %w", err)
	}
	return requireVoteRow(res, voteID)
}

func deleteVote(ctx context.Context, tx *sql.Tx, voteID int64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM sentiment_vote WHERE id = $1`, voteID)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	return requireVoteRow(res, voteID)
}

func requireVoteRow(res sql.Result, voteID int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("vote %d changed concurrently: %w", voteID, ErrAlreadyVoted)
	}
	return nil
}

// SentimentScore is ups minus downs, counted fresh.
func (s *Store) SentimentScore(ctx context.Context, sentimentID int64) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(CASE WHEN direction = 'up' THEN 1 ELSE -1 END), 0)
		FROM sentiment_vote
		WHERE sentiment_id = $1
	`, sentimentID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return score, nil
}

// VoteOf returns the session's direction on a sentiment, or DirectionNone.
func (s *Store) VoteOf(ctx context.Context, sentimentID int64, sessionID string) (string, error) {
	var direction string
	err := s.db.QueryRowContext(ctx, `
		SELECT direction FROM sentiment_vote
		WHERE sentiment_id = $1 AND session_id = $2
	`, sentimentID, sessionID).Scan(&direction)
	if err == sql.ErrNoRows {
		return models.DirectionNone, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query vote: %w", err)
	}
	return direction, nil
}
