// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/love-wall/models"
)

// AddComment appends a comment to a sentiment. It returns the comment id and
// the event the sentiment belongs to.
func (s *Store) AddComment(ctx context.Context, sentimentID int64, text string) (commentID, eventID int64, err error) {
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		eventID, err = sentimentEvent(ctx, tx, sentimentID)
		if err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO comment (date, sentiment_id, text)
			VALUES ($1, $2, $3)
			RETURNING id
		`, s.now(), sentimentID, text).Scan(&commentID)
		if err != nil {
			return fmt.Errorf("failed to insert comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return commentID, eventID, nil
}

// ListComments returns a sentiment's comments oldest first.
func (s *Store) ListComments(ctx context.Context, sentimentID int64) ([]models.CommentView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sentiment_id, date, text
		FROM comment
		WHERE sentiment_id = $1
		ORDER BY date, id
	`, sentimentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.CommentView{}
	for rows.Next() {
		var c models.CommentView
		if err := rows.Scan(&c.ID, &c.SentimentID, &c.Date, &c.Text); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.Posted = humanize.Time(c.Date)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
