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

// PostSentiment attaches text to an event and returns the new sentiment id.
// Length and content checks belong to the caller.
func (s *Store) PostSentiment(ctx context.Context, eventID int64, text string) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := eventExists(ctx, tx, eventID); err != nil {
			return err
		}

		err := tx.QueryRowContext(ctx, `
			INSERT INTO sentiment (date, event_id, text)
			VALUES ($1, $2, $3)
			RETURNING id
		`, s.now(), eventID, text).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert sentiment: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetSentiment returns one sentiment or ErrNotFound.
func (s *Store) GetSentiment(ctx context.Context, sentimentID int64) (models.Sentiment, error) {
	var st models.Sentiment
	err := s.db.QueryRowContext(ctx, `
		SELECT id, event_id, date, text FROM sentiment WHERE id = $1
	`, sentimentID).Scan(&st.ID, &st.EventID, &st.Date, &st.Text)

	if err == sql.ErrNoRows {
		return models.Sentiment{}, fmt.Errorf("sentiment %d: %w", sentimentID, ErrNotFound)
	}
	if err != nil {
		return models.Sentiment{}, fmt.Errorf("failed to query sentiment: %w", err)
	}
	return st, nil
}

// ListSentiments returns an event's sentiments, newest first, each with its
// current score, the given session's vote and its comments.
func (s *Store) ListSentiments(ctx context.Context, eventID int64, sessionID string) ([]models.SentimentView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, event_id, date, text
		FROM sentiment
		WHERE event_id = $1
		ORDER BY date DESC, id DESC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentiments: %w", err)
	}
	defer rows.Close()

	views := []models.SentimentView{}
	index := make(map[int64]int)
	for rows.Next() {
		var v models.SentimentView
		if err := rows.Scan(&v.ID, &v.EventID, &v.Date, &v.Text); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment: %w", err)
		}
		v.MyVote = models.DirectionNone
		v.Posted = humanize.Time(v.Date)
		v.Comments = []models.CommentView{}
		index[v.ID] = len(views)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sentiments: %w", err)
	}
	rows.Close()

	if len(views) == 0 {
		return views, nil
	}

	if err := s.fillVotes(ctx, eventID, sessionID, views, index); err != nil {
		return nil, err
	}
	if err := s.fillComments(ctx, eventID, views, index); err != nil {
		return nil, err
	}

	return views, nil
}

func (s *Store) fillVotes(ctx context.Context, eventID int64, sessionID string, views []models.SentimentView, index map[int64]int) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.sentiment_id,
		       COALESCE(SUM(CASE WHEN v.direction = 'up' THEN 1 ELSE -1 END), 0),
		       COALESCE(MAX(CASE WHEN v.session_id = $2 THEN v.direction ELSE '' END), '')
		FROM sentiment_vote v
		JOIN sentiment s ON s.id = v.sentiment_id
		WHERE s.event_id = $1
		GROUP BY v.sentiment_id
	`, eventID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to query sentiment votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sentimentID int64
		var score int
		var mine string
		if err := rows.Scan(&sentimentID, &score, &mine); err != nil {
			return fmt.Errorf("failed to scan sentiment score: %w", err)
		}
		i, ok := index[sentimentID]
		if !ok {
			continue
		}
		views[i].Score = score
		if mine != "" {
			views[i].MyVote = mine
		}
	}
	return rows.Err()
}

func (s *Store) fillComments(ctx context.Context, eventID int64, views []models.SentimentView, index map[int64]int) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.sentiment_id, c.date, c.text
		FROM comment c
		JOIN sentiment s ON s.id = c.sentiment_id
		WHERE s.event_id = $1
		ORDER BY c.date, c.id
	`, eventID)
	if err != nil {
		return fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.CommentView
		if err := rows.Scan(&c.ID, &c.SentimentID, &c.Date, &c.Text); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		c.Posted = humanize.Time(c.Date)
		if i, ok := index[c.SentimentID]; ok {
			views[i].Comments = append(views[i].Comments, c)
		}
	}
	return rows.Err()
}
