// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/love-wall/models"
)

// ListEvents returns every event ordered by id.
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, location_name, latitude, longitude, date, description
		FROM event
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var ev models.Event
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.LocationName, &ev.Latitude,
			&ev.Longitude, &ev.Date, &ev.Description); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}

// GetEvent returns one event or ErrNotFound.
func (s *Store) GetEvent(ctx context.Context, eventID int64) (models.Event, error) {
	var ev models.Event
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, location_name, latitude, longitude, date, description
		FROM event
		WHERE id = $1
	`, eventID).Scan(&ev.ID, &ev.Name, &ev.LocationName, &ev.Latitude,
		&ev.Longitude, &ev.Date, &ev.Description)

	if err == sql.ErrNoRows {
		return models.Event{}, fmt.Errorf("event %d: %w", eventID, ErrNotFound)
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to query event: %w", err)
	}

	return ev, nil
}

// EventScore counts the hearts cast for an event.
func (s *Store) EventScore(ctx context.Context, eventID int64) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM heart WHERE event_id = $1
	`, eventID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("failed to count hearts: %w", err)
	}
	return score, nil
}

// HasHearted reports whether the session has a heart on the event.
func (s *Store) HasHearted(ctx context.Context, eventID int64, sessionID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM heart WHERE event_id = $1 AND session_id = $2
	`, eventID, sessionID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query heart: %w", err)
	}
	return count != 0, nil
}

// AddEvents inserts new events and returns their ids in input order.
func (s *Store) AddEvents(ctx context.Context, inputs []models.EventInput) ([]int64, error) {
	var ids []int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		ids, err = insertEvents(ctx, tx, inputs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// SaveEvents applies an admin bulk edit in one transaction. Existing events
// with an entry in edits are updated, existing events without one are deleted
// together with their hearts, sentiments, votes and comments, and creates are
// inserted. Edits for unknown ids are ignored.
func (s *Store) SaveEvents(ctx context.Context, edits map[int64]models.EventInput, creates []models.EventInput) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		ids, err := eventIDs(ctx, tx)
		if err != nil {
			return err
		}

		for _, id := range ids {
			in, ok := edits[id]
			if !ok {
				if err := deleteEventTx(ctx, tx, id); err != nil {
					return err
				}
				continue
			}

			_, err := tx.ExecContext(ctx, `
				UPDATE event
				SET name = $1, location_name = $2, latitude = $3, longitude = $4,
				    date = $5, description = $6
				WHERE id = $7
			`, in.Name, in.LocationName, in.Latitude, in.Longitude, in.Date, in.Description, id)
			if err != nil {
				return fmt.Errorf("failed to update event %d: %w", id, err)
			}
		}

		_, err = insertEvents(ctx, tx, creates)
		return err
	})
}

// DeleteEvent removes an event and everything attached to it.
func (s *Store) DeleteEvent(ctx context.Context, eventID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := eventExists(ctx, tx, eventID); err != nil {
			return err
		}
		return deleteEventTx(ctx, tx, eventID)
	})
}

func eventIDs(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id FROM event ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan event id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertEvents(ctx context.Context, tx *sql.Tx, inputs []models.EventInput) ([]int64, error) {
	ids := make([]int64, 0, len(inputs))
	for _, in := range inputs {
		var id int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO event (name, location_name, latitude, longitude, date, description)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, in.Name, in.LocationName, in.Latitude, in.Longitude, in.Date, in.Description).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to insert event: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// deleteEventTx deletes dependents explicitly so the result does not depend on
// the backend enforcing ON DELETE CASCADE.
func deleteEventTx(ctx context.Context, tx *sql.Tx, eventID int64) error {
	stmts := []string{
		`DELETE FROM comment WHERE sentiment_id IN (SELECT id FROM sentiment WHERE event_id = $1)`,
		`DELETE FROM sentiment_vote WHERE sentiment_id IN (SELECT id FROM sentiment WHERE event_id = $1)`,
		`DELETE FROM sentiment WHERE event_id = $1`,
		`DELETE FROM heart WHERE event_id = $1`,
		`DELETE FROM event WHERE id = $1`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt, eventID); err != nil {
			return fmt.Errorf("failed to delete event %d: %w", eventID, err)
		}
	}
	return nil
}
