// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger records hearts, sentiments, sentiment votes and comments, and
owns the event table.

	store := ledger.New(db)
	err := store.CastHeart(ctx, eventID, sessionID)

# Transactions

Every mutation runs in its own transaction. Uniqueness lives in the schema:

  - heart: one row per (event_id, session_id)
  - sentiment_vote: one row per (sentiment_id, session_id)

A duplicate insert surfaces as ErrAlreadyVoted on both PostgreSQL (code 23505)
and SQLite (SQLITE_CONSTRAINT_UNIQUE). There is no read-then-write check, so
concurrent duplicates always leave exactly one row.

# Votes

SetVote moves a session's vote on a sentiment between none, up and down:

	current  up        down      none
	none     create    create    -
	up       -         flip      delete
	down     flip      -         delete

A flip updates the existing row in place. If the row was removed by a
concurrent request after it was read, the flip or retraction returns
ErrAlreadyVoted so the caller re-reads state. The result reports the transition
and the parent event id.

# Errors

	ErrNotFound       - event or sentiment does not exist
	ErrInvalidRequest - vote direction is not up, down or none
	ErrAlreadyVoted   - a uniqueness constraint rejected the write

Errors are wrapped with context; match them with errors.Is.

# Scores

Event scores count hearts; sentiment scores are ups minus downs. Both are
computed on every read and never cached.
*/
package ledger
