// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/love-wall/cliparse"
)

// Open connects to the configured backend and verifies the connection.
// SQLite connections get foreign keys and a busy timeout, and are limited to
// a single open connection so writers queue instead of failing with SQLITE_BUSY.
func Open(dialect, url string) (*sql.DB, error) {
	driver := "postgres"
	if dialect == cliparse.DatabaseSQLite {
		driver = "sqlite"
		url = withSQLitePragmas(url)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}
	if dialect == cliparse.DatabaseSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dialect, err)
	}

	return conn, nil
}

func withSQLitePragmas(url string) string {
	if strings.Contains(url, "_pragma=") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	ddl := postgresSchema
	if dialect == cliparse.DatabaseSQLite {
		ddl = sqliteSchema
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes every table, dependents first.
func DropSchema(db *sql.DB) error {
	_, err := db.Exec(`
		DROP TABLE IF EXISTS comment;
		DROP TABLE IF EXISTS sentiment_vote;
		DROP TABLE IF EXISTS sentiment;
		DROP TABLE IF EXISTS heart;
		DROP TABLE IF EXISTS session;
		DROP TABLE IF EXISTS event;
	`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

const postgresSchema = `
-- Events
CREATE TABLE IF NOT EXISTS event (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    location_name TEXT NOT NULL DEFAULT '',
    latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
    longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
    date TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT ''
);

-- Anonymous browser sessions
CREATE TABLE IF NOT EXISTS session (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Hearts (one per session per event)
CREATE TABLE IF NOT EXISTS heart (
    id BIGSERIAL PRIMARY KEY,
    date TIMESTAMP NOT NULL DEFAULT NOW(),
    event_id BIGINT NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    session_id TEXT NOT NULL REFERENCES session(id) ON DELETE CASCADE,
    CONSTRAINT uq_event_session UNIQUE (event_id, session_id)
);

CREATE INDEX IF NOT EXISTS idx_heart_event_id ON heart(event_id);

-- Sentiments
CREATE TABLE IF NOT EXISTS sentiment (
    id BIGSERIAL PRIMARY KEY,
    date TIMESTAMP NOT NULL DEFAULT NOW(),
    event_id BIGINT NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    text TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sentiment_event_id ON sentiment(event_id);

-- Sentiment votes (one per session per sentiment)
CREATE TABLE IF NOT EXISTS sentiment_vote (
    id BIGSERIAL PRIMARY KEY,
    date TIMESTAMP NOT NULL DEFAULT NOW(),
    sentiment_id BIGINT NOT NULL REFERENCES sentiment(id) ON DELETE CASCADE,
    session_id TEXT NOT NULL REFERENCES session(id) ON DELETE CASCADE,
    direction TEXT NOT NULL CHECK (direction IN ('up', 'down')),
    CONSTRAINT uq_sentiment_session UNIQUE (sentiment_id, session_id)
);

CREATE INDEX IF NOT EXISTS idx_sentiment_vote_sentiment_id ON sentiment_vote(sentiment_id);

-- Comments
CREATE TABLE IF NOT EXISTS comment (
    id BIGSERIAL PRIMARY KEY,
    date TIMESTAMP NOT NULL DEFAULT NOW(),
    sentiment_id BIGINT NOT NULL REFERENCES sentiment(id) ON DELETE CASCADE,
    text TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comment_sentiment_id ON comment(sentiment_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS event (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL DEFAULT '',
    location_name TEXT NOT NULL DEFAULT '',
    latitude REAL NOT NULL DEFAULT 0,
    longitude REAL NOT NULL DEFAULT 0,
    date TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS session (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS heart (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TIMESTAMP NOT NULL,
    event_id INTEGER NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    session_id TEXT NOT NULL REFERENCES session(id) ON DELETE CASCADE,
    CONSTRAINT uq_event_session UNIQUE (event_id, session_id)
);

CREATE INDEX IF NOT EXISTS idx_heart_event_id ON heart(event_id);

CREATE TABLE IF NOT EXISTS sentiment (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TIMESTAMP NOT NULL,
    event_id INTEGER NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    text TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sentiment_event_id ON sentiment(event_id);

CREATE TABLE IF NOT EXISTS sentiment_vote (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TIMESTAMP NOT NULL,
    sentiment_id INTEGER NOT NULL REFERENCES sentiment(id) ON DELETE CASCADE,
    session_id TEXT NOT NULL REFERENCES session(id) ON DELETE CASCADE,
    direction TEXT NOT NULL CHECK (direction IN ('up', 'down')),
    CONSTRAINT uq_sentiment_session UNIQUE (sentiment_id, session_id)
);

CREATE INDEX IF NOT EXISTS idx_sentiment_vote_sentiment_id ON sentiment_vote(sentiment_id);

CREATE TABLE IF NOT EXISTS comment (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TIMESTAMP NOT NULL,
    sentiment_id INTEGER NOT NULL REFERENCES sentiment(id) ON DELETE CASCADE,
    text TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comment_sentiment_id ON comment(sentiment_id);
`
