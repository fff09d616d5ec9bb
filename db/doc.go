// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation and event seed files.

# Connecting

Open selects the driver from the configured dialect:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

PostgreSQL uses github.com/lib/pq. SQLite uses modernc.org/sqlite with foreign
keys enabled, a busy timeout, and a single open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - event: Locations shown on the map
  - session: Anonymous browser sessions
  - heart: One like per session per event
  - sentiment: Free text posted about an event
  - sentiment_vote: One up/down vote per session per sentiment
  - comment: Append-only text on a sentiment

# Relationships

	event 1──* heart *──1 session
	event 1──* sentiment
	sentiment 1──* sentiment_vote *──1 session
	sentiment 1──* comment

All foreign keys use ON DELETE CASCADE.

# Uniqueness

Vote uniqueness lives in the schema, not in application checks:

  - heart (event_id, session_id) as uq_event_session
  - sentiment_vote (sentiment_id, session_id) as uq_sentiment_session

# Seeding

LoadSeed parses a YAML file of events for loading into an empty database.
*/
package db
