// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Love Wall API server.

Love Wall is a map of local events. Anonymous visitors heart events, post
short sentiments about them, vote sentiments up or down and comment on them.
Every visitor is identified by a signed session cookie; every mutation needs
the CSRF token bound to that session.

# Starting the Server

The server requires environment variables or CLI flags for configuration. A
.env file in the working directory is loaded first if present:

	DATABASE_URL=lovewall.db SECRET_KEY=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - SECRET_KEY (-secret): Key that signs session cookies

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CONTENT_SECURITY_POLICY (-csp): Sent on every response when set
  - SEED_FILE (-seed): YAML events loaded when the event table is empty

# Architecture

  - handlers: HTTP request handlers (events, sentiments, session, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, sessions, CSRF, CSP, metrics, JSON helpers
  - ledger: Hearts, sentiments, votes and comments, one transaction each
  - session: Anonymous session and CSRF token binding
  - metrics: Prometheus collectors
  - models: Request/response and domain types
  - auth: Token generation and signed session cookies
  - db: Connection, schema creation and seed loading
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
