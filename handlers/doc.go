// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Love Wall API.

# Handler Types

Each handler is a struct over the shared ledger store:

  - EventHandler: Map markers, event detail and hearts
  - SentimentHandler: Sentiments, sentiment votes and comments
  - SessionHandler: Hands the session's CSRF token to the page script
  - AdminHandler: Bulk event editing

Handlers are created via constructor functions:

	store := ledger.New(db)
	eventHandler := handlers.NewEventHandler(store, m)

Session and CSRF checks happen in middleware; handlers read the caller's
identity with session.FromContext.

# Responses

Reads return JSON. Hearts return 204. Sentiment posts, votes and comments
redirect with 303 to the parent event so a plain form or link works without
script.

Ledger errors map onto status codes:

	ledger.ErrNotFound       → 404 "It looks like you're lost"
	ledger.ErrInvalidRequest → 400
	ledger.ErrAlreadyVoted   → 409
	anything else            → 500 "Database error"

Non-numeric ids in the path are treated as unknown ids.

# Admin Form

POST /admin takes one field set per event, suffixed with the event id:

	event_name3, location_name3, latitude3, longitude3, date3, description3

Existing events without a complete field set are deleted along with their
hearts, sentiments, votes and comments. `new` lists the suffixes of events to
create, comma separated. Unparseable coordinates or dates reject the whole
form with 400 and nothing is applied.
*/
package handlers
