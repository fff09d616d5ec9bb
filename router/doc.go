// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Love Wall API.

# Route Registration

NewRouter builds the handler tree with all endpoints, wrapped in request
metrics and the Content-Security-Policy header:

	handler := router.NewRouter(db, cfg, metrics.New())

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Browsing (creates the session cookie on first contact):

	GET /session     - CSRF token for the page script
	GET /events      - Map markers
	GET /events/{id} - Event, heart count, sentiments and comments

Mutations (session cookie plus ?token= or form token):

	GET  /events/{id}/heart              - Heart an event (204, 409 if repeated)
	POST /events/{id}/sentiments/        - Post a sentiment (303 to the event)
	GET  /sentiments/{id}/votes?how=     - up, down or none (303 to the event)
	POST /sentiments/{id}/comments       - Comment on a sentiment (303 to the event)

Admin:

	GET  /admin - All events
	POST /admin - Bulk edit, delete and create

Unknown paths and non-numeric ids answer 404 "It looks like you're lost".
*/
package router
