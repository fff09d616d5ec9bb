// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Response Types

Types for JSON responses:

  - SessionResponse: token (anti-forgery token for mutating calls)
  - EventsResponse: events (map markers with coords as [lon, lat])
  - EventDetailResponse: event, score, hearted, sentiments
  - AdminEventsResponse: events (full records)
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Event: a location on the wall
  - EventInput: editable event fields (admin form, seed file)
  - Heart: one like per session per event
  - Sentiment: free text attached to an event
  - SentimentVote: one up/down vote per session per sentiment
  - Comment: append-only text attached to a sentiment
  - SentimentView, CommentView: per-session read models
  - VoteResult: outcome of a vote change

# Constants

Vote directions:

	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionNone = "none"

Vote transitions:

	TransitionCreated   = "created"
	TransitionFlipped   = "flipped"
	TransitionDeleted   = "deleted"
	TransitionUnchanged = "unchanged"
*/
package models
