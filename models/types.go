package models

import "time"

// Vote direction constants
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionNone = "none"
)

// Vote transition constants, reported by the sentiment vote ledger
const (
	TransitionCreated   = "created"
	TransitionFlipped   = "flipped"
	TransitionDeleted   = "deleted"
	TransitionUnchanged = "unchanged"
)

// EventDateLayout is the calendar date format used for Event.Date
const EventDateLayout = "2006-01-02"

// ParseVoteDirection reports whether how is a direction the vote ledger accepts.
func ParseVoteDirection(how string) (string, bool) {
	switch how {
	case DirectionUp, DirectionDown, DirectionNone:
		return how, true
	}
	return "", false
}

// Response types

type SessionResponse struct {
	Token string `json:"token"`
}

// EventMarker is the compact map pin. Coords are [longitude, latitude]; Name is
// the location name.
type EventMarker struct {
	ID     int64      `json:"id"`
	Coords [2]float64 `json:"coords"`
	Name   string     `json:"name"`
}

type EventsResponse struct {
	Events []EventMarker `json:"events"`
}

type EventDetailResponse struct {
	Event      Event           `json:"event"`
	Score      int             `json:"score"`
	Hearted    bool            `json:"hearted"`
	Sentiments []SentimentView `json:"sentiments"`
}

type AdminEventsResponse struct {
	Events []Event `json:"events"`
}

// Domain types

type Event struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
}

// EventInput carries the editable fields of an event, from the admin form or a seed file.
type EventInput struct {
	Name         string  `json:"name" yaml:"name"`
	LocationName string  `json:"location_name" yaml:"location_name"`
	Latitude     float64 `json:"latitude" yaml:"latitude"`
	Longitude    float64 `json:"longitude" yaml:"longitude"`
	Date         string  `json:"date" yaml:"date"`
	Description  string  `json:"description" yaml:"description"`
}

type Heart struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	SessionID string    `json:"-"` // Never expose in JSON
	Date      time.Time `json:"date"`
}

type Sentiment struct {
	ID      int64     `json:"id"`
	EventID int64     `json:"event_id"`
	Date    time.Time `json:"date"`
	Text    string    `json:"text"`
}

type SentimentVote struct {
	ID          int64     `json:"id"`
	SentimentID int64     `json:"sentiment_id"`
	SessionID   string    `json:"-"` // Never expose in JSON
	Direction   string    `json:"direction"`
	Date        time.Time `json:"date"`
}

type Comment struct {
	ID          int64     `json:"id"`
	SentimentID int64     `json:"sentiment_id"`
	Date        time.Time `json:"date"`
	Text        string    `json:"text"`
}

// SentimentView is a sentiment as seen by one session.
type SentimentView struct {
	Sentiment
	Score    int           `json:"score"`
	MyVote   string        `json:"my_vote"`
	Posted   string        `json:"posted"`
	Comments []CommentView `json:"comments"`
}

type CommentView struct {
	Comment
	Posted string `json:"posted"`
}

// VoteResult describes what SetVote did.
type VoteResult struct {
	EventID    int64
	Transition string
	Direction  string
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
