// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/love-wall/ledger"
	"github.com/danielhkuo/love-wall/metrics"
	"github.com/danielhkuo/love-wall/session"
)

type SentimentHandler struct {
	store   *ledger.Store
	metrics *metrics.Metrics
}

func NewSentimentHandler(store *ledger.Store, m *metrics.Metrics) *SentimentHandler {
	return &SentimentHandler{store: store, metrics: m}
}

// PostSentiment handles POST /events/{id}/sentiments/
func (h *SentimentHandler) PostSentiment(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	text, ok := formText(w, r)
	if !ok {
		return
	}

	sentimentID, err := h.store.PostSentiment(r.Context(), eventID, text)
	if err != nil {
		ledgerError(w, err, "post sentiment")
		return
	}
	h.metrics.SentimentPosted()

	slog.Info("sentiment posted", "event_id", eventID, "sentiment_id", sentimentID)
	http.Redirect(w, r, eventPath(eventID), http.StatusSeeOther)
}

// Vote handles GET /sentiments/{id}/votes?how=up|down|none
func (h *SentimentHandler) Vote(w http.ResponseWriter, r *http.Request) {
	if !getOnly(w, r) {
		return
	}
	sentimentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	id, _ := session.FromContext(r.Context())

	result, err := h.store.SetVote(r.Context(), sentimentID, id.SessionID, r.URL.Query().Get("how"))
	if err != nil {
		ledgerError(w, err, "set vote")
		return
	}
	h.metrics.Vote(result.Transition)

	slog.Info("vote changed",
		"sentiment_id", sentimentID,
		"transition", result.Transition,
		"direction", result.Direction,
	)
	http.Redirect(w, r, eventPath(result.EventID), http.StatusSeeOther)
}

// Comment handles POST /sentiments/{id}/comments
func (h *SentimentHandler) Comment(w http.ResponseWriter, r *http.Request) {
	sentimentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	text, ok := formText(w, r)
	if !ok {
		return
	}

	commentID, eventID, err := h.store.AddComment(r.Context(), sentimentID, text)
	if err != nil {
		ledgerError(w, err, "add comment")
		return
	}
	h.metrics.CommentPosted()

	slog.Info("comment added", "sentiment_id", sentimentID, "comment_id", commentID)
	http.Redirect(w, r, eventPath(eventID), http.StatusSeeOther)
}
