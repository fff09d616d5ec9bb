// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/love-wall/ledger"
	"github.com/danielhkuo/love-wall/metrics"
	"github.com/danielhkuo/love-wall/middleware"
	"github.com/danielhkuo/love-wall/models"
	"github.com/danielhkuo/love-wall/session"
)

type EventHandler struct {
	store   *ledger.Store
	metrics *metrics.Metrics
}

func NewEventHandler(store *ledger.Store, m *metrics.Metrics) *EventHandler {
	return &EventHandler{store: store, metrics: m}
}

// ListEvents handles GET /events. Markers are labelled with the place, not the event title.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		ledgerError(w, err, "list events")
		return
	}

	markers := make([]models.EventMarker, 0, len(events))
	for _, e := range events {
		markers = append(markers, models.EventMarker{
			ID:     e.ID,
			Coords: [2]float64{e.Longitude, e.Latitude},
			Name:   e.LocationName,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventsResponse{Events: markers})
}

// GetEvent handles GET /events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	id, _ := session.FromContext(r.Context())
	ctx := r.Context()

	event, err := h.store.GetEvent(ctx, eventID)
	if err != nil {
		ledgerError(w, err, "get event")
		return
	}

	score, err := h.store.EventScore(ctx, eventID)
	if err != nil {
		ledgerError(w, err, "event score")
		return
	}

	hearted, err := h.store.HasHearted(ctx, eventID, id.SessionID)
	if err != nil {
		ledgerError(w, err, "has hearted")
		return
	}

	sentiments, err := h.store.ListSentiments(ctx, eventID, id.SessionID)
	if err != nil {
		ledgerError(w, err, "list sentiments")
		return
	}
	if sentiments == nil {
		sentiments = []models.SentimentView{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventDetailResponse{
		Event:      event,
		Score:      score,
		Hearted:    hearted,
		Sentiments: sentiments,
	})
}

// Heart handles GET /events/{id}/heart
func (h *EventHandler) Heart(w http.ResponseWriter, r *http.Request) {
	if !getOnly(w, r) {
		return
	}
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	id, _ := session.FromContext(r.Context())

	err := h.store.CastHeart(r.Context(), eventID, id.SessionID)
	switch {
	case err == nil:
		h.metrics.Heart("cast")
	case errors.Is(err, ledger.ErrAlreadyVoted):
		h.metrics.Heart("conflict")
	case errors.Is(err, ledger.ErrNotFound):
		h.metrics.Heart("not_found")
	default:
		h.metrics.Heart("error")
	}
	if err != nil {
		ledgerError(w, err, "cast heart")
		return
	}

	slog.Info("heart cast", "event_id", eventID)
	w.WriteHeader(http.StatusNoContent)
}
