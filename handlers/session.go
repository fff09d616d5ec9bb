// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/love-wall/middleware"
	"github.com/danielhkuo/love-wall/models"
	"github.com/danielhkuo/love-wall/session"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// GetSession handles GET /session and hands the CSRF token to the page script
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := session.FromContext(r.Context())
	if !ok {
		slog.Error("session missing from request context", "path", r.URL.Path)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{Token: id.CSRFToken})
}
