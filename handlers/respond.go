// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/love-wall/ledger"
	"github.com/danielhkuo/love-wall/middleware"
)

// MaxFormBytes caps sentiment, comment and admin form bodies
const MaxFormBytes = 64 << 10

// pathID parses the {name} path segment. Anything that is not a positive
// integer is answered with 404, like an unknown id.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, middleware.NotFoundMessage)
		return 0, false
	}
	return id, true
}

// formText returns the `text` form field. A missing field is a 400; an empty
// one is accepted.
func formText(w http.ResponseWriter, r *http.Request) (string, bool) {
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "request body too large")
			return "", false
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return "", false
	}

	values, ok := r.PostForm["text"]
	if !ok || len(values) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return "", false
	}
	return values[0], true
}

// getOnly rejects anything but GET on mutating links. The mux also routes
// HEAD to GET patterns, and a HEAD prefetch must not cast a vote.
func getOnly(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Use GET")
		return false
	}
	return true
}

// ledgerError maps a ledger failure onto the HTTP error body
func ledgerError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, middleware.NotFoundMessage)
	case errors.Is(err, ledger.ErrInvalidRequest):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted")
	default:
		slog.Error("ledger operation failed", "op", op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

func eventPath(eventID int64) string {
	return fmt.Sprintf("/events/%d", eventID)
}
