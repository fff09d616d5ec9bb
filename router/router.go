// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/love-wall/cliparse"
	"github.com/danielhkuo/love-wall/handlers"
	"github.com/danielhkuo/love-wall/ledger"
	"github.com/danielhkuo/love-wall/metrics"
	"github.com/danielhkuo/love-wall/middleware"
	"github.com/danielhkuo/love-wall/session"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	store := ledger.New(db)
	sessions := session.NewManager(store, cfg.SecretKey, false)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(store, m)
	sentimentHandler := handlers.NewSentimentHandler(store, m)
	sessionHandler := handlers.NewSessionHandler()
	adminHandler := handlers.NewAdminHandler(store)

	// Every page a browser visits gets a session
	withSession := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithSession(sessions, h))
	}
	// Mutations also need the session's CSRF token
	guarded := func(h http.HandlerFunc) http.HandlerFunc {
		return withSession(middleware.LimitBody(handlers.MaxFormBytes, middleware.RequireCSRF(h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Session bootstrap for the page script
	mux.HandleFunc("GET /session", withSession(sessionHandler.GetSession))

	// Events and hearts
	mux.HandleFunc("GET /events", withSession(eventHandler.ListEvents))
	mux.HandleFunc("GET /events/{id}", withSession(eventHandler.GetEvent))
	mux.HandleFunc("GET /events/{id}/heart", guarded(eventHandler.Heart))

	// Sentiments, votes and comments
	mux.HandleFunc("POST /events/{id}/sentiments/", guarded(sentimentHandler.PostSentiment))
	mux.HandleFunc("GET /sentiments/{id}/votes", guarded(sentimentHandler.Vote))
	mux.HandleFunc("POST /sentiments/{id}/comments", guarded(sentimentHandler.Comment))

	// Admin
	mux.HandleFunc("GET /admin", middleware.WithLogging(adminHandler.GetEvents))
	mux.HandleFunc("POST /admin", middleware.WithLogging(middleware.LimitBody(handlers.MaxFormBytes, adminHandler.SaveEvents)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("love-wall API v1"))
	})

	return middleware.WithMetrics(m, middleware.WithCSP(cfg.ContentSecurityPolicy, withLostPage(mux)))
}

// routeMethods are the methods tried when deciding between 404 and 405
var routeMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
}

// withLostPage answers paths no route knows with the JSON 404. A path that is
// routed for some other method still reaches the mux, which answers 405.
func withLostPage(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := mux.Handler(r); pattern == "" && !routedForAnyMethod(mux, r) {
			middleware.ErrorResponse(w, http.StatusNotFound, middleware.NotFoundMessage)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func routedForAnyMethod(mux *http.ServeMux, r *http.Request) bool {
	for _, method := range routeMethods {
		alt := r.Clone(r.Context())
		alt.Method = method
		if _, pattern := mux.Handler(alt); pattern != "" {
			return true
		}
	}
	return false
}
