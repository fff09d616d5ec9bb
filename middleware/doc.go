// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms).

# Sessions and CSRF

WithSession ensures every request carries a session cookie and a bound CSRF
token, then stores the identity on the request context. RequireCSRF guards
mutating routes:

	mux.HandleFunc("GET /events/{id}/heart",
		middleware.WithLogging(middleware.WithSession(mgr, middleware.RequireCSRF(h.Heart))))

The token is read from the `token` query parameter first, then from the form
body. A mismatch is answered with 400 "Missing CSRF token".

LimitBody caps the request body before anything parses it.

# Server-wide Wrappers

	handler := middleware.WithMetrics(m, middleware.WithCSP(cfg.ContentSecurityPolicy, mux))

WithMetrics labels each request with the matched route pattern. WithCSP is a
no-op when the policy is empty.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
