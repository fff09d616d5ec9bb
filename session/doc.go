// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session binds each browser to an anonymous session and its
anti-forgery token.

	mgr := session.NewManager(store, cfg.SecretKey, false)
	id, err := mgr.Ensure(w, r)

On first contact Ensure creates a session row, generates a CSRF token and sets
the signed cookie. Later requests reuse both; the token is never regenerated
once bound, so forms already holding it stay valid.

Middleware stores the identity on the request context:

	ctx := session.NewContext(r.Context(), id)
	id, ok := session.FromContext(ctx)
*/
package session
