// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides anti-forgery tokens and the signed session cookie.

# CSRF Tokens

Tokens are random 30-byte (240-bit) secrets:

	token, err := auth.GenerateCSRFToken()

Tokens are URL-safe base64 encoded and echoed back by clients as the `token`
query or form parameter on every mutating request. Compare them with:

	ok := auth.TokensEqual(submitted, expected)

The comparison is constant-time and never matches an empty token.

# Session Cookie

The session cookie is an HS256 JWT carrying the session id and CSRF token:

	cookie, err := auth.SignSession(sessionID, csrfToken, secret, time.Now())
	claims, err := auth.ParseSession(cookie, secret)

Any signature, algorithm or expiry failure returns ErrInvalidSession.
*/
package auth
