// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSession = errors.New("invalid session cookie")
	ErrEmptySecret    = errors.New("session secret is empty")
)

// SessionCookieName is the cookie carrying the signed session
const SessionCookieName = "lovewall_session"

// CSRFTokenBytes is the amount of entropy in an anti-forgery token
const CSRFTokenBytes = 30

// SessionTTL bounds how long a session cookie stays valid
const SessionTTL = 365 * 24 * time.Hour

// GenerateCSRFToken creates a random anti-forgery token
// 30 bytes encode to 40 URL-safe base64 characters with no padding
func GenerateCSRFToken() (string, error) {
	b := make([]byte, CSRFTokenBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// TokensEqual compares a submitted token against the session-bound one in
// constant time. Empty tokens never match.
func TokensEqual(submitted, expected string) bool {
	if submitted == "" || expected == "" {
		return false
	}
	return hmac.Equal([]byte(submitted), []byte(expected))
}

// SessionClaims is the payload of the signed session cookie
type SessionClaims struct {
	SessionID string `json:"sid"`
	CSRFToken string `json:"csrf,omitempty"`
	jwt.RegisteredClaims
}

// SignSession encodes the claims as an HS256 JWT
func SignSession(sessionID, csrfToken, secret string, now time.Time) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	claims := SessionClaims{
		SessionID: sessionID,
		CSRFToken: csrfToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// ParseSession verifies the cookie signature and returns its claims
func ParseSession(cookie, secret string) (SessionClaims, error) {
	if secret == "" {
		return SessionClaims{}, ErrEmptySecret
	}

	var claims SessionClaims
	token, err := jwt.ParseWithClaims(cookie, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return SessionClaims{}, ErrInvalidSession
	}

	if claims.SessionID == "" {
		return SessionClaims{}, ErrInvalidSession
	}

	return claims, nil
}
