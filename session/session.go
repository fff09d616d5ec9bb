// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/love-wall/auth"
)

// Identity is the anonymous identity every core operation is scoped to.
type Identity struct {
	SessionID string
	CSRFToken string
}

// Store persists session rows.
type Store interface {
	CreateSession(ctx context.Context) (string, error)
	SessionExists(ctx context.Context, sessionID string) (bool, error)
	RestoreSession(ctx context.Context, sessionID string) error
}

type Manager struct {
	store  Store
	secret string
	secure bool
	now    func() time.Time
}

// NewManager builds a Manager. secure marks the cookie Secure for HTTPS deployments.
func NewManager(store Store, secret string, secure bool) *Manager {
	return &Manager{store: store, secret: secret, secure: secure, now: time.Now}
}

// Ensure returns the request's identity, creating a session row and an
// anti-forgery token on first contact. A token already bound to the session
// is never replaced; the cookie is rewritten only when something was created.
func (m *Manager) Ensure(w http.ResponseWriter, r *http.Request) (Identity, error) {
	ctx := r.Context()

	var id Identity
	if c, err := r.Cookie(auth.SessionCookieName); err == nil {
		claims, err := auth.ParseSession(c.Value, m.secret)
		if err == nil {
			id = Identity{SessionID: claims.SessionID, CSRFToken: claims.CSRFToken}
		} else if !errors.Is(err, auth.ErrInvalidSession) {
			return Identity{}, err
		}
	}

	dirty := false
	if id.SessionID == "" {
		sessionID, err := m.store.CreateSession(ctx)
		if err != nil {
			return Identity{}, err
		}
		id = Identity{SessionID: sessionID}
		dirty = true
		slog.Info("session created", "session_id", sessionID)
	} else {
		exists, err := m.store.SessionExists(ctx, id.SessionID)
		if err != nil {
			return Identity{}, err
		}
		if !exists {
			if err := m.store.RestoreSession(ctx, id.SessionID); err != nil {
				return Identity{}, err
			}
			slog.Warn("session restored from cookie", "session_id", id.SessionID)
		}
	}

	if id.CSRFToken == "" {
		token, err := auth.GenerateCSRFToken()
		if err != nil {
			return Identity{}, err
		}
		id.CSRFToken = token
		dirty = true
	}

	if dirty {
		if err := m.writeCookie(w, id); err != nil {
			return Identity{}, err
		}
	}

	return id, nil
}

func (m *Manager) writeCookie(w http.ResponseWriter, id Identity) error {
	value, err := auth.SignSession(id.SessionID, id.CSRFToken, m.secret, m.now())
	if err != nil {
		return fmt.Errorf("failed to write session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(auth.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying the identity.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored by NewContext.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok && id.SessionID != ""
}
