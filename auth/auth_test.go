// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func TestGenerateCSRFToken(t *testing.T) {
	token, err := GenerateCSRFToken()
	if err != nil {
		t.Fatalf("GenerateCSRFToken() error = %v", err)
	}

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("token is not URL-safe base64: %v", err)
	}
	if len(raw) != CSRFTokenBytes {
		t.Errorf("token decodes to %d bytes, want %d", len(raw), CSRFTokenBytes)
	}
	if strings.ContainsAny(token, "+/") {
		t.Errorf("token contains non URL-safe characters: %s", token)
	}

	// Test randomness - two tokens should be different
	other, _ := GenerateCSRFToken()
	if token == other {
		t.Error("GenerateCSRFToken() produced duplicate tokens (extremely unlikely)")
	}
}

func TestTokensEqual(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		expected  string
		want      bool
	}{
		{"match", "abc123", "abc123", true},
		{"mismatch", "abc123", "abc124", false},
		{"different length", "abc", "abc123", false},
		{"empty submitted", "", "abc123", false},
		{"empty expected", "abc123", "", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokensEqual(tt.submitted, tt.expected); got != tt.want {
				t.Errorf("TokensEqual(%q, %q) = %v, want %v", tt.submitted, tt.expected, got, tt.want)
			}
		})
	}
}

func TestSignAndParseSession(t *testing.T) {
	now := time.Now()
	cookie, err := SignSession("session-1", "csrf-1", "secret", now)
	if err != nil {
		t.Fatalf("SignSession() error = %v", err)
	}

	claims, err := ParseSession(cookie, "secret")
	if err != nil {
		t.Fatalf("ParseSession() error = %v", err)
	}
	if claims.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want session-1", claims.SessionID)
	}
	if claims.CSRFToken != "csrf-1" {
		t.Errorf("CSRFToken = %q, want csrf-1", claims.CSRFToken)
	}
}

func TestParseSessionRejects(t *testing.T) {
	now := time.Now()
	valid, _ := SignSession("session-1", "csrf-1", "secret", now)
	expired, _ := SignSession("session-1", "csrf-1", "secret", now.Add(-2*SessionTTL))
	noSession, _ := SignSession("", "csrf-1", "secret", now)

	tests := []struct {
		name   string
		cookie string
		secret string
	}{
		{"wrong secret", valid, "other-secret"},
		{"tampered", valid[:len(valid)-2] + "xx", "secret"},
		{"garbage", "not-a-jwt", "secret"},
		{"expired", expired, "secret"},
		{"missing session id", noSession, "secret"},
		{"empty secret", valid, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSession(tt.cookie, tt.secret); err == nil {
				t.Error("expected ParseSession() to fail")
			}
		})
	}
}

func TestSignSessionEmptySecret(t *testing.T) {
	if _, err := SignSession("s", "c", "", time.Now()); err != ErrEmptySecret {
		t.Errorf("expected ErrEmptySecret, got %v", err)
	}
}
