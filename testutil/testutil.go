// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/love-wall/auth"
	"github.com/danielhkuo/love-wall/cliparse"
	"github.com/danielhkuo/love-wall/db"
)

// TestDBURLEnv names the variable that points tests at a PostgreSQL database
// instead of a throwaway SQLite file
const TestDBURLEnv = "LOVEWALL_TEST_DATABASE_URL"

// TestSecret signs session cookies in tests
const TestSecret = "test-secret-key"

func testDialect() (dialect, url string) {
	if pgURL := os.Getenv(TestDBURLEnv); pgURL != "" {
		return cliparse.DatabasePostgres, pgURL
	}
	return cliparse.DatabaseSQLite, ""
}

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dialect, dbURL := testDialect()
	if dialect == cliparse.DatabaseSQLite {
		dbURL = "file:" + filepath.Join(t.TempDir(), "love-wall.db")
	}

	conn, err := db.Open(dialect, dbURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Clean up tables before each test
	if err := db.DropSchema(conn); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}
	if err := db.CreateSchema(conn, dialect); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	dialect, dbURL := testDialect()
	return cliparse.Config{
		Port:                  3318,
		DatabaseURL:           dbURL,
		DatabaseType:          dialect,
		SecretKey:             TestSecret,
		ContentSecurityPolicy: "script-src 'self' https://d3js.org",
	}
}

// CreateTestEvent inserts an event and returns its ID
func CreateTestEvent(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO event (name, location_name, latitude, longitude, date, description)
		VALUES ($1, 'Town Square', 51.5, -0.12, '2025-04-01', 'A test event')
		RETURNING id
	`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return id
}

// CreateTestSession inserts a session row and returns its ID
func CreateTestSession(t *testing.T, conn *sql.DB) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`INSERT INTO session (id, created_at) VALUES ($1, $2)`, id, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return id
}

// CreateTestSentiment attaches a sentiment to an event and returns its ID
func CreateTestSentiment(t *testing.T, conn *sql.DB, eventID int64, text string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO sentiment (date, event_id, text) VALUES ($1, $2, $3)
		RETURNING id
	`, time.Now().UTC(), eventID, text).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test sentiment: %v", err)
	}

	return id
}

// CastTestVote records a sentiment vote directly
func CastTestVote(t *testing.T, conn *sql.DB, sentimentID int64, sessionID, direction string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO sentiment_vote (date, sentiment_id, session_id, direction)
		VALUES ($1, $2, $3, $4)
	`, time.Now().UTC(), sentimentID, sessionID, direction)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountRows runs a COUNT query and returns the result
func CountRows(t *testing.T, conn *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

// SessionCookie returns a signed cookie binding the session and token
func SessionCookie(t *testing.T, sessionID, token string) *http.Cookie {
	t.Helper()

	value, err := auth.SignSession(sessionID, token, TestSecret, time.Now())
	if err != nil {
		t.Fatalf("Failed to sign session cookie: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookieName, Value: value}
}

// MakeRequest creates an HTTP test request, form-encoding the body when given
func MakeRequest(method, path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
