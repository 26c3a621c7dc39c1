// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/pollsite/cliparse"
	"github.com/danielhkuo/pollsite/db"
	_ "modernc.org/sqlite"
)

var dbNameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_", "?", "_", "&", "_")

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + dbNameReplacer.Replace(t.Name()) + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// One connection keeps the in-memory database alive for the whole test
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// SetupFileDB creates a SQLite database file in a temp dir, opened with the
// production DSN and pool settings, for tests that need real lock contention.
func SetupFileDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "polls.db")
	dsn := strings.Replace(cliparse.DefaultSQLiteURL, "polls.db", path, 1)

	conn, err := db.Open(cliparse.DatabaseSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open file database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Env:          cliparse.EnvLocal,
		Port:         8090,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  "file::memory:",
	}
}

// CreateTestPoll inserts a poll document directly and returns its id and revision
func CreateTestPoll(t *testing.T, conn *sql.DB, id, title, option1, option2 string, votes1, votes2 int) (string, string) {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"title":   title,
		"option1": option1,
		"option2": option2,
		"votes1":  votes1,
		"votes2":  votes2,
	})
	if err != nil {
		t.Fatalf("Failed to encode test poll: %v", err)
	}

	rev := "1-testrevision"
	_, err = conn.Exec(`
		INSERT INTO document (id, rev, body)
		VALUES ($1, $2, $3)
	`, id, rev, string(body))
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return id, rev
}

// InsertRawDocument stores an arbitrary JSON body under id
func InsertRawDocument(t *testing.T, conn *sql.DB, id, rev, body string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO document (id, rev, body)
		VALUES ($1, $2, $3)
	`, id, rev, body)
	if err != nil {
		t.Fatalf("Failed to insert document: %v", err)
	}
}

// DocumentBody returns the stored JSON body for id decoded into a map
func DocumentBody(t *testing.T, conn *sql.DB, id string) map[string]any {
	t.Helper()

	var body string
	if err := conn.QueryRow("SELECT body FROM document WHERE id = $1", id).Scan(&body); err != nil {
		t.Fatalf("Failed to query document %s: %v", id, err)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("Failed to decode document %s: %v", id, err)
	}
	return out
}

// CountDocuments returns the number of stored documents
func CountDocuments(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM document").Scan(&count); err != nil {
		t.Fatalf("Failed to count documents: %v", err)
	}
	return count
}

// MakeFormRequest creates an HTTP test request with a url-encoded body.
// A nil form sends no body at all.
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	if form == nil {
		return httptest.NewRequest(method, path, nil)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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
