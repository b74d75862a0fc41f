// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dialectmap/okresy/cliparse"
	"github.com/dialectmap/okresy/db"
	"github.com/dialectmap/okresy/models"
)

// TestAdminSalt is the admin salt used by GetTestConfig
const TestAdminSalt = "test-admin-salt"

// SampleCSV has three districts: Praha (dýl wins), Brno-město (tie) and
// Kladno (později wins). Beroun exists only in SampleGeoJSON.
const SampleCSV = `word,region
dýl,Praha
dýl,Praha
později,Praha
pozdeji,Brno-město
dyl,Brno-město
později,Kladno
jindy,Kladno
,Kladno
`

const SampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "PRAHA"}, "geometry": {"type": "Polygon", "coordinates": [[[14.2, 50.0], [14.7, 50.0], [14.7, 50.2], [14.2, 50.0]]]}},
    {"type": "Feature", "properties": {"NAZEV": "Brno-město"}, "geometry": {"type": "Polygon", "coordinates": [[[16.5, 49.1], [16.7, 49.1], [16.7, 49.3], [16.5, 49.1]]]}},
    {"type": "Feature", "properties": {"nazev": "Kladno"}, "geometry": {"type": "Polygon", "coordinates": [[[14.0, 50.1], [14.2, 50.1], [14.2, 50.2], [14.0, 50.1]]]}},
    {"type": "Feature", "properties": {"okres": "Beroun"}, "geometry": {"type": "Polygon", "coordinates": [[[13.9, 49.9], [14.1, 49.9], [14.1, 50.0], [13.9, 49.9]]]}}
  ]
}`

const SampleVotesJSON = `{
  "Praha": {"total": 3, "counts": {"dýl": 2, "později": 1}, "percentages": {"dýl": 66.67, "později": 33.33}, "dominant": "dýl", "dominantShare": 66.67},
  "Brno-město": {"total": 2, "counts": {"dýl": 1, "později": 1}, "percentages": {"dýl": 50, "později": 50}, "dominant": "později", "dominantShare": 50},
  "Kladno": {"total": 1, "counts": {"později": 1}, "percentages": {"později": 100}, "dominant": "později", "dominantShare": 100}
}`

// WriteFile writes content to name inside a fresh temp dir and returns the path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// SetupTestDB creates a fresh SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: db.TypeSQLite,
		AdminKeySalt: TestAdminSalt,
	}
}

// SampleRecords returns the accepted records of SampleCSV, in file order
func SampleRecords() []models.SurveyRecord {
	return []models.SurveyRecord{
		{Word: "dýl", Region: "Praha"},
		{Word: "dýl", Region: "Praha"},
		{Word: "později", Region: "Praha"},
		{Word: "později", Region: "Brno-město"},
		{Word: "dýl", Region: "Brno-město"},
		{Word: "později", Region: "Kladno"},
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
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

// AssertContentType checks the response Content-Type prefix
func AssertContentType(t *testing.T, w *httptest.ResponseRecorder, prefix string) {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, prefix) {
		t.Errorf("Expected Content-Type %s, got %s", prefix, ct)
	}
}
