// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/auth"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/cliparse"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/db"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/models"
)

// TestDBURL is an in-memory sqlite database; each SetupTestDB call gets a fresh one
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), cliparse.DatabaseSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8000,
		DatabaseURL:   TestDBURL,
		DatabaseType:  cliparse.DatabaseSQLite,
		SecretKey:     "test-secret-key",
		AdminUsername: "admin",
		AdminPassword: "admin123",
		TokenTTL:      time.Hour,
		LogFormat:     "auto",
	}
}

// TestIssuer returns an issuer matching cfg
func TestIssuer(cfg cliparse.Config) *auth.Issuer {
	return auth.NewIssuer(cfg.SecretKey, cfg.AdminUsername, cfg.AdminPassword, cfg.TokenTTL)
}

// AdminHeaders returns an Authorization header carrying a valid admin token for cfg
func AdminHeaders(t *testing.T, cfg cliparse.Config) map[string]string {
	t.Helper()

	token, err := TestIssuer(cfg).Issue(cfg.AdminUsername)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// CreateTestInquiry inserts an inquiry with the given status and returns it
func CreateTestInquiry(t *testing.T, conn *sql.DB, name, status string) models.Inquiry {
	t.Helper()

	store := db.NewInquiryStore(conn, cliparse.DatabaseSQLite)
	inq, err := store.Create(context.Background(), models.CreateInquiryRequest{
		Name:        name,
		Email:       "test@example.com",
		Description: "A test inquiry",
	})
	if err != nil {
		t.Fatalf("Failed to create test inquiry: %v", err)
	}

	if status != "" && status != models.StatusPending {
		inq, err = store.UpdateStatus(context.Background(), inq.ID, status)
		if err != nil {
			t.Fatalf("Failed to set test inquiry status: %v", err)
		}
	}

	return inq
}

// CountInquiries returns the number of stored inquiries
func CountInquiries(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM project_requests").Scan(&n); err != nil {
		t.Fatalf("Failed to count inquiries: %v", err)
	}
	return n
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
