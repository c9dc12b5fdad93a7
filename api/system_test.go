package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func TestHealthHandler_OK(t *testing.T) {
	h := NewSystemHandler(map[string]Pinger{
		"postgres": fakePinger{},
		"redis":    fakePinger{},
	})

	rec := httptest.NewRecorder()
	h.HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" || body["service"] != "jobchat" {
		t.Errorf("body = %v", body)
	}
}

func TestHealthHandler_Degraded(t *testing.T) {
	h := NewSystemHandler(map[string]Pinger{
		"postgres": fakePinger{},
		"redis":    fakePinger{err: errors.New("connection refused")},
	})

	rec := httptest.NewRecorder()
	h.HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var body struct {
		Status string            `json:"status"`
		Failed map[string]string `json:"failed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "degraded" {
		t.Errorf("status = %q", body.Status)
	}
	if _, ok := body.Failed["redis"]; !ok {
		t.Errorf("failed = %v, want redis listed", body.Failed)
	}
	if _, ok := body.Failed["postgres"]; ok {
		t.Error("healthy check must not be listed as failed")
	}
}

func TestVersionHandler(t *testing.T) {
	h := NewSystemHandler(nil)

	rec := httptest.NewRecorder()
	h.VersionHandler("1.2.3", "2026-08-29T00:00:00Z")(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["version"] != "1.2.3" || body["buildTime"] != "2026-08-29T00:00:00Z" {
		t.Errorf("body = %v", body)
	}
}
