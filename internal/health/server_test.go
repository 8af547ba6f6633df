package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	return f.err
}

type fakeScheduler struct {
	next time.Time
}

func (f *fakeScheduler) NextRun() time.Time {
	return f.next
}

func TestHandleHealth(t *testing.T) {
	next := time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC)
	s := NewServer(Config{ServiceName: "puckcast", Scheduler: &fakeScheduler{next: next}})

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Service != "puckcast" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.NextRun != "2026-01-16T10:00:00Z" {
		t.Errorf("expected next run timestamp, got %q", body.NextRun)
	}
}

func TestHandleReadyStates(t *testing.T) {
	tests := []struct {
		name       string
		ready      bool
		db         DatabasePinger
		wantStatus int
	}{
		{"Not marked ready", false, nil, http.StatusServiceUnavailable},
		{"Ready without database", true, nil, http.StatusOK},
		{"Ready with healthy database", true, &fakePinger{}, http.StatusOK},
		{"Ready with failing database", true, &fakePinger{err: errors.New("connection refused")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(Config{ServiceName: "puckcast", DB: tt.db})
			s.SetReady(tt.ready)

			rec := httptest.NewRecorder()
			s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleLive(t *testing.T) {
	s := NewServer(Config{ServiceName: "puckcast"})

	rec := httptest.NewRecorder()
	s.handleLive(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
