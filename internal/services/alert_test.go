package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/carelink-health/carecall-backend/internal/models"
)

func TestRaiseAlertDelivered(t *testing.T) {
	var received models.Alert
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %s", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	loc := time.FixedZone("IST", 5*3600+30*60)
	s := NewAlertServiceWithConfig(srv.URL, time.Second, loc)
	s.now = func() time.Time { return time.Date(2025, 5, 15, 10, 30, 0, 0, time.UTC) }

	got := s.RaiseAlert(context.Background(), "CL-P00123", []string{"Shortness of breath or chest tightness"})
	if !got.Delivered() {
		t.Fatalf("delivery = %s, want delivered", got)
	}
	if received.PatientID != "CL-P00123" {
		t.Fatalf("patient_id = %s", received.PatientID)
	}
	if len(received.ReportedSymptoms) != 1 {
		t.Fatalf("reported_symptoms = %v", received.ReportedSymptoms)
	}
	if received.AlertLevel != models.AlertLevelHigh {
		t.Fatalf("alert_level = %s", received.AlertLevel)
	}
	if received.Timestamp != "2025-05-15T16:00:00+05:30" {
		t.Fatalf("timestamp = %s", received.Timestamp)
	}
}

func TestRaiseAlertBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewAlertServiceWithConfig(srv.URL, time.Second, nil)
	if got := s.RaiseAlert(context.Background(), "CL-P00123", []string{"fever"}); got != AlertBadStatus {
		t.Fatalf("delivery = %s, want bad_status", got)
	}
}

func TestRaiseAlertConnectionError(t *testing.T) {
	// Port 1 is never listening
	s := NewAlertServiceWithConfig("http://127.0.0.1:1/alert", time.Second, nil)
	if got := s.RaiseAlert(context.Background(), "CL-P00123", []string{"fever"}); got != AlertConnectionError {
		t.Fatalf("delivery = %s, want connection_error", got)
	}
}

func TestRaiseAlertTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	s := NewAlertServiceWithConfig(srv.URL, 50*time.Millisecond, nil)
	if got := s.RaiseAlert(context.Background(), "CL-P00123", []string{"fever"}); got != AlertTimeout {
		t.Fatalf("delivery = %s, want timeout", got)
	}
}

func TestRaiseAlertContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := NewAlertServiceWithConfig(srv.URL, time.Second, nil)
	got := s.RaiseAlert(ctx, "CL-P00123", []string{"fever"})
	if got == AlertDelivered {
		t.Fatalf("delivery = %s, want a failure", got)
	}
}

func TestNewAlertServiceDefaults(t *testing.T) {
	t.Setenv("ALERT_API_URL", "")
	t.Setenv("ALERT_TIMEOUT_MS", "")
	t.Setenv("ALERT_TIMEZONE", "")

	s := NewAlertService()
	if !strings.Contains(s.Endpoint(), "localhost:5000/alert") {
		t.Fatalf("default endpoint = %s", s.Endpoint())
	}
	if s.client.Timeout != time.Second {
		t.Fatalf("default timeout = %s", s.client.Timeout)
	}
}
