package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/carelink-health/carecall-backend/internal/models"
)

// AlertDelivery is the outcome of one escalation attempt. Failures are values
// rather than errors so the dialogue machine can choose the patient-facing
// message without unwrapping anything.
type AlertDelivery string

const (
	AlertDelivered       AlertDelivery = "delivered"
	AlertTimeout         AlertDelivery = "timeout"
	AlertConnectionError AlertDelivery = "connection_error"
	AlertBadStatus       AlertDelivery = "bad_status"
)

// Delivered reports whether the care team actually received the alert.
func (d AlertDelivery) Delivered() bool { return d == AlertDelivered }

// AlertNotifier delivers a high-risk finding to the care team.
type AlertNotifier interface {
	RaiseAlert(ctx context.Context, patientID string, symptoms []string) AlertDelivery
}

// AlertService posts alerts to the configured care-team endpoint. One POST
// per invocation, no retry, no queue; the timeout is a hard cap so an
// unreachable endpoint cannot stall the call.
type AlertService struct {
	client   *http.Client
	endpoint string
	location *time.Location
	now      func() time.Time
}

// NewAlertService builds the notifier from environment variables:
// ALERT_API_URL, ALERT_TIMEOUT_MS and ALERT_TIMEZONE.
func NewAlertService() *AlertService {
	endpoint := os.Getenv("ALERT_API_URL")
	if endpoint == "" {
		endpoint = "http://localhost:5000/alert"
	}

	timeout := 1 * time.Second
	if ms := os.Getenv("ALERT_TIMEOUT_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			timeout = time.Duration(v) * time.Millisecond
		}
	}

	zone := os.Getenv("ALERT_TIMEZONE")
	if zone == "" {
		zone = "Asia/Kolkata"
	}
	location, err := time.LoadLocation(zone)
	if err != nil {
		log.Printf("⚠️  Unknown timezone %q, falling back to +05:30", zone)
		location = time.FixedZone("IST", 5*3600+30*60)
	}

	return NewAlertServiceWithConfig(endpoint, timeout, location)
}

// NewAlertServiceWithConfig builds a notifier with explicit settings.
func NewAlertServiceWithConfig(endpoint string, timeout time.Duration, location *time.Location) *AlertService {
	if location == nil {
		location = time.FixedZone("IST", 5*3600+30*60)
	}
	return &AlertService{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		location: location,
		now:      time.Now,
	}
}

// RaiseAlert posts a high-severity alert for the patient. It never panics and
// never returns an error; every failure mode maps to an AlertDelivery value.
func (s *AlertService) RaiseAlert(ctx context.Context, patientID string, symptoms []string) AlertDelivery {
	alert := models.Alert{
		PatientID:        patientID,
		ReportedSymptoms: symptoms,
		Timestamp:        s.now().In(s.location).Format("2006-01-02T15:04:05-07:00"),
		AlertLevel:       models.AlertLevelHigh,
	}

	body, err := json.Marshal(alert)
	if err != nil {
		log.Printf("❌ Failed to encode alert for %s: %v", patientID, err)
		return AlertConnectionError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("❌ Failed to build alert request: %v", err)
		return AlertConnectionError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		outcome := classifyTransportError(err)
		log.Printf("❌ Alert delivery failed for %s (%s): %v", patientID, outcome, err)
		return outcome
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("❌ Alert endpoint returned %d for %s", resp.StatusCode, patientID)
		return AlertBadStatus
	}

	log.Printf("✅ Alert delivered for %s (%d symptoms)", patientID, len(symptoms))
	return AlertDelivered
}

func classifyTransportError(err error) AlertDelivery {
	if errors.Is(err, context.DeadlineExceeded) {
		return AlertTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return AlertTimeout
	}
	return AlertConnectionError
}

// Endpoint returns the configured alert endpoint, for health reporting.
func (s *AlertService) Endpoint() string { return s.endpoint }

var _ AlertNotifier = (*AlertService)(nil)
