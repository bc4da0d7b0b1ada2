package services

import (
	"context"
	"os"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// fakeNotifier records escalations and returns a scripted outcome.
type fakeNotifier struct {
	result AlertDelivery
	calls  []fakeAlertCall
}

type fakeAlertCall struct {
	patientID string
	symptoms  []string
}

func (f *fakeNotifier) RaiseAlert(_ context.Context, patientID string, symptoms []string) AlertDelivery {
	f.calls = append(f.calls, fakeAlertCall{patientID: patientID, symptoms: append([]string(nil), symptoms...)})
	if f.result == "" {
		return AlertDelivered
	}
	return f.result
}
