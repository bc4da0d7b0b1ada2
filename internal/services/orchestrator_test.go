package services

import (
	"context"
	"testing"

	"github.com/carelink-health/carecall-backend/internal/models"
	"github.com/carelink-health/carecall-backend/internal/storage"
)

func newTestOrchestrator(notifier AlertNotifier) (*Orchestrator, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	o := NewOrchestrator(store, NewIntentClassifier(nil), notifier, models.ReferenceProfile(), DialogueConfig{})
	return o, store
}

func TestOrchestratorMirrorsTranscript(t *testing.T) {
	o, _ := newTestOrchestrator(&fakeNotifier{})
	o.StartCall()

	reply, err := o.HandleUtterance(context.Background(), "hello")
	if err != nil {
		t.Fatalf("turn: %v", err)
	}

	entries := o.Transcript()
	if len(entries) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(entries))
	}
	if entries[0].Speaker != models.SpeakerPatient || entries[0].Text != "hello" {
		t.Fatalf("first entry = %+v", entries[0])
	}
	if entries[1].Speaker != models.SpeakerAgent || entries[1].Text != reply {
		t.Fatalf("second entry = %+v", entries[1])
	}
}

func TestOrchestratorAutoStartsOnFirstUtterance(t *testing.T) {
	o, store := newTestOrchestrator(&fakeNotifier{})

	if o.Snapshot() != nil {
		t.Fatal("no snapshot expected before first utterance")
	}
	if _, err := o.HandleUtterance(context.Background(), "hello"); err != nil {
		t.Fatalf("turn: %v", err)
	}

	snapshot := o.Snapshot()
	if snapshot == nil || snapshot.CallID == "" {
		t.Fatal("call should auto-start")
	}
	if _, err := store.GetCallRecord(snapshot.CallID); err != nil {
		t.Fatalf("call record missing: %v", err)
	}
}

func TestOrchestratorRejectsEmptyAndNonUtteranceFrames(t *testing.T) {
	o, _ := newTestOrchestrator(&fakeNotifier{})
	o.StartCall()

	if _, err := o.HandleUtterance(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty utterance")
	}
	if _, err := o.HandleFrame(context.Background(), models.ReplyFrame("echo")); err == nil {
		t.Fatal("expected error for reply frame from channel")
	}
}

func TestOrchestratorFinalizesCallRecord(t *testing.T) {
	notifier := &fakeNotifier{}
	o, store := newTestOrchestrator(notifier)
	callID := o.StartCall()

	script := []string{"hello", "Mrs. Kavita Sharma", "1980-08-12", "haan", "no", "no", "bye"}
	for _, utterance := range script {
		if _, err := o.HandleUtterance(context.Background(), utterance); err != nil {
			t.Fatalf("turn %q: %v", utterance, err)
		}
	}

	rec, err := store.GetCallRecord(callID)
	if err != nil {
		t.Fatalf("call record: %v", err)
	}
	if rec.Stage != string(models.StageEnd) {
		t.Fatalf("stage = %s, want END", rec.Stage)
	}
	if !rec.Verified || !rec.HighRisk {
		t.Fatalf("record flags = verified:%v high_risk:%v", rec.Verified, rec.HighRisk)
	}
	if rec.AlertOutcome != string(AlertDelivered) {
		t.Fatalf("alert outcome = %s", rec.AlertOutcome)
	}
	if rec.EndedAt == nil {
		t.Fatal("ended_at should be set")
	}
	if rec.Turns != len(script) {
		t.Fatalf("turns = %d, want %d", rec.Turns, len(script))
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("alert calls = %d, want 1", len(notifier.calls))
	}
}

func TestStartCallResetsSession(t *testing.T) {
	o, _ := newTestOrchestrator(&fakeNotifier{})
	first := o.StartCall()
	if _, err := o.HandleUtterance(context.Background(), "hello"); err != nil {
		t.Fatalf("turn: %v", err)
	}

	second := o.StartCall()
	if second == first {
		t.Fatal("new call should get a new ID")
	}
	if got := len(o.Transcript()); got != 0 {
		t.Fatalf("transcript after restart = %d entries", got)
	}
	if snapshot := o.Snapshot(); snapshot.State.Stage != models.StageInit {
		t.Fatalf("stage after restart = %s", snapshot.State.Stage)
	}
}

func TestHandleFrameReturnsReplyFrame(t *testing.T) {
	o, _ := newTestOrchestrator(&fakeNotifier{})
	o.StartCall()

	frame, err := o.HandleFrame(context.Background(), models.UtteranceFrame("hello"))
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	if frame.Kind != models.FrameReply || frame.Text == "" {
		t.Fatalf("unexpected frame: %+v", frame)
	}
}
