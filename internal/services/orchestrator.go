package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carelink-health/carecall-backend/internal/models"
	"github.com/carelink-health/carecall-backend/internal/storage"
)

// Orchestrator glues the speech channel to the dialogue machine. It owns the
// single active call session: conversation state, transcript and the audit
// record. Turns are serialized with a mutex because webhook deliveries may
// arrive on concurrent handlers while the machine itself is not reentrant.
type Orchestrator struct {
	mu sync.Mutex

	store      storage.Store
	classifier *IntentClassifier
	notifier   AlertNotifier
	profile    *models.PatientProfile
	config     DialogueConfig

	callID     string
	dialogue   *DialogueManager
	transcript []models.TranscriptEntry
	record     *models.CallRecord
}

// CallSnapshot is a read-only view of the active call for the ops API.
type CallSnapshot struct {
	CallID string                    `json:"call_id"`
	State  *models.ConversationState `json:"state"`
	Turns  int                       `json:"turns"`
}

// NewOrchestrator creates the orchestrator for the configured patient.
func NewOrchestrator(store storage.Store, classifier *IntentClassifier, notifier AlertNotifier, profile *models.PatientProfile, config DialogueConfig) *Orchestrator {
	return &Orchestrator{
		store:      store,
		classifier: classifier,
		notifier:   notifier,
		profile:    profile,
		config:     config,
	}
}

// StartCall begins a fresh call session, replacing any previous one. The
// process handles one active conversation at a time.
func (o *Orchestrator) StartCall() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.startCallLocked()
}

func (o *Orchestrator) startCallLocked() string {
	o.callID = uuid.NewString()
	state := models.NewConversationState()
	o.dialogue = NewDialogueManager(o.profile, state, o.notifier, o.config)
	o.transcript = nil
	o.record = &models.CallRecord{
		CallID:    o.callID,
		PatientID: o.profile.PatientID,
		Stage:     string(state.Stage),
		StartedAt: time.Now(),
	}
	if o.store != nil {
		if _, err := o.store.CreateCallRecord(o.record); err != nil {
			// Audit writes must never block the call.
			log.Printf("⚠️  Failed to create call record %s: %v", o.callID, err)
		}
	}
	log.Printf("📞 Call %s started for patient %s", o.callID, o.profile.PatientID)
	return o.callID
}

// HandleFrame processes one channel frame and returns the reply frame. Only
// utterance frames are accepted from the channel.
func (o *Orchestrator) HandleFrame(ctx context.Context, frame models.Frame) (models.Frame, error) {
	if frame.Kind != models.FrameUtterance {
		return models.Frame{}, fmt.Errorf("unexpected frame kind %q from channel", frame.Kind)
	}
	reply, err := o.HandleUtterance(ctx, frame.Text)
	if err != nil {
		return models.Frame{}, err
	}
	return models.ReplyFrame(reply), nil
}

// HandleUtterance runs one turn: classify, advance the dialogue machine,
// mirror both lines into the transcript, and return the reply text. Turns are
// processed strictly in arrival order.
func (o *Orchestrator) HandleUtterance(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("empty utterance")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.dialogue == nil {
		// The channel connected before an explicit start; begin the call now.
		o.startCallLocked()
	}

	intent := o.classifier.Classify(text)
	reply := o.dialogue.Turn(ctx, text, intent)

	now := time.Now()
	o.transcript = append(o.transcript,
		models.TranscriptEntry{Speaker: models.SpeakerPatient, Text: text, At: now},
		models.TranscriptEntry{Speaker: models.SpeakerAgent, Text: reply, At: now},
	)
	log.Printf("Patient: %s", text)
	log.Printf("Agent: %s", reply)

	o.record.Turns++
	state := o.dialogue.State()
	o.record.Stage = string(state.Stage)
	o.record.Verified = state.Verified
	o.record.HighRisk = state.HighRiskDetected
	o.record.AlertOutcome = state.AlertOutcome
	if state.Stage == models.StageEnd && o.record.EndedAt == nil {
		ended := time.Now()
		o.record.EndedAt = &ended
		log.Printf("📞 Call %s ended (verified=%v, high_risk=%v)", o.callID, state.Verified, state.HighRiskDetected)
	}
	if o.store != nil {
		if err := o.store.UpdateCallRecord(o.record); err != nil {
			log.Printf("⚠️  Failed to update call record %s: %v", o.callID, err)
		}
	}

	return reply, nil
}

// Transcript returns a copy of the transcript so far.
func (o *Orchestrator) Transcript() []models.TranscriptEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]models.TranscriptEntry(nil), o.transcript...)
}

// Snapshot returns the current call state, or nil when no call has started.
func (o *Orchestrator) Snapshot() *CallSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.dialogue == nil {
		return nil
	}
	state := *o.dialogue.State()
	state.ConfirmedSymptoms = append([]string(nil), state.ConfirmedSymptoms...)
	return &CallSnapshot{
		CallID: o.callID,
		State:  &state,
		Turns:  o.record.Turns,
	}
}
