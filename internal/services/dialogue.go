package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/carelink-health/carecall-backend/internal/models"
)

// DialogueConfig tunes the call script behavior.
type DialogueConfig struct {
	// ReportAllConfirmed sends every confirmed symptom in the alert payload.
	// Off by default: the alert then carries only the last symptom examined
	// before conclusion, as in the original call script.
	ReportAllConfirmed bool

	// MaxVerifyAttempts caps how often each identity question is re-asked
	// before the call is abandoned. 0 means re-ask forever.
	MaxVerifyAttempts int
}

// DialogueManager runs the scripted follow-up call: verify identity, walk the
// symptom checklist, escalate on a confirmed high-risk finding. It owns no
// I/O beyond the injected notifier and must only be driven from a single
// goroutine per call.
type DialogueManager struct {
	profile  *models.PatientProfile
	state    *models.ConversationState
	notifier AlertNotifier
	config   DialogueConfig
}

// NewDialogueManager wires a machine to one call's state. The state must
// start at StageInit for a fresh call.
func NewDialogueManager(profile *models.PatientProfile, state *models.ConversationState, notifier AlertNotifier, config DialogueConfig) *DialogueManager {
	return &DialogueManager{
		profile:  profile,
		state:    state,
		notifier: notifier,
		config:   config,
	}
}

// State exposes the conversation state the machine mutates.
func (d *DialogueManager) State() *models.ConversationState { return d.state }

// Turn consumes one patient utterance and returns the agent's reply. The raw
// text is used for identity matching; the intent is used for the symptom
// screen. Every input produces a reply; nothing here returns an error.
func (d *DialogueManager) Turn(ctx context.Context, input string, intent Intent) string {
	switch d.state.Stage {
	case models.StageInit:
		d.state.Stage = models.StageVerifyName
		return fmt.Sprintf(PromptGreeting, d.profile.FullName)

	case models.StageVerifyName:
		if strings.EqualFold(strings.TrimSpace(input), d.profile.FullName) {
			d.state.Stage = models.StageVerifyDOB
			return PromptAskDOB
		}
		d.state.NameAttempts++
		if d.verifyAttemptsExhausted(d.state.NameAttempts) {
			return d.abandonUnverified()
		}
		return fmt.Sprintf(PromptRetryName, d.profile.FullName)

	case models.StageVerifyDOB:
		if strings.TrimSpace(input) == d.profile.DateOfBirth {
			d.state.Verified = true
			if len(d.profile.HighRiskSymptoms) == 0 {
				// Nothing to screen for; go straight to the reminder.
				d.state.Stage = models.StageConclude
				return d.followupReply()
			}
			d.state.Stage = models.StageCheckSymptoms
			return fmt.Sprintf(PromptFirstSymptom, strings.ToLower(d.profile.HighRiskSymptoms[0]))
		}
		d.state.DOBAttempts++
		if d.verifyAttemptsExhausted(d.state.DOBAttempts) {
			return d.abandonUnverified()
		}
		return PromptRetryDOB

	case models.StageCheckSymptoms:
		return d.screenSymptom(ctx, intent)

	case models.StageConcludeAlert:
		d.state.Stage = models.StageEnd
		return PromptClosingAlert

	case models.StageConclude:
		d.state.Stage = models.StageEnd
		return PromptClosing
	}

	return PromptFallback
}

// screenSymptom records the answer for the symptom under the cursor, advances
// the cursor exactly once regardless of polarity, and either asks the next
// question or concludes the call.
func (d *DialogueManager) screenSymptom(ctx context.Context, intent Intent) string {
	symptoms := d.profile.HighRiskSymptoms
	symptom := symptoms[d.state.SymptomCursor]
	d.state.LastExamined = symptom

	if intent == IntentAffirmative {
		d.state.HighRiskDetected = true
		d.state.ConfirmedSymptoms = append(d.state.ConfirmedSymptoms, symptom)
	}
	d.state.SymptomCursor++

	if d.state.SymptomCursor < len(symptoms) {
		return fmt.Sprintf(PromptNextSymptom, strings.ToLower(symptoms[d.state.SymptomCursor]))
	}

	if d.state.HighRiskDetected {
		d.state.Stage = models.StageConcludeAlert
		delivery := d.notifier.RaiseAlert(ctx, d.profile.PatientID, d.reportedSymptoms())
		d.state.AlertOutcome = string(delivery)
		if delivery.Delivered() {
			return PromptAlertSent
		}
		log.Printf("⚠️  Escalation for %s not delivered: %s", d.profile.PatientID, delivery)
		return PromptAlertFailed
	}

	d.state.Stage = models.StageConclude
	return d.followupReply()
}

// reportedSymptoms selects the alert payload per the configured policy.
func (d *DialogueManager) reportedSymptoms() []string {
	if d.config.ReportAllConfirmed {
		return append([]string(nil), d.state.ConfirmedSymptoms...)
	}
	return []string{d.state.LastExamined}
}

func (d *DialogueManager) followupReply() string {
	return fmt.Sprintf(PromptNoRisk, d.profile.NextFollowupVisit, d.profile.FollowupProvider)
}

func (d *DialogueManager) verifyAttemptsExhausted(attempts int) bool {
	return d.config.MaxVerifyAttempts > 0 && attempts >= d.config.MaxVerifyAttempts
}

// abandonUnverified ends the call without screening when identity cannot be
// established within the attempt limit.
func (d *DialogueManager) abandonUnverified() string {
	log.Printf("⚠️  Identity verification abandoned for %s after %d attempts", d.profile.PatientID, d.config.MaxVerifyAttempts)
	d.state.Stage = models.StageEnd
	return PromptVerifyLimit
}
