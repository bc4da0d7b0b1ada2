package models

// Stage identifies the dialogue machine's position within a call.
type Stage string

const (
	StageInit          Stage = "INIT"
	StageVerifyName    Stage = "VERIFY_NAME"
	StageVerifyDOB     Stage = "VERIFY_DOB"
	StageCheckSymptoms Stage = "CHECK_SYMPTOMS"
	StageConclude      Stage = "CONCLUDE"
	StageConcludeAlert Stage = "CONCLUDE_ALERT"
	StageEnd           Stage = "END"
)

// ConversationState is the mutable state of one active call. It is owned by
// the orchestrator and mutated only by the dialogue machine's turn function.
type ConversationState struct {
	Stage             Stage    `json:"stage"`
	Verified          bool     `json:"verified"`
	SymptomCursor     int      `json:"symptom_cursor"`
	HighRiskDetected  bool     `json:"high_risk_detected"`
	ConfirmedSymptoms []string `json:"confirmed_symptoms,omitempty"`
	LastExamined      string   `json:"last_examined,omitempty"`
	NameAttempts      int      `json:"name_attempts"`
	DOBAttempts       int      `json:"dob_attempts"`
	AlertOutcome      string   `json:"alert_outcome,omitempty"`
}

// NewConversationState returns the state for a freshly started call.
func NewConversationState() *ConversationState {
	return &ConversationState{Stage: StageInit}
}
