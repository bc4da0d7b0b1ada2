package models

import (
	"time"

	"gorm.io/gorm"
)

// CallRecord is the per-call audit row. It tracks how a call ended, not what
// was said; transcripts live only in memory for the duration of the call.
type CallRecord struct {
	gorm.Model
	CallID       string     `json:"call_id" gorm:"uniqueIndex"`
	PatientID    string     `json:"patient_id" gorm:"index"`
	Stage        string     `json:"stage"`
	Verified     bool       `json:"verified"`
	HighRisk     bool       `json:"high_risk"`
	AlertOutcome string     `json:"alert_outcome"`
	Turns        int        `json:"turns"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}
