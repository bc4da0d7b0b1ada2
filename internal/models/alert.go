package models

import (
	"gorm.io/gorm"
)

// AlertLevel classifies alert severity. Only AlertLevelHigh is produced by
// the symptom screen today; the enum exists so the wire format can grow.
type AlertLevel string

const (
	AlertLevelHigh   AlertLevel = "high"
	AlertLevelMedium AlertLevel = "medium"
	AlertLevelLow    AlertLevel = "low"
)

// Alert is the JSON payload posted to the care-team endpoint.
type Alert struct {
	PatientID        string     `json:"patient_id"`
	ReportedSymptoms []string   `json:"reported_symptoms"`
	Timestamp        string     `json:"timestamp"` // ISO-8601 with zone offset
	AlertLevel       AlertLevel `json:"alert_level"`
}

// AlertRecord is the row the alert receiver writes for every alert it
// accepts. Symptoms are stored as a JSON array string.
type AlertRecord struct {
	gorm.Model
	PatientID  string `json:"patient_id" gorm:"index"`
	Symptoms   string `json:"symptoms"`
	AlertLevel string `json:"alert_level"`
	ReportedAt string `json:"reported_at"` // timestamp from the payload, as sent
}
