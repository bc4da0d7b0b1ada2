package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// PatientProfile holds the identity and screening data for the patient being
// called. It is loaded once at startup and never mutated during a call.
type PatientProfile struct {
	PatientID         string   `json:"patient_id"`
	FullName          string   `json:"full_name"`
	DateOfBirth       string   `json:"date_of_birth"` // YYYY-MM-DD
	HighRiskSymptoms  []string `json:"high_risk_symptoms_to_check"`
	NextFollowupVisit string   `json:"next_followup_visit"` // YYYY-MM-DD
	FollowupProvider  string   `json:"followup_provider"`
}

// ReferenceProfile returns the built-in demo profile used when no profile
// file is configured.
func ReferenceProfile() *PatientProfile {
	return &PatientProfile{
		PatientID:   "CL-P00123",
		FullName:    "Mrs. Kavita Sharma",
		DateOfBirth: "1980-08-12",
		HighRiskSymptoms: []string{
			"Fever ≥38 °C (100.4 °F)",
			"Severe vomiting (≥4 episodes in 24 h or unable to keep liquids down)",
			"Shortness of breath or chest tightness",
		},
		NextFollowupVisit: "2025-05-20",
		FollowupProvider:  "Dr. Jaideep Singh",
	}
}

// LoadPatientProfile reads a profile from a JSON file.
func LoadPatientProfile(path string) (*PatientProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read patient profile: %w", err)
	}

	var profile PatientProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse patient profile: %w", err)
	}
	if profile.PatientID == "" || profile.FullName == "" || profile.DateOfBirth == "" {
		return nil, fmt.Errorf("patient profile missing required fields")
	}

	return &profile, nil
}
