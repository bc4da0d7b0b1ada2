package models

import "time"

// Speaker identifies who produced a transcript line.
type Speaker string

const (
	SpeakerPatient Speaker = "patient"
	SpeakerAgent   Speaker = "agent"
)

// TranscriptEntry is one line of the call transcript. Entries are append-only
// and discarded with the session.
type TranscriptEntry struct {
	Speaker Speaker   `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}
