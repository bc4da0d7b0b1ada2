package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Intent is the coarse meaning extracted from a patient utterance.
type Intent string

const (
	IntentAffirmative Intent = "affirmative"
	IntentNegative    Intent = "negative"
	// IntentUnknown means the utterance matched no vocabulary term; callers
	// must keep the original text as-is.
	IntentUnknown Intent = "unknown"
)

// IntentClassifier maps utterances to intents via case-insensitive substring
// matching against a vocabulary table. It never rewrites unmatched input.
type IntentClassifier struct {
	vocabulary map[string]Intent
}

// DefaultVocabulary covers English plus transliterated Hindi yes/no terms.
func DefaultVocabulary() map[string]Intent {
	return map[string]Intent{
		"yes":  IntentAffirmative,
		"haan": IntentAffirmative,
		"no":   IntentNegative,
		"nahi": IntentNegative,
	}
}

// NewIntentClassifier creates a classifier. A nil vocabulary selects the
// default yes/no table.
func NewIntentClassifier(vocabulary map[string]Intent) *IntentClassifier {
	if vocabulary == nil {
		vocabulary = DefaultVocabulary()
	}
	normalized := make(map[string]Intent, len(vocabulary))
	for term, intent := range vocabulary {
		normalized[strings.ToLower(term)] = intent
	}
	return &IntentClassifier{vocabulary: normalized}
}

// Classify returns the intent of an utterance. Affirmative terms win over
// negative ones when both appear, matching the reference call script.
func (c *IntentClassifier) Classify(utterance string) Intent {
	text := strings.ToLower(utterance)
	for _, want := range []Intent{IntentAffirmative, IntentNegative} {
		for term, intent := range c.vocabulary {
			if intent == want && strings.Contains(text, term) {
				return intent
			}
		}
	}
	return IntentUnknown
}

// LoadVocabulary reads a term→intent table from a JSON file, allowing new
// languages without code changes. Intent values must be "affirmative" or
// "negative".
func LoadVocabulary(path string) (map[string]Intent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file: %w", err)
	}

	vocabulary := make(map[string]Intent, len(raw))
	for term, value := range raw {
		switch Intent(value) {
		case IntentAffirmative, IntentNegative:
			vocabulary[term] = Intent(value)
		default:
			return nil, fmt.Errorf("invalid intent %q for term %q", value, term)
		}
	}
	return vocabulary, nil
}
