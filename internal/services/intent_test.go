package services

import "testing"

func TestClassifyDefaultVocabulary(t *testing.T) {
	c := NewIntentClassifier(nil)

	cases := []struct {
		name      string
		utterance string
		want      Intent
	}{
		{"plain yes", "yes", IntentAffirmative},
		{"plain no", "no", IntentNegative},
		{"hindi yes", "haan", IntentAffirmative},
		{"hindi no", "nahi", IntentNegative},
		{"uppercase", "YES", IntentAffirmative},
		{"mixed case hindi", "Haan ji", IntentAffirmative},
		{"substring yes", "yes, bilkul", IntentAffirmative},
		{"substring no", "abhi nahi hai", IntentNegative},
		{"both present prefers affirmative", "haan... no wait", IntentAffirmative},
		{"unrelated", "1980-08-12", IntentUnknown},
		{"empty", "", IntentUnknown},
		{"name", "Mrs. Kavita Sharma", IntentUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Classify(tc.utterance); got != tc.want {
				t.Fatalf("Classify(%q) = %q, want %q", tc.utterance, got, tc.want)
			}
		})
	}
}

func TestClassifyCustomVocabulary(t *testing.T) {
	c := NewIntentClassifier(map[string]Intent{
		"Ja":   IntentAffirmative,
		"nein": IntentNegative,
	})

	if got := c.Classify("ja, natürlich"); got != IntentAffirmative {
		t.Fatalf("expected affirmative, got %q", got)
	}
	if got := c.Classify("NEIN"); got != IntentNegative {
		t.Fatalf("expected negative, got %q", got)
	}
	// Default terms must not apply with a custom table
	if got := c.Classify("yes"); got != IntentUnknown {
		t.Fatalf("expected unknown for out-of-vocabulary term, got %q", got)
	}
}

func TestLoadVocabulary(t *testing.T) {
	path := t.TempDir() + "/vocab.json"
	writeFile(t, path, `{"si":"affirmative","no":"negative"}`)

	vocab, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(vocab) != 2 || vocab["si"] != IntentAffirmative || vocab["no"] != IntentNegative {
		t.Fatalf("unexpected vocabulary: %v", vocab)
	}
}

func TestLoadVocabularyRejectsUnknownIntent(t *testing.T) {
	path := t.TempDir() + "/vocab.json"
	writeFile(t, path, `{"maybe":"perhaps"}`)

	if _, err := LoadVocabulary(path); err == nil {
		t.Fatal("expected error for invalid intent value")
	}
}
