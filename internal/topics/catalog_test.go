package topics

import "testing"

func TestGetKnownTopic(t *testing.T) {
	topic, err := Get("supervised-learning")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if topic.Name != "Supervised Learning" {
		t.Errorf("name = %q", topic.Name)
	}
	if len(topic.Concepts) == 0 {
		t.Error("expected seed concepts")
	}
}

func TestGetUnknownTopic(t *testing.T) {
	if _, err := Get("astrology"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestDisplayNameFallsBackToID(t *testing.T) {
	if got := DisplayName("quantum-knitting"); got != "quantum-knitting" {
		t.Errorf("display name = %q, want the raw ID", got)
	}
	if got := DisplayName("neural-networks"); got != "Neural Networks" {
		t.Errorf("display name = %q", got)
	}
}

func TestAllTopicsHaveUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, topic := range All() {
		if seen[topic.ID] {
			t.Errorf("duplicate topic ID %q", topic.ID)
		}
		seen[topic.ID] = true
	}
}
