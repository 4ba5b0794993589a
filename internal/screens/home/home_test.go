package home

import (
	"context"
	"strings"
	"testing"

	"github.com/mkline/tutora/internal/questionbank"
	sess "github.com/mkline/tutora/internal/session"
	"github.com/mkline/tutora/internal/topics"
)

type stubSource struct{}

func (stubSource) InitialQuestions(context.Context, string) ([]questionbank.Question, error) {
	return nil, nil
}

func (stubSource) AdaptiveQuestions(context.Context, string, questionbank.LearnerSnapshot) ([]questionbank.Question, error) {
	return nil, nil
}

func TestHomeWithoutProviderDisablesTopics(t *testing.T) {
	h := New(sess.Deps{}, nil)

	view := h.View(100, 40)
	if !strings.Contains(view, "No question source configured") {
		t.Error("view missing the missing-provider notice")
	}

	// Quit stays selectable, so the cursor must land on it.
	items := h.menu.Items
	if got := items[h.menu.Selected].Label; got != "Quit" {
		t.Errorf("initial selection = %q, want Quit", got)
	}
	for i, topic := range topics.All() {
		if !items[i].Disabled {
			t.Errorf("topic %s not disabled without a source", topic.ID)
		}
	}
}

func TestHomeListsEveryTopic(t *testing.T) {
	h := New(sess.Deps{Source: stubSource{}}, nil)

	view := h.View(100, 40)
	for _, topic := range topics.All() {
		if !strings.Contains(view, topic.Name) {
			t.Errorf("view missing topic %q", topic.Name)
		}
	}
	if !strings.Contains(view, "History") {
		t.Error("view missing History entry")
	}
}
