package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mkline/tutora/internal/sentiment"
	"github.com/mkline/tutora/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Topic:             "Supervised Learning",
		Score:             6.7,
		Strengths:         []string{"labels", "training data"},
		Gaps:              []string{"loss functions"},
		Recommendations:   []string{"Deep Dive: loss functions"},
		QuestionsServed:   10,
		CorrectAnswers:    7,
		SegmentsCompleted: 4,
		Duration:          12 * time.Minute,
		Sentiment: &sentiment.Summary{
			AvgConfusion:  0.2,
			AvgConfidence: 0.8,
			AvgEngagement: 0.7,
			ReadingCount:  4,
			Note:          sentiment.NoteEncouraging,
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Supervised Learning", "6.7", "loss functions", "Deep Dive", sentiment.NoteEncouraging} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NoSentimentSection(t *testing.T) {
	sum := testSummary()
	sum.Sentiment = nil
	s := New(sum)
	if strings.Contains(s.View(80, 24), "How it felt") {
		t.Error("sentiment section rendered with no readings")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
