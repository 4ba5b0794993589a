package learn

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mkline/tutora/internal/lessons"
	"github.com/mkline/tutora/internal/llm"
	"github.com/mkline/tutora/internal/questionbank"
	"github.com/mkline/tutora/internal/sentiment"
	sess "github.com/mkline/tutora/internal/session"
)

// stubSource serves canned question batches.
type stubSource struct {
	initial     []questionbank.Question
	adaptive    []questionbank.Question
	initialErr  error
	adaptiveErr error
}

func (s *stubSource) InitialQuestions(_ context.Context, _ string) ([]questionbank.Question, error) {
	return s.initial, s.initialErr
}

func (s *stubSource) AdaptiveQuestions(_ context.Context, _ string, _ questionbank.LearnerSnapshot) ([]questionbank.Question, error) {
	return s.adaptive, s.adaptiveErr
}

func initialBatch() []questionbank.Question {
	return []questionbank.Question{
		{Text: "What does a label provide?", Options: []string{"A) Target output", "B) Input noise", "C) A cluster", "D) A reward"}, Correct: "A", Concept: "labels"},
		{Text: "What does a loss function measure?", Options: []string{"A) Memory", "B) Prediction error", "C) Dataset size", "D) Epochs"}, Correct: "B", Concept: "loss functions"},
	}
}

func adaptiveBatch() []questionbank.Question {
	return []questionbank.Question{
		{Text: "What is overfitting?", Options: []string{"A) Slow training", "B) Underuse of data", "C) Memorizing noise", "D) Small models"}, Correct: "C", Concept: "overfitting"},
	}
}

func lessonJSON() json.RawMessage {
	return json.RawMessage(`{
		"topic": "Supervised Learning",
		"overview": "How models learn from labeled data.",
		"chunks": [
			{"title": "Labels", "content": "Labels are the target outputs.", "key_point": "Labels supervise."},
			{"title": "Loss", "content": "Loss measures prediction error.", "key_point": "Lower is better."}
		],
		"key_takeaways": ["Labels drive training."]
	}`)
}

func testDeps(src questionbank.Source) sess.Deps {
	provider := llm.NewMockProvider(llm.MockResponse{Content: lessonJSON()})
	return sess.Deps{
		Source:    src,
		Lessons:   lessons.NewService(provider, nil, lessons.DefaultConfig()),
		Sentiment: sentiment.NewService(nil),
	}
}

func key(k string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(k[0]), Text: k}
}

func pressEnter(s *LearnScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

// started runs Init and delivers the resulting start message.
func started(t *testing.T, s *LearnScreen) {
	t.Helper()
	msg := s.Init()()
	if m, ok := msg.(assessmentStartedMsg); !ok || m.Err != nil {
		t.Fatalf("start msg = %#v", msg)
	}
	s.Update(msg)
}

// answer submits one choice key and returns the follow-up command.
func answer(t *testing.T, s *LearnScreen, k string) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(key(k))
	return cmd
}

// completeAssessment answers both phases and delivers the advance
// messages, leaving the session waiting on the lesson.
func completeAssessment(t *testing.T, s *LearnScreen) {
	t.Helper()
	answer(t, s, "1")
	cmd := answer(t, s, "2")
	if cmd == nil {
		t.Fatal("no advance command after the initial batch")
	}
	s.Update(cmd())

	cmd = answer(t, s, "3")
	if cmd == nil {
		t.Fatal("no advance command after the adaptive batch")
	}
	s.Update(cmd())

	if s.session.Phase() != sess.PhaseLessonWait {
		t.Fatalf("phase = %v, want PhaseLessonWait", s.session.Phase())
	}
}

// deliverLesson ticks the poll loop until the generated lesson lands.
func deliverLesson(t *testing.T, s *LearnScreen) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for s.session.Phase() == sess.PhaseLessonWait {
		select {
		case <-deadline:
			t.Fatal("lesson never became ready")
		case <-time.After(10 * time.Millisecond):
			s.Update(lessonTickMsg(time.Now()))
		}
	}
	if s.session.Phase() != sess.PhaseLesson {
		t.Fatalf("phase = %v, want PhaseLesson", s.session.Phase())
	}
}

func TestTitleUsesTopicDisplayName(t *testing.T) {
	s := New("supervised-learning", testDeps(&stubSource{initial: initialBatch()}), nil)
	if s.Title() != "Supervised Learning" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestInitialFetchErrorOffersRetry(t *testing.T) {
	src := &stubSource{initialErr: errors.New("backend down")}
	s := New("supervised-learning", testDeps(src), nil)

	msg := s.Init()()
	s.Update(msg)

	if view := s.View(80, 24); !strings.Contains(view, "backend down") {
		t.Errorf("view missing error, got:\n%s", view)
	}

	// Retry against a now-healthy source.
	src.initialErr = nil
	src.initial = initialBatch()
	_, cmd := s.Update(key("r"))
	if cmd == nil {
		t.Fatal("retry produced no command")
	}
	s.Update(cmd())

	if view := s.View(80, 24); !strings.Contains(view, "label") {
		t.Errorf("view missing first question, got:\n%s", view)
	}
}

func TestAssessmentWalksBothPhases(t *testing.T) {
	s := New("supervised-learning", testDeps(&stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}), nil)
	started(t, s)

	if view := s.View(80, 24); !strings.Contains(view, "1 of 2") {
		t.Errorf("view missing question counter, got:\n%s", view)
	}

	answer(t, s, "1")
	if view := s.View(80, 24); !strings.Contains(view, "2 of 2") {
		t.Errorf("view missing second question, got:\n%s", view)
	}

	cmd := answer(t, s, "2")
	s.Update(cmd())

	if view := s.View(80, 24); !strings.Contains(view, "overfitting") {
		t.Errorf("view missing adaptive question, got:\n%s", view)
	}
}

func TestDegradedAdaptiveFetchStillReachesLesson(t *testing.T) {
	src := &stubSource{initial: initialBatch(), adaptiveErr: errors.New("timeout")}
	s := New("supervised-learning", testDeps(src), nil)
	started(t, s)

	answer(t, s, "1")
	cmd := answer(t, s, "2")
	msg := cmd()
	adv, ok := msg.(phaseAdvancedMsg)
	if !ok || adv.Degraded == nil {
		t.Fatalf("msg = %#v, want degraded advance", msg)
	}
	s.Update(msg)

	if s.session.Phase() != sess.PhaseLessonWait {
		t.Fatalf("phase = %v, want PhaseLessonWait", s.session.Phase())
	}
	if view := s.View(80, 24); !strings.Contains(view, "could not be loaded") {
		t.Errorf("view missing degraded note, got:\n%s", view)
	}
}

func TestReflectionsWalkSegmentsToSummary(t *testing.T) {
	s := New("supervised-learning", testDeps(&stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}), nil)
	started(t, s)
	completeAssessment(t, s)
	deliverLesson(t, s)

	if view := s.View(80, 24); !strings.Contains(view, "Labels") {
		t.Errorf("view missing first segment, got:\n%s", view)
	}

	// No analyzer is configured, so each reflection resolves at once.
	pressEnter(s)
	s.input.Model.SetValue("that made sense")
	pressEnter(s)

	if view := s.View(80, 24); !strings.Contains(view, "Loss") {
		t.Errorf("view missing second segment, got:\n%s", view)
	}

	pressEnter(s)
	s.input.Model.SetValue("lost me a little")
	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("final segment produced no finish command")
	}
	if s.session.Phase() != sess.PhaseSummary {
		t.Errorf("phase = %v, want PhaseSummary", s.session.Phase())
	}
	if s.session.SegmentsCompleted() != 2 {
		t.Errorf("segments completed = %d, want 2", s.session.SegmentsCompleted())
	}
}

func TestEmptyReflectionDoesNotAdvance(t *testing.T) {
	s := New("supervised-learning", testDeps(&stubSource{initial: initialBatch(), adaptive: adaptiveBatch()}), nil)
	started(t, s)
	completeAssessment(t, s)
	deliverLesson(t, s)

	pressEnter(s)
	cmd := pressEnter(s) // nothing typed
	if cmd != nil {
		t.Error("empty reflection should be ignored")
	}
	if got := s.session.SegmentsCompleted(); got != 0 {
		t.Errorf("segments completed = %d, want 0", got)
	}
}

func TestEscAsksBeforeEnding(t *testing.T) {
	s := New("supervised-learning", testDeps(&stubSource{initial: initialBatch()}), nil)
	started(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if view := s.View(80, 24); !strings.Contains(view, "End this session") {
		t.Errorf("view missing quit prompt, got:\n%s", view)
	}

	// N keeps the session running.
	s.Update(key("n"))
	if view := s.View(80, 24); strings.Contains(view, "End this session") {
		t.Error("quit prompt still showing after N")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(key("y"))
	if cmd == nil {
		t.Fatal("confirming quit produced no command")
	}
	if s.session.Phase() != sess.PhaseSummary {
		t.Errorf("phase = %v, want PhaseSummary", s.session.Phase())
	}
}

func TestAsyncReadingUnblocksSegment(t *testing.T) {
	deps := testDeps(&stubSource{initial: initialBatch(), adaptive: adaptiveBatch()})
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"confusion_level": 0.2, "confidence_level": 0.8, "engagement_level": 0.7, "understanding": "solid", "should_proceed": true}`),
	})
	deps.Sentiment = sentiment.NewService(provider)
	defer deps.Sentiment.Close()

	s := New("supervised-learning", deps, nil)
	started(t, s)
	completeAssessment(t, s)
	deliverLesson(t, s)

	pressEnter(s)
	s.input.Model.SetValue("that made sense")
	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("dispatched reflection produced no await command")
	}
	if !s.awaitingReading {
		t.Fatal("screen not awaiting the reading")
	}

	// The await command blocks until the analysis callback delivers.
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		reading, ok := msg.(readingMsg)
		if !ok {
			t.Fatalf("msg = %#v, want readingMsg", msg)
		}
		s.Update(reading)
	case <-time.After(2 * time.Second):
		t.Fatal("reading never arrived")
	}

	if s.awaitingReading {
		t.Error("still awaiting after the reading landed")
	}
	if got := s.session.SegmentsCompleted(); got != 1 {
		t.Errorf("segments completed = %d, want 1", got)
	}
	if s.session.Aggregator.Count() != 1 {
		t.Errorf("aggregated readings = %d, want 1", s.session.Aggregator.Count())
	}
}
