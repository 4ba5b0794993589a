package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mkline/tutora/internal/llm"
)

func validLessonJSON() json.RawMessage {
	return json.RawMessage(`{
		"topic": "Supervised Learning",
		"overview": "How models learn from labeled examples.",
		"chunks": [
			{"title": "Labels", "content": "A label is the answer we want the model to predict.", "key_point": "Labels are the targets."},
			{"title": "Loss", "content": "Loss measures how far predictions are from labels.", "key_point": "Training minimizes loss."},
			{"title": "Generalization", "content": "A model must work on data it has never seen.", "key_point": "Test on held-out data."},
			{"title": "Overfitting", "content": "Memorizing training data fails on new data.", "key_point": "Watch the train/test gap."}
		],
		"key_takeaways": ["Labels are targets", "Loss drives training", "Generalization is the goal"]
	}`)
}

func consumeLesson(t *testing.T, svc *Service) (*Lesson, error) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		lesson, genErr, ok := svc.ConsumeLesson()
		if ok {
			return lesson, genErr
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("lesson never became ready")
	return nil, nil
}

func TestRequestLessonGenerates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := NewService(mock, nil, DefaultConfig())

	svc.RequestLesson(context.Background(), GenerateInput{
		Topic:      "supervised-learning",
		Competency: 4.0,
		Gaps:       []string{"overfitting"},
	})

	lesson, genErr := consumeLesson(t, svc)
	if genErr != nil {
		t.Fatalf("generation error: %v", genErr)
	}
	if len(lesson.Segments) != 4 {
		t.Fatalf("segments = %d, want 4", len(lesson.Segments))
	}
	if lesson.Segments[0].Title != "Labels" {
		t.Errorf("first segment = %q, order must be preserved", lesson.Segments[0].Title)
	}
	if lesson.Topic != "Supervised Learning" {
		t.Errorf("topic = %q", lesson.Topic)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "4.0/10") {
		t.Errorf("prompt missing competency:\n%s", prompt)
	}
	if !strings.Contains(prompt, "overfitting") {
		t.Errorf("prompt missing gaps:\n%s", prompt)
	}
}

func TestConsumeBeforeReady(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil, DefaultConfig())
	if _, _, ok := svc.ConsumeLesson(); ok {
		t.Error("consume reported ready with nothing requested")
	}
}

func TestConsumeClearsPendingSlot(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := NewService(mock, nil, DefaultConfig())

	svc.RequestLesson(context.Background(), GenerateInput{Topic: "supervised-learning"})
	consumeLesson(t, svc)

	if _, _, ok := svc.ConsumeLesson(); ok {
		t.Error("second consume returned a lesson; slot must clear")
	}
}

func TestGenerationFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("provider down")})
	svc := NewService(mock, nil, DefaultConfig())

	svc.RequestLesson(context.Background(), GenerateInput{Topic: "generative-models"})

	lesson, genErr := consumeLesson(t, svc)
	if genErr == nil {
		t.Error("expected the generation error to surface alongside the fallback")
	}
	if lesson == nil {
		t.Fatal("fallback lesson missing; the learner must never be stuck")
	}
	if len(lesson.Segments) != 4 {
		t.Errorf("fallback segments = %d, want the 4-segment scaffold", len(lesson.Segments))
	}
	if !strings.Contains(lesson.Overview, "Generative Models") {
		t.Errorf("fallback overview = %q, want it keyed by topic", lesson.Overview)
	}
}

func TestGenerateRejectsEmptySegments(t *testing.T) {
	empty := json.RawMessage(`{"topic":"t","overview":"o","chunks":[],"key_takeaways":[]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: empty})
	svc := NewService(mock, nil, DefaultConfig())

	if _, err := svc.Generate(context.Background(), GenerateInput{Topic: "t"}); err == nil {
		t.Error("expected error for a lesson with no segments")
	}
}

func TestRemoteServiceDelegates(t *testing.T) {
	svc := NewRemoteService(func(_ context.Context, topic string) (*Lesson, error) {
		if topic != "Neural Networks" {
			t.Errorf("topic = %q", topic)
		}
		return &Lesson{Topic: topic, Segments: []Segment{{Title: "Perceptrons", Body: "b"}}}, nil
	})

	svc.RequestLesson(context.Background(), GenerateInput{Topic: "neural-networks"})
	lesson, genErr := consumeLesson(t, svc)
	if genErr != nil {
		t.Errorf("generation error = %v", genErr)
	}
	if lesson == nil || len(lesson.Segments) != 1 || lesson.Topic != "Neural Networks" {
		t.Errorf("lesson = %+v", lesson)
	}
}
