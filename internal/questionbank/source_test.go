package questionbank

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mkline/tutora/internal/llm"
)

func validBatchJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"question": "What does a loss function measure?",
				"options": ["A) Model size", "B) Prediction error", "C) Training speed", "D) Dataset size"],
				"correct": "B",
				"concept": "loss functions",
				"difficulty": 1,
				"targets_weakness": false
			},
			{
				"question": "Which symptom suggests overfitting?",
				"options": ["A) High train and test accuracy", "B) Low train accuracy", "C) High train, low test accuracy", "D) Slow training"],
				"correct": "C",
				"concept": "overfitting",
				"difficulty": 2,
				"targets_weakness": false
			}
		]
	}`)
}

func TestInitialQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	src := New(mock, nil, DefaultConfig())

	questions, err := src.InitialQuestions(context.Background(), "supervised-learning")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Correct != "B" {
		t.Errorf("correct = %q", questions[0].Correct)
	}
	if questions[1].Concept != "overfitting" {
		t.Errorf("concept = %q", questions[1].Concept)
	}

	// Catalog topics seed the prompt with their concepts.
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Supervised Learning") {
		t.Errorf("prompt missing display name:\n%s", prompt)
	}
	if !strings.Contains(prompt, "loss functions") {
		t.Errorf("prompt missing seed concepts:\n%s", prompt)
	}
}

func TestAdaptiveQuestionsTargetWeakConcepts(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	src := New(mock, nil, DefaultConfig())

	_, err := src.AdaptiveQuestions(context.Background(), "supervised-learning", LearnerSnapshot{
		CorrectCount: 2,
		TotalCount:   5,
		WeakConcepts: []string{"overfitting", "loss functions"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "overfitting, loss functions") {
		t.Errorf("prompt missing weak concepts:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2 of 5") {
		t.Errorf("prompt missing performance summary:\n%s", prompt)
	}
}

func TestAdaptiveQuestionsNoWeaknesses(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	src := New(mock, nil, DefaultConfig())

	_, err := src.AdaptiveQuestions(context.Background(), "supervised-learning", LearnerSnapshot{
		CorrectCount: 5, TotalCount: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "increase difficulty") {
		t.Errorf("prompt missing depth probe for perfect scores:\n%s", prompt)
	}
}

func TestGenerateProviderError(t *testing.T) {
	wantErr := &llm.ErrProviderUnavailable{}
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	src := New(mock, nil, DefaultConfig())

	_, err := src.InitialQuestions(context.Background(), "supervised-learning")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("error = %v, want wrapped ErrProviderUnavailable", err)
	}
}

func TestGenerateRejectsMalformedBatch(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"empty batch", `{"questions": []}`},
		{"three options", `{"questions":[{"question":"q","options":["A) x","B) y","C) z"],"correct":"A","concept":"c","difficulty":1,"targets_weakness":false}]}`},
		{"bad label", `{"questions":[{"question":"q","options":["A) w","B) x","Z) y","D) z"],"correct":"A","concept":"c","difficulty":1,"targets_weakness":false}]}`},
		{"correct not a letter", `{"questions":[{"question":"q","options":["A) w","B) x","C) y","D) z"],"correct":"E","concept":"c","difficulty":1,"targets_weakness":false}]}`},
		{"difficulty out of range", `{"questions":[{"question":"q","options":["A) w","B) x","C) y","D) z"],"correct":"A","concept":"c","difficulty":9,"targets_weakness":false}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.json)})
			src := New(mock, nil, DefaultConfig())

			_, err := src.InitialQuestions(context.Background(), "supervised-learning")
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}
