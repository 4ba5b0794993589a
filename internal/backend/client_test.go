package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkline/tutora/internal/questionbank"
	"github.com/mkline/tutora/internal/report"
)

func wireQuestionJSON() string {
	return `{
		"question": "What is a label?",
		"options": ["A) An input", "B) A target value", "C) A layer", "D) A metric"],
		"correct": "B",
		"concept": "labels",
		"difficulty": 1,
		"targets_weakness": false
	}`
}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(Config{BaseURL: srv.URL, UserID: "user_1"}), srv
}

func TestInitialQuestions(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assessment/initial" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["topic"] != "supervised-learning" {
			t.Errorf("topic = %v", body["topic"])
		}
		w.Write([]byte(`{"questions": [` + wireQuestionJSON() + `]}`))
	})
	defer srv.Close()

	questions, err := c.InitialQuestions(context.Background(), "supervised-learning")
	if err != nil {
		t.Fatalf("initial: %v", err)
	}
	if len(questions) != 1 || questions[0].Correct != "B" {
		t.Errorf("questions = %+v", questions)
	}
}

func TestAdaptiveQuestionsSendsPerformance(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID         string `json:"userId"`
			InitialResults struct {
				Correct      int      `json:"correct"`
				Total        int      `json:"total"`
				WeakConcepts []string `json:"weak_concepts"`
			} `json:"initialResults"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.UserID != "user_1" {
			t.Errorf("userId = %q", body.UserID)
		}
		if body.InitialResults.Correct != 3 || len(body.InitialResults.WeakConcepts) != 1 {
			t.Errorf("initialResults = %+v", body.InitialResults)
		}
		w.Write([]byte(`{"questions": [` + wireQuestionJSON() + `]}`))
	})
	defer srv.Close()

	_, err := c.AdaptiveQuestions(context.Background(), "supervised-learning", questionbank.LearnerSnapshot{
		CorrectCount: 3, TotalCount: 5, WeakConcepts: []string{"labels"},
	})
	if err != nil {
		t.Fatalf("adaptive: %v", err)
	}
}

func TestNon2xxIsFetchError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})
	defer srv.Close()

	_, err := c.InitialQuestions(context.Background(), "lists")
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want FetchError", err)
	}
	if fe.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d", fe.Status)
	}
}

func TestUnreachableIsFetchError(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1", UserID: "user_1"})

	_, err := c.InitialQuestions(context.Background(), "lists")
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want FetchError", err)
	}
	if fe.Status != 0 {
		t.Errorf("status = %d, want 0 for transport failure", fe.Status)
	}
}

func TestMalformedPayloadIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"invalid question shape", `{"questions": [{"question": "", "options": ["A) x"], "correct": ""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body))
			})
			defer srv.Close()

			_, err := c.InitialQuestions(context.Background(), "lists")
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestCompleteAssessment(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assessment/complete" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body struct {
			UserID          string            `json:"userId"`
			Topic           string            `json:"topic"`
			InitialAnswers  map[string]string `json:"initialAnswers"`
			AdaptiveAnswers map[string]string `json:"adaptiveAnswers"`
			AllQuestions    []wireQuestion    `json:"allQuestions"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.UserID != "user_1" {
			t.Errorf("userId = %q", body.UserID)
		}
		if body.InitialAnswers["0"] != "B" || body.AdaptiveAnswers["0"] != "A" {
			t.Errorf("answers = %v / %v", body.InitialAnswers, body.AdaptiveAnswers)
		}
		if len(body.AllQuestions) != 2 {
			t.Errorf("allQuestions = %d, want 2", len(body.AllQuestions))
		}
		w.Write([]byte(`{
			"overallScore": 6.5,
			"conceptPerformance": {"labels": {"attempted": 2, "correct": 1}},
			"learningPath": ["labels"]
		}`))
	})
	defer srv.Close()

	questions := []questionbank.Question{
		{Text: "q1", Options: []string{"A", "B", "C", "D"}, Correct: "B", Concept: "labels"},
		{Text: "q2", Options: []string{"A", "B", "C", "D"}, Correct: "C", Concept: "labels"},
	}
	analysis, err := c.CompleteAssessment(context.Background(), "supervised-learning",
		map[int]string{0: "B"}, map[int]string{0: "A"}, questions)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if analysis.OverallScore != 6.5 {
		t.Errorf("overall score = %v", analysis.OverallScore)
	}
	if len(analysis.LearningPath) != 1 || analysis.LearningPath[0] != "labels" {
		t.Errorf("learning path = %v", analysis.LearningPath)
	}
}

func TestGenerateLesson(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lesson/generate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"topic": "Neural Networks",
			"overview": "The building blocks.",
			"chunks": [{"title": "Layers", "content": "Stacked transforms.", "key_point": "Depth adds power."}],
			"key_takeaways": ["Layers compose"]
		}`))
	})
	defer srv.Close()

	lesson, err := c.GenerateLesson(context.Background(), "neural-networks")
	if err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if len(lesson.Segments) != 1 || lesson.Segments[0].KeyPoint != "Depth adds power." {
		t.Errorf("lesson = %+v", lesson)
	}
}

func TestGenerateLessonRejectsEmptyChunks(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"topic": "t", "overview": "o", "chunks": [], "key_takeaways": []}`))
	})
	defer srv.Close()

	_, err := c.GenerateLesson(context.Background(), "t")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["responseText"] != "that was clear" {
			t.Errorf("responseText = %v", body["responseText"])
		}
		w.Write([]byte(`{"confusion_level": 0.1, "confidence_level": 0.9, "engagement_level": 0.8, "understanding": "good", "suggestion": "keep pace", "should_proceed": true}`))
	})
	defer srv.Close()

	reading, err := c.AnalyzeSentiment(context.Background(), "that was clear", "segment")
	if err != nil {
		t.Fatalf("sentiment: %v", err)
	}
	if reading.Confidence != 0.9 || !reading.ShouldProceed {
		t.Errorf("reading = %+v", reading)
	}
}

func TestSaveSession(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/session/save" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body struct {
			UserID      string               `json:"userId"`
			SessionData report.SessionRecord `json:"sessionData"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.SessionData.Topic != "lists" {
			t.Errorf("topic = %q", body.SessionData.Topic)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	err := c.SaveSession(context.Background(), &report.SessionRecord{Topic: "lists", PreScore: 5})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
}
