// Package backend is the HTTP client for a hosted tutor service. It
// covers the same operations the in-process LLM stack provides, so the
// app can run against either via configuration.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mkline/tutora/internal/lessons"
	"github.com/mkline/tutora/internal/questionbank"
	"github.com/mkline/tutora/internal/report"
	"github.com/mkline/tutora/internal/scoring"
	"github.com/mkline/tutora/internal/sentiment"
)

// Config configures the backend client.
type Config struct {
	BaseURL string
	UserID  string
	Timeout time.Duration
}

// Client talks JSON-over-HTTP to the tutor service. It implements
// questionbank.Source and report.Saver.
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a backend client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// wireQuestion is the service's question shape.
type wireQuestion struct {
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	Correct         string   `json:"correct"`
	Concept         string   `json:"concept"`
	Difficulty      int      `json:"difficulty"`
	TargetsWeakness bool     `json:"targets_weakness"`
}

func (w wireQuestion) toQuestion() questionbank.Question {
	return questionbank.Question{
		Text:            w.Question,
		Options:         w.Options,
		Correct:         w.Correct,
		Concept:         w.Concept,
		Difficulty:      w.Difficulty,
		TargetsWeakness: w.TargetsWeakness,
	}
}

type questionsResponse struct {
	Questions []wireQuestion `json:"questions"`
}

// InitialQuestions fetches the opening batch for a topic.
func (c *Client) InitialQuestions(ctx context.Context, topic string) ([]questionbank.Question, error) {
	var resp questionsResponse
	err := c.post(ctx, "/assessment/initial", map[string]any{"topic": topic}, &resp)
	if err != nil {
		return nil, err
	}
	return c.toQuestions("/assessment/initial", resp.Questions)
}

// AdaptiveQuestions fetches the follow-up batch shaped by initial results.
func (c *Client) AdaptiveQuestions(ctx context.Context, topic string, perf questionbank.LearnerSnapshot) ([]questionbank.Question, error) {
	body := map[string]any{
		"userId": c.cfg.UserID,
		"topic":  topic,
		"initialResults": map[string]any{
			"correct":       perf.CorrectCount,
			"total":         perf.TotalCount,
			"weak_concepts": perf.WeakConcepts,
		},
	}
	var resp questionsResponse
	if err := c.post(ctx, "/assessment/adaptive", body, &resp); err != nil {
		return nil, err
	}
	return c.toQuestions("/assessment/adaptive", resp.Questions)
}

func (c *Client) toQuestions(endpoint string, wire []wireQuestion) ([]questionbank.Question, error) {
	questions := make([]questionbank.Question, len(wire))
	for i, w := range wire {
		q := w.toQuestion()
		if q.Text == "" || len(q.Options) != 4 || q.Correct == "" {
			return nil, &ValidationError{
				Endpoint: endpoint,
				Err:      fmt.Errorf("question %d is structurally invalid", i),
			}
		}
		questions[i] = q
	}
	return questions, nil
}

// analysisResponse is the service's reduction of a completed
// assessment. Per-concept counters come back too but the local tally
// already carries them; only the score and path are folded in.
type analysisResponse struct {
	OverallScore       float64                  `json:"overallScore"`
	ConceptPerformance map[string]conceptCounts `json:"conceptPerformance"`
	LearningPath       []string                 `json:"learningPath"`
}

type conceptCounts struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
}

// CompleteAssessment submits both phases for server-side analysis.
func (c *Client) CompleteAssessment(ctx context.Context, topic string, initialAnswers, adaptiveAnswers map[int]string, allQuestions []questionbank.Question) (*scoring.Analysis, error) {
	wire := make([]wireQuestion, len(allQuestions))
	for i, q := range allQuestions {
		wire[i] = wireQuestion{
			Question:        q.Text,
			Options:         q.Options,
			Correct:         q.Correct,
			Concept:         q.Concept,
			Difficulty:      q.Difficulty,
			TargetsWeakness: q.TargetsWeakness,
		}
	}
	body := map[string]any{
		"userId":          c.cfg.UserID,
		"topic":           topic,
		"initialAnswers":  stringKeys(initialAnswers),
		"adaptiveAnswers": stringKeys(adaptiveAnswers),
		"allQuestions":    wire,
	}
	var resp analysisResponse
	if err := c.post(ctx, "/assessment/complete", body, &resp); err != nil {
		return nil, err
	}
	return &scoring.Analysis{
		OverallScore: resp.OverallScore,
		LearningPath: resp.LearningPath,
	}, nil
}

// lessonResponse is the service's lesson shape.
type lessonResponse struct {
	Topic    string `json:"topic"`
	Overview string `json:"overview"`
	Chunks   []struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		KeyPoint string `json:"key_point"`
	} `json:"chunks"`
	KeyTakeaways []string `json:"key_takeaways"`
}

// GenerateLesson requests lesson content for a topic.
func (c *Client) GenerateLesson(ctx context.Context, topic string) (*lessons.Lesson, error) {
	body := map[string]any{"topic": topic, "userId": c.cfg.UserID}
	var resp lessonResponse
	if err := c.post(ctx, "/lesson/generate", body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Chunks) == 0 {
		return nil, &ValidationError{
			Endpoint: "/lesson/generate",
			Err:      fmt.Errorf("lesson has no chunks"),
		}
	}
	lesson := &lessons.Lesson{
		Topic:        resp.Topic,
		Overview:     resp.Overview,
		KeyTakeaways: resp.KeyTakeaways,
	}
	for _, ch := range resp.Chunks {
		lesson.Segments = append(lesson.Segments, lessons.Segment{
			Title:    ch.Title,
			Body:     ch.Content,
			KeyPoint: ch.KeyPoint,
		})
	}
	return lesson, nil
}

// AnalyzeSentiment sends a reflection for analysis.
func (c *Client) AnalyzeSentiment(ctx context.Context, reflection, lessonContext string) (*sentiment.Reading, error) {
	body := map[string]any{
		"responseText":  reflection,
		"lessonContext": lessonContext,
	}
	var reading sentiment.Reading
	if err := c.post(ctx, "/sentiment/analyze", body, &reading); err != nil {
		return nil, err
	}
	return &reading, nil
}

// SaveSession persists a finished session. The service sends no
// meaningful response body.
func (c *Client) SaveSession(ctx context.Context, rec *report.SessionRecord) error {
	body := map[string]any{
		"userId":      c.cfg.UserID,
		"sessionData": rec,
	}
	return c.post(ctx, "/session/save", body, nil)
}

// post sends a JSON body and decodes the JSON response into out.
// Transport failures and non-2xx statuses are FetchErrors; undecodable
// bodies are ValidationErrors.
func (c *Client) post(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &FetchError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ValidationError{Endpoint: endpoint, Err: err}
	}
	return nil
}

func stringKeys(m map[int]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[fmt.Sprintf("%d", k)] = v
	}
	return out
}
