package lessons

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/mkline/tutora/internal/llm"
	"github.com/mkline/tutora/internal/rag"
	"github.com/mkline/tutora/internal/topics"
)

// Service generates lessons asynchronously.
type Service struct {
	provider llm.Provider
	corpus   *rag.Corpus
	cfg      Config
	remote   GenerateFunc

	mu      sync.Mutex
	pending *Lesson
	err     error
	ready   bool
}

// NewService creates a lesson generation service. A nil corpus
// disables retrieval grounding.
func NewService(provider llm.Provider, corpus *rag.Corpus, cfg Config) *Service {
	if corpus == nil {
		corpus = rag.Empty()
	}
	return &Service{provider: provider, corpus: corpus, cfg: cfg}
}

// GenerateFunc produces a lesson for a topic display name. The backend
// client's lesson endpoint satisfies it.
type GenerateFunc func(ctx context.Context, topic string) (*Lesson, error)

// NewRemoteService creates a lesson service that delegates generation
// to the given function instead of calling an LLM directly.
func NewRemoteService(generate GenerateFunc) *Service {
	return &Service{remote: generate, corpus: rag.Empty()}
}

// RequestLesson starts async lesson generation. Only one lesson is
// in-flight at a time; new requests replace pending ones. Generation
// failure yields the deterministic fallback lesson so the learner is
// never stuck.
func (s *Service) RequestLesson(ctx context.Context, input GenerateInput) {
	go func() {
		lesson, err := s.generateAny(ctx, input)
		if err != nil {
			lesson = FallbackLesson(topics.DisplayName(input.Topic))
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = lesson
		s.err = err
		s.ready = true
	}()
}

// ConsumeLesson returns the pending lesson if one is ready, along with
// the generation error when the lesson is the fallback.
// Returns (nil, nil, false) if no lesson is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeLesson() (*Lesson, error, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, nil, false
	}
	lesson, err := s.pending, s.err
	s.pending = nil
	s.err = nil
	s.ready = false
	return lesson, err, true
}

// lessonOutput is the raw LLM response before conversion.
type lessonOutput struct {
	Topic        string        `json:"topic"`
	Overview     string        `json:"overview"`
	Chunks       []chunkOutput `json:"chunks"`
	KeyTakeaways []string      `json:"key_takeaways"`
}

type chunkOutput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	KeyPoint string `json:"key_point"`
}

func (s *Service) generateAny(ctx context.Context, input GenerateInput) (*Lesson, error) {
	if s.remote != nil {
		return s.remote(ctx, topics.DisplayName(input.Topic))
	}
	return s.Generate(ctx, input)
}

// Generate produces a lesson synchronously. Most callers want
// RequestLesson/ConsumeLesson; this is the underlying call.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, "lesson")

	query := input.Topic + " " + strings.Join(input.Gaps, " ")
	contextBlock := rag.ContextBlock(s.corpus.FindRelevant(query, s.cfg.ContextChunks))

	display := topics.DisplayName(input.Topic)
	userMsg := buildLessonUserMessage(GenerateInput{
		Topic:      display,
		Competency: input.Competency,
		Gaps:       input.Gaps,
	}, contextBlock)

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}
	if len(out.Chunks) == 0 {
		return nil, fmt.Errorf("lesson has no segments")
	}

	lesson := &Lesson{
		Topic:        display,
		Overview:     out.Overview,
		KeyTakeaways: out.KeyTakeaways,
	}
	for _, c := range out.Chunks {
		lesson.Segments = append(lesson.Segments, Segment{
			Title:    c.Title,
			Body:     c.Content,
			KeyPoint: c.KeyPoint,
		})
	}
	return lesson, nil
}
