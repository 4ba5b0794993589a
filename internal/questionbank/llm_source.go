package questionbank

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkline/tutora/internal/llm"
	"github.com/mkline/tutora/internal/rag"
	"github.com/mkline/tutora/internal/topics"
)

// Config controls the behavior of the LLMSource.
type Config struct {
	// MaxTokens is the token budget for a batch response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// ContextChunks is how many retrieved course chunks to ground
	// each prompt with.
	ContextChunks int
}

// DefaultConfig returns recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     2048,
		Temperature:   0.7,
		ContextChunks: 3,
	}
}

// LLMSource implements Source using an LLM provider, grounding prompts
// in retrieved course material when a corpus is available.
type LLMSource struct {
	provider llm.Provider
	corpus   *rag.Corpus
	config   Config
}

// New creates an LLMSource. A nil corpus disables retrieval grounding.
func New(provider llm.Provider, corpus *rag.Corpus, cfg Config) *LLMSource {
	if corpus == nil {
		corpus = rag.Empty()
	}
	return &LLMSource{provider: provider, corpus: corpus, config: cfg}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	Correct         string   `json:"correct"`
	Concept         string   `json:"concept"`
	Difficulty      int      `json:"difficulty"`
	TargetsWeakness bool     `json:"targets_weakness"`
}

func (s *LLMSource) InitialQuestions(ctx context.Context, topic string) ([]Question, error) {
	var concepts []string
	if t, err := topics.Get(topic); err == nil {
		concepts = t.Concepts
	}
	msg := buildInitialMessage(topics.DisplayName(topic), concepts, s.contextFor(topic))
	return s.generate(ctx, msg)
}

func (s *LLMSource) AdaptiveQuestions(ctx context.Context, topic string, perf LearnerSnapshot) ([]Question, error) {
	query := topic
	if len(perf.WeakConcepts) > 0 {
		for _, c := range perf.WeakConcepts {
			query += " " + c
		}
	}
	msg := buildAdaptiveMessage(topics.DisplayName(topic), perf, s.contextFor(query))
	return s.generate(ctx, msg)
}

func (s *LLMSource) contextFor(query string) string {
	return rag.ContextBlock(s.corpus.FindRelevant(query, s.config.ContextChunks))
}

func (s *LLMSource) generate(ctx context.Context, userMsg string) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      BatchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse question batch: %w", err)
	}

	questions := make([]Question, len(raw.Questions))
	for i, q := range raw.Questions {
		questions[i] = Question{
			Text:            q.Question,
			Options:         q.Options,
			Correct:         q.Correct,
			Concept:         q.Concept,
			Difficulty:      q.Difficulty,
			TargetsWeakness: q.TargetsWeakness,
		}
	}

	if err := validateBatch(questions); err != nil {
		return nil, err
	}
	return questions, nil
}
