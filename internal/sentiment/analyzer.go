package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/mkline/tutora/internal/llm"
)

// AnalyzerConfig holds configuration for the LLM analyzer.
type AnalyzerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultAnalyzerConfig returns sensible defaults. Temperature is kept
// low; this is classification, not generation.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxTokens:   256,
		Temperature: 0.3,
	}
}

// Analyzer reads a learner's free-text reflection and produces a
// sentiment Reading.
type Analyzer struct {
	provider llm.Provider
	cfg      AnalyzerConfig
}

// NewAnalyzer creates an LLM-backed analyzer.
func NewAnalyzer(provider llm.Provider, cfg AnalyzerConfig) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg}
}

// ReadingSchema defines the JSON schema for analyzer responses.
var ReadingSchema = &llm.Schema{
	Name:        "sentiment-reading",
	Description: "Emotional state and understanding analysis of a learner reflection",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"confusion_level": map[string]any{
				"type": "number", "minimum": 0, "maximum": 1,
				"description": "How confused the learner sounds, 0 = none, 1 = maximum",
			},
			"confidence_level": map[string]any{
				"type": "number", "minimum": 0, "maximum": 1,
				"description": "How confident the learner sounds",
			},
			"engagement_level": map[string]any{
				"type": "number", "minimum": 0, "maximum": 1,
				"description": "How engaged the learner sounds",
			},
			"understanding": map[string]any{
				"type": "string",
				"enum": []any{"poor", "fair", "good", "excellent"},
			},
			"suggestion": map[string]any{
				"type":        "string",
				"description": "One brief teaching adjustment suggestion",
			},
			"should_proceed": map[string]any{
				"type":        "boolean",
				"description": "Whether to move to the next segment or review this one",
			},
		},
		"required": []any{
			"confusion_level", "confidence_level", "engagement_level",
			"understanding", "suggestion", "should_proceed",
		},
		"additionalProperties": false,
	},
}

const analyzerSystemPrompt = `You are an AI literacy tutor reading a learner's reflection on a lesson segment.

Instructions:
- Judge the learner's emotional state and understanding from their own words, not from what the segment taught.
- Short or vague reflections usually indicate lower engagement, not high confidence.
- Keep the suggestion to one sentence, addressed to the tutor.
- should_proceed is false when the learner should review this segment before advancing.`

var analyzerUserTemplate = template.Must(template.New("reflection").Parse(`Learner reflection: "{{.Reflection}}"
{{if .LessonContext}}
Segment being reflected on:
{{.LessonContext}}
{{end}}`))

// Analyze produces a Reading from a reflection. LessonContext is the
// segment text the learner is reacting to; it may be empty.
func (a *Analyzer) Analyze(ctx context.Context, reflection, lessonContext string) (*Reading, error) {
	ctx = llm.WithPurpose(ctx, "sentiment")

	var buf bytes.Buffer
	err := analyzerUserTemplate.Execute(&buf, struct {
		Reflection    string
		LessonContext string
	}{reflection, lessonContext})
	if err != nil {
		return nil, fmt.Errorf("build sentiment prompt: %w", err)
	}

	req := llm.Request{
		System: analyzerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:      ReadingSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("sentiment analysis failed: %w", err)
	}

	var reading Reading
	if err := json.Unmarshal(resp.Content, &reading); err != nil {
		return nil, fmt.Errorf("failed to parse sentiment response: %w", err)
	}
	return &reading, nil
}
