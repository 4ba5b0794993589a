package questionbank

import "github.com/mkline/tutora/internal/llm"

// BatchSchema defines the JSON schema for LLM question batch responses.
// The batch is wrapped in an object because provider structured-output
// modes require an object at the top level.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of multiple-choice assessment questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options, each prefixed with its letter, e.g. \"A) ...\"",
						},
						"correct": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "C", "D"},
							"description": "The letter of the correct option",
						},
						"concept": map[string]any{
							"type":        "string",
							"description": "The single concept this question assesses, lowercase",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Self-assessed difficulty from 1 (easy) to 5 (hard)",
						},
						"targets_weakness": map[string]any{
							"type":        "boolean",
							"description": "True when the question targets a listed weak concept",
						},
					},
					"required":             []any{"question", "options", "correct", "concept", "difficulty", "targets_weakness"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
