package lessons

import "github.com/mkline/tutora/internal/llm"

// LessonSchema defines the JSON schema for lesson generation.
var LessonSchema = &llm.Schema{
	Name:        "topic-lesson",
	Description: "A segmented lesson on one topic with overview and key takeaways",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "The topic this lesson covers",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "Brief overview of the lesson (2-3 sentences)",
			},
			"chunks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short segment title (3-8 words)",
						},
						"content": map[string]any{
							"type":        "string",
							"description": "Segment body, digestible in 2-3 minutes of reading",
						},
						"key_point": map[string]any{
							"type":        "string",
							"description": "The one thing to remember from this segment",
						},
					},
					"required":             []any{"title", "content", "key_point"},
					"additionalProperties": false,
				},
				"description": "Exactly 4 learning segments in teaching order",
			},
			"key_takeaways": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 takeaways summarizing the lesson",
			},
		},
		"required":             []any{"topic", "overview", "chunks", "key_takeaways"},
		"additionalProperties": false,
	},
}
