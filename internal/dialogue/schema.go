package dialogue

import "github.com/oslerlabs/osler/internal/llm"

// DecompositionSchema defines the JSON schema for the first-turn topic
// decomposition.
var DecompositionSchema = &llm.Schema{
	Name:        "topic-decomposition",
	Description: "A clinical topic broken into teachable subtopics with an introduction",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"introduction": map[string]any{
				"type":        "string",
				"description": "2-3 sentence orientation to the topic, ending with the first question",
			},
			"subtopics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":        "string",
					"description": "Subtopic title (2-6 words)",
				},
				"minItems":    2,
				"maxItems":    6,
				"description": "Subtopics ordered from mechanism toward management",
			},
		},
		"required":             []any{"introduction", "subtopics"},
		"additionalProperties": false,
	},
}
