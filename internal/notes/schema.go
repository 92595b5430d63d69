package notes

import "github.com/oslerlabs/osler/internal/llm"

// NotesSchema defines the JSON schema for study note generation.
var NotesSchema = &llm.Schema{
	Name:        "study-notes",
	Description: "Study notes for a completed tutoring session, one section per subtopic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence overview of what was covered and how the session went",
			},
			"sections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Subtopic title, matching the session",
						},
						"key_points": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "3-6 high-yield facts for this subtopic",
						},
						"review": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Concepts the student should revisit, empty when none",
						},
					},
					"required":             []any{"title", "key_points", "review"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"summary", "sections"},
		"additionalProperties": false,
	},
}
