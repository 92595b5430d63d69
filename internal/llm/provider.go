// Package llm abstracts the hosted language model used for dialogue
// generation. The tutoring engine never calls this package — scoring is
// deterministic — but the dialogue and notes services do, and they need
// structured JSON back. Providers validate schema-bound responses before
// returning them.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction over hosted models.
type Provider interface {
	// Generate sends a request and returns the model's output. When the
	// request carries a Schema, Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Role is a conversation role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Schema asks the provider for structured output.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name        string
	Description string
	// Definition is a JSON Schema document as a map.
	Definition map[string]any
}

// Request describes one generation call.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema // nil for free-text output
	MaxTokens   int
	Temperature float64
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, otherwise
	// the raw text.
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string // "end" or "max_tokens"
}

// Text returns the response content as plain text, stripping a JSON string
// wrapper when present.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}
