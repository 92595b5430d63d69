package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name: "validate_test_reply",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{"type": "string"},
			"count":   map[string]any{"type": "integer"},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"message": "hello", "count": 2}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"count": 2}`)
	err := validateResponse(testSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"message": `)
	err := validateResponse(testSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"message": 42}`)
	err := validateResponse(testSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OSLER_LLM_PROVIDER", "openai")
	t.Setenv("OSLER_OPENAI_API_KEY", "sk-test")
	t.Setenv("OSLER_OPENAI_MODEL", "gpt-test")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("got provider %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("got key %q, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-test" {
		t.Errorf("got model %q, want gpt-test", cfg.OpenAI.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("defaults should survive env overrides, got MaxAttempts %d", cfg.Retry.MaxAttempts)
	}
}
