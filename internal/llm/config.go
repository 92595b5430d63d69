package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the dialogue model provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic settings.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI settings. BaseURL supports OpenRouter and other
// OpenAI-compatible endpoints.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini settings.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig controls backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// ConfigFromEnv reads OSLER_* environment variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("OSLER_LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("OSLER_ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	}
	if v := os.Getenv("OSLER_ANTHROPIC_MODEL"); v != "" {
		cfg.Anthropic.Model = v
	}
	if v := os.Getenv("OSLER_OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OSLER_OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("OSLER_OPENAI_BASE_URL"); v != "" {
		cfg.OpenAI.BaseURL = v
	}
	if v := os.Getenv("OSLER_GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("OSLER_GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	return cfg
}

// DiscoverConfig probes the providers' conventional API key variables when
// no OSLER_* configuration exists, so `osler` works out of the box for
// anyone with a key already exported.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	return Config{}, false
}

// Validate checks the selected provider has its key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("OSLER_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OSLER_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("OSLER_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
