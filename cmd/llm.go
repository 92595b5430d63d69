package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/oslerlabs/osler/internal/llm"
	"github.com/oslerlabs/osler/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM configuration and usage",
}

var llmPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Send a test request to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return err
			}
			cfg = discovered
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()

		provider, err := llm.NewProvider(ctx, cfg, nil)
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			System:    "You are a connectivity check. Reply with the single word: ok",
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "ping"}},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("ping %s: %w", cfg.Provider, err)
		}

		fmt.Printf("provider: %s\nmodel:    %s\nlatency:  %s\nreply:    %s\n",
			cfg.Provider, provider.ModelID(), time.Since(start).Round(time.Millisecond), resp.Text())
		return nil
	},
}

var llmConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		source := "environment (OSLER_*)"
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Printf("provider: %s (no API key found)\n", cfg.Provider)
				fmt.Println("Set OSLER_ANTHROPIC_API_KEY, OSLER_OPENAI_API_KEY, or OSLER_GEMINI_API_KEY.")
				return nil
			}
			cfg = discovered
			source = "discovered (provider's own key variable)"
		}

		fmt.Printf("provider: %s\n", cfg.Provider)
		fmt.Printf("source:   %s\n", source)
		switch cfg.Provider {
		case "anthropic":
			fmt.Printf("model:    %s\n", cfg.Anthropic.Model)
			fmt.Printf("api key:  %s\n", maskKey(cfg.Anthropic.APIKey))
		case "openai":
			fmt.Printf("model:    %s\n", cfg.OpenAI.Model)
			fmt.Printf("api key:  %s\n", maskKey(cfg.OpenAI.APIKey))
			if cfg.OpenAI.BaseURL != "" {
				fmt.Printf("base url: %s\n", cfg.OpenAI.BaseURL)
			}
		case "gemini":
			fmt.Printf("model:    %s\n", cfg.Gemini.Model)
			fmt.Printf("api key:  %s\n", maskKey(cfg.Gemini.APIKey))
		}
		fmt.Printf("timeout:  %s\n", cfg.Timeout)
		fmt.Printf("retries:  %d\n", cfg.Retry.MaxAttempts)
		return nil
	},
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "(set)"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

var llmUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show recorded request and token totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().Stats(context.Background())
		if err != nil {
			return fmt.Errorf("aggregate stats: %w", err)
		}

		if stats.LLMRequests == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}
		fmt.Printf("requests:      %d\n", stats.LLMRequests)
		fmt.Printf("input tokens:  %d\n", stats.LLMInputTokens)
		fmt.Printf("output tokens: %d\n", stats.LLMOutputTokens)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmPingCmd)
	llmCmd.AddCommand(llmConfigCmd)
	llmCmd.AddCommand(llmUsageCmd)
}
