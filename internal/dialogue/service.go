package dialogue

import (
	"context"
	"fmt"

	"github.com/oslerlabs/osler/internal/llm"
)

// Service phrases tutor turns through an llm.Provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a dialogue service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Decompose breaks a topic into subtopics and an introduction. The response
// is schema-bound, but extraction still tolerates fenced or prose-wrapped
// output; a decomposition with no subtopics means the model did not comply
// and the caller should fall back to the built-in topic profile.
func (s *Service) Decompose(ctx context.Context, topic string) (*Decomposition, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeDecomposition)

	req := llm.Request{
		System: decomposeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDecomposeUserMessage(topic)},
		},
		Schema:      DecompositionSchema,
		MaxTokens:   s.cfg.DecomposeMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("topic decomposition: %w", err)
	}

	return ExtractDecomposition(topic, resp.Content), nil
}

// NextTurn phrases the next tutor message for the given turn kind.
func (s *Service) NextTurn(ctx context.Context, input TurnInput) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeDialogue)

	req := llm.Request{
		System: turnSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTurnUserMessage(input)},
		},
		MaxTokens:   s.cfg.TurnMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("dialogue turn (%s): %w", input.Kind, err)
	}
	return resp.Text(), nil
}
