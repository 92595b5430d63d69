package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/oslerlabs/osler/internal/store"
)

// LoggingProvider records every generation call as an event. Logging
// failures never fail the request.
type LoggingProvider struct {
	inner Provider
	name  string
	repo  store.EventRepo
}

// WithLogging wraps a Provider with event logging. name is the provider
// family (anthropic, openai, gemini) recorded on each event.
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, name: name, repo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if logErr := l.repo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
