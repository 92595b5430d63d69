package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`"ok"`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "ok" {
		t.Errorf("got %q, want ok", resp.Text())
	}
	if len(mock.Calls) != 2 {
		t.Errorf("got %d calls, want 2", len(mock.Calls))
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("got %v, want ErrProviderUnavailable", err)
	}
	if len(mock.Calls) != 3 {
		t.Errorf("got %d calls, want 3", len(mock.Calls))
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: context.Canceled})
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("got %d calls, want 1", len(mock.Calls))
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json again")}},
		MockResponse{Content: json.RawMessage(`"never reached"`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
	if len(mock.Calls) != 2 {
		t.Errorf("got %d calls, want 2 (one retry for invalid response)", len(mock.Calls))
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("got %v, want ErrMaxTokensExceeded", err)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("got %d calls, want 1", len(mock.Calls))
	}
}
