package store

import (
	"context"
	"fmt"
)

// Stats aggregates the event log for reporting.
type Stats struct {
	SessionsStarted     int
	SessionsCompleted   int
	SubtopicsUnderstood int
	SubtopicsGap        int
	TopicCounts         map[string]int

	AnswersAssessed int
	QualityCounts   map[string]int

	LLMRequests     int
	LLMInputTokens  int
	LLMOutputTokens int
}

func (r *eventRepo) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		TopicCounts:   make(map[string]int),
		QualityCounts: make(map[string]int),
	}

	sessions, err := r.client.SessionEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	for _, e := range sessions {
		switch e.Action {
		case "start":
			stats.SessionsStarted++
			stats.TopicCounts[e.Topic]++
		case "end":
			stats.SessionsCompleted++
			stats.SubtopicsUnderstood += e.SubtopicsUnderstood
			stats.SubtopicsGap += e.SubtopicsGap
		}
	}

	assessments, err := r.client.AssessmentEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessment events: %w", err)
	}
	stats.AnswersAssessed = len(assessments)
	for _, e := range assessments {
		stats.QualityCounts[e.Quality]++
	}

	llmEvents, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}
	stats.LLMRequests = len(llmEvents)
	for _, e := range llmEvents {
		stats.LLMInputTokens += e.InputTokens
		stats.LLMOutputTokens += e.OutputTokens
	}

	return stats, nil
}
