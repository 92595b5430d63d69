package store

import (
	"context"
	"fmt"

	"github.com/oslerlabs/osler/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetTopic(data.Topic).
		SetSubtopicsTotal(data.SubtopicsTotal).
		SetSubtopicsUnderstood(data.SubtopicsUnderstood).
		SetSubtopicsGap(data.SubtopicsGap).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendTurnEvent(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSubtopic(data.Subtopic).
		SetRole(data.Role).
		SetContent(data.Content).
		SetQuestionType(data.QuestionType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSubtopic(data.Subtopic).
		SetQuality(data.Quality).
		SetConfidence(data.Confidence).
		SetPhase(data.Phase).
		SetNextAction(data.NextAction).
		SetStruggling(data.Struggling)

	if len(data.MissingConcepts) > 0 {
		builder = builder.SetMissingConcepts(data.MissingConcepts)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendNotesEvent(ctx context.Context, data NotesEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.NotesEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetPath(data.Path).
		SetChars(data.Chars).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save notes event: %w", err)
	}
	return nil
}
