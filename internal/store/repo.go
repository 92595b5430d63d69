package store

import (
	"context"
	"encoding/json"
	"time"
)

// SnapshotData captures a full tutoring session for resume.
type SnapshotData struct {
	Version   int    `json:"version"`
	SessionID string `json:"session_id"`
	Topic     string `json:"topic"`
	// Session is the serialized tutoring.Session. Kept opaque here so the
	// store does not depend on the engine's types.
	Session json.RawMessage `json:"session"`
}

// Snapshot represents a point-in-time capture of a session.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages session snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID           string
	Action              string // start, end, abandon
	Topic               string
	SubtopicsTotal      int
	SubtopicsUnderstood int
	SubtopicsGap        int
	DurationSecs        int
}

// TurnEventData captures one conversation turn.
type TurnEventData struct {
	SessionID    string
	Subtopic     string
	Role         string // tutor or student
	Content      string
	QuestionType string
}

// AssessmentEventData captures the engine's verdict on one answer.
type AssessmentEventData struct {
	SessionID       string
	Subtopic        string
	Quality         string
	Confidence      float64
	Phase           string
	NextAction      string
	Struggling      bool
	MissingConcepts []string
}

// NotesEventData captures study note generation.
type NotesEventData struct {
	SessionID string
	Topic     string
	Path      string
	Chars     int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendTurnEvent records a conversation turn.
	AppendTurnEvent(ctx context.Context, data TurnEventData) error

	// AppendAssessmentEvent records an answer assessment.
	AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error

	// AppendNotesEvent records study note generation.
	AppendNotesEvent(ctx context.Context, data NotesEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Stats aggregates the event log for the stats command.
	Stats(ctx context.Context) (*Stats, error)
}
