package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:   1,
			SessionID: "sess-1",
			Topic:     "Preeclampsia",
			Session:   json.RawMessage(`{"id":"sess-1"}`),
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Topic != "Preeclampsia" {
		t.Errorf("data.topic = %q, want Preeclampsia", snap.Data.Topic)
	}
	if string(snap.Data.Session) != `{"id":"sess-1"}` {
		t.Errorf("data.session = %s", snap.Data.Session)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      "sess-1",
		Action:         "start",
		Topic:          "Preeclampsia",
		SubtopicsTotal: 3,
	}); err != nil {
		t.Fatalf("append session start: %v", err)
	}
	if err := repo.AppendTurnEvent(ctx, TurnEventData{
		SessionID:    "sess-1",
		Subtopic:     "Pathophysiology of preeclampsia",
		Role:         "tutor",
		Content:      "What causes preeclampsia?",
		QuestionType: "parent",
	}); err != nil {
		t.Fatalf("append turn: %v", err)
	}
	if err := repo.AppendAssessmentEvent(ctx, AssessmentEventData{
		SessionID:       "sess-1",
		Subtopic:        "Pathophysiology of preeclampsia",
		Quality:         "good",
		Confidence:      0.8,
		Phase:           "initial-assessment",
		NextAction:      "continue-probing",
		MissingConcepts: []string{"vasospasm"},
	}); err != nil {
		t.Fatalf("append assessment: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "tutor-dialogue",
		InputTokens:  120,
		OutputTokens: 45,
		Success:      true,
	}); err != nil {
		t.Fatalf("append llm request: %v", err)
	}
	if err := repo.AppendNotesEvent(ctx, NotesEventData{
		SessionID: "sess-1",
		Topic:     "Preeclampsia",
		Path:      "/tmp/notes.md",
		Chars:     1200,
	}); err != nil {
		t.Fatalf("append notes: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:           "sess-1",
		Action:              "end",
		Topic:               "Preeclampsia",
		SubtopicsTotal:      3,
		SubtopicsUnderstood: 2,
		SubtopicsGap:        1,
		DurationSecs:        900,
	}); err != nil {
		t.Fatalf("append session end: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.SessionsStarted != 1 || stats.SessionsCompleted != 1 {
		t.Errorf("sessions = %d started / %d completed, want 1/1",
			stats.SessionsStarted, stats.SessionsCompleted)
	}
	if stats.SubtopicsUnderstood != 2 || stats.SubtopicsGap != 1 {
		t.Errorf("subtopics = %d understood / %d gap, want 2/1",
			stats.SubtopicsUnderstood, stats.SubtopicsGap)
	}
	if stats.AnswersAssessed != 1 || stats.QualityCounts["good"] != 1 {
		t.Errorf("assessments = %d, quality %v", stats.AnswersAssessed, stats.QualityCounts)
	}
	if stats.LLMRequests != 1 || stats.LLMInputTokens != 120 || stats.LLMOutputTokens != 45 {
		t.Errorf("llm = %d requests, %d in, %d out",
			stats.LLMRequests, stats.LLMInputTokens, stats.LLMOutputTokens)
	}
	if stats.TopicCounts["Preeclampsia"] != 1 {
		t.Errorf("topic counts = %v", stats.TopicCounts)
	}
}

func TestEventSequenceIsGlobal(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendTurnEvent(ctx, TurnEventData{
		SessionID: "sess-1", Role: "tutor", Content: "Q1",
	}); err != nil {
		t.Fatalf("append turn: %v", err)
	}
	if err := repo.AppendAssessmentEvent(ctx, AssessmentEventData{
		SessionID: "sess-1", Subtopic: "s", Quality: "partial",
	}); err != nil {
		t.Fatalf("append assessment: %v", err)
	}

	turn, err := s.Client().TurnEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query turn: %v", err)
	}
	assessment, err := s.Client().AssessmentEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query assessment: %v", err)
	}
	if assessment.Sequence <= turn.Sequence {
		t.Errorf("assessment sequence %d should follow turn sequence %d",
			assessment.Sequence, turn.Sequence)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
