package tutor

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/oslerlabs/osler/internal/router"
	"github.com/oslerlabs/osler/internal/screens/summary"
	"github.com/oslerlabs/osler/internal/store"
	"github.com/oslerlabs/osler/internal/tutoring"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents    []store.SessionEventData
	turnEvents       []store.TurnEventData
	assessmentEvents []store.AssessmentEventData
	notesEvents      []store.NotesEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendTurnEvent(_ context.Context, data store.TurnEventData) error {
	m.turnEvents = append(m.turnEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAssessmentEvent(_ context.Context, data store.AssessmentEventData) error {
	m.assessmentEvents = append(m.assessmentEvents, data)
	return nil
}
func (m *mockEventRepo) AppendNotesEvent(_ context.Context, data store.NotesEventData) error {
	m.notesEvents = append(m.notesEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) Stats(_ context.Context) (*store.Stats, error) {
	return &store.Stats{}, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	saved []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }

// newTestScreen starts a tutor screen without a dialogue service, so every
// tutor message comes from the template fallback.
func newTestScreen(t *testing.T) (*TutorScreen, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	scr := New("Preeclampsia", tutoring.NewEngine(), nil, nil, events, snaps)

	cmd := scr.decompose()
	msg := cmd()
	dec, ok := msg.(decompositionMsg)
	if !ok {
		t.Fatalf("decompose returned %T, want decompositionMsg", msg)
	}
	next, _ := scr.Update(dec)
	return next.(*TutorScreen), events, snaps
}

// send types an answer and presses enter, running the resulting tutor turn
// command to completion.
func send(t *testing.T, scr *TutorScreen, answer string) *TutorScreen {
	t.Helper()
	scr.input.Model.SetValue(answer)
	next, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr = next.(*TutorScreen)
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		if _, ok := msg.(router.ReplaceScreenMsg); ok {
			break
		}
		next, cmd = scr.Update(msg)
		scr = next.(*TutorScreen)
	}
	return scr
}

func TestInit_FallbackDecompositionSeedsSession(t *testing.T) {
	scr, events, _ := newTestScreen(t)

	if len(scr.session.Subtopics) == 0 {
		t.Fatal("expected subtopics after decomposition")
	}
	if scr.waiting {
		t.Error("screen should accept input after decomposition")
	}
	if len(events.sessionEvents) != 1 || events.sessionEvents[0].Action != "start" {
		t.Fatalf("expected one start event, got %+v", events.sessionEvents)
	}
	if events.sessionEvents[0].SubtopicsTotal != len(scr.session.Subtopics) {
		t.Error("start event should record the subtopic count")
	}
	if len(events.turnEvents) != 1 || events.turnEvents[0].Role != "tutor" {
		t.Errorf("expected the introduction recorded as a tutor turn, got %+v", events.turnEvents)
	}
}

func TestSubmit_RecordsTurnAndAssessment(t *testing.T) {
	scr, events, _ := newTestScreen(t)

	scr = send(t, scr, "Preeclampsia occurs due to placental dysfunction causing endothelial dysfunction and vasospasm, leading to hypertension and proteinuria.")

	var studentTurns int
	for _, e := range events.turnEvents {
		if e.Role == "student" {
			studentTurns++
		}
	}
	if studentTurns != 1 {
		t.Errorf("got %d student turn events, want 1", studentTurns)
	}
	if len(events.assessmentEvents) != 1 {
		t.Fatalf("got %d assessment events, want 1", len(events.assessmentEvents))
	}
	if events.assessmentEvents[0].Quality == "" {
		t.Error("assessment event missing quality")
	}
	if scr.waiting {
		t.Error("screen should accept input after the tutor reply")
	}
}

func TestSubmit_ConversationalMessageSkipsAssessment(t *testing.T) {
	scr, events, _ := newTestScreen(t)

	scr = send(t, scr, "how does this work? what am i supposed to do here")

	if len(events.assessmentEvents) != 0 {
		t.Errorf("conversational turn must not be assessed, got %d events", len(events.assessmentEvents))
	}
	last := scr.session.Messages[len(scr.session.Messages)-1]
	if last.Role != tutoring.RoleTutor {
		t.Error("tutor should still reply to a conversational turn")
	}
}

func TestSubmit_EmptyInputIgnored(t *testing.T) {
	scr, events, _ := newTestScreen(t)
	before := len(events.turnEvents)

	next, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr = next.(*TutorScreen)

	if cmd != nil {
		t.Error("empty input should produce no command")
	}
	if len(events.turnEvents) != before {
		t.Error("empty input should record nothing")
	}
}

func TestGivingUp_TriggersExplanationThenCheck(t *testing.T) {
	scr, events, _ := newTestScreen(t)

	scr = send(t, scr, "I don't know")

	if scr.session.State != tutoring.StateChecking {
		t.Errorf("state = %q, want %q after explanation", scr.session.State, tutoring.StateChecking)
	}

	// Explanation plus its check question are both tutor turns.
	var tutorTurns int
	for _, e := range events.turnEvents {
		if e.Role == "tutor" {
			tutorTurns++
		}
	}
	if tutorTurns < 3 {
		t.Errorf("got %d tutor turns, want intro + explanation + check", tutorTurns)
	}
	if len(events.assessmentEvents) != 1 || !events.assessmentEvents[0].Struggling {
		t.Errorf("giving up should record a struggling assessment, got %+v", events.assessmentEvents)
	}
}

func TestEscape_ConfirmThenAbandon(t *testing.T) {
	scr, events, snaps := newTestScreen(t)

	next, _ := scr.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	scr = next.(*TutorScreen)
	if !scr.quitConfirm {
		t.Fatal("esc should ask for confirmation")
	}

	// N keeps the session alive.
	next, _ = scr.Update(tea.KeyPressMsg{Code: 'n'})
	scr = next.(*TutorScreen)
	if scr.quitConfirm {
		t.Fatal("n should cancel the quit confirmation")
	}

	next, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	scr = next.(*TutorScreen)
	next, cmd := scr.Update(tea.KeyPressMsg{Code: 'y'})
	scr = next.(*TutorScreen)
	if cmd == nil {
		t.Fatal("y should produce the end command")
	}
	msg := cmd()
	next, cmd = scr.Update(msg)
	scr = next.(*TutorScreen)

	last := events.sessionEvents[len(events.sessionEvents)-1]
	if last.Action != "abandon" {
		t.Errorf("action = %q, want abandon", last.Action)
	}
	if len(snaps.saved) == 0 {
		t.Error("ending should save a snapshot")
	}

	if cmd == nil {
		t.Fatal("expected a navigation command after ending")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := rep.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", rep.Screen)
	}
}

func TestView_ShowsSubtopicsAndTranscript(t *testing.T) {
	scr, _, _ := newTestScreen(t)

	view := scr.View(100, 30)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	sub := scr.session.Subtopics[0].Title
	if !strings.Contains(view, sub) {
		t.Errorf("view should name the first subtopic %q", sub)
	}
}

func TestHeaderStatus_CountsTerminalSubtopics(t *testing.T) {
	scr, _, _ := newTestScreen(t)

	scr.session.Subtopics[0].Status = tutoring.StatusUnderstood
	status := scr.HeaderStatus()
	want := "1/"
	if !strings.HasPrefix(status, want) {
		t.Errorf("HeaderStatus = %q, want prefix %q", status, want)
	}
}

func TestCompletionChoice_FinishGoesToSummary(t *testing.T) {
	scr, events, _ := newTestScreen(t)

	// Force the state machine to the completion choice.
	for i := range scr.session.Subtopics {
		scr.session.Subtopics[i].Status = tutoring.StatusUnderstood
	}
	scr.session.State = tutoring.StateCompletionChoice

	next, cmd := scr.Update(tea.KeyPressMsg{Code: 'q'})
	scr = next.(*TutorScreen)
	if cmd == nil {
		t.Fatal("q should produce the end command")
	}
	next, cmd = scr.Update(cmd())
	scr = next.(*TutorScreen)

	last := events.sessionEvents[len(events.sessionEvents)-1]
	if last.Action != "end" {
		t.Errorf("action = %q, want end", last.Action)
	}
	if last.SubtopicsUnderstood != len(scr.session.Subtopics) {
		t.Errorf("understood = %d, want %d", last.SubtopicsUnderstood, len(scr.session.Subtopics))
	}
	if cmd == nil {
		t.Fatal("expected navigation to the summary")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the summary screen")
	}
}
