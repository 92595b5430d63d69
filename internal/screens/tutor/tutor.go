package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/oslerlabs/osler/internal/dialogue"
	"github.com/oslerlabs/osler/internal/notes"
	"github.com/oslerlabs/osler/internal/router"
	"github.com/oslerlabs/osler/internal/screen"
	"github.com/oslerlabs/osler/internal/screens/summary"
	"github.com/oslerlabs/osler/internal/store"
	"github.com/oslerlabs/osler/internal/tutoring"
	"github.com/oslerlabs/osler/internal/ui/components"
	"github.com/oslerlabs/osler/internal/ui/layout"
)

// TutorScreen runs the Socratic chat loop: the engine assesses each student
// answer deterministically, and the dialogue service (or a template
// fallback) phrases the tutor's side.
type TutorScreen struct {
	engine   *tutoring.Engine
	dialogue *dialogue.Service
	notes    *notes.Service
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo

	session   tutoring.Session
	input     components.TextInput
	waiting   bool
	started   time.Time
	errMsg    string
	quitConfirm bool
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)
var _ screen.StatusProvider = (*TutorScreen)(nil)

// New creates a TutorScreen for a topic with injected dependencies.
// dialogueSvc and notesSvc may be nil; template fallbacks take over.
func New(topic string, engine *tutoring.Engine, dialogueSvc *dialogue.Service, notesSvc *notes.Service,
	eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *TutorScreen {
	return &TutorScreen{
		engine:    engine,
		dialogue:  dialogueSvc,
		notes:     notesSvc,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		session:   tutoring.NewSession(topic),
		input:     components.NewTextInput("Type your answer...", 2000),
		started:   time.Now(),
		waiting:   true,
	}
}

func (t *TutorScreen) Title() string {
	return t.session.Topic
}

func (t *TutorScreen) HeaderStatus() string {
	total := len(t.session.Subtopics)
	if total == 0 {
		return ""
	}
	done := 0
	for i := range t.session.Subtopics {
		if t.session.Subtopics[i].Status.IsTerminal() {
			done++
		}
	}
	return fmt.Sprintf("%d/%d subtopics", done, total)
}

func (t *TutorScreen) KeyHints() []layout.KeyHint {
	if t.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if t.session.State == tutoring.StateCompletionChoice {
		return []layout.KeyHint{
			{Key: "N", Description: "Study notes"},
			{Key: "Q", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "End session"},
	}
}

func (t *TutorScreen) Init() tea.Cmd {
	return tea.Batch(t.decompose(), t.input.Init())
}

func (t *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case decompositionMsg:
		return t.handleDecomposition(msg)

	case turnReadyMsg:
		return t.handleTurnReady(msg)

	case notesReadyMsg:
		return t.handleNotesReady(msg)

	case sessionEndMsg:
		return t.handleSessionEnd(msg)

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	if !t.waiting && !t.quitConfirm {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}
	return t, nil
}

// decompose asks the dialogue service to break the topic into subtopics,
// falling back to the built-in topic profiles.
func (t *TutorScreen) decompose() tea.Cmd {
	topic := t.session.Topic
	svc := t.dialogue
	return func() tea.Msg {
		if svc == nil {
			return decompositionMsg{Decomposition: fallbackDecomposition(topic)}
		}
		dec, err := svc.Decompose(context.Background(), topic)
		if err != nil {
			return decompositionMsg{Decomposition: fallbackDecomposition(topic)}
		}
		if len(dec.Subtopics) == 0 {
			// Model did not comply with the schema; the profile knows better.
			return decompositionMsg{Decomposition: fallbackDecomposition(topic)}
		}
		return decompositionMsg{Decomposition: dec}
	}
}

func (t *TutorScreen) handleDecomposition(msg decompositionMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		t.errMsg = msg.Err.Error()
		return t, nil
	}

	t.session = t.session.SetSubtopics(msg.Decomposition.Subtopics)
	t.session = t.session.WithTutorMessage(msg.Decomposition.Introduction)
	t.waiting = false

	ctx := context.Background()
	_ = t.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      t.session.ID,
		Action:         "start",
		Topic:          t.session.Topic,
		SubtopicsTotal: len(t.session.Subtopics),
	})
	t.recordTutorTurn(msg.Decomposition.Introduction)

	return t, nil
}

func (t *TutorScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if t.errMsg != "" {
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if t.quitConfirm {
		switch key {
		case "y", "Y":
			t.quitConfirm = false
			return t, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			t.quitConfirm = false
			return t, nil
		}
		return t, nil
	}

	if t.session.State == tutoring.StateCompletionChoice {
		switch key {
		case "n", "N":
			if t.notes != nil {
				return t, func() tea.Msg { return sessionEndMsg{generateNotes: true} }
			}
			return t, func() tea.Msg { return sessionEndMsg{} }
		case "q", "Q", "enter", "esc":
			return t, func() tea.Msg { return sessionEndMsg{} }
		}
		return t, nil
	}

	switch key {
	case "esc":
		t.quitConfirm = true
		return t, nil
	case "enter":
		return t.submitAnswer()
	}

	if !t.waiting {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}
	return t, nil
}

// submitAnswer runs the deterministic assessment and queues the tutor's
// reply.
func (t *TutorScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if t.waiting {
		return t, nil
	}
	answer := strings.TrimSpace(t.input.Value())
	if answer == "" {
		return t, nil
	}
	t.input.Reset()

	sub := t.session.CurrentSubtopic()
	subtopicTitle := ""
	if sub != nil {
		subtopicTitle = sub.Title
	}

	next, result := t.engine.Assess(answer, t.session)
	t.session = next

	ctx := context.Background()
	_ = t.eventRepo.AppendTurnEvent(ctx, store.TurnEventData{
		SessionID: t.session.ID,
		Subtopic:  subtopicTitle,
		Role:      string(tutoring.RoleStudent),
		Content:   answer,
	})
	if result != nil {
		_ = t.eventRepo.AppendAssessmentEvent(ctx, store.AssessmentEventData{
			SessionID:       t.session.ID,
			Subtopic:        subtopicTitle,
			Quality:         string(result.Quality),
			Confidence:      result.Confidence,
			Phase:           string(result.CurrentPhase),
			NextAction:      string(result.NextAction),
			Struggling:      result.Struggling,
			MissingConcepts: result.StatusDelta.AcknowledgeGaps,
		})
	}

	t.waiting = true
	return t, t.nextTutorTurn(result != nil)
}

// nextTutorTurn decides what kind of message the tutor owes the student and
// generates it.
func (t *TutorScreen) nextTutorTurn(assessed bool) tea.Cmd {
	if !assessed {
		return t.requestTurn(dialogue.TurnRedirect, "")
	}

	if t.session.ShouldTransition {
		advanced := tutoring.AdvanceSubtopic(t.session)
		t.session = advanced
		if advanced.State == tutoring.StateCompletionChoice {
			return t.requestTurn(dialogue.TurnCompletion, "")
		}
		nextTitle := ""
		if sub := advanced.CurrentSubtopic(); sub != nil {
			nextTitle = sub.Title
		}
		return t.requestTurn(dialogue.TurnTransition, nextTitle)
	}

	switch t.session.State {
	case tutoring.StateExplaining:
		return t.requestTurn(dialogue.TurnExplain, "")
	case tutoring.StateChecking:
		return t.requestTurn(dialogue.TurnCheckin, "")
	default:
		return t.requestTurn(dialogue.TurnProbe, "")
	}
}

// requestTurn generates one tutor message asynchronously. Generation
// failures fall back to templates so the session never stalls.
func (t *TutorScreen) requestTurn(kind dialogue.TurnKind, nextSubtopic string) tea.Cmd {
	input := t.turnInput(kind, nextSubtopic)
	svc := t.dialogue
	return func() tea.Msg {
		if svc == nil {
			return turnReadyMsg{Kind: kind, Text: fallbackTurn(input)}
		}
		text, err := svc.NextTurn(context.Background(), input)
		if err != nil || strings.TrimSpace(text) == "" {
			return turnReadyMsg{Kind: kind, Text: fallbackTurn(input)}
		}
		return turnReadyMsg{Kind: kind, Text: text}
	}
}

func (t *TutorScreen) turnInput(kind dialogue.TurnKind, nextSubtopic string) dialogue.TurnInput {
	input := dialogue.TurnInput{
		Topic:        t.session.Topic,
		Kind:         kind,
		NextSubtopic: nextSubtopic,
	}

	if sub := t.session.CurrentSubtopic(); sub != nil {
		input.Subtopic = sub.Title
		input.Gaps = sub.Triaging.OutstandingGaps()
		req := t.engine.SubtopicRequirements(sub.Title, t.session.Topic)
		input.Nature = string(req.Nature)
	}

	for _, m := range t.session.Messages {
		input.History = append(input.History, dialogue.Turn{
			FromStudent: m.Role == tutoring.RoleStudent,
			Content:     m.Text,
		})
	}
	if t.session.LastAssessment != nil {
		input.AssessmentSummary = t.session.LastAssessment.Reasoning
	}
	return input
}

func (t *TutorScreen) handleTurnReady(msg turnReadyMsg) (screen.Screen, tea.Cmd) {
	t.session = t.session.WithTutorMessage(msg.Text)
	t.recordTutorTurn(msg.Text)

	// A remedial explanation is always followed by its check question.
	if msg.Kind == dialogue.TurnExplain {
		t.session = tutoring.NoteExplanationDelivered(t.session)
		return t, t.requestTurn(dialogue.TurnCheckin, "")
	}

	t.waiting = false
	t.saveSnapshot(context.Background())
	return t, nil
}

func (t *TutorScreen) handleSessionEnd(msg sessionEndMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()

	ended := t.session.State == tutoring.StateCompletionChoice
	t.session = tutoring.CompleteSession(t.session)

	understood, gaps := 0, 0
	for i := range t.session.Subtopics {
		switch t.session.Subtopics[i].Status {
		case tutoring.StatusUnderstood:
			understood++
		case tutoring.StatusGap:
			gaps++
		}
	}

	action := "end"
	if !ended {
		action = "abandon"
	}
	_ = t.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:           t.session.ID,
		Action:              action,
		Topic:               t.session.Topic,
		SubtopicsTotal:      len(t.session.Subtopics),
		SubtopicsUnderstood: understood,
		SubtopicsGap:        gaps,
		DurationSecs:        int(time.Since(t.started).Seconds()),
	})
	t.saveSnapshot(ctx)

	if msg.generateNotes && t.notes != nil {
		t.waiting = true
		return t, t.generateNotes()
	}

	return t, t.showSummary("")
}

// generateNotes builds study notes, writes the markdown next to the
// database, and records the event.
func (t *TutorScreen) generateNotes() tea.Cmd {
	svc := t.notes
	input := notes.Input{Topic: t.session.Topic}
	for i := range t.session.Subtopics {
		sub := &t.session.Subtopics[i]
		input.Subtopics = append(input.Subtopics, notes.SubtopicResult{
			Title:  sub.Title,
			Status: string(sub.Status),
			Gaps:   sub.Triaging.OutstandingGaps(),
		})
	}
	return func() tea.Msg {
		ctx := context.Background()
		generated, err := svc.Generate(ctx, input)
		if err != nil {
			return notesReadyMsg{Err: err}
		}

		path, err := notesPath(input.Topic)
		if err != nil {
			return notesReadyMsg{Err: err}
		}
		markdown := generated.Markdown()
		if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
			return notesReadyMsg{Err: fmt.Errorf("write notes: %w", err)}
		}
		return notesReadyMsg{Path: path, Chars: len(markdown)}
	}
}

func (t *TutorScreen) handleNotesReady(msg notesReadyMsg) (screen.Screen, tea.Cmd) {
	t.waiting = false
	if msg.Err != nil {
		// The session summary still shows; notes just failed.
		return t, t.showSummary("")
	}
	_ = t.eventRepo.AppendNotesEvent(context.Background(), store.NotesEventData{
		SessionID: t.session.ID,
		Topic:     t.session.Topic,
		Path:      msg.Path,
		Chars:     msg.Chars,
	})
	return t, t.showSummary(msg.Path)
}

func (t *TutorScreen) showSummary(notesPath string) tea.Cmd {
	result := summary.Result{
		Topic:     t.session.Topic,
		NotesPath: notesPath,
		Duration:  time.Since(t.started),
	}
	for i := range t.session.Subtopics {
		sub := &t.session.Subtopics[i]
		result.Subtopics = append(result.Subtopics, summary.SubtopicResult{
			Title:  sub.Title,
			Status: string(sub.Status),
			Gaps:   sub.Triaging.OutstandingGaps(),
		})
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}

// recordTutorTurn persists a tutor message to the event log.
func (t *TutorScreen) recordTutorTurn(text string) {
	subtopicTitle := ""
	if sub := t.session.CurrentSubtopic(); sub != nil {
		subtopicTitle = sub.Title
	}
	_ = t.eventRepo.AppendTurnEvent(context.Background(), store.TurnEventData{
		SessionID:    t.session.ID,
		Subtopic:     subtopicTitle,
		Role:         string(tutoring.RoleTutor),
		Content:      text,
		QuestionType: string(t.session.ActiveQuestionType),
	})
}

// saveSnapshot persists the session for resume.
func (t *TutorScreen) saveSnapshot(ctx context.Context) {
	data, err := json.Marshal(t.session)
	if err != nil {
		return
	}
	_ = t.snapRepo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:   1,
			SessionID: t.session.ID,
			Topic:     t.session.Topic,
			Session:   data,
		},
	})
	_ = t.snapRepo.Prune(ctx, 5)
}

// notesPath resolves where study notes are written: a notes directory next
// to the database.
func notesPath(topic string) (string, error) {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(filepath.Dir(dbPath), "notes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(topic), " ", "-"))
	name := fmt.Sprintf("%s-%s.md", slug, time.Now().Format("2006-01-02"))
	return filepath.Join(dir, name), nil
}
