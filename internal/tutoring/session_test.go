package tutoring

import (
	"testing"

	"github.com/oslerlabs/osler/internal/assess"
)

func TestNewSession(t *testing.T) {
	s := NewSession("Preeclampsia")
	if s.ID == "" {
		t.Error("session must get an id")
	}
	if s.State != StateAssessing {
		t.Errorf("got state %q, want assessing", s.State)
	}
	if s.CurrentSubtopic() != nil {
		t.Error("no subtopic should be active before decomposition")
	}
}

func TestSetSubtopics(t *testing.T) {
	s := NewSession("Preeclampsia").SetSubtopics([]string{
		"Preeclampsia pathophysiology", "", "  Preeclampsia management  ",
	})
	if len(s.Subtopics) != 2 {
		t.Fatalf("got %d subtopics, want 2 (blank dropped)", len(s.Subtopics))
	}
	if s.Subtopics[0].Status != StatusUnassessed {
		t.Errorf("got status %q, want unassessed", s.Subtopics[0].Status)
	}
	if s.CurrentSubtopic() == nil || s.CurrentSubtopic().Title != "Preeclampsia pathophysiology" {
		t.Error("first subtopic should be active")
	}
}

func TestLastTutorMessage(t *testing.T) {
	s := NewSession("Preeclampsia").SetSubtopics([]string{"Preeclampsia pathophysiology"})
	if s.LastTutorMessage() != "" {
		t.Error("no tutor message yet")
	}
	s = s.WithTutorMessage("What drives the hypertension?")
	s = s.WithStudentMessage("vasospasm")
	if got := s.LastTutorMessage(); got != "What drives the hypertension?" {
		t.Errorf("got %q", got)
	}
}

func TestClone_Independent(t *testing.T) {
	s := NewSession("Preeclampsia").SetSubtopics([]string{"Preeclampsia pathophysiology"})
	s.Subtopics[0].Triaging = s.Subtopics[0].Triaging.Apply(assess.StatusDelta{
		AcknowledgeGaps: []string{"vasospasm"},
	})

	c := s.Clone()
	c.Subtopics[0].QuestionsUsed = 3
	c.Subtopics[0].Messages = append(c.Subtopics[0].Messages, Message{Role: RoleTutor, Text: "q"})
	c.Messages = append(c.Messages, Message{Role: RoleTutor, Text: "q"})

	if s.Subtopics[0].QuestionsUsed != 0 {
		t.Error("clone mutation leaked into original subtopic")
	}
	if len(s.Messages) != 0 || len(s.Subtopics[0].Messages) != 0 {
		t.Error("clone mutation leaked into original history")
	}
}

func TestWithMessages_DoNotMutateReceiver(t *testing.T) {
	s := NewSession("Preeclampsia").SetSubtopics([]string{"Preeclampsia pathophysiology"})
	_ = s.WithStudentMessage("hello")
	if len(s.Messages) != 0 {
		t.Error("WithStudentMessage mutated its receiver")
	}
}

func TestAllSubtopicsTerminal(t *testing.T) {
	s := NewSession("Preeclampsia").SetSubtopics([]string{"a", "b"})
	if s.AllSubtopicsTerminal() {
		t.Error("unassessed subtopics are not terminal")
	}
	s.Subtopics[0].Status = StatusUnderstood
	s.Subtopics[1].Status = StatusGap
	if !s.AllSubtopicsTerminal() {
		t.Error("understood + gap should be all-terminal")
	}
}
