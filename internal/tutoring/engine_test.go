package tutoring

import (
	"reflect"
	"testing"

	"github.com/oslerlabs/osler/internal/assess"
)

const strongAnswer = "Preeclampsia occurs due to placental dysfunction causing endothelial dysfunction and vasospasm, leading to hypertension and proteinuria; managed with magnesium sulfate."

func newTestSession() Session {
	s := NewSession("Preeclampsia").SetSubtopics([]string{
		"Preeclampsia pathophysiology",
		"Preeclampsia management",
	})
	return s.WithTutorMessage("What is the underlying pathophysiology of preeclampsia?")
}

func TestEngine_ConversationalSkipsAssessment(t *testing.T) {
	e := NewEngine()
	s := newTestSession()

	next, result := e.Assess("why are you asking me this?", s)
	if result != nil {
		t.Fatal("conversational turn must return a nil result")
	}
	sub := next.CurrentSubtopic()
	if sub.QuestionsUsed != 0 || sub.Status != StatusUnassessed {
		t.Error("conversational turn must leave subtopic counters and status unchanged")
	}
	if len(next.Messages) != len(s.Messages)+1 {
		t.Error("the student message should still be recorded")
	}
}

func TestEngine_PreDecompositionReturnsNil(t *testing.T) {
	e := NewEngine()
	s := NewSession("Preeclampsia")
	_, result := e.Assess("hello, I want to learn about preeclampsia", s)
	if result != nil {
		t.Error("nothing to assess before subtopics exist")
	}
}

func TestEngine_StrongAnswerAssessed(t *testing.T) {
	e := NewEngine()
	s := newTestSession()

	next, result := e.Assess(strongAnswer, s)
	if result == nil {
		t.Fatal("substantive answer must be assessed")
	}
	if result.Quality != assess.QualityExcellent {
		t.Errorf("got quality %q, want excellent\ntrace: %s", result.Quality, result.Reasoning)
	}
	sub := next.CurrentSubtopic()
	if sub.QuestionsUsed != 1 || sub.CorrectAnswers != 1 {
		t.Errorf("got questions=%d correct=%d, want 1/1", sub.QuestionsUsed, sub.CorrectAnswers)
	}
	if sub.Status != StatusShaky {
		t.Errorf("one good answer should mark the subtopic shaky (in progress), got %q", sub.Status)
	}
	if !sub.Triaging.InitialAssessmentDone {
		t.Error("initial assessment flag should be set")
	}
}

func TestEngine_InputSessionNeverMutated(t *testing.T) {
	e := NewEngine()
	s := newTestSession()
	before := s.Clone()

	_, _ = e.Assess(strongAnswer, s)

	if !reflect.DeepEqual(s.Subtopics, before.Subtopics) {
		t.Error("Assess mutated the input session's subtopics")
	}
	if len(s.Messages) != len(before.Messages) {
		t.Error("Assess mutated the input session's history")
	}
}

func TestEngine_GivingUpShortCircuits(t *testing.T) {
	e := NewEngine()
	s := newTestSession()

	next, result := e.Assess("I don't know anything about this", s)
	if result == nil {
		t.Fatal("giving up is still an assessed turn")
	}
	if !result.Struggling || result.Confidence < 0.9 {
		t.Errorf("got struggling=%v confidence=%f, want struggling with >= 0.9", result.Struggling, result.Confidence)
	}
	if next.State != StateExplaining {
		t.Errorf("got state %q, want explaining after a confused turn", next.State)
	}
	if next.CurrentSubtopic().Status != StatusGap {
		t.Errorf("got status %q, want gap", next.CurrentSubtopic().Status)
	}
}

func TestEngine_RequirementsIdempotentWithinSession(t *testing.T) {
	e := NewEngine()
	a := e.SubtopicRequirements("Preeclampsia pathophysiology", "Preeclampsia")
	b := e.SubtopicRequirements("Preeclampsia pathophysiology", "Preeclampsia")
	if !reflect.DeepEqual(a, b) {
		t.Error("same (title, topic) pair must yield identical requirements")
	}
}

func TestEngine_PendingTransitionBlocksAssessment(t *testing.T) {
	e := NewEngine()
	s := newTestSession()
	s.ShouldTransition = true

	next, result := e.Assess(strongAnswer, s)
	if result != nil {
		t.Error("no assessment while a transition is pending")
	}
	if next.CurrentSubtopic().QuestionsUsed != 0 {
		t.Error("question budget must not move while a transition is pending")
	}
}
