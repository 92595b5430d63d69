package tutoring

import (
	"fmt"
	"testing"

	"github.com/oslerlabs/osler/internal/assess"
)

const wrongAnswer = "It might be too much salt in the diet, or maybe just stress."

func TestProgression_TwoGoodAnswersAdvance(t *testing.T) {
	e := NewEngine()
	s := newTestSession()

	s, result := e.Assess(strongAnswer, s)
	if result == nil || result.Quality != assess.QualityExcellent {
		t.Fatal("setup: first answer should be excellent")
	}
	s = s.WithTutorMessage("And how does that produce proteinuria?")

	s, result = e.Assess(strongAnswer, s)
	if result == nil {
		t.Fatal("second answer should be assessed")
	}
	sub := s.CurrentSubtopic()
	if sub.Status != StatusUnderstood {
		t.Errorf("got status %q, want understood after two good answers", sub.Status)
	}
	if !s.ShouldTransition {
		t.Error("transition flag should be set")
	}
	if result.NextAction != assess.ActionAdvance {
		t.Errorf("got action %q, want advance", result.NextAction)
	}
}

func TestProgression_BudgetExhaustionForcesGap(t *testing.T) {
	e := NewEngine()
	s := newTestSession()
	req := e.SubtopicRequirements("Preeclampsia pathophysiology", "Preeclampsia")

	// Keep answering wrongly; the driver never delivers an explanation.
	for i := 0; ; i++ {
		if i > req.MaxQuestions {
			t.Fatal("state machine allowed open-ended looping")
		}
		var result *assess.AssessmentResult
		s, result = e.Assess(wrongAnswer, s)
		if result == nil {
			t.Fatal("wrong answer should still be assessed")
		}
		if s.ShouldTransition {
			break
		}
		s = s.WithTutorMessage(fmt.Sprintf("Let me rephrase, attempt %d?", i))
	}

	sub := s.CurrentSubtopic()
	if sub.Status != StatusGap {
		t.Errorf("got status %q, want forced gap", sub.Status)
	}
	if sub.QuestionsUsed > req.MaxQuestions {
		t.Errorf("questionsUsed %d exceeded budget %d", sub.QuestionsUsed, req.MaxQuestions)
	}
}

func TestProgression_QuestionBudgetInvariant(t *testing.T) {
	// Property: for any sequence of answers, questionsUsed never exceeds
	// maxQuestions without the machine forcing a terminal outcome.
	sequences := [][]string{
		{wrongAnswer, wrongAnswer, wrongAnswer, wrongAnswer, wrongAnswer},
		{strongAnswer, wrongAnswer, wrongAnswer, wrongAnswer, wrongAnswer},
		{wrongAnswer, strongAnswer, wrongAnswer, strongAnswer},
		{"High blood pressure in pregnancy. Bad for baby.", wrongAnswer, wrongAnswer, wrongAnswer, wrongAnswer},
	}

	for si, seq := range sequences {
		e := NewEngine()
		s := newTestSession()
		req := e.SubtopicRequirements("Preeclampsia pathophysiology", "Preeclampsia")

		for _, answer := range seq {
			s, _ = e.Assess(answer, s)
			sub := s.CurrentSubtopic()
			if sub.QuestionsUsed > req.MaxQuestions {
				t.Fatalf("sequence %d: questionsUsed %d exceeded budget %d", si, sub.QuestionsUsed, req.MaxQuestions)
			}
			if sub.QuestionsUsed == req.MaxQuestions && !sub.Status.IsTerminal() {
				t.Fatalf("sequence %d: budget reached without terminal status", si)
			}
			if s.ShouldTransition {
				break
			}
			s = s.WithTutorMessage("Tell me more?")
		}
	}
}

func TestProgression_ExplanationThenTwoChecksCompletes(t *testing.T) {
	e := NewEngine()
	s := newTestSession()

	s, _ = e.Assess(wrongAnswer, s)
	if s.State != StateExplaining {
		t.Fatalf("got state %q, want explaining", s.State)
	}

	s = NoteExplanationDelivered(s)
	if s.State != StateChecking {
		t.Fatalf("got state %q, want checking", s.State)
	}
	if !s.CurrentSubtopic().ExplanationGiven {
		t.Fatal("explanation flag should be recorded")
	}

	s = s.WithTutorMessage("So what causes the proteinuria?")
	s, _ = e.Assess(wrongAnswer, s)
	if s.ShouldTransition {
		t.Fatal("one check question is not enough")
	}

	s = s.WithTutorMessage("One more: what drug prevents seizures?")
	s, _ = e.Assess(wrongAnswer, s)
	if !s.ShouldTransition {
		t.Error("two post-explanation checks cap dwell time regardless of quality")
	}
	if !s.CurrentSubtopic().Status.IsTerminal() {
		t.Errorf("got status %q, want terminal", s.CurrentSubtopic().Status)
	}
}

func TestProgression_ExplanationRemediatesAcknowledgedGaps(t *testing.T) {
	e := NewEngine()
	s := newTestSession()

	s, result := e.Assess("High blood pressure in pregnancy. Bad for baby.", s)
	if result == nil || len(s.CurrentSubtopic().Triaging.GapsAcknowledged) == 0 {
		t.Fatal("setup: weak answer should acknowledge gaps")
	}

	s = NoteExplanationDelivered(s)
	sub := s.CurrentSubtopic()
	if len(sub.Triaging.GapsAcknowledged) != 0 {
		t.Errorf("acknowledged gaps should be cleared, got %v", sub.Triaging.GapsAcknowledged)
	}
	if len(sub.Triaging.GapsRemediated) == 0 {
		t.Error("gaps should move to remediated")
	}
}

func TestProgression_AdvanceMovesToNextSubtopic(t *testing.T) {
	s := newTestSession()
	s.Subtopics[0].Status = StatusUnderstood
	s.ShouldTransition = true

	next := AdvanceSubtopic(s)
	if next.ShouldTransition {
		t.Error("transition flag is one-shot")
	}
	if next.CurrentSubtopicIndex != 1 {
		t.Errorf("got index %d, want 1", next.CurrentSubtopicIndex)
	}
	if next.ActiveQuestionType != QuestionParent {
		t.Errorf("new subtopic should open with a parent question, got %q", next.ActiveQuestionType)
	}
}

func TestProgression_AllTerminalReachesCompletionChoice(t *testing.T) {
	s := newTestSession()
	s.Subtopics[0].Status = StatusUnderstood
	s.Subtopics[1].Status = StatusGap
	s.ShouldTransition = true

	next := AdvanceSubtopic(s)
	if next.State != StateCompletionChoice {
		t.Errorf("got state %q, want completion-choice", next.State)
	}
}

func TestProgression_CompleteSession(t *testing.T) {
	s := newTestSession()
	s.State = StateCompletionChoice
	next := CompleteSession(s)
	if !next.Completed || next.State != StateComplete {
		t.Error("explicit completion should mark the session complete")
	}
}
