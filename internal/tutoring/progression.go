package tutoring

import (
	"github.com/oslerlabs/osler/internal/assess"
	"github.com/oslerlabs/osler/internal/requirements"
)

// Progression state machine. Consumes an AssessmentResult and moves the
// subtopic through unassessed → assessing → (explaining ↔ checking) →
// understood | gap, layering session transitions on top. The machine never
// allows open-ended looping: a subtopic that exhausts its question budget
// is forced to a terminal status.

// applyAssessment folds one assessed turn into the session. The session is
// assumed to be a private clone; subtopic fields are updated directly.
func applyAssessment(s *Session, result *assess.AssessmentResult, req requirements.SubtopicRequirements) {
	sub := s.CurrentSubtopic()
	if sub == nil {
		return
	}

	sub.QuestionsUsed++
	if result.Quality.MeetsGoodBar() {
		sub.CorrectAnswers++
	}
	if sub.ExplanationGiven {
		sub.ChecksSinceExplanation++
	}
	sub.Triaging = sub.Triaging.Apply(result.StatusDelta)

	updateStatus(sub, result.Quality)

	switch {
	case advanceCriteriaMet(sub):
		finalizeSubtopic(s, sub)

	case sub.QuestionsUsed >= req.MaxQuestions:
		// Budget exhausted without advance criteria: forced gap, never a
		// silent fourth question.
		sub.Status = StatusGap
		s.ShouldTransition = true
		s.State = StateAssessing

	case result.Quality == assess.QualityIncorrect || result.Quality == assess.QualityConfused:
		if !sub.ExplanationGiven {
			s.State = StateExplaining
		} else {
			s.State = StateChecking
		}

	default:
		if sub.ExplanationGiven {
			s.State = StateChecking
		} else {
			s.State = StateAssessing
		}
	}

	s.LastAssessment = result
}

func updateStatus(sub *Subtopic, quality assess.Quality) {
	switch quality {
	case assess.QualityExcellent, assess.QualityGood:
		if sub.CorrectAnswers >= assess.AdvanceCorrectThreshold {
			sub.Status = StatusUnderstood
		} else {
			sub.Status = StatusShaky
		}
	case assess.QualityPartial:
		sub.Status = StatusShaky
	case assess.QualityIncorrect, assess.QualityConfused:
		sub.Status = StatusGap
	}
}

// advanceCriteriaMet reports whether the subtopic has earned its exit:
// enough good-or-better answers, or a remedial explanation followed by the
// capped number of check questions regardless of quality.
func advanceCriteriaMet(sub *Subtopic) bool {
	if sub.CorrectAnswers >= assess.AdvanceCorrectThreshold {
		return true
	}
	return sub.ExplanationGiven && sub.ChecksSinceExplanation >= assess.PostExplanationChecks
}

func finalizeSubtopic(s *Session, sub *Subtopic) {
	if sub.CorrectAnswers >= assess.AdvanceCorrectThreshold || sub.CorrectAnswers > 0 {
		sub.Status = StatusUnderstood
	} else {
		sub.Status = StatusGap
	}
	s.ShouldTransition = true
	s.State = StateAssessing
}

// NoteExplanationDelivered records that the dialogue driver delivered a
// remedial explanation for the active subtopic, moving its outstanding
// gaps to remediated and switching to checking. Returns a new session.
func NoteExplanationDelivered(s Session) Session {
	next := s.Clone()
	sub := next.CurrentSubtopic()
	if sub == nil {
		return next
	}
	sub.ExplanationGiven = true
	sub.ChecksSinceExplanation = 0
	sub.Triaging = sub.Triaging.Apply(assess.StatusDelta{
		RemediateGaps: sub.Triaging.OutstandingGaps(),
	})
	next.State = StateChecking
	next.ActiveQuestionType = QuestionCheckin
	return next
}

// AdvanceSubtopic consumes the one-shot transition flag: the active index
// moves to the next non-terminal subtopic, or the session reaches
// completion-choice when every subtopic is terminal. Returns a new session.
func AdvanceSubtopic(s Session) Session {
	next := s.Clone()
	next.ShouldTransition = false

	if next.AllSubtopicsTerminal() {
		next.State = StateCompletionChoice
		return next
	}

	for i := range next.Subtopics {
		idx := (next.CurrentSubtopicIndex + 1 + i) % len(next.Subtopics)
		if !next.Subtopics[idx].Status.IsTerminal() {
			next.CurrentSubtopicIndex = idx
			break
		}
	}
	next.State = StateAssessing
	next.ActiveQuestionType = QuestionParent
	return next
}

// CompleteSession marks the session complete after an explicit completion
// choice (notes generated or a new topic requested).
func CompleteSession(s Session) Session {
	next := s.Clone()
	next.State = StateComplete
	next.Completed = true
	return next
}
