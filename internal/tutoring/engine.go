package tutoring

import (
	"github.com/oslerlabs/osler/internal/assess"
	"github.com/oslerlabs/osler/internal/intent"
	"github.com/oslerlabs/osler/internal/requirements"
)

// Engine is the per-session decision core: intent classification, requirement
// lookup, multi-signal scoring, and progression, all synchronous and free of
// I/O. One engine serves one session; the requirements cache guarantees a
// subtopic never sees different requirements mid-session.
type Engine struct {
	reqs *requirements.Cache
}

// NewEngine creates an engine with an empty requirements cache.
func NewEngine() *Engine {
	return &Engine{reqs: requirements.NewCache()}
}

// SubtopicRequirements returns the (cached) requirements for a subtopic.
func (e *Engine) SubtopicRequirements(title, topic string) requirements.SubtopicRequirements {
	return e.reqs.Get(title, topic)
}

// Assess processes one student message against the session. A nil result
// means the message was conversational and assessment was skipped; the
// returned session then carries only the message history change. Otherwise
// the returned session reflects the full state transition for the turn.
// The input session is never mutated.
func (e *Engine) Assess(message string, s Session) (Session, *assess.AssessmentResult) {
	next := s.WithStudentMessage(message)

	sub := next.CurrentSubtopic()
	if sub == nil {
		// Pre-decomposition: nothing to assess yet.
		return next, nil
	}
	if next.ShouldTransition || next.State == StateCompletionChoice || next.State == StateComplete {
		// A pending transition must be applied before another turn is
		// assessed, or the question-budget invariant could be violated.
		return next, nil
	}

	cls := intent.Classify(message, intent.Context{
		LastTutorMessage: s.LastTutorMessage(),
		Topic:            s.Topic,
	})
	if cls.ShouldSkipAssessment() {
		return next, nil
	}

	req := e.reqs.Get(sub.Title, s.Topic)
	result := e.scoreTurn(message, req, sub)
	applyAssessment(&next, result, req)
	return next, result
}

// scoreTurn runs the quick filter then the full signal pipeline. A scoring
// failure degrades to a neutral partial outcome — dialogue must never stall
// because a scorer misbehaved.
func (e *Engine) scoreTurn(message string, req requirements.SubtopicRequirements, sub *Subtopic) (result *assess.AssessmentResult) {
	defer func() {
		if r := recover(); r != nil {
			result = neutralResult()
		}
	}()

	if filtered, triggered := assess.QuickFilter(message); triggered {
		return &filtered
	}

	signals := assess.Score(message, req)
	combined := assess.Combine(signals, req, assess.SubtopicState{
		Status:                 sub.Triaging,
		QuestionsUsed:          sub.QuestionsUsed,
		CorrectAnswers:         sub.CorrectAnswers,
		ExplanationGiven:       sub.ExplanationGiven,
		ChecksSinceExplanation: sub.ChecksSinceExplanation,
	})
	return &combined
}

func neutralResult() *assess.AssessmentResult {
	return &assess.AssessmentResult{
		Quality:      assess.QualityPartial,
		Confidence:   0.3,
		CurrentPhase: assess.PhaseInitialAssessment,
		NextAction:   assess.ActionContinueProbing,
		Reasoning:    "scoring failure degraded to neutral partial",
		StatusDelta: assess.StatusDelta{
			MarkInitialAssessment: true,
			AddExchanges:          1,
		},
	}
}
