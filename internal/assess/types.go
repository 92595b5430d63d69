// Package assess scores a free-text answer against a subtopic's requirement
// profile. Six independent heuristic signals each produce a score in [0,1]
// with supporting evidence; a weighted combiner maps the vector to a quality
// label, confidence, phase, and recommended next action. Everything here is
// pure and deterministic — no LLM is consulted for the scoring decision.
package assess

// Signal identifies one of the six scorers. Using a fixed enum (rather than
// string-keyed maps) lets weight-sum invariants be asserted at construction.
type Signal int

const (
	SignalVocabulary Signal = iota
	SignalReasoning
	SignalConcept
	SignalTopic
	SignalClinical
	SignalStructure

	numSignals
)

// String returns the signal's display name.
func (s Signal) String() string {
	switch s {
	case SignalVocabulary:
		return "vocabulary"
	case SignalReasoning:
		return "reasoning"
	case SignalConcept:
		return "concept"
	case SignalTopic:
		return "topic"
	case SignalClinical:
		return "clinical-context"
	case SignalStructure:
		return "structure"
	default:
		return "unknown"
	}
}

// SignalScore is one scorer's output.
type SignalScore struct {
	Score    float64  // 0.0–1.0
	Evidence []string // matched terms/phrases backing the score
}

// SignalScores holds all six scorer outputs, indexed by Signal.
type SignalScores [numSignals]SignalScore

// Quality is the discrete answer-quality label.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityPartial   Quality = "partial"
	QualityIncorrect Quality = "incorrect"
	QualityConfused  Quality = "confused"
)

// MeetsGoodBar reports whether the label counts toward the advance
// threshold.
func (q Quality) MeetsGoodBar() bool {
	return q == QualityExcellent || q == QualityGood
}

// Phase is a subtopic's position in the assess → remediate → recheck cycle.
type Phase string

const (
	PhaseInitialAssessment   Phase = "initial-assessment"
	PhaseTargetedRemediation Phase = "targeted-remediation"
	PhaseComplete            Phase = "complete"
)

// NextAction is the combiner's recommendation to the state machine.
type NextAction string

const (
	ActionContinueProbing  NextAction = "continue-probing"
	ActionExplainGap       NextAction = "explain-gap"
	ActionAdvance          NextAction = "advance"
	ActionCompleteSubtopic NextAction = "complete-subtopic"
)

// AssessmentResult is the engine's verdict on one assessed turn. Created
// fresh each turn, never mutated; the state machine consumes it and only
// the merged status delta persists.
type AssessmentResult struct {
	Quality      Quality
	Confidence   float64
	CurrentPhase Phase
	NextAction   NextAction
	Struggling   bool
	Reasoning    string // human-readable trace for debugging
	Signals      SignalScores
	StatusDelta  StatusDelta
}
