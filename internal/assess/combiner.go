package assess

import (
	"fmt"
	"math"
	"strings"

	"github.com/oslerlabs/osler/internal/requirements"
)

// Weights is a fixed-size weight vector over the signal enum. Construction
// panics unless the weights sum to 1.0, so a miskeyed table cannot silently
// skew scoring.
type Weights [numSignals]float64

func mustWeights(w Weights) Weights {
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		panic(fmt.Sprintf("signal weights sum to %f, want 1.0", sum))
	}
	return w
}

// baseWeights apply when no expected concepts exist for the subtopic.
var baseWeights = mustWeights(Weights{
	SignalVocabulary: 0.20,
	SignalReasoning:  0.20,
	SignalConcept:    0.20,
	SignalTopic:      0.10,
	SignalClinical:   0.20,
	SignalStructure:  0.10,
})

// conceptAwareWeights apply when ground-truth expected concepts are
// available: coverage of them is a strictly stronger accuracy signal than
// generic vocabulary, so weight shifts toward the topic signal.
var conceptAwareWeights = mustWeights(Weights{
	SignalVocabulary: 0.15,
	SignalReasoning:  0.15,
	SignalConcept:    0.15,
	SignalTopic:      0.25,
	SignalClinical:   0.20,
	SignalStructure:  0.10,
})

// Quality thresholds over the weighted sum. Tunable calibration constants.
const (
	excellentThreshold = 0.65
	goodThreshold      = 0.45
	partialThreshold   = 0.12
)

// AdvanceCorrectThreshold is how many good-or-better answers complete a
// subtopic.
const AdvanceCorrectThreshold = 2

// PostExplanationChecks is how many follow-up checks after a remedial
// explanation complete a subtopic regardless of their quality, capping
// worst-case dwell time.
const PostExplanationChecks = 2

// applicationTestedBar is the clinical-context score above which the turn
// counts as having tested application, not just recall.
const applicationTestedBar = 0.6

// SubtopicState is the slice of subtopic progress the combiner needs to
// derive phase and next action.
type SubtopicState struct {
	Status                 TriagingStatus
	QuestionsUsed          int
	CorrectAnswers         int
	ExplanationGiven       bool
	ChecksSinceExplanation int
}

// Combine folds the six signals into a single AssessmentResult using the
// dynamic weight vector, deriving a quality label from fixed thresholds, a
// confidence from signal agreement, and phase/next-action from the
// subtopic's progress.
func Combine(signals SignalScores, req requirements.SubtopicRequirements, st SubtopicState) AssessmentResult {
	weights := baseWeights
	if req.HasExpectedConcepts() {
		weights = conceptAwareWeights
	}

	weighted := 0.0
	for sig := Signal(0); sig < numSignals; sig++ {
		weighted += weights[sig] * signals[sig].Score
	}

	quality := qualityForScore(weighted)
	confidence := confidenceFor(signals)

	correctAfter := st.CorrectAnswers
	if quality.MeetsGoodBar() {
		correctAfter++
	}
	checksAfter := st.ChecksSinceExplanation
	if st.ExplanationGiven {
		checksAfter++
	}
	questionsAfter := st.QuestionsUsed + 1

	exitMet := correctAfter >= AdvanceCorrectThreshold ||
		(st.ExplanationGiven && checksAfter >= PostExplanationChecks)
	budgetExhausted := questionsAfter >= req.MaxQuestions

	result := AssessmentResult{
		Quality:      quality,
		Confidence:   confidence,
		CurrentPhase: phaseFor(st, exitMet),
		NextAction:   nextActionFor(quality, exitMet, budgetExhausted),
		Struggling:   quality == QualityConfused,
		Reasoning:    reasoningTrace(signals, weights, weighted, quality),
		Signals:      signals,
		StatusDelta: StatusDelta{
			MarkInitialAssessment: true,
			AddExchanges:          1,
			AcknowledgeGaps:       missingConceptsFromSignals(signals, req),
			MarkApplicationTested: signals[SignalClinical].Score >= applicationTestedBar,
		},
	}
	return result
}

func qualityForScore(weighted float64) Quality {
	switch {
	case weighted >= excellentThreshold:
		return QualityExcellent
	case weighted >= goodThreshold:
		return QualityGood
	case weighted >= partialThreshold:
		return QualityPartial
	default:
		return QualityIncorrect
	}
}

// confidenceFor derives confidence from the agreement across signals: a
// high average with low spread is trustworthy; widely disagreeing signals
// earn a penalty.
func confidenceFor(signals SignalScores) float64 {
	mean := 0.0
	for _, s := range signals {
		mean += s.Score
	}
	mean /= float64(numSignals)

	variance := 0.0
	for _, s := range signals {
		d := s.Score - mean
		variance += d * d
	}
	variance /= float64(numSignals)
	spread := math.Sqrt(variance)

	conf := 0.5 + 0.65*mean - 0.6*spread
	if conf < 0.1 {
		conf = 0.1
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}

func phaseFor(st SubtopicState, exitMet bool) Phase {
	switch {
	case exitMet:
		return PhaseComplete
	case st.ExplanationGiven:
		return PhaseTargetedRemediation
	default:
		return PhaseInitialAssessment
	}
}

func nextActionFor(quality Quality, exitMet, budgetExhausted bool) NextAction {
	switch {
	case exitMet:
		return ActionAdvance
	case budgetExhausted:
		return ActionCompleteSubtopic
	case quality == QualityIncorrect || quality == QualityConfused:
		return ActionExplainGap
	default:
		return ActionContinueProbing
	}
}

func missingConceptsFromSignals(signals SignalScores, req requirements.SubtopicRequirements) []string {
	if !req.HasExpectedConcepts() {
		return nil
	}
	hit := make(map[string]bool, len(signals[SignalTopic].Evidence))
	for _, e := range signals[SignalTopic].Evidence {
		hit[e] = true
	}
	var missing []string
	for _, c := range req.ExpectedConcepts {
		if !hit[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

func reasoningTrace(signals SignalScores, weights Weights, weighted float64, quality Quality) string {
	parts := make([]string, 0, numSignals+1)
	for sig := Signal(0); sig < numSignals; sig++ {
		s := signals[sig]
		part := fmt.Sprintf("%s %.2f (w %.2f", sig, s.Score, weights[sig])
		if len(s.Evidence) > 0 {
			part += ", " + strings.Join(s.Evidence, "; ")
		}
		part += ")"
		parts = append(parts, part)
	}
	parts = append(parts, fmt.Sprintf("weighted %.2f => %s", weighted, quality))
	return strings.Join(parts, " | ")
}
