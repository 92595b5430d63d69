package assess

import (
	"strings"

	"github.com/oslerlabs/osler/internal/patterns"
)

// Quick quality filter: answers with no substance are short-circuited with a
// high-confidence struggling verdict before the six signals run. This is a
// correctness rule, not a shortcut proxy — a three-word answer or an "I
// don't know" carries no signal worth weighing.

// MinInformativeWords is the minimum word count for an answer to reach full
// scoring.
const MinInformativeWords = 4

// StrugglingConfidence is the confidence attached to a filter verdict.
const StrugglingConfidence = 0.95

// QuickFilter inspects an answer for emptiness, sub-minimal length, or an
// explicit statement of not knowing. Returns (result, true) when the filter
// triggers; (zero, false) means the answer deserves full scoring.
func QuickFilter(answer string) (AssessmentResult, bool) {
	trimmed := strings.TrimSpace(answer)
	words := len(strings.Fields(trimmed))
	norm := patterns.Normalize(trimmed)

	gaveUp := false
	for _, phrase := range patterns.GivingUpPhrases() {
		if patterns.ContainsTerm(norm, phrase) {
			gaveUp = true
			break
		}
	}

	if !gaveUp && words >= MinInformativeWords {
		return AssessmentResult{}, false
	}

	reason := "answer below minimum informative length"
	if gaveUp {
		reason = "explicit statement of not knowing"
	}

	return AssessmentResult{
		Quality:    QualityConfused,
		Confidence: StrugglingConfidence,
		NextAction: ActionExplainGap,
		Struggling: true,
		Reasoning:  "quick filter: " + reason,
		StatusDelta: StatusDelta{
			MarkInitialAssessment: true,
			AddExchanges:          1,
		},
	}, true
}
