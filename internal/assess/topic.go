package assess

import "github.com/oslerlabs/osler/internal/patterns"

// topicNeutralScore is used when no expected concepts exist: the signal has
// nothing to measure, so it contributes its weight as neutral rather than
// dragging the total down.
const topicNeutralScore = 0.5

// scoreTopic measures coverage of the subtopic's expected concepts. This is
// the only signal with ground truth behind it: the score is the exact
// fraction of expected concepts the answer touches, strictly increasing
// with coverage.
func scoreTopic(answer string, expectedConcepts []string) SignalScore {
	if len(expectedConcepts) == 0 {
		return SignalScore{
			Score:    topicNeutralScore,
			Evidence: []string{"no expected concepts for this subtopic"},
		}
	}

	matched := patterns.MatchTerms(answer, expectedConcepts)
	return SignalScore{
		Score:    float64(len(matched)) / float64(len(expectedConcepts)),
		Evidence: matched,
	}
}

// missingConcepts returns expected concepts absent from the answer. The
// combiner records these as acknowledged gaps for remediation targeting.
func missingConcepts(answer string, expectedConcepts []string) []string {
	if len(expectedConcepts) == 0 {
		return nil
	}
	hit := make(map[string]bool)
	for _, m := range patterns.MatchTerms(answer, expectedConcepts) {
		hit[m] = true
	}
	var missing []string
	for _, c := range expectedConcepts {
		if !hit[c] {
			missing = append(missing, c)
		}
	}
	return missing
}
