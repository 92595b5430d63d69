package assess

import (
	"fmt"

	"github.com/oslerlabs/osler/internal/requirements"
)

// neutralScore is substituted when a scorer panics: the failed signal
// contributes its weight as neutral rather than aborting the assessment.
const neutralScore = 0.5

// Score runs the six signal scorers over an answer. Each scorer is
// independent and pure; a failure in one is contained and replaced with a
// neutral zero-evidence score.
func Score(answer string, req requirements.SubtopicRequirements) SignalScores {
	var scores SignalScores
	scores[SignalVocabulary] = safeScore(SignalVocabulary, func() SignalScore {
		return scoreVocabulary(answer)
	})
	scores[SignalReasoning] = safeScore(SignalReasoning, func() SignalScore {
		return scoreReasoning(answer)
	})
	scores[SignalConcept] = safeScore(SignalConcept, func() SignalScore {
		return scoreConcept(answer, req.Nature)
	})
	scores[SignalTopic] = safeScore(SignalTopic, func() SignalScore {
		return scoreTopic(answer, req.ExpectedConcepts)
	})
	scores[SignalClinical] = safeScore(SignalClinical, func() SignalScore {
		return scoreClinical(answer)
	})
	scores[SignalStructure] = safeScore(SignalStructure, func() SignalScore {
		return scoreStructure(answer)
	})
	return scores
}

func safeScore(sig Signal, fn func() SignalScore) (result SignalScore) {
	defer func() {
		if r := recover(); r != nil {
			result = SignalScore{
				Score:    neutralScore,
				Evidence: []string{fmt.Sprintf("%s scorer failed: %v", sig, r)},
			}
		}
	}()
	return fn()
}
