package assess

import "github.com/oslerlabs/osler/internal/patterns"

// scoreReasoning detects causal/comparative/conditional/sequential/
// evidential connectives. The score reflects diversity of reasoning
// families used, not raw phrase count — three "because"s are one argument,
// not three.
func scoreReasoning(answer string) SignalScore {
	var evidence []string
	families := 0
	for _, family := range patterns.AllReasoningFamilies() {
		matched := patterns.MatchTerms(answer, patterns.ConnectivesFor(family))
		if len(matched) == 0 {
			continue
		}
		families++
		evidence = append(evidence, string(family)+": "+matched[0])
	}

	var score float64
	switch {
	case families == 0:
		score = 0
	case families == 1:
		score = 0.4
	case families == 2:
		score = 0.7
	default:
		score = 1.0
	}
	return SignalScore{Score: score, Evidence: evidence}
}
