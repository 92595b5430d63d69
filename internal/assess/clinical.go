package assess

import "github.com/oslerlabs/osler/internal/patterns"

// scoreClinical detects whether the answer frames its claims diagnostically,
// therapeutically, or prognostically. Distinct from raw vocabulary: this
// rewards applying knowledge to a clinical decision, not naming things.
func scoreClinical(answer string) SignalScore {
	var evidence []string
	frames := 0
	for _, frame := range patterns.AllClinicalFrames() {
		matched := patterns.MatchTerms(answer, patterns.FrameMarkers(frame))
		if len(matched) == 0 {
			continue
		}
		frames++
		evidence = append(evidence, string(frame)+": "+matched[0])
	}

	var score float64
	switch {
	case frames == 0:
		score = 0
	case frames == 1:
		score = 0.6
	case frames == 2:
		score = 0.85
	default:
		score = 1.0
	}
	return SignalScore{Score: score, Evidence: evidence}
}
