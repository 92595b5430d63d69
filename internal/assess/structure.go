package assess

import (
	"fmt"
	"strings"

	"github.com/oslerlabs/osler/internal/patterns"
)

// Length calibration for the structure signal. The sweet spot and rambling
// bound are tunable pedagogy constants, not load-bearing truths.
const (
	structureMinChars   = 30
	structureSweetChars = 300
	structureMaxChars   = 700
)

// scoreStructure rewards organized, appropriately sized answers: multiple
// sentences, length inside the sweet spot, and coherence markers. Answers
// below the minimum length score poorly here regardless of vocabulary.
func scoreStructure(answer string) SignalScore {
	trimmed := strings.TrimSpace(answer)
	chars := len(trimmed)
	sentences := countSentences(trimmed)

	var evidence []string
	var score float64

	switch {
	case chars < structureMinChars:
		score = 0.1
		evidence = append(evidence, "below minimum informative length")
	case chars <= structureSweetChars:
		score = 0.6
		evidence = append(evidence, "length in target range")
	case chars <= structureMaxChars:
		score = 0.4
		evidence = append(evidence, "longer than target range")
	default:
		score = 0.25
		evidence = append(evidence, "rambling length")
	}

	if sentences >= 2 {
		score += 0.2
		evidence = append(evidence, fmt.Sprintf("%d sentences", sentences))
	}

	markers := patterns.MatchTerms(answer, patterns.CoherenceMarkerTerms())
	if len(markers) > 0 {
		score += 0.2
		evidence = append(evidence, "coherence markers: "+strings.Join(markers, ", "))
	}

	if score > 1 {
		score = 1
	}
	return SignalScore{Score: score, Evidence: evidence}
}

func countSentences(text string) int {
	count := 0
	inSentence := false
	for _, r := range text {
		switch r {
		case '.', ';', '!', '?':
			if inSentence {
				count++
				inSentence = false
			}
		default:
			if r != ' ' && r != '\n' && r != '\t' {
				inSentence = true
			}
		}
	}
	if inSentence {
		count++
	}
	return count
}
