package assess

import (
	"github.com/oslerlabs/osler/internal/patterns"
)

// conceptSaturationCount is the marker count at which the concept signal
// reaches full score.
const conceptSaturationCount = 3

// scoreConcept matches the answer against the concept-category marker sets
// relevant to the subtopic's nature: mechanism subtopics favor
// pathophysiology markers, management subtopics favor treatment and
// pharmacology markers, and so on.
func scoreConcept(answer string, nature patterns.SubtopicNature) SignalScore {
	var evidence []string
	total := 0
	for _, category := range patterns.CategoriesForNature(nature) {
		matched := patterns.MatchTerms(answer, patterns.MarkersFor(category))
		total += len(matched)
		for _, m := range matched {
			evidence = append(evidence, string(category)+": "+m)
		}
	}

	score := float64(total) / conceptSaturationCount
	if score > 1 {
		score = 1
	}
	return SignalScore{Score: score, Evidence: evidence}
}
