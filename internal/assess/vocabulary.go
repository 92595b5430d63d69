package assess

import "github.com/oslerlabs/osler/internal/patterns"

// Vocabulary tier weights. Advanced and domain terms carry more evidence of
// understanding than everyday clinical words.
const (
	basicTermWeight    = 0.5
	advancedTermWeight = 1.0
	domainTermWeight   = 1.5

	// vocabSaturation controls diminishing returns: score = w / (w + k).
	vocabSaturation = 1.5
)

// scoreVocabulary counts matches against the three vocabulary tiers.
// The score saturates rather than growing unbounded, so a handful of strong
// terms scores nearly as well as an exhaustive list.
func scoreVocabulary(answer string) SignalScore {
	basic := patterns.MatchTerms(answer, patterns.BasicTerms())
	advanced := patterns.MatchTerms(answer, patterns.AdvancedTerms())
	domain := patterns.MatchTerms(answer, patterns.DomainTerms())

	weighted := basicTermWeight*float64(len(basic)) +
		advancedTermWeight*float64(len(advanced)) +
		domainTermWeight*float64(len(domain))

	var evidence []string
	evidence = append(evidence, domain...)
	evidence = append(evidence, advanced...)
	evidence = append(evidence, basic...)

	if weighted == 0 {
		return SignalScore{}
	}
	return SignalScore{
		Score:    weighted / (weighted + vocabSaturation),
		Evidence: evidence,
	}
}
