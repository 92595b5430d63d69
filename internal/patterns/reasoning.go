package patterns

// ReasoningFamily groups connective phrases by the kind of reasoning they
// signal. The reasoning signal rewards diversity across families, not raw
// phrase count.
type ReasoningFamily string

const (
	ReasoningCausal      ReasoningFamily = "causal"
	ReasoningComparative ReasoningFamily = "comparative"
	ReasoningConditional ReasoningFamily = "conditional"
	ReasoningSequential  ReasoningFamily = "sequential"
	ReasoningEvidential  ReasoningFamily = "evidential"
)

// AllReasoningFamilies returns the families in stable order.
func AllReasoningFamilies() []ReasoningFamily {
	return []ReasoningFamily{
		ReasoningCausal,
		ReasoningComparative,
		ReasoningConditional,
		ReasoningSequential,
		ReasoningEvidential,
	}
}

var connectivesByFamily = map[ReasoningFamily][]string{
	ReasoningCausal: {
		"because", "due to", "caused by", "causing", "leads to",
		"leading to", "results in", "resulting in", "therefore",
		"consequently", "as a result", "which causes", "secondary to",
	},
	ReasoningComparative: {
		"whereas", "in contrast", "compared to", "unlike", "more than",
		"less than", "rather than", "on the other hand", "similarly",
		"as opposed to", "differs from",
	},
	ReasoningConditional: {
		"if", "unless", "provided that", "in case", "depending on",
		"would", "could", "assuming", "were it not", "only when",
	},
	ReasoningSequential: {
		"first", "second", "then", "next", "finally", "initially",
		"subsequently", "followed by", "eventually", "before", "after",
	},
	ReasoningEvidential: {
		"evidence", "studies show", "indicated by", "suggested by",
		"demonstrated", "supported by", "shown by", "according to",
		"typically", "classically", "characteristically",
	},
}

// ConnectivesFor returns the phrase table for a reasoning family.
func ConnectivesFor(family ReasoningFamily) []string {
	return connectivesByFamily[family]
}

// CoherenceMarkers are ordinal and contrastive connectors used by the
// response-structure signal to detect organized multi-part answers.
var coherenceMarkers = []string{
	"first", "second", "third", "finally", "however", "additionally",
	"furthermore", "moreover", "in addition", "also", "but", "although",
}

// CoherenceMarkerTerms returns the coherence marker table.
func CoherenceMarkerTerms() []string { return coherenceMarkers }
