package patterns

import "strings"

// ConceptCategory is a family of concept-specific markers. Which categories
// count toward the concept signal depends on the subtopic's nature.
type ConceptCategory string

const (
	ConceptPathophysiology ConceptCategory = "pathophysiology"
	ConceptDiagnosis       ConceptCategory = "diagnosis"
	ConceptTreatment       ConceptCategory = "treatment"
	ConceptPharmacology    ConceptCategory = "pharmacology"
	ConceptRiskFactors     ConceptCategory = "risk-factors"
)

var markersByCategory = map[ConceptCategory][]string{
	ConceptPathophysiology: {
		"mechanism", "dysfunction", "damage", "inflammation", "ischemia",
		"necrosis", "cascade", "mediated", "receptor", "pathway",
		"vasoconstriction", "vasodilation", "remodeling", "hypoxia",
		"endothelial", "cellular", "molecular",
	},
	ConceptDiagnosis: {
		"criteria", "diagnosed", "workup", "labs", "imaging", "ultrasound",
		"ecg", "x ray", "ct", "mri", "biopsy", "screening", "threshold",
		"elevated", "ruled out", "differential", "presents with",
	},
	ConceptTreatment: {
		"manage", "managed", "management", "treat", "treated", "therapy",
		"intervention", "delivery", "surgery", "monitor", "monitoring",
		"supportive", "first line", "second line", "escalate", "discharge",
	},
	ConceptPharmacology: {
		"dose", "dosing", "mg", "infusion", "oral", "intravenous",
		"side effect", "toxicity", "contraindicated", "mechanism of action",
		"half life", "agonist", "antagonist", "inhibitor", "blocker",
	},
	ConceptRiskFactors: {
		"risk factor", "predispose", "predisposing", "history of",
		"family history", "obesity", "smoking", "age", "nulliparity",
		"multiparity", "chronic", "prior", "genetic", "incidence",
	},
}

// MarkersFor returns the marker table for a concept category.
func MarkersFor(category ConceptCategory) []string {
	return markersByCategory[category]
}

// SubtopicNature describes what kind of understanding a subtopic tests,
// inferred from its title. It selects which concept categories the concept
// signal scores against.
type SubtopicNature string

const (
	NatureMechanism  SubtopicNature = "mechanism"
	NatureDiagnosis  SubtopicNature = "diagnosis"
	NatureManagement SubtopicNature = "management"
	NatureRisk       SubtopicNature = "risk"
	NatureGeneral    SubtopicNature = "general"
)

// ClassifyNature infers a subtopic's nature from its title.
func ClassifyNature(title string) SubtopicNature {
	t := strings.ToLower(title)
	switch {
	case containsAny(t, "pathophysiology", "mechanism", "etiology", "cause"):
		return NatureMechanism
	case containsAny(t, "diagnosis", "diagnostic", "workup", "presentation", "criteria", "findings"):
		return NatureDiagnosis
	case containsAny(t, "management", "treatment", "therapy", "pharmacology", "drugs"):
		return NatureManagement
	case containsAny(t, "risk", "epidemiology", "prevention", "complication"):
		return NatureRisk
	default:
		return NatureGeneral
	}
}

// CategoriesForNature returns the concept categories relevant to a nature.
// General subtopics score against every category so that no answer is
// penalized for an unclassifiable title.
func CategoriesForNature(nature SubtopicNature) []ConceptCategory {
	switch nature {
	case NatureMechanism:
		return []ConceptCategory{ConceptPathophysiology}
	case NatureDiagnosis:
		return []ConceptCategory{ConceptDiagnosis}
	case NatureManagement:
		return []ConceptCategory{ConceptTreatment, ConceptPharmacology}
	case NatureRisk:
		return []ConceptCategory{ConceptRiskFactors}
	default:
		return []ConceptCategory{
			ConceptPathophysiology, ConceptDiagnosis, ConceptTreatment,
			ConceptPharmacology, ConceptRiskFactors,
		}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
