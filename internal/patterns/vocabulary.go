package patterns

// Vocabulary tiers for the vocabulary signal. Basic terms are everyday
// clinical words any layperson might use; advanced terms indicate formal
// medical education; domain terms indicate specialty-level language.

var basicVocabulary = []string{
	"blood pressure", "heart rate", "infection", "fever", "pain",
	"swelling", "bleeding", "breathing", "oxygen", "sugar",
	"kidney", "liver", "lung", "heart", "brain",
	"medication", "treatment", "symptom", "diagnosis", "test",
	"risk", "pregnancy", "baby", "patient", "disease",
	"blood", "urine", "chest", "headache", "dizziness",
}

var advancedVocabulary = []string{
	"hypertension", "hypotension", "tachycardia", "bradycardia",
	"proteinuria", "hematuria", "edema", "ischemia", "hypoxia",
	"perfusion", "etiology", "pathophysiology", "prognosis",
	"differential", "contraindicated", "titrate", "prophylaxis",
	"hemorrhage", "thrombosis", "embolism", "sepsis", "acidosis",
	"alkalosis", "hyperglycemia", "hypoglycemia", "oliguria",
	"dyspnea", "syncope", "auscultation", "palpation",
	"morbidity", "mortality", "iatrogenic", "idiopathic",
}

var domainVocabulary = []string{
	"endothelial dysfunction", "vasospasm", "placental dysfunction",
	"uteroplacental insufficiency", "spiral artery", "trophoblast",
	"magnesium sulfate", "eclampsia", "hellp", "gestational",
	"ketoacidosis", "anion gap", "insulin deficiency", "osmotic diuresis",
	"counterregulatory", "beta blockade", "ace inhibitor",
	"anticoagulation", "cardioversion", "rate control", "rhythm control",
	"consolidation", "curb 65", "empiric antibiotics", "atypical coverage",
	"bronchospasm", "bronchodilator", "corticosteroid", "nebulized",
	"preload", "afterload", "ejection fraction", "natriuretic",
	"glomerular", "nephrotoxic", "hepatotoxic", "teratogenic",
}

// BasicTerms returns the basic vocabulary table.
func BasicTerms() []string { return basicVocabulary }

// AdvancedTerms returns the advanced vocabulary table.
func AdvancedTerms() []string { return advancedVocabulary }

// DomainTerms returns the specialty-level vocabulary table.
func DomainTerms() []string { return domainVocabulary }
