package patterns

import "strings"

// SubtopicProfile carries the ground truth for one subtopic of a known
// topic: the concepts a strong answer should touch and the question budget.
type SubtopicProfile struct {
	Title            string
	Keywords         []string // normalized words used for fuzzy title matching
	ExpectedConcepts []string
	MaxQuestions     int
}

// TopicProfile groups the subtopic profiles for one teachable topic.
type TopicProfile struct {
	Topic     string
	Aliases   []string
	Subtopics []SubtopicProfile
}

// DefaultMaxQuestions is the question budget used when a subtopic has no
// specific profile.
const DefaultMaxQuestions = 4

var topicProfiles = []TopicProfile{
	{
		Topic:   "Preeclampsia",
		Aliases: []string{"pre-eclampsia", "hypertensive disorders of pregnancy"},
		Subtopics: []SubtopicProfile{
			{
				Title:    "Preeclampsia pathophysiology",
				Keywords: []string{"pathophysiology", "mechanism", "cause"},
				ExpectedConcepts: []string{
					"placental dysfunction", "endothelial dysfunction",
					"vasospasm", "hypertension", "proteinuria",
					"magnesium sulfate", "spiral artery",
				},
				MaxQuestions: 4,
			},
			{
				Title:    "Preeclampsia diagnosis",
				Keywords: []string{"diagnosis", "criteria", "presentation"},
				ExpectedConcepts: []string{
					"blood pressure", "140/90", "proteinuria",
					"20 weeks", "severe features", "headache",
					"visual disturbance", "hellp",
				},
				MaxQuestions: 4,
			},
			{
				Title:    "Preeclampsia management",
				Keywords: []string{"management", "treatment", "therapy"},
				ExpectedConcepts: []string{
					"delivery", "magnesium sulfate", "labetalol",
					"hydralazine", "nifedipine", "seizure prophylaxis",
					"antihypertensive", "fetal monitoring",
				},
				MaxQuestions: 5,
			},
			{
				Title:    "Preeclampsia risk factors",
				Keywords: []string{"risk", "epidemiology", "prevention"},
				ExpectedConcepts: []string{
					"nulliparity", "prior preeclampsia", "chronic hypertension",
					"diabetes", "obesity", "multiple gestation", "aspirin",
				},
				MaxQuestions: 3,
			},
		},
	},
	{
		Topic:   "Diabetic ketoacidosis",
		Aliases: []string{"dka"},
		Subtopics: []SubtopicProfile{
			{
				Title:    "DKA pathophysiology",
				Keywords: []string{"pathophysiology", "mechanism"},
				ExpectedConcepts: []string{
					"insulin deficiency", "counterregulatory", "lipolysis",
					"ketone", "anion gap", "osmotic diuresis", "dehydration",
				},
				MaxQuestions: 4,
			},
			{
				Title:    "DKA diagnosis",
				Keywords: []string{"diagnosis", "criteria", "presentation"},
				ExpectedConcepts: []string{
					"hyperglycemia", "ketonemia", "acidosis", "anion gap",
					"kussmaul", "polyuria", "polydipsia",
				},
				MaxQuestions: 4,
			},
			{
				Title:    "DKA management",
				Keywords: []string{"management", "treatment"},
				ExpectedConcepts: []string{
					"fluids", "insulin infusion", "potassium",
					"glucose monitoring", "cerebral edema", "precipitating cause",
				},
				MaxQuestions: 5,
			},
		},
	},
	{
		Topic:   "Community-acquired pneumonia",
		Aliases: []string{"cap", "pneumonia"},
		Subtopics: []SubtopicProfile{
			{
				Title:    "Pneumonia pathophysiology",
				Keywords: []string{"pathophysiology", "mechanism", "etiology"},
				ExpectedConcepts: []string{
					"streptococcus pneumoniae", "aspiration", "alveolar",
					"consolidation", "inflammation", "atypical",
				},
				MaxQuestions: 4,
			},
			{
				Title:    "Pneumonia diagnosis",
				Keywords: []string{"diagnosis", "workup", "presentation"},
				ExpectedConcepts: []string{
					"chest x ray", "infiltrate", "crackles", "fever",
					"productive cough", "curb 65", "sputum culture",
				},
				MaxQuestions: 4,
			},
			{
				Title:    "Pneumonia management",
				Keywords: []string{"management", "treatment", "antibiotics"},
				ExpectedConcepts: []string{
					"empiric antibiotics", "amoxicillin", "macrolide",
					"azithromycin", "severity", "admission", "atypical coverage",
				},
				MaxQuestions: 5,
			},
		},
	},
	{
		Topic:   "Atrial fibrillation",
		Aliases: []string{"afib", "af"},
		Subtopics: []SubtopicProfile{
			{
				Title:    "Atrial fibrillation pathophysiology",
				Keywords: []string{"pathophysiology", "mechanism"},
				ExpectedConcepts: []string{
					"pulmonary vein", "reentry", "atrial remodeling",
					"irregularly irregular", "loss of atrial kick", "stasis",
				},
				MaxQuestions: 4,
			},
			{
				Title:    "Atrial fibrillation management",
				Keywords: []string{"management", "treatment"},
				ExpectedConcepts: []string{
					"rate control", "rhythm control", "anticoagulation",
					"cha2ds2 vasc", "beta blocker", "cardioversion",
					"stroke prevention",
				},
				MaxQuestions: 5,
			},
		},
	},
}

// TopicNames returns the built-in topic names in display order.
func TopicNames() []string {
	names := make([]string, len(topicProfiles))
	for i, tp := range topicProfiles {
		names[i] = tp.Topic
	}
	return names
}

// FindTopicProfile looks up a topic profile by name or alias.
// Matching is case-insensitive and tolerates the topic appearing as a
// substring ("managing preeclampsia in pregnancy" matches "Preeclampsia").
func FindTopicProfile(topic string) (*TopicProfile, bool) {
	t := Normalize(topic)
	trimmed := strings.TrimSpace(t)
	for i := range topicProfiles {
		tp := &topicProfiles[i]
		if ContainsTerm(t, tp.Topic) {
			return tp, true
		}
		if trimmed != "" && strings.Contains(Normalize(tp.Topic), " "+trimmed+" ") {
			return tp, true
		}
		for _, alias := range tp.Aliases {
			if ContainsTerm(t, alias) {
				return tp, true
			}
		}
	}
	return nil, false
}

// FindSubtopicProfile resolves the profile for a subtopic title within a
// topic. Exact title match wins; otherwise the profile with the most
// keyword hits in the title is chosen. Returns false when the topic is
// unknown or no keyword matches at all.
func FindSubtopicProfile(subtopicTitle, topic string) (*SubtopicProfile, bool) {
	tp, ok := FindTopicProfile(topic)
	if !ok {
		return nil, false
	}

	norm := Normalize(subtopicTitle)
	for i := range tp.Subtopics {
		if Normalize(tp.Subtopics[i].Title) == norm {
			return &tp.Subtopics[i], true
		}
	}

	best := -1
	bestHits := 0
	for i := range tp.Subtopics {
		hits := 0
		for _, kw := range tp.Subtopics[i].Keywords {
			if ContainsTerm(norm, kw) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = i
		}
	}
	if best < 0 {
		return nil, false
	}
	return &tp.Subtopics[best], true
}
