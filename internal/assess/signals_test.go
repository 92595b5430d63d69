package assess

import (
	"testing"

	"github.com/oslerlabs/osler/internal/patterns"
	"github.com/oslerlabs/osler/internal/requirements"
)

func preeclampsiaPathoReqs() requirements.SubtopicRequirements {
	return requirements.Generate("Preeclampsia pathophysiology", "Preeclampsia")
}

func TestScoreVocabulary_Monotonic(t *testing.T) {
	// B's matched terms are a strict subset of A's; A must not score lower.
	a := scoreVocabulary("hypertension proteinuria edema vasospasm")
	b := scoreVocabulary("hypertension proteinuria")
	if a.Score < b.Score {
		t.Errorf("superset scored %f below subset %f", a.Score, b.Score)
	}
}

func TestScoreVocabulary_Saturates(t *testing.T) {
	long := "hypertension proteinuria edema ischemia hypoxia sepsis acidosis dyspnea syncope oliguria hemorrhage thrombosis"
	s := scoreVocabulary(long)
	if s.Score >= 1.0 {
		t.Errorf("score %f should saturate below 1.0", s.Score)
	}
	if s.Score < 0.7 {
		t.Errorf("many advanced terms should score high, got %f", s.Score)
	}
}

func TestScoreVocabulary_TierWeighting(t *testing.T) {
	domain := scoreVocabulary("vasospasm")
	basic := scoreVocabulary("fever")
	if domain.Score <= basic.Score {
		t.Errorf("domain term %f should outscore basic term %f", domain.Score, basic.Score)
	}
}

func TestScoreReasoning_DiversityOverRepetition(t *testing.T) {
	repeated := scoreReasoning("because of this, because of that, because of the other")
	diverse := scoreReasoning("because the pressure rises, whereas in normals it falls, and if untreated it worsens")
	if diverse.Score <= repeated.Score {
		t.Errorf("diverse %f should outscore repeated %f", diverse.Score, repeated.Score)
	}
	if repeated.Score != 0.4 {
		t.Errorf("single family should score 0.4, got %f", repeated.Score)
	}
}

func TestScoreReasoning_NoConnectives(t *testing.T) {
	s := scoreReasoning("hypertension proteinuria edema")
	if s.Score != 0 {
		t.Errorf("got %f, want 0", s.Score)
	}
}

func TestScoreConcept_NatureSelectsMarkers(t *testing.T) {
	answer := "the endothelial damage is mediated by an inflammatory cascade"
	mech := scoreConcept(answer, patterns.NatureMechanism)
	mgmt := scoreConcept(answer, patterns.NatureManagement)
	if mech.Score <= mgmt.Score {
		t.Errorf("mechanism answer should score higher on mechanism nature: %f vs %f", mech.Score, mgmt.Score)
	}
}

func TestScoreTopic_StrictlyIncreasingCoverage(t *testing.T) {
	expected := []string{"placental dysfunction", "proteinuria", "magnesium sulfate"}
	one := scoreTopic("there is proteinuria", expected)
	two := scoreTopic("there is proteinuria from placental dysfunction", expected)
	three := scoreTopic("proteinuria from placental dysfunction treated with magnesium sulfate", expected)
	if !(one.Score < two.Score && two.Score < three.Score) {
		t.Errorf("coverage must strictly increase score: %f, %f, %f", one.Score, two.Score, three.Score)
	}
}

func TestScoreTopic_NeutralWithoutConcepts(t *testing.T) {
	s := scoreTopic("anything at all", nil)
	if s.Score != topicNeutralScore {
		t.Errorf("got %f, want neutral %f", s.Score, topicNeutralScore)
	}
}

func TestScoreClinical_ApplicationFraming(t *testing.T) {
	framed := scoreClinical("I would start labetalol as it is first line here")
	unframed := scoreClinical("labetalol hydralazine nifedipine")
	if framed.Score <= unframed.Score {
		t.Errorf("application framing %f should outscore bare vocabulary %f", framed.Score, unframed.Score)
	}
}

func TestScoreStructure_ShortAnswerPenalized(t *testing.T) {
	short := scoreStructure("proteinuria and edema")
	full := scoreStructure("First, placental hypoperfusion releases factors into the circulation. However, the damage is systemic: endothelium everywhere is affected.")
	if short.Score >= full.Score {
		t.Errorf("terse answer %f should score below organized answer %f", short.Score, full.Score)
	}
	if short.Score > 0.2 {
		t.Errorf("sub-minimum answer scored %f, want <= 0.2", short.Score)
	}
}

func TestScoreStructure_RamblingPenalized(t *testing.T) {
	var long string
	for range 40 {
		long += "and then the blood pressure goes up and the kidneys leak protein "
	}
	s := scoreStructure(long)
	inRange := scoreStructure("Placental dysfunction causes endothelial dysfunction. This raises blood pressure and causes proteinuria.")
	if s.Score >= inRange.Score {
		t.Errorf("rambling answer %f should score below in-range answer %f", s.Score, inRange.Score)
	}
}

func TestScore_PanickingScorerContained(t *testing.T) {
	got := safeScore(SignalVocabulary, func() SignalScore {
		panic("boom")
	})
	if got.Score != neutralScore {
		t.Errorf("got %f, want neutral %f", got.Score, neutralScore)
	}
	if len(got.Evidence) == 0 {
		t.Error("contained failure should leave an evidence note")
	}
}

func TestScore_AllSignalsPopulated(t *testing.T) {
	scores := Score("Preeclampsia occurs due to placental dysfunction.", preeclampsiaPathoReqs())
	for sig := Signal(0); sig < numSignals; sig++ {
		if scores[sig].Score < 0 || scores[sig].Score > 1 {
			t.Errorf("%s score %f out of [0,1]", sig, scores[sig].Score)
		}
	}
}
