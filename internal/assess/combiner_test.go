package assess

import (
	"strings"
	"testing"
)

const scenarioStrongAnswer = "Preeclampsia occurs due to placental dysfunction causing endothelial dysfunction and vasospasm, leading to hypertension and proteinuria; managed with magnesium sulfate."

const scenarioWeakAnswer = "High blood pressure in pregnancy. Bad for baby."

func TestCombine_StrongAnswerIsExcellent(t *testing.T) {
	req := preeclampsiaPathoReqs()
	signals := Score(scenarioStrongAnswer, req)
	result := Combine(signals, req, SubtopicState{})

	if result.Quality != QualityExcellent {
		t.Errorf("got quality %q, want excellent\ntrace: %s", result.Quality, result.Reasoning)
	}
	if result.Confidence < 0.8 {
		t.Errorf("got confidence %f, want >= 0.8", result.Confidence)
	}
	if result.Struggling {
		t.Error("strong answer must not be struggling")
	}
}

func TestCombine_SecondGoodAnswerAdvances(t *testing.T) {
	req := preeclampsiaPathoReqs()
	signals := Score(scenarioStrongAnswer, req)
	result := Combine(signals, req, SubtopicState{CorrectAnswers: 1, QuestionsUsed: 1})

	if result.NextAction != ActionAdvance {
		t.Errorf("got action %q, want advance once correct threshold is reached", result.NextAction)
	}
	if result.CurrentPhase != PhaseComplete {
		t.Errorf("got phase %q, want complete", result.CurrentPhase)
	}
}

func TestCombine_WeakAnswerIsPartial(t *testing.T) {
	req := preeclampsiaPathoReqs()
	signals := Score(scenarioWeakAnswer, req)
	result := Combine(signals, req, SubtopicState{})

	if result.Quality != QualityPartial {
		t.Errorf("got quality %q, want partial\ntrace: %s", result.Quality, result.Reasoning)
	}
	if signals[SignalReasoning].Score > 0.2 {
		t.Errorf("weak answer should have low reasoning signal, got %f", signals[SignalReasoning].Score)
	}
	if signals[SignalTopic].Score > 0.2 {
		t.Errorf("weak answer should have low topic signal, got %f", signals[SignalTopic].Score)
	}
	if result.NextAction != ActionContinueProbing && result.NextAction != ActionExplainGap {
		t.Errorf("got action %q, want continue-probing or explain-gap", result.NextAction)
	}
}

func TestCombine_ExpectedConceptCoverageRaisesScore(t *testing.T) {
	req := preeclampsiaPathoReqs()
	low := Score("The kidneys leak protein because the vessels are damaged.", req)
	high := Score("Placental dysfunction and endothelial dysfunction with vasospasm explain the proteinuria; magnesium sulfate prevents seizures.", req)

	if weightedSum(high, req.HasExpectedConcepts()) <= weightedSum(low, req.HasExpectedConcepts()) {
		t.Error("greater expected-concept coverage must raise the weighted score")
	}
}

func TestCombine_WeightVectorsSumToOne(t *testing.T) {
	for _, w := range []Weights{baseWeights, conceptAwareWeights} {
		sum := 0.0
		for _, v := range w {
			sum += v
		}
		if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("weights sum to %f, want 1.0", sum)
		}
	}
}

func TestMustWeights_PanicsOnBadSum(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for weights not summing to 1.0")
		}
	}()
	mustWeights(Weights{SignalVocabulary: 0.5})
}

func TestCombine_BudgetExhaustionForcesTerminalAction(t *testing.T) {
	req := preeclampsiaPathoReqs()
	signals := Score(scenarioWeakAnswer, req)
	// Next question would exceed the budget; combiner must not recommend
	// another probe.
	st := SubtopicState{QuestionsUsed: req.MaxQuestions - 1}
	result := Combine(signals, req, st)
	if result.NextAction != ActionCompleteSubtopic {
		t.Errorf("got action %q, want complete-subtopic at budget", result.NextAction)
	}
}

func TestCombine_RemediationPhaseAfterExplanation(t *testing.T) {
	req := preeclampsiaPathoReqs()
	signals := Score(scenarioWeakAnswer, req)
	result := Combine(signals, req, SubtopicState{ExplanationGiven: true})
	if result.CurrentPhase != PhaseTargetedRemediation {
		t.Errorf("got phase %q, want targeted-remediation", result.CurrentPhase)
	}
}

func TestCombine_TwoChecksAfterExplanationComplete(t *testing.T) {
	req := preeclampsiaPathoReqs()
	signals := Score(scenarioWeakAnswer, req)
	result := Combine(signals, req, SubtopicState{ExplanationGiven: true, ChecksSinceExplanation: 1})
	if result.CurrentPhase != PhaseComplete {
		t.Errorf("got phase %q, want complete after second post-explanation check", result.CurrentPhase)
	}
	if result.NextAction != ActionAdvance {
		t.Errorf("got action %q, want advance", result.NextAction)
	}
}

func TestCombine_DeltaRecordsMissingConcepts(t *testing.T) {
	req := preeclampsiaPathoReqs()
	signals := Score("It involves proteinuria.", req)
	result := Combine(signals, req, SubtopicState{})
	if len(result.StatusDelta.AcknowledgeGaps) == 0 {
		t.Fatal("missing expected concepts should be acknowledged as gaps")
	}
	for _, g := range result.StatusDelta.AcknowledgeGaps {
		if g == "proteinuria" {
			t.Error("covered concept must not be acknowledged as a gap")
		}
	}
}

func TestCombine_TraceNamesEverySignal(t *testing.T) {
	req := preeclampsiaPathoReqs()
	signals := Score(scenarioStrongAnswer, req)
	result := Combine(signals, req, SubtopicState{})
	for sig := Signal(0); sig < numSignals; sig++ {
		if !strings.Contains(result.Reasoning, sig.String()) {
			t.Errorf("trace missing %s: %s", sig, result.Reasoning)
		}
	}
}

func weightedSum(signals SignalScores, conceptAware bool) float64 {
	w := baseWeights
	if conceptAware {
		w = conceptAwareWeights
	}
	sum := 0.0
	for sig := Signal(0); sig < numSignals; sig++ {
		sum += w[sig] * signals[sig].Score
	}
	return sum
}
