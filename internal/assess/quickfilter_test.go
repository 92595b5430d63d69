package assess

import "testing"

func TestQuickFilter_GivingUp(t *testing.T) {
	result, triggered := QuickFilter("I don't know anything about this")
	if !triggered {
		t.Fatal("giving-up answer must trigger the filter")
	}
	if result.Quality != QualityConfused {
		t.Errorf("got quality %q, want confused", result.Quality)
	}
	if result.Confidence < 0.9 {
		t.Errorf("got confidence %f, want >= 0.9", result.Confidence)
	}
	if !result.Struggling {
		t.Error("filter verdicts are struggling by definition")
	}
}

func TestQuickFilter_TooShortDespiteVocabulary(t *testing.T) {
	// Vocabulary content does not rescue a sub-minimal answer.
	result, triggered := QuickFilter("vasospasm proteinuria")
	if !triggered {
		t.Fatal("short answer must trigger the filter")
	}
	if !result.Struggling || result.Confidence < 0.9 {
		t.Errorf("got struggling=%v confidence=%f, want true and >= 0.9", result.Struggling, result.Confidence)
	}
}

func TestQuickFilter_SubstantiveAnswerPasses(t *testing.T) {
	if _, triggered := QuickFilter("High blood pressure in pregnancy. Bad for baby."); triggered {
		t.Error("substantive answer must reach full scoring")
	}
}

func TestQuickFilter_CountsExchange(t *testing.T) {
	result, triggered := QuickFilter("no idea")
	if !triggered {
		t.Fatal("expected trigger")
	}
	if result.StatusDelta.AddExchanges != 1 {
		t.Errorf("filtered turn still consumes an exchange, got %d", result.StatusDelta.AddExchanges)
	}
}
