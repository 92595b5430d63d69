package intent

import "testing"

const lastQuestion = "What is the underlying pathophysiology of preeclampsia?"

func TestClassify_NoActiveQuestion(t *testing.T) {
	r := Classify("why are you asking me this?", Context{})
	if r.Type != TypeAssessmentResponse {
		t.Errorf("got %q, want assessment-response when no question is active", r.Type)
	}
	if r.Confidence != 1.0 {
		t.Errorf("got confidence %f, want 1.0", r.Confidence)
	}
}

func TestClassify_ProcessQuestionSkipsAssessment(t *testing.T) {
	r := Classify("why are you asking me this?", Context{LastTutorMessage: lastQuestion})
	if r.Type != TypeConversationalQuestion {
		t.Fatalf("got %q, want conversational-question", r.Type)
	}
	if !r.ShouldSkipAssessment() {
		t.Errorf("confidence %f should clear the skip threshold %f", r.Confidence, SkipAssessmentThreshold)
	}
	if !r.ShouldReturnToFlow {
		t.Error("conversational aside should return to flow")
	}
}

func TestClassify_SubstantiveAnswer(t *testing.T) {
	answer := "Preeclampsia occurs due to placental dysfunction causing endothelial dysfunction and vasospasm."
	r := Classify(answer, Context{LastTutorMessage: lastQuestion})
	if r.Type != TypeAssessmentResponse {
		t.Errorf("got %q, want assessment-response", r.Type)
	}
	if r.ShouldSkipAssessment() {
		t.Error("substantive answer must never skip assessment")
	}
}

func TestClassify_HintRequest(t *testing.T) {
	r := Classify("can I have a hint?", Context{LastTutorMessage: lastQuestion})
	if r.Type != TypeConversationalQuestion {
		t.Errorf("got %q, want conversational-question", r.Type)
	}
}

func TestClassify_SmallTalkIsOther(t *testing.T) {
	r := Classify("haha wow", Context{LastTutorMessage: lastQuestion})
	if r.Type != TypeOther {
		t.Errorf("got %q, want other", r.Type)
	}
}

func TestClassify_TieBreaksTowardAssessment(t *testing.T) {
	// Short content-free statement with no meta signal either.
	r := Classify("the placenta", Context{LastTutorMessage: lastQuestion})
	if r.Type != TypeAssessmentResponse {
		t.Errorf("got %q, want assessment-response on a tie", r.Type)
	}
}

func TestClassify_ContentQuestionStillAssessed(t *testing.T) {
	// A question that engages the content should not be treated as meta.
	msg := "Is it the endothelial dysfunction from placental ischemia that drives the hypertension?"
	r := Classify(msg, Context{LastTutorMessage: lastQuestion})
	if r.Type != TypeAssessmentResponse {
		t.Errorf("got %q, want assessment-response for content-bearing question", r.Type)
	}
}
