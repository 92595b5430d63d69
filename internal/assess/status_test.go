package assess

import "testing"

func TestTriagingStatus_ApplyDoesNotMutateReceiver(t *testing.T) {
	orig := TriagingStatus{
		GapsAcknowledged: []string{"vasospasm"},
		ExchangesUsed:    2,
	}
	_ = orig.Apply(StatusDelta{AddExchanges: 1, AcknowledgeGaps: []string{"proteinuria"}})

	if orig.ExchangesUsed != 2 {
		t.Error("Apply must not mutate the receiver")
	}
	if len(orig.GapsAcknowledged) != 1 {
		t.Errorf("receiver slice grew to %d entries", len(orig.GapsAcknowledged))
	}
}

func TestTriagingStatus_RemediationMovesGap(t *testing.T) {
	st := TriagingStatus{GapsAcknowledged: []string{"vasospasm", "proteinuria"}}
	next := st.Apply(StatusDelta{RemediateGaps: []string{"vasospasm"}})

	if len(next.GapsRemediated) != 1 || next.GapsRemediated[0] != "vasospasm" {
		t.Errorf("got remediated %v", next.GapsRemediated)
	}
	for _, g := range next.GapsAcknowledged {
		if g == "vasospasm" {
			t.Error("remediated gap must leave the acknowledged set")
		}
	}
}

func TestTriagingStatus_ApplyDeduplicates(t *testing.T) {
	st := TriagingStatus{GapsAcknowledged: []string{"vasospasm"}}
	next := st.Apply(StatusDelta{AcknowledgeGaps: []string{"vasospasm", "vasospasm"}})
	if len(next.GapsAcknowledged) != 1 {
		t.Errorf("got %d acknowledged gaps, want 1", len(next.GapsAcknowledged))
	}
}

func TestTriagingStatus_FlagsAreSticky(t *testing.T) {
	st := TriagingStatus{InitialAssessmentDone: true, ApplicationTested: true}
	next := st.Apply(StatusDelta{AddExchanges: 1})
	if !next.InitialAssessmentDone || !next.ApplicationTested {
		t.Error("set flags must survive unrelated deltas")
	}
}

func TestStatusDelta_IsZero(t *testing.T) {
	if !(StatusDelta{}).IsZero() {
		t.Error("empty delta should be zero")
	}
	if (StatusDelta{AddExchanges: 1}).IsZero() {
		t.Error("delta with exchanges is not zero")
	}
}
