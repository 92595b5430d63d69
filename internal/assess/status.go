package assess

// TriagingStatus tracks how much evidence has been gathered for a subtopic:
// whether an initial assessment happened, which gaps were remediated or
// merely acknowledged, the exchange budget consumed, and whether application
// (not just recall) has been tested. It is an immutable value — state
// changes go through Apply, which returns a new status.
type TriagingStatus struct {
	InitialAssessmentDone bool
	GapsRemediated        []string
	GapsAcknowledged      []string
	ExchangesUsed         int
	ApplicationTested     bool
}

// StatusDelta describes a change to a TriagingStatus. Deltas are produced by
// the combiner and the state machine and merged exactly once per turn.
type StatusDelta struct {
	MarkInitialAssessment bool
	AcknowledgeGaps       []string
	RemediateGaps         []string
	AddExchanges          int
	MarkApplicationTested bool
}

// IsZero reports whether the delta changes nothing.
func (d StatusDelta) IsZero() bool {
	return !d.MarkInitialAssessment && !d.MarkApplicationTested &&
		d.AddExchanges == 0 && len(d.AcknowledgeGaps) == 0 && len(d.RemediateGaps) == 0
}

// Apply merges a delta into the status, returning a new value. The receiver
// is never modified; slices are copied, acknowledged gaps that get
// remediated move between the two sets, and duplicates are dropped.
func (s TriagingStatus) Apply(d StatusDelta) TriagingStatus {
	next := TriagingStatus{
		InitialAssessmentDone: s.InitialAssessmentDone || d.MarkInitialAssessment,
		ExchangesUsed:         s.ExchangesUsed + d.AddExchanges,
		ApplicationTested:     s.ApplicationTested || d.MarkApplicationTested,
		GapsRemediated:        appendUnique(nil, s.GapsRemediated...),
		GapsAcknowledged:      appendUnique(nil, s.GapsAcknowledged...),
	}

	next.GapsRemediated = appendUnique(next.GapsRemediated, d.RemediateGaps...)
	next.GapsAcknowledged = appendUnique(next.GapsAcknowledged, d.AcknowledgeGaps...)

	// A remediated gap is no longer merely acknowledged.
	if len(next.GapsRemediated) > 0 && len(next.GapsAcknowledged) > 0 {
		remediated := make(map[string]bool, len(next.GapsRemediated))
		for _, g := range next.GapsRemediated {
			remediated[g] = true
		}
		var kept []string
		for _, g := range next.GapsAcknowledged {
			if !remediated[g] {
				kept = append(kept, g)
			}
		}
		next.GapsAcknowledged = kept
	}

	return next
}

// OutstandingGaps returns acknowledged gaps not yet remediated.
func (s TriagingStatus) OutstandingGaps() []string {
	return appendUnique(nil, s.GapsAcknowledged...)
}

func appendUnique(dst []string, items ...string) []string {
	seen := make(map[string]bool, len(dst)+len(items))
	for _, v := range dst {
		seen[v] = true
	}
	for _, v := range items {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		dst = append(dst, v)
	}
	return dst
}
