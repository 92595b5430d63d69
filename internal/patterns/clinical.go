package patterns

// ClinicalFrame describes how an answer applies knowledge: deciding what a
// patient has, what to do about it, or what will happen. Distinct from raw
// vocabulary — the clinical-context signal rewards application framing.
type ClinicalFrame string

const (
	FrameDiagnostic  ClinicalFrame = "diagnostic"
	FrameTherapeutic ClinicalFrame = "therapeutic"
	FramePrognostic  ClinicalFrame = "prognostic"
)

// AllClinicalFrames returns the frames in stable order.
func AllClinicalFrames() []ClinicalFrame {
	return []ClinicalFrame{FrameDiagnostic, FrameTherapeutic, FramePrognostic}
}

var markersByFrame = map[ClinicalFrame][]string{
	FrameDiagnostic: {
		"i would suspect", "most likely diagnosis", "consistent with",
		"rule out", "differential", "presents with", "suggestive of",
		"confirmed by", "diagnostic of", "points toward", "indicates",
	},
	FrameTherapeutic: {
		"i would start", "i would give", "managed with", "treated with",
		"first line", "indicated", "contraindicated", "titrate",
		"definitive treatment", "supportive care", "escalate to",
	},
	FramePrognostic: {
		"prognosis", "outcome", "survival", "recurrence", "progresses to",
		"if untreated", "long term", "resolves", "mortality", "risk of",
		"complication", "can lead to", "worsens",
	},
}

// FrameMarkers returns the marker table for a clinical frame.
func FrameMarkers(frame ClinicalFrame) []string {
	return markersByFrame[frame]
}
