package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purposes attached to generation calls for event logging.
const (
	PurposeDecomposition = "topic-decomposition"
	PurposeDialogue      = "tutor-dialogue"
	PurposeNotes         = "study-notes"
)

// WithPurpose labels the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
