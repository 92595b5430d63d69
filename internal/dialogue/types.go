// Package dialogue generates the tutor's natural-language side of the
// conversation: the first-turn topic decomposition and every question,
// explanation, and summary shown to the student. Scoring never happens
// here; the tutoring engine decides what kind of turn is needed and this
// package only phrases it.
package dialogue

// Decomposition is the tutor's opening move: a short introduction plus the
// subtopic titles the session will work through.
type Decomposition struct {
	Topic        string
	Introduction string
	Subtopics    []string
}

// TurnKind selects what the next tutor message should do.
type TurnKind string

const (
	// TurnOpening asks the first big question on a fresh subtopic.
	TurnOpening TurnKind = "opening"
	// TurnProbe asks a narrower follow-up within the same subtopic.
	TurnProbe TurnKind = "probe"
	// TurnExplain teaches the concepts the student missed.
	TurnExplain TurnKind = "explain"
	// TurnCheckin asks a comprehension check after an explanation.
	TurnCheckin TurnKind = "checkin"
	// TurnRedirect answers meta-talk briefly and returns to the question.
	TurnRedirect TurnKind = "redirect"
	// TurnTransition wraps up one subtopic and introduces the next.
	TurnTransition TurnKind = "transition"
	// TurnCompletion summarizes the session once every subtopic is done.
	TurnCompletion TurnKind = "completion"
)

// Turn is one prior message in the conversation, student or tutor.
type Turn struct {
	FromStudent bool
	Content     string
}

// TurnInput carries everything the model needs to phrase the next tutor
// message.
type TurnInput struct {
	Topic    string
	Subtopic string
	// Nature hints at the subtopic's angle: mechanism, diagnosis,
	// management, risk, or general.
	Nature string
	Kind    TurnKind
	History []Turn

	// AssessmentSummary is the engine's reasoning trace for the last
	// answer, when one exists.
	AssessmentSummary string
	// Gaps lists concepts the student has not yet demonstrated.
	Gaps []string
	// NextSubtopic is the subtopic being introduced on a transition turn.
	NextSubtopic string
}
