package tutor

import "github.com/oslerlabs/osler/internal/dialogue"

// decompositionMsg is sent when the first-turn topic decomposition is ready.
type decompositionMsg struct {
	Decomposition *dialogue.Decomposition
	Err           error
}

// turnReadyMsg is sent when the next tutor message has been generated.
type turnReadyMsg struct {
	Kind dialogue.TurnKind
	Text string
	Err  error
}

// notesReadyMsg is sent when study notes have been generated and written.
type notesReadyMsg struct {
	Path  string
	Chars int
	Err   error
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct {
	generateNotes bool
}
