// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentEvent is the predicate function for assessmentevent builders.
type AssessmentEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// NotesEvent is the predicate function for notesevent builders.
type NotesEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// TurnEvent is the predicate function for turnevent builders.
type TurnEvent func(*sql.Selector)
