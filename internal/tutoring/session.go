// Package tutoring owns the per-session and per-subtopic progression state
// and the engine entry points that tie classification, scoring, and state
// transitions together. The engine is purely functional over the session
// value it receives: callers get back a new session plus the assessment,
// and nothing is mutated in place.
package tutoring

import (
	"strings"

	"github.com/google/uuid"

	"github.com/oslerlabs/osler/internal/assess"
)

// Role identifies a message sender.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

// Message is one turn of the conversation.
type Message struct {
	Role Role
	Text string
}

// QuestionType is the kind of question currently in play.
type QuestionType string

const (
	QuestionParent  QuestionType = "parent"
	QuestionChild   QuestionType = "child"
	QuestionCheckin QuestionType = "checkin"
)

// SubtopicStatus is a subtopic's mastery status.
type SubtopicStatus string

const (
	StatusUnassessed SubtopicStatus = "unassessed"
	StatusGap        SubtopicStatus = "gap"
	StatusShaky      SubtopicStatus = "shaky"
	StatusUnderstood SubtopicStatus = "understood"
)

// IsTerminal reports whether the status ends the subtopic's assessment loop.
func (s SubtopicStatus) IsTerminal() bool {
	return s == StatusUnderstood || s == StatusGap
}

// LifecycleState is the session-level position in the tutoring flow.
type LifecycleState string

const (
	StateAssessing        LifecycleState = "assessing"
	StateExplaining       LifecycleState = "explaining"
	StateChecking         LifecycleState = "checking"
	StateCompletionChoice LifecycleState = "completion-choice"
	StateComplete         LifecycleState = "complete"
)

// Subtopic is one decomposed unit of the topic, tracked for mastery.
// Created at decomposition, transitioned by the state machine, never
// deleted within a session.
type Subtopic struct {
	ID                     string
	Title                  string
	Status                 SubtopicStatus
	Messages               []Message
	QuestionsUsed          int
	CorrectAnswers         int
	ExplanationGiven       bool
	ChecksSinceExplanation int
	Triaging               assess.TriagingStatus
}

// Session is one learning conversation.
type Session struct {
	ID                   string
	Topic                string
	Subtopics            []Subtopic
	CurrentSubtopicIndex int
	Messages             []Message
	ActiveQuestionType   QuestionType
	State                LifecycleState
	ShouldTransition     bool
	Completed            bool
	LastAssessment       *assess.AssessmentResult
}

// NewSession creates a session for a topic. Subtopics arrive later from the
// dialogue service's first-turn decomposition.
func NewSession(topic string) Session {
	return Session{
		ID:                 uuid.NewString(),
		Topic:              topic,
		ActiveQuestionType: QuestionParent,
		State:              StateAssessing,
	}
}

// SetSubtopics installs the decomposed subtopics, assigning ids.
func (s Session) SetSubtopics(titles []string) Session {
	next := s.Clone()
	next.Subtopics = make([]Subtopic, 0, len(titles))
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		next.Subtopics = append(next.Subtopics, Subtopic{
			ID:     uuid.NewString(),
			Title:  title,
			Status: StatusUnassessed,
		})
	}
	next.CurrentSubtopicIndex = 0
	return next
}

// CurrentSubtopic returns the active subtopic, or nil before decomposition.
func (s *Session) CurrentSubtopic() *Subtopic {
	if len(s.Subtopics) == 0 {
		return nil
	}
	if s.CurrentSubtopicIndex < 0 || s.CurrentSubtopicIndex >= len(s.Subtopics) {
		return nil
	}
	return &s.Subtopics[s.CurrentSubtopicIndex]
}

// LastTutorMessage returns the text of the most recent tutor turn, or "".
func (s *Session) LastTutorMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleTutor {
			return s.Messages[i].Text
		}
	}
	return ""
}

// AllSubtopicsTerminal reports whether every subtopic has reached
// understood or gap.
func (s *Session) AllSubtopicsTerminal() bool {
	if len(s.Subtopics) == 0 {
		return false
	}
	for i := range s.Subtopics {
		if !s.Subtopics[i].Status.IsTerminal() {
			return false
		}
	}
	return true
}

// WithTutorMessage appends a tutor turn to the session and active subtopic
// histories, returning a new session.
func (s Session) WithTutorMessage(text string) Session {
	next := s.Clone()
	next.Messages = append(next.Messages, Message{Role: RoleTutor, Text: text})
	if sub := next.CurrentSubtopic(); sub != nil {
		sub.Messages = append(sub.Messages, Message{Role: RoleTutor, Text: text})
	}
	return next
}

// WithStudentMessage appends a student turn, returning a new session.
func (s Session) WithStudentMessage(text string) Session {
	next := s.Clone()
	next.Messages = append(next.Messages, Message{Role: RoleStudent, Text: text})
	if sub := next.CurrentSubtopic(); sub != nil {
		sub.Messages = append(sub.Messages, Message{Role: RoleStudent, Text: text})
	}
	return next
}

// Clone returns a deep copy. The engine works on clones so callers keep an
// unmodified original until they accept the new state.
func (s Session) Clone() Session {
	next := s
	next.Messages = append([]Message(nil), s.Messages...)
	next.Subtopics = make([]Subtopic, len(s.Subtopics))
	for i, sub := range s.Subtopics {
		cp := sub
		cp.Messages = append([]Message(nil), sub.Messages...)
		cp.Triaging = sub.Triaging.Apply(assess.StatusDelta{})
		next.Subtopics[i] = cp
	}
	if s.LastAssessment != nil {
		r := *s.LastAssessment
		next.LastAssessment = &r
	}
	return next
}
