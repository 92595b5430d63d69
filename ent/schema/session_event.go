package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records tutoring session lifecycle events (start/end/abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start, end, or abandon"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the student chose"),
		field.Int("subtopics_total").
			Default(0).
			Comment("Number of subtopics in the session plan"),
		field.Int("subtopics_understood").
			Default(0).
			Comment("Subtopics finished as understood (on end only)"),
		field.Int("subtopics_gap").
			Default(0).
			Comment("Subtopics finished with gaps (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("topic"),
	}
}
