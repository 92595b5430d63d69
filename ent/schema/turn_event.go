package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one conversation turn, tutor or student.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("subtopic").
			Default("").
			Comment("Subtopic active when the turn happened"),
		field.String("role").
			NotEmpty().
			Comment("tutor or student"),
		field.Text("content").
			Comment("The message as shown in the chat"),
		field.String("question_type").
			Default("").
			Comment("parent, child, or checkin (tutor turns only)"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("role"),
	}
}
