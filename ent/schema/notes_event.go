package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotesEvent records study note generation at the end of a session.
type NotesEvent struct {
	ent.Schema
}

func (NotesEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (NotesEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the notes cover"),
		field.String("path").
			Comment("Filesystem path the markdown was written to"),
		field.Int("chars").
			Default(0).
			Comment("Length of the rendered markdown"),
	}
}

func (NotesEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
