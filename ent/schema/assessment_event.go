package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records the engine's verdict on one student answer.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("subtopic").
			NotEmpty().
			Comment("Subtopic the answer was assessed against"),
		field.String("quality").
			NotEmpty().
			Comment("excellent, good, partial, incorrect, or confused"),
		field.Float("confidence").
			Comment("Assessment confidence in [0,1]"),
		field.String("phase").
			Comment("initial-assessment, targeted-remediation, or complete"),
		field.String("next_action").
			Comment("continue-probing, explain-gap, advance, or complete-subtopic"),
		field.Bool("struggling").
			Default(false).
			Comment("Whether the student signaled giving up"),
		field.JSON("missing_concepts", []string{}).
			Optional().
			Comment("Expected concepts absent from the answer"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quality"),
	}
}
