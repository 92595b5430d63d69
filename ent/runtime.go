// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/oslerlabs/osler/ent/assessmentevent"
	"github.com/oslerlabs/osler/ent/llmrequestevent"
	"github.com/oslerlabs/osler/ent/notesevent"
	"github.com/oslerlabs/osler/ent/schema"
	"github.com/oslerlabs/osler/ent/sessionevent"
	"github.com/oslerlabs/osler/ent/snapshot"
	"github.com/oslerlabs/osler/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescSubtopic is the schema descriptor for subtopic field.
	assessmenteventDescSubtopic := assessmenteventFields[1].Descriptor()
	// assessmentevent.SubtopicValidator is a validator for the "subtopic" field. It is called by the builders before save.
	assessmentevent.SubtopicValidator = assessmenteventDescSubtopic.Validators[0].(func(string) error)
	// assessmenteventDescQuality is the schema descriptor for quality field.
	assessmenteventDescQuality := assessmenteventFields[2].Descriptor()
	// assessmentevent.QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	assessmentevent.QualityValidator = assessmenteventDescQuality.Validators[0].(func(string) error)
	// assessmenteventDescStruggling is the schema descriptor for struggling field.
	assessmenteventDescStruggling := assessmenteventFields[6].Descriptor()
	// assessmentevent.DefaultStruggling holds the default value on creation for the struggling field.
	assessmentevent.DefaultStruggling = assessmenteventDescStruggling.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	noteseventMixin := schema.NotesEvent{}.Mixin()
	noteseventMixinFields0 := noteseventMixin[0].Fields()
	_ = noteseventMixinFields0
	noteseventFields := schema.NotesEvent{}.Fields()
	_ = noteseventFields
	// noteseventDescTimestamp is the schema descriptor for timestamp field.
	noteseventDescTimestamp := noteseventMixinFields0[1].Descriptor()
	// notesevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	notesevent.DefaultTimestamp = noteseventDescTimestamp.Default.(func() time.Time)
	// noteseventDescSessionID is the schema descriptor for session_id field.
	noteseventDescSessionID := noteseventFields[0].Descriptor()
	// notesevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	notesevent.SessionIDValidator = noteseventDescSessionID.Validators[0].(func(string) error)
	// noteseventDescTopic is the schema descriptor for topic field.
	noteseventDescTopic := noteseventFields[1].Descriptor()
	// notesevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	notesevent.TopicValidator = noteseventDescTopic.Validators[0].(func(string) error)
	// noteseventDescChars is the schema descriptor for chars field.
	noteseventDescChars := noteseventFields[3].Descriptor()
	// notesevent.DefaultChars holds the default value on creation for the chars field.
	notesevent.DefaultChars = noteseventDescChars.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[2].Descriptor()
	// sessionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionevent.TopicValidator = sessioneventDescTopic.Validators[0].(func(string) error)
	// sessioneventDescSubtopicsTotal is the schema descriptor for subtopics_total field.
	sessioneventDescSubtopicsTotal := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSubtopicsTotal holds the default value on creation for the subtopics_total field.
	sessionevent.DefaultSubtopicsTotal = sessioneventDescSubtopicsTotal.Default.(int)
	// sessioneventDescSubtopicsUnderstood is the schema descriptor for subtopics_understood field.
	sessioneventDescSubtopicsUnderstood := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultSubtopicsUnderstood holds the default value on creation for the subtopics_understood field.
	sessionevent.DefaultSubtopicsUnderstood = sessioneventDescSubtopicsUnderstood.Default.(int)
	// sessioneventDescSubtopicsGap is the schema descriptor for subtopics_gap field.
	sessioneventDescSubtopicsGap := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultSubtopicsGap holds the default value on creation for the subtopics_gap field.
	sessionevent.DefaultSubtopicsGap = sessioneventDescSubtopicsGap.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescSubtopic is the schema descriptor for subtopic field.
	turneventDescSubtopic := turneventFields[1].Descriptor()
	// turnevent.DefaultSubtopic holds the default value on creation for the subtopic field.
	turnevent.DefaultSubtopic = turneventDescSubtopic.Default.(string)
	// turneventDescRole is the schema descriptor for role field.
	turneventDescRole := turneventFields[2].Descriptor()
	// turnevent.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	turnevent.RoleValidator = turneventDescRole.Validators[0].(func(string) error)
	// turneventDescQuestionType is the schema descriptor for question_type field.
	turneventDescQuestionType := turneventFields[4].Descriptor()
	// turnevent.DefaultQuestionType holds the default value on creation for the question_type field.
	turnevent.DefaultQuestionType = turneventDescQuestionType.Default.(string)
}
