// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oslerlabs/osler/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// Subtopic applies equality check predicate on the "subtopic" field. It's identical to SubtopicEQ.
func Subtopic(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSubtopic, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldRole, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldContent, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldQuestionType, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SubtopicEQ applies the EQ predicate on the "subtopic" field.
func SubtopicEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSubtopic, v))
}

// SubtopicNEQ applies the NEQ predicate on the "subtopic" field.
func SubtopicNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSubtopic, v))
}

// SubtopicIn applies the In predicate on the "subtopic" field.
func SubtopicIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSubtopic, vs...))
}

// SubtopicNotIn applies the NotIn predicate on the "subtopic" field.
func SubtopicNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSubtopic, vs...))
}

// SubtopicGT applies the GT predicate on the "subtopic" field.
func SubtopicGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSubtopic, v))
}

// SubtopicGTE applies the GTE predicate on the "subtopic" field.
func SubtopicGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSubtopic, v))
}

// SubtopicLT applies the LT predicate on the "subtopic" field.
func SubtopicLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSubtopic, v))
}

// SubtopicLTE applies the LTE predicate on the "subtopic" field.
func SubtopicLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSubtopic, v))
}

// SubtopicContains applies the Contains predicate on the "subtopic" field.
func SubtopicContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldSubtopic, v))
}

// SubtopicHasPrefix applies the HasPrefix predicate on the "subtopic" field.
func SubtopicHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldSubtopic, v))
}

// SubtopicHasSuffix applies the HasSuffix predicate on the "subtopic" field.
func SubtopicHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldSubtopic, v))
}

// SubtopicEqualFold applies the EqualFold predicate on the "subtopic" field.
func SubtopicEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldSubtopic, v))
}

// SubtopicContainsFold applies the ContainsFold predicate on the "subtopic" field.
func SubtopicContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldSubtopic, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldRole, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldContent, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldQuestionType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.NotPredicates(p))
}
