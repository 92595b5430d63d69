// Code generated by ent, DO NOT EDIT.

package notesevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oslerlabs/osler/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldSessionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldTopic, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldPath, v))
}

// Chars applies equality check predicate on the "chars" field. It's identical to CharsEQ.
func Chars(v int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldChars, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldContainsFold(FieldTopic, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldContainsFold(FieldPath, v))
}

// CharsEQ applies the EQ predicate on the "chars" field.
func CharsEQ(v int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldEQ(FieldChars, v))
}

// CharsNEQ applies the NEQ predicate on the "chars" field.
func CharsNEQ(v int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNEQ(FieldChars, v))
}

// CharsIn applies the In predicate on the "chars" field.
func CharsIn(vs ...int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldIn(FieldChars, vs...))
}

// CharsNotIn applies the NotIn predicate on the "chars" field.
func CharsNotIn(vs ...int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldNotIn(FieldChars, vs...))
}

// CharsGT applies the GT predicate on the "chars" field.
func CharsGT(v int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGT(FieldChars, v))
}

// CharsGTE applies the GTE predicate on the "chars" field.
func CharsGTE(v int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldGTE(FieldChars, v))
}

// CharsLT applies the LT predicate on the "chars" field.
func CharsLT(v int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLT(FieldChars, v))
}

// CharsLTE applies the LTE predicate on the "chars" field.
func CharsLTE(v int) predicate.NotesEvent {
	return predicate.NotesEvent(sql.FieldLTE(FieldChars, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotesEvent) predicate.NotesEvent {
	return predicate.NotesEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotesEvent) predicate.NotesEvent {
	return predicate.NotesEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotesEvent) predicate.NotesEvent {
	return predicate.NotesEvent(sql.NotPredicates(p))
}
