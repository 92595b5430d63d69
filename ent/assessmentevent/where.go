// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oslerlabs/osler/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSessionID, v))
}

// Subtopic applies equality check predicate on the "subtopic" field. It's identical to SubtopicEQ.
func Subtopic(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSubtopic, v))
}

// Quality applies equality check predicate on the "quality" field. It's identical to QualityEQ.
func Quality(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldQuality, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldConfidence, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldPhase, v))
}

// NextAction applies equality check predicate on the "next_action" field. It's identical to NextActionEQ.
func NextAction(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldNextAction, v))
}

// Struggling applies equality check predicate on the "struggling" field. It's identical to StrugglingEQ.
func Struggling(v bool) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldStruggling, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SubtopicEQ applies the EQ predicate on the "subtopic" field.
func SubtopicEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSubtopic, v))
}

// SubtopicNEQ applies the NEQ predicate on the "subtopic" field.
func SubtopicNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSubtopic, v))
}

// SubtopicIn applies the In predicate on the "subtopic" field.
func SubtopicIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSubtopic, vs...))
}

// SubtopicNotIn applies the NotIn predicate on the "subtopic" field.
func SubtopicNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSubtopic, vs...))
}

// SubtopicGT applies the GT predicate on the "subtopic" field.
func SubtopicGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSubtopic, v))
}

// SubtopicGTE applies the GTE predicate on the "subtopic" field.
func SubtopicGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSubtopic, v))
}

// SubtopicLT applies the LT predicate on the "subtopic" field.
func SubtopicLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSubtopic, v))
}

// SubtopicLTE applies the LTE predicate on the "subtopic" field.
func SubtopicLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSubtopic, v))
}

// SubtopicContains applies the Contains predicate on the "subtopic" field.
func SubtopicContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldSubtopic, v))
}

// SubtopicHasPrefix applies the HasPrefix predicate on the "subtopic" field.
func SubtopicHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldSubtopic, v))
}

// SubtopicHasSuffix applies the HasSuffix predicate on the "subtopic" field.
func SubtopicHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldSubtopic, v))
}

// SubtopicEqualFold applies the EqualFold predicate on the "subtopic" field.
func SubtopicEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldSubtopic, v))
}

// SubtopicContainsFold applies the ContainsFold predicate on the "subtopic" field.
func SubtopicContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldSubtopic, v))
}

// QualityEQ applies the EQ predicate on the "quality" field.
func QualityEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldQuality, v))
}

// QualityNEQ applies the NEQ predicate on the "quality" field.
func QualityNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldQuality, v))
}

// QualityIn applies the In predicate on the "quality" field.
func QualityIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldQuality, vs...))
}

// QualityNotIn applies the NotIn predicate on the "quality" field.
func QualityNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldQuality, vs...))
}

// QualityGT applies the GT predicate on the "quality" field.
func QualityGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldQuality, v))
}

// QualityGTE applies the GTE predicate on the "quality" field.
func QualityGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldQuality, v))
}

// QualityLT applies the LT predicate on the "quality" field.
func QualityLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldQuality, v))
}

// QualityLTE applies the LTE predicate on the "quality" field.
func QualityLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldQuality, v))
}

// QualityContains applies the Contains predicate on the "quality" field.
func QualityContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldQuality, v))
}

// QualityHasPrefix applies the HasPrefix predicate on the "quality" field.
func QualityHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldQuality, v))
}

// QualityHasSuffix applies the HasSuffix predicate on the "quality" field.
func QualityHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldQuality, v))
}

// QualityEqualFold applies the EqualFold predicate on the "quality" field.
func QualityEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldQuality, v))
}

// QualityContainsFold applies the ContainsFold predicate on the "quality" field.
func QualityContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldQuality, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldConfidence, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldPhase, v))
}

// NextActionEQ applies the EQ predicate on the "next_action" field.
func NextActionEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldNextAction, v))
}

// NextActionNEQ applies the NEQ predicate on the "next_action" field.
func NextActionNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldNextAction, v))
}

// NextActionIn applies the In predicate on the "next_action" field.
func NextActionIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldNextAction, vs...))
}

// NextActionNotIn applies the NotIn predicate on the "next_action" field.
func NextActionNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldNextAction, vs...))
}

// NextActionGT applies the GT predicate on the "next_action" field.
func NextActionGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldNextAction, v))
}

// NextActionGTE applies the GTE predicate on the "next_action" field.
func NextActionGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldNextAction, v))
}

// NextActionLT applies the LT predicate on the "next_action" field.
func NextActionLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldNextAction, v))
}

// NextActionLTE applies the LTE predicate on the "next_action" field.
func NextActionLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldNextAction, v))
}

// NextActionContains applies the Contains predicate on the "next_action" field.
func NextActionContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldNextAction, v))
}

// NextActionHasPrefix applies the HasPrefix predicate on the "next_action" field.
func NextActionHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldNextAction, v))
}

// NextActionHasSuffix applies the HasSuffix predicate on the "next_action" field.
func NextActionHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldNextAction, v))
}

// NextActionEqualFold applies the EqualFold predicate on the "next_action" field.
func NextActionEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldNextAction, v))
}

// NextActionContainsFold applies the ContainsFold predicate on the "next_action" field.
func NextActionContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldNextAction, v))
}

// StrugglingEQ applies the EQ predicate on the "struggling" field.
func StrugglingEQ(v bool) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldStruggling, v))
}

// StrugglingNEQ applies the NEQ predicate on the "struggling" field.
func StrugglingNEQ(v bool) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldStruggling, v))
}

// MissingConceptsIsNil applies the IsNil predicate on the "missing_concepts" field.
func MissingConceptsIsNil() predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIsNull(FieldMissingConcepts))
}

// MissingConceptsNotNil applies the NotNil predicate on the "missing_concepts" field.
func MissingConceptsNotNil() predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotNull(FieldMissingConcepts))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.NotPredicates(p))
}
