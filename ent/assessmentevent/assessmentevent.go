// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSubtopic holds the string denoting the subtopic field in the database.
	FieldSubtopic = "subtopic"
	// FieldQuality holds the string denoting the quality field in the database.
	FieldQuality = "quality"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldNextAction holds the string denoting the next_action field in the database.
	FieldNextAction = "next_action"
	// FieldStruggling holds the string denoting the struggling field in the database.
	FieldStruggling = "struggling"
	// FieldMissingConcepts holds the string denoting the missing_concepts field in the database.
	FieldMissingConcepts = "missing_concepts"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldSubtopic,
	FieldQuality,
	FieldConfidence,
	FieldPhase,
	FieldNextAction,
	FieldStruggling,
	FieldMissingConcepts,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// SubtopicValidator is a validator for the "subtopic" field. It is called by the builders before save.
	SubtopicValidator func(string) error
	// QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	QualityValidator func(string) error
	// DefaultStruggling holds the default value on creation for the "struggling" field.
	DefaultStruggling bool
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySubtopic orders the results by the subtopic field.
func BySubtopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopic, opts...).ToFunc()
}

// ByQuality orders the results by the quality field.
func ByQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuality, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByNextAction orders the results by the next_action field.
func ByNextAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextAction, opts...).ToFunc()
}

// ByStruggling orders the results by the struggling field.
func ByStruggling(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStruggling, opts...).ToFunc()
}
