// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSubtopicsTotal holds the string denoting the subtopics_total field in the database.
	FieldSubtopicsTotal = "subtopics_total"
	// FieldSubtopicsUnderstood holds the string denoting the subtopics_understood field in the database.
	FieldSubtopicsUnderstood = "subtopics_understood"
	// FieldSubtopicsGap holds the string denoting the subtopics_gap field in the database.
	FieldSubtopicsGap = "subtopics_gap"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldTopic,
	FieldSubtopicsTotal,
	FieldSubtopicsUnderstood,
	FieldSubtopicsGap,
	FieldDurationSecs,
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
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultSubtopicsTotal holds the default value on creation for the "subtopics_total" field.
	DefaultSubtopicsTotal int
	// DefaultSubtopicsUnderstood holds the default value on creation for the "subtopics_understood" field.
	DefaultSubtopicsUnderstood int
	// DefaultSubtopicsGap holds the default value on creation for the "subtopics_gap" field.
	DefaultSubtopicsGap int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySubtopicsTotal orders the results by the subtopics_total field.
func BySubtopicsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicsTotal, opts...).ToFunc()
}

// BySubtopicsUnderstood orders the results by the subtopics_understood field.
func BySubtopicsUnderstood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicsUnderstood, opts...).ToFunc()
}

// BySubtopicsGap orders the results by the subtopics_gap field.
func BySubtopicsGap(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicsGap, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
