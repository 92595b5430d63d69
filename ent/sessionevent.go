// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oslerlabs/osler/ent/sessionevent"
)

// SessionEvent is the model entity for the SessionEvent schema.
type SessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// start, end, or abandon
	Action string `json:"action,omitempty"`
	// Topic the student chose
	Topic string `json:"topic,omitempty"`
	// Number of subtopics in the session plan
	SubtopicsTotal int `json:"subtopics_total,omitempty"`
	// Subtopics finished as understood (on end only)
	SubtopicsUnderstood int `json:"subtopics_understood,omitempty"`
	// Subtopics finished with gaps (on end only)
	SubtopicsGap int `json:"subtopics_gap,omitempty"`
	// Actual duration in seconds (on end only)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID, sessionevent.FieldSequence, sessionevent.FieldSubtopicsTotal, sessionevent.FieldSubtopicsUnderstood, sessionevent.FieldSubtopicsGap, sessionevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case sessionevent.FieldSessionID, sessionevent.FieldAction, sessionevent.FieldTopic:
			values[i] = new(sql.NullString)
		case sessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionEvent fields.
func (_m *SessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case sessionevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case sessionevent.FieldSubtopicsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopics_total", values[i])
			} else if value.Valid {
				_m.SubtopicsTotal = int(value.Int64)
			}
		case sessionevent.FieldSubtopicsUnderstood:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopics_understood", values[i])
			} else if value.Valid {
				_m.SubtopicsUnderstood = int(value.Int64)
			}
		case sessionevent.FieldSubtopicsGap:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopics_gap", values[i])
			} else if value.Valid {
				_m.SubtopicsGap = int(value.Int64)
			}
		case sessionevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionEvent.
// Note that you need to call SessionEvent.Unwrap() before calling this method if this SessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionEvent) Update() *SessionEventUpdateOne {
	return NewSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionEvent) Unwrap() *SessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("subtopics_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubtopicsTotal))
	builder.WriteString(", ")
	builder.WriteString("subtopics_understood=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubtopicsUnderstood))
	builder.WriteString(", ")
	builder.WriteString("subtopics_gap=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubtopicsGap))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// SessionEvents is a parsable slice of SessionEvent.
type SessionEvents []*SessionEvent
