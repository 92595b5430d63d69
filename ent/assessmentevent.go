// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oslerlabs/osler/ent/assessmentevent"
)

// AssessmentEvent is the model entity for the AssessmentEvent schema.
type AssessmentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// Subtopic the answer was assessed against
	Subtopic string `json:"subtopic,omitempty"`
	// excellent, good, partial, incorrect, or confused
	Quality string `json:"quality,omitempty"`
	// Assessment confidence in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// initial-assessment, targeted-remediation, or complete
	Phase string `json:"phase,omitempty"`
	// continue-probing, explain-gap, advance, or complete-subtopic
	NextAction string `json:"next_action,omitempty"`
	// Whether the student signaled giving up
	Struggling bool `json:"struggling,omitempty"`
	// Expected concepts absent from the answer
	MissingConcepts []string `json:"missing_concepts,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldMissingConcepts:
			values[i] = new([]byte)
		case assessmentevent.FieldStruggling:
			values[i] = new(sql.NullBool)
		case assessmentevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case assessmentevent.FieldID, assessmentevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case assessmentevent.FieldSessionID, assessmentevent.FieldSubtopic, assessmentevent.FieldQuality, assessmentevent.FieldPhase, assessmentevent.FieldNextAction:
			values[i] = new(sql.NullString)
		case assessmentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentEvent fields.
func (_m *AssessmentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessmentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assessmentevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case assessmentevent.FieldSubtopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic", values[i])
			} else if value.Valid {
				_m.Subtopic = value.String
			}
		case assessmentevent.FieldQuality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quality", values[i])
			} else if value.Valid {
				_m.Quality = value.String
			}
		case assessmentevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case assessmentevent.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case assessmentevent.FieldNextAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field next_action", values[i])
			} else if value.Valid {
				_m.NextAction = value.String
			}
		case assessmentevent.FieldStruggling:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field struggling", values[i])
			} else if value.Valid {
				_m.Struggling = value.Bool
			}
		case assessmentevent.FieldMissingConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field missing_concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MissingConcepts); err != nil {
					return fmt.Errorf("unmarshal field missing_concepts: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentEvent.
// Note that you need to call AssessmentEvent.Unwrap() before calling this method if this AssessmentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentEvent) Update() *AssessmentEventUpdateOne {
	return NewAssessmentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentEvent) Unwrap() *AssessmentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentEvent(")
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
	builder.WriteString("subtopic=")
	builder.WriteString(_m.Subtopic)
	builder.WriteString(", ")
	builder.WriteString("quality=")
	builder.WriteString(_m.Quality)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("next_action=")
	builder.WriteString(_m.NextAction)
	builder.WriteString(", ")
	builder.WriteString("struggling=")
	builder.WriteString(fmt.Sprintf("%v", _m.Struggling))
	builder.WriteString(", ")
	builder.WriteString("missing_concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MissingConcepts))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentEvents is a parsable slice of AssessmentEvent.
type AssessmentEvents []*AssessmentEvent
