// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentEventsColumns holds the columns for the "assessment_events" table.
	AssessmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "subtopic", Type: field.TypeString},
		{Name: "quality", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "phase", Type: field.TypeString},
		{Name: "next_action", Type: field.TypeString},
		{Name: "struggling", Type: field.TypeBool, Default: false},
		{Name: "missing_concepts", Type: field.TypeJSON, Nullable: true},
	}
	// AssessmentEventsTable holds the schema information for the "assessment_events" table.
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[1]},
			},
			{
				Name:    "assessmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[3]},
			},
			{
				Name:    "assessmentevent_quality",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// NotesEventsColumns holds the columns for the "notes_events" table.
	NotesEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "chars", Type: field.TypeInt, Default: 0},
	}
	// NotesEventsTable holds the schema information for the "notes_events" table.
	NotesEventsTable = &schema.Table{
		Name:       "notes_events",
		Columns:    NotesEventsColumns,
		PrimaryKey: []*schema.Column{NotesEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notesevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{NotesEventsColumns[1]},
			},
			{
				Name:    "notesevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{NotesEventsColumns[2]},
			},
			{
				Name:    "notesevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{NotesEventsColumns[3]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "subtopics_total", Type: field.TypeInt, Default: 0},
		{Name: "subtopics_understood", Type: field.TypeInt, Default: 0},
		{Name: "subtopics_gap", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_topic",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// TurnEventsColumns holds the columns for the "turn_events" table.
	TurnEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "subtopic", Type: field.TypeString, Default: ""},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "question_type", Type: field.TypeString, Default: ""},
	}
	// TurnEventsTable holds the schema information for the "turn_events" table.
	TurnEventsTable = &schema.Table{
		Name:       "turn_events",
		Columns:    TurnEventsColumns,
		PrimaryKey: []*schema.Column{TurnEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "turnevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[1]},
			},
			{
				Name:    "turnevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[2]},
			},
			{
				Name:    "turnevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[3]},
			},
			{
				Name:    "turnevent_role",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentEventsTable,
		LlmRequestEventsTable,
		NotesEventsTable,
		SessionEventsTable,
		SnapshotsTable,
		TurnEventsTable,
	}
)

func init() {
}
