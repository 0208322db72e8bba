package store

import (
	entschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table definitions in the shape ent's migrator consumes. Columns are
// referenced by index in PrimaryKey and Indexes, so keep the order stable.
var (
	sequenceColumns = []*entschema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	sequenceTable = &entschema.Table{
		Name:       "global_sequence",
		Columns:    sequenceColumns,
		PrimaryKey: []*entschema.Column{sequenceColumns[0]},
	}

	llmEventColumns = []*entschema.Column{
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
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	llmEventTable = &entschema.Table{
		Name:       "llm_request_events",
		Columns:    llmEventColumns,
		PrimaryKey: []*entschema.Column{llmEventColumns[0]},
		Indexes: []*entschema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*entschema.Column{llmEventColumns[2]}},
			{Name: "llmrequestevent_purpose", Columns: []*entschema.Column{llmEventColumns[5]}},
		},
	}

	resultColumns = []*entschema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "percentage", Type: field.TypeFloat64},
		{Name: "earned_points", Type: field.TypeFloat64},
		{Name: "total_points", Type: field.TypeFloat64},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "competencies", Type: field.TypeString, Size: 2147483647},
		{Name: "weak_areas", Type: field.TypeString, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	resultTable = &entschema.Table{
		Name:       "quiz_results",
		Columns:    resultColumns,
		PrimaryKey: []*entschema.Column{resultColumns[0]},
		Indexes: []*entschema.Index{
			{Name: "quizresult_quiz_id", Columns: []*entschema.Column{resultColumns[2]}},
		},
	}

	quizColumns = []*entschema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "document", Type: field.TypeString, Default: ""},
		{Name: "questions", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "definition", Type: field.TypeString, Size: 2147483647},
	}
	quizTable = &entschema.Table{
		Name:       "quizzes",
		Columns:    quizColumns,
		PrimaryKey: []*entschema.Column{quizColumns[0]},
		Indexes: []*entschema.Index{
			{Name: "quiz_created_at", Columns: []*entschema.Column{quizColumns[3]}},
		},
	}

	documentColumns = []*entschema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "word_count", Type: field.TypeInt},
		{Name: "char_count", Type: field.TypeInt},
		{Name: "page_count", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	documentTable = &entschema.Table{
		Name:       "documents",
		Columns:    documentColumns,
		PrimaryKey: []*entschema.Column{documentColumns[0]},
	}

	profileColumns = []*entschema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "role", Type: field.TypeString},
		{Name: "discipline", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	profileTable = &entschema.Table{
		Name:       "profile",
		Columns:    profileColumns,
		PrimaryKey: []*entschema.Column{profileColumns[0]},
	}

	tables = []*entschema.Table{
		sequenceTable,
		llmEventTable,
		resultTable,
		quizTable,
		documentTable,
		profileTable,
	}
)
