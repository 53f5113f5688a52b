// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "page_id", Type: field.TypeString},
		{Name: "test_type", Type: field.TypeString},
		{Name: "selection_flat", Type: field.TypeJSON, Nullable: true},
		{Name: "selection_text", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "ai_score", Type: field.TypeInt, Nullable: true},
		{Name: "time_ms", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_course_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_page_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: ""},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_course_id",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[1]},
			},
		},
	}
	// DailyFlagsColumns holds the columns for the "daily_flags" table.
	DailyFlagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "last_shown", Type: field.TypeString, Default: ""},
		{Name: "declined_until", Type: field.TypeTime, Nullable: true},
		{Name: "completed_day", Type: field.TypeString, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DailyFlagsTable holds the schema information for the "daily_flags" table.
	DailyFlagsTable = &schema.Table{
		Name:       "daily_flags",
		Columns:    DailyFlagsColumns,
		PrimaryKey: []*schema.Column{DailyFlagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dailyflag_user_id",
				Unique:  false,
				Columns: []*schema.Column{DailyFlagsColumns[1]},
			},
		},
	}
	// HeartLedgersColumns holds the columns for the "heart_ledgers" table.
	HeartLedgersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "hearts", Type: field.TypeInt, Default: 3},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// HeartLedgersTable holds the schema information for the "heart_ledgers" table.
	HeartLedgersTable = &schema.Table{
		Name:       "heart_ledgers",
		Columns:    HeartLedgersColumns,
		PrimaryKey: []*schema.Column{HeartLedgersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "heartledger_user_id",
				Unique:  false,
				Columns: []*schema.Column{HeartLedgersColumns[1]},
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
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
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
	// PagesColumns holds the columns for the "pages" table.
	PagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "page_id", Type: field.TypeString, Unique: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "number", Type: field.TypeInt},
		{Name: "length", Type: field.TypeInt},
		{Name: "page_type", Type: field.TypeString},
		{Name: "test_type", Type: field.TypeString, Default: ""},
		{Name: "grid", Type: field.TypeString, Default: ""},
		{Name: "header", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "question", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "image", Type: field.TypeString, Nullable: true},
		{Name: "why", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "answer_flat", Type: field.TypeJSON, Nullable: true},
		{Name: "answer_text", Type: field.TypeString, Nullable: true},
		{Name: "ai_graded", Type: field.TypeBool, Default: false},
		{Name: "give_feedback", Type: field.TypeBool, Default: false},
		{Name: "give_point", Type: field.TypeBool, Default: false},
		{Name: "give_point_by_ai", Type: field.TypeBool, Default: false},
		{Name: "score_threshold", Type: field.TypeInt, Default: 0},
		{Name: "low_score_page_id", Type: field.TypeString, Default: ""},
		{Name: "high_score_page_id", Type: field.TypeString, Default: ""},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tip", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PagesTable holds the schema information for the "pages" table.
	PagesTable = &schema.Table{
		Name:       "pages",
		Columns:    PagesColumns,
		PrimaryKey: []*schema.Column{PagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "page_page_id",
				Unique:  false,
				Columns: []*schema.Column{PagesColumns[1]},
			},
			{
				Name:    "page_course_id",
				Unique:  false,
				Columns: []*schema.Column{PagesColumns[2]},
			},
			{
				Name:    "page_course_id_number",
				Unique:  true,
				Columns: []*schema.Column{PagesColumns[2], PagesColumns[3]},
			},
		},
	}
	// PageOptionsColumns holds the columns for the "page_options" table.
	PageOptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "page_id", Type: field.TypeString},
		{Name: "option_id", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "option_order", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "icon", Type: field.TypeString, Default: ""},
	}
	// PageOptionsTable holds the schema information for the "page_options" table.
	PageOptionsTable = &schema.Table{
		Name:       "page_options",
		Columns:    PageOptionsColumns,
		PrimaryKey: []*schema.Column{PageOptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pageoption_page_id",
				Unique:  false,
				Columns: []*schema.Column{PageOptionsColumns[1]},
			},
			{
				Name:    "pageoption_page_id_option_id",
				Unique:  true,
				Columns: []*schema.Column{PageOptionsColumns[1], PageOptionsColumns[2]},
			},
		},
	}
	// PageProgressesColumns holds the columns for the "page_progresses" table.
	PageProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PageProgressesTable holds the schema information for the "page_progresses" table.
	PageProgressesTable = &schema.Table{
		Name:       "page_progresses",
		Columns:    PageProgressesColumns,
		PrimaryKey: []*schema.Column{PageProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pageprogress_user_id_course_id",
				Unique:  true,
				Columns: []*schema.Column{PageProgressesColumns[1], PageProgressesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		CoursesTable,
		DailyFlagsTable,
		HeartLedgersTable,
		LlmRequestEventsTable,
		PagesTable,
		PageOptionsTable,
		PageProgressesTable,
	}
)

func init() {
}
