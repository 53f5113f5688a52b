// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/naghz/naghz/ent/page"
)

// Page is the model entity for the Page schema.
type Page struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable external identifier
	PageID string `json:"page_id,omitempty"`
	// Owning course
	CourseID string `json:"course_id,omitempty"`
	// 1-based position within the course
	Number int `json:"number,omitempty"`
	// Total pages in the course, denormalized for progress
	Length int `json:"length,omitempty"`
	// text, test, or test-skippable
	PageType string `json:"page_type,omitempty"`
	// Default, Multiple, Sequential, Pluggable, or Input
	TestType string `json:"test_type,omitempty"`
	// Option layout hint: column, grid-2, row
	Grid string `json:"grid,omitempty"`
	// Header holds the value of the "header" field.
	Header string `json:"header,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Image holds the value of the "image" field.
	Image string `json:"image,omitempty"`
	// Rationale shown after a correct answer
	Why string `json:"why,omitempty"`
	// Correct answer in the flat integer encoding
	AnswerFlat []int `json:"answer_flat,omitempty"`
	// Canonical answer for free-response pages
	AnswerText string `json:"answer_text,omitempty"`
	// AiGraded holds the value of the "ai_graded" field.
	AiGraded bool `json:"ai_graded,omitempty"`
	// GiveFeedback holds the value of the "give_feedback" field.
	GiveFeedback bool `json:"give_feedback,omitempty"`
	// GivePoint holds the value of the "give_point" field.
	GivePoint bool `json:"give_point,omitempty"`
	// GivePointByAi holds the value of the "give_point_by_ai" field.
	GivePointByAi bool `json:"give_point_by_ai,omitempty"`
	// Branch threshold; 0 means use the default
	ScoreThreshold int `json:"score_threshold,omitempty"`
	// LowScorePageID holds the value of the "low_score_page_id" field.
	LowScorePageID string `json:"low_score_page_id,omitempty"`
	// HighScorePageID holds the value of the "high_score_page_id" field.
	HighScorePageID string `json:"high_score_page_id,omitempty"`
	// Grading persona for the oracle
	SystemPrompt string `json:"system_prompt,omitempty"`
	// Remedial hint shown for low-band scores
	Tip          string `json:"tip,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Page) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case page.FieldAnswerFlat:
			values[i] = new([]byte)
		case page.FieldAiGraded, page.FieldGiveFeedback, page.FieldGivePoint, page.FieldGivePointByAi:
			values[i] = new(sql.NullBool)
		case page.FieldID, page.FieldNumber, page.FieldLength, page.FieldScoreThreshold:
			values[i] = new(sql.NullInt64)
		case page.FieldPageID, page.FieldCourseID, page.FieldPageType, page.FieldTestType, page.FieldGrid, page.FieldHeader, page.FieldBody, page.FieldQuestion, page.FieldSubject, page.FieldImage, page.FieldWhy, page.FieldAnswerText, page.FieldLowScorePageID, page.FieldHighScorePageID, page.FieldSystemPrompt, page.FieldTip:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Page fields.
func (_m *Page) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case page.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case page.FieldPageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value.Valid {
				_m.PageID = value.String
			}
		case page.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case page.FieldNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = int(value.Int64)
			}
		case page.FieldLength:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field length", values[i])
			} else if value.Valid {
				_m.Length = int(value.Int64)
			}
		case page.FieldPageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_type", values[i])
			} else if value.Valid {
				_m.PageType = value.String
			}
		case page.FieldTestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_type", values[i])
			} else if value.Valid {
				_m.TestType = value.String
			}
		case page.FieldGrid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grid", values[i])
			} else if value.Valid {
				_m.Grid = value.String
			}
		case page.FieldHeader:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field header", values[i])
			} else if value.Valid {
				_m.Header = value.String
			}
		case page.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case page.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case page.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case page.FieldImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image", values[i])
			} else if value.Valid {
				_m.Image = value.String
			}
		case page.FieldWhy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field why", values[i])
			} else if value.Valid {
				_m.Why = value.String
			}
		case page.FieldAnswerFlat:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answer_flat", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnswerFlat); err != nil {
					return fmt.Errorf("unmarshal field answer_flat: %w", err)
				}
			}
		case page.FieldAnswerText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_text", values[i])
			} else if value.Valid {
				_m.AnswerText = value.String
			}
		case page.FieldAiGraded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ai_graded", values[i])
			} else if value.Valid {
				_m.AiGraded = value.Bool
			}
		case page.FieldGiveFeedback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field give_feedback", values[i])
			} else if value.Valid {
				_m.GiveFeedback = value.Bool
			}
		case page.FieldGivePoint:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field give_point", values[i])
			} else if value.Valid {
				_m.GivePoint = value.Bool
			}
		case page.FieldGivePointByAi:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field give_point_by_ai", values[i])
			} else if value.Valid {
				_m.GivePointByAi = value.Bool
			}
		case page.FieldScoreThreshold:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score_threshold", values[i])
			} else if value.Valid {
				_m.ScoreThreshold = int(value.Int64)
			}
		case page.FieldLowScorePageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field low_score_page_id", values[i])
			} else if value.Valid {
				_m.LowScorePageID = value.String
			}
		case page.FieldHighScorePageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field high_score_page_id", values[i])
			} else if value.Valid {
				_m.HighScorePageID = value.String
			}
		case page.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = value.String
			}
		case page.FieldTip:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tip", values[i])
			} else if value.Valid {
				_m.Tip = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Page.
// This includes values selected through modifiers, order, etc.
func (_m *Page) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Page.
// Note that you need to call Page.Unwrap() before calling this method if this Page
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Page) Update() *PageUpdateOne {
	return NewPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Page entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Page) Unwrap() *Page {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Page is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Page) String() string {
	var builder strings.Builder
	builder.WriteString("Page(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page_id=")
	builder.WriteString(_m.PageID)
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(fmt.Sprintf("%v", _m.Number))
	builder.WriteString(", ")
	builder.WriteString("length=")
	builder.WriteString(fmt.Sprintf("%v", _m.Length))
	builder.WriteString(", ")
	builder.WriteString("page_type=")
	builder.WriteString(_m.PageType)
	builder.WriteString(", ")
	builder.WriteString("test_type=")
	builder.WriteString(_m.TestType)
	builder.WriteString(", ")
	builder.WriteString("grid=")
	builder.WriteString(_m.Grid)
	builder.WriteString(", ")
	builder.WriteString("header=")
	builder.WriteString(_m.Header)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("image=")
	builder.WriteString(_m.Image)
	builder.WriteString(", ")
	builder.WriteString("why=")
	builder.WriteString(_m.Why)
	builder.WriteString(", ")
	builder.WriteString("answer_flat=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerFlat))
	builder.WriteString(", ")
	builder.WriteString("answer_text=")
	builder.WriteString(_m.AnswerText)
	builder.WriteString(", ")
	builder.WriteString("ai_graded=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiGraded))
	builder.WriteString(", ")
	builder.WriteString("give_feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.GiveFeedback))
	builder.WriteString(", ")
	builder.WriteString("give_point=")
	builder.WriteString(fmt.Sprintf("%v", _m.GivePoint))
	builder.WriteString(", ")
	builder.WriteString("give_point_by_ai=")
	builder.WriteString(fmt.Sprintf("%v", _m.GivePointByAi))
	builder.WriteString(", ")
	builder.WriteString("score_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreThreshold))
	builder.WriteString(", ")
	builder.WriteString("low_score_page_id=")
	builder.WriteString(_m.LowScorePageID)
	builder.WriteString(", ")
	builder.WriteString("high_score_page_id=")
	builder.WriteString(_m.HighScorePageID)
	builder.WriteString(", ")
	builder.WriteString("system_prompt=")
	builder.WriteString(_m.SystemPrompt)
	builder.WriteString(", ")
	builder.WriteString("tip=")
	builder.WriteString(_m.Tip)
	builder.WriteByte(')')
	return builder.String()
}

// Pages is a parsable slice of Page.
type Pages []*Page
