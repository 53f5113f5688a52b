// Code generated by ent, DO NOT EDIT.

package page

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the page type in the database.
	Label = "page"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPageID holds the string denoting the page_id field in the database.
	FieldPageID = "page_id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldNumber holds the string denoting the number field in the database.
	FieldNumber = "number"
	// FieldLength holds the string denoting the length field in the database.
	FieldLength = "length"
	// FieldPageType holds the string denoting the page_type field in the database.
	FieldPageType = "page_type"
	// FieldTestType holds the string denoting the test_type field in the database.
	FieldTestType = "test_type"
	// FieldGrid holds the string denoting the grid field in the database.
	FieldGrid = "grid"
	// FieldHeader holds the string denoting the header field in the database.
	FieldHeader = "header"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldImage holds the string denoting the image field in the database.
	FieldImage = "image"
	// FieldWhy holds the string denoting the why field in the database.
	FieldWhy = "why"
	// FieldAnswerFlat holds the string denoting the answer_flat field in the database.
	FieldAnswerFlat = "answer_flat"
	// FieldAnswerText holds the string denoting the answer_text field in the database.
	FieldAnswerText = "answer_text"
	// FieldAiGraded holds the string denoting the ai_graded field in the database.
	FieldAiGraded = "ai_graded"
	// FieldGiveFeedback holds the string denoting the give_feedback field in the database.
	FieldGiveFeedback = "give_feedback"
	// FieldGivePoint holds the string denoting the give_point field in the database.
	FieldGivePoint = "give_point"
	// FieldGivePointByAi holds the string denoting the give_point_by_ai field in the database.
	FieldGivePointByAi = "give_point_by_ai"
	// FieldScoreThreshold holds the string denoting the score_threshold field in the database.
	FieldScoreThreshold = "score_threshold"
	// FieldLowScorePageID holds the string denoting the low_score_page_id field in the database.
	FieldLowScorePageID = "low_score_page_id"
	// FieldHighScorePageID holds the string denoting the high_score_page_id field in the database.
	FieldHighScorePageID = "high_score_page_id"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldTip holds the string denoting the tip field in the database.
	FieldTip = "tip"
	// Table holds the table name of the page in the database.
	Table = "pages"
)

// Columns holds all SQL columns for page fields.
var Columns = []string{
	FieldID,
	FieldPageID,
	FieldCourseID,
	FieldNumber,
	FieldLength,
	FieldPageType,
	FieldTestType,
	FieldGrid,
	FieldHeader,
	FieldBody,
	FieldQuestion,
	FieldSubject,
	FieldImage,
	FieldWhy,
	FieldAnswerFlat,
	FieldAnswerText,
	FieldAiGraded,
	FieldGiveFeedback,
	FieldGivePoint,
	FieldGivePointByAi,
	FieldScoreThreshold,
	FieldLowScorePageID,
	FieldHighScorePageID,
	FieldSystemPrompt,
	FieldTip,
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
	// PageIDValidator is a validator for the "page_id" field. It is called by the builders before save.
	PageIDValidator func(string) error
	// CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	CourseIDValidator func(string) error
	// NumberValidator is a validator for the "number" field. It is called by the builders before save.
	NumberValidator func(int) error
	// LengthValidator is a validator for the "length" field. It is called by the builders before save.
	LengthValidator func(int) error
	// PageTypeValidator is a validator for the "page_type" field. It is called by the builders before save.
	PageTypeValidator func(string) error
	// DefaultTestType holds the default value on creation for the "test_type" field.
	DefaultTestType string
	// DefaultGrid holds the default value on creation for the "grid" field.
	DefaultGrid string
	// DefaultAiGraded holds the default value on creation for the "ai_graded" field.
	DefaultAiGraded bool
	// DefaultGiveFeedback holds the default value on creation for the "give_feedback" field.
	DefaultGiveFeedback bool
	// DefaultGivePoint holds the default value on creation for the "give_point" field.
	DefaultGivePoint bool
	// DefaultGivePointByAi holds the default value on creation for the "give_point_by_ai" field.
	DefaultGivePointByAi bool
	// DefaultScoreThreshold holds the default value on creation for the "score_threshold" field.
	DefaultScoreThreshold int
	// DefaultLowScorePageID holds the default value on creation for the "low_score_page_id" field.
	DefaultLowScorePageID string
	// DefaultHighScorePageID holds the default value on creation for the "high_score_page_id" field.
	DefaultHighScorePageID string
)

// OrderOption defines the ordering options for the Page queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPageID orders the results by the page_id field.
func ByPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByNumber orders the results by the number field.
func ByNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumber, opts...).ToFunc()
}

// ByLength orders the results by the length field.
func ByLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLength, opts...).ToFunc()
}

// ByPageType orders the results by the page_type field.
func ByPageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageType, opts...).ToFunc()
}

// ByTestType orders the results by the test_type field.
func ByTestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestType, opts...).ToFunc()
}

// ByGrid orders the results by the grid field.
func ByGrid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrid, opts...).ToFunc()
}

// ByHeader orders the results by the header field.
func ByHeader(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeader, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByImage orders the results by the image field.
func ByImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImage, opts...).ToFunc()
}

// ByWhy orders the results by the why field.
func ByWhy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhy, opts...).ToFunc()
}

// ByAnswerText orders the results by the answer_text field.
func ByAnswerText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerText, opts...).ToFunc()
}

// ByAiGraded orders the results by the ai_graded field.
func ByAiGraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiGraded, opts...).ToFunc()
}

// ByGiveFeedback orders the results by the give_feedback field.
func ByGiveFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGiveFeedback, opts...).ToFunc()
}

// ByGivePoint orders the results by the give_point field.
func ByGivePoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGivePoint, opts...).ToFunc()
}

// ByGivePointByAi orders the results by the give_point_by_ai field.
func ByGivePointByAi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGivePointByAi, opts...).ToFunc()
}

// ByScoreThreshold orders the results by the score_threshold field.
func ByScoreThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreThreshold, opts...).ToFunc()
}

// ByLowScorePageID orders the results by the low_score_page_id field.
func ByLowScorePageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowScorePageID, opts...).ToFunc()
}

// ByHighScorePageID orders the results by the high_score_page_id field.
func ByHighScorePageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighScorePageID, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByTip orders the results by the tip field.
func ByTip(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTip, opts...).ToFunc()
}
