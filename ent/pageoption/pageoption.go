// Code generated by ent, DO NOT EDIT.

package pageoption

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pageoption type in the database.
	Label = "page_option"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPageID holds the string denoting the page_id field in the database.
	FieldPageID = "page_id"
	// FieldOptionID holds the string denoting the option_id field in the database.
	FieldOptionID = "option_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldOptionOrder holds the string denoting the option_order field in the database.
	FieldOptionOrder = "option_order"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldIcon holds the string denoting the icon field in the database.
	FieldIcon = "icon"
	// Table holds the table name of the pageoption in the database.
	Table = "page_options"
)

// Columns holds all SQL columns for pageoption fields.
var Columns = []string{
	FieldID,
	FieldPageID,
	FieldOptionID,
	FieldText,
	FieldOptionOrder,
	FieldCorrect,
	FieldIcon,
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
	// OptionIDValidator is a validator for the "option_id" field. It is called by the builders before save.
	OptionIDValidator func(int) error
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect bool
	// DefaultIcon holds the default value on creation for the "icon" field.
	DefaultIcon string
)

// OrderOption defines the ordering options for the PageOption queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPageID orders the results by the page_id field.
func ByPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageID, opts...).ToFunc()
}

// ByOptionID orders the results by the option_id field.
func ByOptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByOptionOrder orders the results by the option_order field.
func ByOptionOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionOrder, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByIcon orders the results by the icon field.
func ByIcon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIcon, opts...).ToFunc()
}
