// Code generated by ent, DO NOT EDIT.

package dailyflag

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dailyflag type in the database.
	Label = "daily_flag"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLastShown holds the string denoting the last_shown field in the database.
	FieldLastShown = "last_shown"
	// FieldDeclinedUntil holds the string denoting the declined_until field in the database.
	FieldDeclinedUntil = "declined_until"
	// FieldCompletedDay holds the string denoting the completed_day field in the database.
	FieldCompletedDay = "completed_day"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the dailyflag in the database.
	Table = "daily_flags"
)

// Columns holds all SQL columns for dailyflag fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldLastShown,
	FieldDeclinedUntil,
	FieldCompletedDay,
	FieldUpdatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultLastShown holds the default value on creation for the "last_shown" field.
	DefaultLastShown string
	// DefaultCompletedDay holds the default value on creation for the "completed_day" field.
	DefaultCompletedDay string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DailyFlag queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLastShown orders the results by the last_shown field.
func ByLastShown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastShown, opts...).ToFunc()
}

// ByDeclinedUntil orders the results by the declined_until field.
func ByDeclinedUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeclinedUntil, opts...).ToFunc()
}

// ByCompletedDay orders the results by the completed_day field.
func ByCompletedDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedDay, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
