// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/naghz/naghz/ent/dailyflag"
)

// DailyFlag is the model entity for the DailyFlag schema.
type DailyFlag struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Day the prompt was last shown, YYYY-MM-DD
	LastShown string `json:"last_shown,omitempty"`
	// Prompt suppressed until this instant
	DeclinedUntil time.Time `json:"declined_until,omitempty"`
	// Day the challenge was last completed, YYYY-MM-DD
	CompletedDay string `json:"completed_day,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyFlag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailyflag.FieldID:
			values[i] = new(sql.NullInt64)
		case dailyflag.FieldUserID, dailyflag.FieldLastShown, dailyflag.FieldCompletedDay:
			values[i] = new(sql.NullString)
		case dailyflag.FieldDeclinedUntil, dailyflag.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyFlag fields.
func (_m *DailyFlag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailyflag.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dailyflag.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case dailyflag.FieldLastShown:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_shown", values[i])
			} else if value.Valid {
				_m.LastShown = value.String
			}
		case dailyflag.FieldDeclinedUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field declined_until", values[i])
			} else if value.Valid {
				_m.DeclinedUntil = value.Time
			}
		case dailyflag.FieldCompletedDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completed_day", values[i])
			} else if value.Valid {
				_m.CompletedDay = value.String
			}
		case dailyflag.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyFlag.
// This includes values selected through modifiers, order, etc.
func (_m *DailyFlag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyFlag.
// Note that you need to call DailyFlag.Unwrap() before calling this method if this DailyFlag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyFlag) Update() *DailyFlagUpdateOne {
	return NewDailyFlagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyFlag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyFlag) Unwrap() *DailyFlag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyFlag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyFlag) String() string {
	var builder strings.Builder
	builder.WriteString("DailyFlag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("last_shown=")
	builder.WriteString(_m.LastShown)
	builder.WriteString(", ")
	builder.WriteString("declined_until=")
	builder.WriteString(_m.DeclinedUntil.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("completed_day=")
	builder.WriteString(_m.CompletedDay)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DailyFlags is a parsable slice of DailyFlag.
type DailyFlags []*DailyFlag
