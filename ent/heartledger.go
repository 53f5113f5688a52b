// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/naghz/naghz/ent/heartledger"
)

// HeartLedger is the model entity for the HeartLedger schema.
type HeartLedger struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Hearts holds the value of the "hearts" field.
	Hearts int `json:"hearts,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HeartLedger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case heartledger.FieldID, heartledger.FieldHearts:
			values[i] = new(sql.NullInt64)
		case heartledger.FieldUserID:
			values[i] = new(sql.NullString)
		case heartledger.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HeartLedger fields.
func (_m *HeartLedger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case heartledger.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case heartledger.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case heartledger.FieldHearts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hearts", values[i])
			} else if value.Valid {
				_m.Hearts = int(value.Int64)
			}
		case heartledger.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the HeartLedger.
// This includes values selected through modifiers, order, etc.
func (_m *HeartLedger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HeartLedger.
// Note that you need to call HeartLedger.Unwrap() before calling this method if this HeartLedger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HeartLedger) Update() *HeartLedgerUpdateOne {
	return NewHeartLedgerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HeartLedger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HeartLedger) Unwrap() *HeartLedger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HeartLedger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HeartLedger) String() string {
	var builder strings.Builder
	builder.WriteString("HeartLedger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("hearts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hearts))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HeartLedgers is a parsable slice of HeartLedger.
type HeartLedgers []*HeartLedger
