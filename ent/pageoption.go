// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/naghz/naghz/ent/pageoption"
)

// PageOption is the model entity for the PageOption schema.
type PageOption struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning page
	PageID string `json:"page_id,omitempty"`
	// Page-local id referenced by answer encodings
	OptionID int `json:"option_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Display order within the page
	OptionOrder int `json:"option_order,omitempty"`
	// Denormalized correctness flag, informational only
	Correct bool `json:"correct,omitempty"`
	// Icon holds the value of the "icon" field.
	Icon         string `json:"icon,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PageOption) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pageoption.FieldCorrect:
			values[i] = new(sql.NullBool)
		case pageoption.FieldID, pageoption.FieldOptionID, pageoption.FieldOptionOrder:
			values[i] = new(sql.NullInt64)
		case pageoption.FieldPageID, pageoption.FieldText, pageoption.FieldIcon:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PageOption fields.
func (_m *PageOption) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pageoption.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pageoption.FieldPageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value.Valid {
				_m.PageID = value.String
			}
		case pageoption.FieldOptionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field option_id", values[i])
			} else if value.Valid {
				_m.OptionID = int(value.Int64)
			}
		case pageoption.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case pageoption.FieldOptionOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field option_order", values[i])
			} else if value.Valid {
				_m.OptionOrder = int(value.Int64)
			}
		case pageoption.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case pageoption.FieldIcon:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field icon", values[i])
			} else if value.Valid {
				_m.Icon = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PageOption.
// This includes values selected through modifiers, order, etc.
func (_m *PageOption) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PageOption.
// Note that you need to call PageOption.Unwrap() before calling this method if this PageOption
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PageOption) Update() *PageOptionUpdateOne {
	return NewPageOptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PageOption entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PageOption) Unwrap() *PageOption {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PageOption is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PageOption) String() string {
	var builder strings.Builder
	builder.WriteString("PageOption(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page_id=")
	builder.WriteString(_m.PageID)
	builder.WriteString(", ")
	builder.WriteString("option_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptionID))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("option_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptionOrder))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("icon=")
	builder.WriteString(_m.Icon)
	builder.WriteByte(')')
	return builder.String()
}

// PageOptions is a parsable slice of PageOption.
type PageOptions []*PageOption
