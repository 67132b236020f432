// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceheader"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceline"
)

// InvoiceLine is the model entity for the InvoiceLine schema.
type InvoiceLine struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// InvoiceID holds the value of the "invoice_id" field.
	InvoiceID int `json:"invoice_id,omitempty"`
	// LineNumber holds the value of the "line_number" field.
	LineNumber int `json:"line_number,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// PartNumber holds the value of the "part_number" field.
	PartNumber *string `json:"part_number,omitempty"`
	// UnitCost holds the value of the "unit_cost" field.
	UnitCost float64 `json:"unit_cost,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity float64 `json:"quantity,omitempty"`
	// TotalLineCost holds the value of the "total_line_cost" field.
	TotalLineCost float64 `json:"total_line_cost,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceLineQuery when eager-loading is set.
	Edges        InvoiceLineEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceLineEdges holds the relations/edges for other nodes in the graph.
type InvoiceLineEdges struct {
	// Header holds the value of the header edge.
	Header *InvoiceHeader `json:"header,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// HeaderOrErr returns the Header value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceLineEdges) HeaderOrErr() (*InvoiceHeader, error) {
	if e.Header != nil {
		return e.Header, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: invoiceheader.Label}
	}
	return nil, &NotLoadedError{edge: "header"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InvoiceLine) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoiceline.FieldUnitCost, invoiceline.FieldQuantity, invoiceline.FieldTotalLineCost, invoiceline.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case invoiceline.FieldID, invoiceline.FieldInvoiceID, invoiceline.FieldLineNumber:
			values[i] = new(sql.NullInt64)
		case invoiceline.FieldCategory, invoiceline.FieldPartNumber:
			values[i] = new(sql.NullString)
		case invoiceline.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InvoiceLine fields.
func (_m *InvoiceLine) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoiceline.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case invoiceline.FieldInvoiceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_id", values[i])
			} else if value.Valid {
				_m.InvoiceID = int(value.Int64)
			}
		case invoiceline.FieldLineNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_number", values[i])
			} else if value.Valid {
				_m.LineNumber = int(value.Int64)
			}
		case invoiceline.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case invoiceline.FieldPartNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field part_number", values[i])
			} else if value.Valid {
				_m.PartNumber = new(string)
				*_m.PartNumber = value.String
			}
		case invoiceline.FieldUnitCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_cost", values[i])
			} else if value.Valid {
				_m.UnitCost = value.Float64
			}
		case invoiceline.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = value.Float64
			}
		case invoiceline.FieldTotalLineCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_line_cost", values[i])
			} else if value.Valid {
				_m.TotalLineCost = value.Float64
			}
		case invoiceline.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(float64)
				*_m.ConfidenceScore = value.Float64
			}
		case invoiceline.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InvoiceLine.
// This includes values selected through modifiers, order, etc.
func (_m *InvoiceLine) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHeader queries the "header" edge of the InvoiceLine entity.
func (_m *InvoiceLine) QueryHeader() *InvoiceHeaderQuery {
	return NewInvoiceLineClient(_m.config).QueryHeader(_m)
}

// Update returns a builder for updating this InvoiceLine.
// Note that you need to call InvoiceLine.Unwrap() before calling this method if this InvoiceLine
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InvoiceLine) Update() *InvoiceLineUpdateOne {
	return NewInvoiceLineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InvoiceLine entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InvoiceLine) Unwrap() *InvoiceLine {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InvoiceLine is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InvoiceLine) String() string {
	var builder strings.Builder
	builder.WriteString("InvoiceLine(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("invoice_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvoiceID))
	builder.WriteString(", ")
	builder.WriteString("line_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineNumber))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	if v := _m.PartNumber; v != nil {
		builder.WriteString("part_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("unit_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitCost))
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("total_line_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalLineCost))
	builder.WriteString(", ")
	if v := _m.ConfidenceScore; v != nil {
		builder.WriteString("confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InvoiceLines is a parsable slice of InvoiceLine.
type InvoiceLines []*InvoiceLine
