// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceheader"
)

// InvoiceHeader is the model entity for the InvoiceHeader schema.
type InvoiceHeader struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID int `json:"vehicle_id,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate time.Time `json:"invoice_date,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber string `json:"invoice_number,omitempty"`
	// TotalCost holds the value of the "total_cost" field.
	TotalCost float64 `json:"total_cost,omitempty"`
	// TotalPartsCost holds the value of the "total_parts_cost" field.
	TotalPartsCost float64 `json:"total_parts_cost,omitempty"`
	// TotalLaborCost holds the value of the "total_labor_cost" field.
	TotalLaborCost float64 `json:"total_labor_cost,omitempty"`
	// Odometer holds the value of the "odometer" field.
	Odometer *int `json:"odometer,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceHeaderQuery when eager-loading is set.
	Edges        InvoiceHeaderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceHeaderEdges holds the relations/edges for other nodes in the graph.
type InvoiceHeaderEdges struct {
	// Lines holds the value of the lines edge.
	Lines []*InvoiceLine `json:"lines,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LinesOrErr returns the Lines value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceHeaderEdges) LinesOrErr() ([]*InvoiceLine, error) {
	if e.loadedTypes[0] {
		return e.Lines, nil
	}
	return nil, &NotLoadedError{edge: "lines"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InvoiceHeader) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoiceheader.FieldTotalCost, invoiceheader.FieldTotalPartsCost, invoiceheader.FieldTotalLaborCost, invoiceheader.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case invoiceheader.FieldID, invoiceheader.FieldVehicleID, invoiceheader.FieldOdometer:
			values[i] = new(sql.NullInt64)
		case invoiceheader.FieldInvoiceNumber:
			values[i] = new(sql.NullString)
		case invoiceheader.FieldInvoiceDate, invoiceheader.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InvoiceHeader fields.
func (_m *InvoiceHeader) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoiceheader.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case invoiceheader.FieldVehicleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = int(value.Int64)
			}
		case invoiceheader.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = value.Time
			}
		case invoiceheader.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = value.String
			}
		case invoiceheader.FieldTotalCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value.Valid {
				_m.TotalCost = value.Float64
			}
		case invoiceheader.FieldTotalPartsCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_parts_cost", values[i])
			} else if value.Valid {
				_m.TotalPartsCost = value.Float64
			}
		case invoiceheader.FieldTotalLaborCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_labor_cost", values[i])
			} else if value.Valid {
				_m.TotalLaborCost = value.Float64
			}
		case invoiceheader.FieldOdometer:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field odometer", values[i])
			} else if value.Valid {
				_m.Odometer = new(int)
				*_m.Odometer = int(value.Int64)
			}
		case invoiceheader.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(float64)
				*_m.ConfidenceScore = value.Float64
			}
		case invoiceheader.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InvoiceHeader.
// This includes values selected through modifiers, order, etc.
func (_m *InvoiceHeader) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLines queries the "lines" edge of the InvoiceHeader entity.
func (_m *InvoiceHeader) QueryLines() *InvoiceLineQuery {
	return NewInvoiceHeaderClient(_m.config).QueryLines(_m)
}

// Update returns a builder for updating this InvoiceHeader.
// Note that you need to call InvoiceHeader.Unwrap() before calling this method if this InvoiceHeader
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InvoiceHeader) Update() *InvoiceHeaderUpdateOne {
	return NewInvoiceHeaderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InvoiceHeader entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InvoiceHeader) Unwrap() *InvoiceHeader {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InvoiceHeader is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InvoiceHeader) String() string {
	var builder strings.Builder
	builder.WriteString("InvoiceHeader(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("vehicle_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VehicleID))
	builder.WriteString(", ")
	builder.WriteString("invoice_date=")
	builder.WriteString(_m.InvoiceDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("invoice_number=")
	builder.WriteString(_m.InvoiceNumber)
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteString(", ")
	builder.WriteString("total_parts_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPartsCost))
	builder.WriteString(", ")
	builder.WriteString("total_labor_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalLaborCost))
	builder.WriteString(", ")
	if v := _m.Odometer; v != nil {
		builder.WriteString("odometer=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
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

// InvoiceHeaders is a parsable slice of InvoiceHeader.
type InvoiceHeaders []*InvoiceHeader
