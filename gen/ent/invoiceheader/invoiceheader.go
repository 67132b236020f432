// Code generated by ent, DO NOT EDIT.

package invoiceheader

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the invoiceheader type in the database.
	Label = "invoice_header"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "InvoiceID"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "VehicleID"
	// FieldInvoiceDate holds the string denoting the invoice_date field in the database.
	FieldInvoiceDate = "InvoiceDate"
	// FieldInvoiceNumber holds the string denoting the invoice_number field in the database.
	FieldInvoiceNumber = "InvoiceNumber"
	// FieldTotalCost holds the string denoting the total_cost field in the database.
	FieldTotalCost = "TotalCost"
	// FieldTotalPartsCost holds the string denoting the total_parts_cost field in the database.
	FieldTotalPartsCost = "TotalPartsCost"
	// FieldTotalLaborCost holds the string denoting the total_labor_cost field in the database.
	FieldTotalLaborCost = "TotalLaborCost"
	// FieldOdometer holds the string denoting the odometer field in the database.
	FieldOdometer = "Odometer"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "ConfidenceScore"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "CreatedAt"
	// EdgeLines holds the string denoting the lines edge name in mutations.
	EdgeLines = "lines"
	// InvoiceLineFieldID holds the string denoting the ID field of the InvoiceLine.
	InvoiceLineFieldID = "LineID"
	// Table holds the table name of the invoiceheader in the database.
	Table = "InvoiceHeader"
	// LinesTable is the table that holds the lines relation/edge.
	LinesTable = "InvoiceLines"
	// LinesInverseTable is the table name for the InvoiceLine entity.
	// It exists in this package in order to avoid circular dependency with the "invoiceline" package.
	LinesInverseTable = "InvoiceLines"
	// LinesColumn is the table column denoting the lines relation/edge.
	LinesColumn = "InvoiceID"
)

// Columns holds all SQL columns for invoiceheader fields.
var Columns = []string{
	FieldID,
	FieldVehicleID,
	FieldInvoiceDate,
	FieldInvoiceNumber,
	FieldTotalCost,
	FieldTotalPartsCost,
	FieldTotalLaborCost,
	FieldOdometer,
	FieldConfidenceScore,
	FieldCreatedAt,
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
	// InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	InvoiceNumberValidator func(string) error
	// TotalCostValidator is a validator for the "total_cost" field. It is called by the builders before save.
	TotalCostValidator func(float64) error
	// TotalPartsCostValidator is a validator for the "total_parts_cost" field. It is called by the builders before save.
	TotalPartsCostValidator func(float64) error
	// TotalLaborCostValidator is a validator for the "total_labor_cost" field. It is called by the builders before save.
	TotalLaborCostValidator func(float64) error
	// OdometerValidator is a validator for the "odometer" field. It is called by the builders before save.
	OdometerValidator func(int) error
	// ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	ConfidenceScoreValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the InvoiceHeader queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVehicleID orders the results by the vehicle_id field.
func ByVehicleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleID, opts...).ToFunc()
}

// ByInvoiceDate orders the results by the invoice_date field.
func ByInvoiceDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceDate, opts...).ToFunc()
}

// ByInvoiceNumber orders the results by the invoice_number field.
func ByInvoiceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceNumber, opts...).ToFunc()
}

// ByTotalCost orders the results by the total_cost field.
func ByTotalCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCost, opts...).ToFunc()
}

// ByTotalPartsCost orders the results by the total_parts_cost field.
func ByTotalPartsCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPartsCost, opts...).ToFunc()
}

// ByTotalLaborCost orders the results by the total_labor_cost field.
func ByTotalLaborCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLaborCost, opts...).ToFunc()
}

// ByOdometer orders the results by the odometer field.
func ByOdometer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOdometer, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLinesCount orders the results by lines count.
func ByLinesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLinesStep(), opts...)
	}
}

// ByLines orders the results by lines terms.
func ByLines(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLinesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLinesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LinesInverseTable, InvoiceLineFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LinesTable, LinesColumn),
	)
}
