// Code generated by ent, DO NOT EDIT.

package invoiceline

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the invoiceline type in the database.
	Label = "invoice_line"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "LineID"
	// FieldInvoiceID holds the string denoting the invoice_id field in the database.
	FieldInvoiceID = "InvoiceID"
	// FieldLineNumber holds the string denoting the line_number field in the database.
	FieldLineNumber = "LineNumber"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "Category"
	// FieldPartNumber holds the string denoting the part_number field in the database.
	FieldPartNumber = "PartNumber"
	// FieldUnitCost holds the string denoting the unit_cost field in the database.
	FieldUnitCost = "UnitCost"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "Quantity"
	// FieldTotalLineCost holds the string denoting the total_line_cost field in the database.
	FieldTotalLineCost = "TotalLineCost"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "ConfidenceScore"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "CreatedAt"
	// EdgeHeader holds the string denoting the header edge name in mutations.
	EdgeHeader = "header"
	// InvoiceHeaderFieldID holds the string denoting the ID field of the InvoiceHeader.
	InvoiceHeaderFieldID = "InvoiceID"
	// Table holds the table name of the invoiceline in the database.
	Table = "InvoiceLines"
	// HeaderTable is the table that holds the header relation/edge.
	HeaderTable = "InvoiceLines"
	// HeaderInverseTable is the table name for the InvoiceHeader entity.
	// It exists in this package in order to avoid circular dependency with the "invoiceheader" package.
	HeaderInverseTable = "InvoiceHeader"
	// HeaderColumn is the table column denoting the header relation/edge.
	HeaderColumn = "InvoiceID"
)

// Columns holds all SQL columns for invoiceline fields.
var Columns = []string{
	FieldID,
	FieldInvoiceID,
	FieldLineNumber,
	FieldCategory,
	FieldPartNumber,
	FieldUnitCost,
	FieldQuantity,
	FieldTotalLineCost,
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
	// LineNumberValidator is a validator for the "line_number" field. It is called by the builders before save.
	LineNumberValidator func(int) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// UnitCostValidator is a validator for the "unit_cost" field. It is called by the builders before save.
	UnitCostValidator func(float64) error
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(float64) error
	// TotalLineCostValidator is a validator for the "total_line_cost" field. It is called by the builders before save.
	TotalLineCostValidator func(float64) error
	// ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	ConfidenceScoreValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the InvoiceLine queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInvoiceID orders the results by the invoice_id field.
func ByInvoiceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceID, opts...).ToFunc()
}

// ByLineNumber orders the results by the line_number field.
func ByLineNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineNumber, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByPartNumber orders the results by the part_number field.
func ByPartNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartNumber, opts...).ToFunc()
}

// ByUnitCost orders the results by the unit_cost field.
func ByUnitCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitCost, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByTotalLineCost orders the results by the total_line_cost field.
func ByTotalLineCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLineCost, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByHeaderField orders the results by header field.
func ByHeaderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHeaderStep(), sql.OrderByField(field, opts...))
	}
}
func newHeaderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HeaderInverseTable, InvoiceHeaderFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HeaderTable, HeaderColumn),
	)
}
