// Code generated by ent, DO NOT EDIT.

package invoiceline

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/adriankd/maintenance-plus/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldID, id))
}

// InvoiceID applies equality check predicate on the "invoice_id" field. It's identical to InvoiceIDEQ.
func InvoiceID(v int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldInvoiceID, v))
}

// LineNumber applies equality check predicate on the "line_number" field. It's identical to LineNumberEQ.
func LineNumber(v int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldLineNumber, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldCategory, v))
}

// PartNumber applies equality check predicate on the "part_number" field. It's identical to PartNumberEQ.
func PartNumber(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldPartNumber, v))
}

// UnitCost applies equality check predicate on the "unit_cost" field. It's identical to UnitCostEQ.
func UnitCost(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldUnitCost, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldQuantity, v))
}

// TotalLineCost applies equality check predicate on the "total_line_cost" field. It's identical to TotalLineCostEQ.
func TotalLineCost(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldTotalLineCost, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldConfidenceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldCreatedAt, v))
}

// InvoiceIDEQ applies the EQ predicate on the "invoice_id" field.
func InvoiceIDEQ(v int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldInvoiceID, v))
}

// InvoiceIDNEQ applies the NEQ predicate on the "invoice_id" field.
func InvoiceIDNEQ(v int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldInvoiceID, v))
}

// InvoiceIDIn applies the In predicate on the "invoice_id" field.
func InvoiceIDIn(vs ...int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldInvoiceID, vs...))
}

// InvoiceIDNotIn applies the NotIn predicate on the "invoice_id" field.
func InvoiceIDNotIn(vs ...int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldInvoiceID, vs...))
}

// LineNumberEQ applies the EQ predicate on the "line_number" field.
func LineNumberEQ(v int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldLineNumber, v))
}

// LineNumberNEQ applies the NEQ predicate on the "line_number" field.
func LineNumberNEQ(v int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldLineNumber, v))
}

// LineNumberIn applies the In predicate on the "line_number" field.
func LineNumberIn(vs ...int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldLineNumber, vs...))
}

// LineNumberNotIn applies the NotIn predicate on the "line_number" field.
func LineNumberNotIn(vs ...int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldLineNumber, vs...))
}

// LineNumberGT applies the GT predicate on the "line_number" field.
func LineNumberGT(v int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldLineNumber, v))
}

// LineNumberGTE applies the GTE predicate on the "line_number" field.
func LineNumberGTE(v int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldLineNumber, v))
}

// LineNumberLT applies the LT predicate on the "line_number" field.
func LineNumberLT(v int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldLineNumber, v))
}

// LineNumberLTE applies the LTE predicate on the "line_number" field.
func LineNumberLTE(v int) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldLineNumber, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldContainsFold(FieldCategory, v))
}

// PartNumberEQ applies the EQ predicate on the "part_number" field.
func PartNumberEQ(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldPartNumber, v))
}

// PartNumberNEQ applies the NEQ predicate on the "part_number" field.
func PartNumberNEQ(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldPartNumber, v))
}

// PartNumberIn applies the In predicate on the "part_number" field.
func PartNumberIn(vs ...string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldPartNumber, vs...))
}

// PartNumberNotIn applies the NotIn predicate on the "part_number" field.
func PartNumberNotIn(vs ...string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldPartNumber, vs...))
}

// PartNumberGT applies the GT predicate on the "part_number" field.
func PartNumberGT(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldPartNumber, v))
}

// PartNumberGTE applies the GTE predicate on the "part_number" field.
func PartNumberGTE(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldPartNumber, v))
}

// PartNumberLT applies the LT predicate on the "part_number" field.
func PartNumberLT(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldPartNumber, v))
}

// PartNumberLTE applies the LTE predicate on the "part_number" field.
func PartNumberLTE(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldPartNumber, v))
}

// PartNumberContains applies the Contains predicate on the "part_number" field.
func PartNumberContains(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldContains(FieldPartNumber, v))
}

// PartNumberHasPrefix applies the HasPrefix predicate on the "part_number" field.
func PartNumberHasPrefix(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldHasPrefix(FieldPartNumber, v))
}

// PartNumberHasSuffix applies the HasSuffix predicate on the "part_number" field.
func PartNumberHasSuffix(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldHasSuffix(FieldPartNumber, v))
}

// PartNumberIsNil applies the IsNil predicate on the "part_number" field.
func PartNumberIsNil() predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIsNull(FieldPartNumber))
}

// PartNumberNotNil applies the NotNil predicate on the "part_number" field.
func PartNumberNotNil() predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotNull(FieldPartNumber))
}

// PartNumberEqualFold applies the EqualFold predicate on the "part_number" field.
func PartNumberEqualFold(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEqualFold(FieldPartNumber, v))
}

// PartNumberContainsFold applies the ContainsFold predicate on the "part_number" field.
func PartNumberContainsFold(v string) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldContainsFold(FieldPartNumber, v))
}

// UnitCostEQ applies the EQ predicate on the "unit_cost" field.
func UnitCostEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldUnitCost, v))
}

// UnitCostNEQ applies the NEQ predicate on the "unit_cost" field.
func UnitCostNEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldUnitCost, v))
}

// UnitCostIn applies the In predicate on the "unit_cost" field.
func UnitCostIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldUnitCost, vs...))
}

// UnitCostNotIn applies the NotIn predicate on the "unit_cost" field.
func UnitCostNotIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldUnitCost, vs...))
}

// UnitCostGT applies the GT predicate on the "unit_cost" field.
func UnitCostGT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldUnitCost, v))
}

// UnitCostGTE applies the GTE predicate on the "unit_cost" field.
func UnitCostGTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldUnitCost, v))
}

// UnitCostLT applies the LT predicate on the "unit_cost" field.
func UnitCostLT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldUnitCost, v))
}

// UnitCostLTE applies the LTE predicate on the "unit_cost" field.
func UnitCostLTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldUnitCost, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldQuantity, v))
}

// TotalLineCostEQ applies the EQ predicate on the "total_line_cost" field.
func TotalLineCostEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldTotalLineCost, v))
}

// TotalLineCostNEQ applies the NEQ predicate on the "total_line_cost" field.
func TotalLineCostNEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldTotalLineCost, v))
}

// TotalLineCostIn applies the In predicate on the "total_line_cost" field.
func TotalLineCostIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldTotalLineCost, vs...))
}

// TotalLineCostNotIn applies the NotIn predicate on the "total_line_cost" field.
func TotalLineCostNotIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldTotalLineCost, vs...))
}

// TotalLineCostGT applies the GT predicate on the "total_line_cost" field.
func TotalLineCostGT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldTotalLineCost, v))
}

// TotalLineCostGTE applies the GTE predicate on the "total_line_cost" field.
func TotalLineCostGTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldTotalLineCost, v))
}

// TotalLineCostLT applies the LT predicate on the "total_line_cost" field.
func TotalLineCostLT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldTotalLineCost, v))
}

// TotalLineCostLTE applies the LTE predicate on the "total_line_cost" field.
func TotalLineCostLTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldTotalLineCost, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotNull(FieldConfidenceScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.FieldLTE(FieldCreatedAt, v))
}

// HasHeader applies the HasEdge predicate on the "header" edge.
func HasHeader() predicate.InvoiceLine {
	return predicate.InvoiceLine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HeaderTable, HeaderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHeaderWith applies the HasEdge predicate on the "header" edge with a given conditions (other predicates).
func HasHeaderWith(preds ...predicate.InvoiceHeader) predicate.InvoiceLine {
	return predicate.InvoiceLine(func(s *sql.Selector) {
		step := newHeaderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvoiceLine) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvoiceLine) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvoiceLine) predicate.InvoiceLine {
	return predicate.InvoiceLine(sql.NotPredicates(p))
}
