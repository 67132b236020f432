// Code generated by ent, DO NOT EDIT.

package invoiceheader

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/adriankd/maintenance-plus/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLTE(FieldID, id))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldVehicleID, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldInvoiceNumber, v))
}

// TotalCost applies equality check predicate on the "total_cost" field. It's identical to TotalCostEQ.
func TotalCost(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldTotalCost, v))
}

// TotalPartsCost applies equality check predicate on the "total_parts_cost" field. It's identical to TotalPartsCostEQ.
func TotalPartsCost(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldTotalPartsCost, v))
}

// TotalLaborCost applies equality check predicate on the "total_labor_cost" field. It's identical to TotalLaborCostEQ.
func TotalLaborCost(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldTotalLaborCost, v))
}

// Odometer applies equality check predicate on the "odometer" field. It's identical to OdometerEQ.
func Odometer(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldOdometer, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldConfidenceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldCreatedAt, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLTE(FieldVehicleID, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// TotalCostEQ applies the EQ predicate on the "total_cost" field.
func TotalCostEQ(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldTotalCost, v))
}

// TotalCostNEQ applies the NEQ predicate on the "total_cost" field.
func TotalCostNEQ(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNEQ(FieldTotalCost, v))
}

// TotalCostIn applies the In predicate on the "total_cost" field.
func TotalCostIn(vs ...float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIn(FieldTotalCost, vs...))
}

// TotalCostNotIn applies the NotIn predicate on the "total_cost" field.
func TotalCostNotIn(vs ...float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotIn(FieldTotalCost, vs...))
}

// TotalCostGT applies the GT predicate on the "total_cost" field.
func TotalCostGT(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGT(FieldTotalCost, v))
}

// TotalCostGTE applies the GTE predicate on the "total_cost" field.
func TotalCostGTE(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGTE(FieldTotalCost, v))
}

// TotalCostLT applies the LT predicate on the "total_cost" field.
func TotalCostLT(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLT(FieldTotalCost, v))
}

// TotalCostLTE applies the LTE predicate on the "total_cost" field.
func TotalCostLTE(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLTE(FieldTotalCost, v))
}

// TotalPartsCostEQ applies the EQ predicate on the "total_parts_cost" field.
func TotalPartsCostEQ(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldTotalPartsCost, v))
}

// TotalPartsCostNEQ applies the NEQ predicate on the "total_parts_cost" field.
func TotalPartsCostNEQ(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNEQ(FieldTotalPartsCost, v))
}

// TotalPartsCostIn applies the In predicate on the "total_parts_cost" field.
func TotalPartsCostIn(vs ...float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIn(FieldTotalPartsCost, vs...))
}

// TotalPartsCostNotIn applies the NotIn predicate on the "total_parts_cost" field.
func TotalPartsCostNotIn(vs ...float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotIn(FieldTotalPartsCost, vs...))
}

// TotalPartsCostGT applies the GT predicate on the "total_parts_cost" field.
func TotalPartsCostGT(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGT(FieldTotalPartsCost, v))
}

// TotalPartsCostGTE applies the GTE predicate on the "total_parts_cost" field.
func TotalPartsCostGTE(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGTE(FieldTotalPartsCost, v))
}

// TotalPartsCostLT applies the LT predicate on the "total_parts_cost" field.
func TotalPartsCostLT(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLT(FieldTotalPartsCost, v))
}

// TotalPartsCostLTE applies the LTE predicate on the "total_parts_cost" field.
func TotalPartsCostLTE(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLTE(FieldTotalPartsCost, v))
}

// TotalLaborCostEQ applies the EQ predicate on the "total_labor_cost" field.
func TotalLaborCostEQ(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldTotalLaborCost, v))
}

// TotalLaborCostNEQ applies the NEQ predicate on the "total_labor_cost" field.
func TotalLaborCostNEQ(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNEQ(FieldTotalLaborCost, v))
}

// TotalLaborCostIn applies the In predicate on the "total_labor_cost" field.
func TotalLaborCostIn(vs ...float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIn(FieldTotalLaborCost, vs...))
}

// TotalLaborCostNotIn applies the NotIn predicate on the "total_labor_cost" field.
func TotalLaborCostNotIn(vs ...float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotIn(FieldTotalLaborCost, vs...))
}

// TotalLaborCostGT applies the GT predicate on the "total_labor_cost" field.
func TotalLaborCostGT(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGT(FieldTotalLaborCost, v))
}

// TotalLaborCostGTE applies the GTE predicate on the "total_labor_cost" field.
func TotalLaborCostGTE(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGTE(FieldTotalLaborCost, v))
}

// TotalLaborCostLT applies the LT predicate on the "total_labor_cost" field.
func TotalLaborCostLT(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLT(FieldTotalLaborCost, v))
}

// TotalLaborCostLTE applies the LTE predicate on the "total_labor_cost" field.
func TotalLaborCostLTE(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLTE(FieldTotalLaborCost, v))
}

// OdometerEQ applies the EQ predicate on the "odometer" field.
func OdometerEQ(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldOdometer, v))
}

// OdometerNEQ applies the NEQ predicate on the "odometer" field.
func OdometerNEQ(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNEQ(FieldOdometer, v))
}

// OdometerIn applies the In predicate on the "odometer" field.
func OdometerIn(vs ...int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIn(FieldOdometer, vs...))
}

// OdometerNotIn applies the NotIn predicate on the "odometer" field.
func OdometerNotIn(vs ...int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotIn(FieldOdometer, vs...))
}

// OdometerGT applies the GT predicate on the "odometer" field.
func OdometerGT(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGT(FieldOdometer, v))
}

// OdometerGTE applies the GTE predicate on the "odometer" field.
func OdometerGTE(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGTE(FieldOdometer, v))
}

// OdometerLT applies the LT predicate on the "odometer" field.
func OdometerLT(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLT(FieldOdometer, v))
}

// OdometerLTE applies the LTE predicate on the "odometer" field.
func OdometerLTE(v int) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLTE(FieldOdometer, v))
}

// OdometerIsNil applies the IsNil predicate on the "odometer" field.
func OdometerIsNil() predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIsNull(FieldOdometer))
}

// OdometerNotNil applies the NotNil predicate on the "odometer" field.
func OdometerNotNil() predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotNull(FieldOdometer))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotNull(FieldConfidenceScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLines applies the HasEdge predicate on the "lines" edge.
func HasLines() predicate.InvoiceHeader {
	return predicate.InvoiceHeader(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LinesTable, LinesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinesWith applies the HasEdge predicate on the "lines" edge with a given conditions (other predicates).
func HasLinesWith(preds ...predicate.InvoiceLine) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(func(s *sql.Selector) {
		step := newLinesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvoiceHeader) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvoiceHeader) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvoiceHeader) predicate.InvoiceHeader {
	return predicate.InvoiceHeader(sql.NotPredicates(p))
}
